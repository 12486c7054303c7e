package editor

import (
	"strings"
	"unicode"
)

var fieldLabels = map[string]string{
	"entity":               "Entity",
	"sizing":               "Sizing",
	"cols":                 "Columns",
	"rows":                 "Rows",
	"bgColor":              "Background",
	"borderColor":          "Border colour",
	"tickColor":            "Tick colour",
	"fontColor":            "Font colour",
	"fontWeight":           "Font weight",
	"fontFamily":           "Font family",
	"fontSizePct":          "Font size (% of height)",
	"padPct":               "Padding (%)",
	"radiusPct":            "Corner radius (%)",
	"cornerSource":         "Corner source",
	"tickLenPct":           "Tick length (%)",
	"tickThickPct":         "Tick thickness (%)",
	"borderPct":            "Border width (%)",
	"labelTransformFactor": "Label offset",
	"outerBorderColor":     "Outer border colour",
	"outerBorderWidth":     "Outer border (px)",
	"minHeightPx":          "Min height (px)",
	"showSecondsSweep":     "Seconds sweep",
	"sweepColor":           "Sweep colour",
}

// labelFor returns the display label of a field, splitting unknown
// camelCase names into words.
func labelFor(name string) string {
	if label, ok := fieldLabels[name]; ok {
		return label
	}
	var b strings.Builder
	for index, r := range name {
		if index == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
