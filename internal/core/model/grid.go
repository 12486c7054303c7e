package model

import "math"

// Legacy fixed-grid card sizes in pixels, keyed by column and row count.
var (
	gridWidths  = map[int]float64{6: 247, 7: 290, 8: 332, 9: 375, 10: 417, 11: 460, 12: 502}
	gridHeights = map[int]float64{1: 56, 2: 120, 3: 184, 4: 248, 5: 312, 6: 376, 7: 440}
)

const gridRowPixels = 56

// GridColumns lists the supported column counts in ascending order.
func GridColumns() []int {
	return []int{6, 7, 8, 9, 10, 11, 12}
}

// GridRows lists the supported row counts in ascending order.
func GridRows() []int {
	return []int{1, 2, 3, 4, 5, 6, 7}
}

// GridSize returns the fixed pixel size for a cols/rows pair.
func GridSize(cols, rows int) (width, height float64, ok bool) {
	width, okW := gridWidths[cols]
	height, okH := gridHeights[rows]
	return width, height, okW && okH
}

// CardSize returns the number of host layout rows the card occupies.
func (config ClockConfig) CardSize() int {
	height, ok := gridHeights[config.Rows]
	if !ok {
		height = gridHeights[2]
	}
	rows := int(math.Round(height / gridRowPixels))
	if rows < 1 {
		return 1
	}
	return rows
}
