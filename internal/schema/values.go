package schema

import (
	"math"
	"strconv"
	"strings"
)

func asFloat(value any) (float64, error) {
	var parsed float64
	switch v := value.(type) {
	case float64:
		parsed = v
	case float32:
		parsed = float64(v)
	case int:
		parsed = float64(v)
	case int64:
		parsed = float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, invalid("%q is not a number", v)
		}
		parsed = f
	default:
		return 0, invalid("%v (%T) is not a number", value, value)
	}
	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, invalid("%v is not finite", parsed)
	}
	return parsed, nil
}

func asInt(value any) (int, error) {
	f, err := asFloat(value)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, invalid("%v is not a whole number", f)
	}
	return int(f), nil
}

func asString(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", invalid("%v (%T) is not text", value, value)
	}
	return s, nil
}

func asBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, invalid("%q is not a boolean", v)
		}
		return b, nil
	default:
		return false, invalid("%v (%T) is not a boolean", value, value)
	}
}
