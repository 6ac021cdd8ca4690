package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToFloat converts a cell value to float64 using explicit type switching.
// It handles integer and float types, numeric strings and byte slices.
// The second return value is false when the value is not numeric.
func ToFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, !math.IsNaN(v)
	case float32:
		return float64(v), !math.IsNaN(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case int16:
		return float64(v), true
	case int8:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint8:
		return float64(v), true
	case string:
		return parseFloat(v)
	case []byte:
		return parseFloat(string(v))
	default:
		return 0, false
	}
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ToInt converts a cell value to int64 when it holds an integer exactly.
// Integer types and integral numeric strings convert; floats and values
// outside the int64 range do not.
func ToInt(val any) (int64, bool) {
	switch v := val.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	case uint:
		return uintToInt(uint64(v))
	case uint64:
		return uintToInt(v)
	case uint32:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint8:
		return int64(v), true
	case string:
		return parseInt(v)
	case []byte:
		return parseInt(string(v))
	default:
		return 0, false
	}
}

func uintToInt(v uint64) (int64, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

func parseInt(s string) (int64, bool) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// IsNumber reports whether v is a normalized numeric cell (int64 or float64).
func IsNumber(v any) bool {
	switch f := v.(type) {
	case int64:
		return true
	case float64:
		return !math.IsNaN(f)
	default:
		return false
	}
}

// FormatFloat renders a float in its shortest form, so 5 prints as "5" and 5.25 as "5.25".
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ToString converts various types to string.
// Nil becomes the empty string, integers print exactly and floats use FormatFloat.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return FormatFloat(v)
	case float32:
		return FormatFloat(float64(v))
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case int, int64, int32, int16, int8, uint32, uint16, uint8:
		i, _ := ToInt(v)
		return strconv.FormatInt(i, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// IsBlank reports whether a value is nil, NaN or a whitespace-only string.
func IsBlank(val any) bool {
	switch v := val.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(v)
	case string:
		return strings.TrimSpace(v) == ""
	case []byte:
		return strings.TrimSpace(string(v)) == ""
	default:
		return false
	}
}

// RoundTo rounds f to the given number of decimal places.
func RoundTo(f float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(f*p) / p
}
