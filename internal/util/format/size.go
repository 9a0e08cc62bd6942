// Package format renders quantities for display.
package format

import (
	"math"
	"strconv"
)

// Binary size units in bytes.
const (
	KB = 1024
	MB = KB * 1024
	GB = MB * 1024
)

// zeroSize is returned for any input that is not a finite positive number.
const zeroSize = "0 KB"

type sizeUnit struct {
	divisor float64
	label   string
}

// Checked top-down; the last entry is the default for anything under a MB.
var sizeUnits = [...]sizeUnit{
	{divisor: GB, label: "GB"},
	{divisor: MB, label: "MB"},
	{divisor: KB, label: "KB"},
}

// FormatSize converts a byte count into a human-readable string using binary
// units, e.g. "0.5 KB", "1.0 MB", "15 MB". Values under 10 keep one decimal.
// NaN, infinities and non-positive inputs yield "0 KB".
func FormatSize(bytes float64) string {
	if math.IsNaN(bytes) || math.IsInf(bytes, 0) || bytes <= 0 {
		return zeroSize
	}
	u := sizeUnits[len(sizeUnits)-1]
	for _, c := range sizeUnits {
		if bytes >= c.divisor {
			u = c
			break
		}
	}
	value := bytes / u.divisor
	digits := 0
	if value < 10 {
		digits = 1
	}
	var buf [32]byte
	s := strconv.AppendFloat(buf[:0], value, 'f', digits, 64)
	return string(s) + " " + u.label
}

// FormatSizeInt is FormatSize for integer byte counts such as file sizes.
func FormatSizeInt(n int64) string {
	return FormatSize(float64(n))
}
