// Package format provides text formatters: decimal grouping (used by the
// summary table), human-scale byte sizes and duration strings, and the
// ANSI palette used for (or stripped from, under --no-color) the summary
// table. The detailed report prints plain integers and does not use this
// package.
//
// This is deliberately not github.com/dustin/go-humanize: humanize's
// IBytes/Bytes use binary (1024) scaling and different grouping, while
// SizeHuman uses decimal (base-1000) scaling and Dec uses exact comma
// grouping (see format_test.go). humanize is still
// used for the ambient progress text in internal/progress, where no
// exact rendering contract applies.
package format

import (
	"fmt"
	"strconv"
)

const groupSeparator = ","
const decimalPoint = "."

// Dec formats x with thousands grouped by commas: 123456789 -> "123,456,789".
func Dec(x int64) string {
	neg := x < 0
	if neg {
		x = -x
	}
	s := decGroup(x)
	if neg {
		return "-" + s
	}
	return s
}

func decGroup(x int64) string {
	if x < 1000 {
		return strconv.FormatInt(x, 10)
	}
	return decGroup(x/1000) + groupSeparator + fmt.Sprintf("%03d", x%1000)
}

// DecSigned is Dec, but with a leading "+" for positive values (Dec
// already supplies the "-" for negative ones). Used for the summary
// table's modified-bytes delta.
func DecSigned(x int64) string {
	if x > 0 {
		return "+" + Dec(x)
	}
	return Dec(x)
}

var sizeSuffixes = []string{" K", " M", " G", " T", " P"}

// SizeHuman formats x as a decimal (base-1000) human size with one
// fractional digit above 1000 bytes: 34567 -> "34.5 K".
func SizeHuman(x uint64) string {
	mantissa := x
	var decimal uint64
	suffix := " B"
	for _, s := range sizeSuffixes {
		if mantissa < 1000 {
			break
		}
		decimal = (mantissa / 100) % 10
		mantissa /= 1000
		suffix = s
	}

	decimalSuffix := ""
	if x >= 1000 {
		decimalSuffix = decimalPoint + strconv.FormatUint(decimal, 10)
	}
	return Dec(int64(mantissa)) + decimalSuffix + suffix
}

// DurationHuman formats a second count as "1h 44m 0s"-style text.
func DurationHuman(seconds uint64) string {
	if seconds == 0 {
		return "0s"
	}
	s := fmt.Sprintf("%ds", seconds%60)
	m := ""
	if seconds >= 60 {
		m = fmt.Sprintf("%dm ", (seconds/60)%60)
	}
	h := ""
	if seconds >= 3600 {
		h = fmt.Sprintf("%dh ", seconds/3600)
	}
	return h + m + s
}
