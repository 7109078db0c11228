package numbers

import (
	"strconv"
	"strings"
)

const width = 4

type unitRange struct {
	max      uint64
	suffix   string
	divisor  uint64
	decimals int
}

var ranges = []unitRange{
	{10_000, "k", 1_000, 1},
	{100_000, "k", 1_000, 0},
	{1_000_000, "k", 1_000, 0},
	{10_000_000, "M", 1_000_000, 1},
	{100_000_000, "M", 1_000_000, 0},
	{1_000_000_000, "M", 1_000_000, 0},
}

// Format returns Human(n) right-aligned to four columns.
func Format(n uint64) string {
	s := Human(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// Human renders n with a unit suffix. Scaled values are floored, never
// rounded: 9999 is "9.9k", not "10k".
func Human(n uint64) string {
	if n < 1_000 {
		return strconv.FormatUint(n, 10)
	}
	for _, r := range ranges {
		if n < r.max {
			return floorDiv(n, r.divisor, r.decimals) + r.suffix
		}
	}
	return floorDiv(n, 1_000_000_000, 1) + "B"
}

func floorDiv(n, divisor uint64, decimals int) string {
	if decimals == 0 {
		return strconv.FormatUint(n/divisor, 10)
	}
	tenths := n / (divisor / 10)
	whole, frac := tenths/10, tenths%10
	if frac == 0 {
		return strconv.FormatUint(whole, 10)
	}
	return strconv.FormatUint(whole, 10) + "." + strconv.FormatUint(frac, 10)
}
