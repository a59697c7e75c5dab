// Package size renders byte counts into a fixed four-cell budget.
package size

import (
	"fmt"
	"strconv"

	humanize "github.com/dustin/go-humanize"
)

var prefixes = []string{"", "k", "M", "G", "T", "P", "E", "Z", "Y"}

// Fit4 formats n with an SI prefix in at most four characters, for example
// "512", "1.5k", "37G".
func Fit4(n uint64) string {
	if n < 1000 {
		return strconv.FormatUint(n, 10)
	}
	v, prefix := humanize.ComputeSI(float64(n))
	for {
		if v < 10 {
			if s := fmt.Sprintf("%.1f%s", v, prefix); len(s) <= 4 {
				return s
			}
		}
		s := fmt.Sprintf("%.0f%s", v, prefix)
		if len(s) <= 4 {
			return s
		}
		next, ok := nextPrefix(prefix)
		if !ok {
			return s
		}
		v /= 1000
		prefix = next
	}
}

func nextPrefix(prefix string) (string, bool) {
	for i, p := range prefixes {
		if p == prefix && i+1 < len(prefixes) {
			return prefixes[i+1], true
		}
	}
	return "", false
}
