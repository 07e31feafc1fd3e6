// Package anticipation contains the installment anticipation use cases.
package anticipation

import (
	"fmt"
	"strconv"
)

// FormatInstallmentRange renders a human-readable summary of which ordinals
// were anticipated. Consecutive runs collapse to a range, a lone ordinal is
// spelled out and a non-contiguous pick falls back to a plain count.
func FormatInstallmentRange(ordinals []int, total int) string {
	if len(ordinals) == 0 {
		return ""
	}
	if len(ordinals) == 1 {
		return fmt.Sprintf("Installment %d of %d", ordinals[0], total)
	}

	consecutive := true
	for i := 1; i < len(ordinals); i++ {
		if ordinals[i] != ordinals[i-1]+1 {
			consecutive = false
			break
		}
	}

	if consecutive {
		first := ordinals[0]
		last := ordinals[len(ordinals)-1]
		return fmt.Sprintf("Installments %d–%d of %d", first, last, total)
	}
	return strconv.Itoa(len(ordinals)) + " installments of " + strconv.Itoa(total)
}

// GenerateDescription builds the settlement entry description from the
// anticipated count and the series description.
func GenerateDescription(count int, seriesDescription string) string {
	return fmt.Sprintf("Anticipation of %d installments - %s", count, seriesDescription)
}

// GenerateNote builds the default settlement note when the caller does not
// provide one.
func GenerateNote(ordinals []int, total int) string {
	return "Anticipation: " + FormatInstallmentRange(ordinals, total)
}
