package utils

import (
	"fmt"
	"math"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatThousands formata um valor numérico com separador de milhar
// (ex.: 642340 -> "642,340"). Valores com parte decimal mantêm duas casas.
func FormatThousands(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}

	rounded := RoundWithTwoDecimalPlace(v)
	whole := int64(rounded)
	cents := int64(math.Round((rounded - float64(whole)) * 100))

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := strings.Join(groups, ",")
	if cents > 0 {
		out = fmt.Sprintf("%s.%02d", out, cents)
	}

	if negative {
		return "-" + out
	}
	return out
}
