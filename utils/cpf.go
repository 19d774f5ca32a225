package utils

import "strings"

// MaskCPF formats the digits typed so far as 000.000.000-00, keeping at most
// 11 digits. Partial input gets the partial mask, except that ten digits are
// left bare: the check digits are only separated once both are typed.
func MaskCPF(value string) string {
	digits := onlyDigits(value)
	if len(digits) > 11 {
		digits = digits[:11]
	}

	switch {
	case len(digits) == 11:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
	case len(digits) == 10:
		return digits
	case len(digits) > 6:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:]
	case len(digits) > 3:
		return digits[:3] + "." + digits[3:]
	default:
		return digits
	}
}

// NormalizeCPF strips the mask punctuation. Loyalty points are keyed by it.
func NormalizeCPF(value string) string {
	return strings.NewReplacer(".", "", "-", "").Replace(strings.TrimSpace(value))
}

func onlyDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
