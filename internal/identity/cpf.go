package identity

import "strings"

// Digits strips everything but digits from s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CleanCPF strips everything but digits from a CPF.
func CleanCPF(cpf string) string {
	return Digits(cpf)
}

// ValidCPF reports whether the cleaned CPF has exactly 11 digits.
func ValidCPF(cpf string) bool {
	return len(CleanCPF(cpf)) == 11
}

// FormatCPF renders an 11-digit CPF as 000.000.000-00. Anything else is
// returned unchanged.
func FormatCPF(cpf string) string {
	digits := CleanCPF(cpf)
	if len(digits) != 11 {
		return cpf
	}
	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
}
