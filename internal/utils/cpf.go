package utils

import (
	"strings"
	"unicode"
)

// CPFLength is the number of digits in a Brazilian national id
const CPFLength = 11

// FormatCPF strips every non-digit character from a CPF
func FormatCPF(cpf string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cpf)
}

// ValidateCPF reports whether a normalised CPF has exactly 11 digits.
// Check digits are not verified.
func ValidateCPF(cpf string) bool {
	if len(cpf) != CPFLength {
		return false
	}
	for _, r := range cpf {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// NormalizeCPF formats a CPF and reports whether the result is valid
func NormalizeCPF(cpf string) (string, bool) {
	formatted := FormatCPF(cpf)
	return formatted, ValidateCPF(formatted)
}
