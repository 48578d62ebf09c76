package validators

import "strings"

// OnlyDigits strips every character that is not an ASCII digit.
func OnlyDigits(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CPFCheckDigits computes the two verifier digits for the first nine digits of a CPF.
func CPFCheckDigits(base string) (string, error) {
	digits := OnlyDigits(base)
	if len(digits) != 9 {
		return "", newError(KindFormat, CodeInvalidFormat, "CPF base deve conter 9 dígitos.")
	}
	for i := 9; i < 11; i++ {
		digits += string(rune('0' + cpfDigit(digits, i)))
	}
	return digits[9:], nil
}

// cpfDigit returns the verifier digit at position pos (9 or 10), weighting each
// preceding digit by its distance to pos+1.
func cpfDigit(cpf string, pos int) int {
	sum := 0
	for n := 0; n < pos; n++ {
		sum += int(cpf[n]-'0') * (pos + 1 - n)
	}
	return (sum * 10 % 11) % 10
}

// ValidateCPF checks length, repeated digits and both verifier digits.
func ValidateCPF(value string) error {
	cpf := OnlyDigits(value)

	if len(cpf) != 11 {
		return newError(KindFormat, CodeInvalidFormat, "CPF inválido: deve conter 11 dígitos.")
	}

	if strings.Count(cpf, cpf[:1]) == 11 {
		return newError(KindFormat, CodeInvalidFormat, "CPF inválido: todos os dígitos são iguais.")
	}

	for pos := 9; pos < 11; pos++ {
		if cpfDigit(cpf, pos) != int(cpf[pos]-'0') {
			return newError(KindFormat, CodeChecksumMismatch, "CPF inválido: dígitos verificadores não conferem.")
		}
	}

	return nil
}
