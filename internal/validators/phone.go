package validators

import "strconv"

// ValidatePhoneNumber accepts Brazilian numbers written as DDD + number,
// masked or not: 11 digits for mobiles (9 after the DDD), 10 for landlines (2-5).
func ValidatePhoneNumber(value string) error {
	phone := OnlyDigits(value)

	if len(phone) != 10 && len(phone) != 11 {
		return newError(KindFormat, CodeInvalidLength, "Telefone deve conter 10 ou 11 dígitos.")
	}

	ddd, _ := strconv.Atoi(phone[:2])
	if ddd < 11 || ddd > 99 {
		return newError(KindFormat, CodeInvalidAreaCode, "DDD inválido.")
	}

	prefix := phone[2]
	if len(phone) == 11 && prefix != '9' {
		return newError(KindFormat, CodeInvalidMobilePrefix, "Celular deve começar com 9 após o DDD.")
	}
	if len(phone) == 10 && (prefix < '2' || prefix > '5') {
		return newError(KindFormat, CodeInvalidLandlinePrefix, "Telefone fixo deve começar com 2, 3, 4 ou 5 após o DDD.")
	}

	return nil
}
