package httperr

import "errors"

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

var businessMessages = map[string]string{
	"invalid_state":          "Operação não permitida no status atual do agendamento.",
	"reference_mismatch":     "Cliente, serviço e profissional devem pertencer ao mesmo negócio.",
	"business_not_found":     "Negócio não encontrado.",
	"customer_not_found":     "Cliente não encontrado.",
	"service_not_found":      "Serviço não encontrado.",
	"professional_not_found": "Profissional não encontrado.",

	"professional_business_mismatch": "O profissional não pertence a este negócio.",
	"invalid_date":           "Data inválida.",
	"invalid_datetime":       "Data/hora inválida.",
	"invalid_id":             "Identificador inválido.",
	"invalid_body":           "Corpo da requisição inválido.",
	"email_domain_invalid":   "Domínio do e-mail não existe.",
}

func businessMessage(code string) string {
	if m, ok := businessMessages[code]; ok {
		return m
	}
	return code
}
