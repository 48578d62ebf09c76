package validators

import (
	"strings"

	"github.com/BruksfildServices01/agenda-negocios/internal/domain"
)

// ValidateSource accepts WHATSAPP or WEBSITE, any case.
func ValidateSource(value string) error {
	if _, ok := domain.ParseSource(value); !ok {
		return enumError("source", value, domain.Sources())
	}
	return nil
}

// ValidateStatus accepts the appointment status keys, any case.
func ValidateStatus(value string) error {
	if _, ok := domain.ParseStatus(value); !ok {
		return enumError("status", value, domain.Statuses())
	}
	return nil
}

// ValidateBusinessCategory accepts C1..C7, any case.
func ValidateBusinessCategory(value string) error {
	if _, ok := domain.ParseCategory(value); !ok {
		return enumError("category", value, domain.Categories())
	}
	return nil
}

func enumError[T ~string](name, got string, allowed []T) error {
	values := make([]string, len(allowed))
	for i, v := range allowed {
		values[i] = string(v)
	}
	return newError(KindEnum, CodeInvalidEnum,
		"%s deve ser um de: %s. Recebido: %q", name, strings.Join(values, ", "), got)
}
