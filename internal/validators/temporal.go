package validators

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/agenda-negocios/internal/timezone"
)

const (
	MinServiceDuration = 60 * time.Second
	MaxAgeYears        = 120

	// MaxDurationSeconds is the largest count that still fits a time.Duration.
	MaxDurationSeconds = math.MaxInt64 / int64(time.Second)

	PriceDecimalPlaces = 2
)

// civil drops the clock and zone, keeping the calendar date as written.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// today is the calendar date of now in the reference time zone.
func today(now time.Time) time.Time {
	return civil(now.In(timezone.Location(timezone.DefaultTimezone)))
}

// ValidateDate rejects calendar dates before today (America/Sao_Paulo).
func ValidateDate(d, now time.Time) error {
	if civil(d).Before(today(now)) {
		return newError(KindTemporal, CodePastValue,
			"A data não pode estar no passado. Recebido: %s, atual: %s",
			civil(d).Format(time.DateOnly), today(now).Format(time.DateOnly))
	}
	return nil
}

// ValidateDateTime rejects instants strictly before now.
func ValidateDateTime(dt, now time.Time) error {
	if dt.Before(now) {
		loc := timezone.Location(timezone.DefaultTimezone)
		return newError(KindTemporal, CodePastValue,
			"A data/hora não pode estar no passado. Recebido: %s, atual: %s",
			dt.In(loc).Format(time.RFC3339), now.In(loc).Format(time.RFC3339))
	}
	return nil
}

// ValidateBirthDate rejects future dates and ages above MaxAgeYears.
func ValidateBirthDate(d, now time.Time) error {
	born := civil(d)
	ref := today(now)

	if born.After(ref) {
		return newError(KindTemporal, CodeFutureValue, "A data de nascimento não pode estar no futuro.")
	}

	age := ref.Year() - born.Year()
	if ref.Month() < born.Month() || (ref.Month() == born.Month() && ref.Day() < born.Day()) {
		age--
	}
	if age > MaxAgeYears {
		return newError(KindTemporal, CodeImplausibleAge, "Idade calculada (%d anos) excede %d anos.", age, MaxAgeYears)
	}
	return nil
}

// ValidateDuration requires at least one minute.
func ValidateDuration(d time.Duration) error {
	if d < MinServiceDuration {
		return newError(KindRange, CodeBelowMinimum, "A duração deve ser de pelo menos 1 minuto. Recebido: %s", d)
	}
	return nil
}

// ValidateDurationSeconds checks a stored whole-second count before it is
// converted, so out-of-range values never wrap.
func ValidateDurationSeconds(seconds int64) error {
	if seconds < int64(MinServiceDuration/time.Second) {
		return newError(KindRange, CodeBelowMinimum, "A duração deve ser de pelo menos 60 segundos. Recebido: %d", seconds)
	}
	if seconds > MaxDurationSeconds {
		return newError(KindRange, CodeAboveMaximum, "Duração excede o máximo de %d segundos. Recebido: %d", MaxDurationSeconds, seconds)
	}
	return nil
}

// ValidatePrice accepts zero and any positive amount.
func ValidatePrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return newError(KindRange, CodeNegative, "O preço deve ser maior ou igual a 0. Recebido: %s", p.String())
	}
	return nil
}

// ValidatePricePrecision rejects amounts with more than two decimal places.
func ValidatePricePrecision(p decimal.Decimal) error {
	if !p.Equal(p.Round(PriceDecimalPlaces)) {
		return newError(KindRange, CodeTooManyDecimals, "O preço aceita no máximo %d casas decimais. Recebido: %s", PriceDecimalPlaces, p.String())
	}
	return nil
}
