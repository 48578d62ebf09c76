package validators

import (
	"sort"
	"time"
)

// ParseTimeOfDay parses exactly "HH:MM" (two-digit hour and minute) into an
// offset from midnight.
func ParseTimeOfDay(value string) (time.Duration, error) {
	// time.Parse alone takes "8:00" for the 15 layout
	if len(value) == 5 && value[2] == ':' {
		if t, err := time.Parse("15:04", value); err == nil {
			return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
		}
	}
	return 0, newError(KindFormat, CodeInvalidTime, "Horário inválido: %q (esperado HH:MM).", value)
}

// ValidateTimeWindow checks an optional start/end pair: both or neither, and start < end.
func ValidateTimeWindow(start, end *string) error {
	if start == nil && end == nil {
		return nil
	}
	if start == nil || end == nil {
		return newError(KindStructural, CodeMissingField, "Início e fim do bloqueio devem ser informados juntos.")
	}

	s, err := ParseTimeOfDay(*start)
	if err != nil {
		return err
	}
	e, err := ParseTimeOfDay(*end)
	if err != nil {
		return err
	}
	if s >= e {
		return newError(KindRange, CodeInvalidRange, "O início do bloqueio deve ser anterior ao fim.")
	}
	return nil
}

// ValidateSchedule checks a weekly schedule keyed by weekday ("0".."6"):
//
//	{"0": {"start": "08:00", "end": "17:00", "breaks": [{"start": "12:00", "end": "13:00"}]}}
//
// Breaks must sit inside the working interval. Overlap between breaks is not checked.
func ValidateSchedule(schedule map[string]any) error {
	keys := make([]string, 0, len(schedule))
	for k := range schedule {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !isDayKey(key) {
			return newError(KindStructural, CodeInvalidDayKey, "Dia da semana inválido: %q (esperado 0 a 6).", key)
		}

		entry, ok := schedule[key].(map[string]any)
		if !ok {
			return newError(KindStructural, CodeInvalidType, "Dia %s: esperado um objeto com start e end.", key)
		}

		start, end, err := interval(entry)
		if err != nil {
			return prefixDay(key, err)
		}
		if start >= end {
			return newError(KindRange, CodeInvalidRange, "Dia %s: início deve ser anterior ao fim.", key)
		}

		raw, present := entry["breaks"]
		if !present || raw == nil {
			continue
		}
		breaks, ok := raw.([]any)
		if !ok {
			return newError(KindStructural, CodeInvalidType, "Dia %s: breaks deve ser uma lista.", key)
		}

		for i, item := range breaks {
			b, ok := item.(map[string]any)
			if !ok {
				return newError(KindStructural, CodeInvalidType, "Dia %s: pausa %d deve ser um objeto.", key, i)
			}
			bs, be, err := interval(b)
			if err != nil {
				return prefixDay(key, err)
			}
			if bs >= be {
				return newError(KindRange, CodeInvalidRange, "Dia %s: pausa %d com início posterior ao fim.", key, i)
			}
			if bs < start || be > end {
				return newError(KindRange, CodeBreakOutOfRange, "Dia %s: pausa %d fora do horário de funcionamento.", key, i)
			}
		}
	}

	return nil
}

// isDayKey accepts only the canonical keys "0".."6", so one weekday cannot
// appear twice as "1" and "01".
func isDayKey(key string) bool {
	return len(key) == 1 && key[0] >= '0' && key[0] <= '6'
}

func interval(entry map[string]any) (time.Duration, time.Duration, error) {
	rawStart, okStart := entry["start"]
	rawEnd, okEnd := entry["end"]
	if !okStart || !okEnd {
		return 0, 0, newError(KindStructural, CodeMissingField, "start e end são obrigatórios.")
	}

	startStr, ok := rawStart.(string)
	if !ok {
		return 0, 0, newError(KindFormat, CodeInvalidTime, "start deve ser um horário HH:MM.")
	}
	endStr, ok := rawEnd.(string)
	if !ok {
		return 0, 0, newError(KindFormat, CodeInvalidTime, "end deve ser um horário HH:MM.")
	}

	start, err := ParseTimeOfDay(startStr)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseTimeOfDay(endStr)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func prefixDay(key string, err error) error {
	if ve, ok := As(err); ok {
		out := *ve
		out.Message = "Dia " + key + ": " + ve.Message
		return &out
	}
	return err
}
