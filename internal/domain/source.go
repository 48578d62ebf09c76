// Package domain holds the closed vocabularies shared by the entities.
// Values are stored upper-case; parsing is case-insensitive.
package domain

import "strings"

// Source is the channel a customer or appointment came from.
type Source string

const (
	SourceWhatsapp Source = "WHATSAPP"
	SourceWebsite  Source = "WEBSITE"
)

func Sources() []Source {
	return []Source{SourceWhatsapp, SourceWebsite}
}

func (s Source) IsValid() bool {
	switch s {
	case SourceWhatsapp, SourceWebsite:
		return true
	}
	return false
}

func ParseSource(value string) (Source, bool) {
	s := Source(strings.ToUpper(value))
	return s, s.IsValid()
}
