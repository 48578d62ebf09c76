package domain

import "strings"

// BusinessCategory is one of the seven fixed codes C1..C7.
type BusinessCategory string

const (
	CategoryMedicalClinic BusinessCategory = "C1"
	CategoryDentalClinic  BusinessCategory = "C2"
	CategoryBeautySalon   BusinessCategory = "C3"
	CategoryBarbershop    BusinessCategory = "C4"
	CategoryAesthetics    BusinessCategory = "C5"
	CategoryTattooStudio  BusinessCategory = "C6"
	CategoryFitnessStudio BusinessCategory = "C7"
)

func Categories() []BusinessCategory {
	return []BusinessCategory{
		CategoryMedicalClinic,
		CategoryDentalClinic,
		CategoryBeautySalon,
		CategoryBarbershop,
		CategoryAesthetics,
		CategoryTattooStudio,
		CategoryFitnessStudio,
	}
}

func (c BusinessCategory) IsValid() bool {
	return c.Label() != ""
}

func (c BusinessCategory) Label() string {
	switch c {
	case CategoryMedicalClinic:
		return "Clínica médica"
	case CategoryDentalClinic:
		return "Clínica odontológica"
	case CategoryBeautySalon:
		return "Salão de beleza"
	case CategoryBarbershop:
		return "Barbearia"
	case CategoryAesthetics:
		return "Estética"
	case CategoryTattooStudio:
		return "Estúdio de tatuagem"
	case CategoryFitnessStudio:
		return "Estúdio de pilates e academia"
	}
	return ""
}

func ParseCategory(value string) (BusinessCategory, bool) {
	c := BusinessCategory(strings.ToUpper(value))
	return c, c.IsValid()
}
