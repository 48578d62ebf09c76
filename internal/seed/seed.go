// Package seed fills a development database with plausible, valid data.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/domain"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
	"github.com/BruksfildServices01/agenda-negocios/internal/timezone"
	"github.com/BruksfildServices01/agenda-negocios/internal/validators"
)

type Options struct {
	Businesses    int
	Customers     int // per business
	Services      int // per business
	Professionals int // per business
	Appointments  int // per business
	Seed          uint64
}

func DefaultOptions() Options {
	return Options{
		Businesses:    3,
		Customers:     20,
		Services:      5,
		Professionals: 3,
		Appointments:  15,
	}
}

type Result struct {
	Businesses    int `json:"businesses"`
	Customers     int `json:"customers"`
	Services      int `json:"services"`
	Professionals int `json:"professionals"`
	Appointments  int `json:"appointments"`
}

var (
	areaCodes   = []int{11, 21, 31, 61, 71, 81, 85, 86, 89}
	specialties = []string{"clínico geral", "dermatologia", "odontologia", "estética", "cabeleireiro", "barbeiro", "tatuador", "personal trainer"}
	serviceBase = []string{"consulta", "retorno", "limpeza de pele", "corte", "barba", "manicure", "avaliação", "sessão"}
)

type generator struct {
	f    *gofakeit.Faker
	cpfs map[string]bool
}

// Run seeds everything in one transaction. Zero seed means time-based.
func Run(ctx context.Context, db *gorm.DB, opts Options) (Result, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := &generator{f: gofakeit.New(seed), cpfs: map[string]bool{}}

	var res Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cityIDs []uint
		if err := tx.Model(&models.City{}).Limit(200).Pluck("id", &cityIDs).Error; err != nil {
			return err
		}

		names := map[string]bool{}
		for i := 0; i < opts.Businesses; i++ {
			b := g.business(cityIDs, names)
			if err := tx.Create(b).Error; err != nil {
				return fmt.Errorf("seed business: %w", err)
			}
			res.Businesses++

			customers := make([]models.Customer, opts.Customers)
			for j := range customers {
				customers[j] = g.customer(b.ID)
			}
			services := make([]models.Service, opts.Services)
			for j := range services {
				services[j] = g.service(b.ID, j)
			}
			professionals := make([]models.Professional, opts.Professionals)
			for j := range professionals {
				professionals[j] = g.professional(b.ID)
			}

			if len(customers) == 0 || len(services) == 0 || len(professionals) == 0 {
				return fmt.Errorf("seed: customers, services and professionals must be positive")
			}
			for _, batch := range []any{&customers, &services, &professionals} {
				if err := tx.Create(batch).Error; err != nil {
					return fmt.Errorf("seed business %d: %w", b.ID, err)
				}
			}
			res.Customers += len(customers)
			res.Services += len(services)
			res.Professionals += len(professionals)

			// one slot per hour from tomorrow 09:00, 8 slots a day
			tomorrow := timezone.StartOfDay(timezone.Now(), b.Location()).AddDate(0, 0, 1)
			for j := 0; j < opts.Appointments; j++ {
				slot := tomorrow.AddDate(0, 0, j/8).Add(time.Duration(9+j%8) * time.Hour)
				ap := models.Appointment{
					BusinessID:     b.ID,
					CustomerID:     customers[g.f.Number(0, len(customers)-1)].ID,
					ServiceID:      services[g.f.Number(0, len(services)-1)].ID,
					ProfessionalID: professionals[j%len(professionals)].ID,
					DateTime:       slot,
					Status:         domain.StatusScheduled,
					Source:         g.source(),
				}
				if err := tx.Create(&ap).Error; err != nil {
					return fmt.Errorf("seed appointment: %w", err)
				}
				res.Appointments++
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	log.Info().
		Int("businesses", res.Businesses).
		Int("customers", res.Customers).
		Int("services", res.Services).
		Int("professionals", res.Professionals).
		Int("appointments", res.Appointments).
		Msg("seed finished")
	return res, nil
}

func (g *generator) business(cityIDs []uint, used map[string]bool) *models.Business {
	name := g.f.Company()
	for used[name] {
		name = g.f.Company()
	}
	used[name] = true

	categories := domain.Categories()
	b := &models.Business{
		Name:            name,
		Category:        categories[g.f.Number(0, len(categories)-1)],
		Address:         g.f.Street(),
		PublicPhone:     g.mobile(),
		RestrictedPhone: g.landline(),
		Email:           g.f.Email(),
		Schedule:        weekdaySchedule(),
		IsActive:        true,
	}
	if len(cityIDs) > 0 {
		id := cityIDs[g.f.Number(0, len(cityIDs)-1)]
		b.CityID = &id
	}
	return b
}

func (g *generator) customer(businessID uint) models.Customer {
	birth := models.DateOf(g.f.DateRange(time.Now().AddDate(-80, 0, 0), time.Now().AddDate(-18, 0, 0)))
	c := models.Customer{
		BusinessID:         businessID,
		Name:               g.f.Name(),
		BirthDate:          &birth,
		RegistrationSource: g.source(),
		CPF:                g.cpf(),
		Phone:              g.mobile(),
		IsActive:           true,
		IsOptIn:            g.f.Bool(),
	}
	if g.f.Bool() {
		email := g.f.Email()
		c.Email = &email
	}
	return c
}

func (g *generator) service(businessID uint, i int) models.Service {
	name := serviceBase[i%len(serviceBase)]
	if i >= len(serviceBase) {
		name = fmt.Sprintf("%s %d", name, i/len(serviceBase)+1)
	}
	return models.Service{
		BusinessID:      businessID,
		Name:            name,
		Description:     "Atendimento de " + name + ".",
		Price:           decimal.NewFromFloat(g.f.Price(30, 400)).Round(2),
		DurationSeconds: int64(g.f.Number(2, 8)) * 15 * 60,
		IsActive:        true,
	}
}

func (g *generator) professional(businessID uint) models.Professional {
	return models.Professional{
		BusinessID: businessID,
		Name:       g.f.Name(),
		CPF:        g.cpf(),
		Speciality: specialties[g.f.Number(0, len(specialties)-1)],
		Email:      g.f.Email(),
		Phone:      g.mobile(),
		IsActive:   true,
		Schedule:   weekdaySchedule(),
	}
}

// cpf draws nine digits and appends the verifier digits. Never repeats
// within a run.
func (g *generator) cpf() string {
	for {
		base := fmt.Sprintf("%09d", g.f.Number(1, 999999998))
		check, err := validators.CPFCheckDigits(base)
		if err != nil {
			continue
		}
		cpf := base + check
		if validators.ValidateCPF(cpf) != nil || g.cpfs[cpf] {
			continue
		}
		g.cpfs[cpf] = true
		return cpf
	}
}

func (g *generator) mobile() string {
	ddd := areaCodes[g.f.Number(0, len(areaCodes)-1)]
	return fmt.Sprintf("(%d) 9%04d-%04d", ddd, g.f.Number(0, 9999), g.f.Number(0, 9999))
}

func (g *generator) landline() string {
	ddd := areaCodes[g.f.Number(0, len(areaCodes)-1)]
	return fmt.Sprintf("(%d) %d%03d-%04d", ddd, g.f.Number(2, 5), g.f.Number(0, 999), g.f.Number(0, 9999))
}

func (g *generator) source() domain.Source {
	sources := domain.Sources()
	return sources[g.f.Number(0, len(sources)-1)]
}

// weekdaySchedule is Monday to Friday 08:00-18:00 with lunch, Saturday morning.
func weekdaySchedule() datatypes.JSONMap {
	s := datatypes.JSONMap{}
	for day := 1; day <= 5; day++ {
		s[fmt.Sprint(day)] = map[string]any{
			"start":  "08:00",
			"end":    "18:00",
			"breaks": []any{map[string]any{"start": "12:00", "end": "13:00"}},
		}
	}
	s["6"] = map[string]any{"start": "08:00", "end": "12:00"}
	return s
}
