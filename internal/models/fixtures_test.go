package models_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/agenda-negocios/internal/db"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
	"github.com/BruksfildServices01/agenda-negocios/internal/timezone"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:models_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := dbpkg.OpenSQLite(dsn, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, v any) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}

func newCity(t *testing.T, db *gorm.DB) *models.City {
	c := &models.City{Name: "Teresina", State: "pi"}
	mustCreate(t, db, c)
	return c
}

func newBusiness(cityID *uint) *models.Business {
	return &models.Business{
		Name:            "clínica fagundes",
		Category:        "c1",
		CityID:          cityID,
		Address:         "Rua A, 100",
		PublicPhone:     "(89) 99595-4250",
		RestrictedPhone: "(21) 3456-7890",
		Email:           "contato@fagundes.com.br",
		Schedule: datatypes.JSONMap{
			"1": map[string]any{"start": "08:00", "end": "18:00", "breaks": []any{
				map[string]any{"start": "12:00", "end": "13:00"},
			}},
		},
		IsActive: true,
	}
}

func newCustomer(businessID uint) *models.Customer {
	return &models.Customer{
		BusinessID:         businessID,
		Name:               "joão da silva",
		RegistrationSource: "whatsapp",
		CPF:                "111.444.777-35",
		Phone:              "(89) 99595-4250",
		IsActive:           true,
	}
}

func newService(businessID uint) *models.Service {
	return &models.Service{
		BusinessID:      businessID,
		Name:            "LIMPEZA de pele",
		Description:     "Limpeza completa",
		Price:           decimal.RequireFromString("120.50"),
		DurationSeconds: 3600,
		IsActive:        true,
	}
}

func newProfessional(businessID uint) *models.Professional {
	return &models.Professional{
		BusinessID: businessID,
		Name:       "ana souza",
		CPF:        "123.456.789-09",
		Speciality: "DERMATOLOGIA",
		Email:      " Ana@Clinica.com ",
		Phone:      "(21) 3456-7890",
		IsActive:   true,
	}
}

func upcomingDate() models.Date {
	return models.DateOf(timezone.Now().AddDate(0, 0, 2))
}
