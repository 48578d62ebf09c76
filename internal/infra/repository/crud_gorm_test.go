package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/agenda-negocios/internal/db"
	"github.com/BruksfildServices01/agenda-negocios/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
	"github.com/BruksfildServices01/agenda-negocios/internal/validators"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := dbpkg.OpenSQLite(dsn, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedBusiness(t *testing.T, db *gorm.DB, name string) *models.Business {
	t.Helper()
	b := &models.Business{
		Name:            name,
		Category:        "C3",
		Address:         "Av. Brasil, 10",
		PublicPhone:     "11987654321",
		RestrictedPhone: "1133334444",
		Email:           "contato@salao.com",
		IsActive:        true,
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("seed business: %v", err)
	}
	return b
}

func newService(businessID uint, name string) *models.Service {
	return &models.Service{
		BusinessID:      businessID,
		Name:            name,
		Price:           decimal.NewFromInt(50),
		DurationSeconds: 1800,
		IsActive:        true,
	}
}

func TestCrudGorm_ListPaginatesAndFilters(t *testing.T) {
	db := setupTestDB(t)
	b1 := seedBusiness(t, db, "Salão Um")
	b2 := seedBusiness(t, db, "Salão Dois")

	repo := repository.NewCrudGormRepository[models.Service](db, repository.Options{Order: "name ASC"})
	ctx := t.Context()

	for i := 0; i < 5; i++ {
		if err := repo.Create(ctx, newService(b1.ID, fmt.Sprintf("corte %d", i))); err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.Create(ctx, newService(b2.ID, "escova")); err != nil {
		t.Fatal(err)
	}

	page, err := repo.List(ctx, repository.ListParams{Page: 2, Limit: 2, Filters: map[string]any{"business_id": b1.ID}})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 5 || len(page.Items) != 2 || page.Page != 2 || page.Limit != 2 {
		t.Fatalf("unexpected page: total=%d items=%d page=%d limit=%d", page.Total, len(page.Items), page.Page, page.Limit)
	}
	if page.Items[0].Name != "Corte 2" {
		t.Fatalf("expected Corte 2 first on page 2, got %q", page.Items[0].Name)
	}

	empty, err := repo.List(ctx, repository.ListParams{Filters: map[string]any{"business_id": 999}})
	if err != nil {
		t.Fatal(err)
	}
	if empty.Total != 0 || empty.Items == nil || empty.Limit != repository.DefaultLimit {
		t.Fatalf("empty page should carry defaults and a non-nil slice: %+v", empty)
	}

	capped, _ := repo.List(ctx, repository.ListParams{Limit: 1000})
	if capped.Limit != repository.MaxLimit {
		t.Fatalf("limit should be capped at %d, got %d", repository.MaxLimit, capped.Limit)
	}
}

func TestCrudGorm_UpdateConflictAndNotFound(t *testing.T) {
	db := setupTestDB(t)
	b := seedBusiness(t, db, "Salão Um")

	repo := repository.NewCrudGormRepository[models.Service](db, repository.Options{Conflict: "Serviço já cadastrado."})
	ctx := t.Context()

	a := newService(b.ID, "corte")
	c := newService(b.ID, "escova")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(ctx, c.ID)
	if err != nil {
		t.Fatal(err)
	}
	got.Name = "CORTE"
	err = repo.Update(ctx, got)
	ve, ok := validators.As(err)
	if !ok || ve.Kind != validators.KindUniqueness || ve.Message != "Serviço já cadastrado." {
		t.Fatalf("expected uniqueness conflict, got %v", err)
	}

	if _, err := repo.Get(ctx, 9999); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, a.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("second delete should be ErrNotFound, got %v", err)
	}
}

func TestCrudGorm_MissingReferenceIsStructuralError(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewCrudGormRepository[models.Service](db, repository.Options{})

	err := repo.Create(t.Context(), newService(4242, "corte"))
	if validators.CodeOf(err) != validators.CodeInvalidReference {
		t.Fatalf("expected invalid_reference, got %v", err)
	}
}

func TestCrudGorm_UpdateRunsHooks(t *testing.T) {
	db := setupTestDB(t)
	b := seedBusiness(t, db, "Salão Um")
	repo := repository.NewCrudGormRepository[models.Business](db, repository.Options{})

	got, err := repo.Get(t.Context(), b.ID)
	if err != nil {
		t.Fatal(err)
	}
	got.PublicPhone = "(11) 8765-4321"
	if err := repo.Update(t.Context(), got); validators.CodeOf(err) != validators.CodeInvalidLandlinePrefix {
		t.Fatalf("expected invalid_landline_prefix, got %v", err)
	}

	got.PublicPhone = "(11) 3765-4321"
	got.Country = "Portugal"
	if err := repo.Update(t.Context(), got); err != nil {
		t.Fatal(err)
	}
	reloaded, _ := repo.Get(t.Context(), b.ID)
	if reloaded.PublicPhone != "1137654321" || reloaded.Country != models.DefaultCountry {
		t.Fatalf("unexpected business after update: %+v", reloaded)
	}
}

func TestCrudGorm_Search(t *testing.T) {
	db := setupTestDB(t)
	b := seedBusiness(t, db, "Salão Um")
	repo := repository.NewCrudGormRepository[models.Service](db, repository.Options{SearchColumns: []string{"name", "description"}})
	ctx := t.Context()

	hair := newService(b.ID, "corte masculino")
	nails := newService(b.ID, "manicure")
	nails.Description = "Inclui CORTE de cutícula"
	other := newService(b.ID, "escova")
	for _, s := range []*models.Service{hair, nails, other} {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatal(err)
		}
	}

	page, err := repo.List(ctx, repository.ListParams{Search: " Corte ", Filters: map[string]any{"business_id": b.ID}})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 2 {
		t.Fatalf("expected 2 matches, got %d", page.Total)
	}
}

func TestCityRepository_States(t *testing.T) {
	db := setupTestDB(t)
	for _, c := range []models.City{{Name: "Teresina", State: "PI"}, {Name: "Parnaíba", State: "pi"}, {Name: "Fortaleza", State: "CE"}} {
		if err := db.Create(&c).Error; err != nil {
			t.Fatal(err)
		}
	}

	repo := repository.NewCityGormRepository(db)
	states, err := repo.States(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if len(states) != 2 || states[0] != "CE" || states[1] != "PI" {
		t.Fatalf("states = %v", states)
	}

	page, err := repo.List(t.Context(), repository.ListParams{Filters: map[string]any{"state": "PI"}})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 2 || page.Items[0].Name != "Parnaíba" {
		t.Fatalf("unexpected cities: %+v", page.Items)
	}
}
