package models_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/agenda-negocios/internal/domain"
	"github.com/BruksfildServices01/agenda-negocios/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
	"github.com/BruksfildServices01/agenda-negocios/internal/timezone"
	"github.com/BruksfildServices01/agenda-negocios/internal/validators"
)

func TestBusiness_StandardizationRoundTrip(t *testing.T) {
	db := newTestDB(t)
	city := newCity(t, db)

	b := newBusiness(&city.ID)
	b.Email = "USER@X.COM "
	b.RestrictedPhone = "(12) 3456-7890"
	mustCreate(t, db, b)

	var got models.Business
	if err := db.First(&got, b.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.Name != "Clínica Fagundes" {
		t.Fatalf("name = %q", got.Name)
	}
	if got.Email != "user@x.com" {
		t.Fatalf("email = %q", got.Email)
	}
	if got.RestrictedPhone != "1234567890" || got.PublicPhone != "89995954250" {
		t.Fatalf("phones = %q, %q", got.PublicPhone, got.RestrictedPhone)
	}
	if got.Category != domain.CategoryMedicalClinic || got.Country != "Brasil" {
		t.Fatalf("category/country = %q/%q", got.Category, got.Country)
	}
	if got.Timezone != "America/Sao_Paulo" {
		t.Fatalf("timezone = %q", got.Timezone)
	}
	if _, ok := got.Schedule["1"]; !ok {
		t.Fatalf("schedule lost: %#v", got.Schedule)
	}

	var stored models.City
	db.First(&stored, city.ID)
	if stored.State != "PI" {
		t.Fatalf("city state = %q", stored.State)
	}
}

func TestBusiness_DuplicateIsUniquenessConflict(t *testing.T) {
	db := newTestDB(t)
	city := newCity(t, db)
	repo := repository.NewCrudGormRepository[models.Business](db, repository.Options{})
	ctx := t.Context()

	if err := repo.Create(ctx, newBusiness(&city.ID)); err != nil {
		t.Fatalf("first create: %v", err)
	}

	dup := newBusiness(&city.ID)
	dup.Name = "CLÍNICA FAGUNDES"
	err := repo.Create(ctx, dup)
	if validators.KindOf(err) != validators.KindUniqueness {
		t.Fatalf("expected uniqueness conflict, got %v", err)
	}

	other := newBusiness(&city.ID)
	other.Category = "c2"
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("different category should be accepted: %v", err)
	}
}

func TestBusiness_ValidationFailures(t *testing.T) {
	db := newTestDB(t)

	cases := []struct {
		name   string
		mutate func(*models.Business)
		field  string
		code   validators.Code
	}{
		{"category", func(b *models.Business) { b.Category = "C9" }, "category", validators.CodeInvalidEnum},
		{"public phone", func(b *models.Business) { b.PublicPhone = "123" }, "public_phone", validators.CodeInvalidLength},
		{"email", func(b *models.Business) { b.Email = "nope" }, "email", validators.CodeInvalidFormat},
		{"schedule", func(b *models.Business) {
			b.Schedule = datatypes.JSONMap{"0": map[string]any{"start": "08:00", "end": "17:00", "breaks": []any{
				map[string]any{"start": "17:00", "end": "18:00"},
			}}}
		}, "schedule", validators.CodeBreakOutOfRange},
		{"name", func(b *models.Business) { b.Name = "  " }, "name", validators.CodeMissingField},
		{"timezone", func(b *models.Business) { b.Timezone = "Brasil/Piaui" }, "timezone", validators.CodeInvalidFormat},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBusiness(nil)
			tc.mutate(b)
			err := db.Create(b).Error
			ve, ok := validators.As(err)
			if !ok || ve.Code != tc.code || ve.Field != tc.field {
				t.Fatalf("expected %s on %s, got %v", tc.code, tc.field, err)
			}
		})
	}

	var n int64
	db.Model(&models.Business{}).Count(&n)
	if n != 0 {
		t.Fatalf("no business should have been saved, found %d", n)
	}
}

func TestCustomer_StandardizeAndValidate(t *testing.T) {
	db := newTestDB(t)
	b := newBusiness(nil)
	mustCreate(t, db, b)

	c := newCustomer(b.ID)
	email := "  Maria @Email.COM"
	c.Email = &email
	birth := models.NewDate(1990, 5, 20)
	c.BirthDate = &birth
	mustCreate(t, db, c)

	var got models.Customer
	db.First(&got, c.ID)
	if got.Name != "João Da Silva" || got.CPF != "11144477735" || got.RegistrationSource != domain.SourceWhatsapp {
		t.Fatalf("unexpected customer: %+v", got)
	}
	if got.Email == nil || *got.Email != "maria@email.com" {
		t.Fatalf("email = %v", got.Email)
	}
	if got.BirthDate == nil || got.BirthDate.String() != "1990-05-20" {
		t.Fatalf("birth date = %v", got.BirthDate)
	}

	bad := newCustomer(b.ID)
	bad.CPF = "123.456.789-00"
	if err := db.Create(bad).Error; validators.CodeOf(err) != validators.CodeChecksumMismatch {
		t.Fatalf("expected checksum_mismatch, got %v", err)
	}

	future := models.DateOf(timezone.Now().AddDate(0, 0, 3))
	bad = newCustomer(b.ID)
	bad.CPF = "123.456.789-09"
	bad.BirthDate = &future
	if err := db.Create(bad).Error; validators.CodeOf(err) != validators.CodeFutureValue {
		t.Fatalf("expected future_value, got %v", err)
	}

	bad = newCustomer(b.ID)
	bad.CPF = "123.456.789-09"
	bad.RegistrationSource = "instagram"
	if err := db.Create(bad).Error; validators.CodeOf(err) != validators.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum_value, got %v", err)
	}
}

func TestCustomer_UniquePerBusinessCPF(t *testing.T) {
	db := newTestDB(t)
	b1 := newBusiness(nil)
	mustCreate(t, db, b1)
	b2 := newBusiness(nil)
	b2.Name = "Outra Clínica"
	mustCreate(t, db, b2)

	repo := repository.NewCrudGormRepository[models.Customer](db, repository.Options{})
	if err := repo.Create(t.Context(), newCustomer(b1.ID)); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(t.Context(), newCustomer(b2.ID)); err != nil {
		t.Fatalf("same CPF in another business must be accepted: %v", err)
	}
	if err := repo.Create(t.Context(), newCustomer(b1.ID)); validators.KindOf(err) != validators.KindUniqueness {
		t.Fatalf("expected uniqueness conflict, got %v", err)
	}
}

func TestService_Rules(t *testing.T) {
	db := newTestDB(t)
	b := newBusiness(nil)
	mustCreate(t, db, b)

	s := newService(b.ID)
	mustCreate(t, db, s)
	var got models.Service
	db.First(&got, s.ID)
	if got.Name != "Limpeza de pele" {
		t.Fatalf("name = %q", got.Name)
	}
	if !got.Price.Equal(decimal.RequireFromString("120.50")) || got.Duration() != time.Hour {
		t.Fatalf("price/duration = %s/%s", got.Price, got.Duration())
	}

	free := newService(b.ID)
	free.Name = "Avaliação"
	free.Price = decimal.Zero
	free.DurationSeconds = 60
	mustCreate(t, db, free)

	short := newService(b.ID)
	short.Name = "Rápido"
	short.DurationSeconds = 59
	if err := db.Create(short).Error; validators.CodeOf(err) != validators.CodeBelowMinimum {
		t.Fatalf("expected below_minimum, got %v", err)
	}

	negative := newService(b.ID)
	negative.Name = "Desconto"
	negative.Price = decimal.RequireFromString("-0.01")
	if err := db.Create(negative).Error; validators.CodeOf(err) != validators.CodeNegative {
		t.Fatalf("expected negative, got %v", err)
	}

	cases := []struct {
		name  string
		price string
		secs  int64
		field string
		want  validators.Code
	}{
		{"Quase grátis", "-0.004", 3600, "price", validators.CodeNegative},
		{"Fracionado", "10.005", 3600, "price", validators.CodeTooManyDecimals},
		{"Estouro negativo", "10", -18446744013, "duration_seconds", validators.CodeBelowMinimum},
		{"Estouro positivo", "10", math.MaxInt64, "duration_seconds", validators.CodeAboveMaximum},
	}
	for _, c := range cases {
		svc := newService(b.ID)
		svc.Name = c.name
		svc.Price = decimal.RequireFromString(c.price)
		svc.DurationSeconds = c.secs
		err := db.Create(svc).Error
		ve, ok := validators.As(err)
		if !ok || ve.Code != c.want || ve.Field != c.field {
			t.Errorf("%s: expected %s on %s, got %v", c.name, c.want, c.field, err)
		}
	}

	var stored int64
	db.Model(&models.Service{}).Where("business_id = ?", b.ID).Count(&stored)
	if stored != 2 {
		t.Fatalf("only the two valid services should be stored, got %d", stored)
	}
}

func TestProfessional_Standardize(t *testing.T) {
	db := newTestDB(t)
	b := newBusiness(nil)
	mustCreate(t, db, b)

	p := newProfessional(b.ID)
	mustCreate(t, db, p)
	if p.Name != "Ana Souza" || p.Speciality != "Dermatologia" || p.Email != "ana@clinica.com" || p.CPF != "12345678909" {
		t.Fatalf("unexpected professional: %+v", p)
	}
	if p.Schedule == nil {
		t.Fatal("schedule should default to an empty map")
	}
}

func TestAvailableDay_Rules(t *testing.T) {
	db := newTestDB(t)
	b := newBusiness(nil)
	mustCreate(t, db, b)
	p := newProfessional(b.ID)
	mustCreate(t, db, p)

	repo := repository.NewCrudGormRepository[models.AvailableDay](db, repository.Options{})
	ctx := t.Context()
	day := upcomingDate()

	if err := repo.Create(ctx, &models.AvailableDay{BusinessID: b.ID, Date: day}); err != nil {
		t.Fatalf("create: %v", err)
	}
	// NULL professional counts as a value: a second "all professionals" row conflicts
	if err := repo.Create(ctx, &models.AvailableDay{BusinessID: b.ID, Date: day}); validators.KindOf(err) != validators.KindUniqueness {
		t.Fatalf("expected uniqueness conflict, got %v", err)
	}
	if err := repo.Create(ctx, &models.AvailableDay{BusinessID: b.ID, ProfessionalID: &p.ID, Date: day}); err != nil {
		t.Fatalf("professional-specific day should be accepted: %v", err)
	}

	past := models.DateOf(timezone.Now().AddDate(0, 0, -2))
	if err := repo.Create(ctx, &models.AvailableDay{BusinessID: b.ID, Date: past}); validators.CodeOf(err) != validators.CodePastValue {
		t.Fatalf("expected past_value, got %v", err)
	}

	start := "14:00"
	if err := repo.Create(ctx, &models.AvailableDay{BusinessID: b.ID, Date: models.DateOf(timezone.Now().AddDate(0, 0, 5)), BlockedStartTime: &start}); validators.CodeOf(err) != validators.CodeMissingField {
		t.Fatalf("expected missing_field for half window, got %v", err)
	}
}

func TestAvailableDay_UpdateKeepsLoadedDate(t *testing.T) {
	db := newTestDB(t)
	b := newBusiness(nil)
	mustCreate(t, db, b)

	// a row whose date already passed, written without hooks
	past := models.DateOf(timezone.Now().AddDate(0, 0, -10))
	if err := db.Exec("INSERT INTO available_days (business_id, professional_scope, date, created_at, updated_at) VALUES (?, 0, ?, ?, ?)",
		b.ID, past, time.Now(), time.Now()).Error; err != nil {
		t.Fatal(err)
	}

	var day models.AvailableDay
	if err := db.First(&day).Error; err != nil {
		t.Fatal(err)
	}
	start, end := "09:00", "10:00"
	day.BlockedStartTime, day.BlockedEndTime = &start, &end
	if err := db.Save(&day).Error; err != nil {
		t.Fatalf("editing other fields of a past day should be allowed: %v", err)
	}

	day.Date = models.DateOf(timezone.Now().AddDate(0, 0, -1))
	if err := db.Save(&day).Error; validators.CodeOf(err) != validators.CodePastValue {
		t.Fatalf("moving to another past date should fail, got %v", err)
	}
}

func TestAppointment_Rules(t *testing.T) {
	db := newTestDB(t)
	b := newBusiness(nil)
	mustCreate(t, db, b)
	c := newCustomer(b.ID)
	mustCreate(t, db, c)
	s := newService(b.ID)
	mustCreate(t, db, s)
	p := newProfessional(b.ID)
	mustCreate(t, db, p)

	when := time.Now().Add(72 * time.Hour).Truncate(time.Minute)
	ap := &models.Appointment{BusinessID: b.ID, CustomerID: c.ID, ServiceID: s.ID, ProfessionalID: p.ID, DateTime: when, Source: "Website"}
	mustCreate(t, db, ap)
	if ap.Status != domain.StatusScheduled || ap.Source != domain.SourceWebsite {
		t.Fatalf("status/source = %s/%s", ap.Status, ap.Source)
	}

	repo := repository.NewCrudGormRepository[models.Appointment](db, repository.Options{})
	dup := &models.Appointment{BusinessID: b.ID, CustomerID: c.ID, ServiceID: s.ID, ProfessionalID: p.ID, DateTime: when, Source: "whatsapp"}
	if err := repo.Create(t.Context(), dup); validators.KindOf(err) != validators.KindUniqueness {
		t.Fatalf("expected uniqueness conflict, got %v", err)
	}

	past := &models.Appointment{BusinessID: b.ID, CustomerID: c.ID, ServiceID: s.ID, ProfessionalID: p.ID, DateTime: time.Now().Add(-time.Minute), Source: "whatsapp"}
	if err := db.Create(past).Error; validators.CodeOf(err) != validators.CodePastValue {
		t.Fatalf("expected past_value, got %v", err)
	}

	bad := &models.Appointment{BusinessID: b.ID, CustomerID: c.ID, ServiceID: s.ID, ProfessionalID: p.ID, DateTime: when.Add(time.Hour), Source: "whatsapp", Status: "pending"}
	if err := db.Create(bad).Error; validators.CodeOf(err) != validators.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum_value, got %v", err)
	}
}

func TestCascades(t *testing.T) {
	db := newTestDB(t)
	city := newCity(t, db)
	b := newBusiness(&city.ID)
	mustCreate(t, db, b)
	c := newCustomer(b.ID)
	mustCreate(t, db, c)
	s := newService(b.ID)
	mustCreate(t, db, s)
	p := newProfessional(b.ID)
	mustCreate(t, db, p)
	mustCreate(t, db, &models.Appointment{BusinessID: b.ID, CustomerID: c.ID, ServiceID: s.ID, ProfessionalID: p.ID, DateTime: time.Now().Add(24 * time.Hour), Source: "whatsapp"})
	mustCreate(t, db, &models.AvailableDay{BusinessID: b.ID, ProfessionalID: &p.ID, Date: upcomingDate()})

	// removing a professional drops its appointments and days
	if err := db.Delete(&models.Professional{}, p.ID).Error; err != nil {
		t.Fatal(err)
	}
	var n int64
	db.Model(&models.Appointment{}).Count(&n)
	if n != 0 {
		t.Fatalf("appointments left after professional delete: %d", n)
	}
	db.Model(&models.AvailableDay{}).Count(&n)
	if n != 0 {
		t.Fatalf("available days left after professional delete: %d", n)
	}

	// removing the city keeps the business
	if err := db.Delete(&models.City{}, city.ID).Error; err != nil {
		t.Fatal(err)
	}
	var got models.Business
	if err := db.First(&got, b.ID).Error; err != nil {
		t.Fatalf("business should survive city delete: %v", err)
	}
	if got.CityID != nil {
		t.Fatalf("city_id should be NULL, got %v", *got.CityID)
	}

	// removing the business drops everything under it
	if err := db.Delete(&models.Business{}, b.ID).Error; err != nil {
		t.Fatal(err)
	}
	db.Model(&models.Customer{}).Count(&n)
	if n != 0 {
		t.Fatalf("customers left after business delete: %d", n)
	}
	db.Model(&models.Service{}).Count(&n)
	if n != 0 {
		t.Fatalf("services left after business delete: %d", n)
	}
}

func TestRepository_GetMissingIsNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCrudGormRepository[models.Business](db, repository.Options{})
	if _, err := repo.Get(t.Context(), 42); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(t.Context(), 42); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}
