package repository_test

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/agenda-negocios/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
	"github.com/BruksfildServices01/agenda-negocios/internal/validators"
)

func TestAppointmentGorm_ListForPeriod(t *testing.T) {
	db := setupTestDB(t)
	b := seedBusiness(t, db, "Salão Um")

	customer := &models.Customer{BusinessID: b.ID, Name: "ana", RegistrationSource: "WEBSITE", CPF: "11144477735", Phone: "11987654321"}
	service := newService(b.ID, "corte")
	p1 := &models.Professional{BusinessID: b.ID, Name: "bia", CPF: "12345678909", Speciality: "cabelo", Email: "bia@salao.com", Phone: "11912345678"}
	p2 := &models.Professional{BusinessID: b.ID, Name: "caio", CPF: "52998224725", Speciality: "barba", Email: "caio@salao.com", Phone: "11912345679"}
	for _, v := range []any{customer, service, p1, p2} {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("seed %T: %v", v, err)
		}
	}

	loc := b.Location()
	day := time.Now().In(loc).AddDate(0, 0, 3)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)

	repo := repository.NewAppointmentGormRepository(db)
	ctx := t.Context()
	book := func(p *models.Professional, at time.Time) {
		t.Helper()
		ap := &models.Appointment{BusinessID: b.ID, CustomerID: customer.ID, ServiceID: service.ID, ProfessionalID: p.ID, DateTime: at, Source: "WEBSITE"}
		if err := repo.CreateAppointment(ctx, ap); err != nil {
			t.Fatalf("book %s: %v", at, err)
		}
	}

	book(p1, start.Add(15*time.Hour))
	book(p1, start.Add(9*time.Hour))
	book(p2, start.Add(10*time.Hour))
	book(p1, end) // primeiro instante do dia seguinte

	all, err := repo.ListAppointmentsForPeriod(ctx, b.ID, nil, start, end)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 appointments in the day, got %d", len(all))
	}
	if !all[0].DateTime.Equal(start.Add(9*time.Hour)) || all[0].Customer == nil || all[0].Service == nil || all[0].Professional == nil {
		t.Fatalf("expected ordered rows with references loaded: %+v", all[0])
	}

	only, err := repo.ListAppointmentsForPeriod(ctx, b.ID, &p2.ID, start, end)
	if err != nil {
		t.Fatal(err)
	}
	if len(only) != 1 || only[0].ProfessionalID != p2.ID {
		t.Fatalf("professional filter not applied: %+v", only)
	}

	dup := &models.Appointment{BusinessID: b.ID, CustomerID: customer.ID, ServiceID: service.ID, ProfessionalID: p2.ID, DateTime: start.Add(10 * time.Hour), Source: "WHATSAPP"}
	if err := repo.CreateAppointment(ctx, dup); validators.KindOf(err) != validators.KindUniqueness {
		t.Fatalf("expected uniqueness conflict, got %v", err)
	}
}
