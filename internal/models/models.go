package models

// All lists every persisted model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&City{},
		&Business{},
		&Customer{},
		&Service{},
		&Professional{},
		&AvailableDay{},
		&Appointment{},
		&User{},
		&AuditLog{},
	}
}
