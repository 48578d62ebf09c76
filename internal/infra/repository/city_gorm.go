package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

type CityGormRepository struct {
	*CrudGormRepository[models.City]
	db *gorm.DB
}

func NewCityGormRepository(db *gorm.DB) *CityGormRepository {
	return &CityGormRepository{
		CrudGormRepository: NewCrudGormRepository[models.City](db, Options{
			Order:         "state ASC, name ASC",
			SearchColumns: []string{"name"},
			Conflict:      "Cidade já cadastrada para esta UF.",
		}),
		db: db,
	}
}

// States lists the distinct UFs present in the table, computed on each call.
func (r *CityGormRepository) States(ctx context.Context) ([]string, error) {
	states := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.City{}).
		Distinct("state").
		Order("state ASC").
		Pluck("state", &states).Error
	return states, err
}
