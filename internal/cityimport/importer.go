package cityimport

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/metrics"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

// Fetcher is satisfied by *Client; tests plug in fixed lists.
type Fetcher interface {
	FetchCities(ctx context.Context) ([]Record, error)
}

type Result struct {
	Fetched int `json:"fetched"`
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

type Importer struct {
	db      *gorm.DB
	fetcher Fetcher
}

func NewImporter(db *gorm.DB, fetcher Fetcher) *Importer {
	return &Importer{db: db, fetcher: fetcher}
}

// Run inserts every city missing from the table. Existing (name, state)
// pairs are skipped, so re-running is a no-op. A failure rolls back the
// whole batch.
func (i *Importer) Run(ctx context.Context) (Result, error) {
	records, err := i.fetcher.FetchCities(ctx)
	if err != nil {
		return Result{}, err
	}

	res := Result{Fetched: len(records)}
	err = i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, r := range records {
			var n int64
			if err := tx.Model(&models.City{}).
				Where("name = ? AND state = ?", r.Name, r.State).
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				res.Skipped++
				continue
			}

			city := models.City{Name: r.Name, State: r.State}
			if err := tx.Create(&city).Error; err != nil {
				return fmt.Errorf("cityimport: create %s/%s: %w", r.Name, r.State, err)
			}
			res.Created++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	metrics.CityImportRecords.WithLabelValues("created").Add(float64(res.Created))
	metrics.CityImportRecords.WithLabelValues("skipped").Add(float64(res.Skipped))

	log.Info().
		Int("fetched", res.Fetched).
		Int("created", res.Created).
		Int("skipped", res.Skipped).
		Msg("city import finished")

	return res, nil
}

// Purge removes every city. Businesses keep existing with city_id NULL.
func (i *Importer) Purge(ctx context.Context) (int64, error) {
	res := i.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.City{})
	if res.Error != nil {
		return 0, res.Error
	}
	log.Info().Int64("deleted", res.RowsAffected).Msg("cities purged")
	return res.RowsAffected, nil
}
