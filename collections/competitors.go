package collections

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pocketbase/pocketbase/core"

	"carbonreport/services"
)

// SetCompetitorFields copies a profile onto a competitors record.
func SetCompetitorFields(r *core.Record, p services.CompetitorProfile, sortOrder int) {
	r.Set("name", p.Name)
	r.Set("avg_price", p.AvgPriceHKD)
	r.Set("emission_factor", p.EmissionFactor)
	r.Set("sort_order", sortOrder)
}

// CompetitorFromRecord converts a competitors record to a profile.
func CompetitorFromRecord(r *core.Record) services.CompetitorProfile {
	return services.CompetitorProfile{
		Name:           r.GetString("name"),
		AvgPriceHKD:    r.GetFloat("avg_price"),
		EmissionFactor: r.GetFloat("emission_factor"),
	}
}

// FindCompetitorRecords returns the configured competitors in display order.
func FindCompetitorRecords(app core.App) ([]*core.Record, error) {
	records, err := app.FindRecordsByFilter(CompetitorsCollection, "1=1", "sort_order,name", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("query competitors: %w", err)
	}
	return records, nil
}

// CompetitorNameTaken reports whether another record already uses name.
// exceptID excludes the record being edited; pass "" when creating.
func CompetitorNameTaken(app core.App, name, exceptID string) (bool, error) {
	record, err := app.FindFirstRecordByData(CompetitorsCollection, "name", name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("look up competitor %q: %w", name, err)
	}
	return record.Id != exceptID, nil
}

// CompetitorProfiles loads the benchmark configuration. An empty collection
// yields services.DefaultCompetitors so reports always carry a table.
func CompetitorProfiles(app core.App) ([]services.CompetitorProfile, error) {
	records, err := FindCompetitorRecords(app)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return append([]services.CompetitorProfile(nil), services.DefaultCompetitors...), nil
	}
	profiles := make([]services.CompetitorProfile, 0, len(records))
	for _, r := range records {
		profiles = append(profiles, CompetitorFromRecord(r))
	}
	return profiles, nil
}
