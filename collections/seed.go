package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"carbonreport/services"
)

// Seed fills the competitors collection with the built-in placeholder
// benchmark. It is safe to call on every startup because it returns early
// if any competitor records already exist, so operator edits survive.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId(CompetitorsCollection)
	if err != nil {
		return fmt.Errorf("seed: could not find %s collection: %w", CompetitorsCollection, err)
	}
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query competitors: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	app.Logger().Info("seed: competitors collection is empty, inserting defaults",
		"count", len(services.DefaultCompetitors))

	return app.RunInTransaction(func(txApp core.App) error {
		for i, p := range services.DefaultCompetitors {
			r := core.NewRecord(col)
			SetCompetitorFields(r, p, i+1)
			if err := txApp.Save(r); err != nil {
				return fmt.Errorf("seed: save competitor %q: %w", p.Name, err)
			}
		}
		return nil
	})
}
