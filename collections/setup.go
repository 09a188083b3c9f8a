package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// CompetitorsCollection holds the benchmark rows shown in every report.
const CompetitorsCollection = "competitors"

// Setup programmatically creates/ensures the competitors collection exists.
func Setup(app *pocketbase.PocketBase) error {
	col, err := ensureCollection(app, CompetitorsCollection, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true, Max: 100})
		// Required on a number field rejects 0, and a free product is a valid price.
		c.Fields.Add(&core.NumberField{Name: "avg_price"})
		c.Fields.Add(&core.NumberField{Name: "emission_factor", Required: true})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		c.AddIndex("idx_competitors_name", true, "name", "")
	})
	if err != nil {
		return err
	}

	// Databases created before avg_price accepted 0 still carry the flag.
	if f, ok := col.Fields.GetByName("avg_price").(*core.NumberField); ok && f.Required {
		f.Required = false
		if err := app.Save(col); err != nil {
			return fmt.Errorf("relax avg_price on %q: %w", CompetitorsCollection, err)
		}
		app.Logger().Info("relaxed avg_price requirement", "collection", CompetitorsCollection)
	}
	return nil
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) (*core.Collection, error) {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		app.Logger().Debug("collection already exists, skipping creation", "collection", name)
		return existing, nil
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		return nil, fmt.Errorf("create collection %q: %w", name, err)
	}

	app.Logger().Info("created collection", "collection", name, "id", collection.Id)
	return collection, nil
}
