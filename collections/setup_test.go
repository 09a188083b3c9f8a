package collections_test

import (
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"carbonreport/collections"
	"carbonreport/testhelpers"
)

func TestSetup_CompetitorsCollectionExists(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, err := app.FindCollectionByNameOrId(collections.CompetitorsCollection)
	if err != nil {
		t.Fatalf("collection %q not found after Setup(): %v", collections.CompetitorsCollection, err)
	}
	for _, f := range []string{"name", "avg_price", "emission_factor", "sort_order", "created", "updated"} {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("competitors: missing field %q", f)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	col, _ := app.FindCollectionByNameOrId(collections.CompetitorsCollection)
	firstID := col.Id

	if err := collections.Setup(app); err != nil {
		t.Fatalf("second Setup() error: %v", err)
	}

	col, err := app.FindCollectionByNameOrId(collections.CompetitorsCollection)
	if err != nil {
		t.Fatalf("collection missing after second Setup(): %v", err)
	}
	if col.Id != firstID {
		t.Errorf("collection id changed after second Setup(): %s -> %s", firstID, col.Id)
	}
}

func TestSetup_AvgPriceAcceptsZero(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId(collections.CompetitorsCollection)
	if err != nil {
		t.Fatal(err)
	}
	field, ok := col.Fields.GetByName("avg_price").(*core.NumberField)
	if !ok {
		t.Fatalf("avg_price is not a number field")
	}
	if field.Required {
		t.Error("avg_price must not be required, it would reject 0")
	}

	record := testhelpers.CreateTestCompetitor(t, app, "Giveaway", 0, 0.8)
	if record.GetFloat("avg_price") != 0 {
		t.Errorf("expected avg_price 0, got %v", record.GetFloat("avg_price"))
	}
}

func TestSetup_RelaxesExistingAvgPrice(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId(collections.CompetitorsCollection)
	if err != nil {
		t.Fatal(err)
	}
	col.Fields.GetByName("avg_price").(*core.NumberField).Required = true
	if err := app.Save(col); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := collections.Setup(app); err != nil {
		t.Fatalf("Setup() error: %v", err)
	}

	col, err = app.FindCollectionByNameOrId(collections.CompetitorsCollection)
	if err != nil {
		t.Fatal(err)
	}
	if col.Fields.GetByName("avg_price").(*core.NumberField).Required {
		t.Error("Setup() should clear the avg_price requirement")
	}
}
