package collections_test

import (
	"testing"

	"carbonreport/collections"
	"carbonreport/services"
	"carbonreport/testhelpers"
)

func TestSeed_CreatesDefaults(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	records, err := collections.FindCompetitorRecords(app)
	if err != nil {
		t.Fatalf("FindCompetitorRecords() error: %v", err)
	}
	if len(records) != len(services.DefaultCompetitors) {
		t.Fatalf("expected %d competitors, got %d", len(services.DefaultCompetitors), len(records))
	}
	for i, r := range records {
		got := collections.CompetitorFromRecord(r)
		if got != services.DefaultCompetitors[i] {
			t.Errorf("competitor %d = %+v, want %+v", i, got, services.DefaultCompetitors[i])
		}
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	records, _ := collections.FindCompetitorRecords(app)
	if len(records) != 3 {
		t.Errorf("expected 3 competitors after idempotent seed, got %d", len(records))
	}
}

func TestSeed_KeepsOperatorData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCompetitor(t, app, "Local Maker", 1800, 0.9)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	records, _ := collections.FindCompetitorRecords(app)
	if len(records) != 1 {
		t.Fatalf("expected seed to skip a configured collection, got %d records", len(records))
	}
	if records[0].GetString("name") != "Local Maker" {
		t.Errorf("name = %q, want Local Maker", records[0].GetString("name"))
	}
}
