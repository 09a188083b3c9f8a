package collections_test

import (
	"testing"

	"carbonreport/collections"
	"carbonreport/services"
	"carbonreport/testhelpers"
)

func TestCompetitorProfiles_FallsBackToDefaults(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	profiles, err := collections.CompetitorProfiles(app)
	if err != nil {
		t.Fatalf("CompetitorProfiles() error: %v", err)
	}
	if len(profiles) != len(services.DefaultCompetitors) {
		t.Fatalf("expected defaults, got %d profiles", len(profiles))
	}

	// Mutating the result must not touch the package defaults.
	profiles[0].Name = "Changed"
	if services.DefaultCompetitors[0].Name != "IKEA" {
		t.Error("CompetitorProfiles() returned the shared defaults slice")
	}
}

func TestCompetitorProfiles_UsesConfiguredRowsInOrder(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	second := testhelpers.CreateTestCompetitor(t, app, "Beta Furnishing", 2100, 0.7)
	second.Set("sort_order", 2)
	if err := app.Save(second); err != nil {
		t.Fatalf("save: %v", err)
	}
	first := testhelpers.CreateTestCompetitor(t, app, "Alpha Home", 900, 0.85)
	first.Set("sort_order", 1)
	if err := app.Save(first); err != nil {
		t.Fatalf("save: %v", err)
	}

	profiles, err := collections.CompetitorProfiles(app)
	if err != nil {
		t.Fatalf("CompetitorProfiles() error: %v", err)
	}
	want := []services.CompetitorProfile{
		{Name: "Alpha Home", AvgPriceHKD: 900, EmissionFactor: 0.85},
		{Name: "Beta Furnishing", AvgPriceHKD: 2100, EmissionFactor: 0.7},
	}
	if len(profiles) != len(want) {
		t.Fatalf("expected %d profiles, got %d", len(want), len(profiles))
	}
	for i := range want {
		if profiles[i] != want[i] {
			t.Errorf("profile %d = %+v, want %+v", i, profiles[i], want[i])
		}
	}
}

func TestCompetitorNameTaken(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	ikea := testhelpers.CreateTestCompetitor(t, app, "IKEA", 499, 0.8)

	tests := []struct {
		name     string
		lookup   string
		exceptID string
		want     bool
	}{
		{"unused name", "OVO", "", false},
		{"existing name on create", "IKEA", "", true},
		{"own name on update", "IKEA", ikea.Id, false},
		{"existing name on another record", "IKEA", "other", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collections.CompetitorNameTaken(app, tt.lookup, tt.exceptID)
			if err != nil {
				t.Fatalf("CompetitorNameTaken() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("CompetitorNameTaken(%q, %q) = %v, want %v", tt.lookup, tt.exceptID, got, tt.want)
			}
		})
	}
}
