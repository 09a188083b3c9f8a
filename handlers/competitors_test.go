package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"carbonreport/collections"
	"carbonreport/testhelpers"
)

func TestHandleCompetitorList_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/competitors", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCompetitorList(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Competitor Benchmark", "No competitors configured", "ADD COMPETITOR", `value="0.8"`)
}

func TestHandleCompetitorList_WithRows(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rec1 := testhelpers.CreateTestCompetitor(t, app, "IKEA", 499, 0.8)

	req := httptest.NewRequest(http.MethodGet, "/competitors", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCompetitorList(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, `value="IKEA"`, "/competitors/"+rec1.Id+"/save")
	testhelpers.AssertHTMLNotContains(t, body, "No competitors configured", "<!doctype html>")
}

func TestHandleCompetitorCreate_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{}
	form.Set("name", "Pricerite")
	form.Set("avg_price", "899")
	form.Set("emission_factor", "0.7")
	form.Set("sort_order", "4")
	req := newFormRequest("/competitors", form)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCompetitorCreate(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), `value="Pricerite"`)

	profiles, err := collections.CompetitorProfiles(app)
	if err != nil {
		t.Fatalf("CompetitorProfiles: %v", err)
	}
	if len(profiles) != 1 || profiles[0].Name != "Pricerite" || profiles[0].EmissionFactor != 0.7 {
		t.Errorf("unexpected stored profiles: %+v", profiles)
	}
}

func TestHandleCompetitorCreate_DefaultFactor(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{}
	form.Set("name", "Pricerite")
	form.Set("avg_price", "899")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, newFormRequest("/competitors", form), rec)

	if err := HandleCompetitorCreate(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	profiles, err := collections.CompetitorProfiles(app)
	if err != nil {
		t.Fatalf("CompetitorProfiles: %v", err)
	}
	if len(profiles) != 1 || profiles[0].EmissionFactor != 0.8 {
		t.Errorf("expected default factor 0.8, got %+v", profiles)
	}
}

func TestHandleCompetitorCreate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		form  map[string]string
		field string
	}{
		{"missing name", map[string]string{"avg_price": "100"}, "Name is required"},
		{"bad price", map[string]string{"name": "X", "avg_price": "cheap"}, "Must be a number"},
		{"negative price", map[string]string{"name": "X", "avg_price": "-1"}, "Must not be negative"},
		{"infinite price", map[string]string{"name": "X", "avg_price": "Inf"}, "Must be a number"},
		{"zero factor", map[string]string{"name": "X", "avg_price": "1", "emission_factor": "0"}, "Must be greater than zero"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testhelpers.NewTestApp(t)
			form := url.Values{}
			for k, v := range tt.form {
				form.Set(k, v)
			}
			req := newFormRequest("/competitors", form)
			req.Header.Set("HX-Request", "true")
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, req, rec)

			if err := HandleCompetitorCreate(app)(e); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			testhelpers.AssertHTMLContains(t, rec.Body.String(), tt.field)

			records, err := collections.FindCompetitorRecords(app)
			if err != nil {
				t.Fatal(err)
			}
			if len(records) != 0 {
				t.Errorf("expected nothing saved, found %d records", len(records))
			}
		})
	}
}

func TestHandleCompetitorCreate_DuplicateName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCompetitor(t, app, "IKEA", 499, 0.8)

	form := url.Values{}
	form.Set("name", "IKEA")
	form.Set("avg_price", "600")
	req := newFormRequest("/competitors", form)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCompetitorCreate(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "A competitor with this name already exists")

	records, err := collections.FindCompetitorRecords(app)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Errorf("expected the original record only, found %d", len(records))
	}
}

func TestHandleCompetitorCreate_ZeroPrice(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{}
	form.Set("name", "Free Chairs Co")
	form.Set("avg_price", "0")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, newFormRequest("/competitors", form), rec)

	if err := HandleCompetitorCreate(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	record, err := app.FindFirstRecordByData(collections.CompetitorsCollection, "name", "Free Chairs Co")
	if err != nil {
		t.Fatalf("expected record to be saved: %v", err)
	}
	if record.GetFloat("avg_price") != 0 {
		t.Errorf("expected avg_price 0, got %v", record.GetFloat("avg_price"))
	}
}

func TestHandleCompetitorUpdate_ZeroPrice(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestCompetitor(t, app, "OVO", 2500, 0.8)

	form := url.Values{}
	form.Set("name", "OVO")
	form.Set("avg_price", "0")
	req := newFormRequest("/competitors/"+record.Id+"/save", form)
	req.SetPathValue("id", record.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCompetitorUpdate(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	updated, err := app.FindRecordById(collections.CompetitorsCollection, record.Id)
	if err != nil {
		t.Fatal(err)
	}
	if updated.GetFloat("avg_price") != 0 {
		t.Errorf("expected avg_price 0, got %v", updated.GetFloat("avg_price"))
	}
}

func TestHandleCompetitorUpdate_DuplicateName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCompetitor(t, app, "IKEA", 499, 0.8)
	record := testhelpers.CreateTestCompetitor(t, app, "OVO", 2500, 0.8)

	form := url.Values{}
	form.Set("name", "IKEA")
	form.Set("avg_price", "2500")
	req := newFormRequest("/competitors/"+record.Id+"/save", form)
	req.SetPathValue("id", record.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCompetitorUpdate(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	if trigger := rec.Header().Get("HX-Trigger"); !strings.Contains(trigger, "already exists") {
		t.Errorf("expected duplicate name toast, got %q", trigger)
	}
}

func TestHandleCompetitorUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestCompetitor(t, app, "Ulferts", 3500, 0.8)

	form := url.Values{}
	form.Set("name", "Ulferts")
	form.Set("avg_price", "3200")
	form.Set("emission_factor", "0.75")
	req := newFormRequest("/competitors/"+record.Id+"/save", form)
	req.SetPathValue("id", record.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCompetitorUpdate(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	updated, err := app.FindRecordById(collections.CompetitorsCollection, record.Id)
	if err != nil {
		t.Fatal(err)
	}
	if updated.GetFloat("avg_price") != 3200 || updated.GetFloat("emission_factor") != 0.75 {
		t.Errorf("record not updated: price=%v factor=%v",
			updated.GetFloat("avg_price"), updated.GetFloat("emission_factor"))
	}
}

func TestHandleCompetitorUpdate_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := newFormRequest("/competitors/missing/save", url.Values{})
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCompetitorUpdate(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleCompetitorDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestCompetitor(t, app, "OVO", 2500, 0.8)

	req := httptest.NewRequest(http.MethodDelete, "/competitors/"+record.Id, nil)
	req.SetPathValue("id", record.Id)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCompetitorDelete(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if _, err := app.FindRecordById(collections.CompetitorsCollection, record.Id); err == nil {
		t.Error("expected record to be deleted")
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "No competitors configured")
}

func TestHandleCompetitorDelete_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/competitors/missing", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCompetitorDelete(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
