package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"carbonreport/collections"
	"carbonreport/services"
	"carbonreport/templates"
)

const duplicateNameMessage = "A competitor with this name already exists"

// readCompetitorForm collects and validates the competitor fields. A blank
// emission factor means the default benchmark factor.
func readCompetitorForm(r *http.Request) (templates.CompetitorFormData, services.CompetitorProfile, int) {
	data := templates.CompetitorFormData{
		Name:           strings.TrimSpace(r.FormValue("name")),
		AvgPrice:       strings.TrimSpace(r.FormValue("avg_price")),
		EmissionFactor: strings.TrimSpace(r.FormValue("emission_factor")),
		SortOrder:      strings.TrimSpace(r.FormValue("sort_order")),
		Errors:         make(map[string]string),
	}
	profile := services.CompetitorProfile{
		Name:           data.Name,
		EmissionFactor: services.DefaultCompetitorEmissionFactor,
	}

	if data.Name == "" {
		data.Errors["name"] = "Name is required"
	} else if len(data.Name) > 100 {
		data.Errors["name"] = "Name must be at most 100 characters"
	}

	if v, err := strconv.ParseFloat(data.AvgPrice, 64); err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		data.Errors["avg_price"] = "Must be a number"
	} else if v < 0 {
		data.Errors["avg_price"] = "Must not be negative"
	} else {
		profile.AvgPriceHKD = v
	}

	if data.EmissionFactor != "" {
		if v, err := strconv.ParseFloat(data.EmissionFactor, 64); err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			data.Errors["emission_factor"] = "Must be a number"
		} else if v <= 0 {
			data.Errors["emission_factor"] = "Must be greater than zero"
		} else {
			profile.EmissionFactor = v
		}
	}

	sortOrder := 0
	if data.SortOrder != "" {
		if v, err := strconv.Atoi(data.SortOrder); err != nil {
			data.Errors["sort_order"] = "Must be a whole number"
		} else {
			sortOrder = v
		}
	}

	return data, profile, sortOrder
}

// loadCompetitorsPage reads the stored rows for the list view.
func loadCompetitorsPage(app *pocketbase.PocketBase, form templates.CompetitorFormData) (templates.CompetitorsPageData, error) {
	records, err := collections.FindCompetitorRecords(app)
	if err != nil {
		return templates.CompetitorsPageData{}, err
	}

	rows := make([]templates.CompetitorRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, templates.CompetitorRow{
			ID:             r.Id,
			Name:           r.GetString("name"),
			AvgPrice:       r.GetFloat("avg_price"),
			EmissionFactor: r.GetFloat("emission_factor"),
			SortOrder:      r.GetInt("sort_order"),
		})
	}

	if form.Errors == nil {
		form.Errors = make(map[string]string)
	}
	return templates.CompetitorsPageData{
		Rows:          rows,
		Form:          form,
		UsingDefaults: len(rows) == 0,
	}, nil
}

func renderCompetitors(e *core.RequestEvent, data templates.CompetitorsPageData) error {
	var component templ.Component
	if isHTMX(e.Request) {
		component = templates.CompetitorsContent(data)
	} else {
		component = templates.CompetitorsPage(data)
	}
	return component.Render(e.Request.Context(), e.Response)
}

// HandleCompetitorList shows the configured benchmark competitors.
func HandleCompetitorList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := loadCompetitorsPage(app, templates.CompetitorFormData{})
		if err != nil {
			logger(e).Error("competitor_list: could not load competitors", "error", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return renderCompetitors(e, data)
	}
}

// HandleCompetitorCreate adds a competitor to the benchmark table.
func HandleCompetitorCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		form, profile, sortOrder := readCompetitorForm(e.Request)
		if form.Errors["name"] == "" {
			taken, err := collections.CompetitorNameTaken(app, profile.Name, "")
			if err != nil {
				logger(e).Error("competitor_create: could not check name", "name", profile.Name, "error", err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			if taken {
				form.Errors["name"] = duplicateNameMessage
			}
		}
		if len(form.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data, err := loadCompetitorsPage(app, form)
			if err != nil {
				logger(e).Error("competitor_create: could not load competitors", "error", err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			return renderCompetitors(e, data)
		}

		col, err := app.FindCollectionByNameOrId(collections.CompetitorsCollection)
		if err != nil {
			logger(e).Error("competitor_create: could not find competitors collection", "error", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		collections.SetCompetitorFields(record, profile, sortOrder)
		if err := app.Save(record); err != nil {
			logger(e).Error("competitor_create: could not save competitor", "name", profile.Name, "error", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save competitor. Please try again.")
		}

		logger(e).Info("competitor_create: saved", "id", record.Id, "name", profile.Name)
		SetToast(e, "success", "Competitor added")

		data, err := loadCompetitorsPage(app, templates.CompetitorFormData{})
		if err != nil {
			logger(e).Error("competitor_create: could not reload competitors", "error", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return renderCompetitors(e, data)
	}
}

// HandleCompetitorUpdate saves edits to an existing competitor row.
func HandleCompetitorUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		record, err := app.FindRecordById(collections.CompetitorsCollection, id)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Competitor not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		form, profile, sortOrder := readCompetitorForm(e.Request)
		if len(form.Errors) > 0 {
			logger(e).Warn("competitor_update: invalid input", "id", id, "errors", form.Errors)
			return ErrorToast(e, http.StatusBadRequest, "Please check the competitor values")
		}

		taken, err := collections.CompetitorNameTaken(app, profile.Name, record.Id)
		if err != nil {
			logger(e).Error("competitor_update: could not check name", "id", id, "error", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		if taken {
			return ErrorToast(e, http.StatusBadRequest, duplicateNameMessage)
		}

		collections.SetCompetitorFields(record, profile, sortOrder)
		if err := app.Save(record); err != nil {
			logger(e).Error("competitor_update: could not save competitor", "id", id, "error", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save competitor. Please try again.")
		}

		logger(e).Info("competitor_update: saved", "id", id, "name", profile.Name)
		SetToast(e, "success", "Competitor updated")

		data, err := loadCompetitorsPage(app, templates.CompetitorFormData{})
		if err != nil {
			logger(e).Error("competitor_update: could not reload competitors", "error", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return renderCompetitors(e, data)
	}
}

// HandleCompetitorDelete removes a competitor from the benchmark table.
func HandleCompetitorDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		record, err := app.FindRecordById(collections.CompetitorsCollection, id)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Competitor not found")
		}

		if err := app.Delete(record); err != nil {
			logger(e).Error("competitor_delete: could not delete competitor", "id", id, "error", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		logger(e).Info("competitor_delete: deleted", "id", id)
		SetToast(e, "success", "Competitor removed")

		data, err := loadCompetitorsPage(app, templates.CompetitorFormData{})
		if err != nil {
			logger(e).Error("competitor_delete: could not reload competitors", "error", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return renderCompetitors(e, data)
	}
}
