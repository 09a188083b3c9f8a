package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"carbonreport/collections"
	"carbonreport/commands"
	"carbonreport/handlers"
)

func main() {
	app := pocketbase.New()

	app.RootCmd.AddCommand(commands.NewReportCommand(app))

	// Create collections and seed the competitor benchmark on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		if err := collections.Setup(app); err != nil {
			app.Logger().Warn("collections setup failed", "error", err)
		}
		if err := collections.Seed(app); err != nil {
			app.Logger().Warn("seed data failed", "error", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.BindFunc(handlers.RequestIDMiddleware())

		// ── Report form ─────────────────────────────────────────
		se.Router.GET("/", handlers.HandleReportForm(app))
		se.Router.POST("/report/phone-check", handlers.HandlePhoneCheck(app))
		se.Router.POST("/report/preview", handlers.HandleReportPreview(app))

		// ── Report downloads ────────────────────────────────────
		se.Router.POST("/report/pdf", handlers.HandleReportPDF(app))
		se.Router.POST("/report/excel", handlers.HandleReportExcel(app))

		// ── Competitor benchmark ────────────────────────────────
		se.Router.GET("/competitors", handlers.HandleCompetitorList(app))
		se.Router.POST("/competitors", handlers.HandleCompetitorCreate(app))
		se.Router.POST("/competitors/{id}/save", handlers.HandleCompetitorUpdate(app))
		se.Router.DELETE("/competitors/{id}", handlers.HandleCompetitorDelete(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
