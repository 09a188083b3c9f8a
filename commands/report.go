// Package commands holds the extra CLI subcommands registered on the
// PocketBase root command.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/spf13/cobra"

	"carbonreport/collections"
	"carbonreport/services"
)

// NewReportCommand returns the `report` subcommand, which writes a report
// for one order without going through the web form.
func NewReportCommand(app *pocketbase.PocketBase) *cobra.Command {
	var (
		furnitureType string
		format        string
		outDir        string
		order         = services.DefaultOrder()
	)

	cmd := &cobra.Command{
		Use:          "report",
		Short:        "Generate a carbon footprint report for one order",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ft, err := services.ParseFurnitureType(furnitureType)
			if err != nil {
				return err
			}
			order.FurnitureType = ft

			if err := order.Validate(); err != nil {
				return fmt.Errorf("invalid order: %w", err)
			}
			if w := services.PhoneWarning(order.ClientPhone); w != "" {
				app.Logger().Warn("report: "+w, "phone", order.ClientPhone)
			}

			if !app.IsBootstrapped() {
				if err := app.Bootstrap(); err != nil {
					return fmt.Errorf("bootstrap: %w", err)
				}
			}
			if err := collections.Setup(app); err != nil {
				return fmt.Errorf("setup collections: %w", err)
			}

			profiles, err := collections.CompetitorProfiles(app)
			if err != nil {
				app.Logger().Warn("report: could not load competitors, using defaults", "error", err)
				profiles = append([]services.CompetitorProfile(nil), services.DefaultCompetitors...)
			}

			report := services.NewReport(order, profiles, services.DefaultProfile, time.Now())

			format = strings.ToLower(strings.TrimSpace(format))
			if format == "excel" {
				format = "xlsx"
			}

			var data []byte
			switch format {
			case "pdf":
				data, err = services.GenerateReportPDF(report)
			case "xlsx":
				data, err = services.GenerateReportExcel(report)
			default:
				return fmt.Errorf("unknown format %q (want pdf or xlsx)", format)
			}
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			path := filepath.Join(outDir, services.ReportFilename(ft, report.GeneratedAt, format))
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			app.Logger().Info("report: written",
				"reportId", report.ID,
				"path", path,
				"totalFootprintKg", report.Estimate.TotalFootprintKg,
			)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&furnitureType, "type", string(services.FurnitureChair), "furniture type (Chair, Table, Sofa, Shelf, Cabinet)")
	flags.Float64Var(&order.Length, "length", services.DefaultLength, "length in cm")
	flags.Float64Var(&order.Width, "width", services.DefaultWidth, "width in cm")
	flags.Float64Var(&order.Height, "height", services.DefaultHeight, "height in cm")
	flags.IntVar(&order.Quantity, "quantity", services.DefaultQuantity, "number of units")
	flags.StringVar(&order.ClientName, "client", "", "client name printed on the report")
	flags.StringVar(&order.ClientEmail, "email", "", "client email")
	flags.StringVar(&order.ClientPhone, "phone", "", "client phone (digits only)")
	flags.StringVar(&format, "format", "pdf", "output format: pdf or xlsx")
	flags.StringVarP(&outDir, "out", "o", ".", "directory to write the report to")

	return cmd
}
