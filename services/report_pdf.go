package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const (
	bodyFontSize   = 11
	paragraphSpace = 3.0
)

// GenerateReportPDF lays out a Report on Letter pages using maroto/v2 and
// returns the raw PDF bytes. Nothing is written to disk.
func GenerateReportPDF(r Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(18).
		WithTopMargin(15).
		WithRightMargin(18).
		WithTitle(r.Title, true).
		WithAuthor(r.Company, true).
		WithSubject(fmt.Sprintf("Carbon footprint for %s", r.FurnitureType), true).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	for _, s := range r.Sections {
		switch s.Key {
		case SectionHeader:
			addTitle(m, s)
		case SectionCompetitorBenchmarking:
			addHeading(m, s.Heading)
			addCompetitorTable(m, r.Competitors)
		default:
			addHeading(m, s.Heading)
			addParagraphs(m, s.Paragraphs)
		}
	}

	addReportFooter(m, r)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addTitle renders the header section: centred bold title followed by the
// "prepared for" lines.
func addTitle(m core.Maroto, s Section) {
	m.AddAutoRow(
		col.New(12).Add(
			text.New(s.Heading, props.Text{
				Size:   14,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Bottom: 4,
			}),
		),
	)
	addParagraphs(m, s.Paragraphs)
	m.AddRows(row.New(4))
}

func addHeading(m core.Maroto, heading string) {
	m.AddAutoRow(
		col.New(12).Add(
			text.New(heading, props.Text{
				Size:   12,
				Style:  fontstyle.Bold,
				Align:  align.Left,
				Bottom: 2,
			}),
		),
	)
}

// addParagraphs lets maroto measure each paragraph so wrapped text gets
// exactly the height it needs.
func addParagraphs(m core.Maroto, paragraphs []string) {
	style := props.Text{
		Size:   bodyFontSize,
		Align:  align.Left,
		Bottom: 1,
	}
	for _, p := range paragraphs {
		m.AddAutoRow(col.New(12).Add(text.New(p, style)))
	}
	m.AddRows(row.New(paragraphSpace))
}

// addCompetitorTable renders the benchmark with a grey header row and
// beige body cells, all gridded.
func addCompetitorTable(m core.Maroto, t Table) {
	gridColor := &props.Color{Red: 0, Green: 0, Blue: 0}
	headerCell := &props.Cell{
		BackgroundColor: &props.Color{Red: 128, Green: 128, Blue: 128},
		BorderType:      border.Full,
		BorderColor:     gridColor,
		BorderThickness: 0.3,
	}
	bodyCell := &props.Cell{
		BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 220},
		BorderType:      border.Full,
		BorderColor:     gridColor,
		BorderThickness: 0.3,
	}
	headerText := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Center,
		Top:   1.5,
		Color: &props.Color{Red: 245, Green: 245, Blue: 245},
	}
	bodyText := props.Text{
		Size:  10,
		Align: align.Center,
		Top:   1.5,
	}

	widths := []int{4, 4, 4}

	header := row.New(8)
	for i, c := range t.Columns {
		header.Add(col.New(widths[i%len(widths)]).Add(text.New(c, headerText)).WithStyle(headerCell))
	}
	m.AddRows(header)

	for _, cells := range t.Rows {
		r := row.New(7)
		for i, c := range cells {
			r.Add(col.New(widths[i%len(widths)]).Add(text.New(c, bodyText)).WithStyle(bodyCell))
		}
		m.AddRows(r)
	}

	m.AddRows(row.New(6))
}

// addReportFooter prints the report ID and generation date.
func addReportFooter(m core.Maroto, r Report) {
	generated := "n/a"
	if !r.GeneratedAt.IsZero() {
		generated = r.GeneratedAt.Format("02 Jan 2006")
	}
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Report %s, generated on %s", r.ID, generated),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
