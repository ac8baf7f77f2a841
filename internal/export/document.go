// Package export renders roster rows as PDF, spreadsheet, CSV and plain text.
package export

import (
	"fmt"
	"strings"
	"time"

	"prayer-roster-backend/internal/database/models"
)

// Format identifies an export representation
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatText Format = "txt"
)

// BaseFilename is the stem of every exported file name
const BaseFilename = "prayer_group_roster"

// DefaultTitle heads PDF and text documents
const DefaultTitle = "Prayer Group Roster"

// Row is one slot with its per-role display strings already resolved
type Row struct {
	Date        time.Time
	Weekday     models.WeekdayKind
	Preaching   string
	Music       string
	Conduction  string
	Hospitality string
	Supply      string
}

// Value returns the display string for a role
func (r Row) Value(role models.Role) string {
	switch role {
	case models.RolePreaching:
		return r.Preaching
	case models.RoleMusic:
		return r.Music
	case models.RoleConduction:
		return r.Conduction
	case models.RoleHospitality:
		return r.Hospitality
	case models.RoleSupply:
		return r.Supply
	}
	return ""
}

// Filled reports whether any role applicable to the row's weekday has display text
func (r Row) Filled() bool {
	for _, role := range r.Weekday.Roles() {
		if r.Value(role) != "" {
			return true
		}
	}
	return false
}

// Document is the input shared by every formatter
type Document struct {
	Title       string
	Period      Period
	Rows        []Row
	GeneratedAt time.Time
}

// Period is the month/year filter a document was produced for
type Period struct {
	Month int // 0 when not filtering by month
	Year  int // 0 when not filtering by year
}

// Label renders the period for titles: "March 2025", "2025" or ""
func (p Period) Label() string {
	switch {
	case p.Month > 0 && p.Year > 0:
		return fmt.Sprintf("%s %d", time.Month(p.Month), p.Year)
	case p.Year > 0:
		return fmt.Sprintf("%d", p.Year)
	}
	return ""
}

// FullTitle joins the document title and period label
func (d *Document) FullTitle() string {
	title := d.Title
	if title == "" {
		title = DefaultTitle
	}
	if label := d.Period.Label(); label != "" {
		return title + " - " + label
	}
	return title
}

// Footer is the generation stamp printed under PDF and text documents
func (d *Document) Footer() string {
	return fmt.Sprintf("Generated on %s at %s", d.GeneratedAt.Format("02/01/2006"), d.GeneratedAt.Format("15:04"))
}

// MonthGroup is the run of rows sharing a calendar month
type MonthGroup struct {
	Year  int
	Month time.Month
	Rows  []Row
}

// Heading renders the group's month, e.g. "March 2025"
func (g MonthGroup) Heading() string {
	return fmt.Sprintf("%s %d", g.Month, g.Year)
}

// HasTuesday reports whether any row in the group is a Tuesday slot
func (g MonthGroup) HasTuesday() bool {
	for _, r := range g.Rows {
		if r.Weekday == models.WeekdayTuesday {
			return true
		}
	}
	return false
}

// GroupByMonth groups rows by year-month in order of first appearance
func GroupByMonth(rows []Row) []MonthGroup {
	var groups []MonthGroup
	index := make(map[string]int)
	for _, r := range rows {
		key := r.Date.Format("2006-01")
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, MonthGroup{Year: r.Date.Year(), Month: r.Date.Month()})
		}
		groups[i].Rows = append(groups[i].Rows, r)
	}
	return groups
}

// ParseFormat maps query values and legacy endpoint suffixes to a Format
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, true
	case "xlsx", "excel":
		return FormatXLSX, true
	case "csv":
		return FormatCSV, true
	case "txt", "text":
		return FormatText, true
	}
	return "", false
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatText:
		return "text/plain; charset=utf-8"
	}
	return "application/octet-stream"
}

// Filename encodes the period filter: base[_YYYY_MM|_YYYY].ext
func Filename(f Format, p Period) string {
	name := BaseFilename
	switch {
	case p.Month > 0 && p.Year > 0:
		name += fmt.Sprintf("_%d_%02d", p.Year, p.Month)
	case p.Year > 0:
		name += fmt.Sprintf("_%d", p.Year)
	}
	return name + "." + string(f)
}

// Render produces the document in the requested format
func Render(f Format, doc *Document) ([]byte, error) {
	if len(doc.Rows) == 0 {
		return nil, ErrEmptyDocument
	}
	switch f {
	case FormatPDF:
		return RenderPDF(doc)
	case FormatXLSX:
		return RenderXLSX(doc)
	case FormatCSV:
		return RenderCSV(doc)
	case FormatText:
		return RenderText(doc)
	}
	return nil, fmt.Errorf("unsupported export format %q", f)
}
