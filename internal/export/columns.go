package export

import (
	"prayer-roster-backend/internal/database/models"
)

// Role columns in display order, shared by the tabular formats
var roleColumns = []struct {
	Role   models.Role
	Header string // full header used by CSV and spreadsheet
	Short  string // compact header used by PDF tables
	Text   string // label used by the text listing
}{
	{models.RolePreaching, "Preaching", "Preaching", "Preaching"},
	{models.RoleMusic, "Music Team", "Music", "Music Team"},
	{models.RoleConduction, "Conduction of Animation/Prayer", "Conduction/Prayer", "Conduction/Prayer"},
	{models.RoleHospitality, "Hospitality", "Hospitality", "Hospitality"},
	{models.RoleSupply, "Supply Lead", "Supply", "Supply Lead"},
}

// tableHeaders returns the fixed 7-column header row
func tableHeaders() []string {
	headers := []string{"Date", "Weekday"}
	for _, c := range roleColumns {
		headers = append(headers, c.Header)
	}
	return headers
}

// tableCells returns the 7 cells of a row, using filler for roles not staffed that weekday
func tableCells(r Row, filler string) []string {
	cells := []string{r.Date.Format("02/01/2006"), r.Weekday.Label()}
	for _, c := range roleColumns {
		if c.Role.AppliesTo(r.Weekday) {
			cells = append(cells, r.Value(c.Role))
		} else {
			cells = append(cells, filler)
		}
	}
	return cells
}
