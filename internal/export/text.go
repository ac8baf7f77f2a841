package export

import (
	"fmt"
	"strings"
)

const textRule = 60

// NotFilledMarker is printed under a slot with no display text for its roles
const NotFilledMarker = "(not filled)"

// RenderText produces a human readable listing grouped by month
func RenderText(doc *Document) ([]byte, error) {
	title := doc.Title
	if title == "" {
		title = DefaultTitle
	}

	var lines []string
	rule := strings.Repeat("=", textRule)

	lines = append(lines, rule, strings.ToUpper(title))
	switch {
	case doc.Period.Month > 0 && doc.Period.Year > 0:
		lines = append(lines, doc.Period.Label())
	case doc.Period.Year > 0:
		lines = append(lines, fmt.Sprintf("Year %d", doc.Period.Year))
	default:
		lines = append(lines, "All slots")
	}
	lines = append(lines, rule, "")

	for _, group := range GroupByMonth(doc.Rows) {
		heading := strings.ToUpper(group.Heading())
		lines = append(lines, heading, strings.Repeat("-", len(heading)), "")

		for _, r := range group.Rows {
			lines = append(lines, fmt.Sprintf("%s - %s", r.Date.Format("02/01/2006"), r.Weekday.Label()))
			for _, c := range roleColumns {
				if !c.Role.AppliesTo(r.Weekday) {
					continue
				}
				if v := r.Value(c.Role); v != "" {
					lines = append(lines, fmt.Sprintf("  %s: %s", c.Text, v))
				}
			}
			if !r.Filled() {
				lines = append(lines, "  "+NotFilledMarker)
			}
			lines = append(lines, "")
		}
		lines = append(lines, "")
	}

	lines = append(lines, rule, doc.Footer(), rule)
	return []byte(strings.Join(lines, "\n")), nil
}
