package ffcalendar

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

const impactIconMarker = "calendar__impact-icon--"

// textPolicy strips every tag from a scraped cell before its text is used.
// Calendar cells nest spans and links, and titles occasionally carry markup.
var textPolicy = bluemonday.StrictPolicy()

// parseRows extracts every calendar row from the page markup in document
// order. Document order is the canonical event ordering and is never
// re-sorted. A page without calendar rows yields an empty slice, not an
// error - that is how weekend and far-future pages look.
func parseRows(markup []byte) ([]*RawRow, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("error parsing calendar markup: %w", err)
	}

	var rows []*RawRow
	doc.Find("tr.calendar__row").Each(func(_ int, row *goquery.Selection) {
		rows = append(rows, &RawRow{
			Time:        cellText(row, "td.calendar__time"),
			Currency:    cellText(row, "td.calendar__currency"),
			ImpactToken: impactToken(row),
			EventName:   cellText(row, "td.calendar__event"),
			Forecast:    cellText(row, "td.calendar__forecast"),
			Previous:    cellText(row, "td.calendar__previous"),
		})
	})

	return rows, nil
}

// cellText returns the sanitized text of the first matching cell.
// A missing cell yields an empty string, not an error.
func cellText(row *goquery.Selection, selector string) string {
	cell := row.Find(selector).First()
	if cell.Length() == 0 {
		return ""
	}

	h, err := cell.Html()
	if err != nil {
		return ""
	}

	text := html.UnescapeString(textPolicy.Sanitize(h))
	return strings.Join(strings.Fields(text), " ")
}

// impactToken reads the impact marker class from the nested icon span.
// Class attributes are compound (multiple tokens on one element), so each
// token is checked for the fixed icon marker; the suffix after the marker
// is the impact token (e.g. "high", "medium", "holiday").
func impactToken(row *goquery.Selection) string {
	var token string
	row.Find("td.calendar__impact span").EachWithBreak(func(_ int, span *goquery.Selection) bool {
		class, ok := span.Attr("class")
		if !ok {
			return true
		}
		for _, cls := range strings.Fields(class) {
			if i := strings.Index(cls, impactIconMarker); i >= 0 {
				token = cls[i+len(impactIconMarker):]
				return false
			}
		}
		return true
	})

	return token
}
