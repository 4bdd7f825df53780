package ocr

import (
	"regexp"
	"time"
)

// dateRE matches DD-MM-YYYY / DD/MM/YYYY and the ISO-ordered YYYY-MM-DD forms.
// Purely syntactic; no calendar validation.
var dateRE = regexp.MustCompile(`[0-9]{2}[-/][0-9]{2}[-/][0-9]{4}|[0-9]{4}[-/][0-9]{2}[-/][0-9]{2}`)

// ExtractDate returns the first date-shaped substring in document order, or
// today's date as YYYY-MM-DD when the text contains none.
func ExtractDate(text string) string {
	if m := dateRE.FindString(text); m != "" {
		return m
	}
	return time.Now().Format("2006-01-02")
}
