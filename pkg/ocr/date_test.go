package ocr

import (
	"testing"
	"time"
)

func TestExtractDateFirstMatch(t *testing.T) {
	if got := ExtractDate("Date: 05-08-2024\nTotal 99.00"); got != "05-08-2024" {
		t.Fatalf("expected 05-08-2024 got %q", got)
	}
	if got := ExtractDate("issued 2024/08/05 10:31"); got != "2024/08/05" {
		t.Fatalf("expected 2024/08/05 got %q", got)
	}
}

func TestExtractDateDefaultsToToday(t *testing.T) {
	want := time.Now().Format("2006-01-02")
	if got := ExtractDate("no date on this receipt"); got != want {
		t.Fatalf("expected today %s got %q", want, got)
	}
}

func TestExtractDateIsSyntacticOnly(t *testing.T) {
	// Calendar validity is not checked; 31-02 still matches.
	if got := ExtractDate("31/02/2024"); got != "31/02/2024" {
		t.Fatalf("expected 31/02/2024 got %q", got)
	}
}
