package ocr

import "testing"

func TestExtractAmountKeywordLargest(t *testing.T) {
	// Subtotal precedes the grand total; the larger keyword-anchored value wins.
	got := ExtractAmount("Subtotal 200.00\nTotal: 450.00")
	if got != "450.00" {
		t.Fatalf("expected 450.00 got %q", got)
	}
}

func TestExtractAmountStripsThousandsCommas(t *testing.T) {
	got := ExtractAmount("Rs. 1,234.00 paid at counter")
	if got != "1234.00" {
		t.Fatalf("expected 1234.00 got %q", got)
	}
}

func TestExtractAmountRupeeSymbol(t *testing.T) {
	got := ExtractAmount("₹ 500\nsome other line")
	if got != "500" {
		t.Fatalf("expected 500 got %q", got)
	}
}

func TestExtractAmountFallbackLastDecimal(t *testing.T) {
	// No keyword context: last bare two-decimal number in document order,
	// not the largest.
	got := ExtractAmount("random text 12.50 and then 99.99 end")
	if got != "99.99" {
		t.Fatalf("expected 99.99 got %q", got)
	}
	got = ExtractAmount("big 500.00 then small 12.50")
	if got != "12.50" {
		t.Fatalf("expected last match 12.50 got %q", got)
	}
}

func TestExtractAmountNoNumbers(t *testing.T) {
	if got := ExtractAmount("thank you visit again"); got != "" {
		t.Fatalf("expected empty got %q", got)
	}
}

func TestExtractAmountPreservesMatchedString(t *testing.T) {
	// The original matched substring is returned, not a reformatted value.
	got := ExtractAmount("TOTAL: 0450.50")
	if got != "0450.50" {
		t.Fatalf("expected 0450.50 got %q", got)
	}
}
