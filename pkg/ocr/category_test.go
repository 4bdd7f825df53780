package ocr

import "testing"

func TestExtractCategoryPriorityOrder(t *testing.T) {
	// Food is checked before Travel, so a mixed text resolves to Food.
	if got := ExtractCategory("zomato order, uber drop"); got != CategoryFood {
		t.Fatalf("expected Food got %s", got)
	}
}

func TestExtractCategorySingleHit(t *testing.T) {
	if got := ExtractCategory("APOLLO HOSPITAL BILLING DESK"); got != CategoryHealth {
		t.Fatalf("expected Health got %s", got)
	}
	if got := ExtractCategory("monthly mobile recharge"); got != CategoryBills {
		t.Fatalf("expected Bills got %s", got)
	}
}

func TestExtractCategoryDefaultsToOther(t *testing.T) {
	if got := ExtractCategory("miscellaneous receipt"); got != CategoryOther {
		t.Fatalf("expected Other got %s", got)
	}
}
