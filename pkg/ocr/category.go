package ocr

import "strings"

// categoryTable is the ordered keyword taxonomy. Order is a deliberate
// tie-break: a text containing both a Food and a Travel keyword resolves to
// Food because Food is checked first. Kept as data so the taxonomy can be
// extended without touching extraction logic.
var categoryTable = []struct {
	tag      CategoryTag
	keywords []string
}{
	{CategoryFood, []string{"zomato", "swiggy", "restaurant", "food", "cafe", "dining", "bake", "lunch", "dinner"}},
	{CategoryTravel, []string{"uber", "ola", "fuel", "petrol", "diesel", "transport", "taxi", "metro"}},
	{CategoryShopping, []string{"amazon", "flipkart", "mart", "store", "retail", "fashions", "mall"}},
	{CategoryHealth, []string{"pharmacy", "hospital", "doctor", "clinic", "medical", "medicine"}},
	{CategoryBills, []string{"electricity", "water", "recharge", "mobile", "internet", "subscription"}},
}

// ExtractCategory classifies recognized text into a spend category. The first
// category whose keyword set has any substring hit in the lower-cased text
// wins; no hit at all degrades to Other.
func ExtractCategory(text string) CategoryTag {
	t := strings.ToLower(text)
	for _, entry := range categoryTable {
		for _, w := range entry.keywords {
			if strings.Contains(t, w) {
				return entry.tag
			}
		}
	}
	return CategoryOther
}
