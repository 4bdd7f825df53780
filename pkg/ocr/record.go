package ocr

// CategoryTag is one of the closed set of spend categories.
type CategoryTag string

const (
	CategoryFood     CategoryTag = "Food"
	CategoryTravel   CategoryTag = "Travel"
	CategoryShopping CategoryTag = "Shopping"
	CategoryHealth   CategoryTag = "Health"
	CategoryBills    CategoryTag = "Bills"
	CategoryOther    CategoryTag = "Other"
)

// PaymentMethodTag is one of the closed set of payment methods.
type PaymentMethodTag string

const (
	PaymentUPI        PaymentMethodTag = "UPI"
	PaymentCard       PaymentMethodTag = "Card"
	PaymentNetBanking PaymentMethodTag = "NetBanking"
	PaymentCash       PaymentMethodTag = "Cash"
)

// Record is the structured result of one pipeline run. All fields are
// independently derived from the recognized text; no cross-field invariant holds.
type Record struct {
	Text            string           `json:"text"`
	Amount          string           `json:"amount"`
	Date            string           `json:"date"`
	Category        CategoryTag      `json:"category"`
	PaymentMethod   PaymentMethodTag `json:"payment_method"`
	ConfidenceScore int              `json:"confidence_score"`
}

// DefaultRecord is returned whenever normalization or recognition fails.
// Confidence is always present: 0 on failure, 100 on success.
func DefaultRecord() Record {
	return Record{
		Text:            "",
		Amount:          "",
		Date:            "",
		Category:        CategoryOther,
		PaymentMethod:   PaymentCash,
		ConfidenceScore: 0,
	}
}
