package ocr

import "strings"

// paymentTable is the ordered payment-method chain: UPI before Card before
// NetBanking, with Cash as the universal default. "imbps" looks like a
// garbled "IMPS" but is kept as-is until the intended token is confirmed.
var paymentTable = []struct {
	tag      PaymentMethodTag
	keywords []string
}{
	{PaymentUPI, []string{"upi", "scan", "phonepe", "paytm", "gpay"}},
	{PaymentCard, []string{"card", "visa", "mastercard", "credit", "debit"}},
	{PaymentNetBanking, []string{"netbanking", "neft", "imbps"}},
}

// ExtractPaymentMethod classifies recognized text into a payment method.
func ExtractPaymentMethod(text string) PaymentMethodTag {
	t := strings.ToLower(text)
	for _, entry := range paymentTable {
		for _, w := range entry.keywords {
			if strings.Contains(t, w) {
				return entry.tag
			}
		}
	}
	return PaymentCash
}
