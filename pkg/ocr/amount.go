package ocr

import (
	"regexp"
	"strconv"
	"strings"
)

// amountRE anchors a numeric token to a currency marker or total/paid keyword.
// Matches "₹ 500", "Rs. 1234.00", "Total: 500.00", "Paid 500".
var amountRE = regexp.MustCompile(`(?i)(?:₹|rs\.?|total|amt|paid|amount)[:\s]*([0-9]+\.?[0-9]*)`)

// bareDecimalRE matches a generic two-decimal amount with no keyword context.
var bareDecimalRE = regexp.MustCompile(`[0-9]+\.[0-9]{2}`)

// ExtractAmount returns the best-guess monetary amount from recognized text as
// a plain decimal string, or "" when no candidate exists.
//
// Each line is scanned (thousands commas stripped) for a keyword-anchored
// number; the candidate with the largest parsed value wins, since receipts
// list subtotals before the grand total. When no line matches, the last bare
// decimal in the whole text is taken instead: the total is usually at the
// bottom. The original matched substring is returned unreformatted.
func ExtractAmount(text string) string {
	var candidates []string
	for _, line := range strings.Split(text, "\n") {
		cleaned := strings.ReplaceAll(line, ",", "")
		if m := amountRE.FindStringSubmatch(cleaned); m != nil {
			candidates = append(candidates, m[1])
		}
	}
	if len(candidates) > 0 {
		best := candidates[0]
		bestVal, _ := strconv.ParseFloat(best, 64)
		for _, c := range candidates[1:] {
			v, err := strconv.ParseFloat(c, 64)
			if err != nil {
				continue
			}
			if v > bestVal {
				best = c
				bestVal = v
			}
		}
		return best
	}
	if ms := bareDecimalRE.FindAllString(text, -1); ms != nil {
		return ms[len(ms)-1]
	}
	return ""
}
