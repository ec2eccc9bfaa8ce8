package payroll

import (
	"strings"

	"github.com/shopspring/decimal"
)

const rupee = "₹"

var (
	thousand = decimal.NewFromInt(1000)
	lakh     = decimal.NewFromInt(100000)
)

// FormatINR renders whole rupees with Indian digit grouping, e.g. ₹12,34,567.
func FormatINR(amount decimal.Decimal) string {
	return rupee + groupIndian(amount.Round(0).String())
}

// FormatINRK renders thousands, e.g. ₹1235K.
func FormatINRK(amount decimal.Decimal) string {
	return rupee + amount.Div(thousand).StringFixed(0) + "K"
}

// FormatINRL renders lakhs with two decimals, e.g. ₹12.35L.
func FormatINRL(amount decimal.Decimal) string {
	return rupee + amount.Div(lakh).StringFixed(2) + "L"
}

func groupIndian(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return sign + strings.Join(groups, ",") + "," + tail
}
