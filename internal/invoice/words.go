package invoice

import (
	"strings"

	"github.com/shopspring/decimal"
)

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords spells a rupee amount using the Indian numbering system
// (thousand, lakh, crore), e.g. "Rupees One Lakh Twenty Three Thousand Four
// Hundred Fifty Six and Paise Seventy Eight Only".
func AmountInWords(amount decimal.Decimal) string {
	totalPaise := amount.Abs().Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	rupees := totalPaise / 100
	paise := totalPaise % 100

	var b strings.Builder
	b.WriteString("Rupees ")
	b.WriteString(numberInWords(rupees))
	if paise > 0 {
		b.WriteString(" and Paise ")
		b.WriteString(numberInWords(paise))
	}
	b.WriteString(" Only")
	return b.String()
}

func numberInWords(n int64) string {
	if n == 0 {
		return "Zero"
	}

	var parts []string
	appendPart := func(v int64, unit string) {
		if v > 0 {
			parts = append(parts, underThousand(int(v)))
			if unit != "" {
				parts = append(parts, unit)
			}
		}
	}

	appendPart(n/10000000, "Crore")
	n %= 10000000
	appendPart(n/100000, "Lakh")
	n %= 100000
	appendPart(n/1000, "Thousand")
	n %= 1000
	appendPart(n, "")

	return strings.Join(parts, " ")
}

func underThousand(n int) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, onesWords[n/100], "Hundred")
		n %= 100
	}
	if n >= 20 {
		parts = append(parts, tensWords[n/10])
		n %= 10
	}
	if n > 0 {
		parts = append(parts, onesWords[n])
	}
	return strings.Join(parts, " ")
}
