package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "Rupees Zero Only"},
		{"1", "Rupees One Only"},
		{"15", "Rupees Fifteen Only"},
		{"42", "Rupees Forty Two Only"},
		{"100", "Rupees One Hundred Only"},
		{"118.00", "Rupees One Hundred Eighteen Only"},
		{"999.50", "Rupees Nine Hundred Ninety Nine and Paise Fifty Only"},
		{"1000", "Rupees One Thousand Only"},
		{"100000", "Rupees One Lakh Only"},
		{"123456.78", "Rupees One Lakh Twenty Three Thousand Four Hundred Fifty Six and Paise Seventy Eight Only"},
		{"10000000", "Rupees One Crore Only"},
		{"25000000.05", "Rupees Two Crore Fifty Lakh and Paise Five Only"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountInWords(dec(tt.amount)))
		})
	}
}
