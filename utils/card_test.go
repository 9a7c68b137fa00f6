package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCardNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"full visa", "4111111111111111", "****1111"},
		{"amex length", "378282246310005", "****0005"},
		{"exactly four", "1234", "****1234"},
		{"shorter than four", "12", "****12"},
		{"empty", "", "****"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskCardNumber(tt.in)
			assert.Equal(t, tt.want, got)
			// Never more than the last 4 original digits survive.
			assert.LessOrEqual(t, len(got)-4, 4)
		})
	}
}
