package utils_test

import (
	"testing"
	"time"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/apperrors"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBRL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "full currency string", input: "R$ 1.234,56", want: "1234.56"},
		{name: "no prefix", input: "1.234,56", want: "1234.56"},
		{name: "no thousands separator", input: "R$ 150,00", want: "150"},
		{name: "plain integer", input: "500", want: "500"},
		{name: "millions", input: "R$ 1.234.567,89", want: "1234567.89"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "negative", input: "-R$ 10,00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ParseBRL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"ParseBRL(%q) = %s, want %s", tt.input, got, tt.want)
		})
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "0", want: "R$ 0,00"},
		{input: "150", want: "R$ 150,00"},
		{input: "1234.56", want: "R$ 1.234,56"},
		{input: "1234567.89", want: "R$ 1.234.567,89"},
		{input: "0.5", want: "R$ 0,50"},
		{input: "-42.1", want: "-R$ 42,10"},
	}

	for _, tt := range tests {
		got := utils.FormatBRL(decimal.RequireFromString(tt.input))
		assert.Equal(t, tt.want, got)
	}
}

// Canonical strings survive a parse/format round trip unchanged.
func TestBRLRoundTrip(t *testing.T) {
	for _, s := range []string{"R$ 1.234,56", "R$ 0,00", "R$ 150,00", "R$ 12.345.678,90"} {
		parsed, err := utils.ParseBRL(s)
		require.NoError(t, err)
		assert.Equal(t, s, utils.FormatBRL(parsed))
	}
}

func TestFormatDateBR(t *testing.T) {
	date := time.Date(2024, time.April, 9, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "09/04/2024", utils.FormatDateBR(date))
}
