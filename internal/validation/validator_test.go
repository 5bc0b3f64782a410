package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yancarpet/storefront/internal/domain"
	domainerrors "github.com/yancarpet/storefront/internal/errors"
	"github.com/yancarpet/storefront/internal/validation"
)

func TestValidator_ValidCard(t *testing.T) {
	v := validation.New()

	card := domain.PaymentCard{
		Number: "4242 4242 4242 4242",
		CVV:    "123",
		Expiry: "12/30",
		Holder: "Jane Doe",
	}

	assert.NoError(t, v.Validate(card))
}

func TestValidator_CardErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		card      domain.PaymentCard
		wantField string
	}{
		{
			name:      "card number too short",
			card:      domain.PaymentCard{Number: "4242", CVV: "123", Expiry: "12/30"},
			wantField: "number",
		},
		{
			name:      "card number too long",
			card:      domain.PaymentCard{Number: "42424242424242424242", CVV: "123", Expiry: "12/30"},
			wantField: "number",
		},
		{
			name:      "card number with letters",
			card:      domain.PaymentCard{Number: "4242abcd42424242", CVV: "123", Expiry: "12/30"},
			wantField: "number",
		},
		{
			name:      "cvv too short",
			card:      domain.PaymentCard{Number: "4242424242424242", CVV: "12", Expiry: "12/30"},
			wantField: "cvv",
		},
		{
			name:      "cvv too long",
			card:      domain.PaymentCard{Number: "4242424242424242", CVV: "12345", Expiry: "12/30"},
			wantField: "cvv",
		},
		{
			name:      "expiry month out of range",
			card:      domain.PaymentCard{Number: "4242424242424242", CVV: "123", Expiry: "13/30"},
			wantField: "expiry",
		},
		{
			name:      "expiry wrong length",
			card:      domain.PaymentCard{Number: "4242424242424242", CVV: "123", Expiry: "1/3"},
			wantField: "expiry",
		},
		{
			name:      "missing number",
			card:      domain.PaymentCard{CVV: "123", Expiry: "12/30"},
			wantField: "number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.card)
			assert.Error(t, err)

			var domainErr *domainerrors.Error
			if assert.True(t, errors.As(err, &domainErr)) {
				assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)
				assert.Contains(t, domainErr.Details, tt.wantField)
			}
		})
	}
}

func TestNormalizeExpiry(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"12/30", "1230", true},
		{"1230", "1230", true},
		{"01-27", "0127", true},
		{"12/2030", "1230", true},
		{" 09 / 31 ", "0931", true},
		{"13/30", "", false},
		{"00/30", "", false},
		{"1/3", "", false},
		{"", "", false},
		{"ab/cd", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := validation.NormalizeExpiry(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
