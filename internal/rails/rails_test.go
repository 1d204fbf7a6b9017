package rails

import (
	"testing"

	"github.com/sbilibin2017/gw-funds-transfer/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountBounds(t *testing.T) {
	tests := []struct {
		channel models.Channel
		min     string
		max     string
		hasMax  bool
	}{
		{models.UPI, "1", "100000", true},
		{models.IMPS, "1", "200000", true},
		{models.NEFT, "1", "0", false},
		{models.RTGS, "200000", "0", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.channel), func(t *testing.T) {
			l, err := AmountBounds(tt.channel)
			require.NoError(t, err)
			assert.True(t, l.Min.Equal(decimal.RequireFromString(tt.min)))
			assert.Equal(t, tt.hasMax, l.HasMax)
			if tt.hasMax {
				assert.True(t, l.Max.Equal(decimal.RequireFromString(tt.max)))
			}
		})
	}

	_, err := AmountBounds(models.Channel("SWIFT"))
	assert.ErrorIs(t, err, models.ErrUnknownChannel)
}

func TestCheckAmount(t *testing.T) {
	tests := []struct {
		name    string
		channel models.Channel
		amount  string
		code    models.FailureCode
	}{
		{"upi minimum", models.UPI, "1", ""},
		{"upi maximum", models.UPI, "100000", ""},
		{"upi below minimum", models.UPI, "0.99", models.FailureAmountOutOfBounds},
		{"upi above maximum", models.UPI, "100000.01", models.FailureAmountOutOfBounds},
		{"imps above maximum", models.IMPS, "200001", models.FailureAmountOutOfBounds},
		{"imps stale ceiling rejected", models.IMPS, "500000", models.FailureAmountOutOfBounds},
		{"neft unbounded", models.NEFT, "99999999999", ""},
		{"rtgs below minimum", models.RTGS, "5000", models.FailureAmountOutOfBounds},
		{"rtgs minimum", models.RTGS, "200000", ""},
		{"zero", models.NEFT, "0", models.FailureAmountOutOfBounds},
		{"negative", models.NEFT, "-10", models.FailureAmountOutOfBounds},
		{"sub-paisa precision", models.UPI, "10.001", models.FailureInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := CheckAmount(tt.channel, decimal.RequireFromString(tt.amount))
			require.NoError(t, err)
			if tt.code == "" {
				assert.Nil(t, v)
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, tt.code, v.Code)
			assert.NotEmpty(t, v.Reason)
		})
	}

	_, err := CheckAmount(models.Channel("X"), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, models.ErrUnknownChannel)
}

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		channel models.Channel
		id      string
		valid   bool
	}{
		{models.UPI, "ACC001@upi", true},
		{models.UPI, "user.name-1_x@okaxis", true},
		{models.UPI, "a@upi", false},
		{models.UPI, "user@u", false},
		{models.UPI, "user@up1", false},
		{models.UPI, "user", false},
		{models.UPI, "us er@upi", false},
		{models.IMPS, "123456789", true},
		{models.NEFT, "123456789012345678", true},
		{models.RTGS, "12345678", false},
		{models.RTGS, "1234567890123456789", false},
		{models.IMPS, "ACC001", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.channel)+"/"+tt.id, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateIdentifier(tt.channel, tt.id))
		})
	}
}

func TestValidRoutingCode(t *testing.T) {
	assert.True(t, ValidRoutingCode("SBIN0001234"))
	assert.True(t, ValidRoutingCode("HDFC0ABC123"))
	assert.False(t, ValidRoutingCode("SBIN1001234"))
	assert.False(t, ValidRoutingCode("sbin0001234"))
	assert.False(t, ValidRoutingCode("SBIN000123"))
}

func TestCharge(t *testing.T) {
	tests := []struct {
		channel models.Channel
		amount  string
		fee     string
	}{
		{models.UPI, "100000", "0"},
		{models.IMPS, "10000", "2.50"},
		{models.IMPS, "10000.01", "5.00"},
		{models.IMPS, "100000", "5.00"},
		{models.IMPS, "150000", "15.00"},
		{models.NEFT, "5000", "2.50"},
		{models.NEFT, "50000", "5.00"},
		{models.NEFT, "200000", "15.00"},
		{models.NEFT, "1000000", "25.00"},
		{models.RTGS, "500000", "25.00"},
		{models.RTGS, "500001", "50.00"},
	}

	for _, tt := range tests {
		t.Run(string(tt.channel)+"/"+tt.amount, func(t *testing.T) {
			fee, err := Charge(tt.channel, decimal.RequireFromString(tt.amount))
			require.NoError(t, err)
			assert.True(t, fee.Equal(decimal.RequireFromString(tt.fee)), "got %s", fee)
		})
	}
}

func TestCharge_Monotonic(t *testing.T) {
	for _, ch := range models.Channels {
		l, err := AmountBounds(ch)
		require.NoError(t, err)

		prev := decimal.Zero
		for amount := l.Min; amount.LessThan(l.Min.Add(decimal.NewFromInt(1_000_000))); amount = amount.Add(decimal.NewFromInt(2500)) {
			if !l.Contains(amount) {
				break
			}
			fee, err := Charge(ch, amount)
			require.NoError(t, err)
			assert.True(t, fee.GreaterThanOrEqual(prev), "%s fee dropped at %s", ch, amount)
			prev = fee
		}
	}
}
