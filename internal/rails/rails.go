// Package rails holds the per-channel business rules: amount limits,
// identifier formats and the fee schedule. Everything here is pure.
package rails

import (
	"fmt"
	"regexp"

	"github.com/sbilibin2017/gw-funds-transfer/internal/models"
	"github.com/shopspring/decimal"
)

var (
	vpaPattern           = regexp.MustCompile(`^[a-zA-Z0-9.\-_]{2,}@[a-zA-Z]{2,}$`)
	accountNumberPattern = regexp.MustCompile(`^[0-9]{9,18}$`)
	ifscPattern          = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

// Limits is the accepted amount range of a channel. Max is meaningful only when HasMax is set.
type Limits struct {
	Min    decimal.Decimal
	Max    decimal.Decimal
	HasMax bool
}

// Contains reports whether amount lies within the limits, inclusive.
func (l Limits) Contains(amount decimal.Decimal) bool {
	if amount.LessThan(l.Min) {
		return false
	}
	return !l.HasMax || amount.LessThanOrEqual(l.Max)
}

// feeSlab charges Fee for amounts up to and including UpTo. The last slab of a
// schedule has Open set and catches everything above the previous slab.
type feeSlab struct {
	UpTo decimal.Decimal
	Fee  decimal.Decimal
	Open bool
}

type rule struct {
	limits Limits
	fees   []feeSlab
}

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

var table = map[models.Channel]rule{
	models.UPI: {
		limits: Limits{Min: d("1"), Max: d("100000"), HasMax: true},
		fees:   []feeSlab{{Fee: d("0"), Open: true}},
	},
	// IMPS is capped at 2 lakh per transfer.
	models.IMPS: {
		limits: Limits{Min: d("1"), Max: d("200000"), HasMax: true},
		fees: []feeSlab{
			{UpTo: d("10000"), Fee: d("2.50")},
			{UpTo: d("100000"), Fee: d("5.00")},
			{Fee: d("15.00"), Open: true},
		},
	},
	models.NEFT: {
		limits: Limits{Min: d("1")},
		fees: []feeSlab{
			{UpTo: d("10000"), Fee: d("2.50")},
			{UpTo: d("100000"), Fee: d("5.00")},
			{UpTo: d("200000"), Fee: d("15.00")},
			{Fee: d("25.00"), Open: true},
		},
	},
	models.RTGS: {
		limits: Limits{Min: d("200000")},
		fees: []feeSlab{
			{UpTo: d("500000"), Fee: d("25.00")},
			{Fee: d("50.00"), Open: true},
		},
	},
}

// Violation describes a business-rule failure.
type Violation struct {
	Code   models.FailureCode
	Reason string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Code, v.Reason)
}

func lookup(ch models.Channel) (rule, error) {
	r, ok := table[ch]
	if !ok {
		return rule{}, fmt.Errorf("%w: %q", models.ErrUnknownChannel, ch)
	}
	return r, nil
}

// AmountBounds returns the accepted amount range of a channel.
func AmountBounds(ch models.Channel) (Limits, error) {
	r, err := lookup(ch)
	if err != nil {
		return Limits{}, err
	}
	return r.limits, nil
}

// CheckAmount validates an amount against the channel limits. A nil Violation means the amount is acceptable.
func CheckAmount(ch models.Channel, amount decimal.Decimal) (*Violation, error) {
	r, err := lookup(ch)
	if err != nil {
		return nil, err
	}
	if !amount.Equal(amount.Round(2)) {
		return &Violation{
			Code:   models.FailureInvalidFormat,
			Reason: fmt.Sprintf("amount %s has more than 2 decimal places", amount),
		}, nil
	}
	if amount.LessThan(r.limits.Min) {
		return &Violation{
			Code:   models.FailureAmountOutOfBounds,
			Reason: fmt.Sprintf("amount %s is below %s minimum of %s", amount.StringFixed(2), ch, r.limits.Min.StringFixed(2)),
		}, nil
	}
	if r.limits.HasMax && amount.GreaterThan(r.limits.Max) {
		return &Violation{
			Code:   models.FailureAmountOutOfBounds,
			Reason: fmt.Sprintf("amount %s exceeds %s maximum of %s", amount.StringFixed(2), ch, r.limits.Max.StringFixed(2)),
		}, nil
	}
	return nil, nil
}

// ValidateIdentifier reports whether id has the party identifier shape used on the channel:
// a VPA for UPI and a 9 to 18 digit account number for the other rails.
func ValidateIdentifier(ch models.Channel, id string) bool {
	if ch.UsesVPA() {
		return vpaPattern.MatchString(id)
	}
	return accountNumberPattern.MatchString(id)
}

// ValidVPA reports whether id is a well-formed UPI address.
func ValidVPA(id string) bool {
	return vpaPattern.MatchString(id)
}

// ValidRoutingCode reports whether code has the IFSC shape: 4 letters, a zero, 6 alphanumerics.
func ValidRoutingCode(code string) bool {
	return ifscPattern.MatchString(code)
}

// Charge returns the fee for moving amount over the channel.
func Charge(ch models.Channel, amount decimal.Decimal) (decimal.Decimal, error) {
	r, err := lookup(ch)
	if err != nil {
		return decimal.Zero, err
	}
	for _, slab := range r.fees {
		if slab.Open || amount.LessThanOrEqual(slab.UpTo) {
			return slab.Fee, nil
		}
	}
	return r.fees[len(r.fees)-1].Fee, nil
}
