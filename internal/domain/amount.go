package domain

import (
	"bytes"
	"fmt"

	"github.com/holiman/uint256"
)

const amountBits = 128

// MaxAmount is 2^128-1.
const MaxAmount = "340282366920938463463374607431768211455"

// Amount is an unsigned 128-bit integer. The zero value is 0.
// It is encoded in JSON as a decimal string and decoded from either a JSON
// number or a decimal string.
type Amount struct {
	v uint256.Int
}

func NewAmount(n uint64) Amount {
	var a Amount
	a.v.SetUint64(n)
	return a
}

func ParseAmount(s string) (Amount, error) {
	if s == "" {
		return Amount{}, fmt.Errorf("%w: empty value", ErrInvalidAmount)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %s", ErrAmountOverflow, s)
	}
	if v.BitLen() > amountBits {
		return Amount{}, fmt.Errorf("%w: %s", ErrAmountOverflow, s)
	}
	return Amount{v: *v}, nil
}

func (a Amount) Add(b Amount) (Amount, error) {
	var r Amount
	if _, overflow := r.v.AddOverflow(&a.v, &b.v); overflow || r.v.BitLen() > amountBits {
		return Amount{}, ErrAmountOverflow
	}
	return r, nil
}

func (a Amount) Sub(b Amount) (Amount, error) {
	if a.v.Lt(&b.v) {
		return Amount{}, ErrInsufficientFunds
	}
	var r Amount
	r.v.Sub(&a.v, &b.v)
	return r, nil
}

func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

func (a Amount) String() string {
	return a.v.Dec()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.v.Dec() + `"`), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := bytes.TrimSpace(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := ParseAmount(string(s))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
