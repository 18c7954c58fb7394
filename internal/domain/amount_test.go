package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		expectErr error
	}{
		{name: "Zero", input: "0", expected: "0"},
		{name: "Plain number", input: "100", expected: "100"},
		{name: "Leading zeros", input: "007", expected: "7"},
		{name: "Max u128", input: MaxAmount, expected: MaxAmount},
		{name: "Above u128", input: "340282366920938463463374607431768211456", expectErr: ErrAmountOverflow},
		{name: "Negative", input: "-5", expectErr: ErrInvalidAmount},
		{name: "Fraction", input: "1.5", expectErr: ErrInvalidAmount},
		{name: "Empty", input: "", expectErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseAmount(tt.input)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a.String())
		})
	}
}

func TestAmount_Arithmetic(t *testing.T) {
	sum, err := NewAmount(10).Add(NewAmount(20))
	require.NoError(t, err)
	assert.Equal(t, NewAmount(30), sum)

	diff, err := sum.Sub(NewAmount(30))
	require.NoError(t, err)
	assert.True(t, diff.IsZero())

	_, err = NewAmount(5).Sub(NewAmount(6))
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	ceiling, err := ParseAmount(MaxAmount)
	require.NoError(t, err)
	_, err = ceiling.Add(NewAmount(1))
	assert.ErrorIs(t, err, ErrAmountOverflow)

	assert.Equal(t, -1, NewAmount(1).Cmp(NewAmount(2)))
	assert.Equal(t, 0, NewAmount(2).Cmp(NewAmount(2)))
	assert.Equal(t, 1, NewAmount(3).Cmp(NewAmount(2)))
}

func TestAmount_JSON(t *testing.T) {
	data, err := json.Marshal(UserInfo{Address: "sender0", Amount: NewAmount(15)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"address":"sender0","amount":"15"}`, string(data))

	var msg ExecuteMsg
	require.NoError(t, json.Unmarshal([]byte(`{"deposit":{"amount":10}}`), &msg))
	require.NotNil(t, msg.Deposit)
	assert.Equal(t, NewAmount(10), msg.Deposit.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"withdraw":{"amount":"5"}}`), &msg))
	require.NotNil(t, msg.Withdraw)
	assert.Equal(t, NewAmount(5), msg.Withdraw.Amount)

	err = json.Unmarshal([]byte(`{"buy_token":{"amount":-1}}`), &msg)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
