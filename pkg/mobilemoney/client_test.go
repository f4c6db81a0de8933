package mobilemoney

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		operator Operator
		phone    string
		want     bool
	}{
		{OperatorOrange, "622123456", true},
		{OperatorOrange, "+224629999999", true},
		{OperatorOrange, "622 123 456", true},
		{OperatorOrange, "610123456", false}, // 61X is not an Orange prefix
		{OperatorOrange, "62212345", false},  // too short
		{OperatorMTN, "661234567", true},
		{OperatorMTN, "+224660000000", true},
		{OperatorMTN, "671234567", false}, // 67X is not an MTN prefix
		{Operator("wave"), "622123456", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPhone(tt.operator, tt.phone), "%s %s", tt.operator, tt.phone)
	}
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "+224622123456", FormatPhone("622 123 456"))
	assert.Equal(t, "+224622123456", FormatPhone("224622123456"))
	assert.Equal(t, "+224622123456", FormatPhone("+224 622 123 456"))
	// Unrecognized shapes pass through untouched.
	assert.Equal(t, "12345", FormatPhone("12345"))
}

func TestChargeSuccess(t *testing.T) {
	client := NewClient()
	client.SuccessRate = 1

	resp, err := client.Charge(ChargeRequest{
		Operator:  OperatorOrange,
		Phone:     "622123456",
		Amount:    165200,
		Reference: "FL1234567890",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.TransactionID)
	assert.Equal(t, "+224622123456", resp.Phone)
	assert.Equal(t, int64(165200), resp.Amount)
	assert.Equal(t, "success", resp.Status)
}

func TestChargeDeclined(t *testing.T) {
	client := NewClient()
	client.SuccessRate = 0

	_, err := client.Charge(ChargeRequest{
		Operator: OperatorMTN,
		Phone:    "661234567",
		Amount:   50000,
	})
	assert.ErrorIs(t, err, ErrDeclined)
}

func TestChargeRejectsBadInput(t *testing.T) {
	client := NewClient()
	client.SuccessRate = 1

	_, err := client.Charge(ChargeRequest{Operator: "wave", Phone: "622123456"})
	assert.ErrorIs(t, err, ErrUnknownOperator)

	_, err = client.Charge(ChargeRequest{Operator: OperatorOrange, Phone: "12345"})
	assert.ErrorIs(t, err, ErrInvalidPhone)
}
