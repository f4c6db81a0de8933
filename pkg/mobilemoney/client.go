package mobilemoney

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Operator string

const (
	OperatorOrange Operator = "orange"
	OperatorMTN    Operator = "mtn"
)

var (
	ErrUnknownOperator = errors.New("unknown mobile money operator")
	ErrInvalidPhone    = errors.New("invalid phone number for operator")
	ErrDeclined        = errors.New("payment declined: insufficient balance")
)

// DeclinedMessage is surfaced verbatim to the customer when the simulated
// gateway declines the charge.
const DeclinedMessage = "Paiement refusé. Solde insuffisant."

// Guinean numbering plan: Orange subscribers are 62X-69X, MTN are 66X.
var (
	orangePhonePattern = regexp.MustCompile(`^(\+224)?6[2-9]\d{7}$`)
	mtnPhonePattern    = regexp.MustCompile(`^(\+224)?66\d{7}$`)
)

type ChargeRequest struct {
	Operator  Operator `json:"operator"`
	Phone     string   `json:"phone"`
	Amount    int64    `json:"amount"`
	Reference string   `json:"reference"`
}

type ChargeResponse struct {
	TransactionID string   `json:"transaction_id"`
	Operator      Operator `json:"operator"`
	Phone         string   `json:"phone"`
	Amount        int64    `json:"amount"`
	Status        string   `json:"status"`
}

// Client simulates a mobile money payment gateway. There is no real
// gateway behind it: charges succeed with probability SuccessRate and
// fail with ErrDeclined otherwise.
type Client struct {
	SuccessRate float64
	rng         *rand.Rand
}

func NewClient() *Client {
	return &Client{
		SuccessRate: 0.9,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ValidPhone checks a subscriber number against the operator's prefix plan.
func ValidPhone(operator Operator, phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	switch operator {
	case OperatorOrange:
		return orangePhonePattern.MatchString(cleaned)
	case OperatorMTN:
		return mtnPhonePattern.MatchString(cleaned)
	}
	return false
}

// FormatPhone normalizes a local number to the +224 international form.
func FormatPhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	cleaned := digits.String()

	if strings.HasPrefix(cleaned, "224") {
		return "+" + cleaned
	}
	if len(cleaned) == 9 {
		return "+224" + cleaned
	}
	return phone
}

// Charge runs a simulated payment. The phone number is validated against
// the operator before the charge is attempted.
func (c *Client) Charge(req ChargeRequest) (*ChargeResponse, error) {
	if req.Operator != OperatorOrange && req.Operator != OperatorMTN {
		return nil, ErrUnknownOperator
	}
	if !ValidPhone(req.Operator, req.Phone) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPhone, string(req.Operator))
	}

	if c.rng.Float64() >= c.SuccessRate {
		return nil, ErrDeclined
	}

	return &ChargeResponse{
		TransactionID: uuid.NewString(),
		Operator:      req.Operator,
		Phone:         FormatPhone(req.Phone),
		Amount:        req.Amount,
		Status:        "success",
	}, nil
}
