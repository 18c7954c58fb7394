package domain

import "fmt"

type InstructionKind string

const (
	InstructionMint         InstructionKind = "mint"
	InstructionTransferFrom InstructionKind = "transfer_from"
	InstructionTransfer     InstructionKind = "transfer"
)

// Instruction is an outbound message addressed to the token service at
// Contract. The ledger hands it to the host; it never waits for the outcome.
type Instruction struct {
	Contract  string          `json:"contract"`
	Kind      InstructionKind `json:"kind"`
	Owner     string          `json:"owner,omitempty"`
	Recipient string          `json:"recipient"`
	Amount    Amount          `json:"amount"`
}

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Response struct {
	Attributes  []Attribute  `json:"attributes"`
	Instruction *Instruction `json:"instruction,omitempty"`
}

func (r *Response) Action() string {
	for _, a := range r.Attributes {
		if a.Key == "action" {
			return a.Value
		}
	}
	return ""
}

type BalanceResponse struct {
	Balance Amount `json:"balance"`
}

type (
	SetTokenAddress struct {
		Address string `json:"address"`
	}
	BuyToken struct {
		Amount Amount `json:"amount"`
	}
	Deposit struct {
		Amount Amount `json:"amount"`
	}
	Withdraw struct {
		Amount Amount `json:"amount"`
	}
)

// ExecuteMsg is an externally tagged union: exactly one field is set.
type ExecuteMsg struct {
	SetTokenAddress *SetTokenAddress `json:"set_token_address,omitempty"`
	BuyToken        *BuyToken        `json:"buy_token,omitempty"`
	Deposit         *Deposit         `json:"deposit,omitempty"`
	Withdraw        *Withdraw        `json:"withdraw,omitempty"`
}

func (m ExecuteMsg) Validate() error {
	return exactlyOne(m.SetTokenAddress != nil, m.BuyToken != nil, m.Deposit != nil, m.Withdraw != nil)
}

type (
	GetTokenAddress struct{}
	GetBalance      struct {
		Address string `json:"address"`
	}
	GetAllUsers struct{}
	GetUserInfo struct {
		Address string `json:"address"`
	}
	GetTopUsers struct{}
)

// QueryMsg is an externally tagged union: exactly one field is set.
type QueryMsg struct {
	GetTokenAddress *GetTokenAddress `json:"get_token_address,omitempty"`
	GetBalance      *GetBalance      `json:"get_balance,omitempty"`
	GetAllUsers     *GetAllUsers     `json:"get_all_users,omitempty"`
	GetUserInfo     *GetUserInfo     `json:"get_user_info,omitempty"`
	GetTopUsers     *GetTopUsers     `json:"get_top_users,omitempty"`
}

func (m QueryMsg) Validate() error {
	return exactlyOne(m.GetTokenAddress != nil, m.GetBalance != nil, m.GetAllUsers != nil, m.GetUserInfo != nil, m.GetTopUsers != nil)
}

func exactlyOne(set ...bool) error {
	n := 0
	for _, s := range set {
		if s {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("%w: expected exactly one variant, got %d", ErrInvalidMessage, n)
	}
	return nil
}
