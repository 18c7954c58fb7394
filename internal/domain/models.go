package domain

import "time"

// PoolState is the pool-wide aggregate. TotalMoney always equals the sum of
// every UserInfo.Amount once a mutating request has completed.
type PoolState struct {
	TotalMoney Amount `json:"total_money" db:"total_money"`
}

type UserInfo struct {
	Address string `json:"address" db:"address"`
	Amount  Amount `json:"amount" db:"amount"`
}

type Account struct {
	ID           int       `db:"id"`
	Address      string    `db:"address"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// InstructionRecord is an outbound instruction committed together with the
// ledger mutation that produced it.
type InstructionRecord struct {
	ID          int64       `json:"id" db:"id"`
	Sender      string      `json:"sender" db:"sender"`
	Action      string      `json:"action" db:"action"`
	Instruction Instruction `json:"instruction"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}

// LedgerEvent describes one committed execute request.
type LedgerEvent struct {
	ID          string       `json:"id"`
	Action      string       `json:"action"`
	Sender      string       `json:"sender"`
	Attributes  []Attribute  `json:"attributes"`
	Instruction *Instruction `json:"instruction,omitempty"`
	OccurredAt  time.Time    `json:"occurred_at"`
}
