package repo

import (
	"github.com/GlebRadaev/poolkeeper/internal/kv"
	"github.com/GlebRadaev/poolkeeper/internal/pg"
	accountrepo "github.com/GlebRadaev/poolkeeper/internal/repo/account-repo"
	instructionrepo "github.com/GlebRadaev/poolkeeper/internal/repo/instruction-repo"
	poolrepo "github.com/GlebRadaev/poolkeeper/internal/repo/pool-repo"
	userrepo "github.com/GlebRadaev/poolkeeper/internal/repo/user-repo"
	"github.com/GlebRadaev/poolkeeper/internal/service/authservice"
	"github.com/GlebRadaev/poolkeeper/internal/service/ledgerservice"
	"github.com/GlebRadaev/poolkeeper/internal/settlement"
)

type Repositories struct {
	PoolRepo        ledgerservice.PoolRepo
	UserRepo        ledgerservice.UserRepo
	AccountRepo     authservice.Repo
	InstructionRepo settlement.InstructionRepo
	TXManager       pg.TXManager
}

// LedgerState is the pool and user repositories seen as one store.
type LedgerState struct {
	ledgerservice.PoolRepo
	ledgerservice.UserRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		PoolRepo:        poolrepo.New(conn),
		UserRepo:        userrepo.New(conn),
		AccountRepo:     accountrepo.New(conn),
		InstructionRepo: instructionrepo.New(conn),
		TXManager:       txManager,
	}
}

// NewKV serves every repository from one pebble store.
func NewKV(store *kv.Store) *Repositories {
	return &Repositories{
		PoolRepo:        store,
		UserRepo:        store,
		AccountRepo:     store,
		InstructionRepo: store,
		TXManager:       store,
	}
}

func (r *Repositories) State() LedgerState {
	return LedgerState{PoolRepo: r.PoolRepo, UserRepo: r.UserRepo}
}
