package settlement

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
	"github.com/GlebRadaev/poolkeeper/internal/pg"
)

//go:generate mockgen -source=settlement.go -destination=mock_settlement.go -package=settlement

type Router interface {
	Execute(ctx context.Context, sender string, msg domain.ExecuteMsg) (*domain.Response, error)
	Query(ctx context.Context, msg domain.QueryMsg) (any, error)
}

type InstructionRepo interface {
	Save(ctx context.Context, record *domain.InstructionRecord) (*domain.InstructionRecord, error)
	ListBySender(ctx context.Context, sender string) ([]domain.InstructionRecord, error)
}

// Dispatcher delivers a recorded instruction to the token service. The record
// ID identifies the delivery so the token service can drop duplicates.
type Dispatcher interface {
	Dispatch(ctx context.Context, record domain.InstructionRecord) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.LedgerEvent) error
}

// Executor runs execute requests one at a time. The ledger mutation, the
// instruction record and the dispatch to the token service share one
// transaction: a rejected dispatch rolls the mutation back. Events are
// published after the lock is released.
type Executor struct {
	mu           sync.Mutex
	router       Router
	tx           pg.TXManager
	instructions InstructionRepo
	dispatcher   Dispatcher
	publisher    Publisher
	now          func() time.Time
}

func New(router Router, tx pg.TXManager, instructions InstructionRepo, dispatcher Dispatcher, publisher Publisher) *Executor {
	return &Executor{
		router:       router,
		tx:           tx,
		instructions: instructions,
		dispatcher:   dispatcher,
		publisher:    publisher,
		now:          time.Now,
	}
}

// Execute runs msg for sender. Once started, the unit is detached from ctx
// cancellation: a dispatched instruction is always followed by its commit.
func (e *Executor) Execute(ctx context.Context, sender string, msg domain.ExecuteMsg) (*domain.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := e.execute(context.WithoutCancel(ctx), sender, msg)
	if err != nil {
		zap.L().Info("execute rejected", zap.String("sender", sender), zap.Error(err))
		return nil, err
	}

	e.publish(ctx, sender, resp)
	return resp, nil
}

func (e *Executor) execute(ctx context.Context, sender string, msg domain.ExecuteMsg) (*domain.Response, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var resp *domain.Response
	err := e.tx.Begin(ctx, func(ctx context.Context) error {
		r, err := e.router.Execute(ctx, sender, msg)
		if err != nil {
			return err
		}
		if r.Instruction != nil {
			if err := e.settle(ctx, sender, r); err != nil {
				return err
			}
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (e *Executor) settle(ctx context.Context, sender string, resp *domain.Response) error {
	record, err := e.instructions.Save(ctx, &domain.InstructionRecord{
		Sender:      sender,
		Action:      resp.Action(),
		Instruction: *resp.Instruction,
		CreatedAt:   e.now(),
	})
	if err != nil {
		return err
	}
	if err := e.dispatcher.Dispatch(ctx, *record); err != nil {
		if errors.Is(err, domain.ErrSettlementRejected) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrSettlementRejected, err)
	}
	return nil
}

func (e *Executor) publish(ctx context.Context, sender string, resp *domain.Response) {
	event := domain.LedgerEvent{
		ID:          uuid.NewString(),
		Action:      resp.Action(),
		Sender:      sender,
		Attributes:  resp.Attributes,
		Instruction: resp.Instruction,
		OccurredAt:  e.now(),
	}
	if err := e.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		zap.L().Error("failed to publish ledger event", zap.String("id", event.ID), zap.Error(err))
	}
}

func (e *Executor) Query(ctx context.Context, msg domain.QueryMsg) (any, error) {
	return e.router.Query(ctx, msg)
}

// Instructions lists the instructions committed for sender, newest first.
func (e *Executor) Instructions(ctx context.Context, sender string) ([]domain.InstructionRecord, error) {
	return e.instructions.ListBySender(ctx, sender)
}
