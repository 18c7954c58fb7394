package audit

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
)

//go:generate mockgen -source=audit.go -destination=mock_audit.go -package=audit

const loadConcurrency = 8

type Store interface {
	GetPoolState(ctx context.Context) (*domain.PoolState, error)
	GetUser(ctx context.Context, address string) (*domain.UserInfo, error)
	ListUserIdentities(ctx context.Context) ([]string, error)
}

type Report struct {
	Users      int
	TotalMoney domain.Amount
	Sum        domain.Amount
}

func (r Report) Consistent() bool {
	return r.TotalMoney.Cmp(r.Sum) == 0
}

// Auditor periodically compares the pool total with the sum of user
// balances. It only reports; it never repairs state.
type Auditor struct {
	cron  *cron.Cron
	store Store
	ctx   context.Context
}

func New(ctx context.Context, store Store) *Auditor {
	return &Auditor{
		cron:  cron.New(),
		store: store,
		ctx:   ctx,
	}
}

func (a *Auditor) Register(schedule string) error {
	if _, err := a.cron.AddFunc(schedule, a.run); err != nil {
		return fmt.Errorf("register audit task: %w", err)
	}
	return nil
}

func (a *Auditor) Start() {
	a.cron.Start()
	zap.L().Info("Invariant audit started")
}

// Stop waits for a running audit to finish.
func (a *Auditor) Stop() {
	<-a.cron.Stop().Done()
	zap.L().Info("Invariant audit stopped")
}

func (a *Auditor) run() {
	report, err := a.Check(a.ctx)
	if err != nil {
		zap.L().Error("Invariant audit failed", zap.Error(err))
		return
	}
	if !report.Consistent() {
		zap.L().Error("Pool total diverges from user balances",
			zap.Stringer("totalMoney", report.TotalMoney),
			zap.Stringer("sum", report.Sum),
			zap.Int("users", report.Users),
		)
		return
	}
	zap.L().Debug("Invariant audit passed", zap.Stringer("totalMoney", report.TotalMoney), zap.Int("users", report.Users))
}

func (a *Auditor) Check(ctx context.Context) (Report, error) {
	state, err := a.store.GetPoolState(ctx)
	if err != nil {
		return Report{}, err
	}
	identities, err := a.store.ListUserIdentities(ctx)
	if err != nil {
		return Report{}, err
	}

	amounts := make([]domain.Amount, len(identities))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)
	for i, address := range identities {
		g.Go(func() error {
			user, err := a.store.GetUser(gctx, address)
			if err != nil {
				return err
			}
			if user == nil {
				return fmt.Errorf("%w: no record for listed user %s", domain.ErrCorruptedState, address)
			}
			amounts[i] = user.Amount
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	sum := domain.NewAmount(0)
	for _, amount := range amounts {
		if sum, err = sum.Add(amount); err != nil {
			return Report{}, fmt.Errorf("%w: user balances exceed the amount range", domain.ErrCorruptedState)
		}
	}
	return Report{Users: len(identities), TotalMoney: state.TotalMoney, Sum: sum}, nil
}
