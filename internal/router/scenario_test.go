package router_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
	"github.com/GlebRadaev/poolkeeper/internal/kv"
	"github.com/GlebRadaev/poolkeeper/internal/router"
	"github.com/GlebRadaev/poolkeeper/internal/service/ledgerservice"
	"github.com/GlebRadaev/poolkeeper/internal/service/rankingservice"
)

type staticBalances map[string]uint64

func (b staticBalances) Balance(_ context.Context, _, address string) (domain.Amount, error) {
	return domain.NewAmount(b[address]), nil
}

func newScenarioRouter(t *testing.T) (*router.Router, *kv.Store) {
	store, err := kv.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ledger := ledgerservice.New(store, store, "pool")
	require.NoError(t, ledger.Instantiate(context.Background()))
	ranking := rankingservice.New(store)
	return router.New(ledger, ranking, store, staticBalances{"S1": 7}), store
}

func execute(t *testing.T, r *router.Router, store *kv.Store, sender string, msg domain.ExecuteMsg) *domain.Response {
	var resp *domain.Response
	err := store.Begin(context.Background(), func(ctx context.Context) error {
		var err error
		resp, err = r.Execute(ctx, sender, msg)
		return err
	})
	require.NoError(t, err)
	return resp
}

func deposit(n uint64) domain.ExecuteMsg {
	return domain.ExecuteMsg{Deposit: &domain.Deposit{Amount: domain.NewAmount(n)}}
}

func assertPoolMatchesUsers(t *testing.T, store *kv.Store) {
	ctx := context.Background()
	state, err := store.GetPoolState(ctx)
	require.NoError(t, err)

	identities, err := store.ListUserIdentities(ctx)
	require.NoError(t, err)
	sum := domain.NewAmount(0)
	for _, id := range identities {
		user, err := store.GetUser(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, user)
		sum, err = sum.Add(user.Amount)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, sum.Cmp(state.TotalMoney), "pool total %s, users sum %s", state.TotalMoney, sum)
}

func TestPoolScenario(t *testing.T) {
	r, store := newScenarioRouter(t)
	ctx := context.Background()

	resp := execute(t, r, store, "creator", domain.ExecuteMsg{SetTokenAddress: &domain.SetTokenAddress{Address: "T"}})
	assert.Equal(t, router.ActionSetTokenAddress, resp.Action())
	assert.Nil(t, resp.Instruction)

	for sender, amount := range map[string]uint64{"S0": 10, "S1": 20, "S2": 5, "S3": 20} {
		resp := execute(t, r, store, sender, deposit(amount))
		assert.Equal(t, router.ActionDeposit, resp.Action())
		assert.Equal(t, &domain.Instruction{
			Contract:  "T",
			Kind:      domain.InstructionTransferFrom,
			Owner:     sender,
			Recipient: "pool",
			Amount:    domain.NewAmount(amount),
		}, resp.Instruction)
		assertPoolMatchesUsers(t, store)
	}

	users, err := r.Query(ctx, domain.QueryMsg{GetAllUsers: &domain.GetAllUsers{}})
	require.NoError(t, err)
	assert.Equal(t, []string{"S0", "S1", "S2", "S3"}, users)

	resp = execute(t, r, store, "S1", domain.ExecuteMsg{Withdraw: &domain.Withdraw{Amount: domain.NewAmount(5)}})
	assert.Equal(t, router.ActionWithdraw, resp.Action())
	assert.Equal(t, &domain.Instruction{
		Contract:  "T",
		Kind:      domain.InstructionTransfer,
		Recipient: "S1",
		Amount:    domain.NewAmount(5),
	}, resp.Instruction)
	assertPoolMatchesUsers(t, store)

	info, err := r.Query(ctx, domain.QueryMsg{GetUserInfo: &domain.GetUserInfo{Address: "S1"}})
	require.NoError(t, err)
	assert.Equal(t, domain.UserInfo{Address: "S1", Amount: domain.NewAmount(15)}, info)

	top, err := r.Query(ctx, domain.QueryMsg{GetTopUsers: &domain.GetTopUsers{}})
	require.NoError(t, err)
	assert.Equal(t, []domain.UserInfo{
		{Address: "S3", Amount: domain.NewAmount(20)},
		{Address: "S1", Amount: domain.NewAmount(15)},
	}, top)

	balance, err := r.Query(ctx, domain.QueryMsg{GetBalance: &domain.GetBalance{Address: "S1"}})
	require.NoError(t, err)
	assert.Equal(t, domain.BalanceResponse{Balance: domain.NewAmount(7)}, balance)

	state, err := store.GetPoolState(ctx)
	require.NoError(t, err)
	assert.Equal(t, "50", state.TotalMoney.String())
}

func TestRejectedWithdrawLeavesStateUntouched(t *testing.T) {
	r, store := newScenarioRouter(t)
	ctx := context.Background()

	execute(t, r, store, "creator", domain.ExecuteMsg{SetTokenAddress: &domain.SetTokenAddress{Address: "T"}})
	execute(t, r, store, "S0", deposit(10))

	_, err := r.Execute(ctx, "S0", domain.ExecuteMsg{Withdraw: &domain.Withdraw{Amount: domain.NewAmount(11)}})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	_, err = r.Execute(ctx, "S9", domain.ExecuteMsg{Withdraw: &domain.Withdraw{Amount: domain.NewAmount(1)}})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	user, err := store.GetUser(ctx, "S0")
	require.NoError(t, err)
	assert.Equal(t, "10", user.Amount.String())
	assertPoolMatchesUsers(t, store)

	resp := execute(t, r, store, "S0", domain.ExecuteMsg{Withdraw: &domain.Withdraw{Amount: domain.NewAmount(10)}})
	assert.Equal(t, "10", resp.Instruction.Amount.String())

	user, err = store.GetUser(ctx, "S0")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.Amount.IsZero())
	assertPoolMatchesUsers(t, store)
}

func TestBuyDoesNotTouchLedger(t *testing.T) {
	r, store := newScenarioRouter(t)
	ctx := context.Background()

	execute(t, r, store, "creator", domain.ExecuteMsg{SetTokenAddress: &domain.SetTokenAddress{Address: "T"}})
	resp := execute(t, r, store, "S0", domain.ExecuteMsg{BuyToken: &domain.BuyToken{Amount: domain.NewAmount(100)}})
	assert.Equal(t, router.ActionBuy, resp.Action())
	assert.Equal(t, domain.InstructionMint, resp.Instruction.Kind)

	users, err := r.Query(ctx, domain.QueryMsg{GetAllUsers: &domain.GetAllUsers{}})
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = r.Query(ctx, domain.QueryMsg{GetTopUsers: &domain.GetTopUsers{}})
	assert.ErrorIs(t, err, domain.ErrCorruptedState)
}
