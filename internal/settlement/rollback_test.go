package settlement_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
	"github.com/GlebRadaev/poolkeeper/internal/kv"
	"github.com/GlebRadaev/poolkeeper/internal/router"
	"github.com/GlebRadaev/poolkeeper/internal/service/ledgerservice"
	"github.com/GlebRadaev/poolkeeper/internal/service/rankingservice"
	"github.com/GlebRadaev/poolkeeper/internal/settlement"
)

func senderIs(sender string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		record, ok := x.(domain.InstructionRecord)
		return ok && record.Sender == sender
	})
}

func TestRejectedDispatchRollsBackLedger(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	store, err := kv.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ledger := ledgerservice.New(store, store, "pool")
	require.NoError(t, ledger.Instantiate(ctx))
	r := router.New(ledger, rankingservice.New(store), store, nil)

	dispatcher := settlement.NewMockDispatcher(ctrl)
	publisher := settlement.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	executor := settlement.New(r, store, store, dispatcher, publisher)

	_, err = executor.Execute(ctx, "creator", domain.ExecuteMsg{SetTokenAddress: &domain.SetTokenAddress{Address: "T"}})
	require.NoError(t, err)

	dispatcher.EXPECT().Dispatch(gomock.Any(), senderIs("S0")).Return(nil)
	_, err = executor.Execute(ctx, "S0", domain.ExecuteMsg{Deposit: &domain.Deposit{Amount: domain.NewAmount(10)}})
	require.NoError(t, err)

	dispatcher.EXPECT().Dispatch(gomock.Any(), senderIs("S1")).Return(domain.ErrSettlementRejected)
	_, err = executor.Execute(ctx, "S1", domain.ExecuteMsg{Deposit: &domain.Deposit{Amount: domain.NewAmount(20)}})
	assert.ErrorIs(t, err, domain.ErrSettlementRejected)

	dispatcher.EXPECT().Dispatch(gomock.Any(), senderIs("S0")).Return(domain.ErrSettlementRejected)
	_, err = executor.Execute(ctx, "S0", domain.ExecuteMsg{Withdraw: &domain.Withdraw{Amount: domain.NewAmount(4)}})
	assert.ErrorIs(t, err, domain.ErrSettlementRejected)

	users, err := store.ListUserIdentities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"S0"}, users)

	user, err := store.GetUser(ctx, "S0")
	require.NoError(t, err)
	assert.Equal(t, "10", user.Amount.String())

	state, err := store.GetPoolState(ctx)
	require.NoError(t, err)
	assert.Equal(t, "10", state.TotalMoney.String())

	records, err := executor.Instructions(ctx, "S0")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "deposit", records[0].Action)
	assert.Equal(t, domain.InstructionTransferFrom, records[0].Instruction.Kind)

	records, err = executor.Instructions(ctx, "S1")
	require.NoError(t, err)
	assert.Empty(t, records)
}
