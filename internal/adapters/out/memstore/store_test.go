package memstore_test

import (
	"sync"
	"testing"
	"time"

	"campuseats/internal/adapters/out/memstore"
	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/domain/model/delivery"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcUoWFactory func() commands.UoW

func (f funcUoWFactory) Create() commands.UoW { return f() }

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	burger, err := order.NewLine("item-1", "Cheese Burger", 2, 45000)
	require.NoError(t, err)
	dest, err := kernel.NewLocation("loc-12", "Dormitory 12", 15000)
	require.NoError(t, err)
	o, err := order.NewOrder(order.NewOrderParams{
		ID:             kernel.NewUUID(),
		RequesterID:    "user-42",
		RestaurantName: "Burger Land",
		Lines:          []order.Line{burger},
		DeliveryFee:    15000,
		Destination:    &dest,
		Phone:          "+989123456789",
	})
	require.NoError(t, err)
	return o
}

func TestOrderRepository_RoundTrip(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	repo := store.OrderRepository()
	o := newTestOrder(t)

	require.NoError(t, repo.Add(ctx, o))

	loaded, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)

	assert.True(t, loaded.IsEqual(o))
	assert.Equal(t, o.Code(), loaded.Code())
	assert.Equal(t, o.Total(), loaded.Total())
	assert.Equal(t, order.SearchingForCourier, loaded.Status())
	assert.Equal(t, "Dormitory 12", loaded.Destination().Name())
}

func TestOrderRepository_MutationsDoNotLeakBeforeUpdate(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	repo := store.OrderRepository()
	o := newTestOrder(t)
	require.NoError(t, repo.Add(ctx, o))

	// mutate the loaded aggregate without calling Update
	loaded, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	require.NoError(t, loaded.AssignCourier(kernel.NewUUID()))

	reloaded, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.SearchingForCourier, reloaded.Status())
	assert.Nil(t, reloaded.Courier())
}

func TestOrderRepository_Errors(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	repo := store.OrderRepository()
	o := newTestOrder(t)

	t.Run("get unknown order", func(t *testing.T) {
		_, err := repo.Get(ctx, kernel.NewUUID())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("update unknown order", func(t *testing.T) {
		err := repo.Update(ctx, o)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("double add", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, o))
		err := repo.Add(ctx, o)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestJobBoard_TakeIsExactlyOnce(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	board := store.JobBoard()
	o := newTestOrder(t)
	job, err := delivery.NewJobFromOrder(o, time.Now())
	require.NoError(t, err)
	require.NoError(t, board.Add(ctx, job))

	taken, err := board.Take(ctx, job.ID(), time.Now())
	require.NoError(t, err)
	assert.True(t, taken.ID().IsEqual(job.ID()))

	// a taken job reads the same as a lost race, not a missing object
	_, err = board.Take(ctx, job.ID(), time.Now())
	assert.ErrorIs(t, err, errs.ErrConflict)

	_, err = board.Take(ctx, kernel.NewUUID(), time.Now())
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestJobBoard_Expiry(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	board := store.JobBoard()
	o := newTestOrder(t)
	posted := time.Now()
	job, err := delivery.NewJobFromOrder(o, posted)
	require.NoError(t, err)
	require.NoError(t, board.Add(ctx, job))

	afterExpiry := posted.Add(61 * time.Second)

	t.Run("expired job is not claimable", func(t *testing.T) {
		_, err := board.Take(ctx, job.ID(), afterExpiry)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("expired job is hidden from listings", func(t *testing.T) {
		open, err := board.GetAllOpen(ctx, afterExpiry)
		require.NoError(t, err)
		assert.Empty(t, open)
	})

	t.Run("sweep takes the expired job off the board", func(t *testing.T) {
		expired, err := board.TakeExpired(ctx, afterExpiry)
		require.NoError(t, err)
		require.Len(t, expired, 1)
		assert.True(t, expired[0].ID().IsEqual(job.ID()))

		expired, err = board.TakeExpired(ctx, afterExpiry)
		require.NoError(t, err)
		assert.Empty(t, expired)
	})
}

func TestUnitOfWork_RollbackRestoresState(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	factory := memstore.NewUnitOfWorkFactory(store)
	o := newTestOrder(t)
	require.NoError(t, store.OrderRepository().Add(ctx, o))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	loaded, err := uow.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	require.NoError(t, loaded.AssignCourier(kernel.NewUUID()))
	require.NoError(t, uow.OrderRepository().Update(ctx, loaded))
	require.NoError(t, uow.Rollback(ctx))

	reloaded, err := store.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.SearchingForCourier, reloaded.Status())
	assert.Nil(t, reloaded.Courier())
}

func TestUnitOfWork_CommitKeepsState(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	factory := memstore.NewUnitOfWorkFactory(store)
	o := newTestOrder(t)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Commit(ctx))

	assert.ErrorIs(t, uow.Rollback(ctx), memstore.ErrNoActiveTransaction)

	loaded, err := store.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.True(t, loaded.IsEqual(o))
}

// TestConcurrentClaims drives the real claim handler from many goroutines and
// checks that a contested job is won exactly once.
func TestConcurrentClaims(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	uowFactory := memstore.NewUnitOfWorkFactory(store)
	o := newTestOrder(t)
	job, err := delivery.NewJobFromOrder(o, time.Now())
	require.NoError(t, err)
	require.NoError(t, store.OrderRepository().Add(ctx, o))
	require.NoError(t, store.JobBoard().Add(ctx, job))

	handler := commands.NewAcceptJobCommandHandler(funcUoWFactory(func() commands.UoW {
		return uowFactory.Create()
	}))

	const claimants = 32
	var wg sync.WaitGroup
	results := make(chan error, claimants)

	for range claimants {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, cmdErr := commands.NewAcceptJobCommand(o.ID(), kernel.NewUUID())
			if cmdErr != nil {
				results <- cmdErr
				return
			}
			results <- handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for res := range results {
		if res == nil {
			wins++
			continue
		}
		losses++
		assert.ErrorIs(t, res, errs.ErrConflict, "losers get the taken-or-expired conflict")
	}

	assert.Equal(t, 1, wins, "exactly one claimant wins")
	assert.Equal(t, claimants-1, losses)

	claimed, err := store.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.AwaitingPayment, claimed.Status())
	require.NotNil(t, claimed.Courier())

	deliveries, err := store.DeliveryRepository().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, deliveries, 1)
	assert.True(t, deliveries[0].CourierID().IsEqual(*claimed.Courier()))
}
