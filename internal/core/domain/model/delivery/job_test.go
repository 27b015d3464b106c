package delivery_test

import (
	"testing"
	"time"

	"campuseats/internal/core/domain/model/delivery"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courierOrder(t *testing.T, fee int64) *order.Order {
	t.Helper()
	line, err := order.NewLine("item-1", "Cheese Burger", 2, 95000)
	require.NoError(t, err)
	fries, err := order.NewLine("item-2", "Fries", 1, 10000)
	require.NoError(t, err)
	dest, err := kernel.NewLocation("dorm-12", "Dormitory 12", fee)
	require.NoError(t, err)

	o, err := order.NewOrder(order.NewOrderParams{
		ID:             kernel.NewUUID(),
		RequesterID:    "user-42",
		RestaurantName: "Sharif Fast Food",
		Lines:          []order.Line{line, fries},
		DeliveryFee:    fee,
		Destination:    &dest,
		Notes:          "no onions",
		Phone:          "+989121112233",
	})
	require.NoError(t, err)
	return o
}

func TestNewJobFromOrder(t *testing.T) {
	now := time.Now()

	t.Run("derives job fields from the order", func(t *testing.T) {
		o := courierOrder(t, 25000)

		job, err := delivery.NewJobFromOrder(o, now)
		require.NoError(t, err)

		assert.True(t, job.ID().IsEqual(o.ID()), "job id equals order id")
		assert.Equal(t, "Sharif Fast Food", job.RestaurantName())
		assert.Equal(t, "Sharif Fast Food", job.PickupPoint())
		assert.Equal(t, "Dormitory 12", job.DropOffPoint())
		assert.Equal(t, "2x Cheese Burger, 1x Fries", job.ItemsSummary())
		assert.Equal(t, "no onions", job.Notes())
		assert.Equal(t, "+989121112233", job.Phone())
		assert.False(t, job.IsRequest())
	})

	t.Run("courier earns 80 percent of the delivery fee", func(t *testing.T) {
		job, err := delivery.NewJobFromOrder(courierOrder(t, 25000), now)
		require.NoError(t, err)

		assert.Equal(t, int64(20000), job.Earnings())
	})

	t.Run("job expires 60 seconds after posting", func(t *testing.T) {
		job, err := delivery.NewJobFromOrder(courierOrder(t, 25000), now)
		require.NoError(t, err)

		assert.Equal(t, now.Add(60*time.Second), job.ExpiresAt())
		assert.False(t, job.Expired(now))
		assert.False(t, job.Expired(now.Add(59*time.Second)))
		assert.True(t, job.Expired(now.Add(60*time.Second)))
		assert.True(t, job.Expired(now.Add(61*time.Second)))
	})

	t.Run("rejects self-pickup orders", func(t *testing.T) {
		line, err := order.NewLine("item-1", "Cheese Burger", 1, 95000)
		require.NoError(t, err)
		o, err := order.NewOrder(order.NewOrderParams{
			ID:          kernel.NewUUID(),
			RequesterID: "user-42",
			Lines:       []order.Line{line},
			DiningHall:  "Central Dining Hall",
		})
		require.NoError(t, err)

		_, err = delivery.NewJobFromOrder(o, now)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewRequestJob(t *testing.T) {
	now := time.Now()

	t.Run("creates a custom delivery request job", func(t *testing.T) {
		job, err := delivery.NewRequestJob(
			kernel.NewUUID(), "Sharif Plus", "Sharif Plus counter", "Dormitory 12",
			"Chicken Alfredo Pasta", 250000, now)
		require.NoError(t, err)

		assert.Equal(t, "Chicken Alfredo Pasta", job.ItemsSummary())
		assert.True(t, job.IsRequest())
	})

	t.Run("courier earns 10 percent of the item price", func(t *testing.T) {
		job, err := delivery.NewRequestJob(
			kernel.NewUUID(), "Sharif Plus", "Sharif Plus counter", "Dormitory 12",
			"Chicken Alfredo Pasta", 250000, now)
		require.NoError(t, err)

		assert.Equal(t, int64(25000), job.Earnings())
	})

	t.Run("request stays open for two minutes", func(t *testing.T) {
		job, err := delivery.NewRequestJob(
			kernel.NewUUID(), "Sharif Plus", "Sharif Plus counter", "Dormitory 12",
			"Chicken Alfredo Pasta", 250000, now)
		require.NoError(t, err)

		assert.Equal(t, now.Add(120*time.Second), job.ExpiresAt())
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := delivery.NewRequestJob(kernel.NewUUID(), "Sharif Plus", "counter", "dorm", "", 250000, now)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = delivery.NewRequestJob(kernel.NewUUID(), "Sharif Plus", "counter", "dorm", "Pasta", 0, now)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = delivery.NewRequestJob(kernel.NewUUID(), "Sharif Plus", "", "dorm", "Pasta", 250000, now)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreJob(t *testing.T) {
	t.Run("round-trips a job", func(t *testing.T) {
		now := time.Now()
		original, err := delivery.NewJobFromOrder(courierOrder(t, 25000), now)
		require.NoError(t, err)

		restored, err := delivery.RestoreJob(delivery.RestoreJobParams{
			ID:             original.ID(),
			RestaurantName: original.RestaurantName(),
			PickupPoint:    original.PickupPoint(),
			DropOffPoint:   original.DropOffPoint(),
			ItemsSummary:   original.ItemsSummary(),
			Earnings:       original.Earnings(),
			ExpiresAt:      original.ExpiresAt(),
			Notes:          original.Notes(),
			Phone:          original.Phone(),
			IsRequest:      original.IsRequest(),
		})
		require.NoError(t, err)
		assert.Equal(t, original, restored)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var job delivery.Job
		assert.Equal(t, delivery.ErrJobIsNotConstructed, job.Validate())
	})
}
