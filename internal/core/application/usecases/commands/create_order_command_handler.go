package commands

import (
	"context"
	"time"

	"campuseats/internal/core/domain/model/delivery"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Evaluates the promo code, creates the order in SearchingForCourier status,
// and posts an open job on the board unless the order is self-pickup.
type CreateOrderCommandHandler struct {
	uowFactory     OrderJobUoWFactory
	promoEvaluator services.PromoEvaluator
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderJobUoWFactory because placing an order and posting its job
// must commit together.
func NewCreateOrderCommandHandler(
	uowFactory OrderJobUoWFactory,
	promoEvaluator services.PromoEvaluator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		promoEvaluator: promoEvaluator,
	}
}

// Handle processes the order placement command.
//
// A valid promo code reduces the subtotal (or zeroes the delivery fee for a
// free-delivery code); an unknown code fails the command. Self-pickup orders
// are persisted without a job and never enter the courier matching flow.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var subtotal int64
	for _, line := range cmd.Lines() {
		subtotal += line.Total()
	}

	deliveryFee := cmd.DeliveryFee()
	var discount int64
	if cmd.PromoCode() != "" {
		promo, err := h.promoEvaluator.Evaluate(cmd.PromoCode(), subtotal)
		if err != nil {
			return err
		}
		discount = promo.Amount
		if promo.FreeDelivery {
			deliveryFee = 0
		}
	}

	newOrder, err := order.NewOrder(order.NewOrderParams{
		ID:             cmd.OrderID(),
		RequesterID:    cmd.RequesterID(),
		RestaurantName: cmd.RestaurantName(),
		Lines:          cmd.Lines(),
		DeliveryFee:    deliveryFee,
		Destination:    cmd.Destination(),
		DiningHall:     cmd.DiningHall(),
		Notes:          cmd.Notes(),
		Phone:          cmd.Phone(),
		PromoCode:      cmd.PromoCode(),
		Discount:       discount,
	})
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if newOrder.NeedsCourier() {
		job, jobErr := delivery.NewJobFromOrder(newOrder, time.Now())
		if jobErr != nil {
			return jobErr
		}
		if err = uow.JobBoard().Add(ctx, job); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
