// Package http is the inbound HTTP adapter: it binds the REST surface onto
// the application's command and query handlers using Echo.
package http

import (
	"errors"
	"net/http"

	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/model/courier"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// invalidPromoMessage is shown to requesters who enter an unrecognized code.
const invalidPromoMessage = "Invalid promo code."

// Handlers carries the use case handlers the server dispatches to.
type Handlers struct {
	CreateOrder             commands.CreateOrderCommandHandler
	CancelOrder             commands.CancelOrderCommandHandler
	AcceptJob               commands.AcceptJobCommandHandler
	CustomerConfirmPayment  commands.CustomerConfirmPaymentCommandHandler
	CourierConfirmPayment   commands.CourierConfirmPaymentCommandHandler
	UpdateDeliveryStatus    commands.UpdateDeliveryStatusCommandHandler
	CustomerConfirmDelivery commands.CustomerConfirmDeliveryCommandHandler
	RequestDelivery         commands.RequestDeliveryCommandHandler
	UpdateCourierProfile    commands.UpdateCourierProfileCommandHandler

	GetOrder            queries.GetOrderQueryHandler
	ListOpenJobs        queries.ListOpenJobsQueryHandler
	GetActiveDeliveries queries.GetActiveDeliveriesQueryHandler
	GetCourierProfile   queries.GetCourierProfileQueryHandler
}

// Server handles HTTP requests by coordinating between the wire DTOs and the
// application use cases.
type Server struct {
	handlers       Handlers
	promoEvaluator services.PromoEvaluator
}

// NewServer creates a new HTTP server over the given use case handlers.
func NewServer(handlers Handlers, promoEvaluator services.PromoEvaluator) *Server {
	return &Server{
		handlers:       handlers,
		promoEvaluator: promoEvaluator,
	}
}

// RegisterRoutes binds the REST surface onto the Echo router.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/payment/customer-confirm", s.CustomerConfirmPayment)
	api.POST("/orders/:id/payment/courier-confirm", s.CourierConfirmPayment)
	api.POST("/orders/:id/delivery/confirm", s.CustomerConfirmDelivery)
	api.POST("/promo/apply", s.ApplyPromo)

	api.GET("/jobs", s.ListOpenJobs)
	api.POST("/jobs/:id/accept", s.AcceptJob)
	api.POST("/jobs/requests", s.RequestDelivery)

	api.GET("/deliveries", s.GetActiveDeliveries)
	api.POST("/deliveries/:id/status", s.UpdateDeliveryStatus)

	api.GET("/couriers/:id/profile", s.GetCourierProfile)
	api.PUT("/couriers/:id/profile", s.UpdateCourierProfile)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	lines := make([]order.Line, 0, len(req.Lines))
	for _, lineReq := range req.Lines {
		line, err := order.NewLine(lineReq.ItemID, lineReq.Name, lineReq.Quantity, lineReq.UnitPrice)
		if err != nil {
			return respondError(ctx, err)
		}
		lines = append(lines, line)
	}

	var destination *kernel.Location
	if req.Destination != nil {
		loc, err := kernel.NewLocation(req.Destination.ID, req.Destination.Name, req.Destination.Fee)
		if err != nil {
			return respondError(ctx, err)
		}
		destination = &loc
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(commands.CreateOrderParams{
		OrderID:        orderID,
		RequesterID:    req.RequesterID,
		RestaurantName: req.RestaurantName,
		Lines:          lines,
		DeliveryFee:    req.DeliveryFee,
		Destination:    destination,
		DiningHall:     req.DiningHall,
		Notes:          req.Notes,
		Phone:          req.Phone,
		PromoCode:      req.PromoCode,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, services.ErrPromoCodeIsUnknown) {
			return respondBadRequest(ctx, invalidPromoMessage)
		}
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFrom(view))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	var req CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CustomerConfirmPayment handles POST /api/v1/orders/:id/payment/customer-confirm.
func (s *Server) CustomerConfirmPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCustomerConfirmPaymentCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CustomerConfirmPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CourierConfirmPayment handles POST /api/v1/orders/:id/payment/courier-confirm.
func (s *Server) CourierConfirmPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCourierConfirmPaymentCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CourierConfirmPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CustomerConfirmDelivery handles POST /api/v1/orders/:id/delivery/confirm.
func (s *Server) CustomerConfirmDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCustomerConfirmDeliveryCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CustomerConfirmDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyPromo handles POST /api/v1/promo/apply - previews a promo code against
// a subtotal without touching any order.
func (s *Server) ApplyPromo(ctx echo.Context) error {
	var req ApplyPromoRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	discount, err := s.promoEvaluator.Evaluate(req.Code, req.Subtotal)
	if err != nil {
		if errors.Is(err, services.ErrPromoCodeIsUnknown) {
			return respondBadRequest(ctx, invalidPromoMessage)
		}
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ApplyPromoResponse{
		Discount:     discount.Amount,
		FreeDelivery: discount.FreeDelivery,
		Message:      discount.Message,
	})
}

// ListOpenJobs handles GET /api/v1/jobs - lists claimable jobs.
func (s *Server) ListOpenJobs(ctx echo.Context) error {
	views, err := s.handlers.ListOpenJobs.Handle(ctx.Request().Context(), queries.NewListOpenJobsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]JobResponse, len(views))
	for i, view := range views {
		response[i] = JobResponse{
			ID:             view.ID.String(),
			RestaurantName: view.RestaurantName,
			PickupPoint:    view.PickupPoint,
			DropOffPoint:   view.DropOffPoint,
			ItemsSummary:   view.ItemsSummary,
			Earnings:       view.Earnings,
			ExpiresAt:      view.ExpiresAt,
			SecondsLeft:    view.SecondsLeft,
			Notes:          view.Notes,
			Phone:          view.Phone,
			IsRequest:      view.IsRequest,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptJob handles POST /api/v1/jobs/:id/accept - a courier claims a job.
// A contested job is granted to exactly one caller; everyone else gets 409
// with the same "already taken or expired" reason, whether the job was
// claimed, expired, or never existed.
func (s *Server) AcceptJob(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid job id")
	}

	var req AcceptJobRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid courier id")
	}

	cmd, err := commands.NewAcceptJobCommand(jobID, courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.AcceptJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestDelivery handles POST /api/v1/jobs/requests - posts a custom
// delivery request on the job board.
func (s *Server) RequestDelivery(ctx echo.Context) error {
	var req RequestDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewRequestDeliveryCommand(commands.RequestDeliveryParams{
		RequestID:      requestID,
		RestaurantName: req.RestaurantName,
		PickupPoint:    req.PickupPoint,
		DropOffPoint:   req.DropOffPoint,
		FoodName:       req.FoodName,
		Price:          req.Price,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.RequestDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RequestDeliveryResponse{ID: requestID.String()})
}

// GetActiveDeliveries handles GET /api/v1/deliveries - lists deliveries in flight.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	views, err := s.handlers.GetActiveDeliveries.Handle(
		ctx.Request().Context(), queries.NewGetActiveDeliveriesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DeliveryResponse, len(views))
	for i, view := range views {
		response[i] = DeliveryResponse{
			ID:             view.ID.String(),
			CourierID:      view.CourierID.String(),
			RestaurantName: view.RestaurantName,
			PickupPoint:    view.PickupPoint,
			DropOffPoint:   view.DropOffPoint,
			ItemsSummary:   view.ItemsSummary,
			Earnings:       view.Earnings,
			CustomerName:   view.CustomerName,
			CustomerPhone:  view.CustomerPhone,
			Stage:          view.Stage,
			CustomerPaid:   view.CustomerPaid,
			IsRequest:      view.IsRequest,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateDeliveryStatus handles POST /api/v1/deliveries/:id/status - the
// courier reports physical progress.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid delivery id")
	}

	var req UpdateDeliveryStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	stage, ok := getReportableStages()[req.Stage]
	if !ok {
		return respondBadRequest(ctx, "Unknown delivery stage: "+req.Stage)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, stage)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.UpdateDeliveryStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCourierProfile handles GET /api/v1/couriers/:id/profile.
func (s *Server) GetCourierProfile(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid courier id")
	}

	query, err := queries.NewGetCourierProfileQuery(courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.handlers.GetCourierProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CourierProfileResponse{
		ID:                view.ID.String(),
		FullName:          view.FullName,
		ProfilePictureURL: view.ProfilePictureURL,
		BankCardNumber:    view.BankCardNumber,
		Phone:             view.Phone,
		Vehicle:           view.Vehicle,
		Rating:            view.Rating,
	})
}

// UpdateCourierProfile handles PUT /api/v1/couriers/:id/profile.
func (s *Server) UpdateCourierProfile(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid courier id")
	}

	var req UpdateCourierProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCourierProfileCommand(courierID, courier.ProfileChanges{
		FullName:          req.FullName,
		ProfilePictureURL: req.ProfilePictureURL,
		BankCardNumber:    req.BankCardNumber,
		Phone:             req.Phone,
		Vehicle:           req.Vehicle,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.UpdateCourierProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
