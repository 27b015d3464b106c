package http

import (
	"time"

	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/model/delivery"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
// Destination and diningHall are mutually exclusive; an order without a
// dining hall needs a courier and posts a job.
type CreateOrderRequest struct {
	RequesterID    string             `json:"requesterId"`
	RestaurantName string             `json:"restaurantName"`
	Lines          []OrderLineRequest `json:"lines"`
	DeliveryFee    int64              `json:"deliveryFee"`
	Destination    *LocationRequest   `json:"destination,omitempty"`
	DiningHall     string             `json:"diningHall,omitempty"`
	Notes          string             `json:"notes,omitempty"`
	Phone          string             `json:"phone,omitempty"`
	PromoCode      string             `json:"promoCode,omitempty"`
}

// OrderLineRequest is one cart line of a new order.
type OrderLineRequest struct {
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

// LocationRequest identifies a delivery destination from the campus catalog.
type LocationRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Fee  int64  `json:"fee"`
}

// CreateOrderResponse is the body returned after a successful order placement.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// OrderResponse is the body of GET /api/v1/orders/:id.
type OrderResponse struct {
	ID                 string              `json:"id"`
	Code               string              `json:"code"`
	Status             string              `json:"status"`
	RestaurantName     string              `json:"restaurantName"`
	Lines              []OrderLineResponse `json:"lines"`
	Subtotal           int64               `json:"subtotal"`
	DeliveryFee        int64               `json:"deliveryFee"`
	Discount           int64               `json:"discount"`
	Total              int64               `json:"total"`
	PromoCode          string              `json:"promoCode,omitempty"`
	Destination        string              `json:"destination,omitempty"`
	DiningHall         string              `json:"diningHall,omitempty"`
	Notes              string              `json:"notes,omitempty"`
	Phone              string              `json:"phone,omitempty"`
	CourierID          string              `json:"courierId,omitempty"`
	CustomerPaid       bool                `json:"customerPaid"`
	CancellationReason string              `json:"cancellationReason,omitempty"`
	ETAMinutes         int                 `json:"etaMinutes,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
}

// OrderLineResponse is one cart line in the order view.
type OrderLineResponse struct {
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`
}

// orderResponseFrom maps the order read model onto the wire form.
func orderResponseFrom(view queries.GetOrderQueryResponse) OrderResponse {
	lines := make([]OrderLineResponse, len(view.Lines))
	for i, line := range view.Lines {
		lines[i] = OrderLineResponse{
			ItemID:    line.ItemID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Total:     line.Total,
		}
	}

	courierID := ""
	if view.CourierID != nil {
		courierID = view.CourierID.String()
	}

	return OrderResponse{
		ID:                 view.ID.String(),
		Code:               view.Code,
		Status:             view.Status,
		RestaurantName:     view.RestaurantName,
		Lines:              lines,
		Subtotal:           view.Subtotal,
		DeliveryFee:        view.DeliveryFee,
		Discount:           view.Discount,
		Total:              view.Total,
		PromoCode:          view.PromoCode,
		Destination:        view.Destination,
		DiningHall:         view.DiningHall,
		Notes:              view.Notes,
		Phone:              view.Phone,
		CourierID:          courierID,
		CustomerPaid:       view.CustomerPaid,
		CancellationReason: view.CancellationReason,
		ETAMinutes:         view.ETAMinutes,
		CreatedAt:          view.CreatedAt,
	}
}

// CancelOrderRequest is the body of POST /api/v1/orders/:id/cancel.
// The reason is optional while the order is still unclaimed or unpaid.
type CancelOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ApplyPromoRequest is the body of POST /api/v1/promo/apply.
type ApplyPromoRequest struct {
	Code     string `json:"code"`
	Subtotal int64  `json:"subtotal"`
}

// ApplyPromoResponse is the body returned for a recognized promo code.
type ApplyPromoResponse struct {
	Discount     int64  `json:"discount"`
	FreeDelivery bool   `json:"freeDelivery"`
	Message      string `json:"message"`
}

// JobResponse is one open job in the GET /api/v1/jobs listing.
type JobResponse struct {
	ID             string    `json:"id"`
	RestaurantName string    `json:"restaurantName"`
	PickupPoint    string    `json:"pickupPoint"`
	DropOffPoint   string    `json:"dropOffPoint"`
	ItemsSummary   string    `json:"itemsSummary"`
	Earnings       int64     `json:"earnings"`
	ExpiresAt      time.Time `json:"expiresAt"`
	SecondsLeft    int       `json:"secondsLeft"`
	Notes          string    `json:"notes,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	IsRequest      bool      `json:"isRequest"`
}

// AcceptJobRequest is the body of POST /api/v1/jobs/:id/accept.
type AcceptJobRequest struct {
	CourierID string `json:"courierId"`
}

// RequestDeliveryRequest is the body of POST /api/v1/jobs/requests.
type RequestDeliveryRequest struct {
	RestaurantName string `json:"restaurantName"`
	PickupPoint    string `json:"pickupPoint"`
	DropOffPoint   string `json:"dropOffPoint"`
	FoodName       string `json:"foodName"`
	Price          int64  `json:"price"`
}

// RequestDeliveryResponse is the body returned after posting a custom request.
type RequestDeliveryResponse struct {
	ID string `json:"id"`
}

// DeliveryResponse is one active delivery in the GET /api/v1/deliveries listing.
type DeliveryResponse struct {
	ID             string `json:"id"`
	CourierID      string `json:"courierId"`
	RestaurantName string `json:"restaurantName"`
	PickupPoint    string `json:"pickupPoint"`
	DropOffPoint   string `json:"dropOffPoint"`
	ItemsSummary   string `json:"itemsSummary"`
	Earnings       int64  `json:"earnings"`
	CustomerName   string `json:"customerName"`
	CustomerPhone  string `json:"customerPhone,omitempty"`
	Stage          string `json:"stage"`
	CustomerPaid   bool   `json:"customerPaid"`
	IsRequest      bool   `json:"isRequest"`
}

// UpdateDeliveryStatusRequest is the body of POST /api/v1/deliveries/:id/status.
type UpdateDeliveryStatusRequest struct {
	Stage string `json:"stage"`
}

// CourierProfileResponse is the body of GET /api/v1/couriers/:id/profile.
type CourierProfileResponse struct {
	ID                string  `json:"id"`
	FullName          string  `json:"fullName"`
	ProfilePictureURL string  `json:"profilePictureUrl,omitempty"`
	BankCardNumber    string  `json:"bankCardNumber,omitempty"`
	Phone             string  `json:"phone,omitempty"`
	Vehicle           string  `json:"vehicle,omitempty"`
	Rating            float64 `json:"rating"`
}

// UpdateCourierProfileRequest is the body of PUT /api/v1/couriers/:id/profile.
// Absent fields keep their current value.
type UpdateCourierProfileRequest struct {
	FullName          *string `json:"fullName,omitempty"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`
	BankCardNumber    *string `json:"bankCardNumber,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Vehicle           *string `json:"vehicle,omitempty"`
}

// getReportableStages maps the wire stage names onto the domain values a
// courier may report. AwaitingPayment and AtRestaurant are deliberately
// absent: only the payment handshake moves a delivery through them. The
// courier reports "Delivered" at hand-off, which parks the delivery in
// AwaitingCustomerConfirmation until the requester confirms receipt.
func getReportableStages() map[string]delivery.Stage {
	return map[string]delivery.Stage{
		"PickedUp":  delivery.StagePickedUp,
		"OnTheWay":  delivery.StageOnTheWay,
		"Delivered": delivery.StageAwaitingCustomerConfirmation,
	}
}
