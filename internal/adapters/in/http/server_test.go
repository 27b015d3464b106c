package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "campuseats/internal/adapters/in/http"
	"campuseats/internal/adapters/out/memstore"
	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/model/courier"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory adapters narrowing the in-memory unit of work onto the graded
// interfaces each command handler asks for.
type (
	uowFactory              func() commands.UoW
	orderJobUoWFactory      func() commands.OrderJobUoW
	orderDeliveryUoWFactory func() commands.OrderDeliveryUoW
	jobUoWFactory           func() commands.JobUoW
	courierUoWFactory       func() commands.CourierUoW
)

func (f uowFactory) Create() commands.UoW                           { return f() }
func (f orderJobUoWFactory) Create() commands.OrderJobUoW           { return f() }
func (f orderDeliveryUoWFactory) Create() commands.OrderDeliveryUoW { return f() }
func (f jobUoWFactory) Create() commands.JobUoW                     { return f() }
func (f courierUoWFactory) Create() commands.CourierUoW             { return f() }

// testEnv hosts the REST surface over an in-memory store.
type testEnv struct {
	store *memstore.Store
	e     *echo.Echo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memstore.NewStore()
	factory := memstore.NewUnitOfWorkFactory(store)
	promoEvaluator := services.NewPromoEvaluator()
	etaEstimator := services.NewFixedETAEstimator(25)

	handlers := httpapi.Handlers{
		CreateOrder: commands.NewCreateOrderCommandHandler(
			orderJobUoWFactory(func() commands.OrderJobUoW { return factory.Create() }),
			promoEvaluator,
		),
		CancelOrder: commands.NewCancelOrderCommandHandler(
			uowFactory(func() commands.UoW { return factory.Create() }),
		),
		AcceptJob: commands.NewAcceptJobCommandHandler(
			uowFactory(func() commands.UoW { return factory.Create() }),
		),
		CustomerConfirmPayment: commands.NewCustomerConfirmPaymentCommandHandler(
			orderDeliveryUoWFactory(func() commands.OrderDeliveryUoW { return factory.Create() }),
		),
		CourierConfirmPayment: commands.NewCourierConfirmPaymentCommandHandler(
			orderDeliveryUoWFactory(func() commands.OrderDeliveryUoW { return factory.Create() }),
			etaEstimator,
		),
		UpdateDeliveryStatus: commands.NewUpdateDeliveryStatusCommandHandler(
			orderDeliveryUoWFactory(func() commands.OrderDeliveryUoW { return factory.Create() }),
		),
		CustomerConfirmDelivery: commands.NewCustomerConfirmDeliveryCommandHandler(
			orderDeliveryUoWFactory(func() commands.OrderDeliveryUoW { return factory.Create() }),
		),
		RequestDelivery: commands.NewRequestDeliveryCommandHandler(
			jobUoWFactory(func() commands.JobUoW { return factory.Create() }),
		),
		UpdateCourierProfile: commands.NewUpdateCourierProfileCommandHandler(
			courierUoWFactory(func() commands.CourierUoW { return factory.Create() }),
		),

		GetOrder:            queries.NewGetOrderQueryHandler(store.OrderRepository()),
		ListOpenJobs:        queries.NewListOpenJobsQueryHandler(store.JobBoard()),
		GetActiveDeliveries: queries.NewGetActiveDeliveriesQueryHandler(store.DeliveryRepository()),
		GetCourierProfile:   queries.NewGetCourierProfileQueryHandler(store.CourierRepository()),
	}

	e := echo.New()
	httpapi.NewServer(handlers, promoEvaluator).RegisterRoutes(e)

	return &testEnv{store: store, e: e}
}

// do issues one request against the router and returns the recorded response.
func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// createOrder places a standard courier-needed order and returns its id.
func (env *testEnv) createOrder(t *testing.T, promoCode string) string {
	t.Helper()

	rec := env.do(t, http.MethodPost, "/api/v1/orders", httpapi.CreateOrderRequest{
		RequesterID:    "user-42",
		RestaurantName: "Burger Land",
		Lines: []httpapi.OrderLineRequest{
			{ItemID: "item-1", Name: "Cheese Burger", Quantity: 2, UnitPrice: 45000},
			{ItemID: "item-2", Name: "Fries", Quantity: 1, UnitPrice: 20000},
		},
		DeliveryFee: 15000,
		Destination: &httpapi.LocationRequest{ID: "loc-12", Name: "Dormitory 12", Fee: 15000},
		Phone:       "+989123456789",
		PromoCode:   promoCode,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[httpapi.CreateOrderResponse](t, rec).ID
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateOrder_ReturnsIDAndIsReadable(t *testing.T) {
	env := newTestEnv(t)

	id := env.createOrder(t, "")

	rec := env.do(t, http.MethodGet, "/api/v1/orders/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	view := decode[httpapi.OrderResponse](t, rec)
	assert.Equal(t, id, view.ID)
	assert.Regexp(t, `^SHF-[A-Z0-9]{6}$`, view.Code)
	assert.Equal(t, "SearchingForCourier", view.Status)
	assert.Equal(t, int64(110000), view.Subtotal)
	assert.Equal(t, int64(125000), view.Total)
	assert.Equal(t, "Dormitory 12", view.Destination)
	assert.Len(t, view.Lines, 2)
	assert.Equal(t, int64(90000), view.Lines[0].Total)
}

func TestCreateOrder_WithPromo_AppliesDiscount(t *testing.T) {
	env := newTestEnv(t)

	id := env.createOrder(t, "SHARIF30")

	rec := env.do(t, http.MethodGet, "/api/v1/orders/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	view := decode[httpapi.OrderResponse](t, rec)
	assert.Equal(t, "SHARIF30", view.PromoCode)
	assert.Equal(t, int64(33000), view.Discount)
	assert.Equal(t, int64(92000), view.Total)
}

func TestCreateOrder_UnknownPromo_BadRequest(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/orders", httpapi.CreateOrderRequest{
		RequesterID:    "user-42",
		RestaurantName: "Burger Land",
		Lines: []httpapi.OrderLineRequest{
			{ItemID: "item-1", Name: "Cheese Burger", Quantity: 1, UnitPrice: 45000},
		},
		DiningHall: "Central Dining Hall",
		PromoCode:  "BOGUS",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid promo code.", decode[httpapi.ErrorResponse](t, rec).Message)
}

func TestGetOrder_Errors(t *testing.T) {
	env := newTestEnv(t)

	t.Run("unknown order", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/orders/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestApplyPromo(t *testing.T) {
	env := newTestEnv(t)

	t.Run("percentage code", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/promo/apply", httpapi.ApplyPromoRequest{
			Code: "SHARIF30", Subtotal: 100000,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[httpapi.ApplyPromoResponse](t, rec)
		assert.Equal(t, int64(30000), resp.Discount)
		assert.False(t, resp.FreeDelivery)
		assert.Equal(t, "30% discount applied!", resp.Message)
	})

	t.Run("free delivery code", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/promo/apply", httpapi.ApplyPromoRequest{
			Code: "FREEDELIVERY", Subtotal: 100000,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[httpapi.ApplyPromoResponse](t, rec)
		assert.Zero(t, resp.Discount)
		assert.True(t, resp.FreeDelivery)
	})

	t.Run("unknown code", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/promo/apply", httpapi.ApplyPromoRequest{
			Code: "BOGUS", Subtotal: 100000,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid promo code.", decode[httpapi.ErrorResponse](t, rec).Message)
	})
}

func TestAcceptJob_ClaimIsExactlyOnce(t *testing.T) {
	env := newTestEnv(t)
	orderID := env.createOrder(t, "")
	courierID := env.seedCourier(t)

	rec := env.do(t, http.MethodGet, "/api/v1/jobs", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	jobs := decode[[]httpapi.JobResponse](t, rec)
	require.Len(t, jobs, 1)
	assert.Equal(t, orderID, jobs[0].ID)
	assert.Equal(t, int64(12000), jobs[0].Earnings)
	assert.False(t, jobs[0].IsRequest)
	assert.Positive(t, jobs[0].SecondsLeft)

	accept := httpapi.AcceptJobRequest{CourierID: courierID}
	rec = env.do(t, http.MethodPost, "/api/v1/jobs/"+orderID+"/accept", accept)
	assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	// a second claim conflicts; the loser cannot tell taken from expired
	rec = env.do(t, http.MethodPost, "/api/v1/jobs/"+orderID+"/accept", accept)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[httpapi.OrderResponse](t, rec)
	assert.Equal(t, "AwaitingPayment", view.Status)
	assert.Equal(t, courierID, view.CourierID)

	rec = env.do(t, http.MethodGet, "/api/v1/deliveries", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	deliveries := decode[[]httpapi.DeliveryResponse](t, rec)
	require.Len(t, deliveries, 1)
	assert.Equal(t, orderID, deliveries[0].ID)
	assert.Equal(t, "AwaitingPayment", deliveries[0].Stage)
}

func TestDeliveryWorkflow_HappyPath(t *testing.T) {
	env := newTestEnv(t)
	orderID := env.createOrder(t, "")
	courierID := env.seedCourier(t)

	rec := env.do(t, http.MethodPost, "/api/v1/jobs/"+orderID+"/accept",
		httpapi.AcceptJobRequest{CourierID: courierID})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/api/v1/orders/"+orderID+"/payment/customer-confirm", nil)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/api/v1/orders/"+orderID+"/payment/courier-confirm", nil)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/v1/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[httpapi.OrderResponse](t, rec)
	assert.Equal(t, "PaymentConfirmed", view.Status)
	assert.Equal(t, 25, view.ETAMinutes)

	for _, stage := range []string{"PickedUp", "OnTheWay", "Delivered"} {
		rec = env.do(t, http.MethodPost, "/api/v1/deliveries/"+orderID+"/status",
			httpapi.UpdateDeliveryStatusRequest{Stage: stage})
		require.Equal(t, http.StatusNoContent, rec.Code, "stage %s: %s", stage, rec.Body.String())
	}

	rec = env.do(t, http.MethodPost, "/api/v1/orders/"+orderID+"/delivery/confirm", nil)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/v1/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Delivered", decode[httpapi.OrderResponse](t, rec).Status)

	rec = env.do(t, http.MethodGet, "/api/v1/deliveries", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]httpapi.DeliveryResponse](t, rec))
}

func TestCustomerConfirmPayment_BeforeClaim_Conflict(t *testing.T) {
	env := newTestEnv(t)
	orderID := env.createOrder(t, "")

	rec := env.do(t, http.MethodPost, "/api/v1/orders/"+orderID+"/payment/customer-confirm", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateDeliveryStatus_UnknownStage_BadRequest(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/deliveries/"+kernel.NewUUID().String()+"/status",
		httpapi.UpdateDeliveryStatusRequest{Stage: "Teleporting"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[httpapi.ErrorResponse](t, rec).Message, "Teleporting")
}

func TestUpdateDeliveryStatus_PaymentStagesAreNotReportable(t *testing.T) {
	env := newTestEnv(t)
	orderID := env.createOrder(t, "")
	courierID := env.seedCourier(t)

	rec := env.do(t, http.MethodPost, "/api/v1/jobs/"+orderID+"/accept",
		httpapi.AcceptJobRequest{CourierID: courierID})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	// only the payment handshake can move a delivery to AtRestaurant
	for _, stage := range []string{"AwaitingPayment", "AtRestaurant"} {
		rec = env.do(t, http.MethodPost, "/api/v1/deliveries/"+orderID+"/status",
			httpapi.UpdateDeliveryStatusRequest{Stage: stage})
		assert.Equal(t, http.StatusBadRequest, rec.Code, stage)
	}

	rec = env.do(t, http.MethodGet, "/api/v1/deliveries", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	deliveries := decode[[]httpapi.DeliveryResponse](t, rec)
	require.Len(t, deliveries, 1)
	assert.Equal(t, "AwaitingPayment", deliveries[0].Stage)
}

func TestCancelOrder_RemovesJob(t *testing.T) {
	env := newTestEnv(t)
	orderID := env.createOrder(t, "")

	rec := env.do(t, http.MethodPost, "/api/v1/orders/"+orderID+"/cancel",
		httpapi.CancelOrderRequest{Reason: "Ordered by mistake"})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/v1/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[httpapi.OrderResponse](t, rec)
	assert.Equal(t, "CancelledByUser", view.Status)
	assert.Equal(t, "Ordered by mistake", view.CancellationReason)

	rec = env.do(t, http.MethodGet, "/api/v1/jobs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]httpapi.JobResponse](t, rec))
}

func TestRequestDelivery_PostsRequestJob(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/jobs/requests", httpapi.RequestDeliveryRequest{
		RestaurantName: "Tea House",
		PickupPoint:    "North Gate",
		DropOffPoint:   "Library",
		FoodName:       "Saffron Tea",
		Price:          80000,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	requestID := decode[httpapi.RequestDeliveryResponse](t, rec).ID

	rec = env.do(t, http.MethodGet, "/api/v1/jobs", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	jobs := decode[[]httpapi.JobResponse](t, rec)
	require.Len(t, jobs, 1)
	assert.Equal(t, requestID, jobs[0].ID)
	assert.True(t, jobs[0].IsRequest)
	assert.Equal(t, int64(8000), jobs[0].Earnings)
	assert.Equal(t, "North Gate", jobs[0].PickupPoint)
	assert.Equal(t, "Library", jobs[0].DropOffPoint)
}

func TestCourierProfile(t *testing.T) {
	env := newTestEnv(t)
	courierID := env.seedCourier(t)

	t.Run("get existing", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/couriers/"+courierID+"/profile", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		profile := decode[httpapi.CourierProfileResponse](t, rec)
		assert.Equal(t, "Ali Ahmadi", profile.FullName)
		assert.Equal(t, "Motorcycle", profile.Vehicle)
		assert.InDelta(t, 4.8, profile.Rating, 0.001)
	})

	t.Run("get unknown", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/couriers/"+kernel.NewUUID().String()+"/profile", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("partial update", func(t *testing.T) {
		vehicle := "Bicycle"
		rec := env.do(t, http.MethodPut, "/api/v1/couriers/"+courierID+"/profile",
			httpapi.UpdateCourierProfileRequest{Vehicle: &vehicle})
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		rec = env.do(t, http.MethodGet, "/api/v1/couriers/"+courierID+"/profile", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		profile := decode[httpapi.CourierProfileResponse](t, rec)
		assert.Equal(t, "Bicycle", profile.Vehicle)
		// untouched fields survive the update
		assert.Equal(t, "Ali Ahmadi", profile.FullName)
	})
}

// seedCourier stores a courier profile directly and returns its id.
func (env *testEnv) seedCourier(t *testing.T) string {
	t.Helper()

	profile, err := courier.NewProfile(
		kernel.NewUUID(),
		"Ali Ahmadi",
		"https://cdn.example.com/avatars/ali.png",
		"6037-9918-1234-5678",
		"+989121112233",
		"Motorcycle",
		4.8,
	)
	require.NoError(t, err)
	require.NoError(t, env.store.CourierRepository().Add(t.Context(), profile))
	return profile.ID().String()
}
