package checkoutclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/checkoutflow/lib/myerrors"
	"github.com/MarcGrol/checkoutflow/lib/myhttpclient"
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
)

func TestGetCartItems(t *testing.T) {
	c := context.TODO()

	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/cart", r.URL.Path)
		writeEnvelope(w, true, []checkoutapi.CartItem{
			{UID: "p1", Name: "Tennis racket", PriceInCents: 2500, Quantity: 2},
		}, "")
	}))
	defer server.Close()

	// when
	client := New(server.URL, myhttpclient.New())
	items, err := client.GetCartItems(c)

	// then
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Tennis racket", items[0].Name)
}

func TestValidateCouponRejection(t *testing.T) {
	c := context.TODO()

	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/coupon/validate", r.URL.Path)

		req := map[string]any{}
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Equal(t, "SAVE10", req["code"])

		writeEnvelope(w, false, nil, "minimum order value not reached")
	}))
	defer server.Close()

	// when
	client := New(server.URL, myhttpclient.New())
	discount, err := client.ValidateCoupon(c, "SAVE10", 6000, []string{"sports"})

	// then
	assert.Error(t, err)
	assert.True(t, myerrors.IsInvalidInput(err))
	assert.Equal(t, 0, discount)
}

func TestValidateCouponAccepted(t *testing.T) {
	c := context.TODO()

	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, true, map[string]int{"discountInCents": 1200}, "")
	}))
	defer server.Close()

	// when
	client := New(server.URL, myhttpclient.New())
	discount, err := client.ValidateCoupon(c, "SAVE10", 12000, []string{"sports"})

	// then
	assert.NoError(t, err)
	assert.Equal(t, 1200, discount)
}

func TestBackendDown(t *testing.T) {
	c := context.TODO()

	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	// when
	client := New(server.URL, myhttpclient.New())
	_, err := client.GetCartItems(c)

	// then
	assert.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, myerrors.GetHTTPStatus(err))
}

func TestCreateOrder(t *testing.T) {
	c := context.TODO()

	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)

		data := checkoutapi.CheckoutData{}
		err := json.NewDecoder(r.Body).Decode(&data)
		assert.NoError(t, err)
		assert.Equal(t, "session-123", data.SessionUID)

		writeEnvelope(w, true, checkoutapi.Order{
			UID:           "order-1",
			Status:        "created",
			PaymentStatus: "pending",
			PaymentMethod: data.PaymentMethod,
			Pricing:       data.Pricing,
		}, "")
	}))
	defer server.Close()

	// when
	client := New(server.URL, myhttpclient.New())
	order, err := client.CreateOrder(c, checkoutapi.CheckoutData{
		SessionUID:    "session-123",
		PaymentMethod: checkoutapi.PaymentMethodCard,
		Pricing:       checkoutapi.PriceBreakdown{TotalInCents: 13200},
	})

	// then
	assert.NoError(t, err)
	assert.Equal(t, "order-1", order.UID)
	assert.Equal(t, 13200, order.Pricing.TotalInCents)
}

func writeEnvelope(w http.ResponseWriter, success bool, data any, errorMsg string) {
	resp := map[string]any{"success": success}
	if data != nil {
		resp["data"] = data
	}
	if errorMsg != "" {
		resp["error"] = errorMsg
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
