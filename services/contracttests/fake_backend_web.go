package contracttests

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/checkoutflow/lib/myerrors"
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
)

// NewFakeBackendHandler exposes a FakeBackend over the backend's REST
// conventions: every response is wrapped in a success/data/error envelope,
// business rejections are success=false, only infra failures are 5xx.
func NewFakeBackendHandler(backend *FakeBackend) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/api/cart", func(w http.ResponseWriter, r *http.Request) {
		items, err := backend.GetCartItems(r.Context())
		writeEnvelope(w, items, err)
	}).Methods("GET")

	router.HandleFunc("/api/cart/item/{itemUID}", func(w http.ResponseWriter, r *http.Request) {
		req := struct {
			Quantity int `json:"quantity"`
		}{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			writeEnvelope(w, nil, myerrors.NewInvalidInputError(err))
			return
		}
		items, err := backend.UpdateCartItem(r.Context(), mux.Vars(r)["itemUID"], req.Quantity)
		writeEnvelope(w, items, err)
	}).Methods("PUT")

	router.HandleFunc("/api/cart/item/{itemUID}", func(w http.ResponseWriter, r *http.Request) {
		items, err := backend.RemoveCartItem(r.Context(), mux.Vars(r)["itemUID"])
		writeEnvelope(w, items, err)
	}).Methods("DELETE")

	router.HandleFunc("/api/addresses", func(w http.ResponseWriter, r *http.Request) {
		addresses, err := backend.GetUserAddresses(r.Context())
		writeEnvelope(w, addresses, err)
	}).Methods("GET")

	router.HandleFunc("/api/addresses", func(w http.ResponseWriter, r *http.Request) {
		address := checkoutapi.Address{}
		err := json.NewDecoder(r.Body).Decode(&address)
		if err != nil {
			writeEnvelope(w, nil, myerrors.NewInvalidInputError(err))
			return
		}
		created, err := backend.AddAddress(r.Context(), address)
		writeEnvelope(w, created, err)
	}).Methods("POST")

	router.HandleFunc("/api/postalcode/{code}", func(w http.ResponseWriter, r *http.Request) {
		location, err := backend.ValidatePostalCode(r.Context(), mux.Vars(r)["code"])
		writeEnvelope(w, location, err)
	}).Methods("GET")

	router.HandleFunc("/api/coupon/validate", func(w http.ResponseWriter, r *http.Request) {
		req := struct {
			Code            string   `json:"code"`
			SubTotalInCents int      `json:"subTotalInCents"`
			Categories      []string `json:"categories"`
		}{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			writeEnvelope(w, nil, myerrors.NewInvalidInputError(err))
			return
		}
		discount, err := backend.ValidateCoupon(r.Context(), req.Code, req.SubTotalInCents, req.Categories)
		writeEnvelope(w, struct {
			DiscountInCents int `json:"discountInCents"`
		}{DiscountInCents: discount}, err)
	}).Methods("POST")

	router.HandleFunc("/api/pricing", func(w http.ResponseWriter, r *http.Request) {
		req := struct {
			Items           []checkoutapi.CartItem `json:"items"`
			AddressUID      string                 `json:"addressUid"`
			DiscountInCents int                    `json:"discountInCents"`
		}{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			writeEnvelope(w, nil, myerrors.NewInvalidInputError(err))
			return
		}
		breakdown, err := backend.CalculatePricing(r.Context(), req.Items, req.AddressUID, req.DiscountInCents)
		writeEnvelope(w, breakdown, err)
	}).Methods("POST")

	router.HandleFunc("/api/checkout/validate", func(w http.ResponseWriter, r *http.Request) {
		data, err := decodeCheckoutData(r)
		if err == nil {
			err = backend.ValidateCheckout(r.Context(), data)
		}
		writeEnvelope(w, nil, err)
	}).Methods("POST")

	router.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		data, err := decodeCheckoutData(r)
		if err != nil {
			writeEnvelope(w, nil, err)
			return
		}
		order, err := backend.CreateOrder(r.Context(), data)
		writeEnvelope(w, order, err)
	}).Methods("POST")

	return router
}

func decodeCheckoutData(r *http.Request) (checkoutapi.CheckoutData, error) {
	data := checkoutapi.CheckoutData{}
	err := json.NewDecoder(r.Body).Decode(&data)
	if err != nil {
		return checkoutapi.CheckoutData{}, myerrors.NewInvalidInputError(err)
	}
	return data, nil
}

func writeEnvelope(w http.ResponseWriter, data any, err error) {
	type envelope struct {
		Success bool   `json:"success"`
		Data    any    `json:"data,omitempty"`
		Error   string `json:"error,omitempty"`
	}

	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		if myerrors.GetHTTPStatus(err) >= http.StatusInternalServerError {
			w.WriteHeader(http.StatusInternalServerError)
		}
		json.NewEncoder(w).Encode(envelope{Success: false, Error: err.Error()})
		return
	}

	json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}
