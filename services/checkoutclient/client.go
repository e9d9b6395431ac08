package checkoutclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MarcGrol/checkoutflow/lib/myerrors"
	"github.com/MarcGrol/checkoutflow/lib/myhttpclient"
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
)

// Every backend response carries this envelope; expected business failures
// come back as success=false with an explanation, never as an HTTP 5xx.
type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type checkoutClient struct {
	baseURL string
	sender  myhttpclient.HTTPSender
}

func New(baseURL string, sender myhttpclient.HTTPSender) Checkouter {
	return &checkoutClient{
		baseURL: baseURL,
		sender:  sender,
	}
}

func call[T any](c context.Context, client *checkoutClient, method string, path string, reqBody any) (T, error) {
	var result T

	var payload []byte
	if reqBody != nil {
		var err error
		payload, err = json.Marshal(reqBody)
		if err != nil {
			return result, myerrors.NewInternalError(fmt.Errorf("error marshalling request for %s %s: %s", method, path, err))
		}
	}

	httpStatus, respPayload, err := client.sender.Send(c, method, client.baseURL+path, payload)
	if err != nil {
		return result, myerrors.NewUnavailableError(fmt.Errorf("error calling %s %s: %s", method, path, err))
	}
	if httpStatus >= http.StatusInternalServerError {
		return result, myerrors.NewUnavailableError(fmt.Errorf("%s %s returned status %d", method, path, httpStatus))
	}

	envelope := apiEnvelope{}
	err = json.Unmarshal(respPayload, &envelope)
	if err != nil {
		return result, myerrors.NewInternalError(fmt.Errorf("error parsing response of %s %s: %s", method, path, err))
	}
	if !envelope.Success {
		return result, myerrors.NewInvalidInputError(fmt.Errorf("%s", envelope.Error))
	}

	if len(envelope.Data) > 0 {
		err = json.Unmarshal(envelope.Data, &result)
		if err != nil {
			return result, myerrors.NewInternalError(fmt.Errorf("error parsing data of %s %s: %s", method, path, err))
		}
	}

	return result, nil
}

func (cc *checkoutClient) GetCartItems(c context.Context) ([]checkoutapi.CartItem, error) {
	return call[[]checkoutapi.CartItem](c, cc, http.MethodGet, "/api/cart", nil)
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (cc *checkoutClient) UpdateCartItem(c context.Context, itemUID string, quantity int) ([]checkoutapi.CartItem, error) {
	path := fmt.Sprintf("/api/cart/item/%s", url.PathEscape(itemUID))
	return call[[]checkoutapi.CartItem](c, cc, http.MethodPut, path, updateCartItemRequest{Quantity: quantity})
}

func (cc *checkoutClient) RemoveCartItem(c context.Context, itemUID string) ([]checkoutapi.CartItem, error) {
	path := fmt.Sprintf("/api/cart/item/%s", url.PathEscape(itemUID))
	return call[[]checkoutapi.CartItem](c, cc, http.MethodDelete, path, nil)
}

func (cc *checkoutClient) GetUserAddresses(c context.Context) ([]checkoutapi.Address, error) {
	return call[[]checkoutapi.Address](c, cc, http.MethodGet, "/api/addresses", nil)
}

func (cc *checkoutClient) ValidatePostalCode(c context.Context, postalCode string) (checkoutapi.Location, error) {
	path := fmt.Sprintf("/api/postalcode/%s", url.PathEscape(postalCode))
	return call[checkoutapi.Location](c, cc, http.MethodGet, path, nil)
}

func (cc *checkoutClient) AddAddress(c context.Context, address checkoutapi.Address) (checkoutapi.Address, error) {
	return call[checkoutapi.Address](c, cc, http.MethodPost, "/api/addresses", address)
}

type validateCouponRequest struct {
	Code            string   `json:"code"`
	SubTotalInCents int      `json:"subTotalInCents"`
	Categories      []string `json:"categories"`
}

type validateCouponResponse struct {
	DiscountInCents int `json:"discountInCents"`
}

func (cc *checkoutClient) ValidateCoupon(c context.Context, code string, subTotalInCents int, categories []string) (int, error) {
	resp, err := call[validateCouponResponse](c, cc, http.MethodPost, "/api/coupon/validate", validateCouponRequest{
		Code:            code,
		SubTotalInCents: subTotalInCents,
		Categories:      categories,
	})
	if err != nil {
		return 0, err
	}
	return resp.DiscountInCents, nil
}

type calculatePricingRequest struct {
	Items           []checkoutapi.CartItem `json:"items"`
	AddressUID      string                 `json:"addressUid"`
	DiscountInCents int                    `json:"discountInCents"`
}

func (cc *checkoutClient) CalculatePricing(c context.Context, items []checkoutapi.CartItem, addressUID string, discountInCents int) (checkoutapi.PriceBreakdown, error) {
	return call[checkoutapi.PriceBreakdown](c, cc, http.MethodPost, "/api/pricing", calculatePricingRequest{
		Items:           items,
		AddressUID:      addressUID,
		DiscountInCents: discountInCents,
	})
}

func (cc *checkoutClient) ValidateCheckout(c context.Context, data checkoutapi.CheckoutData) error {
	_, err := call[struct{}](c, cc, http.MethodPost, "/api/checkout/validate", data)
	return err
}

func (cc *checkoutClient) CreateOrder(c context.Context, data checkoutapi.CheckoutData) (checkoutapi.Order, error) {
	return call[checkoutapi.Order](c, cc, http.MethodPost, "/api/orders", data)
}
