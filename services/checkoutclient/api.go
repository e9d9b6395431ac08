package checkoutclient

import (
	"context"

	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
)

// Checkouter abstracts all remote operations of the checkout backend.
// Business rejections (bad coupon, failed validation) come back as
// invalid-input errors, infra failures as unavailable/internal errors;
// implementations never panic on expected failure modes.
//
//go:generate mockgen -source=api.go -package checkoutclient -destination checkouter_mock.go Checkouter
type Checkouter interface {
	GetCartItems(c context.Context) ([]checkoutapi.CartItem, error)
	UpdateCartItem(c context.Context, itemUID string, quantity int) ([]checkoutapi.CartItem, error)
	RemoveCartItem(c context.Context, itemUID string) ([]checkoutapi.CartItem, error)
	GetUserAddresses(c context.Context) ([]checkoutapi.Address, error)
	ValidatePostalCode(c context.Context, postalCode string) (checkoutapi.Location, error)
	AddAddress(c context.Context, address checkoutapi.Address) (checkoutapi.Address, error)
	ValidateCoupon(c context.Context, code string, subTotalInCents int, categories []string) (int, error)
	CalculatePricing(c context.Context, items []checkoutapi.CartItem, addressUID string, discountInCents int) (checkoutapi.PriceBreakdown, error)
	ValidateCheckout(c context.Context, data checkoutapi.CheckoutData) error
	CreateOrder(c context.Context, data checkoutapi.CheckoutData) (checkoutapi.Order, error)
}
