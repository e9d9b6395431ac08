package contracttests

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MarcGrol/checkoutflow/lib/myerrors"
	"github.com/MarcGrol/checkoutflow/lib/mystore"
	"github.com/MarcGrol/checkoutflow/lib/myuuid"
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
	"github.com/MarcGrol/checkoutflow/services/checkoutclient"
)

const (
	couponTenPercent        = "SAVE10"
	couponTenPercentMinimum = 10000

	shippingInCents          = 500
	freeShippingThreshold    = 50000
	taxPermille              = 80
	defaultDeliveryEstimate  = "3-5 business days"
	expressDeliveryEstimate  = "1-2 business days"
	expressDeliveryThreshold = 100000
)

// FakeBackend mimics the remote checkout backend in memory. It enforces the
// same business rules the real one does, so it can drive both the contract
// tests and local development.
type FakeBackend struct {
	sync.Mutex
	uuider       myuuid.RealUUIDer
	cart         []checkoutapi.CartItem
	addressStore *mystore.InMemoryStore[checkoutapi.Address]
}

func NewFakeBackend() *FakeBackend {
	addressStore, _, _ := mystore.NewInMemoryStore[checkoutapi.Address](context.Background())
	return &FakeBackend{
		cart: []checkoutapi.CartItem{
			{UID: "item-1", Name: "Laptop", PriceInCents: 99900, Quantity: 1, MaxQuantity: 5, Category: "electronics"},
			{UID: "item-2", Name: "Mouse", PriceInCents: 2500, Quantity: 2, MaxQuantity: 10, Category: "electronics"},
		},
		addressStore: addressStore,
	}
}

func (b *FakeBackend) GetCartItems(c context.Context) ([]checkoutapi.CartItem, error) {
	b.Lock()
	defer b.Unlock()

	return append([]checkoutapi.CartItem{}, b.cart...), nil
}

func (b *FakeBackend) UpdateCartItem(c context.Context, itemUID string, quantity int) ([]checkoutapi.CartItem, error) {
	b.Lock()
	defer b.Unlock()

	for i, item := range b.cart {
		if item.UID != itemUID {
			continue
		}
		if quantity < 1 || quantity > item.MaxQuantity {
			return nil, myerrors.NewInvalidInputErrorf("quantity %d of %s outside range 1-%d", quantity, item.Name, item.MaxQuantity)
		}
		b.cart[i].Quantity = quantity
		return append([]checkoutapi.CartItem{}, b.cart...), nil
	}

	return nil, myerrors.NewInvalidInputErrorf("cart item %s not found", itemUID)
}

func (b *FakeBackend) RemoveCartItem(c context.Context, itemUID string) ([]checkoutapi.CartItem, error) {
	b.Lock()
	defer b.Unlock()

	kept := []checkoutapi.CartItem{}
	found := false
	for _, item := range b.cart {
		if item.UID == itemUID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return nil, myerrors.NewInvalidInputErrorf("cart item %s not found", itemUID)
	}

	b.cart = kept
	return append([]checkoutapi.CartItem{}, b.cart...), nil
}

func (b *FakeBackend) GetUserAddresses(c context.Context) ([]checkoutapi.Address, error) {
	addresses, err := b.addressStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}
	return addresses, nil
}

func (b *FakeBackend) ValidatePostalCode(c context.Context, postalCode string) (checkoutapi.Location, error) {
	if len(postalCode) != 6 || strings.Trim(postalCode, "0123456789") != "" {
		return checkoutapi.Location{}, myerrors.NewInvalidInputErrorf("postal code must be 6 digits, got %q", postalCode)
	}

	// Deterministic made-up geography, keyed on the leading digit
	switch postalCode[0] {
	case '1':
		return checkoutapi.Location{City: "Springfield", State: "IL"}, nil
	case '6':
		return checkoutapi.Location{City: "Shelbyville", State: "IL"}, nil
	default:
		return checkoutapi.Location{City: "Capital City", State: "IL"}, nil
	}
}

func (b *FakeBackend) AddAddress(c context.Context, address checkoutapi.Address) (checkoutapi.Address, error) {
	err := address.Validate()
	if err != nil {
		return checkoutapi.Address{}, err
	}

	address.UID = b.uuider.Create()
	err = b.addressStore.Put(c, address.UID, address)
	if err != nil {
		return checkoutapi.Address{}, myerrors.NewInternalError(err)
	}

	return address, nil
}

func (b *FakeBackend) ValidateCoupon(c context.Context, code string, subTotalInCents int, categories []string) (int, error) {
	if code != couponTenPercent {
		return 0, myerrors.NewInvalidInputErrorf("unknown coupon code %s", code)
	}
	if subTotalInCents < couponTenPercentMinimum {
		return 0, myerrors.NewInvalidInputErrorf("coupon %s requires a minimum order of %d cents", code, couponTenPercentMinimum)
	}

	return subTotalInCents / 10, nil
}

func (b *FakeBackend) CalculatePricing(c context.Context, items []checkoutapi.CartItem, addressUID string, discountInCents int) (checkoutapi.PriceBreakdown, error) {
	if len(items) == 0 {
		return checkoutapi.PriceBreakdown{}, myerrors.NewInvalidInputErrorf("cannot price an empty cart")
	}

	subTotal := 0
	for _, item := range items {
		subTotal += item.TotalPriceInCents()
	}
	if discountInCents > subTotal {
		discountInCents = subTotal
	}

	taxed := subTotal - discountInCents
	tax := taxed * taxPermille / 1000

	shipping := shippingInCents
	if subTotal >= freeShippingThreshold {
		shipping = 0
	}

	estimate := defaultDeliveryEstimate
	if subTotal >= expressDeliveryThreshold {
		estimate = expressDeliveryEstimate
	}

	return checkoutapi.PriceBreakdown{
		SubTotalInCents:  subTotal,
		TaxInCents:       tax,
		ShippingInCents:  shipping,
		DiscountInCents:  discountInCents,
		TotalInCents:     taxed + tax + shipping,
		DeliveryEstimate: estimate,
	}, nil
}

func (b *FakeBackend) ValidateCheckout(c context.Context, data checkoutapi.CheckoutData) error {
	if len(data.Items) == 0 {
		return myerrors.NewInvalidInputErrorf("cannot order an empty cart")
	}
	for _, item := range data.Items {
		if item.Quantity < 1 || item.Quantity > item.MaxQuantity {
			return myerrors.NewInvalidInputErrorf("quantity %d of %s outside range 1-%d", item.Quantity, item.Name, item.MaxQuantity)
		}
	}
	err := data.Address.Validate()
	if err != nil {
		return err
	}
	if !data.PaymentMethod.IsValid() {
		return myerrors.NewInvalidInputError(fmt.Errorf("unsupported payment method %q", data.PaymentMethod))
	}
	if data.IsGuest && data.GuestEmail == "" {
		return myerrors.NewInvalidInputErrorf("guest checkout requires an email address")
	}

	return nil
}

func (b *FakeBackend) CreateOrder(c context.Context, data checkoutapi.CheckoutData) (checkoutapi.Order, error) {
	err := b.ValidateCheckout(c, data)
	if err != nil {
		return checkoutapi.Order{}, err
	}

	paymentStatus := "authorized"
	if data.PaymentMethod == checkoutapi.PaymentMethodCashOnDelivery {
		paymentStatus = "pending"
	}

	return checkoutapi.Order{
		UID:           b.uuider.Create(),
		Status:        "confirmed",
		PaymentStatus: paymentStatus,
		PaymentMethod: data.PaymentMethod,
		Pricing:       data.Pricing,
	}, nil
}

// compile-time check that the fake keeps up with the real interface
var _ checkoutclient.Checkouter = &FakeBackend{}
