package checkoutapi

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	formcodec "github.com/go-playground/form/v4"

	"github.com/MarcGrol/checkoutflow/lib/myerrors"
)

var postalCodeRegexp = regexp.MustCompile(`^[0-9]{6}$`)

// AddressForm is what the address-selection step posts when adding a new address.
type AddressForm struct {
	Label      string `form:"label"`
	Street     string `form:"street"`
	City       string `form:"city"`
	State      string `form:"state"`
	PostalCode string `form:"postalCode"`
	Country    string `form:"country"`
	IsDefault  bool   `form:"isDefault"`
}

func NewAddressFromRequest(r *http.Request) (Address, error) {
	err := r.ParseForm()
	if err != nil {
		return Address{}, myerrors.NewInvalidInputError(err)
	}
	return NewAddressFromValues(r.Form)
}

func NewAddressFromValues(values url.Values) (Address, error) {
	form := AddressForm{}
	err := formcodec.NewDecoder().Decode(&form, values)
	if err != nil {
		return Address{}, myerrors.NewInvalidInputErrorf("error decoding address form: %s", err)
	}

	address := Address{
		Label:      form.Label,
		Street:     form.Street,
		City:       form.City,
		State:      form.State,
		PostalCode: form.PostalCode,
		Country:    form.Country,
		IsDefault:  form.IsDefault,
	}
	err = address.Validate()
	if err != nil {
		return Address{}, err
	}

	return address, nil
}

func (a Address) Validate() error {
	if a.Street == "" {
		return myerrors.NewInvalidInputErrorf("missing street")
	}
	if !postalCodeRegexp.MatchString(a.PostalCode) {
		return myerrors.NewInvalidInputErrorf("postal code must be 6 digits, got %q", a.PostalCode)
	}
	return nil
}

// CouponForm is what the coupon step posts.
type CouponForm struct {
	Code string `form:"code"`
}

func NewCouponFromRequest(r *http.Request) (string, error) {
	err := r.ParseForm()
	if err != nil {
		return "", myerrors.NewInvalidInputError(err)
	}

	form := CouponForm{}
	err = formcodec.NewDecoder().Decode(&form, r.Form)
	if err != nil {
		return "", myerrors.NewInvalidInputErrorf("error decoding coupon form: %s", err)
	}
	if form.Code == "" {
		return "", myerrors.NewInvalidInputErrorf("missing coupon code")
	}

	return form.Code, nil
}

// PaymentForm is what the confirmation step posts to select a payment method.
type PaymentForm struct {
	Method     PaymentMethod `form:"method"`
	GuestEmail string        `form:"guestEmail"`
}

func NewPaymentFromRequest(r *http.Request) (PaymentForm, error) {
	err := r.ParseForm()
	if err != nil {
		return PaymentForm{}, myerrors.NewInvalidInputError(err)
	}

	form := PaymentForm{}
	err = formcodec.NewDecoder().Decode(&form, r.Form)
	if err != nil {
		return PaymentForm{}, myerrors.NewInvalidInputErrorf("error decoding payment form: %s", err)
	}
	if !form.Method.IsValid() {
		return PaymentForm{}, myerrors.NewInvalidInputError(fmt.Errorf("unsupported payment method %q", form.Method))
	}

	return form, nil
}

// QuantityForm is what the cart step posts on a quantity change.
type QuantityForm struct {
	Quantity int `form:"quantity"`
}

func NewQuantityFromRequest(r *http.Request) (int, error) {
	err := r.ParseForm()
	if err != nil {
		return 0, myerrors.NewInvalidInputError(err)
	}

	form := QuantityForm{}
	err = formcodec.NewDecoder().Decode(&form, r.Form)
	if err != nil {
		return 0, myerrors.NewInvalidInputErrorf("error decoding quantity form: %s", err)
	}
	if form.Quantity < 1 {
		return 0, myerrors.NewInvalidInputErrorf("quantity must be positive, got %d", form.Quantity)
	}

	return form.Quantity, nil
}
