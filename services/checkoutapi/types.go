package checkoutapi

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "cash-on-delivery"
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodWallet         PaymentMethod = "regional-wallet"
	PaymentMethodPayPal         PaymentMethod = "paypal"
)

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodCashOnDelivery, PaymentMethodCard, PaymentMethodWallet, PaymentMethodPayPal:
		return true
	}
	return false
}

type CartItem struct {
	UID          string
	Name         string
	PriceInCents int
	Quantity     int
	MaxQuantity  int
	Category     string
	ImageURL     string
}

func (i CartItem) TotalPriceInCents() int {
	return i.PriceInCents * i.Quantity
}

type Address struct {
	UID        string
	Label      string
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
	IsDefault  bool
}

func (a Address) Summary() string {
	return fmt.Sprintf("%s, %s %s, %s", a.Street, a.PostalCode, a.City, a.Country)
}

// Location is what a postal-code lookup resolves to.
type Location struct {
	City  string
	State string
}

// PriceBreakdown is only ever written with what the pricing service returned,
// never derived locally.
type PriceBreakdown struct {
	SubTotalInCents  int
	TaxInCents       int
	ShippingInCents  int
	DiscountInCents  int
	TotalInCents     int
	DeliveryEstimate string
}

func (p PriceBreakdown) FormattedTotal() string {
	return fmt.Sprintf("$%.2f", float64(p.TotalInCents)/100.0)
}

// Order is the immutable result of a completed checkout.
type Order struct {
	UID           string
	CreatedAt     time.Time
	Status        string
	PaymentStatus string
	PaymentMethod PaymentMethod
	Pricing       PriceBreakdown
}

// CheckoutDraft is the work-in-progress state of one checkout session.
type CheckoutDraft struct {
	Items           []CartItem
	SelectedAddress *Address
	CouponCode      string
	DiscountInCents int
	Pricing         *PriceBreakdown
	PaymentMethod   PaymentMethod
	IsGuest         bool
	GuestEmail      string
}

func (d CheckoutDraft) SubTotalInCents() int {
	var total int
	for _, item := range d.Items {
		total += item.TotalPriceInCents()
	}
	return total
}

func (d CheckoutDraft) Categories() []string {
	unique := map[string]bool{}
	for _, item := range d.Items {
		if item.Category != "" {
			unique[item.Category] = true
		}
	}
	categories := make([]string, 0, len(unique))
	for category := range unique {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

func (d CheckoutDraft) HasCoupon() bool {
	return d.CouponCode != ""
}

func (d CheckoutDraft) ItemSummary() string {
	lines := []string{}
	for _, item := range d.Items {
		lines = append(lines, fmt.Sprintf("%d x %s", item.Quantity, item.Name))
	}
	return strings.Join(lines, ", ")
}

// SameItems tells whether two carts contain the same lines in the same order.
func (d CheckoutDraft) SameItems(other []CartItem) bool {
	if len(d.Items) != len(other) {
		return false
	}
	for i, item := range d.Items {
		if item.UID != other[i].UID || item.Quantity != other[i].Quantity || item.PriceInCents != other[i].PriceInCents {
			return false
		}
	}
	return true
}

// CheckoutData is the full draft as sent to the backend for server-side
// validation and order creation.
type CheckoutData struct {
	SessionUID      string
	Items           []CartItem
	Address         Address
	CouponCode      string
	DiscountInCents int
	PaymentMethod   PaymentMethod
	IsGuest         bool
	GuestEmail      string
	Pricing         PriceBreakdown
}
