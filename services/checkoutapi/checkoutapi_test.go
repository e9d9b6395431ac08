package checkoutapi

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraftDerivedValues(t *testing.T) {
	draft := CheckoutDraft{
		Items: []CartItem{
			{UID: "p1", Name: "Tennis racket", PriceInCents: 2500, Quantity: 2, Category: "sports"},
			{UID: "p2", Name: "Tennis balls", PriceInCents: 1000, Quantity: 1, Category: "sports"},
			{UID: "p3", Name: "Water bottle", PriceInCents: 500, Quantity: 1, Category: "outdoor"},
		},
	}

	assert.Equal(t, 6500, draft.SubTotalInCents())
	assert.Equal(t, []string{"outdoor", "sports"}, draft.Categories())
	assert.Equal(t, "2 x Tennis racket, 1 x Tennis balls, 1 x Water bottle", draft.ItemSummary())
	assert.False(t, draft.HasCoupon())
}

func TestSameItems(t *testing.T) {
	items := []CartItem{
		{UID: "p1", PriceInCents: 2500, Quantity: 2},
		{UID: "p2", PriceInCents: 1000, Quantity: 1},
	}
	draft := CheckoutDraft{Items: items}

	assert.True(t, draft.SameItems(items))
	assert.False(t, draft.SameItems(items[:1]))
	assert.False(t, draft.SameItems([]CartItem{
		{UID: "p1", PriceInCents: 2500, Quantity: 3},
		{UID: "p2", PriceInCents: 1000, Quantity: 1},
	}))
}

func TestAddressForm(t *testing.T) {
	t.Run("Valid address", func(t *testing.T) {
		address, err := NewAddressFromValues(url.Values{
			"label":      []string{"home"},
			"street":     []string{"42 Main street"},
			"city":       []string{"Springfield"},
			"state":      []string{"IL"},
			"postalCode": []string{"123456"},
			"country":    []string{"US"},
			"isDefault":  []string{"true"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "42 Main street", address.Street)
		assert.True(t, address.IsDefault)
	})

	t.Run("Missing street", func(t *testing.T) {
		_, err := NewAddressFromValues(url.Values{
			"postalCode": []string{"123456"},
		})
		assert.Error(t, err)
	})

	t.Run("Invalid postal code", func(t *testing.T) {
		_, err := NewAddressFromValues(url.Values{
			"street":     []string{"42 Main street"},
			"postalCode": []string{"12ab56"},
		})
		assert.Error(t, err)
	})
}

func TestPaymentMethod(t *testing.T) {
	assert.True(t, PaymentMethodCard.IsValid())
	assert.True(t, PaymentMethodCashOnDelivery.IsValid())
	assert.False(t, PaymentMethod("bitcoin").IsValid())
}
