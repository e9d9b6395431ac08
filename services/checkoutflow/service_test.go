package checkoutflow

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/lib/mypublisher"
	"github.com/MarcGrol/checkoutflow/lib/mystore"
	"github.com/MarcGrol/checkoutflow/lib/mytime"
	"github.com/MarcGrol/checkoutflow/lib/myuuid"
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
	"github.com/MarcGrol/checkoutflow/services/checkoutclient"
	"github.com/MarcGrol/checkoutflow/services/checkoutflow/checkoutflowevents"
	"github.com/MarcGrol/checkoutflow/services/checkoutflow/draftstore"
)

func TestPersistenceFailuresAreNonFatal(t *testing.T) {

	t.Run("Coupon applies even when the draft cannot be persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, draftStore, checkouter := setupWithMockedDraftStore(t, ctrl)

		// given
		draftStore.EXPECT().Load(gomock.Any(), "sess-1").
			Return(checkoutapi.CheckoutDraft{Items: []checkoutapi.CartItem{laptop}}, true)
		draftStore.EXPECT().GetStep(gomock.Any(), "sess-1").Return(int(StepCouponDiscount))
		checkouter.EXPECT().ValidateCoupon(gomock.Any(), "SAVE10", 99900, []string{"electronics"}).Return(9990, nil)
		draftStore.EXPECT().Save(gomock.Any(), "sess-1", gomock.Any(), int(StepCouponDiscount)).
			Return(fmt.Errorf("datastore unavailable"))

		// when
		snapshot, err := sut.applyCoupon(c, "sess-1", "SAVE10")

		// then: the response reflects the in-memory state
		assert.NoError(t, err)
		assert.Equal(t, "SAVE10", snapshot.Draft.CouponCode)
		assert.Equal(t, 9990, snapshot.Draft.DiscountInCents)
	})

	t.Run("Order completion tolerates a failing draft cleanup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, draftStore, checkouter := setupWithMockedDraftStore(t, ctrl)

		// given
		draftStore.EXPECT().Load(gomock.Any(), "sess-1").
			Return(checkoutapi.CheckoutDraft{
				Items:           []checkoutapi.CartItem{laptop},
				SelectedAddress: &homeAddress,
				Pricing:         &standardPricing,
				PaymentMethod:   checkoutapi.PaymentMethodCard,
			}, true)
		draftStore.EXPECT().GetStep(gomock.Any(), "sess-1").Return(int(StepOrderConfirmation))
		checkouter.EXPECT().ValidateCheckout(gomock.Any(), gomock.Any()).Return(nil)
		checkouter.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(checkoutapi.Order{UID: "order-1", Status: "confirmed", PaymentMethod: checkoutapi.PaymentMethodCard, Pricing: standardPricing}, nil)
		draftStore.EXPECT().Clear(gomock.Any(), "sess-1").Return(fmt.Errorf("datastore unavailable"))

		// when
		order, err := sut.placeOrder(c, "sess-1")

		// then: the order stands, the leftover draft is a cosmetic problem
		assert.NoError(t, err)
		assert.Equal(t, "order-1", order.UID)
	})

	t.Run("Address list failure degrades to a notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, draftStore, checkouter := setupWithMockedDraftStore(t, ctrl)

		// given
		draftStore.EXPECT().Load(gomock.Any(), "sess-1").
			Return(checkoutapi.CheckoutDraft{Items: []checkoutapi.CartItem{laptop}}, true)
		draftStore.EXPECT().GetStep(gomock.Any(), "sess-1").Return(int(StepAddressSelection))
		checkouter.EXPECT().GetUserAddresses(gomock.Any()).Return(nil, fmt.Errorf("connection refused"))

		// when
		snapshot, err := sut.getStatus(c, "sess-1")

		// then
		assert.NoError(t, err)
		assert.Empty(t, snapshot.Addresses)
		assert.Contains(t, snapshot.Notices, "Could not load your saved addresses.")
	})
}

func setupWithMockedDraftStore(t *testing.T, ctrl *gomock.Controller) (context.Context, *service, *draftstore.MockDraftStore, *checkoutclient.MockCheckouter) {
	c := context.TODO()
	orderStorer, _, _ := mystore.New[checkoutapi.Order](c)
	draftStore := draftstore.NewMockDraftStore(ctrl)
	checkouter := checkoutclient.NewMockCheckouter(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), checkoutflowevents.TopicName, gomock.Any()).Return(nil).AnyTimes()
	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()
	uuider := myuuid.NewMockUUIDer(ctrl)

	sut := newService(draftStore, orderStorer, checkouter, publisher, nower, uuider, mylog.New("checkoutflow"))

	return c, sut, draftStore, checkouter
}
