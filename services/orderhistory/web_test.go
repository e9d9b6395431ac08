package orderhistory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/checkoutflow/lib/myevents"
	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/lib/mypubsub"
	"github.com/MarcGrol/checkoutflow/lib/mystore"
	"github.com/MarcGrol/checkoutflow/lib/mytime"
	"github.com/MarcGrol/checkoutflow/services/checkoutflow/checkoutflowevents"
)

func TestOrderHistory(t *testing.T) {

	t.Run("Order completion event creates a history record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, store := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/orderhistory/event", strings.NewReader(createPubsubMessage(t,
			checkoutflowevents.OrderCompleted{
				SessionUID:    "sess-1",
				OrderUID:      "order-1",
				TotalInCents:  114841,
				PaymentMethod: "card",
			})))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)

		record, exists, err := store.Get(ctx, "order-1")
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "sess-1", record.SessionUID)
		assert.Equal(t, 114841, record.TotalInCents)
		assert.Equal(t, mytime.ExampleTime, record.CompletedAt)
	})

	t.Run("Duplicate order completion event is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, store := setup(t, ctrl)

		// given
		store.Put(ctx, "order-1", OrderRecord{OrderUID: "order-1", SessionUID: "sess-0", TotalInCents: 100})

		// when
		request, _ := http.NewRequest(http.MethodPost, "/api/orderhistory/event", strings.NewReader(createPubsubMessage(t,
			checkoutflowevents.OrderCompleted{
				SessionUID:    "sess-1",
				OrderUID:      "order-1",
				TotalInCents:  114841,
				PaymentMethod: "card",
			})))
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then: the original record stands
		assert.Equal(t, 200, response.Code)

		record, _, _ := store.Get(ctx, "order-1")
		assert.Equal(t, "sess-0", record.SessionUID)
		assert.Equal(t, 100, record.TotalInCents)
	})

	t.Run("Started event is accepted without a record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _ := setup(t, ctrl)

		// when
		request, _ := http.NewRequest(http.MethodPost, "/api/orderhistory/event", strings.NewReader(createPubsubMessage(t,
			checkoutflowevents.CheckoutStarted{
				SessionUID:      "sess-1",
				ItemCount:       2,
				SubTotalInCents: 104900,
			})))
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
	})

	t.Run("List order history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, store := setup(t, ctrl)

		// given
		store.Put(ctx, "order-1", OrderRecord{OrderUID: "order-1", SessionUID: "sess-1", TotalInCents: 114841, PaymentMethod: "card"})

		// when
		request, _ := http.NewRequest(http.MethodGet, "/api/orderhistory", nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "order-1")
	})
}

func createPubsubMessage(t *testing.T, event myevents.Event) string {
	eventBytes, err := json.Marshal(event)
	assert.NoError(t, err)
	envelope := myevents.EventEnvelope{
		UID:           "event-1",
		CreatedAt:     mytime.ExampleTime,
		Topic:         checkoutflowevents.TopicName,
		AggregateUID:  event.GetAggregateName(),
		EventTypeName: event.GetEventTypeName(),
		EventPayload:  string(eventBytes),
	}
	envelopeBytes, err := json.Marshal(envelope)
	assert.NoError(t, err)

	req := myevents.PushRequest{
		Message: myevents.PushMessage{
			Data: envelopeBytes,
		},
		Subscription: checkoutflowevents.TopicName,
	}
	reqBytes, err := json.Marshal(req)
	assert.NoError(t, err)

	return string(reqBytes)
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, mystore.Store[OrderRecord]) {
	c := context.TODO()
	store, _, _ := mystore.New[OrderRecord](c)
	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()
	pubsub := mypubsub.NewMockPubSub(ctrl)

	sut := NewService(store, pubsub, nower, mylog.New("orderhistory"))
	router := mux.NewRouter()

	// These are called by the following call to RegisterEndpoints()
	pubsub.EXPECT().CreateTopic(c, checkoutflowevents.TopicName).Return(nil)
	pubsub.EXPECT().Subscribe(c, checkoutflowevents.TopicName, "http://localhost:8080/api/orderhistory/event").Return(nil)

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router, store
}
