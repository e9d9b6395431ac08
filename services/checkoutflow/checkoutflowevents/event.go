package checkoutflowevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MarcGrol/checkoutflow/lib/myerrors"
	"github.com/MarcGrol/checkoutflow/lib/myevents"
)

const (
	TopicName           = "checkoutflow"
	checkoutStartedName = TopicName + ".started"
	checkoutResumedName = TopicName + ".resumed"
	orderCompletedName  = TopicName + ".orderCompleted"
)

type CheckoutFlowEventService interface {
	Subscribe(c context.Context) error
	OnCheckoutStarted(c context.Context, topic string, event CheckoutStarted) error
	OnCheckoutResumed(c context.Context, topic string, event CheckoutResumed) error
	OnOrderCompleted(c context.Context, topic string, event OrderCompleted) error
}

func DispatchEvent(c context.Context, reader io.Reader, service CheckoutFlowEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case checkoutStartedName:
		{
			event := CheckoutStarted{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnCheckoutStarted(c, envelope.Topic, event)
		}
	case checkoutResumedName:
		{
			event := CheckoutResumed{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnCheckoutResumed(c, envelope.Topic, event)
		}
	case orderCompletedName:
		{
			event := OrderCompleted{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnOrderCompleted(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf("%s", envelope.EventTypeName))
	}
}

type CheckoutStarted struct {
	SessionUID      string
	ItemCount       int
	SubTotalInCents int
}

func (e CheckoutStarted) GetEventTypeName() string {
	return checkoutStartedName
}

func (e CheckoutStarted) GetAggregateName() string {
	return e.SessionUID
}

type CheckoutResumed struct {
	SessionUID string
	Step       int
}

func (e CheckoutResumed) GetEventTypeName() string {
	return checkoutResumedName
}

func (e CheckoutResumed) GetAggregateName() string {
	return e.SessionUID
}

type OrderCompleted struct {
	SessionUID    string
	OrderUID      string
	TotalInCents  int
	PaymentMethod string
}

func (e OrderCompleted) GetEventTypeName() string {
	return orderCompletedName
}

func (e OrderCompleted) GetAggregateName() string {
	return e.OrderUID
}
