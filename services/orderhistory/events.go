package orderhistory

import (
	"context"
	"fmt"

	"github.com/MarcGrol/checkoutflow/lib/myerrors"
	"github.com/MarcGrol/checkoutflow/lib/myhttp"
	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/services/checkoutflow/checkoutflowevents"
)

func (s *service) Subscribe(c context.Context) error {
	err := s.pubsub.CreateTopic(c, checkoutflowevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", checkoutflowevents.TopicName, err)
	}

	err = s.pubsub.Subscribe(c, checkoutflowevents.TopicName, myhttp.GuessHostnameWithScheme()+"/api/orderhistory/event")
	if err != nil {
		return fmt.Errorf("error subscribing to topic %s: %s", checkoutflowevents.TopicName, err)
	}

	return nil
}

func (s *service) OnCheckoutStarted(c context.Context, topic string, event checkoutflowevents.CheckoutStarted) error {
	s.logger.Log(c, event.SessionUID, mylog.SeverityInfo, "Checkout started: session %s with %d items", event.SessionUID, event.ItemCount)
	return nil
}

func (s *service) OnCheckoutResumed(c context.Context, topic string, event checkoutflowevents.CheckoutResumed) error {
	s.logger.Log(c, event.SessionUID, mylog.SeverityInfo, "Checkout resumed: session %s at step %d", event.SessionUID, event.Step)
	return nil
}

func (s *service) OnOrderCompleted(c context.Context, topic string, event checkoutflowevents.OrderCompleted) error {
	s.logger.Log(c, event.OrderUID, mylog.SeverityInfo, "Order completed: %s out of session %s", event.OrderUID, event.SessionUID)

	err := s.store.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent
		_, found, err := s.store.Get(c, event.OrderUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if found {
			return nil
		}

		err = s.store.Put(c, event.OrderUID, OrderRecord{
			OrderUID:      event.OrderUID,
			SessionUID:    event.SessionUID,
			CompletedAt:   s.nower.Now(),
			TotalInCents:  event.TotalInCents,
			PaymentMethod: event.PaymentMethod,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return nil
}
