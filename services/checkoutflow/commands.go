package checkoutflow

import (
	"context"
	"fmt"

	"github.com/MarcGrol/checkoutflow/lib/myerrors"
	"github.com/MarcGrol/checkoutflow/lib/myevents"
	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
	"github.com/MarcGrol/checkoutflow/services/checkoutflow/checkoutflowevents"
)

// initialize loads the persisted draft (if any) and a fresh cart, merges the
// two and leaves the session on its last saved step. The fresh cart always
// wins; address, coupon and payment preferences carry over. A failing cart
// fetch does not fail the call: the shopper lands on the first step with an
// empty cart and a notice.
func (s *service) initialize(c context.Context, sessionUID string) (CheckoutSnapshot, error) {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Initialize checkout for session %s", sessionUID)

	draft, found := s.draftStore.Load(c, sessionUID)
	step := StepCartReview
	if found {
		step = WorkflowStep(s.draftStore.GetStep(c, sessionUID))
	}

	notices := []string{}

	freshItems, err := s.checkouter.GetCartItems(c)
	if err != nil {
		s.logger.Log(c, sessionUID, mylog.SeverityError, "Error fetching cart for session %s: %s", sessionUID, err)
		return CheckoutSnapshot{
			SessionUID: sessionUID,
			Step:       StepCartReview,
			Draft:      checkoutapi.CheckoutDraft{},
			Notices:    []string{"Could not load your cart. Please try again."},
		}, nil
	}

	cartChanged := found && !draft.SameItems(freshItems)
	draft.Items = freshItems

	// A coupon accepted against the old cart may no longer apply to the new one
	if draft.HasCoupon() && cartChanged {
		draft, notices = s.revalidateCoupon(c, sessionUID, draft, notices)
	}

	// Pricing derives from cart, address and discount: a changed cart makes it stale
	if cartChanged {
		draft.Pricing = nil
	}

	s.saveDraft(c, sessionUID, draft, step)

	if found {
		s.publish(c, sessionUID, checkoutflowevents.CheckoutResumed{
			SessionUID: sessionUID,
			Step:       int(step),
		})
	} else {
		s.publish(c, sessionUID, checkoutflowevents.CheckoutStarted{
			SessionUID:      sessionUID,
			ItemCount:       len(draft.Items),
			SubTotalInCents: draft.SubTotalInCents(),
		})
	}

	return s.snapshot(c, sessionUID, draft, step, notices), nil
}

func (s *service) revalidateCoupon(c context.Context, sessionUID string, draft checkoutapi.CheckoutDraft, notices []string) (checkoutapi.CheckoutDraft, []string) {
	discount, err := s.checkouter.ValidateCoupon(c, draft.CouponCode, draft.SubTotalInCents(), draft.Categories())
	if err != nil {
		if myerrors.IsInvalidInput(err) {
			notices = append(notices, fmt.Sprintf("Coupon %s no longer applies to your cart and has been removed", draft.CouponCode))
			draft.CouponCode = ""
			draft.DiscountInCents = 0
			return draft, notices
		}

		// Backend unreachable: keep the coupon as-is, it is checked again before order creation
		s.logger.Log(c, sessionUID, mylog.SeverityWarn, "Could not re-validate coupon %s for session %s: %s", draft.CouponCode, sessionUID, err)
		return draft, notices
	}

	draft.DiscountInCents = discount
	return draft, notices
}

func (s *service) getStatus(c context.Context, sessionUID string) (CheckoutSnapshot, error) {
	draft, _ := s.draftStore.Load(c, sessionUID)
	step := WorkflowStep(s.draftStore.GetStep(c, sessionUID))

	return s.snapshot(c, sessionUID, draft, step, nil), nil
}

// updateCartItem changes the quantity of one cart line. The backend owns the
// cart: the draft is only touched after it returned the updated cart.
func (s *service) updateCartItem(c context.Context, sessionUID string, itemUID string, quantity int) (CheckoutSnapshot, error) {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Update cart item %s of session %s to quantity %d", itemUID, sessionUID, quantity)

	draft, _ := s.draftStore.Load(c, sessionUID)
	step := WorkflowStep(s.draftStore.GetStep(c, sessionUID))

	items, err := s.checkouter.UpdateCartItem(c, itemUID, quantity)
	if err != nil {
		return CheckoutSnapshot{}, err
	}

	draft.Items = items
	draft.Pricing = nil
	s.saveDraft(c, sessionUID, draft, step)

	return s.snapshot(c, sessionUID, draft, step, nil), nil
}

func (s *service) removeCartItem(c context.Context, sessionUID string, itemUID string) (CheckoutSnapshot, error) {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Remove cart item %s of session %s", itemUID, sessionUID)

	draft, _ := s.draftStore.Load(c, sessionUID)
	step := WorkflowStep(s.draftStore.GetStep(c, sessionUID))

	items, err := s.checkouter.RemoveCartItem(c, itemUID)
	if err != nil {
		return CheckoutSnapshot{}, err
	}

	draft.Items = items
	draft.Pricing = nil
	s.saveDraft(c, sessionUID, draft, step)

	return s.snapshot(c, sessionUID, draft, step, nil), nil
}

func (s *service) selectAddress(c context.Context, sessionUID string, addressUID string) (CheckoutSnapshot, error) {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Select address %s for session %s", addressUID, sessionUID)

	addresses, err := s.checkouter.GetUserAddresses(c)
	if err != nil {
		return CheckoutSnapshot{}, err
	}

	var selected *checkoutapi.Address
	for i := range addresses {
		if addresses[i].UID == addressUID {
			selected = &addresses[i]
			break
		}
	}
	if selected == nil {
		return CheckoutSnapshot{}, myerrors.NewNotFoundError(fmt.Errorf("address with uid %s not found", addressUID))
	}

	draft, _ := s.draftStore.Load(c, sessionUID)
	step := WorkflowStep(s.draftStore.GetStep(c, sessionUID))

	draft.SelectedAddress = selected
	draft.Pricing = nil
	s.saveDraft(c, sessionUID, draft, step)

	return s.snapshot(c, sessionUID, draft, step, nil), nil
}

// addAddress registers a new address with the backend and selects it. When
// city or state are missing they are resolved from the postal code first.
func (s *service) addAddress(c context.Context, sessionUID string, address checkoutapi.Address) (CheckoutSnapshot, error) {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Add address for session %s", sessionUID)

	if address.City == "" || address.State == "" {
		location, err := s.checkouter.ValidatePostalCode(c, address.PostalCode)
		if err != nil {
			return CheckoutSnapshot{}, err
		}
		address.City = location.City
		address.State = location.State
	}

	created, err := s.checkouter.AddAddress(c, address)
	if err != nil {
		return CheckoutSnapshot{}, err
	}

	draft, _ := s.draftStore.Load(c, sessionUID)
	step := WorkflowStep(s.draftStore.GetStep(c, sessionUID))

	draft.SelectedAddress = &created
	draft.Pricing = nil
	s.saveDraft(c, sessionUID, draft, step)

	return s.snapshot(c, sessionUID, draft, step, nil), nil
}

// applyCoupon validates the code with the backend first; nothing in the draft
// changes when validation fails, so a retry resubmits identical data.
func (s *service) applyCoupon(c context.Context, sessionUID string, code string) (CheckoutSnapshot, error) {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Apply coupon %s on session %s", code, sessionUID)

	draft, _ := s.draftStore.Load(c, sessionUID)
	step := WorkflowStep(s.draftStore.GetStep(c, sessionUID))

	discount, err := s.checkouter.ValidateCoupon(c, code, draft.SubTotalInCents(), draft.Categories())
	if err != nil {
		return CheckoutSnapshot{}, err
	}

	draft.CouponCode = code
	draft.DiscountInCents = discount
	draft.Pricing = nil
	s.saveDraft(c, sessionUID, draft, step)

	return s.snapshot(c, sessionUID, draft, step, nil), nil
}

func (s *service) removeCoupon(c context.Context, sessionUID string) (CheckoutSnapshot, error) {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Remove coupon from session %s", sessionUID)

	draft, _ := s.draftStore.Load(c, sessionUID)
	step := WorkflowStep(s.draftStore.GetStep(c, sessionUID))

	draft.CouponCode = ""
	draft.DiscountInCents = 0
	draft.Pricing = nil
	s.saveDraft(c, sessionUID, draft, step)

	return s.snapshot(c, sessionUID, draft, step, nil), nil
}

func (s *service) selectPayment(c context.Context, sessionUID string, form checkoutapi.PaymentForm) (CheckoutSnapshot, error) {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Select payment method %s for session %s", form.Method, sessionUID)

	draft, _ := s.draftStore.Load(c, sessionUID)
	step := WorkflowStep(s.draftStore.GetStep(c, sessionUID))

	draft.PaymentMethod = form.Method
	if form.GuestEmail != "" {
		draft.IsGuest = true
		draft.GuestEmail = form.GuestEmail
	}
	s.saveDraft(c, sessionUID, draft, step)

	return s.snapshot(c, sessionUID, draft, step, nil), nil
}

// refreshPricing asks the backend for a fresh breakdown. The draft's pricing
// is only ever written with what the backend returned, never derived locally.
func (s *service) refreshPricing(c context.Context, sessionUID string) (CheckoutSnapshot, error) {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Refresh pricing for session %s", sessionUID)

	draft, _ := s.draftStore.Load(c, sessionUID)
	step := WorkflowStep(s.draftStore.GetStep(c, sessionUID))

	if draft.SelectedAddress == nil {
		return CheckoutSnapshot{}, myerrors.NewInvalidInputError(fmt.Errorf("no delivery address selected"))
	}

	breakdown, err := s.checkouter.CalculatePricing(c, draft.Items, draft.SelectedAddress.UID, draft.DiscountInCents)
	if err != nil {
		return CheckoutSnapshot{}, err
	}

	recordPriceBreakdown(&draft, breakdown)
	s.saveDraft(c, sessionUID, draft, step)

	return s.snapshot(c, sessionUID, draft, step, nil), nil
}

// recordPriceBreakdown is the single writer of the draft's price breakdown.
func recordPriceBreakdown(draft *checkoutapi.CheckoutDraft, breakdown checkoutapi.PriceBreakdown) {
	draft.Pricing = &breakdown
}

// advance moves the workflow exactly one step forward, after checking the
// preconditions of the current step. Steps cannot be skipped.
func (s *service) advance(c context.Context, sessionUID string) (WorkflowStep, error) {
	draft, _ := s.draftStore.Load(c, sessionUID)
	step := WorkflowStep(s.draftStore.GetStep(c, sessionUID))

	if step >= StepOrderConfirmation {
		return step, myerrors.NewInvalidInputError(fmt.Errorf("already at final step, confirm the order instead"))
	}

	err := checkAdvancePrecondition(step, draft)
	if err != nil {
		return step, err
	}

	step++
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Session %s advances to step %s", sessionUID, step)
	s.saveDraft(c, sessionUID, draft, step)

	return step, nil
}

func checkAdvancePrecondition(step WorkflowStep, draft checkoutapi.CheckoutDraft) error {
	switch step {
	case StepCartReview:
		if len(draft.Items) == 0 {
			return myerrors.NewInvalidInputError(fmt.Errorf("cart is empty"))
		}
	case StepAddressSelection:
		if draft.SelectedAddress == nil {
			return myerrors.NewInvalidInputError(fmt.Errorf("no delivery address selected"))
		}
	case StepPriceBreakdown:
		if draft.Pricing == nil {
			return myerrors.NewInvalidInputError(fmt.Errorf("price breakdown not yet computed"))
		}
	}
	return nil
}

// retreat moves one step back; at the first step it is a no-op.
func (s *service) retreat(c context.Context, sessionUID string) (WorkflowStep, error) {
	draft, _ := s.draftStore.Load(c, sessionUID)
	step := WorkflowStep(s.draftStore.GetStep(c, sessionUID))

	if step <= StepCartReview {
		return step, nil
	}

	step--
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Session %s retreats to step %s", sessionUID, step)
	s.saveDraft(c, sessionUID, draft, step)

	return step, nil
}

// placeOrder runs the server-side validation and creates the order. On any
// failure the draft is left untouched so the shopper can retry as-is. On
// success the draft is gone and the workflow has exited.
func (s *service) placeOrder(c context.Context, sessionUID string) (checkoutapi.Order, error) {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Place order for session %s", sessionUID)

	draft, found := s.draftStore.Load(c, sessionUID)
	step := WorkflowStep(s.draftStore.GetStep(c, sessionUID))

	if !found || step != StepOrderConfirmation {
		return checkoutapi.Order{}, myerrors.NewInvalidInputError(fmt.Errorf("session %s is not ready for order confirmation", sessionUID))
	}
	if draft.SelectedAddress == nil || draft.Pricing == nil {
		return checkoutapi.Order{}, myerrors.NewInvalidInputError(fmt.Errorf("checkout of session %s is incomplete", sessionUID))
	}
	if !draft.PaymentMethod.IsValid() {
		return checkoutapi.Order{}, myerrors.NewInvalidInputError(fmt.Errorf("no payment method selected"))
	}

	data := composeCheckoutData(sessionUID, draft)

	err := s.checkouter.ValidateCheckout(c, data)
	if err != nil {
		return checkoutapi.Order{}, err
	}

	order, err := s.checkouter.CreateOrder(c, data)
	if err != nil {
		return checkoutapi.Order{}, err
	}
	order.CreatedAt = s.nower.Now()

	err = s.completeOrder(c, sessionUID, order)
	if err != nil {
		return checkoutapi.Order{}, err
	}

	return order, nil
}

// completeOrder stores the immutable order, announces it and clears the
// persisted draft. This transition is one-way.
func (s *service) completeOrder(c context.Context, sessionUID string, order checkoutapi.Order) error {
	err := s.orderStore.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent

		err := s.orderStore.Put(c, order.UID, order)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, checkoutflowevents.TopicName, checkoutflowevents.OrderCompleted{
			SessionUID:    sessionUID,
			OrderUID:      order.UID,
			TotalInCents:  order.Pricing.TotalInCents,
			PaymentMethod: string(order.PaymentMethod),
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	err = s.draftStore.Clear(c, sessionUID)
	if err != nil {
		// The order exists; a leftover draft only costs a notice on the next visit
		s.logger.Log(c, sessionUID, mylog.SeverityWarn, "Error clearing draft of session %s: %s", sessionUID, err)
	}

	return nil
}

func (s *service) getOrder(c context.Context, orderUID string) (checkoutapi.Order, error) {
	order, found, err := s.orderStore.Get(c, orderUID)
	if err != nil {
		return checkoutapi.Order{}, myerrors.NewInternalError(err)
	}
	if !found {
		return checkoutapi.Order{}, myerrors.NewNotFoundError(fmt.Errorf("order with uid %s not found", orderUID))
	}

	return order, nil
}

// saveDraft persists the draft after the in-memory mutation it reflects.
// Failure is non-fatal: the response keeps serving the in-memory state.
func (s *service) saveDraft(c context.Context, sessionUID string, draft checkoutapi.CheckoutDraft, step WorkflowStep) {
	err := s.draftStore.Save(c, sessionUID, draft, int(step))
	if err != nil {
		s.logger.Log(c, sessionUID, mylog.SeverityWarn, "Error persisting draft of session %s: %s", sessionUID, err)
	}
}

func (s *service) publish(c context.Context, sessionUID string, event myevents.Event) {
	err := s.publisher.Publish(c, checkoutflowevents.TopicName, event)
	if err != nil {
		s.logger.Log(c, sessionUID, mylog.SeverityWarn, "Error publishing %s for session %s: %s", event.GetEventTypeName(), sessionUID, err)
	}
}

func (s *service) snapshot(c context.Context, sessionUID string, draft checkoutapi.CheckoutDraft, step WorkflowStep, notices []string) CheckoutSnapshot {
	snapshot := CheckoutSnapshot{
		SessionUID: sessionUID,
		Step:       step,
		Draft:      draft,
		Notices:    notices,
	}

	// The address page renders the list of known addresses; missing data
	// degrades to an empty list with a notice
	if step == StepAddressSelection {
		addresses, err := s.checkouter.GetUserAddresses(c)
		if err != nil {
			s.logger.Log(c, sessionUID, mylog.SeverityWarn, "Error fetching addresses for session %s: %s", sessionUID, err)
			snapshot.Notices = append(snapshot.Notices, "Could not load your saved addresses.")
		} else {
			snapshot.Addresses = addresses
		}
	}

	return snapshot
}

func composeCheckoutData(sessionUID string, draft checkoutapi.CheckoutDraft) checkoutapi.CheckoutData {
	return checkoutapi.CheckoutData{
		SessionUID:      sessionUID,
		Items:           draft.Items,
		Address:         *draft.SelectedAddress,
		CouponCode:      draft.CouponCode,
		DiscountInCents: draft.DiscountInCents,
		PaymentMethod:   draft.PaymentMethod,
		IsGuest:         draft.IsGuest,
		GuestEmail:      draft.GuestEmail,
		Pricing:         *draft.Pricing,
	}
}
