package checkoutflow

import (
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
)

// WorkflowStep is the cursor in the linear checkout sequence.
type WorkflowStep int

const (
	StepCartReview WorkflowStep = iota
	StepAddressSelection
	StepCouponDiscount
	StepPriceBreakdown
	StepOrderConfirmation
)

func (s WorkflowStep) String() string {
	switch s {
	case StepCartReview:
		return "cart-review"
	case StepAddressSelection:
		return "address-selection"
	case StepCouponDiscount:
		return "coupon-discount"
	case StepPriceBreakdown:
		return "price-breakdown"
	case StepOrderConfirmation:
		return "order-confirmation"
	}
	return "unknown"
}

func (s WorkflowStep) IsFirst() bool {
	return s == StepCartReview
}

func (s WorkflowStep) IsLast() bool {
	return s == StepOrderConfirmation
}

// CheckoutSnapshot is the read-only view handed to step pages; it carries no
// authority, all mutations go through the service.
type CheckoutSnapshot struct {
	SessionUID string
	Step       WorkflowStep
	Draft      checkoutapi.CheckoutDraft
	Addresses  []checkoutapi.Address
	Notices    []string
}

func (s CheckoutSnapshot) StepName() string {
	return s.Step.String()
}

func (s CheckoutSnapshot) FormattedSubTotal() string {
	return checkoutapi.PriceBreakdown{TotalInCents: s.Draft.SubTotalInCents()}.FormattedTotal()
}
