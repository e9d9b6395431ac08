package orderhistory

import "time"

// OrderRecord is one line in the completed-order history, derived from
// workflow events rather than from the order store itself.
type OrderRecord struct {
	OrderUID      string
	SessionUID    string
	CompletedAt   time.Time
	TotalInCents  int
	PaymentMethod string
}
