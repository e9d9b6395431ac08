package draftstore

import (
	"context"
	"time"

	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
)

// DraftRecord is the persisted shape of one checkout session: the draft plus
// the step cursor, written as a whole on every mutation.
type DraftRecord struct {
	SessionUID   string
	Draft        checkoutapi.CheckoutDraft
	Step         int
	LastModified time.Time
}

// DraftStore persists in-progress checkout drafts so a session can be resumed.
// Load and GetStep never fail: absent or unreadable data yields the default
// empty draft at step 0.
//
//go:generate mockgen -source=api.go -package draftstore -destination draftstore_mock.go DraftStore
type DraftStore interface {
	Save(c context.Context, sessionUID string, draft checkoutapi.CheckoutDraft, step int) error
	Load(c context.Context, sessionUID string) (checkoutapi.CheckoutDraft, bool)
	GetStep(c context.Context, sessionUID string) int
	Clear(c context.Context, sessionUID string) error
}
