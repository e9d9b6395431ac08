package draftstore

import (
	"context"

	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/lib/mystore"
	"github.com/MarcGrol/checkoutflow/lib/mytime"
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
)

type draftStore struct {
	store  mystore.Store[DraftRecord]
	nower  mytime.Nower
	logger mylog.Logger
}

func New(store mystore.Store[DraftRecord], nower mytime.Nower, logger mylog.Logger) DraftStore {
	return &draftStore{
		store:  store,
		nower:  nower,
		logger: logger,
	}
}

func (ds *draftStore) Save(c context.Context, sessionUID string, draft checkoutapi.CheckoutDraft, step int) error {
	return ds.store.Put(c, sessionUID, DraftRecord{
		SessionUID:   sessionUID,
		Draft:        draft,
		Step:         step,
		LastModified: ds.nower.Now(),
	})
}

func (ds *draftStore) Load(c context.Context, sessionUID string) (checkoutapi.CheckoutDraft, bool) {
	record, found, err := ds.store.Get(c, sessionUID)
	if err != nil {
		// Unreadable data is treated as absence, not as an error
		ds.logger.Log(c, sessionUID, mylog.SeverityWarn, "Error loading draft for session %s: %s", sessionUID, err)
		return checkoutapi.CheckoutDraft{}, false
	}
	if !found {
		return checkoutapi.CheckoutDraft{}, false
	}

	return record.Draft, true
}

func (ds *draftStore) GetStep(c context.Context, sessionUID string) int {
	record, found, err := ds.store.Get(c, sessionUID)
	if err != nil || !found {
		return 0
	}

	return record.Step
}

func (ds *draftStore) Clear(c context.Context, sessionUID string) error {
	return ds.store.Delete(c, sessionUID)
}
