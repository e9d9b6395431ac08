package checkoutflow

import (
	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/lib/mypublisher"
	"github.com/MarcGrol/checkoutflow/lib/mystore"
	"github.com/MarcGrol/checkoutflow/lib/mytime"
	"github.com/MarcGrol/checkoutflow/lib/myuuid"
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
	"github.com/MarcGrol/checkoutflow/services/checkoutclient"
	"github.com/MarcGrol/checkoutflow/services/checkoutflow/draftstore"
)

type service struct {
	draftStore draftstore.DraftStore
	orderStore mystore.Store[checkoutapi.Order]
	checkouter checkoutclient.Checkouter
	publisher  mypublisher.Publisher
	nower      mytime.Nower
	uuider     myuuid.UUIDer
	logger     mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func newService(draftStore draftstore.DraftStore, orderStore mystore.Store[checkoutapi.Order], checkouter checkoutclient.Checkouter, publisher mypublisher.Publisher, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger) *service {
	return &service{
		draftStore: draftStore,
		orderStore: orderStore,
		checkouter: checkouter,
		publisher:  publisher,
		nower:      nower,
		uuider:     uuider,
		logger:     logger,
	}
}
