package orderhistory

import (
	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/lib/mypubsub"
	"github.com/MarcGrol/checkoutflow/lib/mystore"
	"github.com/MarcGrol/checkoutflow/lib/mytime"
)

type service struct {
	store  mystore.Store[OrderRecord]
	pubsub mypubsub.PubSub
	nower  mytime.Nower
	logger mylog.Logger
}

func newService(store mystore.Store[OrderRecord], pubsub mypubsub.PubSub, nower mytime.Nower, logger mylog.Logger) *service {
	return &service{
		store:  store,
		pubsub: pubsub,
		nower:  nower,
		logger: logger,
	}
}
