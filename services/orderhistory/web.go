package orderhistory

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/checkoutflow/lib/mycontext"
	"github.com/MarcGrol/checkoutflow/lib/myerrors"
	"github.com/MarcGrol/checkoutflow/lib/myhttp"
	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/lib/mypubsub"
	"github.com/MarcGrol/checkoutflow/lib/mystore"
	"github.com/MarcGrol/checkoutflow/lib/mytime"
	"github.com/MarcGrol/checkoutflow/services/checkoutflow/checkoutflowevents"
)

type webService struct {
	service *service
	logger  mylog.Logger
}

func NewService(store mystore.Store[OrderRecord], pubsub mypubsub.PubSub, nower mytime.Nower, logger mylog.Logger) *webService {
	return &webService{
		service: newService(store, pubsub, nower, logger),
		logger:  logger,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/orderhistory", s.listOrders()).Methods("GET")

	// Pubsub pushes workflow events to this endpoint
	router.HandleFunc("/api/orderhistory/event", s.handleEvent()).Methods("POST")

	return s.service.Subscribe(c)
}

func (s webService) listOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		records, err := s.service.store.Query(c, []mystore.Filter{}, "CompletedAt")
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}

		responseWriter.Write(c, w, http.StatusOK, records)
	}
}

func (s webService) handleEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		err := checkoutflowevents.DispatchEvent(c, r.Body, s.service)
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed event",
		})
	}
}
