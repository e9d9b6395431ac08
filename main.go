package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/checkoutflow/lib/myhttpclient"
	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/lib/mypublisher"
	"github.com/MarcGrol/checkoutflow/lib/mypubsub"
	"github.com/MarcGrol/checkoutflow/lib/myqueue"
	"github.com/MarcGrol/checkoutflow/lib/mystore"
	"github.com/MarcGrol/checkoutflow/lib/mytime"
	"github.com/MarcGrol/checkoutflow/lib/myuuid"
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
	"github.com/MarcGrol/checkoutflow/services/checkoutclient"
	"github.com/MarcGrol/checkoutflow/services/checkoutflow"
	"github.com/MarcGrol/checkoutflow/services/checkoutflow/draftstore"
	"github.com/MarcGrol/checkoutflow/services/orderhistory"
)

func main() {
	c := context.Background()

	router := mux.NewRouter()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}
	logger := mylog.New("checkoutflow")

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	publisher, publisherCleanup, err := createPublisher(c, router, pubsub, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()

	draftStorer, draftStoreCleanup, err := mystore.New[draftstore.DraftRecord](c)
	if err != nil {
		log.Fatalf("Error creating draft store: %s", err)
	}
	defer draftStoreCleanup()

	orderStore, orderStoreCleanup, err := mystore.New[checkoutapi.Order](c)
	if err != nil {
		log.Fatalf("Error creating order store: %s", err)
	}
	defer orderStoreCleanup()

	checkouter := checkoutclient.New(checkoutBackendURL(), myhttpclient.New())
	draftStore := draftstore.New(draftStorer, nower, mylog.New("draftstore"))

	checkoutService := checkoutflow.NewService(draftStore, orderStore, checkouter, publisher, nower, uuider, logger)
	err = checkoutService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering checkout endpoints: %s", err)
	}

	historyStore, historyStoreCleanup, err := mystore.New[orderhistory.OrderRecord](c)
	if err != nil {
		log.Fatalf("Error creating order history store: %s", err)
	}
	defer historyStoreCleanup()

	historyService := orderhistory.NewService(historyStore, pubsub, nower, mylog.New("orderhistory"))
	err = historyService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering order history endpoints: %s", err)
	}

	startWebServerBlocking(router)
}

func createPublisher(c context.Context, router *mux.Router, pubsub mypubsub.PubSub, nower mytime.Nower) (mypublisher.Publisher, func(), error) {
	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating task queue: %s", err)
	}

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		queueCleanup()
		return nil, nil, fmt.Errorf("error creating publisher: %s", err)
	}
	publisher.RegisterEndpoints(c, router)

	return publisher, func() {
		publisherCleanup()
		queueCleanup()
	}, nil
}

func checkoutBackendURL() string {
	url := os.Getenv("CHECKOUT_BACKEND_URL")
	if url == "" {
		url = "http://localhost:9090"
	}
	return url
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s/checkout)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
