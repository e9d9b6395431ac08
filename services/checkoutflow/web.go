package checkoutflow

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/checkoutflow/lib/mycontext"
	"github.com/MarcGrol/checkoutflow/lib/myerrors"
	"github.com/MarcGrol/checkoutflow/lib/myhttp"
	"github.com/MarcGrol/checkoutflow/lib/mylog"
	"github.com/MarcGrol/checkoutflow/lib/mypublisher"
	"github.com/MarcGrol/checkoutflow/lib/mystore"
	"github.com/MarcGrol/checkoutflow/lib/mytime"
	"github.com/MarcGrol/checkoutflow/lib/myuuid"
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
	"github.com/MarcGrol/checkoutflow/services/checkoutclient"
	"github.com/MarcGrol/checkoutflow/services/checkoutflow/checkoutflowevents"
	"github.com/MarcGrol/checkoutflow/services/checkoutflow/draftstore"
)

type webService struct {
	service *service
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(draftStore draftstore.DraftStore, orderStore mystore.Store[checkoutapi.Order], checkouter checkoutclient.Checkouter, publisher mypublisher.Publisher, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger) *webService {
	return &webService{
		service: newService(draftStore, orderStore, checkouter, publisher, nower, uuider, logger),
		logger:  logger,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	// Endpoints that compose the userinterface
	router.HandleFunc("/", s.startNewCheckoutPage()).Methods("GET")
	router.HandleFunc("/checkout", s.startNewCheckoutPage()).Methods("GET")
	router.HandleFunc("/checkout/order/{orderUID}", s.orderConfirmedPage()).Methods("GET")
	router.HandleFunc("/checkout/{sessionUID}/start", s.initializeCheckoutPage()).Methods("GET")
	router.HandleFunc("/checkout/{sessionUID}", s.checkoutStepPage()).Methods("GET")

	// Navigation between the steps
	router.HandleFunc("/checkout/{sessionUID}/next", s.advancePage()).Methods("POST")
	router.HandleFunc("/checkout/{sessionUID}/previous", s.retreatPage()).Methods("POST")

	// Mutations within a step
	router.HandleFunc("/checkout/{sessionUID}/cart/{itemUID}", s.updateCartItemPage()).Methods("POST")
	router.HandleFunc("/checkout/{sessionUID}/cart/{itemUID}/remove", s.removeCartItemPage()).Methods("POST")
	router.HandleFunc("/checkout/{sessionUID}/address", s.addAddressPage()).Methods("POST")
	router.HandleFunc("/checkout/{sessionUID}/address/{addressUID}/select", s.selectAddressPage()).Methods("POST")
	router.HandleFunc("/checkout/{sessionUID}/coupon", s.applyCouponPage()).Methods("POST")
	router.HandleFunc("/checkout/{sessionUID}/coupon/remove", s.removeCouponPage()).Methods("POST")
	router.HandleFunc("/checkout/{sessionUID}/payment", s.selectPaymentPage()).Methods("POST")
	router.HandleFunc("/checkout/{sessionUID}/order", s.placeOrderPage()).Methods("POST")

	// Machine-readable view on a session
	router.HandleFunc("/api/checkout/{sessionUID}", s.checkoutStatus()).Methods("GET")

	err := s.service.publisher.CreateTopic(c, checkoutflowevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", checkoutflowevents.TopicName, err)
	}

	return nil
}

//go:embed templates
var templateFolder embed.FS
var (
	cartPageTemplate    *template.Template
	addressPageTemplate *template.Template
	couponPageTemplate  *template.Template
	pricingPageTemplate *template.Template
	confirmPageTemplate *template.Template
	successPageTemplate *template.Template
)

func init() {
	cartPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/cart.html"))
	addressPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/address.html"))
	couponPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/coupon.html"))
	pricingPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/pricing.html"))
	confirmPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/confirm.html"))
	successPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/success.html"))
}

func templateForStep(step WorkflowStep) *template.Template {
	switch step {
	case StepAddressSelection:
		return addressPageTemplate
	case StepCouponDiscount:
		return couponPageTemplate
	case StepPriceBreakdown:
		return pricingPageTemplate
	case StepOrderConfirmation:
		return confirmPageTemplate
	}
	return cartPageTemplate
}

func (s webService) renderStep(c context.Context, w http.ResponseWriter, snapshot CheckoutSnapshot) {
	errorWriter := myhttp.NewWriter(s.logger)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := templateForStep(snapshot.Step).Execute(w, snapshot)
	if err != nil {
		errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
		return
	}
}

func (s webService) startNewCheckoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionUID := s.service.uuider.Create()

		// Redirect to newly created checkout session
		http.Redirect(w, r, fmt.Sprintf("%s/checkout/%s/start", myhttp.HostnameWithScheme(r), sessionUID), http.StatusSeeOther)
	}
}

func (s webService) initializeCheckoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		snapshot, err := s.service.initialize(c, sessionUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		s.renderStep(c, w, snapshot)
	}
}

func (s webService) checkoutStepPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		sessionUID := mux.Vars(r)["sessionUID"]

		snapshot := s.currentSnapshot(c, sessionUID)

		s.renderStep(c, w, snapshot)
	}
}

// currentSnapshot refreshes the pricing when the shopper is on the breakdown
// page, so that page never shows stale amounts. A failing refresh degrades to
// the last known state with a notice.
func (s webService) currentSnapshot(c context.Context, sessionUID string) CheckoutSnapshot {
	snapshot, _ := s.service.getStatus(c, sessionUID)

	if snapshot.Step == StepPriceBreakdown {
		refreshed, err := s.service.refreshPricing(c, sessionUID)
		if err != nil {
			snapshot.Notices = append(snapshot.Notices, "Could not refresh prices. Amounts shown may be outdated.")
			return snapshot
		}
		return refreshed
	}

	return snapshot
}

func (s webService) advancePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		_, err := s.service.advance(c, sessionUID)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		s.redirectToStepPage(w, r, sessionUID)
	}
}

func (s webService) retreatPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		_, err := s.service.retreat(c, sessionUID)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		s.redirectToStepPage(w, r, sessionUID)
	}
}

func (s webService) updateCartItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]
		itemUID := mux.Vars(r)["itemUID"]

		quantity, err := checkoutapi.NewQuantityFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 3, myerrors.NewInvalidInputError(err))
			return
		}

		snapshot, err := s.service.updateCartItem(c, sessionUID, itemUID, quantity)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		s.renderStep(c, w, snapshot)
	}
}

func (s webService) removeCartItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]
		itemUID := mux.Vars(r)["itemUID"]

		snapshot, err := s.service.removeCartItem(c, sessionUID, itemUID)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		s.renderStep(c, w, snapshot)
	}
}

func (s webService) addAddressPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		address, err := checkoutapi.NewAddressFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 4, myerrors.NewInvalidInputError(err))
			return
		}

		snapshot, err := s.service.addAddress(c, sessionUID, address)
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		s.renderStep(c, w, snapshot)
	}
}

func (s webService) selectAddressPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]
		addressUID := mux.Vars(r)["addressUID"]

		snapshot, err := s.service.selectAddress(c, sessionUID, addressUID)
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		s.renderStep(c, w, snapshot)
	}
}

func (s webService) applyCouponPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		code, err := checkoutapi.NewCouponFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 5, myerrors.NewInvalidInputError(err))
			return
		}

		snapshot, err := s.service.applyCoupon(c, sessionUID, code)
		if err != nil {
			// A rejected code is not an error page: re-render the coupon step
			if myerrors.IsInvalidInput(err) {
				rejected := s.currentSnapshot(c, sessionUID)
				rejected.Notices = append(rejected.Notices, fmt.Sprintf("Coupon %s was not accepted", code))
				s.renderStep(c, w, rejected)
				return
			}
			errorWriter.WriteError(c, w, 5, err)
			return
		}

		s.renderStep(c, w, snapshot)
	}
}

func (s webService) removeCouponPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		snapshot, err := s.service.removeCoupon(c, sessionUID)
		if err != nil {
			errorWriter.WriteError(c, w, 5, err)
			return
		}

		s.renderStep(c, w, snapshot)
	}
}

func (s webService) selectPaymentPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		form, err := checkoutapi.NewPaymentFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 6, myerrors.NewInvalidInputError(err))
			return
		}

		snapshot, err := s.service.selectPayment(c, sessionUID, form)
		if err != nil {
			errorWriter.WriteError(c, w, 6, err)
			return
		}

		s.renderStep(c, w, snapshot)
	}
}

func (s webService) placeOrderPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		order, err := s.service.placeOrder(c, sessionUID)
		if err != nil {
			errorWriter.WriteError(c, w, 7, err)
			return
		}

		// Redirect to the confirmation of the newly created order
		http.Redirect(w, r, fmt.Sprintf("%s/checkout/order/%s", myhttp.HostnameWithScheme(r), order.UID), http.StatusSeeOther)
	}
}

func (s webService) orderConfirmedPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		orderUID := mux.Vars(r)["orderUID"]

		order, err := s.service.getOrder(c, orderUID)
		if err != nil {
			errorWriter.WriteError(c, w, 7, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = successPageTemplate.Execute(w, order)
		if err != nil {
			errorWriter.WriteError(c, w, 7, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s webService) checkoutStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		snapshot, err := s.service.getStatus(c, sessionUID)
		if err != nil {
			responseWriter.WriteError(c, w, 8, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, snapshot)
	}
}

func (s webService) redirectToStepPage(w http.ResponseWriter, r *http.Request, sessionUID string) {
	http.Redirect(w, r, fmt.Sprintf("%s/checkout/%s", myhttp.HostnameWithScheme(r), sessionUID), http.StatusSeeOther)
}
