package presenters

import (
	"errors"
	"net/http"
	"time"

	"bomapay-gateway/application"
	"bomapay-gateway/domain/request_params"
	gwerrors "bomapay-gateway/errors"
	"bomapay-gateway/utils/helpers"
	"bomapay-gateway/utils/testcards"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// PaymentAPI exposes a small JSON API over the SDK: the sandbox card list, instant payments and
// order status.
type PaymentAPI struct {
	Client *application.Client
	Logger *zap.Logger
}

type PaymentResult struct {
	Success         bool   `json:"success"`
	OrderId         string `json:"order_id,omitempty"`
	OrderNumber     string `json:"order_number"`
	Amount          string `json:"amount"`
	RequiresStepUp  bool   `json:"requires_3ds"`
	AcsUrl          string `json:"acs_url,omitempty"`
	PaReq           string `json:"pa_req,omitempty"`
	TermUrl         string `json:"term_url,omitempty"`
	RedirectUrl     string `json:"redirect_url,omitempty"`
	ErrorCode       string `json:"error_code,omitempty"`
	ErrorMessage    string `json:"error_message,omitempty"`
	ProcessingMilli int64  `json:"processing_ms"`
}

type OrderStatusResult struct {
	Success      bool   `json:"success"`
	OrderNumber  string `json:"order_number,omitempty"`
	Status       string `json:"status,omitempty"`
	Amount       string `json:"amount,omitempty"`
	ErrorCode    string `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

type errorBody struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func NewPaymentAPI(client *application.Client, logger *zap.Logger) *PaymentAPI {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentAPI{Client: client, Logger: logger}
}

func (a *PaymentAPI) AppendRoutes(r chi.Router) {
	r.Route("/payment", func(r chi.Router) {
		r.Get("/test-cards", a.listTestCards)
		r.Post("/api/process", a.processPayment)
		r.Get("/orders/{orderID}", a.orderStatus)
	})
}

// Router builds the full handler with request ids, access logs and panic recovery.
func (a *PaymentAPI) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(WrapperLogging(a.Logger))
	r.Use(middleware.Recoverer)
	a.AppendRoutes(r)
	return r
}

func (a *PaymentAPI) listTestCards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, testcards.All())
}

func (a *PaymentAPI) processPayment(w http.ResponseWriter, r *http.Request) {
	input := helpers.PaymentInput{}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	if err := helpers.ValidatePayment(input); err != nil {
		writeJSON(w, http.StatusBadRequest, validationBody(err))
		return
	}

	logs := a.Logger.With(
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("order_number", input.OrderNumber),
		zap.String("pan", helpers.MaskPan(input.Card.Pan)),
	)
	currency := a.Client.Config().Currency
	start := time.Now()
	response, err := a.Client.Payments().InstantPayment(request_params.InstantPaymentParams{
		Amount:      input.Amount,
		OrderNumber: input.OrderNumber,
		Description: input.Description,
		Card: request_params.Card{
			Pan:            input.Card.Pan,
			Cvc:            input.Card.Cvc,
			Expiry:         input.Card.Expiry,
			CardholderName: input.Card.CardholderName,
		},
		BackUrl: input.BackUrl,
		FailUrl: input.FailUrl,
	})
	if err != nil {
		logs.With(zap.Error(err)).Error("instant payment failed")
		writeGatewayError(w, err)
		return
	}

	result := PaymentResult{
		Success:         response.IsSuccess(),
		OrderId:         response.OrderId,
		OrderNumber:     input.OrderNumber,
		Amount:          helpers.FormatAmount(input.Amount, currency),
		RequiresStepUp:  response.RequiresStepUp(),
		AcsUrl:          response.AcsUrl,
		PaReq:           response.PaReq,
		TermUrl:         response.TermUrl,
		RedirectUrl:     response.RedirectUrl,
		ErrorCode:       string(response.ErrorCode),
		ErrorMessage:    response.ErrorMessage,
		ProcessingMilli: time.Since(start).Milliseconds(),
	}
	logs.Info("instant payment", zap.Bool("success", result.Success), zap.String("error_code", result.ErrorCode))
	writeJSON(w, http.StatusOK, result)
}

func (a *PaymentAPI) orderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	response, err := a.Client.Orders().Status(orderID)
	if err != nil {
		a.Logger.With(zap.String("order_id", orderID), zap.Error(err)).Error("order status failed")
		writeGatewayError(w, err)
		return
	}

	result := OrderStatusResult{
		Success:      response.IsSuccess(),
		OrderNumber:  response.OrderNumber,
		ErrorCode:    string(response.ErrorCode),
		ErrorMessage: response.ErrorMessage,
	}
	if status, ok := response.Status(); ok {
		result.Status = status.String()
	}
	if response.Amount > 0 {
		result.Amount = helpers.FormatAmount(int64(response.Amount), a.Client.Config().Currency)
	}
	writeJSON(w, http.StatusOK, result)
}

func validationBody(err error) errorBody {
	body := errorBody{Error: "invalid request"}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			body.Fields = append(body.Fields, fe.Namespace())
		}
	}
	return body
}

// writeGatewayError maps transport failures to 502, or 504 when the gateway did not answer in time.
func writeGatewayError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	var te *gwerrors.TransportError
	if errors.As(err, &te) && !te.IsHTTPError() && isTimeout(te.Cause) {
		status = http.StatusGatewayTimeout
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
