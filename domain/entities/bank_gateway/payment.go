package entities

import "bomapay-gateway/domain/constants"

type PaymentResponse struct {
	BaseResponse
	OrderId     string                 `json:"orderId,omitempty"`
	OrderNumber string                 `json:"orderNumber,omitempty"`
	OrderStatus *constants.OrderStatus `json:"orderStatus,omitempty"`
	Amount      constants.MinorUnits   `json:"amount,omitempty"`
	Currency    string                 `json:"currency,omitempty"`
	RedirectUrl string                 `json:"redirectUrl,omitempty"`
	AcsUrl      string                 `json:"acsUrl,omitempty"`
	PaReq       string                 `json:"paReq,omitempty"`
	TermUrl     string                 `json:"termUrl,omitempty"`
}

// RequiresStepUp reports whether the cardholder must be redirected to the ACS (3-D Secure)
// before the payment completes. The response can still be IsSuccess.
func (r PaymentResponse) RequiresStepUp() bool {
	return r.AcsUrl != ""
}
