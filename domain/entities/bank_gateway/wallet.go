package entities

import (
	"bomapay-gateway/domain/constants"

	"github.com/goccy/go-json"
)

type WalletPaymentRequest struct {
	Merchant     string `json:"merchant"`
	OrderNumber  string `json:"orderNumber"`
	Language     string `json:"language"`
	Description  string `json:"description,omitempty"`
	PaymentToken string `json:"paymentToken"`
	PreAuth      bool   `json:"preAuth"`
	ClientId     string `json:"clientId,omitempty"`

	// Google Pay only
	Amount       int64  `json:"amount,omitempty"`
	CurrencyCode string `json:"currencyCode,omitempty"`
	ReturnUrl    string `json:"returnUrl,omitempty"`
	FailUrl      string `json:"failUrl,omitempty"`
	Ip           string `json:"ip,omitempty"`
}

type WalletPaymentData struct {
	OrderId string `json:"orderId"`
}

type WalletPaymentError struct {
	Code        constants.ErrorCode `json:"code"`
	Message     string              `json:"message"`
	Description string              `json:"description"`
}

// WalletPaymentResponse is decoded from the wallet envelope {success, data, error}; the envelope is
// folded into BaseResponse so IsSuccess means the same thing as for every other call.
type WalletPaymentResponse struct {
	BaseResponse
	Success bool                `json:"success"`
	Data    *WalletPaymentData  `json:"data,omitempty"`
	Error   *WalletPaymentError `json:"error,omitempty"`
}

func (r *WalletPaymentResponse) UnmarshalJSON(data []byte) error {
	type envelope WalletPaymentResponse
	var raw envelope
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = WalletPaymentResponse(raw)

	if r.Error != nil {
		r.ErrorCode = r.Error.Code
		r.ErrorMessage = r.Error.Message
		if r.ErrorMessage == "" {
			r.ErrorMessage = r.Error.Description
		}
	} else if r.Success && r.ErrorCode.IsEmpty() {
		r.ErrorCode = constants.ErrorCodeSuccess
	}
	return nil
}

// OrderId returns the gateway order id, empty when the payment was not created.
func (r WalletPaymentResponse) OrderId() string {
	if r.Data == nil {
		return ""
	}
	return r.Data.OrderId
}
