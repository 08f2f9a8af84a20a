package entities

import "bomapay-gateway/domain/constants"

type OrderRegistrationResponse struct {
	BaseResponse
	OrderId string `json:"orderId,omitempty"`
	FormUrl string `json:"formUrl,omitempty"`
}

type OrderStatusResponse struct {
	BaseResponse
	OrderNumber           string                 `json:"orderNumber,omitempty"`
	OrderStatus           *constants.OrderStatus `json:"orderStatus,omitempty"`
	ActionCode            int                    `json:"actionCode,omitempty"`
	ActionCodeDescription string                 `json:"actionCodeDescription,omitempty"`
	Amount                constants.MinorUnits   `json:"amount,omitempty"`
	Currency              string                 `json:"currency,omitempty"`
	Date                  int64                  `json:"date,omitempty"`
	Ip                    string                 `json:"ip,omitempty"`
}

// Status returns the reported order status and whether the gateway sent one.
func (r OrderStatusResponse) Status() (constants.OrderStatus, bool) {
	if r.OrderStatus == nil {
		return 0, false
	}
	return *r.OrderStatus, true
}
