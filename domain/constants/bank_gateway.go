package constants

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Gateway endpoints, relative to the configured base url.
const (
	PathRegister              = "/rest/register.do"
	PathRegisterPreAuth       = "/rest/registerPreAuth.do"
	PathDeposit               = "/rest/deposit.do"
	PathReverse               = "/rest/reverse.do"
	PathRefund                = "/rest/refund.do"
	PathDecline               = "/rest/decline.do"
	PathOrderStatusExtended   = "/rest/getOrderStatusExtended.do"
	PathPaymentOrder          = "/rest/paymentorder.do"
	PathInstantPayment        = "/rest/instantPayment.do"
	PathMotoPayment           = "/rest/motoPayment.do"
	PathGetBindings           = "/rest/getBindings.do"
	PathGetBindingsByCardOrId = "/rest/getBindingsByCardOrId.do"
	PathBindCard              = "/rest/bindCard.do"
	PathUnBindCard            = "/rest/unBindCard.do"
	PathExtendBinding         = "/rest/extendBinding.do"
	PathRegisterP2P           = "/rest/p2p/registerP2P.do"
	PathPerformP2P            = "/rest/p2p/performP2P.do"
	PathP2PStatus             = "/rest/p2p/getP2PStatus.do"
	PathApplePayPayment       = "/applepay/payment.do"
	PathGooglePayPayment      = "/google/payment.do"
	PathSamsungPayPayment     = "/samsung/payment.do"
)

const (
	DefaultBaseURL   = "https://dev.bpcbt.com/payment"
	DefaultLanguage  = "en"
	DefaultCurrency  = "978"
	DefaultTimeoutMs = 30000
	// DefaultClientIP is sent as `ip` on instant payments unless configured otherwise.
	DefaultClientIP = "127.0.0.1"

	P2PTransactionTypeIndicator = "A"
)

// ErrorCode is the gateway's errorCode field. Only "0" means the operation succeeded.
type ErrorCode string

const (
	ErrorCodeSuccess ErrorCode = "0"
	// ErrorCodeDecline is what the sandbox answers for declined cards (wrong cvc, expiry...)
	ErrorCodeDecline ErrorCode = "71015"
)

func (code ErrorCode) IsSuccess() bool {
	return code == ErrorCodeSuccess
}

// IsEmpty reports whether the gateway omitted errorCode. That is not a success.
func (code ErrorCode) IsEmpty() bool {
	return code == ""
}

func (code ErrorCode) IsDecline() bool {
	return code == ErrorCodeDecline
}

// UnmarshalJSON accepts errorCode both as a JSON string and as a bare number; the gateway sends
// either depending on the endpoint.
func (code *ErrorCode) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*code = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*code = ErrorCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*code = ErrorCode(n.String())
	return nil
}
