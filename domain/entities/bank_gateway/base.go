package entities

import "bomapay-gateway/domain/constants"

// BaseResponse is the error pair every gateway answer carries.
type BaseResponse struct {
	ErrorCode    constants.ErrorCode `json:"errorCode,omitempty"`
	ErrorMessage string              `json:"errorMessage,omitempty"`
}

// IsSuccess is true only when the gateway returned errorCode "0". A missing errorCode is a failure.
func (r BaseResponse) IsSuccess() bool {
	return r.ErrorCode.IsSuccess()
}
