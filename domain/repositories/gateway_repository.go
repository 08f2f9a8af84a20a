package repositories

import "bomapay-gateway/domain/request_params"

// GatewayRepository issues one POST against the bank gateway and decodes the JSON answer into
// response. Transport failures (network, non-2xx, undecodable body) are returned as errors;
// business failures come back inside response.
type GatewayRepository interface {
	PostForm(path string, form request_params.Form, response interface{}) error
	PostJSON(path string, body interface{}, response interface{}) error
}
