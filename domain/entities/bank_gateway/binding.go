package entities

type Binding struct {
	BindingId  string `json:"bindingId"`
	MaskedPan  string `json:"maskedPan,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	ClientId   string `json:"clientId,omitempty"`
}

type BindingsResponse struct {
	BaseResponse
	Bindings []Binding `json:"bindings,omitempty"`
}
