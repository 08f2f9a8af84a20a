package entities

type P2PRegisterRequest struct {
	UserName                 string `json:"userName"`
	Password                 string `json:"password"`
	Amount                   int64  `json:"amount"`
	Currency                 string `json:"currency"`
	Language                 string `json:"language"`
	OrderNumber              string `json:"orderNumber"`
	ReturnUrl                string `json:"returnUrl"`
	TransactionTypeIndicator string `json:"transactionTypeIndicator"`
	ClientId                 string `json:"clientId,omitempty"`
}

type P2PFromCard struct {
	Pan             string `json:"pan"`
	Cvc             string `json:"cvc,omitempty"`
	ExpirationYear  string `json:"expirationYear"`
	ExpirationMonth string `json:"expirationMonth"`
	CardholderName  string `json:"cardholderName,omitempty"`
}

type P2PToCard struct {
	Pan string `json:"pan"`
}

type P2PPerformRequest struct {
	UserName string      `json:"userName"`
	Password string      `json:"password"`
	OrderId  string      `json:"orderId"`
	Language string      `json:"language"`
	FromCard P2PFromCard `json:"fromCard"`
	ToCard   P2PToCard   `json:"toCard"`
	Type     string      `json:"type,omitempty"`
}

type P2PStatusRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
	OrderId  string `json:"orderId"`
	Language string `json:"language"`
}
