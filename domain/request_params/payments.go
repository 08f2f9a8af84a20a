package request_params

import "bomapay-gateway/utils/configs"

// Card is the card data a caller collects from the cardholder.
type Card struct {
	Pan            string
	Cvc            string
	Expiry         string // YYYYMM
	CardholderName string
}

type InstantPaymentParams struct {
	Amount      int64
	OrderNumber string
	Description string
	Card        Card
	BackUrl     string
	FailUrl     string
}

type MotoPaymentParams struct {
	Amount      int64
	Description string
	Card        Card
	ReturnUrl   string
}

// PaymentOrderParams completes a registered order on the legacy card-entry step.
type PaymentOrderParams struct {
	MdOrder        string
	Pan            string
	Cvc            string
	Year           string
	Month          string
	CardholderName string
}

func PaymentOrder(cfg configs.Config, p PaymentOrderParams) Form {
	form := Form{}
	form.Set("language", cfg.Language)
	form.Set("userName", cfg.Username)
	form.Set("password", cfg.Password)
	form.Set("MDORDER", p.MdOrder)
	form.Set("$PAN", p.Pan)
	form.Set("$CVC", p.Cvc)
	form.Set("YYYY", p.Year)
	form.Set("MM", p.Month)
	form.Set("TEXT", p.CardholderName)
	return form
}

func InstantPayment(cfg configs.Config, p InstantPaymentParams) Form {
	form := credentials(cfg)
	form.Set("amount", amountString(p.Amount))
	form.Set("currency", cfg.Currency)
	form.Set("description", p.Description)
	form.Set("orderNumber", p.OrderNumber)
	form.Set("pan", p.Card.Pan)
	form.Set("cvc", p.Card.Cvc)
	form.Set("expiry", p.Card.Expiry)
	form.Set("cardHolderName", p.Card.CardholderName)
	form.Set("language", cfg.Language)
	form.Set("backUrl", p.BackUrl)
	form.Set("failUrl", p.FailUrl)
	form.SetOptional("clientId", cfg.ClientID)
	form.Set("ip", cfg.ClientIP)
	return form
}

func MotoPayment(cfg configs.Config, p MotoPaymentParams) Form {
	form := credentials(cfg)
	form.Set("amount", amountString(p.Amount))
	form.Set("currency", cfg.Currency)
	form.Set("returnUrl", p.ReturnUrl)
	form.Set("description", p.Description)
	form.Set("pan", p.Card.Pan)
	form.Set("expiry", p.Card.Expiry)
	form.Set("cvc", p.Card.Cvc)
	form.Set("cardholder", p.Card.CardholderName)
	form.Set("language", cfg.Language)
	return form
}
