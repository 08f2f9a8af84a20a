package request_params

import (
	entities "bomapay-gateway/domain/entities/bank_gateway"
	"bomapay-gateway/utils/configs"
)

type WalletPaymentParams struct {
	OrderNumber  string
	Description  string
	PaymentToken string
	PreAuth      bool
}

type GooglePayParams struct {
	WalletPaymentParams
	Amount    int64
	ReturnUrl string
	FailUrl   string
}

func WalletPayment(cfg configs.Config, p WalletPaymentParams) entities.WalletPaymentRequest {
	return entities.WalletPaymentRequest{
		Merchant:     cfg.MerchantLogin,
		OrderNumber:  p.OrderNumber,
		Language:     cfg.Language,
		Description:  p.Description,
		PaymentToken: p.PaymentToken,
		PreAuth:      p.PreAuth,
		ClientId:     cfg.ClientID,
	}
}

func GooglePayPayment(cfg configs.Config, p GooglePayParams) entities.WalletPaymentRequest {
	req := WalletPayment(cfg, p.WalletPaymentParams)
	req.Amount = p.Amount
	req.CurrencyCode = cfg.Currency
	req.ReturnUrl = p.ReturnUrl
	req.FailUrl = p.FailUrl
	req.Ip = cfg.ClientIP
	return req
}
