package request_params

import (
	"bomapay-gateway/utils/configs"

	"github.com/spf13/cast"
)

// credentials starts every form with userName and password.
func credentials(cfg configs.Config) Form {
	form := Form{}
	form.Set("userName", cfg.Username)
	form.Set("password", cfg.Password)
	return form
}

// amountString serializes minor units as a plain integer string.
func amountString(amount int64) string {
	return cast.ToString(amount)
}

func RegisterOrder(cfg configs.Config, amount int64, orderNumber, returnUrl string) Form {
	form := credentials(cfg)
	form.Set("amount", amountString(amount))
	form.Set("currency", cfg.Currency)
	form.Set("language", cfg.Language)
	form.Set("orderNumber", orderNumber)
	form.Set("returnUrl", returnUrl)
	form.SetOptional("clientId", cfg.ClientID)
	return form
}

// RegisterPreAuth is RegisterOrder without clientId.
func RegisterPreAuth(cfg configs.Config, amount int64, orderNumber, returnUrl string) Form {
	form := credentials(cfg)
	form.Set("amount", amountString(amount))
	form.Set("currency", cfg.Currency)
	form.Set("language", cfg.Language)
	form.Set("orderNumber", orderNumber)
	form.Set("returnUrl", returnUrl)
	return form
}

func Deposit(cfg configs.Config, orderId string, amount int64) Form {
	form := credentials(cfg)
	form.Set("amount", amountString(amount))
	form.Set("orderId", orderId)
	form.Set("language", cfg.Language)
	return form
}

func Reverse(cfg configs.Config, orderId string) Form {
	form := credentials(cfg)
	form.Set("orderId", orderId)
	form.Set("language", cfg.Language)
	return form
}

func Refund(cfg configs.Config, orderId string, amount int64) Form {
	form := credentials(cfg)
	form.Set("amount", amountString(amount))
	form.Set("orderId", orderId)
	form.Set("language", cfg.Language)
	return form
}

func Decline(cfg configs.Config, orderId, orderNumber string) Form {
	form := credentials(cfg)
	form.Set("orderId", orderId)
	form.Set("orderNumber", orderNumber)
	form.SetOptional("merchantLogin", cfg.MerchantLogin)
	form.Set("language", cfg.Language)
	return form
}

func OrderStatus(cfg configs.Config, orderId string) Form {
	form := credentials(cfg)
	form.Set("orderId", orderId)
	form.Set("language", cfg.Language)
	return form
}
