package helpers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("card_expiry", func(fl validator.FieldLevel) bool {
		year, month, err := SplitExpiry(fl.Field().String())
		if err != nil {
			return false
		}
		if _, err := strconv.Atoi(year); err != nil {
			return false
		}
		m, err := strconv.Atoi(month)
		return err == nil && m >= 1 && m <= 12
	})
	return v
}

// CardInput is card data as typed by a cardholder.
type CardInput struct {
	Pan            string `json:"pan" validate:"required,credit_card"`
	Cvc            string `json:"cvc" validate:"required,numeric,min=3,max=4"`
	Expiry         string `json:"expiry" validate:"required,card_expiry"`
	CardholderName string `json:"cardholder_name" validate:"omitempty,max=64"`
}

// PaymentInput is an instant payment as accepted by the HTTP presenter.
type PaymentInput struct {
	Amount      int64     `json:"amount" validate:"gt=0"`
	OrderNumber string    `json:"order_number" validate:"required,max=32"`
	Description string    `json:"description" validate:"max=512"`
	Card        CardInput `json:"card"`
	BackUrl     string    `json:"back_url" validate:"required,url"`
	FailUrl     string    `json:"fail_url" validate:"omitempty,url"`
}

func ValidateCard(card CardInput) error {
	return validate.Struct(card)
}

func ValidatePayment(payment PaymentInput) error {
	return validate.Struct(payment)
}
