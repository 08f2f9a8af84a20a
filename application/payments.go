package application

import (
	"bomapay-gateway/domain/constants"
	entities "bomapay-gateway/domain/entities/bank_gateway"
	"bomapay-gateway/domain/repositories"
	"bomapay-gateway/domain/request_params"
	"bomapay-gateway/utils/configs"
)

type PaymentService struct {
	gateway repositories.GatewayRepository
	config  configs.Config
}

func NewPaymentService(gateway repositories.GatewayRepository, config configs.Config) *PaymentService {
	return &PaymentService{gateway: gateway, config: config}
}

// PaymentOrder submits card data for an order registered earlier (MDORDER is its orderId).
func (s *PaymentService) PaymentOrder(params request_params.PaymentOrderParams) (entities.PaymentResponse, error) {
	return s.pay(constants.PathPaymentOrder, request_params.PaymentOrder(s.config, params))
}

// InstantPayment registers and pays an order in one call. The response may ask for a 3-D Secure
// redirect, see PaymentResponse.RequiresStepUp.
func (s *PaymentService) InstantPayment(params request_params.InstantPaymentParams) (entities.PaymentResponse, error) {
	return s.pay(constants.PathInstantPayment, request_params.InstantPayment(s.config, params))
}

func (s *PaymentService) MotoPayment(params request_params.MotoPaymentParams) (entities.PaymentResponse, error) {
	return s.pay(constants.PathMotoPayment, request_params.MotoPayment(s.config, params))
}

func (s *PaymentService) pay(path string, form request_params.Form) (response entities.PaymentResponse, err error) {
	if err = s.gateway.PostForm(path, form, &response); err != nil {
		return entities.PaymentResponse{}, err
	}
	return response, nil
}
