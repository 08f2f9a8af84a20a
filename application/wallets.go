package application

import (
	"bomapay-gateway/domain/constants"
	entities "bomapay-gateway/domain/entities/bank_gateway"
	"bomapay-gateway/domain/repositories"
	"bomapay-gateway/domain/request_params"
	"bomapay-gateway/utils/configs"
)

// WalletService pays orders with Apple Pay, Google Pay and Samsung Pay tokens.
type WalletService struct {
	gateway repositories.GatewayRepository
	config  configs.Config
}

func NewWalletService(gateway repositories.GatewayRepository, config configs.Config) *WalletService {
	return &WalletService{gateway: gateway, config: config}
}

func (s *WalletService) ApplePay(params request_params.WalletPaymentParams) (entities.WalletPaymentResponse, error) {
	return s.pay(constants.PathApplePayPayment, request_params.WalletPayment(s.config, params))
}

func (s *WalletService) GooglePay(params request_params.GooglePayParams) (entities.WalletPaymentResponse, error) {
	return s.pay(constants.PathGooglePayPayment, request_params.GooglePayPayment(s.config, params))
}

func (s *WalletService) SamsungPay(params request_params.WalletPaymentParams) (entities.WalletPaymentResponse, error) {
	return s.pay(constants.PathSamsungPayPayment, request_params.WalletPayment(s.config, params))
}

func (s *WalletService) pay(path string, body entities.WalletPaymentRequest) (response entities.WalletPaymentResponse, err error) {
	if err = s.gateway.PostJSON(path, body, &response); err != nil {
		return entities.WalletPaymentResponse{}, err
	}
	return response, nil
}
