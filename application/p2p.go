package application

import (
	"bomapay-gateway/domain/constants"
	entities "bomapay-gateway/domain/entities/bank_gateway"
	"bomapay-gateway/domain/repositories"
	"bomapay-gateway/domain/request_params"
	"bomapay-gateway/utils/configs"
)

// P2PService moves money card to card. The P2P API takes JSON bodies.
type P2PService struct {
	gateway repositories.GatewayRepository
	config  configs.Config
}

func NewP2PService(gateway repositories.GatewayRepository, config configs.Config) *P2PService {
	return &P2PService{gateway: gateway, config: config}
}

func (s *P2PService) Register(amount int64, orderNumber, returnUrl string) (response entities.OrderRegistrationResponse, err error) {
	body := request_params.RegisterP2P(s.config, amount, orderNumber, returnUrl)
	if err = s.gateway.PostJSON(constants.PathRegisterP2P, body, &response); err != nil {
		return entities.OrderRegistrationResponse{}, err
	}
	return response, nil
}

func (s *P2PService) Perform(params request_params.P2PPerformParams) (response entities.PaymentResponse, err error) {
	body := request_params.PerformP2P(s.config, params)
	if err = s.gateway.PostJSON(constants.PathPerformP2P, body, &response); err != nil {
		return entities.PaymentResponse{}, err
	}
	return response, nil
}

func (s *P2PService) Status(orderId string) (response entities.OrderStatusResponse, err error) {
	body := request_params.P2PStatus(s.config, orderId)
	if err = s.gateway.PostJSON(constants.PathP2PStatus, body, &response); err != nil {
		return entities.OrderStatusResponse{}, err
	}
	return response, nil
}
