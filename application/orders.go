package application

import (
	"bomapay-gateway/domain/constants"
	entities "bomapay-gateway/domain/entities/bank_gateway"
	"bomapay-gateway/domain/repositories"
	"bomapay-gateway/domain/request_params"
	"bomapay-gateway/utils/configs"
)

// OrderService manages the lifecycle of gateway orders: registration, capture, reversal, refund.
type OrderService struct {
	gateway repositories.GatewayRepository
	config  configs.Config
}

func NewOrderService(gateway repositories.GatewayRepository, config configs.Config) *OrderService {
	return &OrderService{gateway: gateway, config: config}
}

// Register creates a one-phase order. amount is in minor units.
func (s *OrderService) Register(amount int64, orderNumber, returnUrl string) (response entities.OrderRegistrationResponse, err error) {
	form := request_params.RegisterOrder(s.config, amount, orderNumber, returnUrl)
	if err = s.gateway.PostForm(constants.PathRegister, form, &response); err != nil {
		return entities.OrderRegistrationResponse{}, err
	}
	return response, nil
}

// RegisterPreAuth creates a two-phase order; funds are held until Deposit.
func (s *OrderService) RegisterPreAuth(amount int64, orderNumber, returnUrl string) (response entities.OrderRegistrationResponse, err error) {
	form := request_params.RegisterPreAuth(s.config, amount, orderNumber, returnUrl)
	if err = s.gateway.PostForm(constants.PathRegisterPreAuth, form, &response); err != nil {
		return entities.OrderRegistrationResponse{}, err
	}
	return response, nil
}

func (s *OrderService) Deposit(orderId string, amount int64) (response entities.BaseResponse, err error) {
	return s.post(constants.PathDeposit, request_params.Deposit(s.config, orderId, amount))
}

func (s *OrderService) Reverse(orderId string) (response entities.BaseResponse, err error) {
	return s.post(constants.PathReverse, request_params.Reverse(s.config, orderId))
}

func (s *OrderService) Refund(orderId string, amount int64) (response entities.BaseResponse, err error) {
	return s.post(constants.PathRefund, request_params.Refund(s.config, orderId, amount))
}

func (s *OrderService) Decline(orderId, orderNumber string) (response entities.BaseResponse, err error) {
	return s.post(constants.PathDecline, request_params.Decline(s.config, orderId, orderNumber))
}

func (s *OrderService) Status(orderId string) (response entities.OrderStatusResponse, err error) {
	form := request_params.OrderStatus(s.config, orderId)
	if err = s.gateway.PostForm(constants.PathOrderStatusExtended, form, &response); err != nil {
		return entities.OrderStatusResponse{}, err
	}
	return response, nil
}

func (s *OrderService) post(path string, form request_params.Form) (response entities.BaseResponse, err error) {
	if err = s.gateway.PostForm(path, form, &response); err != nil {
		return entities.BaseResponse{}, err
	}
	return response, nil
}
