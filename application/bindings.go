package application

import (
	"bomapay-gateway/domain/constants"
	entities "bomapay-gateway/domain/entities/bank_gateway"
	"bomapay-gateway/domain/repositories"
	"bomapay-gateway/domain/request_params"
	"bomapay-gateway/utils/configs"
)

// BindingService manages cards stored on the gateway (bindings).
type BindingService struct {
	gateway repositories.GatewayRepository
	config  configs.Config
}

func NewBindingService(gateway repositories.GatewayRepository, config configs.Config) *BindingService {
	return &BindingService{gateway: gateway, config: config}
}

func (s *BindingService) GetBindings(clientId string) (response entities.BindingsResponse, err error) {
	if err = s.gateway.PostForm(constants.PathGetBindings, request_params.GetBindings(s.config, clientId), &response); err != nil {
		return entities.BindingsResponse{}, err
	}
	return response, nil
}

func (s *BindingService) GetBindingsByCardOrId(pan string) (response entities.BindingsResponse, err error) {
	if err = s.gateway.PostForm(constants.PathGetBindingsByCardOrId, request_params.GetBindingsByCardOrId(s.config, pan), &response); err != nil {
		return entities.BindingsResponse{}, err
	}
	return response, nil
}

func (s *BindingService) UnBindCard(bindingId string) (entities.BaseResponse, error) {
	return s.post(constants.PathUnBindCard, request_params.UnBindCard(s.config, bindingId))
}

func (s *BindingService) BindCard(bindingId string) (entities.BaseResponse, error) {
	return s.post(constants.PathBindCard, request_params.BindCard(s.config, bindingId))
}

func (s *BindingService) ExtendBinding(bindingId, newExpiry string) (entities.BaseResponse, error) {
	return s.post(constants.PathExtendBinding, request_params.ExtendBinding(s.config, bindingId, newExpiry))
}

func (s *BindingService) post(path string, form request_params.Form) (response entities.BaseResponse, err error) {
	if err = s.gateway.PostForm(path, form, &response); err != nil {
		return entities.BaseResponse{}, err
	}
	return response, nil
}
