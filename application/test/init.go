package test

import (
	"bomapay-gateway/application"
	"bomapay-gateway/domain/repositories/mocks"
	"bomapay-gateway/utils/configs"
)

type MockService struct {
	Config  configs.Config
	Gateway *mocks.GatewayRepository
	Client  *application.Client
}

func testConfig() configs.Config {
	return configs.Config{
		BaseURL:  "https://dev.bpcbt.com/payment",
		Username: "merchant-api",
		Password: "secret",
		Language: "en",
		Currency: "978",
	}
}

func NewTestClient() *MockService {
	return NewTestClientWithConfig(testConfig())
}

func NewTestClientWithConfig(cfg configs.Config) *MockService {
	gateway := &mocks.GatewayRepository{}
	client, err := application.NewClientWithRepository(cfg, gateway)
	if err != nil {
		panic(err)
	}
	return &MockService{
		Config:  client.Config(),
		Gateway: gateway,
		Client:  client,
	}
}
