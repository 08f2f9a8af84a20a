package application

import (
	"bomapay-gateway/domain/repositories"
	"bomapay-gateway/infrastructure/service/bank_service"
	"bomapay-gateway/utils/configs"

	"go.uber.org/zap"
)

// Client is the entry point of the SDK. It owns one gateway transport and one instance of every
// domain service; all of them share the same immutable configuration.
type Client struct {
	config   configs.Config
	orders   *OrderService
	payments *PaymentService
	bindings *BindingService
	p2p      *P2PService
	wallets  *WalletService
	checkout *CheckoutService
}

// NewClient validates config and wires the services over an HTTP transport.
func NewClient(config configs.Config, logger *zap.Logger, opts ...bank_service.Option) (*Client, error) {
	cfg, err := configs.NewConfig(config)
	if err != nil {
		return nil, err
	}
	return newClient(cfg, bank_service.NewRepoImpl(cfg, logger, opts...), logger), nil
}

// NewClientWithRepository wires the services over a caller supplied transport.
func NewClientWithRepository(config configs.Config, gateway repositories.GatewayRepository) (*Client, error) {
	cfg, err := configs.NewConfig(config)
	if err != nil {
		return nil, err
	}
	return newClient(cfg, gateway, nil), nil
}

func newClient(cfg configs.Config, gateway repositories.GatewayRepository, logger *zap.Logger) *Client {
	c := &Client{
		config:   cfg,
		orders:   NewOrderService(gateway, cfg),
		payments: NewPaymentService(gateway, cfg),
		bindings: NewBindingService(gateway, cfg),
		p2p:      NewP2PService(gateway, cfg),
		wallets:  NewWalletService(gateway, cfg),
	}
	c.checkout = NewCheckoutService(c.orders, c.payments, logger)
	return c
}

func (c *Client) Orders() *OrderService {
	return c.orders
}

func (c *Client) Payments() *PaymentService {
	return c.payments
}

func (c *Client) Bindings() *BindingService {
	return c.bindings
}

func (c *Client) P2P() *P2PService {
	return c.p2p
}

func (c *Client) Wallets() *WalletService {
	return c.wallets
}

// Checkout runs the two-phase register/pay/deposit flow with automatic rollback.
func (c *Client) Checkout() *CheckoutService {
	return c.checkout
}

// Config returns a copy of the validated configuration.
func (c *Client) Config() configs.Config {
	return c.config
}
