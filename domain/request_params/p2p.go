package request_params

import (
	"bomapay-gateway/domain/constants"
	entities "bomapay-gateway/domain/entities/bank_gateway"
	"bomapay-gateway/utils/configs"
)

type P2PPerformParams struct {
	OrderId  string
	FromCard Card
	ToPan    string
	Type     string
}

func RegisterP2P(cfg configs.Config, amount int64, orderNumber, returnUrl string) entities.P2PRegisterRequest {
	return entities.P2PRegisterRequest{
		UserName:                 cfg.Username,
		Password:                 cfg.Password,
		Amount:                   amount,
		Currency:                 cfg.Currency,
		Language:                 cfg.Language,
		OrderNumber:              orderNumber,
		ReturnUrl:                returnUrl,
		TransactionTypeIndicator: constants.P2PTransactionTypeIndicator,
		ClientId:                 cfg.ClientID,
	}
}

// PerformP2P splits the YYYYMM expiry of the source card into the year/month pair the P2P API wants.
func PerformP2P(cfg configs.Config, p P2PPerformParams) entities.P2PPerformRequest {
	year, month := splitExpiry(p.FromCard.Expiry)
	return entities.P2PPerformRequest{
		UserName: cfg.Username,
		Password: cfg.Password,
		OrderId:  p.OrderId,
		Language: cfg.Language,
		FromCard: entities.P2PFromCard{
			Pan:             p.FromCard.Pan,
			Cvc:             p.FromCard.Cvc,
			ExpirationYear:  year,
			ExpirationMonth: month,
			CardholderName:  p.FromCard.CardholderName,
		},
		ToCard: entities.P2PToCard{Pan: p.ToPan},
		Type:   p.Type,
	}
}

func P2PStatus(cfg configs.Config, orderId string) entities.P2PStatusRequest {
	return entities.P2PStatusRequest{
		UserName: cfg.Username,
		Password: cfg.Password,
		OrderId:  orderId,
		Language: cfg.Language,
	}
}

func splitExpiry(expiry string) (year, month string) {
	if len(expiry) != 6 {
		return expiry, ""
	}
	return expiry[:4], expiry[4:]
}
