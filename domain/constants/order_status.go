package constants

// OrderStatus as reported by getOrderStatusExtended / payment responses.
type OrderStatus int

const (
	OrderStatusRegistered OrderStatus = iota
	OrderStatusPreAuthorized
	OrderStatusDeposited
	OrderStatusReversed
	OrderStatusRefunded
	OrderStatusACSInitiated
	OrderStatusDeclined
)

var orderStatusNames = map[OrderStatus]string{
	OrderStatusRegistered:    "REGISTERED",
	OrderStatusPreAuthorized: "PRE_AUTHORIZED",
	OrderStatusDeposited:     "DEPOSITED",
	OrderStatusReversed:      "REVERSED",
	OrderStatusRefunded:      "REFUNDED",
	OrderStatusACSInitiated:  "ACS_INITIATED",
	OrderStatusDeclined:      "DECLINED",
}

func (s OrderStatus) String() string {
	if name, ok := orderStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsPaid is true for orders holding or having captured funds
func (s OrderStatus) IsPaid() bool {
	return s == OrderStatusPreAuthorized || s == OrderStatusDeposited
}

func (s OrderStatus) IsDeclined() bool {
	return s == OrderStatusDeclined
}
