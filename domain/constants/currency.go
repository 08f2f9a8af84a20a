package constants

// ISO 4217 numeric codes the gateway accepts in `currency`.
var CurrencyCodes = map[string]string{
	"USD": "840",
	"EUR": "978",
	"GBP": "826",
	"RUB": "643",
	"KZT": "398",
	"UZS": "860",
	"MWK": "454",
}

// CurrencySymbols is used for display only.
var CurrencySymbols = map[string]string{
	"840": "$",
	"978": "€",
	"826": "£",
	"643": "₽",
	"398": "₸",
	"860": "UZS ",
	"454": "MK",
}
