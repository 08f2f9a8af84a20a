// Package testcards lists the cards the BPC sandbox answers deterministically for.
package testcards

import (
	"fmt"

	"bomapay-gateway/domain/request_params"
	"bomapay-gateway/utils/helpers"
)

type AuthorizationType string

const (
	AuthThreeDS2        AuthorizationType = "3DS2"
	AuthThreeDS2Attempt AuthorizationType = "3DS2 Attempt"
	AuthSSL             AuthorizationType = "SSL"
)

type Result string

const (
	ResultSuccess Result = "SUCCESS"
	ResultFailure Result = "FAILURE"
)

type Flow string

const (
	FlowFull         Flow = "FULL"
	FlowFrictionless Flow = "FRICTIONLESS"
)

const CardholderName = "TEST CARDHOLDER"

// TestCard is a sandbox card. Expiry is MMYY as printed on the card.
type TestCard struct {
	Name        string            `json:"name"`
	Pan         string            `json:"pan"`
	Cvc         string            `json:"cvc"`
	Expiry      string            `json:"expiry"`
	Description string            `json:"description"`
	AuthType    AuthorizationType `json:"auth_type"`
	Expected    Result            `json:"expected"`
	Flow        Flow              `json:"flow"`
}

var (
	Visa3DS2Full = TestCard{
		Name: "Visa 3DS2 Full (Success)", Pan: "5555555555555599", Cvc: "123", Expiry: "1234",
		Description: "3DS2 Full Success", AuthType: AuthThreeDS2, Expected: ResultSuccess, Flow: FlowFull,
	}
	Visa3DS2Frictionless = TestCard{
		Name: "Visa 3DS2 Frictionless (Success)", Pan: "4111111111111111", Cvc: "123", Expiry: "1226",
		Description: "3DS2 Frictionless Success", AuthType: AuthThreeDS2, Expected: ResultSuccess, Flow: FlowFrictionless,
	}
	Visa3DS2Attempt = TestCard{
		Name: "Visa 3DS2 Attempt (Success)", Pan: "4000001111111118", Cvc: "123", Expiry: "1230",
		Description: "3DS2 Attempt Success", AuthType: AuthThreeDS2Attempt, Expected: ResultSuccess, Flow: FlowFrictionless,
	}
	VisaSSL = TestCard{
		Name: "Visa SSL (Success)", Pan: "4444555511113333", Cvc: "123", Expiry: "1226",
		Description: "SSL Success", AuthType: AuthSSL, Expected: ResultSuccess, Flow: FlowFrictionless,
	}
	Mastercard3DS2Failure = TestCard{
		Name: "Mastercard 3DS2 (Failure)", Pan: "5168494895055780", Cvc: "123", Expiry: "1226",
		Description: "3DS2 Failure", AuthType: AuthThreeDS2, Expected: ResultFailure, Flow: FlowFrictionless,
	}
)

func SuccessCards() []TestCard {
	return []TestCard{Visa3DS2Full, Visa3DS2Frictionless, Visa3DS2Attempt, VisaSSL}
}

func FailureCards() []TestCard {
	return []TestCard{Mastercard3DS2Failure}
}

func All() []TestCard {
	return append(SuccessCards(), FailureCards()...)
}

// ExpiryFormatted converts MMYY into the YYYYMM the gateway takes.
func (c TestCard) ExpiryFormatted() string {
	if len(c.Expiry) != 4 {
		return c.Expiry
	}
	return "20" + c.Expiry[2:] + c.Expiry[:2]
}

func (c TestCard) WithIncorrectCvc() TestCard {
	c.Cvc = "999"
	c.Description += " (Wrong CVC)"
	c.Expected = ResultFailure
	return c
}

// WithIncorrectExpiry moves the card to an expiry in the past.
func (c TestCard) WithIncorrectExpiry() TestCard {
	c.Expiry = "0123"
	c.Description += " (Wrong Expiry)"
	c.Expected = ResultFailure
	return c
}

func (c TestCard) Card() request_params.Card {
	return request_params.Card{
		Pan:            c.Pan,
		Cvc:            c.Cvc,
		Expiry:         c.ExpiryFormatted(),
		CardholderName: CardholderName,
	}
}

func (c TestCard) String() string {
	return fmt.Sprintf("TestCard{pan=%s, description=%s, expected=%s}", helpers.MaskPan(c.Pan), c.Description, c.Expected)
}
