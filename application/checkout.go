package application

import (
	"context"
	"errors"
	"fmt"

	"bomapay-gateway/domain/constants"
	entities "bomapay-gateway/domain/entities/bank_gateway"
	"bomapay-gateway/domain/request_params"
	"bomapay-gateway/utils/helpers"
	"bomapay-gateway/utils/sagav2/applications"
	"bomapay-gateway/utils/sagav2/domains"

	"go.uber.org/zap"
)

const (
	StepRegisterPreAuth = "register_preauth"
	StepPaymentOrder    = "payment_order"
	StepDeposit         = "deposit"
)

// CheckoutService runs the two-phase flow register (pre-auth) -> pay -> deposit as a saga. When a
// step fails the held funds are reversed and an unpaid order is declined.
type CheckoutService struct {
	orders   *OrderService
	payments *PaymentService
	logger   *zap.Logger
}

func NewCheckoutService(orders *OrderService, payments *PaymentService, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{orders: orders, payments: payments, logger: logger}
}

type CheckoutParams struct {
	Amount      int64
	OrderNumber string
	ReturnUrl   string
	Card        request_params.Card // Expiry YYYYMM
	// DepositAmount captures less than Amount when set
	DepositAmount int64
}

type CheckoutResult struct {
	OrderId   string
	Completed bool
	// set when the gateway refused a step
	FailedStep   string
	ErrorCode    constants.ErrorCode
	ErrorMessage string
	// the card asked for 3-D Secure, which checkout cannot complete; ErrorCode stays empty
	StepUpRequired bool
	// steps whose compensation the gateway accepted
	Compensated []string
	Journal     []domains.Log
}

// refusal is a business failure inside the saga; it is reported in CheckoutResult, not as an error.
type refusal struct {
	step     string
	response entities.BaseResponse
	stepUp   bool
}

func (r *refusal) Error() string {
	return fmt.Sprintf("%s refused: %s %s", r.step, r.response.ErrorCode, r.response.ErrorMessage)
}

// Checkout returns an error only for transport failures, context cancellation or failed
// compensations. A declined card is a CheckoutResult with Completed false.
func (s *CheckoutService) Checkout(ctx context.Context, params CheckoutParams) (result CheckoutResult, err error) {
	year, month, err := helpers.SplitExpiry(params.Card.Expiry)
	if err != nil {
		return result, err
	}
	depositAmount := params.DepositAmount
	if depositAmount == 0 {
		depositAmount = params.Amount
	}

	authorized := false
	saga := applications.NewCoordinator(helpers.GetUUId(), ctx, s.logger)
	saga.WithStep(&domains.Step{
		Name: StepRegisterPreAuth,
		Func: func(ctx context.Context) error {
			registered, err := s.orders.RegisterPreAuth(params.Amount, params.OrderNumber, params.ReturnUrl)
			if err != nil {
				return err
			}
			if !registered.IsSuccess() {
				return &refusal{step: StepRegisterPreAuth, response: registered.BaseResponse}
			}
			result.OrderId = registered.OrderId
			return nil
		},
		CompensateFunc: func(ctx context.Context) error {
			if result.OrderId == "" || authorized {
				return nil
			}
			if err := s.expect(s.orders.Decline(result.OrderId, params.OrderNumber)); err != nil {
				return err
			}
			result.Compensated = append(result.Compensated, StepRegisterPreAuth)
			return nil
		},
	}).WithStep(&domains.Step{
		Name: StepPaymentOrder,
		Func: func(ctx context.Context) error {
			paid, err := s.payments.PaymentOrder(request_params.PaymentOrderParams{
				MdOrder:        result.OrderId,
				Pan:            params.Card.Pan,
				Cvc:            params.Card.Cvc,
				Year:           year,
				Month:          month,
				CardholderName: params.Card.CardholderName,
			})
			if err != nil {
				return err
			}
			if !paid.IsSuccess() {
				return &refusal{step: StepPaymentOrder, response: paid.BaseResponse}
			}
			if paid.RequiresStepUp() {
				return &refusal{step: StepPaymentOrder, stepUp: true, response: entities.BaseResponse{
					ErrorMessage: "3-D Secure authentication required",
				}}
			}
			authorized = true
			return nil
		},
		CompensateFunc: func(ctx context.Context) error {
			if !authorized {
				return nil
			}
			if err := s.expect(s.orders.Reverse(result.OrderId)); err != nil {
				return err
			}
			result.Compensated = append(result.Compensated, StepPaymentOrder)
			return nil
		},
	}).WithStep(&domains.Step{
		Name: StepDeposit,
		Func: func(ctx context.Context) error {
			deposited, err := s.orders.Deposit(result.OrderId, depositAmount)
			if err != nil {
				return err
			}
			if !deposited.IsSuccess() {
				return &refusal{step: StepDeposit, response: deposited}
			}
			return nil
		},
	})

	res := saga.Play()
	result.Journal = saga.Logs()
	result.FailedStep = res.FailedStep
	if res.ExecutionError == nil {
		result.Completed = true
		return result, nil
	}

	var refused *refusal
	if errors.As(res.ExecutionError, &refused) {
		result.ErrorCode = refused.response.ErrorCode
		result.ErrorMessage = refused.response.ErrorMessage
		result.StepUpRequired = refused.stepUp
		err = errors.Join(res.CompensateErrors...)
	} else {
		err = errors.Join(append([]error{res.ExecutionError}, res.CompensateErrors...)...)
	}
	s.logger.With(zap.String("order_id", result.OrderId), zap.String("failed_step", result.FailedStep),
		zap.Strings("compensated", result.Compensated), zap.Error(res.ExecutionError)).Warn("checkout aborted")
	return result, err
}

// expect turns a refused compensation call into an error.
func (s *CheckoutService) expect(response entities.BaseResponse, err error) error {
	if err != nil {
		return err
	}
	if !response.IsSuccess() {
		return &refusal{step: "compensation", response: response}
	}
	return nil
}
