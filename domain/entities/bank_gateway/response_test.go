package entities

import (
	"testing"

	"bomapay-gateway/domain/constants"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseResponse_IsSuccess(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
		code constants.ErrorCode
	}{
		{name: "string zero", body: `{"errorCode":"0"}`, want: true, code: "0"},
		{name: "numeric zero", body: `{"errorCode":0}`, want: true, code: "0"},
		{name: "decline", body: `{"errorCode":"71015","errorMessage":"Declined"}`, code: "71015"},
		{name: "missing code", body: `{"orderId":"x"}`},
		{name: "null code", body: `{"errorCode":null}`},
		{name: "padded zero", body: `{"errorCode":"00"}`, code: "00"},
		{name: "empty string", body: `{"errorCode":""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got OrderRegistrationResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got.IsSuccess())
			assert.Equal(t, tt.code, got.ErrorCode)
		})
	}
}

func TestOrderStatusResponse_Status(t *testing.T) {
	var withStatus OrderStatusResponse
	require.NoError(t, json.Unmarshal([]byte(`{"errorCode":"0","orderStatus":0,"amount":10000}`), &withStatus))
	status, ok := withStatus.Status()
	assert.True(t, ok)
	assert.Equal(t, constants.OrderStatusRegistered, status)
	assert.False(t, status.IsPaid())

	var withoutStatus OrderStatusResponse
	require.NoError(t, json.Unmarshal([]byte(`{"errorCode":"6","errorMessage":"Order not found"}`), &withoutStatus))
	_, ok = withoutStatus.Status()
	assert.False(t, ok)
}

func TestOrderStatusResponse_NumericStrings(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantAmount constants.MinorUnits
		wantStatus constants.OrderStatus
		wantOk     bool
		wantErr    bool
	}{
		{name: "numbers", body: `{"errorCode":"0","orderStatus":2,"amount":10000}`, wantAmount: 10000, wantStatus: constants.OrderStatusDeposited, wantOk: true},
		{name: "strings", body: `{"errorCode":"0","orderStatus":"2","amount":"10000"}`, wantAmount: 10000, wantStatus: constants.OrderStatusDeposited, wantOk: true},
		{name: "empty amount", body: `{"errorCode":"0","amount":""}`},
		{name: "not a number", body: `{"errorCode":"0","amount":"ten"}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got OrderStatusResponse
			err := json.Unmarshal([]byte(tt.body), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, got.Amount)
			status, ok := got.Status()
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantStatus, status)
		})
	}

	var payment PaymentResponse
	require.NoError(t, json.Unmarshal([]byte(`{"errorCode":"0","orderId":"o-1","amount":"500","orderStatus":"1"}`), &payment))
	assert.Equal(t, constants.MinorUnits(500), payment.Amount)
	require.NotNil(t, payment.OrderStatus)
	assert.Equal(t, constants.OrderStatusPreAuthorized, *payment.OrderStatus)
}

func TestPaymentResponse_RequiresStepUp(t *testing.T) {
	var frictionless, challenge PaymentResponse
	require.NoError(t, json.Unmarshal([]byte(`{"errorCode":"0","orderId":"o-1","redirectUrl":"https://shop.example/ok"}`), &frictionless))
	require.NoError(t, json.Unmarshal([]byte(`{"errorCode":"0","orderId":"o-2","acsUrl":"https://acs.example","paReq":"abc","termUrl":"https://term"}`), &challenge))
	assert.False(t, frictionless.RequiresStepUp())
	assert.True(t, challenge.RequiresStepUp())
	assert.Equal(t, "abc", challenge.PaReq)
}

func TestWalletPaymentResponse_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantOk      bool
		wantCode    constants.ErrorCode
		wantMessage string
		wantOrderId string
	}{
		{
			name:        "success envelope",
			body:        `{"success":true,"data":{"orderId":"w-1"}}`,
			wantOk:      true,
			wantCode:    constants.ErrorCodeSuccess,
			wantOrderId: "w-1",
		},
		{
			name:        "error with message",
			body:        `{"success":false,"error":{"code":"10","message":"Invalid token"}}`,
			wantCode:    "10",
			wantMessage: "Invalid token",
		},
		{
			name:        "numeric error code",
			body:        `{"success":false,"error":{"code":10,"message":"Invalid token"}}`,
			wantCode:    "10",
			wantMessage: "Invalid token",
		},
		{
			name:        "error with description only",
			body:        `{"success":false,"error":{"code":"5","description":"Merchant is blocked"}}`,
			wantCode:    "5",
			wantMessage: "Merchant is blocked",
		},
		{
			name: "no envelope fields",
			body: `{}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got WalletPaymentResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.wantOk, got.IsSuccess())
			assert.Equal(t, tt.wantCode, got.ErrorCode)
			assert.Equal(t, tt.wantMessage, got.ErrorMessage)
			assert.Equal(t, tt.wantOrderId, got.OrderId())
		})
	}
}

func TestBindingsResponse(t *testing.T) {
	var got BindingsResponse
	require.NoError(t, json.Unmarshal([]byte(`{"errorCode":"0","bindings":[{"bindingId":"b-1","maskedPan":"411111**1111","expiryDate":"202612"}]}`), &got))
	require.True(t, got.IsSuccess())
	require.Len(t, got.Bindings, 1)
	assert.Equal(t, "b-1", got.Bindings[0].BindingId)
}
