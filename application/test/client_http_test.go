package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bomapay-gateway/application"
	"bomapay-gateway/domain/constants"
	"bomapay-gateway/domain/request_params"
	gwerrors "bomapay-gateway/errors"
	"bomapay-gateway/utils/configs"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newHTTPClient(t *testing.T, handler http.HandlerFunc) *application.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := application.NewClient(configs.Config{
		BaseURL:   server.URL + "/payment/",
		Username:  "merchant-api",
		Password:  "secret",
		TimeoutMs: 2000,
	}, zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestClient_RegisterOverHTTP(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    bool
		wantOk     bool
		wantStatus int
	}{
		{
			name:   "registered",
			status: http.StatusOK,
			body:   `{"orderId":"ord-1","formUrl":"https://dev.bpcbt.com/payment/merchants/form?mdOrder=ord-1","errorCode":"0"}`,
			wantOk: true,
		},
		{
			name:   "business decline",
			status: http.StatusOK,
			body:   `{"errorCode":"71015","errorMessage":"Declined"}`,
		},
		{
			name:       "server error",
			status:     http.StatusInternalServerError,
			body:       `{}`,
			wantErr:    true,
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/payment"+constants.PathRegister, r.URL.Path)
				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "10000", r.PostForm.Get("amount"))
				assert.Equal(t, "978", r.PostForm.Get("currency"))
				_, hasClient := r.PostForm["clientId"]
				assert.False(t, hasClient)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := client.Orders().Register(10000, "ORDER-1", "https://shop.example/return")
			if tt.wantErr {
				te, ok := gwerrors.AsTransportError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantStatus, te.HTTPStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOk, got.IsSuccess())
		})
	}
}

func TestClient_WalletOverHTTP(t *testing.T) {
	client := newHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment"+constants.PathApplePayPayment, r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tok", body["paymentToken"])
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":"5","message":"Access denied"}}`))
	})

	got, err := client.Wallets().ApplePay(request_params.WalletPaymentParams{OrderNumber: "W-1", PaymentToken: "tok"})
	require.NoError(t, err)
	assert.False(t, got.IsSuccess())
	assert.Equal(t, constants.ErrorCode("5"), got.ErrorCode)
	assert.Equal(t, "Access denied", got.ErrorMessage)
}
