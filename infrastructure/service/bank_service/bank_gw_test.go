package bank_service

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bomapay-gateway/domain/constants"
	entities "bomapay-gateway/domain/entities/bank_gateway"
	"bomapay-gateway/domain/request_params"
	gwerrors "bomapay-gateway/errors"
	"bomapay-gateway/infrastructure/metrics"
	"bomapay-gateway/utils/configs"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T, baseURL string, timeoutMs int, opts ...Option) *repoImpl {
	t.Helper()
	cfg, err := configs.NewConfig(configs.Config{
		BaseURL:   baseURL,
		Username:  "u",
		Password:  "p",
		TimeoutMs: timeoutMs,
	})
	require.NoError(t, err)
	return NewRepoImpl(cfg, zap.NewNop(), opts...)
}

func Test_repoImpl_PostForm(t *testing.T) {
	type args struct {
		status int
		body   string
	}
	tests := []struct {
		name        string
		args        args
		wantErr     bool
		wantHTTP    bool
		wantSuccess bool
		wantMessage string
	}{
		{
			name:        "success",
			args:        args{status: http.StatusOK, body: `{"errorCode":"0","orderId":"o-1","formUrl":"https://pay/o-1"}`},
			wantSuccess: true,
		},
		{
			name:        "business decline is not an error",
			args:        args{status: http.StatusOK, body: `{"errorCode":"71015","errorMessage":"Decline"}`},
			wantMessage: "Decline",
		},
		{
			name:        "numeric errorCode",
			args:        args{status: http.StatusOK, body: `{"errorCode":0,"orderId":"o-1"}`},
			wantSuccess: true,
		},
		{
			name: "missing errorCode is not success",
			args: args{status: http.StatusOK, body: `{"orderId":"o-1","unknownField":true}`},
		},
		{
			name:     "server error",
			args:     args{status: http.StatusInternalServerError, body: `{}`},
			wantErr:  true,
			wantHTTP: true,
		},
		{
			name:     "redirect status is outside 2xx",
			args:     args{status: http.StatusFound, body: ``},
			wantErr:  true,
			wantHTTP: true,
		},
		{
			name:    "malformed json",
			args:    args{status: http.StatusOK, body: `<html>maintenance</html>`},
			wantErr: true,
		},
		{
			name:    "empty body",
			args:    args{status: http.StatusOK, body: ``},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.args.status)
				_, _ = io.WriteString(w, tt.args.body)
			}))
			defer srv.Close()

			r := newTestRepo(t, srv.URL, 1000)
			var response entities.OrderRegistrationResponse
			err := r.PostForm(constants.PathRegister, request_params.Form{"userName": "u"}, &response)

			if tt.wantErr {
				require.Error(t, err)
				te, ok := gwerrors.AsTransportError(err)
				require.True(t, ok, "want *TransportError, got %T", err)
				assert.Equal(t, tt.wantHTTP, te.IsHTTPError())
				assert.Equal(t, constants.PathRegister, te.Path)
				if tt.wantHTTP {
					assert.Equal(t, tt.args.status, te.HTTPStatus)
					assert.Equal(t, tt.args.body, te.RawBody)
				} else {
					assert.Error(t, te.Unwrap())
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSuccess, response.IsSuccess())
			assert.Equal(t, tt.wantMessage, response.ErrorMessage)
		})
	}
}

func Test_repoImpl_PostForm_Encoding(t *testing.T) {
	var (
		gotMethod      string
		gotPath        string
		gotContentType string
		gotForm        map[string][]string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		assert.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		_, _ = io.WriteString(w, `{"errorCode":"0"}`)
	}))
	defer srv.Close()

	r := newTestRepo(t, srv.URL+"/payment", 1000)
	form := request_params.Form{}
	form.Set("$PAN", "4111111111111111")
	form.Set("MDORDER", "md-1")
	form.SetOptional("clientId", "")

	var response entities.PaymentResponse
	require.NoError(t, r.PostForm(constants.PathPaymentOrder, form, &response))

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/payment/rest/paymentorder.do", gotPath)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, []string{"4111111111111111"}, gotForm["$PAN"])
	assert.Equal(t, []string{"md-1"}, gotForm["MDORDER"])
	_, hasClientID := gotForm["clientId"]
	assert.False(t, hasClientID)
	assert.True(t, response.IsSuccess())
}

func Test_repoImpl_PostJSON(t *testing.T) {
	var got entities.P2PStatusRequest
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		_, _ = io.WriteString(w, `{"errorCode":"0","orderStatus":2,"amount":10000}`)
	}))
	defer srv.Close()

	r := newTestRepo(t, srv.URL, 1000)
	var response entities.OrderStatusResponse
	err := r.PostJSON(constants.PathP2PStatus, entities.P2PStatusRequest{
		UserName: "u",
		Password: "p",
		OrderId:  "o-1",
		Language: "en",
	}, &response)

	require.NoError(t, err)
	assert.Equal(t, "application/json; charset=utf-8", gotContentType)
	assert.Equal(t, "o-1", got.OrderId)
	status, ok := response.Status()
	assert.True(t, ok)
	assert.Equal(t, constants.OrderStatusDeposited, status)
	assert.Equal(t, constants.MinorUnits(10000), response.Amount)
}

func Test_repoImpl_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	r := newTestRepo(t, url, 500)
	var response entities.BaseResponse
	err := r.PostForm(constants.PathReverse, request_params.Form{}, &response)

	te, ok := gwerrors.AsTransportError(err)
	require.True(t, ok)
	assert.False(t, te.IsHTTPError())
	assert.Error(t, te.Cause)
}

func Test_repoImpl_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-time.After(2 * time.Second):
		}
		_, _ = io.WriteString(w, `{"errorCode":"0"}`)
	}))
	defer srv.Close()
	defer close(release)

	r := newTestRepo(t, srv.URL, 50)
	var response entities.BaseResponse
	err := r.PostForm(constants.PathDeposit, request_params.Form{}, &response)

	te, ok := gwerrors.AsTransportError(err)
	require.True(t, ok)
	assert.NotNil(t, te.Cause)
	assert.False(t, response.IsSuccess())
}

func Test_repoImpl_Metrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == constants.PathRefund {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `{"errorCode":"0"}`)
	}))
	defer srv.Close()

	m := metrics.NewMetrics(prometheus.NewRegistry())
	r := newTestRepo(t, srv.URL, 1000, WithMetrics(m))

	var response entities.BaseResponse
	require.NoError(t, r.PostForm(constants.PathDeposit, request_params.Form{}, &response))
	require.Error(t, r.PostForm(constants.PathRefund, request_params.Form{}, &response))
	err := r.PostJSON(constants.PathPerformP2P, make(chan int), &response)
	require.Error(t, err)
	_, isTransport := gwerrors.AsTransportError(err)
	assert.True(t, isTransport)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestCounter.WithLabelValues(constants.PathDeposit, metrics.OutcomeDecoded)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestCounter.WithLabelValues(constants.PathRefund, metrics.OutcomeHTTPError)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestCounter.WithLabelValues(constants.PathPerformP2P, metrics.OutcomeTransportError)))
}

func Test_redactJSON(t *testing.T) {
	payload := []byte(`{"userName":"u","password":"secret","fromCard":{"pan":"4111111111111111","cvc":"123"},"toCard":{"pan":"5555555555555599"}}`)

	got, ok := redactJSON(payload).(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "u", got["userName"])
	assert.Equal(t, "****", got["password"])
	assert.Equal(t, "****", got["fromCard"].(map[string]interface{})["pan"])
	assert.Equal(t, "****", got["fromCard"].(map[string]interface{})["cvc"])
	assert.Equal(t, "****", got["toCard"].(map[string]interface{})["pan"])
}
