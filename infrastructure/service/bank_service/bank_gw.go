package bank_service

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"bomapay-gateway/domain/request_params"
	gwerrors "bomapay-gateway/errors"
	"bomapay-gateway/infrastructure/metrics"
	"bomapay-gateway/utils/configs"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	contentTypeForm = "application/x-www-form-urlencoded"
	contentTypeJSON = "application/json; charset=utf-8"
)

type repoImpl struct {
	Uri     string
	Logger  *zap.Logger
	client  *http.Client
	metrics *metrics.Metrics
}

type Option func(*repoImpl)

// WithHTTPClient replaces the client built from the configured timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(r *repoImpl) {
		r.client = client
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *repoImpl) {
		r.metrics = m
	}
}

func (r *repoImpl) PostForm(path string, form request_params.Form, response interface{}) error {
	return r.httpRequest(struct {
		Path        string
		ContentType string
		Body        []byte
		LogBody     interface{}
		Response    interface{}
	}{
		Path:        path,
		ContentType: contentTypeForm,
		Body:        []byte(form.Encode()),
		LogBody:     form.Redacted(),
		Response:    response,
	})
}

func (r *repoImpl) PostJSON(path string, body interface{}, response interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		r.Logger.With(zap.String("path", path), zap.Error(err)).Error("can not marshal request")
		r.metrics.Observe(path, metrics.OutcomeTransportError, 0)
		return gwerrors.NewTransportError(path, err)
	}

	return r.httpRequest(struct {
		Path        string
		ContentType string
		Body        []byte
		LogBody     interface{}
		Response    interface{}
	}{
		Path:        path,
		ContentType: contentTypeJSON,
		Body:        payload,
		LogBody:     redactJSON(payload),
		Response:    response,
	})
}

func (r *repoImpl) httpRequest(request struct {
	Path        string
	ContentType string
	Body        []byte
	LogBody     interface{}
	Response    interface{}
}) (err error) {
	logs := r.Logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("uri", fmt.Sprintf("%v%v", r.Uri, request.Path)),
	)
	logs.With(zapcore.Field{
		Key:       "request",
		Type:      zapcore.ReflectType,
		Interface: request.LogBody,
	}).Info("bank_request")

	start := time.Now()
	outcome := metrics.OutcomeTransportError
	defer func() {
		r.metrics.Observe(request.Path, outcome, time.Since(start))
	}()

	req, err := http.NewRequest(http.MethodPost, r.Uri+request.Path, bytes.NewReader(request.Body))
	if err != nil {
		return gwerrors.NewTransportError(request.Path, err)
	}
	req.Header.Set("Content-Type", request.ContentType)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		logs.With(zap.Error(err)).Error("bank gateway unreachable")
		return gwerrors.NewTransportError(request.Path, err)
	}
	defer resp.Body.Close()

	responseByte, err := io.ReadAll(resp.Body)
	if err != nil {
		logs.With(zap.Error(err)).Error("can not read response")
		return gwerrors.NewTransportError(request.Path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		outcome = metrics.OutcomeHTTPError
		logs.With(
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(responseByte)),
		).Error("BANK GATEWAY HTTP ERROR")
		return gwerrors.NewHTTPError(request.Path, resp.StatusCode, string(responseByte))
	}

	logs.With(
		zap.Int("status", resp.StatusCode),
		zap.String("response", string(responseByte)),
		zap.Duration("took", time.Since(start)),
	).Debug("http_request_data")

	err = json.Unmarshal(responseByte, request.Response)
	if err != nil {
		logs.With(zap.Error(err)).Error("can not unmarshal response")
		return &gwerrors.TransportError{
			Path:       request.Path,
			HTTPStatus: resp.StatusCode,
			RawBody:    string(responseByte),
			Cause:      err,
		}
	}

	outcome = metrics.OutcomeDecoded
	return nil
}

// newHTTPClient applies timeout to connect, TLS handshake, response headers and the call overall.
func newHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			TLSHandshakeTimeout:   timeout,
			ResponseHeaderTimeout: timeout,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
		},
		// a 3xx is reported as a transport error, never followed
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

var sensitiveJSONKeys = map[string]bool{
	"password":     true,
	"pan":          true,
	"cvc":          true,
	"paymenttoken": true,
}

// redactJSON masks credentials and card data in a JSON body before it is logged.
func redactJSON(payload []byte) interface{} {
	var body map[string]interface{}
	if err := json.Unmarshal(payload, &body); err != nil {
		return string(payload)
	}
	redactMap(body)
	return body
}

func redactMap(m map[string]interface{}) {
	for k, v := range m {
		if sensitiveJSONKeys[strings.ToLower(k)] {
			m[k] = "****"
			continue
		}
		if nested, ok := v.(map[string]interface{}); ok {
			redactMap(nested)
		}
	}
}

func NewRepoImpl(config configs.Config, logger *zap.Logger, opts ...Option) *repoImpl {
	r := &repoImpl{
		Uri:    config.BaseURL,
		Logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.client == nil {
		r.client = newHTTPClient(config.Timeout())
	}
	if r.Logger == nil {
		r.Logger = zap.NewNop()
	}
	return r
}
