package configs

import (
	"os"
	"path/filepath"
	"testing"

	"bomapay-gateway/domain/constants"
	gwerrors "bomapay-gateway/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    Config
		wantErr error
	}{
		{
			name: "defaults",
			cfg:  Config{Username: "u", Password: "p"},
			want: Config{
				BaseURL:   constants.DefaultBaseURL,
				Username:  "u",
				Password:  "p",
				Language:  constants.DefaultLanguage,
				Currency:  constants.DefaultCurrency,
				TimeoutMs: constants.DefaultTimeoutMs,
				ClientIP:  constants.DefaultClientIP,
			},
		},
		{
			name: "trailing slash trimmed",
			cfg:  Config{BaseURL: "http://localhost:8080/payment/", Username: "u", Password: "p", Language: "ru", Currency: "643"},
			want: Config{
				BaseURL:   "http://localhost:8080/payment",
				Username:  "u",
				Password:  "p",
				Language:  "ru",
				Currency:  "643",
				TimeoutMs: constants.DefaultTimeoutMs,
				ClientIP:  constants.DefaultClientIP,
			},
		},
		{
			name:    "missing password",
			cfg:     Config{Username: "u"},
			wantErr: gwerrors.ErrMissingCredentials,
		},
		{
			name:    "bad currency",
			cfg:     Config{Username: "u", Password: "p", Currency: "EUR"},
			wantErr: gwerrors.ErrInvalidConfig,
		},
		{
			name:    "bad base url",
			cfg:     Config{Username: "u", Password: "p", BaseURL: "not a url"},
			wantErr: gwerrors.ErrInvalidConfig,
		},
		{
			name:    "negative timeout",
			cfg:     Config{Username: "u", Password: "p", TimeoutMs: -1},
			wantErr: gwerrors.ErrInvalidConfig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewConfig(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, "1.5s", Config{TimeoutMs: 1500}.Timeout().String())
}

func TestLoadTestConfig(t *testing.T) {
	dir := t.TempDir()
	content := `{
  "env": "TEST",
  "port": "9090",
  "gateway": {
    "username": "merchant-api",
    "password": "from-file",
    "currency": "840"
  }
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config_test.json"), []byte(content), 0o600))
	t.Setenv("BOMAPAY_GATEWAY_PASSWORD", "from-env")

	cfg, err := LoadTestConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "TEST", cfg.ENV)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "merchant-api", cfg.Gateway.Username)
	assert.Equal(t, "from-env", cfg.Gateway.Password)
	assert.Equal(t, "840", cfg.Gateway.Currency)
	assert.Equal(t, constants.DefaultBaseURL, cfg.Gateway.BaseURL)
}

func TestLoadTestConfig_MissingFile(t *testing.T) {
	_, err := LoadTestConfig(t.TempDir())
	assert.ErrorIs(t, err, gwerrors.ErrMissingCredentials)
}
