package configs

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bomapay-gateway/domain/constants"
	gwerrors "bomapay-gateway/errors"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the gateway settings shared by every service. Build it with NewConfig; the
// services keep their own copy so it never changes after the client is created.
type Config struct {
	BaseURL       string `json:"base_url" mapstructure:"base_url" validate:"required,url"`
	Username      string `json:"username" mapstructure:"username" validate:"required"`
	Password      string `json:"password" mapstructure:"password" validate:"required"`
	ClientID      string `json:"client_id" mapstructure:"client_id"`
	MerchantLogin string `json:"merchant_login" mapstructure:"merchant_login"`
	Language      string `json:"language" mapstructure:"language" validate:"required"`
	Currency      string `json:"currency" mapstructure:"currency" validate:"required,numeric,len=3"`
	TimeoutMs     int    `json:"timeout_ms" mapstructure:"timeout_ms" validate:"gt=0"`
	// ClientIP is sent as `ip` on instant payments.
	ClientIP string `json:"client_ip" mapstructure:"client_ip" validate:"required,ip"`
}

// AppConfig is what the binaries under cmd/ load from config.json.
type AppConfig struct {
	ENV     string `json:"env" mapstructure:"env"`
	Port    string `json:"port" mapstructure:"port"`
	Gateway Config `json:"gateway" mapstructure:"gateway"`
}

var validate = validator.New()

// NewConfig fills defaults and validates c. It fails when username or password is missing.
func NewConfig(c Config) (Config, error) {
	if c.BaseURL == "" {
		c.BaseURL = constants.DefaultBaseURL
	}
	if c.Language == "" {
		c.Language = constants.DefaultLanguage
	}
	if c.Currency == "" {
		c.Currency = constants.DefaultCurrency
	}
	if c.TimeoutMs == 0 {
		c.TimeoutMs = constants.DefaultTimeoutMs
	}
	if c.ClientIP == "" {
		c.ClientIP = constants.DefaultClientIP
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "Username" || fe.Field() == "Password" {
					return Config{}, gwerrors.ErrMissingCredentials
				}
			}
		}
		return Config{}, fmt.Errorf("%w: %v", gwerrors.ErrInvalidConfig, err)
	}
	return c, nil
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

func LoadConfig() (*AppConfig, error) {
	return load("./", "config.json")
}

// LoadTestConfig load config for running tests
func LoadTestConfig(configPath string) (*AppConfig, error) {
	return load(configPath, "config_test.json")
}

func load(path, name string) (*AppConfig, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigType("json")
	v.SetConfigName(name)

	v.SetEnvPrefix("BOMAPAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	result := &AppConfig{}
	err = v.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	result.Gateway, err = NewConfig(result.Gateway)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// every key needs a default so AutomaticEnv can override it during Unmarshal
func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "DEV")
	v.SetDefault("port", "8080")
	v.SetDefault("gateway.base_url", constants.DefaultBaseURL)
	v.SetDefault("gateway.username", "")
	v.SetDefault("gateway.password", "")
	v.SetDefault("gateway.client_id", "")
	v.SetDefault("gateway.merchant_login", "")
	v.SetDefault("gateway.language", constants.DefaultLanguage)
	v.SetDefault("gateway.currency", constants.DefaultCurrency)
	v.SetDefault("gateway.timeout_ms", constants.DefaultTimeoutMs)
	v.SetDefault("gateway.client_ip", constants.DefaultClientIP)
}
