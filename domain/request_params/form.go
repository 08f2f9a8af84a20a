package request_params

import (
	"net/url"
	"sort"
	"strings"
)

// Form is the outbound field set of a form-encoded gateway call, keyed by the gateway's own field
// names. A key that is not in the map is not sent.
type Form map[string]string

func (f Form) Set(key, value string) {
	f[key] = value
}

// SetOptional adds key only when value is non-empty, so unset optional settings stay absent
// instead of being sent as "".
func (f Form) SetOptional(key, value string) {
	if value == "" {
		return
	}
	f[key] = value
}

func (f Form) Values() url.Values {
	values := make(url.Values, len(f))
	for k, v := range f {
		values.Set(k, v)
	}
	return values
}

func (f Form) Encode() string {
	return f.Values().Encode()
}

// Keys returns the field names in sorted order
func (f Form) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var sensitiveFields = map[string]bool{
	"password": true,
	"pan":      true,
	"cvc":      true,
	"$pan":     true,
	"$cvc":     true,
	"expiry":   true,
}

// Redacted returns a copy safe for logging: credentials and card data are masked.
func (f Form) Redacted() map[string]string {
	out := make(map[string]string, len(f))
	for k, v := range f {
		if sensitiveFields[strings.ToLower(k)] {
			out[k] = mask(v)
			continue
		}
		out[k] = v
	}
	return out
}

func mask(v string) string {
	if len(v) >= 12 {
		return v[:4] + "****" + v[len(v)-4:]
	}
	return "****"
}
