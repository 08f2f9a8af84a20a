package constants

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// MinorUnits is an amount in the currency's minor unit. The gateway writes it as a number or as a
// numeric string.
type MinorUnits int64

func (m *MinorUnits) UnmarshalJSON(data []byte) error {
	n, err := decodeInt(data)
	if err != nil {
		return err
	}
	*m = MinorUnits(n)
	return nil
}

// UnmarshalJSON accepts orderStatus as a number or a numeric string.
func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	n, err := decodeInt(data)
	if err != nil {
		return err
	}
	*s = OrderStatus(n)
	return nil
}

// decodeInt reads a JSON number or a quoted decimal integer. null and "" decode as 0.
func decodeInt(data []byte) (int64, error) {
	if bytes.Equal(data, []byte("null")) {
		return 0, nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, err
		}
		if s == "" {
			return 0, nil
		}
		return strconv.ParseInt(s, 10, 64)
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return 0, err
	}
	return n.Int64()
}
