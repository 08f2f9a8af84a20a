package helpers

import (
	"fmt"
	"strings"

	"github.com/jakehl/goid"
)

func GetUUId() string {
	v4UUID := goid.NewV4UUID()
	return fmt.Sprint(v4UUID.String())
}

// MaskPan keeps the first six and last four digits of a card number.
func MaskPan(pan string) string {
	pan = strings.ReplaceAll(pan, " ", "")
	if len(pan) < 13 {
		return strings.Repeat("*", len(pan))
	}
	return pan[:6] + strings.Repeat("*", len(pan)-10) + pan[len(pan)-4:]
}

// SplitExpiry turns YYYYMM into its year and month parts.
func SplitExpiry(expiry string) (year, month string, err error) {
	if len(expiry) != 6 {
		return "", "", fmt.Errorf("expiry %q: want YYYYMM", expiry)
	}
	return expiry[:4], expiry[4:], nil
}
