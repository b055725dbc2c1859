package phone

import (
	"errors"
	"os"
	"strings"

	"github.com/ttacon/libphonenumber"
)

const defaultRegion = "IN"

var ErrInvalidNumber = errors.New("invalid phone number")

type IPhone interface {
	// Normalize parses raw in the configured default region and returns it
	// in E.164 form.
	Normalize(raw string) (string, error)
}

type parser struct {
	region string
}

func New() IPhone {
	region := strings.ToUpper(strings.TrimSpace(os.Getenv("PHONE_DEFAULT_REGION")))
	if region == "" {
		region = defaultRegion
	}
	return &parser{region: region}
}

func NewWithRegion(region string) IPhone {
	return &parser{region: region}
}

func (p *parser) Normalize(raw string) (string, error) {
	number, err := libphonenumber.Parse(strings.TrimSpace(raw), p.region)
	if err != nil {
		return "", ErrInvalidNumber
	}

	if !libphonenumber.IsValidNumber(number) {
		return "", ErrInvalidNumber
	}

	return libphonenumber.Format(number, libphonenumber.E164), nil
}
