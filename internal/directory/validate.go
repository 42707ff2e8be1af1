package directory

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

// DefaultPhoneRegion is used to read numbers written without a country code.
const DefaultPhoneRegion = "KE"

var validate = validator.New()

// NormalizePhone formats input as E.164, reading numbers without a country
// code as belonging to region. Input that does not parse as a valid number
// is returned trimmed so that validation can reject it.
func NormalizePhone(input, region string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}
	number, err := phonenumbers.Parse(trimmed, region)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return trimmed
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

// normalizeContact trims c, normalizes its phone number and validates it.
func normalizeContact(c Contact, region string) (Contact, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = NormalizePhone(c.Phone, region)
	if err := validate.Struct(c); err != nil {
		return Contact{}, fmt.Errorf("%w: contact %d: %v", ErrInvalidRecord, c.ID, err)
	}
	return c, nil
}

// normalizeGroup trims g and validates it.
func normalizeGroup(g Group) (Group, error) {
	g.Name = strings.TrimSpace(g.Name)
	g.Description = strings.TrimSpace(g.Description)
	if err := validate.Struct(g); err != nil {
		return Group{}, fmt.Errorf("%w: group %d: %v", ErrInvalidRecord, g.ID, err)
	}
	return g, nil
}
