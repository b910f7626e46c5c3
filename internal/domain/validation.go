package domain

import (
	"fmt"
	"regexp"
	"strings"

	"skeletor.dev/pkg/skeletor/internal/controller"
	serrors "skeletor.dev/pkg/skeletor/internal/errors"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	urlPattern   = regexp.MustCompile(`(?i)^(https?)://[^\s/$.?#].[^\s]*$`)
)

// Required rejects empty and whitespace-only values.
func Required(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("a value is required")
	}

	return nil
}

// Email accepts values shaped like an e-mail address.
func Email(value string) error {
	if !emailPattern.MatchString(value) {
		return fmt.Errorf("%q does not look like an e-mail address", value)
	}

	return nil
}

// URL accepts absolute http and https URLs.
func URL(value string) error {
	if !urlPattern.MatchString(value) {
		return fmt.Errorf("%q is not an http(s) URL", value)
	}

	return nil
}

// Optional accepts the empty string and otherwise defers to v.
func Optional(v controller.Validator) controller.Validator {
	return func(value string) error {
		if value == "" {
			return nil
		}

		return v(value)
	}
}

// ValidationPolicy holds the switches that change which answers are required.
type ValidationPolicy struct {
	WebsiteRequired bool
}

// Validators returns the validator for each variable key.
func (p ValidationPolicy) Validators() map[string]controller.Validator {
	website := Optional(URL)
	if p.WebsiteRequired {
		website = URL
	}

	return map[string]controller.Validator{
		m.KeyPackageName:        Required,
		m.KeyPackageDescription: Required,
		m.KeyNamespace:          Required,
		m.KeyAuthorName:         Required,
		m.KeyAuthorEmail:        Email,
		m.KeyAuthorUsername:     Required,
		m.KeyAuthorWebsite:      website,
	}
}

// ValidateVariables checks a complete bag. The first failing key, in prompt
// order, is reported.
func (p ValidationPolicy) ValidateVariables(vars m.Variables) error {
	validators := p.Validators()

	for _, key := range m.VariableKeys() {
		if err := validators[key](vars.Get(key)); err != nil {
			return serrors.NewValidationError(key, err.Error())
		}
	}

	return nil
}
