package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	serrors "skeletor.dev/pkg/skeletor/internal/errors"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) error
		value   string
		wantErr bool
	}{
		{"required ok", Required, "pipeline", false},
		{"required empty", Required, "", true},
		{"required blank", Required, "   ", true},
		{"email ok", Email, "hansott@hotmail.be", false},
		{"email missing at", Email, "hansott.hotmail.be", true},
		{"email missing domain dot", Email, "hansott@localhost", true},
		{"email empty", Email, "", true},
		{"url http", URL, "http://hansott.github.io/", false},
		{"url https upper", URL, "HTTPS://Example.org/path", false},
		{"url ftp", URL, "ftp://example.org", true},
		{"url spaces", URL, "http://exa mple.org", true},
		{"url empty", URL, "", true},
		{"optional url empty", Optional(URL), "", false},
		{"optional url bad", Optional(URL), "nope", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationPolicy_ValidateVariables(t *testing.T) {
	t.Run("scenario passes", func(t *testing.T) {
		assert.NoError(t, ValidationPolicy{}.ValidateVariables(scenarioVariables()))
	})

	t.Run("website optional by default", func(t *testing.T) {
		vars := scenarioVariables()
		vars.AuthorWebsite = ""

		assert.NoError(t, ValidationPolicy{}.ValidateVariables(vars))
		assert.ErrorIs(t, ValidationPolicy{WebsiteRequired: true}.ValidateVariables(vars), serrors.ErrValidation)
	})

	t.Run("first failing key is reported", func(t *testing.T) {
		vars := scenarioVariables()
		vars.Namespace = ""
		vars.AuthorEmail = "broken"

		err := ValidationPolicy{}.ValidateVariables(vars)

		var ve *serrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, m.KeyNamespace, ve.Field)
	})
}
