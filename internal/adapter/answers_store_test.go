package adapter

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	serrors "skeletor.dev/pkg/skeletor/internal/errors"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

func TestYAMLAnswersStore_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewYAMLAnswersStore(NewSourceFSAdapter(fs))
	ctx := context.Background()

	vars := m.Variables{
		PackageName:        "pipeline",
		PackageDescription: "A fast PHP pipeline implementation",
		Namespace:          "HansOtt",
		AuthorName:         "Hans Ott",
		AuthorEmail:        "hansott@hotmail.be",
		AuthorUsername:     "hansott",
		AuthorWebsite:      "http://hansott.github.io/",
	}

	require.NoError(t, store.SaveAnswers(ctx, "/answers.yaml", vars))

	answers, err := store.LoadAnswers(ctx, "/answers.yaml")
	require.NoError(t, err)
	assert.Equal(t, vars, m.FromMap(answers))
}

func TestYAMLAnswersStore_PartialFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/answers.yaml", []byte("package_name: pipeline\nnamespace: HansOtt\n"), 0o644))

	answers, err := NewYAMLAnswersStore(NewSourceFSAdapter(fs)).LoadAnswers(context.Background(), "/answers.yaml")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"package_name": "pipeline", "namespace": "HansOtt"}, answers)
}

func TestYAMLAnswersStore_MissingFile(t *testing.T) {
	store := NewYAMLAnswersStore(NewSourceFSAdapter(afero.NewMemMapFs()))

	_, err := store.LoadAnswers(context.Background(), "/nope.yaml")
	assert.ErrorIs(t, err, serrors.ErrIO)
}

func TestValidateAnswers(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantErr   bool
		wantField string
	}{
		{name: "empty document", data: ""},
		{name: "valid", data: "package_name: pipeline\nauthor_email: hansott@hotmail.be\n"},
		{name: "unknown key", data: "package: pipeline\n", wantErr: true},
		{name: "non-string value", data: "package_name: 123\n", wantErr: true, wantField: "package_name"},
		{name: "package name with spaces", data: "package_name: my package\n", wantErr: true, wantField: "package_name"},
		{name: "malformed email", data: "author_email: not-an-email\n", wantErr: true, wantField: "author_email"},
		{name: "empty values defer to defaults", data: "package_name: \"\"\nnamespace: \"\"\nauthor_email: \"\"\nauthor_username: \"\"\n"},
		{name: "malformed yaml", data: "package_name: [unterminated\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnswers([]byte(tt.data))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, serrors.ErrValidation)

			if tt.wantField != "" {
				var ve *serrors.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantField, ve.Field)
			}
		})
	}
}

func TestYAMLAnswersStore_ExampleFile(t *testing.T) {
	store := NewYAMLAnswersStore(NewLocalSourceFSAdapter())

	answers, err := store.LoadAnswers(context.Background(), "../../examples/answers.yml")
	require.NoError(t, err)

	vars := m.FromMap(answers)
	assert.Equal(t, "pipeline", vars.PackageName)
	assert.Equal(t, "HansOtt", vars.Namespace)
	assert.Equal(t, "hansott", vars.AuthorUsername)
}
