package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"skeletor.dev/pkg/skeletor/internal/adapter"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

func TestExampleConfig(t *testing.T) {
	v := viper.New()
	v.SetConfigFile("../examples/skeletor.yaml")
	require.NoError(t, v.ReadInConfig())

	assert.Equal(t, currentConfigVersion, v.GetInt(configVersionKey))
	assert.Equal(t, string(m.SourceRemote), v.GetString(sourceStrategyKey))
	assert.True(t, v.GetBool(templateSkeletonNamespaceKey))
	assert.Equal(t, []string{".travis.yml"}, v.GetStringSlice(excludeConfigKey))

	assert.NoError(t, adapter.ValidateArchiveAddress(m.ArchiveAddress{
		Organization: v.GetString(remoteOrganizationKey),
		Repository:   v.GetString(remoteRepositoryKey),
		Revision:     v.GetString(remoteRevisionKey),
	}))
}
