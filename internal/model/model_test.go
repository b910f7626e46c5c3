package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageString(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{CollectingInput, "collecting input"},
		{AcquiringSource, "acquiring source"},
		{Transforming, "transforming"},
		{Done, "done"},
		{Failed, "failed"},
		{Stage(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stage.String())
		})
	}

	assert.True(t, Done.IsTerminal())
	assert.True(t, Failed.IsTerminal())
	assert.False(t, Transforming.IsTerminal())
}

func TestArchiveAddressRootDirName(t *testing.T) {
	addr := ArchiveAddress{
		Organization: "thephpleague",
		Repository:   "skeleton",
		Revision:     "0123456789abcdef0123456789abcdef01234567",
	}

	assert.Equal(t, "0123456", addr.ShortRevision())
	assert.Equal(t, "thephpleague-skeleton-0123456", addr.RootDirName())

	short := ArchiveAddress{Organization: "o", Repository: "r", Revision: "abc"}
	assert.Equal(t, "o-r-abc", short.RootDirName())

	upper := ArchiveAddress{Organization: "thephpleague", Repository: "skeleton", Revision: "ABCDEF1234"}
	assert.Equal(t, "abcdef1", upper.ShortRevision())
	assert.Equal(t, "thephpleague-skeleton-abcdef1", upper.RootDirName())
}

func TestVariablesWithAndGet(t *testing.T) {
	var v Variables
	for i, key := range VariableKeys() {
		v = v.With(key, string(rune('a'+i)))
	}

	for i, key := range VariableKeys() {
		assert.Equal(t, string(rune('a'+i)), v.Get(key), key)
	}

	assert.Equal(t, "", v.Get("unknown"))
	assert.Equal(t, v, v.With("unknown", "x"))
}

func TestFromMap(t *testing.T) {
	v := FromMap(map[string]string{
		KeyPackageName:    "pipeline",
		KeyAuthorUsername: "hansott",
	})

	assert.Equal(t, "pipeline", v.PackageName)
	assert.Equal(t, "hansott", v.AuthorUsername)
	assert.Empty(t, v.Namespace)
}

func TestSourceStrategyIsValid(t *testing.T) {
	assert.True(t, SourceLocal.IsValid())
	assert.True(t, SourceRemote.IsValid())
	assert.False(t, SourceStrategy("ftp").IsValid())
	assert.Len(t, ValidSourceStrategies(), 2)
}

func TestReportChangedCount(t *testing.T) {
	r := Report{Files: []FileResult{{Changed: true}, {Changed: false}, {Changed: true}}}
	assert.Equal(t, 2, r.ChangedCount())
}
