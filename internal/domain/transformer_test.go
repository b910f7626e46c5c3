package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsText(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{"ascii", []byte("hello\n"), true},
		{"utf-8", []byte("héllo wörld ✓"), true},
		{"empty", []byte{}, true},
		{"nul byte", []byte("PK\x03\x04\x00\x00"), false},
		{"invalid utf-8", []byte{0xff, 0xfe, 'a'}, false},
		{"png header", []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsText(tt.content))
		})
	}
}

func TestTransform_EmptyRuleSet(t *testing.T) {
	assert.Equal(t, ":vendor", Transform(RuleSet{}, ":vendor"))
}

func TestTransform_PreservesUTF8(t *testing.T) {
	vars := scenarioVariables()
	vars.AuthorName = "Jürgen Ðorđević"

	got := Transform(NewRuleSet(vars, DefaultRuleOptions()), "© :author_name — ✓")
	assert.Equal(t, "© Jürgen Ðorđević — ✓", got)
}

func TestTransform_Deterministic(t *testing.T) {
	rules := NewRuleSet(scenarioVariables(), DefaultRuleOptions())
	input := "# :package_name\n**Note: x\n:vendor/:package_name by :author_name\n"

	first := Transform(rules, input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Transform(rules, input))
	}
}
