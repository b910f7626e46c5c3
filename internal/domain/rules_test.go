package domain

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

func scenarioVariables() m.Variables {
	return m.Variables{
		PackageName:        "pipeline",
		PackageDescription: "A fast PHP pipeline implementation",
		Namespace:          "HansOtt",
		AuthorName:         "Hans Ott",
		AuthorEmail:        "hansott@hotmail.be",
		AuthorUsername:     "hansott",
		AuthorWebsite:      "http://hansott.github.io/",
	}
}

// residualMarkers are fragments that must never survive a transformation.
var residualMarkers = []string{
	":author_name",
	":author_username",
	":author_website",
	":author_email",
	":vendor",
	":package_name",
	":package_description",
	`League\Skeleton`,
	"**Note:",
}

func assertNoResidualMarkers(t *testing.T, text string) {
	t.Helper()

	for _, marker := range residualMarkers {
		assert.NotContains(t, text, marker)
	}
}

func TestNewRuleSet_Order(t *testing.T) {
	rules := NewRuleSet(scenarioVariables(), DefaultRuleOptions())

	assert.Equal(t, []string{
		RuleReadmeNote,
		RuleRepositoryURL,
		RulePSR4Namespace,
		RuleDeclaredNamespace,
		RuleInstantiationExample,
		RuleTestSuiteName,
		RuleAuthorName,
		RuleAuthorUsername,
		RuleAuthorWebsite,
		RuleAuthorEmail,
		RuleVendor,
		RulePackageName,
		RulePackageDescription,
	}, rules.Names())
}

func TestNewRuleSet_WithoutInstantiationExample(t *testing.T) {
	opts := DefaultRuleOptions()
	opts.InstantiationExample = false

	rules := NewRuleSet(scenarioVariables(), opts)

	assert.NotContains(t, rules.Names(), RuleInstantiationExample)
	assert.Equal(t, 12, rules.Len())
}

// Every rule whose pattern embeds a generic token must run before the rule
// for that token, otherwise the generic rule eats the composite pattern.
func TestNewRuleSet_CompositeRulesPrecedeGenericTokens(t *testing.T) {
	rules := NewRuleSet(scenarioVariables(), DefaultRuleOptions())
	names := rules.Names()

	generic := map[string]string{
		vendorToken:      RuleVendor,
		packageNameToken: RulePackageName,
	}

	for i, rule := range rules.Rules() {
		source := rule.Pattern.String()

		for token, genericName := range generic {
			if rule.Name == genericName {
				continue
			}

			if !strings.Contains(source, token) {
				continue
			}

			genericIndex := slices.Index(names, genericName)
			require.NotEqual(t, -1, genericIndex)
			assert.Less(t, i, genericIndex, "rule %q contains %q and must run before %q", rule.Name, token, genericName)
		}
	}
}

func TestRuleSet_RulesReturnsCopy(t *testing.T) {
	rules := NewRuleSet(scenarioVariables(), DefaultRuleOptions())

	copied := rules.Rules()
	copied[0], copied[len(copied)-1] = copied[len(copied)-1], copied[0]

	assert.Equal(t, RuleReadmeNote, rules.Names()[0])
}

func TestTransform_Scenarios(t *testing.T) {
	vars := scenarioVariables()

	tests := []struct {
		name  string
		opts  func(*RuleOptions)
		input string
		want  string
	}{
		{
			name:  "declared namespace",
			input: "<?php\n\nnamespace League\\Skeleton;\n",
			want:  "<?php\n\nnamespace HansOtt\\Pipeline;\n",
		},
		{
			name:  "declared namespace with skeleton sub-namespace",
			opts:  func(o *RuleOptions) { o.SkeletonSubNamespace = true },
			input: "namespace League\\Skeleton;",
			want:  "namespace HansOtt\\Pipeline\\Skeleton;",
		},
		{
			name:  "repository url",
			input: `"homepage": "https://github.com/:vendor/:package_name",`,
			want:  `"homepage": "https://github.com/hansott/pipeline",`,
		},
		{
			name:  "repository url on another host",
			opts:  func(o *RuleOptions) { o.Host = "gitlab.com" },
			input: "https://github.com/:vendor/:package_name",
			want:  "https://gitlab.com/hansott/pipeline",
		},
		{
			name:  "psr-4 entry",
			input: `"League\\Skeleton\\": "src"` + "\n" + `":vendor\\:package_name\\": "src"`,
			want:  `"League\\Skeleton\\": "src"` + "\n" + `"HansOtt\\Pipeline\\": "src"`,
		},
		{
			name:  "package name in composer require",
			input: "composer require :vendor/:package_name",
			want:  "composer require hansott/pipeline",
		},
		{
			name:  "note banner removed",
			input: "# Title\n**Note: some banner text\nBody\n",
			want:  "# Title\nBody\n",
		},
		{
			name:  "instantiation example",
			input: "$skeleton = new League\\Skeleton();",
			want:  "$skeleton = new HansOtt\\Pipeline\\Skeleton();",
		},
		{
			name:  "instantiation example disabled",
			opts:  func(o *RuleOptions) { o.InstantiationExample = false },
			input: "$skeleton = new League\\Skeleton();",
			want:  "$skeleton = new League\\Skeleton();",
		},
		{
			name:  "test suite name",
			input: `<testsuite name=":vendor Test Suite">`,
			want:  `<testsuite name="Pipeline Test Suite">`,
		},
		{
			name:  "author tokens",
			input: ":author_name <:author_email> (:author_username) :author_website",
			want:  "Hans Ott <hansott@hotmail.be> (hansott) http://hansott.github.io/",
		},
		{
			name:  "description",
			input: ":package_description",
			want:  "A fast PHP pipeline implementation",
		},
		{
			name:  "every occurrence is replaced",
			input: ":vendor :vendor :vendor",
			want:  "hansott hansott hansott",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultRuleOptions()
			if tt.opts != nil {
				tt.opts(&opts)
			}

			got := Transform(NewRuleSet(vars, opts), tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransform_ReplacesEveryTokenExactlyOnce(t *testing.T) {
	vars := m.Variables{
		PackageName:        "pkgname",
		PackageDescription: "DESCRIPTION",
		Namespace:          "NamespaceValue",
		AuthorName:         "AUTHOR NAME",
		AuthorEmail:        "EMAIL@EXAMPLE.ORG",
		AuthorUsername:     "USERNAME",
		AuthorWebsite:      "https://WEBSITE.example",
	}

	input := strings.Join([]string{
		"**Note: remove me",
		"https://github.com/:vendor/:package_name",
		`:vendor\\:package_name\\`,
		`namespace League\Skeleton;`,
		`new League\Skeleton()`,
		":vendor Test Suite",
		":author_name",
		":author_username",
		":author_website",
		":author_email",
		":vendor",
		":package_name",
		":package_description",
	}, "\n")

	got := Transform(NewRuleSet(vars, DefaultRuleOptions()), input)

	assertNoResidualMarkers(t, got)
	assert.Equal(t, strings.Join([]string{
		"https://github.com/USERNAME/pkgname",
		`NamespaceValue\\Pkgname\\`,
		`namespace NamespaceValue\Pkgname;`,
		`new NamespaceValue\Pkgname\Skeleton()`,
		"Pkgname Test Suite",
		"AUTHOR NAME",
		"USERNAME",
		"https://WEBSITE.example",
		"EMAIL@EXAMPLE.ORG",
		"USERNAME",
		"pkgname",
		"DESCRIPTION",
	}, "\n"), got)
}

func TestTransform_CompositeTokenWinsOverGenericToken(t *testing.T) {
	rules := NewRuleSet(scenarioVariables(), DefaultRuleOptions())

	got := Transform(rules, `":vendor\\:package_name\\": "src", "name": ":vendor/:package_name"`)

	assert.Equal(t, `"HansOtt\\Pipeline\\": "src", "name": "hansott/pipeline"`, got)
	assert.NotContains(t, got, `hansott\\pipeline\\`, "generic rules must not rewrite fragments of the composite token")
}

func TestTransform_IsIdempotentOnTransformedText(t *testing.T) {
	rules := NewRuleSet(scenarioVariables(), DefaultRuleOptions())

	inputs := []string{
		"namespace League\\Skeleton;\n",
		"**Note: banner\n# :package_name\n\n:package_description\n",
		`{"name": ":vendor/:package_name", "autoload": {"psr-4": {":vendor\\:package_name\\": "src"}}}`,
		"nothing to replace here\n",
		"",
	}

	for _, input := range inputs {
		once := Transform(rules, input)
		twice := Transform(rules, once)

		assert.Equal(t, once, twice)
	}
}

func TestTransform_EmptyWebsite(t *testing.T) {
	vars := scenarioVariables()
	vars.AuthorWebsite = ""

	got := Transform(NewRuleSet(vars, DefaultRuleOptions()), "web: :author_website.")
	assert.Equal(t, "web: .", got)
}

func TestTransform_ReplacementIsLiteral(t *testing.T) {
	vars := scenarioVariables()
	vars.PackageDescription = "costs $1 and ${2}"

	got := Transform(NewRuleSet(vars, DefaultRuleOptions()), ":package_description")
	assert.Equal(t, "costs $1 and ${2}", got)
}

func TestRule_ApplyWithReplaceFunc(t *testing.T) {
	rule := Rule{
		Name:        "upper",
		Pattern:     literalRule("x", ":vendor", "").Pattern,
		ReplaceFunc: strings.ToUpper,
	}

	assert.Equal(t, "a :VENDOR b", rule.Apply("a :vendor b"))
}

func TestNewRuleSet_EmptyHostFallsBack(t *testing.T) {
	rules := NewRuleSet(scenarioVariables(), RuleOptions{})

	got := Transform(rules, "https://github.com/:vendor/:package_name")
	assert.Equal(t, "https://github.com/hansott/pipeline", got)
}
