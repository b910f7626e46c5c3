package domain

import (
	"regexp"

	m "skeletor.dev/pkg/skeletor/internal/model"
)

// DefaultRepositoryHost is the host used in generated repository URLs.
const DefaultRepositoryHost = "github.com"

// Placeholder literals found in the skeleton.
const (
	noteBannerPattern         = `\*\*Note:.*\n`
	repositoryURLToken        = "https://github.com/:vendor/:package_name"
	psr4NamespaceToken        = `:vendor\\:package_name\\`
	declaredNamespaceToken    = `namespace League\Skeleton`
	instantiationToken        = `new League\Skeleton()`
	testSuiteToken            = ":vendor Test Suite"
	authorNameToken           = ":author_name"
	authorUsernameToken       = ":author_username"
	authorWebsiteToken        = ":author_website"
	authorEmailToken          = ":author_email"
	vendorToken               = ":vendor"
	packageNameToken          = ":package_name"
	packageDescriptionToken   = ":package_description"
	skeletonSubNamespace      = `\Skeleton`
	namespaceSeparator        = `\`
	escapedNamespaceSeparator = `\\`
)

// Rule names, in application order.
const (
	RuleReadmeNote           = "readme-note"
	RuleRepositoryURL        = "repository-url"
	RulePSR4Namespace        = "psr4-namespace"
	RuleDeclaredNamespace    = "declared-namespace"
	RuleInstantiationExample = "instantiation-example"
	RuleTestSuiteName        = "test-suite-name"
	RuleAuthorName           = "author-name"
	RuleAuthorUsername       = "author-username"
	RuleAuthorWebsite        = "author-website"
	RuleAuthorEmail          = "author-email"
	RuleVendor               = "vendor"
	RulePackageName          = "package-name"
	RulePackageDescription   = "package-description"
)

// RuleOptions selects between template variants.
type RuleOptions struct {
	// Host replaces github.com in the repository URL. Empty means DefaultRepositoryHost.
	Host string

	// SkeletonSubNamespace appends \Skeleton to the declared namespace.
	SkeletonSubNamespace bool

	// InstantiationExample rewrites the `new League\Skeleton()` example in the README.
	InstantiationExample bool
}

// DefaultRuleOptions returns the options matching the bundled skeleton.
func DefaultRuleOptions() RuleOptions {
	return RuleOptions{
		Host:                 DefaultRepositoryHost,
		InstantiationExample: true,
	}
}

// Rule replaces every match of Pattern. When ReplaceFunc is set it is used
// instead of Replacement.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
	ReplaceFunc func(match string) string
}

// Apply rewrites every non-overlapping match in text.
func (r Rule) Apply(text string) string {
	if r.ReplaceFunc != nil {
		return r.Pattern.ReplaceAllStringFunc(text, r.ReplaceFunc)
	}

	return r.Pattern.ReplaceAllLiteralString(text, r.Replacement)
}

func literalRule(name, token, replacement string) Rule {
	return Rule{
		Name:        name,
		Pattern:     regexp.MustCompile(regexp.QuoteMeta(token)),
		Replacement: replacement,
	}
}

// RuleSet is an ordered, read-only list of rules. Composite rules that
// contain :vendor or :package_name always come before the single-token rules.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet builds the rule set for vars.
func NewRuleSet(vars m.Variables, opts RuleOptions) RuleSet {
	host := opts.Host
	if host == "" {
		host = DefaultRepositoryHost
	}

	className := Capitalize(vars.PackageName)
	namespace := vars.Namespace + namespaceSeparator + className

	declared := "namespace " + namespace
	if opts.SkeletonSubNamespace {
		declared += skeletonSubNamespace
	}

	rules := []Rule{
		{
			Name:    RuleReadmeNote,
			Pattern: regexp.MustCompile(noteBannerPattern),
		},
		literalRule(RuleRepositoryURL, repositoryURLToken,
			"https://"+host+"/"+vars.AuthorUsername+"/"+vars.PackageName),
		literalRule(RulePSR4Namespace, psr4NamespaceToken,
			vars.Namespace+escapedNamespaceSeparator+className+escapedNamespaceSeparator),
		literalRule(RuleDeclaredNamespace, declaredNamespaceToken, declared),
	}

	if opts.InstantiationExample {
		rules = append(rules, literalRule(RuleInstantiationExample, instantiationToken,
			"new "+namespace+skeletonSubNamespace+"()"))
	}

	rules = append(rules,
		literalRule(RuleTestSuiteName, testSuiteToken, className+" Test Suite"),
		literalRule(RuleAuthorName, authorNameToken, vars.AuthorName),
		literalRule(RuleAuthorUsername, authorUsernameToken, vars.AuthorUsername),
		literalRule(RuleAuthorWebsite, authorWebsiteToken, vars.AuthorWebsite),
		literalRule(RuleAuthorEmail, authorEmailToken, vars.AuthorEmail),
		literalRule(RuleVendor, vendorToken, vars.AuthorUsername),
		literalRule(RulePackageName, packageNameToken, vars.PackageName),
		literalRule(RulePackageDescription, packageDescriptionToken, vars.PackageDescription),
	)

	return RuleSet{rules: rules}
}

// Rules returns a copy of the rules in application order.
func (rs RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)

	return out
}

// Names returns the rule names in application order.
func (rs RuleSet) Names() []string {
	names := make([]string, 0, len(rs.rules))
	for _, r := range rs.rules {
		names = append(names, r.Name)
	}

	return names
}

// Len returns the number of rules.
func (rs RuleSet) Len() int {
	return len(rs.rules)
}
