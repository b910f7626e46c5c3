package domain

import (
	"context"
	"path/filepath"

	"skeletor.dev/pkg/skeletor/internal/adapter"
	"skeletor.dev/pkg/skeletor/internal/controller"
	m "skeletor.dev/pkg/skeletor/internal/model"
)

var questionMessages = map[string]string{
	m.KeyPackageName:        "Your package name?",
	m.KeyPackageDescription: "Your package description?",
	m.KeyNamespace:          "Top level namespace?",
	m.KeyAuthorName:         "Your full name?",
	m.KeyAuthorEmail:        "Your e-mail address?",
	m.KeyAuthorUsername:     "Your GitHub username?",
	m.KeyAuthorWebsite:      "Your website?",
}

// Defaults computes prompt defaults. Values in known take precedence and
// feed derived defaults, so a known author name also drives the namespace.
func Defaults(ctx context.Context, env adapter.EnvironmentAdapter, destination m.Path, known map[string]string) map[string]string {
	defaults := make(map[string]string, len(m.VariableKeys()))

	if dir := destinationDir(env, destination); dir != "" {
		defaults[m.KeyPackageName] = Slugify(filepath.Base(dir))
	}

	defaults[m.KeyAuthorName] = env.GitConfig(ctx, "user.name")
	defaults[m.KeyAuthorEmail] = env.GitConfig(ctx, "user.email")
	defaults[m.KeyAuthorUsername] = env.CurrentUsername()

	for key, value := range known {
		if value != "" {
			defaults[key] = value
		}
	}

	if known[m.KeyNamespace] == "" {
		defaults[m.KeyNamespace] = Namespacify(defaults[m.KeyAuthorName])
	}

	return defaults
}

func destinationDir(env adapter.EnvironmentAdapter, destination m.Path) string {
	dir := string(destination)
	if dir != "" && dir != "." {
		if abs, err := filepath.Abs(dir); err == nil {
			return abs
		}

		return dir
	}

	wd, err := env.Getwd()
	if err != nil {
		return ""
	}

	return wd
}

// Questions builds the prompts for every key not in skip, in prompt order.
func Questions(defaults map[string]string, policy ValidationPolicy, skip map[string]string) []controller.Question {
	validators := policy.Validators()
	questions := make([]controller.Question, 0, len(m.VariableKeys()))

	for _, key := range m.VariableKeys() {
		if _, answered := skip[key]; answered {
			continue
		}

		questions = append(questions, controller.Question{
			Key:      key,
			Message:  questionMessages[key],
			Default:  defaults[key],
			Validate: validators[key],
		})
	}

	return questions
}
