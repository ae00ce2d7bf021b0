package ci

import (
	"os"
	"strings"
)

// An extractor maps a provider environment to a partial tag set. Missing
// variables yield empty entries; extractors never fail.
type extractor func(env map[string]string) map[string]string

// providers is the lookup order. The first sentinel present as a key in the
// environment wins, regardless of its value, and no providers are combined.
var providers = []struct {
	sentinel string
	name     string
	extract  extractor
}{
	{"APPVEYOR", "appveyor", extractAppveyor},
	{"TF_BUILD", "azurepipelines", extractAzurePipelines},
	{"BITBUCKET_COMMIT", "bitbucket", extractBitbucket},
	{"BUILDKITE", "buildkite", extractBuildkite},
	{"CIRCLECI", "circleci", extractCircleCI},
	{"GITHUB_SHA", "github", extractGithubActions},
	{"GITLAB_CI", "gitlab", extractGitlab},
	{"JENKINS_URL", "jenkins", extractJenkins},
	{"TEAMCITY_VERSION", "teamcity", extractTeamcity},
	{"TRAVIS", "travisci", extractTravis},
	{"BITRISE_BUILD_SLUG", "bitrise", extractBitrise},
	{"BUDDY", "buddy", extractBuddy},
}

// providerTags runs the extractor bound to the first matching sentinel.
// Local runs with no recognized CI environment return an empty map.
func providerTags(env map[string]string) map[string]string {
	for _, p := range providers {
		if _, ok := env[p.sentinel]; ok {
			return p.extract(env)
		}
	}
	return map[string]string{}
}

// Provider returns the name of the CI provider detected in env, or "" when
// no sentinel matches.
func Provider(env map[string]string) string {
	for _, p := range providers {
		if _, ok := env[p.sentinel]; ok {
			return p.name
		}
	}
	return ""
}

// Environ copies the process environment into a map.
func Environ() map[string]string {
	kvs := os.Environ()
	env := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		k, v, _ := strings.Cut(kv, "=")
		env[k] = v
	}
	return env
}

// firstOf returns the first non-empty value among the named variables.
func firstOf(env map[string]string, keys ...string) string {
	for _, k := range keys {
		if env[k] != "" {
			return env[k]
		}
	}
	return ""
}
