package ci

import "testing"

func TestProviderSentinels(t *testing.T) {
	tests := []struct {
		sentinel string
		want     string
	}{
		{"APPVEYOR", "appveyor"},
		{"TF_BUILD", "azurepipelines"},
		{"BITBUCKET_COMMIT", "bitbucket"},
		{"BUILDKITE", "buildkite"},
		{"CIRCLECI", "circleci"},
		{"GITHUB_SHA", "github"},
		{"GITLAB_CI", "gitlab"},
		{"JENKINS_URL", "jenkins"},
		{"TEAMCITY_VERSION", "teamcity"},
		{"TRAVIS", "travisci"},
		{"BITRISE_BUILD_SLUG", "bitrise"},
		{"BUDDY", "buddy"},
	}
	for _, tt := range tests {
		t.Run(tt.sentinel, func(t *testing.T) {
			env := map[string]string{tt.sentinel: "true"}
			if got := Provider(env); got != tt.want {
				t.Errorf("Provider(%s) = %q, want %q", tt.sentinel, got, tt.want)
			}
			if got := providerTags(env)[ProviderName]; got != tt.want {
				t.Errorf("providerTags(%s)[%s] = %q, want %q", tt.sentinel, ProviderName, got, tt.want)
			}
		})
	}
}

func TestProviderNoSentinel(t *testing.T) {
	env := map[string]string{"PATH": "/usr/bin", "HOME": "/home/ci"}
	if got := Provider(env); got != "" {
		t.Errorf("Provider() = %q, want empty", got)
	}
	if got := providerTags(env); len(got) != 0 {
		t.Errorf("providerTags() = %v, want empty map", got)
	}
}

func TestProviderEmptySentinelValueCounts(t *testing.T) {
	// Presence of the key selects the provider, even with an empty value.
	env := map[string]string{"TRAVIS": ""}
	if got := Provider(env); got != "travisci" {
		t.Errorf("Provider() = %q, want travisci", got)
	}
}

func TestProviderFirstMatchWins(t *testing.T) {
	// Appveyor precedes Travis in the registry; no combination happens.
	env := map[string]string{"TRAVIS": "true", "APPVEYOR": "true"}
	if got := Provider(env); got != "appveyor" {
		t.Errorf("Provider() = %q, want appveyor", got)
	}
}

func TestFirstOf(t *testing.T) {
	env := map[string]string{"A": "", "B": "b", "C": "c"}
	if got := firstOf(env, "A", "B", "C"); got != "b" {
		t.Errorf("firstOf() = %q, want b", got)
	}
	if got := firstOf(env, "A", "MISSING"); got != "" {
		t.Errorf("firstOf() = %q, want empty", got)
	}
}
