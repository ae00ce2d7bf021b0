package ci

import (
	"testing"

	"github.com/trace-toolkit/citags/pkg/gitinfo"
)

func TestExtractBuildkite(t *testing.T) {
	env := map[string]string{
		"BUILDKITE":           "true",
		"BUILDKITE_BUILD_URL": "https://buildkite.com/org/pipeline/builds/42",
		"BUILDKITE_JOB_ID":    "job-id",
		"BUILDKITE_BUILD_ID":  "build-id",
	}
	tags := extractBuildkite(env)

	if got, want := tags[JobURL], "https://buildkite.com/org/pipeline/builds/42#job-id"; got != want {
		t.Errorf("job url = %q, want %q", got, want)
	}
	if got, want := tags[EnvVars], `{"BUILDKITE_BUILD_ID":"build-id","BUILDKITE_JOB_ID":"job-id"}`; got != want {
		t.Errorf("env vars payload = %s, want %s", got, want)
	}
}

func TestExtractCircleCI(t *testing.T) {
	env := map[string]string{
		"CIRCLECI":           "true",
		"CIRCLE_WORKFLOW_ID": "wf-id",
		"CIRCLE_BUILD_NUM":   "42",
	}
	tags := extractCircleCI(env)

	if got, want := tags[PipelineURL], "https://app.circleci.com/pipelines/workflows/wf-id"; got != want {
		t.Errorf("pipeline url = %q, want %q", got, want)
	}
	if tags[PipelineID] != "wf-id" || tags[PipelineNumber] != "42" {
		t.Errorf("pipeline id/number = %q/%q", tags[PipelineID], tags[PipelineNumber])
	}
}

func TestExtractTeamcityPipelineURL(t *testing.T) {
	env := map[string]string{
		"TEAMCITY_VERSION": "2023.05",
		"SERVER_URL":       "https://teamcity.example.com",
		"BUILD_ID":         "42",
	}
	if got, want := extractTeamcity(env)[PipelineURL], "https://teamcity.example.com/viewLog.html?buildId=42"; got != want {
		t.Errorf("pipeline url = %q, want %q", got, want)
	}

	delete(env, "SERVER_URL")
	if got := extractTeamcity(env)[PipelineURL]; got != "" {
		t.Errorf("pipeline url = %q, want empty without server url", got)
	}
}

func TestExtractTravisPullRequestBranch(t *testing.T) {
	env := map[string]string{
		"TRAVIS":                     "true",
		"TRAVIS_BRANCH":              "main",
		"TRAVIS_PULL_REQUEST_BRANCH": "pr-branch",
		"TRAVIS_REPO_SLUG":           "org/repo",
	}
	tags := extractTravis(env)

	if got := tags[gitinfo.TagBranch]; got != "pr-branch" {
		t.Errorf("branch = %q, want pr-branch", got)
	}
	if got, want := tags[gitinfo.TagRepositoryURL], "https://github.com/org/repo.git"; got != want {
		t.Errorf("repository url = %q, want %q", got, want)
	}
}

func TestExtractBuddyCompositePipelineID(t *testing.T) {
	env := map[string]string{
		"BUDDY":              "true",
		"BUDDY_PIPELINE_ID":  "7",
		"BUDDY_EXECUTION_ID": "42",
	}
	tags := extractBuddy(env)

	if got := tags[PipelineID]; got != "7/42" {
		t.Errorf("pipeline id = %q, want 7/42", got)
	}
	if got := tags[PipelineNumber]; got != "42" {
		t.Errorf("pipeline number = %q, want 42", got)
	}
}
