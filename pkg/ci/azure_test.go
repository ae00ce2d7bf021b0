package ci

import (
	"testing"

	"github.com/trace-toolkit/citags/pkg/gitinfo"
)

func TestExtractAzurePipelinesURLs(t *testing.T) {
	env := map[string]string{
		"TF_BUILD":                       "True",
		"SYSTEM_TEAMFOUNDATIONSERVERURI": "https://dev.azure.com/org/",
		"SYSTEM_TEAMPROJECTID":           "proj-id",
		"BUILD_BUILDID":                  "42",
		"SYSTEM_JOBID":                   "job-id",
		"SYSTEM_TASKINSTANCEID":          "task-id",
	}
	tags := extractAzurePipelines(env)

	if got, want := tags[PipelineURL], "https://dev.azure.com/org/proj-id/_build/results?buildId=42"; got != want {
		t.Errorf("pipeline url = %q, want %q", got, want)
	}
	if got, want := tags[JobURL], "https://dev.azure.com/org/proj-id/_build/results?buildId=42&view=logs&j=job-id&t=task-id"; got != want {
		t.Errorf("job url = %q, want %q", got, want)
	}
	if got, want := tags[EnvVars], `{"SYSTEM_TEAMPROJECTID":"proj-id","BUILD_BUILDID":"42","SYSTEM_JOBID":"job-id"}`; got != want {
		t.Errorf("env vars payload = %s, want %s", got, want)
	}
}

func TestExtractAzurePipelinesMissingURLInputs(t *testing.T) {
	// Without server URI, project id and build id, no URLs are composed.
	env := map[string]string{"TF_BUILD": "True", "BUILD_BUILDID": "42"}
	tags := extractAzurePipelines(env)
	if tags[PipelineURL] != "" || tags[JobURL] != "" {
		t.Errorf("urls = %q/%q, want empty", tags[PipelineURL], tags[JobURL])
	}
}

func TestExtractAzurePipelinesPullRequestPrecedence(t *testing.T) {
	env := map[string]string{
		"TF_BUILD":                               "True",
		"SYSTEM_PULLREQUEST_SOURCEREPOSITORYURI": "https://dev.azure.com/org/fork",
		"BUILD_REPOSITORY_URI":                   "https://dev.azure.com/org/repo",
		"SYSTEM_PULLREQUEST_SOURCECOMMITID":      "prsha",
		"BUILD_SOURCEVERSION":                    "mainsha",
		"SYSTEM_PULLREQUEST_SOURCEBRANCH":        "refs/heads/pr",
		"BUILD_SOURCEBRANCH":                     "refs/heads/main",
	}
	tags := extractAzurePipelines(env)

	if got := tags[gitinfo.TagRepositoryURL]; got != "https://dev.azure.com/org/fork" {
		t.Errorf("repository url = %q", got)
	}
	if got := tags[gitinfo.TagCommitSHA]; got != "prsha" {
		t.Errorf("commit sha = %q", got)
	}
	if got := tags[gitinfo.TagBranch]; got != "refs/heads/pr" {
		t.Errorf("branch = %q", got)
	}
}
