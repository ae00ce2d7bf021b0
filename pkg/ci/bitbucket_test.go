package ci

import "testing"

func TestExtractBitbucketPipelineUUID(t *testing.T) {
	env := map[string]string{
		"BITBUCKET_COMMIT":        "abc123",
		"BITBUCKET_PIPELINE_UUID": "{6a0994b8-97a6-4c2e-9f4e-42d4d2f843dc}",
	}
	if got, want := extractBitbucket(env)[PipelineID], "6a0994b8-97a6-4c2e-9f4e-42d4d2f843dc"; got != want {
		t.Errorf("pipeline id = %q, want %q", got, want)
	}
}

func TestExtractBitbucketURLs(t *testing.T) {
	env := map[string]string{
		"BITBUCKET_COMMIT":         "abc123",
		"BITBUCKET_REPO_FULL_NAME": "org/repo",
		"BITBUCKET_BUILD_NUMBER":   "42",
	}
	tags := extractBitbucket(env)

	url := "https://bitbucket.org/org/repo/addon/pipelines/home#!/results/42"
	if tags[PipelineURL] != url {
		t.Errorf("pipeline url = %q, want %q", tags[PipelineURL], url)
	}
	if tags[JobURL] != url {
		t.Errorf("job url = %q, want %q", tags[JobURL], url)
	}
	if tags[PipelineName] != "org/repo" || tags[PipelineNumber] != "42" {
		t.Errorf("pipeline name/number = %q/%q", tags[PipelineName], tags[PipelineNumber])
	}
}
