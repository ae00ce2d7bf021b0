package ci

import (
	"fmt"

	"github.com/trace-toolkit/citags/pkg/gitinfo"
)

// extractGithubActions maps the GitHub Actions environment to CI tags.
// Re-run attempts suffix the pipeline URL and join the correlation payload.
func extractGithubActions(env map[string]string) map[string]string {
	pipelineURL := fmt.Sprintf("%s/%s/actions/runs/%s",
		env["GITHUB_SERVER_URL"], env["GITHUB_REPOSITORY"], env["GITHUB_RUN_ID"])
	envVarKeys := []string{"GITHUB_SERVER_URL", "GITHUB_REPOSITORY", "GITHUB_RUN_ID"}
	if attempt := env["GITHUB_RUN_ATTEMPT"]; attempt != "" {
		pipelineURL = fmt.Sprintf("%s/attempts/%s", pipelineURL, attempt)
		envVarKeys = append(envVarKeys, "GITHUB_RUN_ATTEMPT")
	}

	return map[string]string{
		gitinfo.TagBranch:        firstOf(env, "GITHUB_HEAD_REF", "GITHUB_REF"),
		gitinfo.TagCommitSHA:     env["GITHUB_SHA"],
		gitinfo.TagRepositoryURL: fmt.Sprintf("%s/%s.git", env["GITHUB_SERVER_URL"], env["GITHUB_REPOSITORY"]),
		JobURL: fmt.Sprintf("%s/%s/commit/%s/checks",
			env["GITHUB_SERVER_URL"], env["GITHUB_REPOSITORY"], env["GITHUB_SHA"]),
		PipelineID:     env["GITHUB_RUN_ID"],
		PipelineName:   env["GITHUB_WORKFLOW"],
		PipelineNumber: env["GITHUB_RUN_NUMBER"],
		PipelineURL:    pipelineURL,
		JobName:        env["GITHUB_JOB"],
		ProviderName:   "github",
		WorkspacePath:  env["GITHUB_WORKSPACE"],
		EnvVars:        envVarsPayload(env, envVarKeys...),
	}
}
