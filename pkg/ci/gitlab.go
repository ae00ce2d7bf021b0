package ci

import (
	"strings"

	"github.com/trace-toolkit/citags/pkg/gitinfo"
)

// extractGitlab maps the GitLab CI environment to CI tags.
func extractGitlab(env map[string]string) map[string]string {
	authorName, authorEmail := splitAuthor(env["CI_COMMIT_AUTHOR"])

	url := env["CI_PIPELINE_URL"]
	if url != "" {
		url = strings.ReplaceAll(url, "/-/pipelines/", "/pipelines/")
	}

	return map[string]string{
		gitinfo.TagBranch:            env["CI_COMMIT_REF_NAME"],
		gitinfo.TagCommitSHA:         env["CI_COMMIT_SHA"],
		gitinfo.TagRepositoryURL:     env["CI_REPOSITORY_URL"],
		gitinfo.TagTag:               env["CI_COMMIT_TAG"],
		StageName:                    env["CI_JOB_STAGE"],
		JobName:                      env["CI_JOB_NAME"],
		JobURL:                       env["CI_JOB_URL"],
		PipelineID:                   env["CI_PIPELINE_ID"],
		PipelineName:                 env["CI_PROJECT_PATH"],
		PipelineNumber:               env["CI_PIPELINE_IID"],
		PipelineURL:                  url,
		ProviderName:                 "gitlab",
		WorkspacePath:                env["CI_PROJECT_DIR"],
		gitinfo.TagCommitMessage:     env["CI_COMMIT_MESSAGE"],
		gitinfo.TagCommitAuthorName:  authorName,
		gitinfo.TagCommitAuthorEmail: authorEmail,
		gitinfo.TagCommitAuthorDate:  env["CI_COMMIT_TIMESTAMP"],
		EnvVars:                      envVarsPayload(env, "CI_PROJECT_URL", "CI_PIPELINE_ID", "CI_JOB_ID"),
	}
}

// splitAuthor separates a "name <email>" composite into its two parts.
// A value without a bracketed email is treated as a bare name.
func splitAuthor(author string) (name, email string) {
	if author == "" {
		return "", ""
	}
	author = strings.Trim(author, "> ")
	if i := strings.LastIndex(author, " <"); i >= 0 {
		return author[:i], author[i+2:]
	}
	return author, ""
}
