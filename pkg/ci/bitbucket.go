package ci

import (
	"fmt"
	"strings"

	"github.com/trace-toolkit/citags/pkg/gitinfo"
)

// extractBitbucket maps the Bitbucket Pipelines environment to CI tags.
// The pipeline UUID arrives wrapped in braces which are stripped.
func extractBitbucket(env map[string]string) map[string]string {
	url := fmt.Sprintf("https://bitbucket.org/%s/addon/pipelines/home#!/results/%s",
		env["BITBUCKET_REPO_FULL_NAME"], env["BITBUCKET_BUILD_NUMBER"])

	return map[string]string{
		gitinfo.TagBranch:        env["BITBUCKET_BRANCH"],
		gitinfo.TagCommitSHA:     env["BITBUCKET_COMMIT"],
		gitinfo.TagRepositoryURL: env["BITBUCKET_GIT_SSH_ORIGIN"],
		gitinfo.TagTag:           env["BITBUCKET_TAG"],
		JobURL:                   url,
		PipelineID:               strings.Trim(env["BITBUCKET_PIPELINE_UUID"], "{}"),
		PipelineName:             env["BITBUCKET_REPO_FULL_NAME"],
		PipelineNumber:           env["BITBUCKET_BUILD_NUMBER"],
		PipelineURL:              url,
		ProviderName:             "bitbucket",
		WorkspacePath:            env["BITBUCKET_CLONE_DIR"],
	}
}
