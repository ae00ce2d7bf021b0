package ci

import (
	"fmt"

	"github.com/trace-toolkit/citags/pkg/gitinfo"
)

// extractBuildkite maps the Buildkite environment to CI tags.
func extractBuildkite(env map[string]string) map[string]string {
	return map[string]string{
		gitinfo.TagBranch:               env["BUILDKITE_BRANCH"],
		gitinfo.TagCommitSHA:            env["BUILDKITE_COMMIT"],
		gitinfo.TagRepositoryURL:        env["BUILDKITE_REPO"],
		gitinfo.TagTag:                  env["BUILDKITE_TAG"],
		PipelineID:                      env["BUILDKITE_BUILD_ID"],
		PipelineName:                    env["BUILDKITE_PIPELINE_SLUG"],
		PipelineNumber:                  env["BUILDKITE_BUILD_NUMBER"],
		PipelineURL:                     env["BUILDKITE_BUILD_URL"],
		JobURL:                          fmt.Sprintf("%s#%s", env["BUILDKITE_BUILD_URL"], env["BUILDKITE_JOB_ID"]),
		ProviderName:                    "buildkite",
		WorkspacePath:                   env["BUILDKITE_BUILD_CHECKOUT_PATH"],
		gitinfo.TagCommitMessage:        env["BUILDKITE_MESSAGE"],
		gitinfo.TagCommitAuthorName:     env["BUILDKITE_BUILD_AUTHOR"],
		gitinfo.TagCommitAuthorEmail:    env["BUILDKITE_BUILD_AUTHOR_EMAIL"],
		gitinfo.TagCommitCommitterName:  env["BUILDKITE_BUILD_CREATOR"],
		gitinfo.TagCommitCommitterEmail: env["BUILDKITE_BUILD_CREATOR_EMAIL"],
		EnvVars:                         envVarsPayload(env, "BUILDKITE_BUILD_ID", "BUILDKITE_JOB_ID"),
	}
}
