package ci

import (
	"fmt"

	"github.com/trace-toolkit/citags/pkg/gitinfo"
)

// extractBitrise maps the Bitrise environment to CI tags. Commit and branch
// fall back to the git-clone step variables when the build trigger did not
// set them.
func extractBitrise(env map[string]string) map[string]string {
	message := env["BITRISE_GIT_MESSAGE"]
	if message == "" {
		subject := env["GIT_CLONE_COMMIT_MESSAGE_SUBJECT"]
		body := env["GIT_CLONE_COMMIT_MESSAGE_BODY"]
		if subject != "" || body != "" {
			message = fmt.Sprintf("%s:\n%s", subject, body)
		}
	}

	return map[string]string{
		ProviderName:                 "bitrise",
		PipelineID:                   env["BITRISE_BUILD_SLUG"],
		PipelineName:                 env["BITRISE_TRIGGERED_WORKFLOW_ID"],
		PipelineNumber:               env["BITRISE_BUILD_NUMBER"],
		PipelineURL:                  env["BITRISE_BUILD_URL"],
		WorkspacePath:                env["BITRISE_SOURCE_DIR"],
		gitinfo.TagRepositoryURL:     env["GIT_REPOSITORY_URL"],
		gitinfo.TagCommitSHA:         firstOf(env, "BITRISE_GIT_COMMIT", "GIT_CLONE_COMMIT_HASH"),
		gitinfo.TagBranch:            firstOf(env, "BITRISEIO_GIT_BRANCH_DEST", "BITRISE_GIT_BRANCH"),
		gitinfo.TagTag:               env["BITRISE_GIT_TAG"],
		gitinfo.TagCommitMessage:     message,
		gitinfo.TagCommitAuthorName:  env["GIT_CLONE_COMMIT_AUTHOR_NAME"],
		gitinfo.TagCommitAuthorEmail: env["GIT_CLONE_COMMIT_AUTHOR_EMAIL"],
		// Bitrise does not export a committer email; the name variable is
		// the closest signal it provides.
		gitinfo.TagCommitCommitterName:  env["GIT_CLONE_COMMIT_COMMITER_NAME"],
		gitinfo.TagCommitCommitterEmail: env["GIT_CLONE_COMMIT_COMMITER_NAME"],
	}
}
