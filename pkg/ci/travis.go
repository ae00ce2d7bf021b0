package ci

import (
	"fmt"

	"github.com/trace-toolkit/citags/pkg/gitinfo"
)

// extractTravis maps the Travis CI environment to CI tags. Pull request
// builds report the PR branch rather than the target branch.
func extractTravis(env map[string]string) map[string]string {
	return map[string]string{
		gitinfo.TagBranch:        firstOf(env, "TRAVIS_PULL_REQUEST_BRANCH", "TRAVIS_BRANCH"),
		gitinfo.TagCommitSHA:     env["TRAVIS_COMMIT"],
		gitinfo.TagRepositoryURL: fmt.Sprintf("https://github.com/%s.git", env["TRAVIS_REPO_SLUG"]),
		gitinfo.TagTag:           env["TRAVIS_TAG"],
		JobURL:                   env["TRAVIS_JOB_WEB_URL"],
		PipelineID:               env["TRAVIS_BUILD_ID"],
		PipelineName:             env["TRAVIS_REPO_SLUG"],
		PipelineNumber:           env["TRAVIS_BUILD_NUMBER"],
		PipelineURL:              env["TRAVIS_BUILD_WEB_URL"],
		ProviderName:             "travisci",
		WorkspacePath:            env["TRAVIS_BUILD_DIR"],
		gitinfo.TagCommitMessage: env["TRAVIS_COMMIT_MESSAGE"],
	}
}
