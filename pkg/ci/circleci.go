package ci

import (
	"fmt"

	"github.com/trace-toolkit/citags/pkg/gitinfo"
)

// extractCircleCI maps the CircleCI environment to CI tags.
func extractCircleCI(env map[string]string) map[string]string {
	return map[string]string{
		gitinfo.TagBranch:        env["CIRCLE_BRANCH"],
		gitinfo.TagCommitSHA:     env["CIRCLE_SHA1"],
		gitinfo.TagRepositoryURL: env["CIRCLE_REPOSITORY_URL"],
		gitinfo.TagTag:           env["CIRCLE_TAG"],
		PipelineID:               env["CIRCLE_WORKFLOW_ID"],
		PipelineName:             env["CIRCLE_PROJECT_REPONAME"],
		PipelineNumber:           env["CIRCLE_BUILD_NUM"],
		PipelineURL:              fmt.Sprintf("https://app.circleci.com/pipelines/workflows/%s", env["CIRCLE_WORKFLOW_ID"]),
		JobURL:                   env["CIRCLE_BUILD_URL"],
		JobName:                  env["CIRCLE_JOB"],
		ProviderName:             "circleci",
		WorkspacePath:            env["CIRCLE_WORKING_DIRECTORY"],
		EnvVars:                  envVarsPayload(env, "CIRCLE_WORKFLOW_ID", "CIRCLE_BUILD_NUM"),
	}
}
