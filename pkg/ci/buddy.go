package ci

import (
	"fmt"

	"github.com/trace-toolkit/citags/pkg/gitinfo"
)

// extractBuddy maps the Buddy environment to CI tags. The pipeline id is a
// composite of the pipeline and execution ids.
func extractBuddy(env map[string]string) map[string]string {
	return map[string]string{
		ProviderName:                    "buddy",
		PipelineID:                      fmt.Sprintf("%s/%s", env["BUDDY_PIPELINE_ID"], env["BUDDY_EXECUTION_ID"]),
		PipelineName:                    env["BUDDY_PIPELINE_NAME"],
		PipelineNumber:                  env["BUDDY_EXECUTION_ID"],
		PipelineURL:                     env["BUDDY_EXECUTION_URL"],
		gitinfo.TagRepositoryURL:        env["BUDDY_SCM_URL"],
		gitinfo.TagCommitSHA:            env["BUDDY_EXECUTION_REVISION"],
		gitinfo.TagBranch:               env["BUDDY_EXECUTION_BRANCH"],
		gitinfo.TagTag:                  env["BUDDY_EXECUTION_TAG"],
		gitinfo.TagCommitMessage:        env["BUDDY_EXECUTION_REVISION_MESSAGE"],
		gitinfo.TagCommitCommitterName:  env["BUDDY_EXECUTION_REVISION_COMMITTER_NAME"],
		gitinfo.TagCommitCommitterEmail: env["BUDDY_EXECUTION_REVISION_COMMITTER_EMAIL"],
	}
}
