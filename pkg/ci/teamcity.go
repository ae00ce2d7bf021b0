package ci

import (
	"fmt"

	"github.com/trace-toolkit/citags/pkg/gitinfo"
)

// extractTeamcity maps the Teamcity environment to CI tags.
func extractTeamcity(env map[string]string) map[string]string {
	var pipelineURL string
	if env["SERVER_URL"] != "" && env["BUILD_ID"] != "" {
		pipelineURL = fmt.Sprintf("%s/viewLog.html?buildId=%s", env["SERVER_URL"], env["BUILD_ID"])
	}

	return map[string]string{
		gitinfo.TagCommitSHA:     env["BUILD_VCS_NUMBER"],
		gitinfo.TagRepositoryURL: env["BUILD_VCS_URL"],
		PipelineID:               env["BUILD_ID"],
		PipelineNumber:           env["BUILD_NUMBER"],
		PipelineURL:              pipelineURL,
		ProviderName:             "teamcity",
		WorkspacePath:            env["BUILD_CHECKOUTDIR"],
	}
}
