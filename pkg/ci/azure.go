package ci

import (
	"fmt"

	"github.com/trace-toolkit/citags/pkg/gitinfo"
)

// extractAzurePipelines maps the Azure Pipelines environment to CI tags.
// Pipeline and job URLs are only composed when the server URI, project id
// and build id are all present.
func extractAzurePipelines(env map[string]string) map[string]string {
	var pipelineURL, jobURL string
	if env["SYSTEM_TEAMFOUNDATIONSERVERURI"] != "" && env["SYSTEM_TEAMPROJECTID"] != "" && env["BUILD_BUILDID"] != "" {
		base := fmt.Sprintf("%s%s/_build/results?buildId=%s",
			env["SYSTEM_TEAMFOUNDATIONSERVERURI"], env["SYSTEM_TEAMPROJECTID"], env["BUILD_BUILDID"])
		pipelineURL = base
		jobURL = fmt.Sprintf("%s&view=logs&j=%s&t=%s", base, env["SYSTEM_JOBID"], env["SYSTEM_TASKINSTANCEID"])
	}

	return map[string]string{
		ProviderName:                 "azurepipelines",
		WorkspacePath:                env["BUILD_SOURCESDIRECTORY"],
		PipelineID:                   env["BUILD_BUILDID"],
		PipelineName:                 env["BUILD_DEFINITIONNAME"],
		PipelineNumber:               env["BUILD_BUILDID"],
		PipelineURL:                  pipelineURL,
		JobURL:                       jobURL,
		gitinfo.TagRepositoryURL:     firstOf(env, "SYSTEM_PULLREQUEST_SOURCEREPOSITORYURI", "BUILD_REPOSITORY_URI"),
		gitinfo.TagCommitSHA:         firstOf(env, "SYSTEM_PULLREQUEST_SOURCECOMMITID", "BUILD_SOURCEVERSION"),
		gitinfo.TagBranch:            firstOf(env, "SYSTEM_PULLREQUEST_SOURCEBRANCH", "BUILD_SOURCEBRANCH", "BUILD_SOURCEBRANCHNAME"),
		gitinfo.TagCommitMessage:     env["BUILD_SOURCEVERSIONMESSAGE"],
		gitinfo.TagCommitAuthorName:  env["BUILD_REQUESTEDFORID"],
		gitinfo.TagCommitAuthorEmail: env["BUILD_REQUESTEDFOREMAIL"],
		StageName:                    env["SYSTEM_STAGEDISPLAYNAME"],
		JobName:                      env["SYSTEM_JOBDISPLAYNAME"],
		EnvVars:                      envVarsPayload(env, "SYSTEM_TEAMPROJECTID", "BUILD_BUILDID", "SYSTEM_JOBID"),
	}
}
