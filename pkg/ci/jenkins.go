package ci

import (
	"strings"

	"github.com/trace-toolkit/citags/pkg/gitinfo"
)

// extractJenkins maps the Jenkins environment to CI tags. Multibranch jobs
// embed the branch and axis parameters in JOB_NAME; the branch suffix and
// any key=value segments are stripped to recover the pipeline name.
func extractJenkins(env map[string]string) map[string]string {
	name := env["JOB_NAME"]
	if branch := env["GIT_BRANCH"]; name != "" && branch != "" {
		name = strings.ReplaceAll(name, "/"+gitinfo.NormalizeRef(branch), "")
	}
	if name != "" {
		var kept []string
		for _, part := range strings.Split(name, "/") {
			if part != "" && !strings.Contains(part, "=") {
				kept = append(kept, part)
			}
		}
		name = strings.Join(kept, "/")
	}

	return map[string]string{
		gitinfo.TagBranch:        env["GIT_BRANCH"],
		gitinfo.TagCommitSHA:     env["GIT_COMMIT"],
		gitinfo.TagRepositoryURL: firstOf(env, "GIT_URL", "GIT_URL_1"),
		PipelineID:               env["BUILD_TAG"],
		PipelineName:             name,
		PipelineNumber:           env["BUILD_NUMBER"],
		PipelineURL:              env["BUILD_URL"],
		ProviderName:             "jenkins",
		WorkspacePath:            env["WORKSPACE"],
		EnvVars:                  envVarsPayload(env, "CITAGS_CUSTOM_TRACE_ID"),
	}
}
