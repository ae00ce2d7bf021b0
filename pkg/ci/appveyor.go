package ci

import (
	"fmt"

	"github.com/trace-toolkit/citags/pkg/gitinfo"
)

// extractAppveyor maps the Appveyor environment to CI tags. Git fields are
// only populated for github-backed projects; other repo providers do not
// expose usable values.
func extractAppveyor(env map[string]string) map[string]string {
	url := fmt.Sprintf("https://ci.appveyor.com/project/%s/builds/%s",
		env["APPVEYOR_REPO_NAME"], env["APPVEYOR_BUILD_ID"])

	var repository, commit, branch, tag string
	if env["APPVEYOR_REPO_PROVIDER"] == "github" {
		repository = fmt.Sprintf("https://github.com/%s.git", env["APPVEYOR_REPO_NAME"])
		commit = env["APPVEYOR_REPO_COMMIT"]
		branch = firstOf(env, "APPVEYOR_PULL_REQUEST_HEAD_REPO_BRANCH", "APPVEYOR_REPO_BRANCH")
		tag = env["APPVEYOR_REPO_TAG_NAME"]
	}

	message := env["APPVEYOR_REPO_COMMIT_MESSAGE"]
	if message != "" {
		if extended := env["APPVEYOR_REPO_COMMIT_MESSAGE_EXTENDED"]; extended != "" {
			message += "\n" + extended
		}
	}

	return map[string]string{
		ProviderName:                 "appveyor",
		gitinfo.TagRepositoryURL:     repository,
		gitinfo.TagCommitSHA:         commit,
		WorkspacePath:                env["APPVEYOR_BUILD_FOLDER"],
		PipelineID:                   env["APPVEYOR_BUILD_ID"],
		PipelineName:                 env["APPVEYOR_REPO_NAME"],
		PipelineNumber:               env["APPVEYOR_BUILD_NUMBER"],
		PipelineURL:                  url,
		JobURL:                       url,
		gitinfo.TagBranch:            branch,
		gitinfo.TagTag:               tag,
		gitinfo.TagCommitMessage:     message,
		gitinfo.TagCommitAuthorName:  env["APPVEYOR_REPO_COMMIT_AUTHOR"],
		gitinfo.TagCommitAuthorEmail: env["APPVEYOR_REPO_COMMIT_AUTHOR_EMAIL"],
	}
}
