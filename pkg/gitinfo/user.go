package gitinfo

// Dedicated override variables. A non-empty override replaces any provider
// or git-derived value during merging.
const (
	EnvRepositoryURL        = "CITAGS_GIT_REPOSITORY_URL"
	EnvCommitSHA            = "CITAGS_GIT_COMMIT_SHA"
	EnvBranch               = "CITAGS_GIT_BRANCH"
	EnvTag                  = "CITAGS_GIT_TAG"
	EnvCommitMessage        = "CITAGS_GIT_COMMIT_MESSAGE"
	EnvCommitAuthorName     = "CITAGS_GIT_COMMIT_AUTHOR_NAME"
	EnvCommitAuthorEmail    = "CITAGS_GIT_COMMIT_AUTHOR_EMAIL"
	EnvCommitAuthorDate     = "CITAGS_GIT_COMMIT_AUTHOR_DATE"
	EnvCommitCommitterName  = "CITAGS_GIT_COMMIT_COMMITTER_NAME"
	EnvCommitCommitterEmail = "CITAGS_GIT_COMMIT_COMMITTER_EMAIL"
	EnvCommitCommitterDate  = "CITAGS_GIT_COMMIT_COMMITTER_DATE"
)

// ExtractUserMetadata reads the CITAGS_GIT_* override variables from env.
// It is a pure function of its input. Branch and tag values are
// ref-normalized; everything else passes through verbatim.
func ExtractUserMetadata(env map[string]string) map[string]string {
	return map[string]string{
		TagRepositoryURL:        env[EnvRepositoryURL],
		TagCommitSHA:            env[EnvCommitSHA],
		TagBranch:               NormalizeRef(env[EnvBranch]),
		TagTag:                  NormalizeRef(env[EnvTag]),
		TagCommitMessage:        env[EnvCommitMessage],
		TagCommitAuthorName:     env[EnvCommitAuthorName],
		TagCommitAuthorEmail:    env[EnvCommitAuthorEmail],
		TagCommitAuthorDate:     env[EnvCommitAuthorDate],
		TagCommitCommitterName:  env[EnvCommitCommitterName],
		TagCommitCommitterEmail: env[EnvCommitCommitterEmail],
		TagCommitCommitterDate:  env[EnvCommitCommitterDate],
	}
}
