// Package gitinfo extracts version-control metadata for trace tagging by
// shelling out to the git binary. Failures are reported to the caller and
// never abort tag collection.
package gitinfo

// Tag keys for git attributes.
const (
	// TagBranch indicates the current branch.
	TagBranch = "git.branch"
	// TagTag indicates the current tag.
	TagTag = "git.tag"
	// TagCommitSHA indicates the commit hash.
	TagCommitSHA = "git.commit.sha"
	// TagRepositoryURL indicates the repository remote URL.
	TagRepositoryURL = "git.repository_url"
	// TagCommitMessage indicates the commit message.
	TagCommitMessage = "git.commit.message"
	// TagCommitAuthorName indicates the commit author name.
	TagCommitAuthorName = "git.commit.author.name"
	// TagCommitAuthorEmail indicates the commit author email.
	TagCommitAuthorEmail = "git.commit.author.email"
	// TagCommitAuthorDate indicates the commit author date.
	TagCommitAuthorDate = "git.commit.author.date"
	// TagCommitCommitterName indicates the commit committer name.
	TagCommitCommitterName = "git.commit.committer.name"
	// TagCommitCommitterEmail indicates the commit committer email.
	TagCommitCommitterEmail = "git.commit.committer.email"
	// TagCommitCommitterDate indicates the commit committer date.
	TagCommitCommitterDate = "git.commit.committer.date"
)
