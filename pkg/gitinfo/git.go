package gitinfo

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
)

// run executes a git subcommand in dir and returns its trimmed stdout.
// A missing binary maps to ErrGitNotFound; any other failure is wrapped in
// an ExtractionError carrying the command's stderr.
func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrGitNotFound
		}
		return "", &ExtractionError{Args: args, Stderr: stderr.String(), Err: err}
	}
	return strings.TrimSpace(stdout.String()), nil
}

// ExtractMetadata collects repository, commit and author fields from the
// repository at dir. Fields gathered before a failure are returned alongside
// the error, so callers can keep the partial result.
func ExtractMetadata(dir string) (map[string]string, error) {
	tags := map[string]string{}

	repo, err := run(dir, "ls-remote", "--get-url")
	if err != nil {
		return tags, err
	}
	tags[TagRepositoryURL] = repo

	message, err := run(dir, "show", "-s", "--format=%s")
	if err != nil {
		return tags, err
	}
	tags[TagCommitMessage] = message

	users, err := run(dir, "show", "-s", "--format=%an,%ae,%ad,%cn,%ce,%cd")
	if err != nil {
		return tags, err
	}
	parts := strings.Split(users, ",")
	if len(parts) != 6 {
		return tags, &ExtractionError{
			Args:   []string{"show", "-s", "--format=%an,%ae,%ad,%cn,%ce,%cd"},
			Stderr: "unexpected author format: " + users,
			Err:    errors.New("malformed git show output"),
		}
	}
	tags[TagCommitAuthorName] = parts[0]
	tags[TagCommitAuthorEmail] = parts[1]
	tags[TagCommitAuthorDate] = parts[2]
	tags[TagCommitCommitterName] = parts[3]
	tags[TagCommitCommitterEmail] = parts[4]
	tags[TagCommitCommitterDate] = parts[5]

	branch, err := run(dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return tags, err
	}
	tags[TagBranch] = branch

	sha, err := run(dir, "rev-parse", "HEAD")
	if err != nil {
		return tags, err
	}
	tags[TagCommitSHA] = sha

	return tags, nil
}

// ExtractWorkspacePath returns the root of the working tree containing dir.
func ExtractWorkspacePath(dir string) (string, error) {
	return run(dir, "rev-parse", "--show-toplevel")
}
