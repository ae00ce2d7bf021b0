package gitinfo

import (
	"regexp"
	"strings"
)

var (
	refsRe   = regexp.MustCompile(`^refs/(heads/)?`)
	originRe = regexp.MustCompile(`^origin/`)
	tagsRe   = regexp.MustCompile(`^tags/`)
)

// NormalizeRef strips the refs/, refs/heads/, origin/ and tags/ prefixes
// from a ref name.
func NormalizeRef(name string) string {
	if name == "" {
		return ""
	}
	return tagsRe.ReplaceAllString(originRe.ReplaceAllString(refsRe.ReplaceAllString(name, ""), ""), "")
}

// IsRefATag reports whether ref points at a tag rather than a branch.
func IsRefATag(ref string) bool {
	return strings.Contains(ref, "tags/")
}
