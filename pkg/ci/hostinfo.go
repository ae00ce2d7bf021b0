package ci

import "runtime"

// hostTags reports the OS and runtime facets. These are sourced from the
// execution environment and never overridden by provider or git data.
func hostTags() map[string]string {
	return map[string]string{
		OSArchitecture: runtime.GOARCH,
		OSPlatform:     runtime.GOOS,
		OSVersion:      osVersion(),
		RuntimeName:    "go",
		RuntimeVersion: runtime.Version(),
	}
}
