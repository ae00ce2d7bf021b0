//go:build !unix

package ci

// osVersion reports the OS release where the platform exposes one.
func osVersion() string {
	return "unknown"
}
