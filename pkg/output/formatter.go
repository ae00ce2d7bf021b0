// Package output renders collected tag maps in a reproducible form.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Format selects a rendering of the tag map.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Render writes tags to w in the requested format. Keys are emitted in
// sorted order so output is stable across runs.
func Render(w io.Writer, format Format, tags map[string]string) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tags)
	case YAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(tags); err != nil {
			return err
		}
		return enc.Close()
	case Text:
		for _, k := range sortedKeys(tags) {
			if _, err := fmt.Fprintf(w, "%s=%s\n", k, tags[k]); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func sortedKeys(tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
