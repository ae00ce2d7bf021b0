package ci

import (
	"encoding/json"
	"strings"
)

// envVarsPayload serializes the named variables as a compact JSON object in
// the order given. The key order is fixed so the payload is byte-for-byte
// reproducible for a given environment.
func envVarsPayload(env map[string]string, keys ...string) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, _ := json.Marshal(k)
		vb, _ := json.Marshal(env[k])
		b.Write(kb)
		b.WriteByte(':')
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.String()
}
