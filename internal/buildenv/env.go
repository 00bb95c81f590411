// Package buildenv applies drive resolution results to the build tool's
// configuration and hosts the pre-upload hook.
package buildenv

import (
	"os"
	"sort"
	"strings"
)

// Build configuration keys read or written by the hook.
const (
	KeyEnvName     = "PIOENV"
	KeyUploadPort  = "UPLOAD_PORT"
	KeyUploadFlags = "UPLOAD_FLAGS"
)

// Env is the mutable build configuration owned by the build tool.
type Env interface {
	Get(key string) string
	Replace(key, value string)
}

// MapEnv is an in-memory Env.
type MapEnv map[string]string

func (m MapEnv) Get(key string) string     { return m[key] }
func (m MapEnv) Replace(key, value string) { m[key] = value }

// ProcessEnv is an Env backed by the process environment. Replacements are
// kept locally so they can be handed back to the calling build tool.
type ProcessEnv struct {
	lookup   func(string) (string, bool)
	replaced map[string]string
}

func NewProcessEnv() *ProcessEnv {
	return &ProcessEnv{lookup: os.LookupEnv, replaced: make(map[string]string)}
}

func (p *ProcessEnv) Get(key string) string {
	if v, ok := p.replaced[key]; ok {
		return v
	}
	v, _ := p.lookup(key)
	return v
}

func (p *ProcessEnv) Replace(key, value string) {
	p.replaced[key] = value
}

// Exports renders the replaced keys as shell assignments, sorted by key.
func (p *ProcessEnv) Exports() []string {
	keys := make([]string, 0, len(p.replaced))
	for k := range p.replaced {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+shellQuote(p.replaced[k]))
	}
	return lines
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
