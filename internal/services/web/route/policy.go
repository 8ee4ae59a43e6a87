package route

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Access is the per-route access setting of a Policy.
type Access struct {
	RequiresAuth bool `toml:"requires_auth"`
}

// Policy overrides route access by name. It is decoded from TOML:
//
//	[routes.owner]
//	requires_auth = true
type Policy struct {
	Routes map[Name]Access `toml:"routes"`
}

// LoadPolicy decodes a TOML access policy. Unknown keys are rejected so a
// typo cannot silently leave a route public.
func LoadPolicy(r io.Reader) (Policy, error) {
	if r == nil {
		return Policy{}, fmt.Errorf("policy reader is required")
	}
	var policy Policy
	meta, err := toml.NewDecoder(r).Decode(&policy)
	if err != nil {
		return Policy{}, fmt.Errorf("decode route policy: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return Policy{}, fmt.Errorf("decode route policy: unknown keys %s", strings.Join(keys, ", "))
	}
	return policy, nil
}

// LoadPolicyFile reads a TOML access policy from path. An empty path yields
// an empty policy.
func LoadPolicyFile(path string) (Policy, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Policy{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Policy{}, fmt.Errorf("open route policy: %w", err)
	}
	defer f.Close()
	return LoadPolicy(f)
}
