package profile

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	jsonpatch "github.com/evanphx/json-patch/v5"
)

// op is a single RFC 6902 operation against the profile document.
type op struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// apply round-trips the profile through JSON, applies ops as an RFC
// 6902 patch and decodes the result back in place. Missing container
// parents are created first, since "add" into an absent array fails.
func (p *Profile) apply(ops ...op) error {
	if p.finalized {
		return ErrFinalized
	}
	if len(ops) == 0 {
		return nil
	}

	current, err := sonic.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	patchJSON, err := sonic.Marshal(ensureParents(current, ops))
	if err != nil {
		return fmt.Errorf("marshal operations: %w", err)
	}
	patch, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return fmt.Errorf("decode patch: %w", err)
	}
	modified, err := patch.Apply(current)
	if err != nil {
		return fmt.Errorf("apply patch: %w", err)
	}

	var next Profile
	if err := sonic.Unmarshal(modified, &next); err != nil {
		return fmt.Errorf("unmarshal patched profile: %w", err)
	}
	next.finalized = p.finalized
	*p = next
	return nil
}

// ensureParents prepends ops creating any absent first-level container
// a patch operation targets. A trailing "-" token means the parent is
// an array, anything else an object.
func ensureParents(current []byte, ops []op) []op {
	var doc map[string]any
	if err := sonic.Unmarshal(current, &doc); err != nil {
		return ops
	}

	fixed := make([]op, 0, len(ops))
	created := make(map[string]struct{})
	for _, o := range ops {
		tokens := strings.Split(strings.TrimPrefix(o.Path, "/"), "/")
		if len(tokens) == 2 {
			parent := tokens[0]
			if _, exists := doc[parent]; !exists {
				if _, done := created[parent]; !done {
					created[parent] = struct{}{}
					if tokens[1] == "-" {
						fixed = append(fixed, op{Op: "add", Path: "/" + parent, Value: []any{}})
					} else {
						fixed = append(fixed, op{Op: "add", Path: "/" + parent, Value: map[string]any{}})
					}
				}
			}
		}
		fixed = append(fixed, o)
	}
	return fixed
}
