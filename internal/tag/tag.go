// Package tag implements named, process-wide immutable block-set
// predicates (spec.md's "Tag": e.g. "minecraft:dirt",
// "minecraft:soul_fire_base_blocks"), used by behaviors to query
// membership without hardcoding per-block switch statements.
package tag

import "encoding/json"

// Set is an immutable, process-wide collection of named tags, each
// mapping to a set of registry keys.
type Set struct {
	tags map[string]map[string]struct{}
}

// Load parses a tags.json payload of the shape {"tag_key": ["minecraft:block", ...]}.
func Load(raw []byte) (*Set, error) {
	var parsed map[string][]string
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}
	s := &Set{tags: make(map[string]map[string]struct{}, len(parsed))}
	for tagKey, members := range parsed {
		m := make(map[string]struct{}, len(members))
		for _, key := range members {
			m[key] = struct{}{}
		}
		s.tags[tagKey] = m
	}
	return s, nil
}

// IsTagged reports whether blockKey ("minecraft:<name>") is a member of
// tagKey. An unknown tag key is treated as an empty set rather than an
// error — tags describe optional predicates, not required schema.
func (s *Set) IsTagged(blockKey, tagKey string) bool {
	members, ok := s.tags[tagKey]
	if !ok {
		return false
	}
	_, found := members[blockKey]
	return found
}

// Members returns the registry keys tagged with tagKey.
func (s *Set) Members(tagKey string) []string {
	members := s.tags[tagKey]
	out := make([]string, 0, len(members))
	for k := range members {
		out = append(out, k)
	}
	return out
}
