package util

import (
	"fmt"
	"strings"
)

// Slugify derives a stable identifier from a display name. Spaces and
// underscores collapse to dashes; non-Latin scripts pass through so
// Hebrew topic names keep readable ids.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Join(strings.Fields(s), "-")
	s = strings.ReplaceAll(s, "_", "-")
	return s
}

// ColorFromName returns a deterministic HSL color for a name. The same
// name always hashes to the same hue, so synthesized topics keep their
// color across imports.
func ColorFromName(name string) string {
	var h uint32
	for _, r := range name {
		h = h*31 + uint32(r)
	}
	return fmt.Sprintf("hsl(%d 70%% 60%%)", h%360)
}
