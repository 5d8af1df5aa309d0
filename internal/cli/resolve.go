package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tabgroups/internal/domain"
	"github.com/alexanderramin/tabgroups/internal/reorder"
)

// resolveNodeID resolves a node identifier which can be:
//   - A full ID (passed through when it exists)
//   - A unique ID prefix, as printed by `tree`
func resolveNodeID(nodes []domain.Node, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty node ID")
	}
	var matches []string
	for _, n := range nodes {
		if n.ID == input {
			return n.ID, nil
		}
		if strings.HasPrefix(n.ID, input) {
			matches = append(matches, n.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("node %q: %w", input, reorder.ErrNodeNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("node prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// titleOf returns the title of id, or its short form when unknown.
func titleOf(idx *reorder.Index, id string) string {
	if n, ok := idx.Get(id); ok {
		return n.Title
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
