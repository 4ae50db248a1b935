package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zoyopo/xstate/pkg/machine"
)

// Overlay contains dynamic run data to visualize on the graph.
type Overlay struct {
	// VisitedStates are node ids that were tested during a run.
	VisitedStates []string
	// FailedStates are node ids whose assertions failed.
	FailedStates []string
}

// GenerateMermaid produces Mermaid flowchart syntax for a machine config.
// The initial node is drawn as a circle, nodes with a skip-flagged meta as
// parallelograms, everything else as rectangles. Guarded transitions carry
// the guard name on the arrow. Overlay styles mark visited and failed
// states if provided.
func GenerateMermaid(config machine.MachineConfig, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, id := range sortedStateIDs(config) {
		node := config.States[id]
		safeID := sanitizeMermaidID(id)

		opener, closer := "[", "]"
		switch {
		case id == config.Initial:
			opener, closer = "((", "))"
		case node.Meta != nil && node.Meta.Skip:
			opener, closer = "[/", "/]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, id, closer))

		for _, evType := range sortedEventTypes(node) {
			t := node.On[evType]
			safeTo := sanitizeMermaidID(t.Target)

			arrow := fmt.Sprintf("-- \"%s\" -->", evType)
			if t.Cond != "" {
				arrow = fmt.Sprintf("-. \"%s [%s]\" .->", evType, t.Cond)
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, safeTo))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text for high contrast regardless of theme.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef failed fill:#ffebee,stroke:#b71c1c,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(id)
			if !seen[safeID] && safeID != "" {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}
		for _, id := range overlay.FailedStates {
			safeID := sanitizeMermaidID(id)
			if safeID != "" {
				sb.WriteString(fmt.Sprintf("    class %s failed;\n", safeID))
			}
		}
	}

	return sb.String()
}

func sortedStateIDs(config machine.MachineConfig) []string {
	ids := make([]string, 0, len(config.States))
	for id := range config.States {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedEventTypes(node machine.StateNode) []machine.EventType {
	types := make([]machine.EventType, 0, len(node.On))
	for evType := range node.On {
		types = append(types, evType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
