package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/liftplan/internal/catalog"
	"github.com/mark3labs/mcp-go/mcp"
)

// catalogEntry is one exercise as exposed over MCP.
type catalogEntry struct {
	Name        string                `json:"name"`
	MuscleGroup string                `json:"muscle_group"`
	Compound    bool                  `json:"compound"`
	Equipment   catalog.EquipmentType `json:"equipment"`
	RepRange    *catalog.RepRange     `json:"rep_range,omitempty"`
}

// catalogEntries lists catalog exercises, optionally filtered by muscle
// group.
func (h *handlers) catalogEntries(muscleGroup string) []catalogEntry {
	cat := h.eng.Catalog()
	exercises := cat.Exercises()
	result := make([]catalogEntry, 0, len(exercises))
	for _, ex := range exercises {
		if muscleGroup != "" && ex.MuscleGroup != muscleGroup {
			continue
		}
		entry := catalogEntry{
			Name:        ex.Name,
			MuscleGroup: ex.MuscleGroup,
			Compound:    ex.Compound,
			Equipment:   cat.EquipmentFor(ex.Name),
		}
		if rr, ok := cat.RepRange(ex.Name); ok {
			entry.RepRange = &rr
		}
		result = append(result, entry)
	}
	return result
}

func (h *handlers) catalogResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(h.catalogEntries(""))
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "liftplan://catalog",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
