package mcp

import (
	"context"
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mwhitmore/cbt-agent-mcp/internal/domain/cbt"
)

// registerResources adds the static reference resources. Payloads are
// marshaled once at startup; the catalogs never change at runtime.
func (s *Server) registerResources() {
	guide, err := json.MarshalIndent(cbt.BuildTechniquesGuide(), "", "  ")
	if err != nil {
		s.logger.Error("failed to encode techniques guide", "error", err)
		return
	}
	patterns, err := json.MarshalIndent(cbt.BuildStatePatterns(), "", "  ")
	if err != nil {
		s.logger.Error("failed to encode state patterns", "error", err)
		return
	}

	addJSONResource(s.server, &sdkmcp.Resource{
		URI:         "cbt://techniques/guide",
		Name:        "cbt_techniques_guide",
		Title:       "CBT techniques guide",
		Description: "Reference guide of CBT techniques, cognitive distortions, and quick interventions applicable to AI agents.",
		MIMEType:    "application/json",
		Size:        int64(len(guide)),
	}, string(guide))

	addJSONResource(s.server, &sdkmcp.Resource{
		URI:         "cbt://patterns/agent-state",
		Name:        "agent_state_patterns",
		Title:       "Agent state patterns",
		Description: "Common agent states with their signs and matching interventions.",
		MIMEType:    "application/json",
		Size:        int64(len(patterns)),
	}, string(patterns))
}

func addJSONResource(server *sdkmcp.Server, res *sdkmcp.Resource, content string) {
	server.AddResource(res, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
		uri := res.URI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		return &sdkmcp.ReadResourceResult{
			Contents: []*sdkmcp.ResourceContents{{
				URI:      uri,
				MIMEType: "application/json",
				Text:     content,
			}},
		}, nil
	})
}
