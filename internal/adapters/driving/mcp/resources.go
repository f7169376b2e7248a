package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Scribe resources.
	uriScheme = "scribe://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "articles",
		Name:        "articles",
		Description: "Metadata for all previously generated articles",
		MIMEType:    "application/json",
	}, s.handleArticlesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "status",
		Name:        "status",
		Description: "Retrieval store lifecycle state",
		MIMEType:    "application/json",
	}, s.handleStatusResource)
}

// handleArticlesResource returns metadata for all generated articles.
func (s *Server) handleArticlesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Articles == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	articles, err := s.ports.Articles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}

	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling articles: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleStatusResource reports the retrieval store state.
func (s *Server) handleStatusResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	status := struct {
		State string `json:"state"`
	}{State: s.ports.Retrieval.State().String()}

	data, err := json.Marshal(status)
	if err != nil {
		return nil, fmt.Errorf("marshalling status: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
