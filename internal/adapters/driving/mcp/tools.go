package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scribe-labs/scribe-cli/internal/core/ports/driving"
)

// RetrieveInput is the input schema for the retrieve_context tool.
type RetrieveInput struct {
	Query string `json:"query" jsonschema:"the query to retrieve relevant indexed content for"`
	TopK  int    `json:"top_k,omitempty" jsonschema:"number of chunks to retrieve (default 3)"`
}

// RetrieveOutput is the output schema for the retrieve_context tool.
type RetrieveOutput struct {
	Content string `json:"content"`
	State   string `json:"store_state"`
}

// GenerateInput is the input schema for the generate_article tool.
type GenerateInput struct {
	Topic       string  `json:"topic" jsonschema:"the topic to write an article about"`
	Temperature float64 `json:"temperature,omitempty" jsonschema:"sampling temperature override (0 uses the configured default)"`
	Save        bool    `json:"save,omitempty" jsonschema:"persist the article to the output directory"`
}

// GenerateOutput is the output schema for the generate_article tool.
type GenerateOutput struct {
	Topic           string `json:"topic"`
	RelevantKeyword string `json:"relevant_keyword"`
	Content         string `json:"content"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "retrieve_context",
		Description: "Retrieve indexed content relevant to a query",
	}, s.handleRetrieve)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_article",
		Description: "Run the full pipeline and generate an article for a topic",
	}, s.handleGenerate)
}

// handleRetrieve handles the retrieve_context tool invocation.
func (s *Server) handleRetrieve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RetrieveInput,
) (*mcp.CallToolResult, RetrieveOutput, error) {
	content, err := s.ports.Retrieval.RetrieveRelevantContent(ctx, input.Query, input.TopK)
	if err != nil {
		return nil, RetrieveOutput{}, err
	}

	return nil, RetrieveOutput{
		Content: content,
		State:   s.ports.Retrieval.State().String(),
	}, nil
}

// handleGenerate handles the generate_article tool invocation.
func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, GenerateOutput, error) {
	if s.ports.Generator == nil {
		return nil, GenerateOutput{}, errors.New("article generator not configured")
	}

	article, err := s.ports.Generator.Generate(ctx, driving.GenerateRequest{
		Topic:       input.Topic,
		Temperature: input.Temperature,
		Save:        input.Save,
	})
	if err != nil {
		return nil, GenerateOutput{}, err
	}

	return nil, GenerateOutput{
		Topic:           article.Topic,
		RelevantKeyword: article.RelevantKeyword,
		Content:         article.Content,
	}, nil
}
