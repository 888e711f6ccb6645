// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes folio content tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jinunyachhyon/folio/internal/apperr"
	"github.com/jinunyachhyon/folio/internal/siteservice"
)

// ContentFormatURI addresses the post format resource.
const ContentFormatURI = "folio://content-format"

// Server wraps the MCP server with folio tools.
type Server struct {
	mcp *server.MCPServer
	svc *siteservice.Service
}

// New creates a new MCP server with all folio tools registered.
func New(svc *siteservice.Service, version string) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Folio",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_posts",
		mcp.WithDescription("List blog posts, newest first. Accepts the same filters as the blog page URL."),
		mcp.WithString("search", mcp.Description("Free-text search over title, excerpt, author and tags")),
		mcp.WithString("tags", mcp.Description("Comma-separated tags; a post matches if it has any of them")),
		mcp.WithString("year", mcp.Description("Publication year, e.g. 2024")),
		mcp.WithString("filter", mcp.Description("Post type: all, standalone or series")),
	), s.listPosts)

	s.mcp.AddTool(mcp.NewTool("read_post",
		mcp.WithDescription("Read the full Markdown body of a blog post."),
		mcp.WithString("slug", mcp.Required(), mcp.Description("Post slug (file name without extension)")),
	), s.readPost)

	s.mcp.AddTool(mcp.NewTool("get_headings",
		mcp.WithDescription("Return the table of contents of a blog post with anchor slugs."),
		mcp.WithString("slug", mcp.Required(), mcp.Description("Post slug")),
	), s.getHeadings)

	s.mcp.AddTool(mcp.NewTool("list_series",
		mcp.WithDescription("List every post series with its parts in order."),
	), s.listSeries)

	s.mcp.AddTool(mcp.NewTool("search_posts",
		mcp.WithDescription("Full-text search through post bodies, titles and tags."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results")),
	), s.searchPosts)

	s.mcp.AddTool(mcp.NewTool("search_publications",
		mcp.WithDescription("Search the publication catalog."),
		mcp.WithString("search", mcp.Description("Matches title, authors, abstract or venue")),
		mcp.WithString("tags", mcp.Description("Comma-separated tags; any may match")),
		mcp.WithString("type", mcp.Description("journal, conference or preprint")),
		mcp.WithString("year", mcp.Description("Publication year")),
	), s.searchPublications)

	s.mcp.AddTool(mcp.NewTool("search_experience",
		mcp.WithDescription("Search work experience entries."),
		mcp.WithString("search", mcp.Description("Matches role, company, description or skills")),
		mcp.WithString("skills", mcp.Description("Comma-separated skills; any may match")),
	), s.searchExperience)

	s.mcp.AddTool(mcp.NewTool("get_content_format",
		mcp.WithDescription("Returns the Markdown post format read from the content directory. "+
			"Call this before writing a post file."),
	), s.getContentFormat)

	s.mcp.AddResource(
		mcp.NewResource(ContentFormatURI, "Post Format",
			mcp.WithResourceDescription("Markdown post format with front matter fields and defaults."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readContentFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listPosts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	listing, err := s.svc.ListPosts(ctx, queryFrom(req, "search", "tags", "year", "filter"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(listing.Posts)
}

func (s *Server) readPost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := req.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	post, err := s.svc.GetPost(ctx, slug)
	if err != nil {
		return lookupError(slug, err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("# %s\n\n%s · %s · %s\n\n%s",
		post.Title, post.Author, post.DisplayDate, post.ReadingTime, post.Content)), nil
}

func (s *Server) getHeadings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := req.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	headings, err := s.svc.Headings(ctx, slug)
	if err != nil {
		return lookupError(slug, err), nil
	}
	return jsonResult(headings)
}

func (s *Server) listSeries(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	series, err := s.svc.ListSeries(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(series) == 0 {
		return mcp.NewToolResultText("no series found"), nil
	}
	return jsonResult(series)
}

func (s *Server) searchPosts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.svc.Search(ctx, query, req.GetInt("limit", 0))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(results)
}

func (s *Server) searchPublications(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	listing, err := s.svc.ListPublications(ctx, queryFrom(req, "search", "tags", "type", "year"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(listing.Publications)
}

func (s *Server) searchExperience(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	listing, err := s.svc.ListExperience(ctx, queryFrom(req, "search", "skills"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(listing.Experiences)
}

func (s *Server) getContentFormat(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(PostFormatContract), nil
}

func (s *Server) readContentFormatResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ContentFormatURI,
			MIMEType: "text/markdown",
			Text:     PostFormatContract,
		},
	}, nil
}

// queryFrom copies the named string arguments into URL query form so
// tools share the page filter semantics.
func queryFrom(req mcp.CallToolRequest, keys ...string) url.Values {
	q := url.Values{}
	for _, k := range keys {
		if v := req.GetString(k, ""); v != "" {
			q.Set(k, v)
		}
	}
	return q
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func lookupError(slug string, err error) *mcp.CallToolResult {
	if errors.Is(err, apperr.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", slug))
	}
	return mcp.NewToolResultError(err.Error())
}
