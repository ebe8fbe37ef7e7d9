package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchDocsTool defines the search_docs MCP tool.
var searchDocsTool = mcp.NewTool("search_docs",
	mcp.WithDescription("Search the documentation site by case-insensitive substring over page titles and content. Returns matching pages in site order."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Text to look for, at least 2 characters"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 5, at most 20)"),
	),
	mcp.WithString("page",
		mcp.Description("Path of the page the search runs from; decides whether links carry the site's base path"),
	),
)

// getPageTool defines the get_page MCP tool.
var getPageTool = mcp.NewTool("get_page",
	mcp.WithDescription("Get the indexed title, excerpt and text of a documentation page."),
	mcp.WithString("url",
		mcp.Required(),
		mcp.Description("Page URL as returned by search_docs"),
	),
)

// indexStatusTool defines the index_status MCP tool.
var indexStatusTool = mcp.NewTool("index_status",
	mcp.WithDescription("Report whether the search index is loaded and how many pages it holds."),
)
