// Package tools implements the MCP tool handlers.
//
// Each tool is a struct that receives its dependencies through the
// constructor and exposes two methods:
//   - Definition returns the mcp.Tool schema
//   - Handle processes a CallToolRequest
//
// Invalid input is reported as a tool error result, never as a Go error,
// so the client sees the message and the session stays alive.
package tools

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// boolArg extracts a boolean argument from a tool request.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

// requiredString returns a trimmed string argument and whether it was set.
func requiredString(req mcp.CallToolRequest, key string) (string, bool) {
	s := strings.TrimSpace(req.GetString(key, ""))
	return s, s != ""
}

// industryOption is the shared industry parameter.
func industryOption() mcp.ToolOption {
	return mcp.WithString("industry",
		mcp.Description("Industry overlay: generic (default), hcm or finance. Unknown values fall back to generic."),
	)
}
