package goderiv

import (
	"encoding/json"
	"sort"

	"github.com/pkg/errors"
)

// ToolRequest is a single named operation on an expression tree, with
// parameters as decoded JSON. The expression itself travels in the "expr"
// parameter using the ToJSON encoding.
type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

// ToolResponse carries the outcome of a tool call. Error is empty on
// success.
type ToolResponse struct {
	Text   string      `json:"text,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	Expr   interface{} `json:"expr,omitempty"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// HandleToolCall dispatches a tool request against the kernel. Supported
// tools: diff, render, latex, vars.
func HandleToolCall(req ToolRequest) ToolResponse {
	expr, err := paramExpr(req.Params, "expr")
	if err != nil {
		return ToolResponse{Error: err.Error()}
	}
	switch req.Tool {
	case "diff":
		varName, _ := req.Params["var"].(string)
		if varName == "" {
			return ToolResponse{Error: "diff needs a 'var' parameter"}
		}
		d, err := Diff(expr, varName)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{Text: String(d), LaTeX: LaTeX(d), Expr: toMap(d)}
	case "render":
		return ToolResponse{Text: String(expr)}
	case "latex":
		return ToolResponse{LaTeX: LaTeX(expr)}
	case "vars":
		set := FreeVariables(expr)
		names := make([]string, 0, len(set))
		for name := range set {
			names = append(names, name)
		}
		sort.Strings(names)
		return ToolResponse{Result: names}
	}
	return ToolResponse{Error: "unknown tool: " + req.Tool}
}

func paramExpr(params map[string]interface{}, key string) (Expr, error) {
	m, ok := params[key].(map[string]interface{})
	if !ok {
		return nil, errors.Errorf("missing %q parameter", key)
	}
	return fromMap(m)
}

// ToolSpec returns a JSON description of the available tools, suitable for
// a schema endpoint.
func ToolSpec() string {
	spec := map[string]interface{}{
		"tools": []map[string]interface{}{
			{
				"name":        "diff",
				"description": "Differentiate an expression with respect to a variable",
				"params":      []string{"expr", "var"},
			},
			{
				"name":        "render",
				"description": "Render an expression as fully parenthesized text",
				"params":      []string{"expr"},
			},
			{
				"name":        "latex",
				"description": "Render an expression as LaTeX",
				"params":      []string{"expr"},
			},
			{
				"name":        "vars",
				"description": "List the variables occurring in an expression",
				"params":      []string{"expr"},
			},
		},
	}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}
