package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Bipul-Dubey/placement-dashboard/shared/constants"
	"github.com/Bipul-Dubey/placement-dashboard/shared/models"
	"github.com/Bipul-Dubey/placement-dashboard/shared/placement"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(s *server.MCPServer, artifacts *placement.Artifacts) {
	s.AddTool(predictTool(), predictHandler(placement.NewPredictor(artifacts)))
	s.AddTool(categoriesTool(), categoriesHandler(artifacts))
}

func predictTool() mcp.Tool {
	tool := mcp.NewTool("predict_placement",
		mcp.WithDescription("Predict whether a student is likely to be placed and list improvement suggestions"),
	)
	tool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"cgpa":           map[string]interface{}{"type": "number", "description": "CGPA from 0 to 10"},
			"branch":         map[string]interface{}{"type": "string", "enum": constants.BranchNames()},
			"major_projects": map[string]interface{}{"type": "integer", "description": "Major projects completed (0-5)"},
			"mini_projects":  map[string]interface{}{"type": "integer", "description": "Mini projects completed (0-10)"},
			"communication":  map[string]interface{}{"type": "integer", "description": "Communication skill rating (1-10)"},
			"internship":     map[string]interface{}{"type": "string", "enum": constants.InternshipNames()},
		},
		Required: []string{"cgpa", "branch", "major_projects", "mini_projects", "communication", "internship"},
	}
	return tool
}

func categoriesTool() mcp.Tool {
	return mcp.NewTool("list_categories",
		mcp.WithDescription("List accepted branch and internship values and which ones the loaded encoders know"),
	)
}

func predictHandler(predictor *placement.Predictor) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		record, err := recordFromArgs(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result, features, err := predictor.Predict(record)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Prediction failed: %v", err)), nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Prediction: %s\n%s\n", result.DisplayLabel(), result.Banner())
		b.WriteString("Suggestions:\n")
		for _, msg := range placement.Messages(placement.Suggest(record)) {
			fmt.Fprintf(&b, "- %s\n", msg)
		}
		if features.UsedFallback() {
			fmt.Fprintf(&b, "Note: unknown %s encoded as %d\n", strings.Join(features.Fallbacks, ", "), placement.FallbackCode)
		}
		return mcp.NewToolResultText(b.String()), nil
	}
}

func categoriesHandler(artifacts *placement.Artifacts) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text := fmt.Sprintf("Branches: %s\nInternship: %s\nEncoder branches: %s\nEncoder internship: %s",
			strings.Join(constants.BranchNames(), ", "),
			strings.Join(constants.InternshipNames(), ", "),
			strings.Join(artifacts.BranchEncoder().Classes(), ", "),
			strings.Join(artifacts.InternEncoder().Classes(), ", "),
		)
		return mcp.NewToolResultText(text), nil
	}
}

var errMissingArgs = errors.New("missing required fields")

func recordFromArgs(args map[string]interface{}) (models.StudentRecord, error) {
	var rec models.StudentRecord

	cgpa, ok := args["cgpa"].(float64)
	if !ok {
		return rec, fmt.Errorf("%w: cgpa", errMissingArgs)
	}
	rec.CGPA = cgpa

	rec.Branch, _ = args["branch"].(string)
	rec.Internship, _ = args["internship"].(string)
	if rec.Branch == "" || rec.Internship == "" {
		return rec, fmt.Errorf("%w: branch, internship", errMissingArgs)
	}

	var err error
	if rec.MajorProjects, err = intArg(args, "major_projects"); err != nil {
		return rec, err
	}
	if rec.MiniProjects, err = intArg(args, "mini_projects"); err != nil {
		return rec, err
	}
	if rec.Communication, err = intArg(args, "communication"); err != nil {
		return rec, err
	}
	return rec, nil
}

// intArg reads a JSON number that must be a whole number.
func intArg(args map[string]interface{}, key string) (int, error) {
	v, ok := args[key].(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %s", errMissingArgs, key)
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%s must be a whole number, got %v", key, v)
	}
	return int(v), nil
}
