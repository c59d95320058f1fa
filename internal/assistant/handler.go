package assistant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/2beens/fittrack/internal/nutrition"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler turns tool calls into service calls and formats the results as MCP content.
type Handler struct {
	service contextService
	now     func() time.Time
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
		now:     time.Now,
	}
}

// UserDateInput is the input of every per-user tool.
type UserDateInput struct {
	Username string `json:"username" jsonschema:"Username whose logs to read"`
	Date     string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

func (in UserDateInput) date(now time.Time) (time.Time, error) {
	if in.Date == "" {
		return nutrition.DateOf(now), nil
	}
	return nutrition.ParseDate(in.Date)
}

func (h *Handler) SchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

func (h *Handler) DietDayTool() func(context.Context, *mcp.CallToolRequest, UserDateInput) (*mcp.CallToolResult, any, error) {
	return userDateTool(h, func(ctx context.Context, username string, date time.Time) (any, error) {
		return h.service.DietDay(ctx, username, date)
	}, "Error fetching diet day: ")
}

func (h *Handler) DietWeekTotalTool() func(context.Context, *mcp.CallToolRequest, UserDateInput) (*mcp.CallToolResult, any, error) {
	return userDateTool(h, func(ctx context.Context, username string, date time.Time) (any, error) {
		return h.service.DietWeekTotal(ctx, username, date)
	}, "Error fetching diet week total: ")
}

func (h *Handler) BodyMetricsTool() func(context.Context, *mcp.CallToolRequest, UserDateInput) (*mcp.CallToolResult, any, error) {
	return userDateTool(h, func(ctx context.Context, username string, date time.Time) (any, error) {
		return h.service.BodyMetrics(ctx, username, date)
	}, "Error computing body metrics: ")
}

func (h *Handler) TrainingAggregateTool() func(context.Context, *mcp.CallToolRequest, UserDateInput) (*mcp.CallToolResult, any, error) {
	return userDateTool(h, func(ctx context.Context, username string, date time.Time) (any, error) {
		return h.service.TrainingAggregate(ctx, username, date)
	}, "Error fetching training aggregate: ")
}

func userDateTool(
	h *Handler,
	fetch func(ctx context.Context, username string, date time.Time) (any, error),
	errPrefix string,
) func(context.Context, *mcp.CallToolRequest, UserDateInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserDateInput) (*mcp.CallToolResult, any, error) {
		if in.Username == "" {
			return errorResult("username is required"), nil, nil
		}
		date, err := in.date(h.now())
		if err != nil {
			return errorResult("Invalid date: use YYYY-MM-DD"), nil, nil
		}

		v, err := fetch(ctx, in.Username, date)
		if err != nil {
			return errorResult(errPrefix + err.Error()), nil, nil
		}
		return jsonResult(v), nil, nil
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
