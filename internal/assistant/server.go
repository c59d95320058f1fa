package assistant

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds the read-only fittrack MCP server. The backend mounts it at /mcp
// and cmd/fittrack_mcp serves it over stdio.
func NewServer(service contextService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fittrack-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_fittrack_schema",
		Description: "Returns the DB schema of the fittrack tables (food, meal_of_day, diet, diet_target, progress, profile, workout_set, saved_meal, saved_meal_food): columns, types, nullable, default.",
	}, h.SchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_diet_day",
		Description: "Returns the diet of a user for one day: every meal slot with its foods and nutrient totals, the day total, macro percentages and per-kg ratios. Args: username, optional date (YYYY-MM-DD).",
	}, h.DietDayTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_diet_week_total",
		Description: "Returns the summed nutrients of the ISO week (Monday to Sunday) containing the date, with percentages and per-kg ratios recomputed from the sums. Args: username, optional date.",
	}, h.DietWeekTotalTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_body_metrics",
		Description: "Returns age, BMI, BMR, TDEE and the goal calorie target of a user as of a date, using the latest known body weight. Args: username, optional date.",
	}, h.BodyMetricsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_aggregate",
		Description: "Returns the set and rep counts of a user for a day and its ISO week, with per-movement totals for the day. Args: username, optional date.",
	}, h.TrainingAggregateTool())

	return s
}
