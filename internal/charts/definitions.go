// Package charts builds the chart widgets shown on the dashboard and reports
// pages. Every dataset is a literal; nothing here is measured.
package charts

type Kind string

const (
	KindLine     Kind = "line"
	KindBar      Kind = "bar"
	KindDoughnut Kind = "doughnut"
	KindRadar    Kind = "radar"
	KindPie      Kind = "pie"
)

// Definition is one chart: labels paired with values, plus optional colors.
// A single color applies to the whole series; several colors map to labels.
type Definition struct {
	ID         string
	Title      string
	Kind       Kind
	SeriesName string
	Labels     []string
	Values     []float64
	Colors     []string
	ShowLegend bool
}

var dashboardCharts = []Definition{
	{
		ID:         "daily-users",
		Title:      "Daily Active Users",
		Kind:       KindLine,
		SeriesName: "Users",
		Labels:     []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Values:     []float64{120, 90, 130, 180, 160, 190, 200},
		Colors:     []string{"#6366f1"},
	},
	{
		ID:     "role-distribution",
		Title:  "Role Distribution",
		Kind:   KindBar,
		Labels: []string{"Admin", "Manager", "User"},
		Values: []float64{4, 12, 84},
		Colors: []string{"#ef4444", "#3b82f6", "#10b981"},
	},
	{
		ID:         "feedback-ratings",
		Title:      "Feedback Ratings",
		Kind:       KindDoughnut,
		Labels:     []string{"Positive", "Neutral", "Negative"},
		Values:     []float64{65, 20, 15},
		Colors:     []string{"#34d399", "#fbbf24", "#f87171"},
		ShowLegend: true,
	},
	{
		ID:         "system-health",
		Title:      "System Health",
		Kind:       KindRadar,
		SeriesName: "System Health",
		Labels:     []string{"CPU", "Memory", "Disk", "Network", "Uptime"},
		Values:     []float64{80, 70, 75, 65, 90},
		Colors:     []string{"#3b82f6"},
		ShowLegend: true,
	},
}

var reportCharts = []Definition{
	{
		ID:     "sales-by-day",
		Title:  "Bar Chart - Sales by Day",
		Kind:   KindBar,
		Labels: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		Values: []float64{300, 400, 200, 500, 450},
		Colors: []string{"#6366f1"},
	},
	{
		ID:         "user-signups",
		Title:      "Line Chart - User Signups",
		Kind:       KindLine,
		SeriesName: "Signups",
		Labels:     []string{"Jan", "Feb", "Mar", "Apr"},
		Values:     []float64{30, 50, 40, 60},
		Colors:     []string{"#10b981"},
		ShowLegend: true,
	},
	{
		ID:         "inquiry-types",
		Title:      "Pie Chart - Inquiry Types",
		Kind:       KindPie,
		Labels:     []string{"Email", "Chat", "Call"},
		Values:     []float64{40, 30, 30},
		Colors:     []string{"#fbbf24", "#3b82f6", "#ef4444"},
		ShowLegend: true,
	},
}

// ForPage returns the charts drawn on a page, or nil for pages without any.
func ForPage(page string) []Definition {
	switch page {
	case "dashboard":
		return clone(dashboardCharts)
	case "reports":
		return clone(reportCharts)
	default:
		return nil
	}
}

func clone(defs []Definition) []Definition {
	out := make([]Definition, len(defs))
	for i, d := range defs {
		d.Labels = append([]string(nil), d.Labels...)
		d.Values = append([]float64(nil), d.Values...)
		d.Colors = append([]string(nil), d.Colors...)
		out[i] = d
	}
	return out
}

func (d Definition) colorAt(i int) string {
	switch {
	case len(d.Colors) == 0:
		return ""
	case len(d.Colors) == 1:
		return d.Colors[0]
	case i < len(d.Colors):
		return d.Colors[i]
	default:
		return ""
	}
}
