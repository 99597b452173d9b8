package entities

// Effort is the coarse unit a quick win's work is expressed in.

type Effort string

const (
	EffortHours Effort = "hours"
	EffortDays  Effort = "days"
	EffortWeeks Effort = "weeks"
)

// Role is the specialist required to execute a quick win.

type Role string

const (
	RoleDeveloper  Role = "developer"
	RoleMarketer   Role = "marketer"
	RoleSEO        Role = "seo"
	RoleDesigner   Role = "designer"
	RoleCopywriter Role = "copywriter"
)

// CostRange is an estimated cost interval in euro.
type CostRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// QuickWin is a single costed, prioritized recommendation derived from one
// detected issue.
//
// Priority is Impact / EffortHours, computed when the quick win is emitted.
// ID reflects emission order and carries no meaning; ordering is driven
// solely by Priority.
type QuickWin struct {
	ID                  int       `json:"id"`
	Key                 IssueKey  `json:"key"`
	Gap                 string    `json:"gap"`
	Category            Category  `json:"category"`
	Effort              Effort    `json:"effort"`
	EffortHours         float64   `json:"effortHours"`
	Impact              float64   `json:"impact"`
	ImpactDescription   string    `json:"impactDescription"`
	RequiredRole        Role      `json:"requiredRole"`
	EstimatedCost       CostRange `json:"estimatedCost"`
	Priority            float64   `json:"priority"`
	ActionItems         []string  `json:"actionItems"`
	CompetitorReference string    `json:"competitorReference,omitempty"`
}

// CategorySummary aggregates the quick wins of one category.
type CategorySummary struct {
	Category    Category `json:"category"`
	Count       int      `json:"count"`
	TotalImpact float64  `json:"totalImpact"`
	AvgEffort   string   `json:"avgEffort"`
}

// QuickWinsAnalysis is the full quick-win report for a lead. QuickWins is
// sorted by priority descending; TopQuickWins holds the first five.
type QuickWinsAnalysis struct {
	LeadID                    string            `json:"leadId"`
	LeadScore                 float64           `json:"leadScore"`
	QuickWins                 []QuickWin        `json:"quickWins"`
	TopQuickWins              []QuickWin        `json:"topQuickWins"`
	TotalPotentialImprovement float64           `json:"totalPotentialImprovement"`
	EstimatedTotalCost        CostRange         `json:"estimatedTotalCost"`
	EstimatedTotalEffort      string            `json:"estimatedTotalEffort"`
	Categories                []CategorySummary `json:"categories"`
}
