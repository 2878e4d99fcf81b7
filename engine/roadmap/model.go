package roadmap

// Focus is a thematic category for a day's micro-habit plan.
type Focus string

const (
	FocusMotivation    Focus = "motivation"
	FocusBoundaries    Focus = "boundaries"
	FocusEmpathy       Focus = "empathy"
	FocusVisualization Focus = "visualization"
	FocusRoutine       Focus = "routine"
)

// DayPlan is one entry of the 7-day plan. Days are identified only by their
// position in Result.Days.
type DayPlan struct {
	Title       string `json:"title"`
	MicroAction string `json:"micro_action"`
	Reflection  string `json:"reflection"`
}

// Meta describes the resolved inputs and the focus theme for a plan.
type Meta struct {
	Focus    Focus   `json:"focus"`
	Theme    string  `json:"theme"`
	Why      string  `json:"why"`
	Minutes  float64 `json:"minutes"`
	Energy   string  `json:"energy"`
	ClientID string  `json:"client_id,omitempty"`
}

// Result is a fully derived roadmap; it has no persisted identity.
type Result struct {
	Meta             Meta      `json:"meta"`
	Days             []DayPlan `json:"days"`
	BadgeHint        *string   `json:"badge_hint"`
	CoachingReminder string    `json:"coaching_reminder"`
}
