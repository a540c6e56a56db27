package domain

// NavItem is a navigation entry visible to the current role.
type NavItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// StatCard is a single headline metric, already period-scaled and, for money
// values, currency-formatted.
type StatCard struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// ListPanel is a titled list of rows (recent clients, upcoming events, ...).
type ListPanel struct {
	Key   string     `json:"key"`
	Title string     `json:"title"`
	Rows  []PanelRow `json:"rows"`
}

// PanelRow is one line inside a ListPanel.
type PanelRow struct {
	ID        string `json:"id"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
	Badge     string `json:"badge,omitempty"`
}

// QuickAction is a shortcut button on the dashboard.
type QuickAction struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Job   string `json:"job,omitempty"`
}

// DashboardView is the fully composed dashboard document for one role.
type DashboardView struct {
	Role         Role          `json:"role"`
	Period       Period        `json:"period"`
	Navigation   []NavItem     `json:"navigation"`
	Stats        []StatCard    `json:"stats"`
	Panels       []ListPanel   `json:"panels"`
	QuickActions []QuickAction `json:"quick_actions"`
}
