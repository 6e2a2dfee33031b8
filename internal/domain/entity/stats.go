package entity

// DashboardStats are the headline counters on the admin dashboard.
type DashboardStats struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalEvents     int64 `json:"totalEvents"`
	TotalCategories int64 `json:"totalCategories"`
	PendingEvents   int64 `json:"pendingEvents"`
	ApprovedEvents  int64 `json:"approvedEvents"`
}

// CategoryCount is one slice of the events-per-category chart.
type CategoryCount struct {
	Name  string `bson:"name" json:"name"`
	Value int64  `bson:"value" json:"value"`
}

// MonthCount is one bar of the events-per-month chart; Month is YYYY-MM.
type MonthCount struct {
	Month  string `bson:"month" json:"month"`
	Events int64  `bson:"events" json:"events"`
}
