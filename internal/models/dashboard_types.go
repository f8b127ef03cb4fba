package models

// DashboardStats is the admin landing page payload.
type DashboardStats struct {
	TotalProducts     int `json:"totalProducts"`
	TotalCategories   int `json:"totalCategories"`
	UnreadMessages    int `json:"unreadMessages"`
	ActiveJobs        int `json:"activeJobs"`
	TotalApplications int `json:"totalApplications"`
	PublishedArticles int `json:"publishedArticles"`

	RecentProducts []ProductSummary `json:"recentProducts"`
	RecentMessages []MessageSummary `json:"recentMessages"`
}
