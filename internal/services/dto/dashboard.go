package dto

// Candidate dashboard. Pending merges the pending and reviewing buckets.
type CandidateDashboardStats struct {
	TotalApplications       int64 `json:"totalApplications"`
	PendingApplications     int64 `json:"pendingApplications"`
	ShortlistedApplications int64 `json:"shortlistedApplications"`
	RejectedApplications    int64 `json:"rejectedApplications"`
	HiredApplications       int64 `json:"hiredApplications"`
	UpcomingInterviews      int64 `json:"upcomingInterviews"`
	SavedJobs               int64 `json:"savedJobs"`
	Coins                   int   `json:"coins"`
	Score                   int   `json:"score"`
}

type RecruiterDashboardStats struct {
	TotalJobs               int64 `json:"totalJobs"`
	ActiveJobs              int64 `json:"activeJobs"`
	TotalApplications       int64 `json:"totalApplications"`
	PendingApplications     int64 `json:"pendingApplications"`
	ShortlistedApplications int64 `json:"shortlistedApplications"`
	HiredApplications       int64 `json:"hiredApplications"`
	TotalCandidates         int64 `json:"totalCandidates"`
	UpcomingInterviews      int64 `json:"upcomingInterviews"`
}

type CounselorDashboardStats struct {
	TotalStudents     int64 `json:"totalStudents"`
	ActiveStudents    int64 `json:"activeStudents"`
	TotalSessions     int64 `json:"totalSessions"`
	ScheduledSessions int64 `json:"scheduledSessions"`
	TotalPlans        int64 `json:"totalPlans"`
	ActivePlans       int64 `json:"activePlans"`
	TotalResources    int64 `json:"totalResources"`
	FeaturedResources int64 `json:"featuredResources"`
}
