package models

// ReportRow is one line of a payment report, ready for display or export.
type ReportRow struct {
	StudentName string  `json:"studentName"`
	StationName string  `json:"stationName"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	Amount      float64 `json:"amount"`
}

// StationSummary is the per-station collection aggregate shown on the
// admin dashboard.
type StationSummary struct {
	StationID       string  `json:"station_id"`
	StationName     string  `json:"station_name"`
	PaidCount       int     `json:"paid_count"`
	TotalStudents   int     `json:"total_students"`
	TotalCollection float64 `json:"total_collection"`
}

// DashboardStats holds the admin dashboard headline figures.
type DashboardStats struct {
	TotalStations    int              `json:"total_stations"`
	TotalStudents    int              `json:"total_students"`
	PaidToday        int              `json:"paid_today"`
	CollectionToday  float64          `json:"collection_today"`
	StationSummaries []StationSummary `json:"station_summaries"`
}
