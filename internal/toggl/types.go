package toggl

import "time"

// User is the account the API key belongs to.
type User struct {
	ID       int64  `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

type Workspace struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// detailsPage is one page of the Reports API details endpoint.
type detailsPage struct {
	TotalCount int         `json:"total_count"`
	PerPage    int         `json:"per_page"`
	Data       []TimeEntry `json:"data"`
}

// TimeEntry is a detailed report row. Every field except the id may be
// missing.
type TimeEntry struct {
	ID          int64      `json:"id"`
	Description *string    `json:"description"`
	Client      *string    `json:"client"`
	Project     *string    `json:"project"`
	Start       *time.Time `json:"start"`
	End         *time.Time `json:"end"`
	Billable    *float64   `json:"billable"`
}
