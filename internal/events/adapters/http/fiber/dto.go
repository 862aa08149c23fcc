package fiber

type StartSessionRequest struct {
	UserID   int64  `json:"user_id" example:"42"`
	Username string `json:"username" example:"alice"`
}

type StartSessionResponse struct {
	EventID   string `json:"event_id"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username,omitempty"`
	StartedAt string `json:"started_at"`
}

type EndSessionRequest struct {
	UserID   int64  `json:"user_id" example:"42"`
	Username string `json:"username" example:"alice"`
}

type WindowSummary struct {
	TotalSessions   int    `json:"total_sessions"`
	AverageDuration string `json:"average_duration" example:"30 min"`
	MaxDuration     string `json:"max_duration" example:"45 min"`
	TotalDuration   string `json:"total_duration" example:"01:15:00"`
}

type EndSessionResponse struct {
	UserID        int64         `json:"user_id"`
	Username      string        `json:"username,omitempty"`
	StartedAt     string        `json:"started_at"`
	EndedAt       string        `json:"ended_at"`
	Duration      string        `json:"duration" example:"00:30:00"`
	TodaySessions int           `json:"today_sessions"`
	Month         WindowSummary `json:"month"`
	Year          WindowSummary `json:"year"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"no_open_session"`
	Message string `json:"message,omitempty" example:"no open session for user"`
}
