package fiber

type StatsResponse struct {
	UserID          int64  `json:"user_id"`
	Window          string `json:"window"`
	TotalSessions   int    `json:"total_sessions"`
	AverageDuration string `json:"average_duration" example:"30 min"`
	MaxDuration     string `json:"max_duration" example:"45 min"`
	TotalDuration   string `json:"total_duration" example:"01:15:00"`
}

type NormalFitResponse struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

type LogNormalFitResponse struct {
	Shape    float64 `json:"shape"`
	Location float64 `json:"location"`
	Scale    float64 `json:"scale"`
	Mean     float64 `json:"mean"`
	Std      float64 `json:"std"`
	Mode     float64 `json:"mode"`
}

type DistributionResponse struct {
	UserID     int64                 `json:"user_id"`
	SampleSize int                   `json:"sample_size"`
	Sample     []float64             `json:"sample"`
	Defined    bool                  `json:"defined"`
	Normal     *NormalFitResponse    `json:"normal,omitempty"`
	LogNormal  *LogNormalFitResponse `json:"lognormal,omitempty"`
}

type DailyTotalResponse struct {
	Date         string  `json:"date" example:"2024-01-15"`
	TotalMinutes float64 `json:"total_minutes"`
}

type SessionSpanResponse struct {
	Start string `json:"start" example:"09:30:00"`
	End   string `json:"end" example:"10:15:00"`
}

type DayTimelineResponse struct {
	Date     string                `json:"date" example:"2024-01-15"`
	Sessions []SessionSpanResponse `json:"sessions"`
}

type ActivityResponse struct {
	UserID      int64                 `json:"user_id"`
	Days        int                   `json:"days"`
	From        string                `json:"from"`
	To          string                `json:"to"`
	DailyTotals []DailyTotalResponse  `json:"daily_totals"`
	Timelines   []DayTimelineResponse `json:"timelines"`
}

type LookupResponse struct {
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message,omitempty" example:"user_id is required"`
}
