package domain

import (
	"fmt"
	"math"
	"time"
)

// NewVisitorGap is the minimum idle time between visits before a session
// counts as a new visitor.
const NewVisitorGap = 24 * time.Hour

// Analytics is the usage counter record. All fields persist as JSON
// numbers; SessionStart and LastVisit are Unix milliseconds. Every counter
// is monotonically non-decreasing for the lifetime of the record except the
// two timestamps, which are overwritten each session.
type Analytics struct {
	TotalVisitors  int   `json:"totalVisitors"`
	PageViews      int   `json:"pageViews"`
	SessionStart   int64 `json:"sessionStart"`
	LastVisit      int64 `json:"lastVisit"`
	TodosCreated   int   `json:"todosCreated"`
	TodosCompleted int   `json:"todosCompleted"`
	TodosDeleted   int   `json:"todosDeleted"`
	SessionsCount  int   `json:"sessionsCount"`
}

// NewAnalytics seeds a fresh record for a first-ever session.
func NewAnalytics(now time.Time) Analytics {
	ms := now.UnixMilli()
	return Analytics{
		TotalVisitors: 1,
		PageViews:     1,
		SessionStart:  ms,
		LastVisit:     ms,
		SessionsCount: 1,
	}
}

// SessionDuration returns the elapsed time of the current session.
// Negative durations are not guarded against.
func (a Analytics) SessionDuration(now time.Time) time.Duration {
	return time.Duration(now.UnixMilli()-a.SessionStart) * time.Millisecond
}

// AvgSessionDuration divides the current session's elapsed time by the
// session count. This reuses the single live delta rather than an
// accumulated history; the approximation is intentional and kept.
func (a Analytics) AvgSessionDuration(now time.Time) time.Duration {
	if a.SessionsCount == 0 {
		return 0
	}
	return a.SessionDuration(now) / time.Duration(a.SessionsCount)
}

// CompletionRate returns round(100*completed/created) as a percentage,
// or 0 when nothing has been created.
func (a Analytics) CompletionRate() int {
	if a.TodosCreated == 0 {
		return 0
	}
	return int(math.Round(float64(a.TodosCompleted) / float64(a.TodosCreated) * 100))
}

// AvgTasksPerSession returns created/sessions rounded to one decimal place,
// or 0 when no sessions have been counted.
func (a Analytics) AvgTasksPerSession() float64 {
	if a.SessionsCount == 0 {
		return 0
	}
	return math.Round(float64(a.TodosCreated)/float64(a.SessionsCount)*10) / 10
}

// FormatDuration renders a duration as "{minutes}m {seconds}s" with floor
// division, e.g. 95s -> "1m 35s".
func FormatDuration(d time.Duration) string {
	totalSec := int64(d / time.Second)
	return fmt.Sprintf("%dm %ds", totalSec/60, totalSec%60)
}
