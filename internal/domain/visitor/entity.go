// internal/domain/visitor/entity.go
package visitor

import (
	"time"
)

// Visit is one recorded storefront page view or search. Visits are a
// best-effort telemetry signal, not an audit trail.
type Visit struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	VisitorID  string    `gorm:"size:64;index" json:"visitor_id"` // Client-side fingerprint hash
	Path       string    `gorm:"size:500" json:"path"`
	SearchTerm string    `gorm:"size:255" json:"search_term,omitempty"`
	Referrer   string    `gorm:"size:500" json:"referrer,omitempty"`
	UserAgent  string    `gorm:"size:500" json:"user_agent,omitempty"`
	ClientIP   string    `gorm:"size:45" json:"client_ip,omitempty"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// TableName overrides
func (Visit) TableName() string { return "visits" }

// Summary aggregates visit activity for the admin dashboard
type Summary struct {
	TotalVisits    int64    `json:"total_visits"`
	VisitsToday    int64    `json:"visits_today"`
	UniquesToday   int64    `json:"uniques_today"`
	TopSearchTerms []string `json:"top_search_terms"`
}
