package database

import (
	"time"

	"github.com/zapponejosh/ifc-calendar/internal/calendar"
)

// Selection is the date a user has selected. Both calendar views are
// rendered around it.
type Selection struct {
	UserID    string                 `json:"user_id"`
	Date      calendar.GregorianDate `json:"date"`
	Source    calendar.GridKind      `json:"source"` // calendar the date was picked in
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
