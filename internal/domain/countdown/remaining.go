package countdown

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	secondsPerDay    = 86400
	secondsPerHour   = 3600
	secondsPerMinute = 60

	// UrgentWithin is how close a deadline must be before it is flagged.
	UrgentWithin = 24 * time.Hour
)

var ErrInvalidDeadline = errors.New("deadline must be an ISO-8601 timestamp")

type Purpose string

const (
	PurposePurchaseVerification Purpose = "purchase_verification"
	PurposeMeetup               Purpose = "meetup"
)

func (p Purpose) String() string {
	return string(p)
}

func (p Purpose) IsValid() bool {
	switch p {
	case PurposePurchaseVerification, PurposeMeetup:
		return true
	default:
		return false
	}
}

// Remaining is one tick's view of a deadline.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int64
	Expired bool
}

// Decompose truncates max(0, deadline-now) to whole seconds and splits it
// into days, hours and minutes.
func Decompose(deadline, now time.Time) Remaining {
	total := int64(deadline.Sub(now) / time.Second)
	if total <= 0 {
		return Remaining{Expired: true}
	}

	return Remaining{
		Days:    int(total / secondsPerDay),
		Hours:   int(total % secondsPerDay / secondsPerHour),
		Minutes: int(total % secondsPerHour / secondsPerMinute),
		Seconds: total,
	}
}

func (r Remaining) Duration() time.Duration {
	return time.Duration(r.Seconds) * time.Second
}

// Urgent is true while the deadline is still ahead but less than a day away.
func (r Remaining) Urgent() bool {
	return !r.Expired && r.Duration() < UrgentWithin
}

// DaysLeft rounds partial days up, so anything still pending shows at least
// one day.
func (r Remaining) DaysLeft() int {
	if r.Expired {
		return 0
	}
	return int((r.Seconds + secondsPerDay - 1) / secondsPerDay)
}

// Display renders the two most significant units: "2d 3h", "3h 15m" or
// "15m".
func (r Remaining) Display() string {
	switch {
	case r.Days > 0:
		return fmt.Sprintf("%dd %dh", r.Days, r.Hours)
	case r.Hours > 0:
		return fmt.Sprintf("%dh %dm", r.Hours, r.Minutes)
	default:
		return fmt.Sprintf("%dm", r.Minutes)
	}
}

// ParseDeadline accepts RFC 3339 timestamps with or without fractional
// seconds and returns them in UTC.
func ParseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDeadline
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, ErrInvalidDeadline
	}
	return t.UTC(), nil
}
