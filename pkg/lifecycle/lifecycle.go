// Package lifecycle holds the pure rules of the task lifecycle: identifier
// generation, lenient date parsing, and the derived day-count and
// delivery-status fields stored on task rows.
package lifecycle

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// DateLayout is how dates are written into the sheet.
const DateLayout = "2006-01-02"

// taskIDDateLayout is the compact date block inside a task identifier.
const taskIDDateLayout = "20060102"

// dateLayouts are tried in order when reading dates typed into the sheet.
// ISO first, then day/month/year before month/day/year.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
}

// Delivery-status labels stored on closed tasks.
const (
	DeliveryOnTime         = "On Time"
	DeliveryLateSubmission = "Late Submission"
	DeliveryLateDelivery   = "Late Delivery"
)

// ParseDate parses a free-text date. It reports ok=false rather than an
// error: an unparseable date means the derived fields stay empty, it is
// never a request failure.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysBetween returns the calendar-day difference to minus from, ignoring
// clock time. Negative when to is before from.
func DaysBetween(from, to time.Time) int {
	return int(midnight(to).Sub(midnight(from)).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysRequired returns the day count from today until the TAT date as a
// string, or "" when the TAT does not parse. The count may be negative when
// the target is already in the past.
func DaysRequired(today time.Time, tat string) string {
	target, ok := ParseDate(tat)
	if !ok {
		return ""
	}
	return strconv.Itoa(DaysBetween(today, target))
}

// ClassifyDelivery labels a closed task by how late it finished relative to
// its TAT date. Exactly one day late is its own category.
func ClassifyDelivery(tat, completion time.Time) string {
	daysLate := DaysBetween(tat, completion)
	switch {
	case daysLate <= 0:
		return DeliveryOnTime
	case daysLate == 1:
		return DeliveryLateSubmission
	default:
		return DeliveryLateDelivery
	}
}

// NewTaskID builds an identifier of the form CLIENTCODE_RANDOM5-Worker-YYYYMMDD,
// e.g. ASHRA_75076-AbhishekKumar-20260223. Uniqueness is probabilistic: the
// five-digit block is random and no check is made against existing rows.
func NewTaskID(clientID, workerName string, today time.Time) string {
	code := strings.ReplaceAll(clientID, " ", "")
	if len(code) > 5 {
		code = code[:5]
	}
	code = strings.ToUpper(code)
	worker := strings.ReplaceAll(strings.TrimSpace(workerName), " ", "")
	num := rand.Intn(90000) + 10000
	return fmt.Sprintf("%s_%d-%s-%s", code, num, worker, today.Format(taskIDDateLayout))
}
