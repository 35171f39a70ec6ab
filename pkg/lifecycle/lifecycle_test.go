package lifecycle

import (
	"regexp"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDateFormats(t *testing.T) {
	want := date(2024, time.March, 5)
	for _, input := range []string{"2024-03-05", "05/03/2024", "05-03-2024", " 2024-03-05 "} {
		got, ok := ParseDate(input)
		if !ok {
			t.Errorf("ParseDate(%q) failed, want %v", input, want)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseDateFormatPriority(t *testing.T) {
	// Day/month/year wins over month/day/year when both would match.
	got, ok := ParseDate("03/05/2024")
	if !ok {
		t.Fatal("ParseDate(03/05/2024) failed")
	}
	if want := date(2024, time.May, 3); !got.Equal(want) {
		t.Errorf("ParseDate(03/05/2024) = %v, want %v", got, want)
	}

	// Month/day/year is still reached when the day slot is not a valid month.
	got, ok = ParseDate("05/13/2024")
	if !ok {
		t.Fatal("ParseDate(05/13/2024) failed")
	}
	if want := date(2024, time.May, 13); !got.Equal(want) {
		t.Errorf("ParseDate(05/13/2024) = %v, want %v", got, want)
	}
}

func TestParseDateRejects(t *testing.T) {
	for _, input := range []string{"not-a-date", "", "  ", "2024/03/05", "32/01/2024"} {
		if _, ok := ParseDate(input); ok {
			t.Errorf("ParseDate(%q) succeeded, want ok=false", input)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		from, to time.Time
		want     int
	}{
		{date(2024, time.January, 10), date(2024, time.January, 10), 0},
		{date(2024, time.January, 10), date(2024, time.January, 13), 3},
		{date(2024, time.January, 10), date(2024, time.January, 8), -2},
		// Clock time must not shift the day count.
		{date(2024, time.January, 10), time.Date(2024, time.January, 11, 23, 59, 0, 0, time.UTC), 1},
	}
	for _, tc := range cases {
		if got := DaysBetween(tc.from, tc.to); got != tc.want {
			t.Errorf("DaysBetween(%v, %v) = %d, want %d", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestDaysRequired(t *testing.T) {
	today := date(2024, time.January, 5)
	if got := DaysRequired(today, "2024-01-10"); got != "5" {
		t.Errorf("Expected 5 days required, got %q", got)
	}
	if got := DaysRequired(today, "2024-01-01"); got != "-4" {
		t.Errorf("Expected -4 days required for past TAT, got %q", got)
	}
	if got := DaysRequired(today, "not-a-date"); got != "" {
		t.Errorf("Expected empty days required for unparseable TAT, got %q", got)
	}
}

func TestClassifyDelivery(t *testing.T) {
	tat := date(2024, time.January, 10)
	cases := []struct {
		completion time.Time
		want       string
	}{
		{date(2024, time.January, 8), DeliveryOnTime},
		{date(2024, time.January, 10), DeliveryOnTime},
		{date(2024, time.January, 11), DeliveryLateSubmission},
		{date(2024, time.January, 12), DeliveryLateDelivery},
		{date(2024, time.January, 13), DeliveryLateDelivery},
	}
	for _, tc := range cases {
		if got := ClassifyDelivery(tat, tc.completion); got != tc.want {
			t.Errorf("ClassifyDelivery(%v, %v) = %q, want %q", tat, tc.completion, got, tc.want)
		}
	}
}

func TestNewTaskID(t *testing.T) {
	today := date(2026, time.February, 23)
	id := NewTaskID("Ashraf Traders", "Abhishek Kumar", today)

	pattern := regexp.MustCompile(`^ASHRA_\d{5}-AbhishekKumar-20260223$`)
	if !pattern.MatchString(id) {
		t.Errorf("Task ID %q does not match %s", id, pattern)
	}
}

func TestNewTaskIDShortClient(t *testing.T) {
	id := NewTaskID("ab", "Priya", date(2024, time.January, 5))
	if matched := regexp.MustCompile(`^AB_\d{5}-Priya-20240105$`).MatchString(id); !matched {
		t.Errorf("Task ID %q does not match short-client pattern", id)
	}
}
