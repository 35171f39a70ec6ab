package model

import "testing"

func TestHeaderWidth(t *testing.T) {
	if len(Header) != NumColumns {
		t.Errorf("Header has %d titles, want %d", len(Header), NumColumns)
	}
}

func TestFromRowShortRow(t *testing.T) {
	// The API drops trailing empty cells; a freshly created task row often
	// comes back with fewer than 13 cells.
	row := []string{"2024-01-05", "Audit", "ACME"}
	task := FromRow(row, 2)

	if task.RowIndex != 2 {
		t.Errorf("Expected RowIndex 2, got %d", task.RowIndex)
	}
	if task.Date != "2024-01-05" {
		t.Errorf("Expected Date 2024-01-05, got %q", task.Date)
	}
	if task.ClientID != "ACME" {
		t.Errorf("Expected ClientID ACME, got %q", task.ClientID)
	}
	if task.Status != "" || task.ID != "" {
		t.Errorf("Expected missing trailing cells to be empty, got Status=%q ID=%q", task.Status, task.ID)
	}
}

func TestRowRoundTrip(t *testing.T) {
	task := Task{
		Date:           "2024-01-05",
		TaskType:       "Audit",
		ClientID:       "ACME",
		TAT:            "2024-01-10",
		Description:    "Quarterly audit",
		Employee:       "Priya",
		Colleague:      DefaultColleague,
		Status:         StatusPending,
		DaysRequired:   "5",
		ID:             "ACME_12345-Priya-20240105",
	}

	row := task.Row()
	if len(row) != NumColumns {
		t.Fatalf("Row has %d cells, want %d", len(row), NumColumns)
	}
	if row[ColTaskID] != task.ID {
		t.Errorf("Expected ID at column %d, got %q", ColTaskID, row[ColTaskID])
	}

	back := FromRow(row, 7)
	back.RowIndex = 0
	if back != task {
		t.Errorf("Round trip changed the task: %+v != %+v", back, task)
	}
}

func TestIsTerminal(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{StatusCompleted, true},
		{StatusCancelled, true},
		{" Completed ", true},
		{StatusPending, false},
		{"In Progress", false},
		// Status matching is exact, not case-insensitive.
		{"completed", false},
		{"cancelled", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsTerminal(tc.status); got != tc.want {
			t.Errorf("IsTerminal(%q) = %v, want %v", tc.status, got, tc.want)
		}
	}
}
