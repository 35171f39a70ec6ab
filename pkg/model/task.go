package model

import (
	"errors"
	"strings"
)

// Column is the position of a field within a task row. The spreadsheet stores
// one task per row in this exact order and existing sheets depend on it, so
// the offsets are fixed.
type Column int

const (
	ColDate Column = iota
	ColTaskType
	ColClientID
	ColTAT
	ColDescription
	ColEmployee
	ColColleague
	ColStatus
	ColStatusChanged
	ColDaysRequired
	ColDaysTaken
	ColDeliveryStatus
	ColTaskID
)

// NumColumns is the width of every task row. Rows read back from the sheet
// may be shorter because the API omits trailing empty cells; missing cells
// are treated as empty strings, never as absent.
const NumColumns = 13

// Header is the canonical first row of the task sheet. The titles, typos
// included, match the spreadsheets already in use.
var Header = []string{
	"Date",
	"Tastype",
	"Business ID",
	"TAT",
	"Task Describtion",
	"Employee Name",
	"Collegaue",
	"Status",
	"ChnageOnStatus",
	"Total DaysRequired",
	"Total Days taken",
	"Task Delivery Status",
	"ID",
}

const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"

	// DefaultColleague is stored when no secondary assignee is given.
	DefaultColleague = "NONE"
)

// ErrTaskNotFound is returned when no row carries the requested task ID.
var ErrTaskNotFound = errors.New("task not found")

// Task is one row of the task sheet. The JSON names mirror the sheet's header
// titles so API consumers see the same keys the spreadsheet shows.
type Task struct {
	RowIndex       int    `json:"rowIndex"`
	Date           string `json:"Date"`
	TaskType       string `json:"Tastype"`
	ClientID       string `json:"Business ID"`
	TAT            string `json:"TAT"`
	Description    string `json:"Task Describtion"`
	Employee       string `json:"Employee Name"`
	Colleague      string `json:"Collegaue"`
	Status         string `json:"Status"`
	StatusChanged  string `json:"ChnageOnStatus"`
	DaysRequired   string `json:"Total DaysRequired"`
	DaysTaken      string `json:"Total Days taken"`
	DeliveryStatus string `json:"Task Delivery Status"`
	ID             string `json:"ID"`
}

// IsTerminal reports whether a status closes the task.
func IsTerminal(status string) bool {
	s := strings.TrimSpace(status)
	return s == StatusCompleted || s == StatusCancelled
}

// Cell returns the value at col, or "" when the row is shorter.
func Cell(row []string, col Column) string {
	if int(col) >= len(row) {
		return ""
	}
	return row[int(col)]
}

// FromRow builds a Task from a sheet row. rowIndex is the 1-based position of
// the row within the sheet, used to address later updates.
func FromRow(row []string, rowIndex int) Task {
	return Task{
		RowIndex:       rowIndex,
		Date:           Cell(row, ColDate),
		TaskType:       Cell(row, ColTaskType),
		ClientID:       Cell(row, ColClientID),
		TAT:            Cell(row, ColTAT),
		Description:    Cell(row, ColDescription),
		Employee:       Cell(row, ColEmployee),
		Colleague:      Cell(row, ColColleague),
		Status:         Cell(row, ColStatus),
		StatusChanged:  Cell(row, ColStatusChanged),
		DaysRequired:   Cell(row, ColDaysRequired),
		DaysTaken:      Cell(row, ColDaysTaken),
		DeliveryStatus: Cell(row, ColDeliveryStatus),
		ID:             Cell(row, ColTaskID),
	}
}

// Row serializes the task into a full-width sheet row.
func (t Task) Row() []string {
	row := make([]string, NumColumns)
	row[ColDate] = t.Date
	row[ColTaskType] = t.TaskType
	row[ColClientID] = t.ClientID
	row[ColTAT] = t.TAT
	row[ColDescription] = t.Description
	row[ColEmployee] = t.Employee
	row[ColColleague] = t.Colleague
	row[ColStatus] = t.Status
	row[ColStatusChanged] = t.StatusChanged
	row[ColDaysRequired] = t.DaysRequired
	row[ColDaysTaken] = t.DaysTaken
	row[ColDeliveryStatus] = t.DeliveryStatus
	row[ColTaskID] = t.ID
	return row
}
