package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/reputes/worktracker/pkg/model"
)

// Store reads and writes task records and reference data in the configured
// tabs. The reference tab holds workers (column A), clients (B) and task
// types (C); the task tab holds one task per row in the model column order.
type Store struct {
	client    *Client
	refSheet  string
	taskSheet string
}

func NewStore(client *Client, refSheet, taskSheet string) *Store {
	return &Store{client: client, refSheet: refSheet, taskSheet: taskSheet}
}

// ReferenceLists returns the deduplicated worker, client and task-type
// columns, skipping the header row and blank cells. First-seen order is
// preserved.
func (s *Store) ReferenceLists(ctx context.Context) (workers, clients, taskTypes []string, err error) {
	rows, err := s.client.GetRange(ctx, s.refSheet+"!A:C")
	if err != nil {
		return nil, nil, nil, err
	}
	if len(rows) > 0 {
		rows = rows[1:] // header
	}
	return dedupColumn(rows, 0), dedupColumn(rows, 1), dedupColumn(rows, 2), nil
}

// ListTasks returns every task row, each carrying its 1-based sheet position.
func (s *Store) ListTasks(ctx context.Context) ([]model.Task, error) {
	if err := s.ensureTaskSheet(ctx); err != nil {
		return nil, err
	}
	rows, err := s.client.GetRange(ctx, s.taskSheet+"!A:M")
	if err != nil {
		return nil, err
	}
	tasks := make([]model.Task, 0)
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		tasks = append(tasks, model.FromRow(row, i+1))
	}
	return tasks, nil
}

// FindTask returns the task whose ID column matches taskID exactly, or
// model.ErrTaskNotFound.
func (s *Store) FindTask(ctx context.Context, taskID string) (model.Task, error) {
	if err := s.ensureTaskSheet(ctx); err != nil {
		return model.Task{}, err
	}
	rows, err := s.client.GetRange(ctx, s.taskSheet+"!A:M")
	if err != nil {
		return model.Task{}, err
	}
	for i, row := range rows {
		if strings.TrimSpace(model.Cell(row, model.ColTaskID)) == taskID {
			return model.FromRow(row, i+1), nil
		}
	}
	return model.Task{}, model.ErrTaskNotFound
}

// AppendTask appends the task as a new row after the existing ones.
func (s *Store) AppendTask(ctx context.Context, task model.Task) error {
	if err := s.ensureTaskSheet(ctx); err != nil {
		return err
	}
	return s.client.AppendRow(ctx, s.taskSheet+"!A:M", task.Row())
}

// UpdateTask writes the task's full row back at its recorded position.
// There is no locking: two concurrent updates of the same row interleave
// and the last write wins.
func (s *Store) UpdateTask(ctx context.Context, task model.Task) error {
	a1 := fmt.Sprintf("%s!A%d:M%d", s.taskSheet, task.RowIndex, task.RowIndex)
	return s.client.UpdateRow(ctx, a1, task.Row())
}

// ensureTaskSheet creates the task tab and its header row when either is
// missing, so a fresh spreadsheet heals itself on first use.
func (s *Store) ensureTaskSheet(ctx context.Context) error {
	titles, err := s.client.SheetTitles(ctx)
	if err != nil {
		return err
	}
	exists := false
	for _, title := range titles {
		if title == s.taskSheet {
			exists = true
			break
		}
	}
	if !exists {
		if err := s.client.AddSheet(ctx, s.taskSheet); err != nil {
			return err
		}
	}

	headerRange := fmt.Sprintf("%s!A1:M1", s.taskSheet)
	header, err := s.client.GetRange(ctx, headerRange)
	if err != nil {
		return err
	}
	if len(header) == 0 {
		return s.client.UpdateRow(ctx, headerRange, model.Header)
	}
	return nil
}

func dedupColumn(rows [][]string, col int) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if col >= len(row) {
			continue
		}
		v := strings.TrimSpace(row[col])
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
