package server

import "strings"

// CreateTaskRequest is the POST /api/tasks/create body.
type CreateTaskRequest struct {
	TaskType        string `json:"taskType"`
	ClientID        string `json:"clientId"`
	TAT             string `json:"tat"`
	TaskDescription string `json:"taskDescription"`
	WorkerName      string `json:"workerName"`
	Colleague       string `json:"colleague"`
}

// MissingField returns the JSON name of the first required field that is
// missing or blank, or "" when the request is complete. Validation happens
// before any spreadsheet call.
func (r *CreateTaskRequest) MissingField() string {
	required := []struct {
		name  string
		value string
	}{
		{"taskType", r.TaskType},
		{"clientId", r.ClientID},
		{"tat", r.TAT},
		{"taskDescription", r.TaskDescription},
		{"workerName", r.WorkerName},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return f.name
		}
	}
	return ""
}

// UpdateTaskRequest is the PUT /api/tasks/update body. NewWorker and
// NewColleague are optional reassignments.
type UpdateTaskRequest struct {
	TaskID       string `json:"taskId"`
	NewStatus    string `json:"newStatus"`
	NewWorker    string `json:"newWorker"`
	NewColleague string `json:"newColleague"`
}
