package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/reputes/worktracker/pkg/lifecycle"
	"github.com/reputes/worktracker/pkg/model"
)

func (s *Server) referenceListsAction(c *gin.Context) {
	const op = "server.referenceListsAction"
	log := s.opLog(c, op)

	workers, clients, taskTypes, err := s.store.ReferenceLists(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("failed to read reference lists")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"workers":   workers,
		"clients":   clients,
		"taskTypes": taskTypes,
	})
}

func (s *Server) listTasksAction(c *gin.Context) {
	const op = "server.listTasksAction"
	log := s.opLog(c, op)

	tasks, err := s.store.ListTasks(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("failed to list tasks")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (s *Server) listActiveTasksAction(c *gin.Context) {
	const op = "server.listActiveTasksAction"
	log := s.opLog(c, op)

	tasks, err := s.store.ListTasks(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("failed to list tasks")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	active := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if model.IsTerminal(task.Status) {
			continue
		}
		active = append(active, task)
	}

	c.JSON(http.StatusOK, gin.H{"tasks": active})
}

func (s *Server) createTaskAction(c *gin.Context) {
	const op = "server.createTaskAction"
	log := s.opLog(c, op)

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if field := req.MissingField(); field != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Missing required field: %s", field)})
		return
	}

	today := time.Now()
	taskID := lifecycle.NewTaskID(strings.TrimSpace(req.ClientID), strings.TrimSpace(req.WorkerName), today)

	colleague := strings.TrimSpace(req.Colleague)
	if colleague == "" {
		colleague = model.DefaultColleague
	}

	tat := strings.TrimSpace(req.TAT)
	task := model.Task{
		Date:         today.Format(lifecycle.DateLayout),
		TaskType:     strings.TrimSpace(req.TaskType),
		ClientID:     strings.TrimSpace(req.ClientID),
		TAT:          tat,
		Description:  strings.TrimSpace(req.TaskDescription),
		Employee:     strings.TrimSpace(req.WorkerName),
		Colleague:    colleague,
		Status:       model.StatusPending,
		DaysRequired: lifecycle.DaysRequired(today, tat),
		ID:           taskID,
	}

	if err := s.store.AppendTask(c.Request.Context(), task); err != nil {
		log.WithError(err).Error("failed to append task row")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.WithField("task_id", taskID).Info("task created")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"taskId":  taskID,
		"message": fmt.Sprintf("Task created successfully! ID: %s", taskID),
	})
}

func (s *Server) updateTaskAction(c *gin.Context) {
	const op = "server.updateTaskAction"
	log := s.opLog(c, op)

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	taskID := strings.TrimSpace(req.TaskID)
	newStatus := strings.TrimSpace(req.NewStatus)
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "taskId is required"})
		return
	}
	if newStatus == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "newStatus is required"})
		return
	}

	task, err := s.store.FindTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, model.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Task ID '%s' not found", taskID)})
			return
		}
		log.WithError(err).Error("failed to look up task")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	today := time.Now()
	task.Status = newStatus
	task.StatusChanged = today.Format(lifecycle.DateLayout)
	if worker := strings.TrimSpace(req.NewWorker); worker != "" {
		task.Employee = worker
	}
	if colleague := strings.TrimSpace(req.NewColleague); colleague != "" {
		task.Colleague = colleague
	}

	// Closing, or re-closing, recomputes the metrics. Nothing stops a task
	// from being reopened or closed twice; the last write wins. Unparseable
	// stored dates leave the derived fields as they were.
	if model.IsTerminal(newStatus) {
		if assigned, ok := lifecycle.ParseDate(task.Date); ok {
			task.DaysTaken = strconv.Itoa(lifecycle.DaysBetween(assigned, today))
		}
		if tat, ok := lifecycle.ParseDate(task.TAT); ok {
			task.DeliveryStatus = lifecycle.ClassifyDelivery(tat, today)
		}
	}

	if err := s.store.UpdateTask(c.Request.Context(), task); err != nil {
		log.WithError(err).Error("failed to update task row")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.WithFields(logrus.Fields{"task_id": taskID, "status": newStatus}).Info("task updated")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Task '%s' updated to '%s' successfully.", taskID, newStatus),
	})
}

func (s *Server) healthAction(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":                 "ok",
		"message":                "Work Tracker API is running",
		"spreadsheet_configured": s.cfg.SpreadsheetConfigured(),
		"sheet1":                 s.cfg.Sheet1Name,
		"sheet2":                 s.cfg.Sheet2Name,
	})
}

const rootPage = `<html><head><title>Work Tracker API</title></head>
<body>
<h1>Work Tracker</h1>
<p>API server is running.</p>
<p>Spreadsheet ID: %s</p>
<p>Endpoints:</p>
<ul>
<li><a href="/api/health">/api/health</a> (health check)</li>
<li><a href="/api/sheet1">/api/sheet1</a> (workers, clients, task types)</li>
<li><a href="/api/tasks">/api/tasks</a> (all tasks)</li>
<li><a href="/api/tasks/active">/api/tasks/active</a> (active tasks only)</li>
</ul>
</body></html>
`

func (s *Server) rootAction(c *gin.Context) {
	configured := "NOT SET (check .env)"
	if s.cfg.SpreadsheetConfigured() {
		configured = "set"
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, rootPage, configured)
}
