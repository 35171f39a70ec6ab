// Package server exposes the task-tracker HTTP API over the spreadsheet
// store: reference lists, task listings, task creation and status updates.
package server

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/reputes/worktracker/pkg/config"
	"github.com/reputes/worktracker/pkg/model"
)

// Store is the slice of the spreadsheet the handlers need.
type Store interface {
	ReferenceLists(ctx context.Context) (workers, clients, taskTypes []string, err error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	FindTask(ctx context.Context, taskID string) (model.Task, error)
	AppendTask(ctx context.Context, task model.Task) error
	UpdateTask(ctx context.Context, task model.Task) error
}

// Server carries the handlers' shared dependencies.
type Server struct {
	log   *logrus.Logger
	store Store
	cfg   *config.Config
}

func New(log *logrus.Logger, store Store, cfg *config.Config) *Server {
	return &Server{log: log, store: store, cfg: cfg}
}

// Router builds the gin engine with middleware and all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	router.Use(cors.New(corsCfg))

	router.GET("/", s.rootAction)

	api := router.Group("/api")
	api.GET("/health", s.healthAction)
	api.GET("/sheet1", s.referenceListsAction)
	api.GET("/tasks", s.listTasksAction)
	api.GET("/tasks/active", s.listActiveTasksAction)
	api.POST("/tasks/create", s.createTaskAction)
	api.PUT("/tasks/update", s.updateTaskAction)

	return router
}

func (s *Server) opLog(c *gin.Context, op string) *logrus.Entry {
	entry := s.log.WithField("operation", op)
	if id, ok := c.Get(requestIDKey); ok {
		entry = entry.WithField("request_id", id)
	}
	return entry
}

// UnavailableStore stands in for the real store when startup could not build
// a spreadsheet client (missing or malformed credentials). Every call fails
// with the startup error, while health and the root page keep serving.
type UnavailableStore struct {
	Err error
}

func (u UnavailableStore) ReferenceLists(context.Context) ([]string, []string, []string, error) {
	return nil, nil, nil, u.Err
}

func (u UnavailableStore) ListTasks(context.Context) ([]model.Task, error) {
	return nil, u.Err
}

func (u UnavailableStore) FindTask(context.Context, string) (model.Task, error) {
	return model.Task{}, u.Err
}

func (u UnavailableStore) AppendTask(context.Context, model.Task) error {
	return u.Err
}

func (u UnavailableStore) UpdateTask(context.Context, model.Task) error {
	return u.Err
}
