package memory

import (
	"sync"

	"taskpilot/internal/model"
	"taskpilot/internal/task/repository"
	pkgLog "taskpilot/pkg/log"
)

type implRepository struct {
	l pkgLog.Logger

	mu      sync.RWMutex
	tasks   map[string]model.Task // task id -> task
	byEvent map[string]string     // google event id -> task id
}

// New creates an in-memory Repository for the task domain. Tasks live for
// the lifetime of the process; the calendar remains the durable record.
func New(l pkgLog.Logger) repository.Repository {
	return &implRepository{
		l:       l,
		tasks:   make(map[string]model.Task),
		byEvent: make(map[string]string),
	}
}
