package memory

import (
	"context"
	"sort"
	"time"

	"taskpilot/internal/model"
	"taskpilot/internal/task/repository"
)

func (r *implRepository) CreateTask(_ context.Context, t model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[t.ID]; exists {
		return model.Task{}, repository.ErrDuplicateID
	}

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	r.tasks[t.ID] = t
	if t.GoogleEventID != "" {
		r.byEvent[t.GoogleEventID] = t.ID
	}

	return t, nil
}

func (r *implRepository) GetOneTask(_ context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id := opt.ID
	if id == "" && opt.GoogleEventID != "" {
		id = r.byEvent[opt.GoogleEventID]
	}

	t, ok := r.tasks[id]
	if !ok || (opt.UserID != "" && t.UserID != opt.UserID) {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (r *implRepository) ListTasks(_ context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0)
	for _, t := range r.tasks {
		if opt.UserID != "" && t.UserID != opt.UserID {
			continue
		}
		if !opt.From.IsZero() && t.StartAt != nil && t.StartAt.Before(opt.From) {
			continue
		}
		if !opt.To.IsZero() && t.StartAt != nil && !t.StartAt.Before(opt.To) {
			continue
		}
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		si, sj := out[i].StartAt, out[j].StartAt
		switch {
		case si == nil:
			return sj != nil
		case sj == nil:
			return false
		default:
			return si.Before(*sj)
		}
	})

	return out, nil
}

func (r *implRepository) UpdateTask(_ context.Context, t model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.tasks[t.ID]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}

	if prev.GoogleEventID != "" && prev.GoogleEventID != t.GoogleEventID {
		delete(r.byEvent, prev.GoogleEventID)
	}

	t.CreatedAt = prev.CreatedAt
	t.UpdatedAt = time.Now()

	r.tasks[t.ID] = t
	if t.GoogleEventID != "" {
		r.byEvent[t.GoogleEventID] = t.ID
	}

	return t, nil
}

func (r *implRepository) DeleteTask(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok || (userID != "" && t.UserID != userID) {
		return repository.ErrNotFound
	}

	delete(r.tasks, id)
	if t.GoogleEventID != "" {
		delete(r.byEvent, t.GoogleEventID)
	}
	return nil
}
