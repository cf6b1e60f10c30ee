package usecase

import (
	"context"
	"sync"

	"taskpilot/internal/model"
	"taskpilot/internal/task"
)

// CreateBulk confirms a batch of candidates. Every candidate is created
// in its own goroutine; outcomes are collected in input order. A failed
// candidate is counted, never propagated, and nothing is rolled back.
func (uc *implUseCase) CreateBulk(ctx context.Context, sc model.Scope, input task.CreateBulkInput) (task.CreateBulkOutput, error) {
	if len(input.Tasks) == 0 {
		return task.CreateBulkOutput{}, task.ErrEmptyInput
	}

	fallback := input.Date
	if fallback.IsZero() {
		fallback = uc.today()
	}
	candidates := ApplyDateToAll(input.Tasks, fallback)

	uc.l.Infof(ctx, "CreateBulk: user=%s candidates=%d date=%s",
		sc.UserID, len(candidates), fallback.Format("2006-01-02"))

	results := make([]*model.Task, len(candidates))
	var wg sync.WaitGroup

	for i, candidate := range candidates {
		wg.Add(1)
		go func(i int, candidate model.TaskExtract) {
			defer wg.Done()

			candidate = repairForCreate(candidate)
			if err := uc.validate.Struct(candidate); err != nil {
				uc.l.Warnf(ctx, "CreateBulk: invalid candidate %q: %v", candidate.Title, err)
				return
			}

			created, err := uc.createOne(ctx, sc, candidate, fallback, true, input.Token)
			if err != nil {
				uc.l.Errorf(ctx, "CreateBulk: candidate %q failed: %v", candidate.Title, err)
				return
			}
			results[i] = &created
		}(i, candidate)
	}
	wg.Wait()

	out := task.CreateBulkOutput{Created: make([]model.Task, 0, len(candidates))}
	for _, r := range results {
		if r == nil {
			out.FailedCount++
			continue
		}
		out.Created = append(out.Created, *r)
	}

	uc.l.Infof(ctx, "CreateBulk: user=%s created=%d failed=%d",
		sc.UserID, len(out.Created), out.FailedCount)

	return out, nil
}
