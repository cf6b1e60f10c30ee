package usecase

import (
	"time"

	"taskpilot/internal/model"
	"taskpilot/pkg/timecodec"
)

// ApplyDateToAll sets the shared anchor date on every candidate that has
// no per-task override. Each candidate gets its own date value so a later
// per-task edit cannot leak into its neighbors, and any time-of-day on
// the incoming date is discarded.
func ApplyDateToAll(tasks []model.TaskExtract, date time.Time) []model.TaskExtract {
	if date.IsZero() {
		return tasks
	}
	y, m, d := date.Date()
	for i := range tasks {
		if tasks[i].Date != nil {
			continue
		}
		fresh := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
		tasks[i].Date = &fresh
	}
	return tasks
}

// location resolves the configured IANA timezone, falling back to UTC.
// Fixed-offset math would drift across DST transitions, so everything
// that anchors a time of day to a date goes through here.
func (uc *implUseCase) location() *time.Location {
	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// anchor turns a candidate's wall-clock time of day into a concrete
// [start, end) interval on its date (or the fallback date).
func (uc *implUseCase) anchor(t model.TaskExtract, fallback time.Time) (time.Time, time.Time, error) {
	minutes, err := timecodec.TimeToMinutes(t.TimeOfDay)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	date := fallback
	if t.Date != nil {
		date = *t.Date
	}

	loc := uc.location()
	y, m, d := date.In(loc).Date()
	start := time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc)
	end := start.Add(time.Duration(t.DurationMinutes) * time.Minute)
	return start, end, nil
}

// today returns midnight of the current day in the service timezone, the
// default anchor when the caller supplies no date.
func (uc *implUseCase) today() time.Time {
	loc := uc.location()
	y, m, d := time.Now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
