package usecase

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"taskpilot/internal/task"
	"taskpilot/internal/task/repository"
	pkgLog "taskpilot/pkg/log"
)

var hhmmPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

type implUseCase struct {
	l          pkgLog.Logger
	llm        task.Generator // nil when no provider credential is configured
	repo       repository.Repository
	calFactory task.CalendarFactory
	validate   *validator.Validate
	calendarID string
	timezone   string // IANA name
}

// New creates a new task UseCase instance. llm may be nil: the server
// starts without LLM credentials and Extract reports the provider as
// unavailable instead.
func New(
	l pkgLog.Logger,
	llm task.Generator,
	repo repository.Repository,
	calFactory task.CalendarFactory,
	calendarID string,
	timezone string,
) task.UseCase {
	v := validator.New()
	// Tag backing the "HH:MM" fields; minute range is checked by the
	// time codec at anchor time, the tag only guards the shape.
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	})

	return &implUseCase{
		l:          l,
		llm:        llm,
		repo:       repo,
		calFactory: calFactory,
		validate:   v,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
