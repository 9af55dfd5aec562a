package usecase

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"georeminder/internal/schedule"
	"georeminder/internal/task"
	"georeminder/internal/task/repository"
	pkgLog "georeminder/pkg/log"
)

// recentActivationCacheSize bounds the same-day dedupe cache; evicted
// entries just fall through to the one-per-day gate on the stored task.
const recentActivationCacheSize = 512

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	evaluator *schedule.Evaluator
	projector *schedule.Projector
	notifier  task.Notifier   // optional
	regions   task.RegionSync // optional
	loc       *time.Location
	locks     *keyedMutex
	recent    *lru.Cache[string, schedule.Date]
	now       func() time.Time
}

// New creates a new task UseCase instance. Notifier and regions may be nil
// when the corresponding integration is not configured.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	notifier task.Notifier,
	regions task.RegionSync,
	loc *time.Location,
) *implUseCase {
	if loc == nil {
		loc = time.Local
	}
	recent, _ := lru.New[string, schedule.Date](recentActivationCacheSize)

	return &implUseCase{
		l:         l,
		repo:      repo,
		evaluator: schedule.NewEvaluator(loc),
		projector: schedule.NewProjector(loc),
		notifier:  notifier,
		regions:   regions,
		loc:       loc,
		locks:     newKeyedMutex(),
		recent:    recent,
		now:       time.Now,
	}
}
