package scheduler

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/value-hunter/internal/engine"
	"github.com/yourusername/value-hunter/internal/oddsfeed"
	"github.com/yourusername/value-hunter/internal/service"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()

	eng, err := engine.New(engine.DefaultParams())
	require.NoError(t, err)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	svc := service.NewAnalyzerService(eng, oddsfeed.NewDemoSource(), nil, log, service.AnalyzerConfig{})
	return NewScheduler(svc, log)
}

func TestSchedulerStartWithoutJobs(t *testing.T) {
	s := newTestScheduler(t)

	err := s.Start()
	assert.Error(t, err)
	assert.False(t, s.IsRunning())
}

func TestSchedulerStartStop(t *testing.T) {
	s := newTestScheduler(t)

	require.NoError(t, s.ScheduleLivePolling(300))
	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())

	assert.False(t, s.GetNextRun().IsZero())

	require.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())
}

func TestSchedulerDoubleStart(t *testing.T) {
	s := newTestScheduler(t)

	require.NoError(t, s.ScheduleLivePolling(300))
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Error(t, s.Start())
}

func TestSchedulerCannotScheduleWhileRunning(t *testing.T) {
	s := newTestScheduler(t)

	require.NoError(t, s.ScheduleLivePolling(300))
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Error(t, s.ScheduleLivePolling(60))
	assert.Error(t, s.ScheduleDailyReport("0 8 * * *"))
}

func TestSchedulerMinimumPollingInterval(t *testing.T) {
	s := newTestScheduler(t)

	// Intervals under five seconds are clamped, not rejected
	assert.NoError(t, s.ScheduleLivePolling(1))
}

func TestSchedulerInvalidCronExpression(t *testing.T) {
	s := newTestScheduler(t)

	assert.Error(t, s.ScheduleDailyReport("not a cron expression"))
}

func TestSchedulerStopWhenNotRunning(t *testing.T) {
	s := newTestScheduler(t)

	assert.NoError(t, s.Stop())
}
