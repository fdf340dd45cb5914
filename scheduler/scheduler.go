package scheduler

import (
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/robfig/cron/v3"

	"autoscale/convergence"
	"autoscale/db"
	"autoscale/models"
)

const DefaultFiringWindow = 10 * time.Second

// Scheduler fires schedule policies: cron policies whenever their expression
// matches, at policies once when their timestamp falls inside the firing
// window. Triggers on paused groups and triggers inside a cooldown are
// suppressed, never queued.
type Scheduler struct {
	logger       lager.Logger
	clock        clock.Clock
	interval     time.Duration
	firingWindow time.Duration
	policyDB     db.PolicyDB
	engine       convergence.Engine

	lastCheck time.Time
}

func New(logger lager.Logger, clck clock.Clock, interval time.Duration, firingWindow time.Duration,
	policyDB db.PolicyDB, engine convergence.Engine) *Scheduler {
	if firingWindow <= 0 {
		firingWindow = DefaultFiringWindow
	}
	return &Scheduler{
		logger:       logger.Session("scheduler"),
		clock:        clck,
		interval:     interval,
		firingWindow: firingWindow,
		policyDB:     policyDB,
		engine:       engine,
	}
}

func (s *Scheduler) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()
	s.lastCheck = s.clock.Now()
	s.logger.Info("started", lager.Data{"interval": s.interval})
	close(ready)

	for {
		select {
		case <-signals:
			s.logger.Info("stopped")
			return nil
		case <-ticker.C():
			s.CheckSchedules()
		}
	}
}

func (s *Scheduler) CheckSchedules() {
	now := s.clock.Now()
	policies, err := s.policyDB.ListSchedulePolicies()
	if err != nil {
		s.logger.Error("failed-to-list-schedule-policies", err)
		return
	}

	for _, policy := range policies {
		if policy.Args.Cron != "" {
			if s.cronDue(policy, now) {
				s.fire(policy)
			}
			continue
		}
		if !s.atDue(policy, now) {
			continue
		}
		// recorded before firing; an at policy fires at most once,
		// restarts included
		if err := s.policyDB.MarkScheduleExecuted(policy.PolicyID, now.UnixNano()); err != nil {
			s.logger.Error("failed-to-record-schedule-execution", err, lager.Data{"policyId": policy.PolicyID})
			continue
		}
		s.fire(policy)
	}
	s.lastCheck = now
}

func (s *Scheduler) cronDue(policy *models.SchedulePolicy, now time.Time) bool {
	schedule, err := cron.ParseStandard(policy.Args.Cron)
	if err != nil {
		s.logger.Error("invalid-cron-expression", err, lager.Data{"policyId": policy.PolicyID, "cron": policy.Args.Cron})
		return false
	}
	next := schedule.Next(s.lastCheck)
	return !next.After(now)
}

func (s *Scheduler) atDue(policy *models.SchedulePolicy, now time.Time) bool {
	if policy.ExecutedAt != 0 {
		return false
	}
	at, err := time.Parse(models.TimestampFormat, policy.Args.At)
	if err != nil {
		s.logger.Error("invalid-at-timestamp", err, lager.Data{"policyId": policy.PolicyID, "at": policy.Args.At})
		return false
	}
	return !at.After(now) && now.Sub(at) <= s.firingWindow
}

func (s *Scheduler) fire(policy *models.SchedulePolicy) {
	logger := s.logger.WithData(lager.Data{"groupId": policy.GroupID, "policyId": policy.PolicyID})
	err := s.engine.ExecutePolicy(policy.TenantID, policy.GroupID, policy.PolicyID)
	switch err.(type) {
	case nil:
		logger.Info("fired-schedule-policy")
	case *models.GroupPausedError:
		logger.Info("suppressed-trigger-on-paused-group")
	case *models.CannotExecutePolicyError:
		logger.Info("suppressed-trigger", lager.Data{"reason": err.Error()})
	default:
		logger.Error("failed-to-execute-schedule-policy", err)
	}
}
