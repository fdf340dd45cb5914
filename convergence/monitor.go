package convergence

import (
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"autoscale/db"
	"autoscale/models"
	"autoscale/nova"
)

// Monitor polls the cloud API for entities that are mid-build and feeds
// their completions back into the engine. Missed or reordered observations
// are harmless: reconciliation is level-triggered and the next poll cycle
// sees the same server status again.
type Monitor struct {
	logger     lager.Logger
	clock      clock.Clock
	interval   time.Duration
	groupDB    db.GroupDB
	novaClient nova.Client
	engine     Engine
}

func NewMonitor(logger lager.Logger, clck clock.Clock, interval time.Duration,
	groupDB db.GroupDB, novaClient nova.Client, engine Engine) *Monitor {
	return &Monitor{
		logger:     logger.Session("entity-monitor"),
		clock:      clck,
		interval:   interval,
		groupDB:    groupDB,
		novaClient: novaClient,
		engine:     engine,
	}
}

func (m *Monitor) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ticker := m.clock.NewTicker(m.interval)
	defer ticker.Stop()
	m.logger.Info("started", lager.Data{"interval": m.interval})
	close(ready)

	for {
		select {
		case <-signals:
			m.logger.Info("stopped")
			return nil
		case <-ticker.C():
			m.checkPendingEntities()
		}
	}
}

func (m *Monitor) checkPendingEntities() {
	groups, err := m.groupDB.ListGroupsWithPending()
	if err != nil {
		m.logger.Error("failed-to-list-groups-with-pending-entities", err)
		return
	}

	for _, group := range groups {
		entities := append([]models.Entity{}, group.State.Pending...)
		entities = append(entities, group.State.Draining...)
		for _, entity := range entities {
			m.checkEntity(group, entity)
		}
	}
}

func (m *Monitor) checkEntity(group *models.ScalingGroup, entity models.Entity) {
	logger := m.logger.WithData(lager.Data{"groupId": group.ID, "entityId": entity.ID})

	status, err := m.novaClient.GetServerStatus(entity.ID)
	if err != nil {
		if nova.IsNotFound(err) {
			reportErr := m.engine.ReportEntityFailed(group.TenantID, group.ID, entity.ID, "server disappeared while building")
			if reportErr != nil {
				logger.Error("failed-to-report-entity-failed", reportErr)
			}
			return
		}
		logger.Error("failed-to-get-server-status", err)
		return
	}

	switch status {
	case nova.ServerStatusActive:
		err = m.engine.ReportEntityActive(group.TenantID, group.ID, entity.ID)
		if err != nil {
			logger.Error("failed-to-report-entity-active", err)
		}
	case nova.ServerStatusError:
		err = m.engine.ReportEntityFailed(group.TenantID, group.ID, entity.ID, "server entered ERROR state while building")
		if err != nil {
			logger.Error("failed-to-report-entity-failed", err)
		}
	}
}
