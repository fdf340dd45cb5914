package convergence

import (
	"fmt"
	"sort"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"autoscale/db"
	"autoscale/healthendpoint"
	"autoscale/models"
	"autoscale/nova"
)

// Engine drives a scaling group's actual entity fleet toward its desired
// capacity. Reconciliation is level-triggered: each call computes the delta
// from current state, issues the actuator calls it can, and relies on the
// next trigger to pick up whatever completed or failed in between. The
// per-group lock is never held across an entity's build time; creates are
// issued, counted as pending, and completion arrives later through
// ReportEntityActive.
type Engine interface {
	Converge(tenantID string, groupID string) error
	ExecutePolicy(tenantID string, groupID string, policyID string) error
	SetPaused(tenantID string, groupID string, paused bool) error
	DeleteGroup(tenantID string, groupID string, force bool) error
	ReportEntityActive(tenantID string, groupID string, entityID string) error
	ReportEntityFailed(tenantID string, groupID string, entityID string, reason string) error
}

type engine struct {
	logger      lager.Logger
	novaClient  nova.Client
	groupDB     db.GroupDB
	policyDB    db.PolicyDB
	groupLock   *StripedLock
	clock       clock.Clock
	collector   healthendpoint.ConvergenceCollector
	maxFailures int
}

func NewEngine(logger lager.Logger, novaClient nova.Client, groupDB db.GroupDB, policyDB db.PolicyDB,
	clck clock.Clock, collector healthendpoint.ConvergenceCollector, lockSize int, maxFailures int) Engine {
	return &engine{
		logger:      logger.Session("convergence-engine"),
		novaClient:  novaClient,
		groupDB:     groupDB,
		policyDB:    policyDB,
		groupLock:   NewStripedLock(lockSize),
		clock:       clck,
		collector:   collector,
		maxFailures: maxFailures,
	}
}

func (e *engine) Converge(tenantID string, groupID string) error {
	lock := e.groupLock.GetLock(groupID)
	lock.Lock()
	defer lock.Unlock()

	group, err := e.groupDB.GetGroup(tenantID, groupID)
	if err != nil {
		return err
	}
	if group.State.Paused {
		return &models.GroupPausedError{GroupID: groupID}
	}
	// an explicit trigger is the documented manual retry out of ERROR
	if group.State.Status == models.GroupStatusError {
		group.State.Status = models.GroupStatusActive
		group.State.Errors = nil
	}
	return e.convergeGroup(group, models.ChangeReasonConvergence, group.State.DesiredCapacity)
}

func (e *engine) ExecutePolicy(tenantID string, groupID string, policyID string) error {
	lock := e.groupLock.GetLock(groupID)
	lock.Lock()
	defer lock.Unlock()

	logger := e.logger.WithData(lager.Data{"groupId": groupID, "policyId": policyID})

	group, err := e.groupDB.GetGroup(tenantID, groupID)
	if err != nil {
		return err
	}
	if group.State.Paused {
		return &models.GroupPausedError{GroupID: groupID}
	}
	switch group.State.Status {
	case models.GroupStatusError:
		return &models.CannotExecutePolicyError{PolicyID: policyID, Reason: "group requires operator attention"}
	case models.GroupStatusDeleting:
		return &models.CannotExecutePolicyError{PolicyID: policyID, Reason: "group is being deleted"}
	}

	policy, err := e.policyDB.GetPolicy(tenantID, groupID, policyID)
	if err != nil {
		return err
	}

	canScale, _, err := e.groupDB.CanScaleGroup(groupID)
	if err != nil {
		logger.Error("failed-to-check-group-cooldown", err)
		return err
	}
	if !canScale {
		return &models.CannotExecutePolicyError{PolicyID: policyID, Reason: "group cooldown has not expired"}
	}
	canExecute, _, err := e.policyDB.CanExecutePolicy(policyID)
	if err != nil {
		logger.Error("failed-to-check-policy-cooldown", err)
		return err
	}
	if !canExecute {
		return &models.CannotExecutePolicyError{PolicyID: policyID, Reason: "policy cooldown has not expired"}
	}

	newDesired, err := ComputeNewCapacity(policy, group.State.DesiredCapacity,
		group.Config.MinEntities, group.Config.MaxEntities)
	if err != nil {
		logger.Error("failed-to-compute-new-capacity", err)
		return err
	}
	if newDesired == group.State.DesiredCapacity {
		return &models.CannotExecutePolicyError{PolicyID: policyID, Reason: "policy execution would not change capacity"}
	}

	oldDesired := group.State.DesiredCapacity
	group.State.DesiredCapacity = newDesired
	err = e.convergeGroup(group, policyExecutionReason(policy, oldDesired, newDesired), oldDesired)
	if err != nil {
		return err
	}

	expireAt := e.clock.Now().Add(policy.CoolDown()).UnixNano()
	err = e.policyDB.UpdatePolicyCooldownExpireTime(policyID, expireAt)
	if err != nil {
		logger.Error("failed-to-update-policy-cooldown-expire-time", err)
	}
	return nil
}

func (e *engine) SetPaused(tenantID string, groupID string, paused bool) error {
	lock := e.groupLock.GetLock(groupID)
	lock.Lock()
	defer lock.Unlock()

	group, err := e.groupDB.GetGroup(tenantID, groupID)
	if err != nil {
		return err
	}
	if group.State.Paused == paused {
		return nil
	}
	group.State.Paused = paused
	e.logger.Info("set-paused", lager.Data{"groupId": groupID, "paused": paused})
	return e.groupDB.SaveGroupState(tenantID, groupID, &group.State)
}

func (e *engine) DeleteGroup(tenantID string, groupID string, force bool) error {
	lock := e.groupLock.GetLock(groupID)
	lock.Lock()
	defer lock.Unlock()

	group, err := e.groupDB.GetGroup(tenantID, groupID)
	if err != nil {
		return err
	}
	state := &group.State
	empty := len(state.Active)+len(state.Pending)+len(state.Draining) == 0

	if !force {
		if !empty {
			return &models.GroupNotEmptyError{GroupID: groupID}
		}
		return e.groupDB.DeleteGroup(tenantID, groupID)
	}

	group.Config.MinEntities = 0
	group.Config.MaxEntities = 0
	err = e.groupDB.UpdateGroupConfiguration(tenantID, groupID, group.Config)
	if err != nil {
		e.logger.Error("failed-to-zero-group-configuration", err, lager.Data{"groupId": groupID})
		return err
	}

	state.Status = models.GroupStatusDeleting
	state.DesiredCapacity = 0
	return e.convergeGroup(group, models.ChangeReasonForceDelete, state.DesiredCapacity)
}

func (e *engine) ReportEntityActive(tenantID string, groupID string, entityID string) error {
	lock := e.groupLock.GetLock(groupID)
	lock.Lock()
	defer lock.Unlock()

	group, err := e.groupDB.GetGroup(tenantID, groupID)
	if err != nil {
		return err
	}
	state := &group.State
	logger := e.logger.WithData(lager.Data{"groupId": groupID, "entityId": entityID})

	if entity, found := removeEntity(&state.Draining, entityID); found {
		err := e.deleteEntity(group, entity)
		if err != nil {
			logger.Error("failed-to-delete-draining-entity", err)
			state.Draining = append(state.Draining, entity)
			state.Errors = append(state.Errors, fmt.Sprintf("failed to delete server %s: %s", entityID, err.Error()))
		}
		return e.finishPass(tenantID, group)
	}

	entity, found := removeEntity(&state.Pending, entityID)
	if !found {
		logger.Debug("entity-not-pending")
		return nil
	}

	if state.Status == models.GroupStatusDeleting {
		err := e.deleteEntity(group, entity)
		if err != nil {
			logger.Error("failed-to-delete-entity-on-activation", err)
			state.Draining = append(state.Draining, entity)
			state.Errors = append(state.Errors, fmt.Sprintf("failed to delete server %s: %s", entityID, err.Error()))
		}
		return e.finishPass(tenantID, group)
	}

	for _, lb := range group.LaunchConfig.LoadBalancers {
		err := e.novaClient.AttachToLoadBalancer(entityID, lb)
		if err != nil {
			logger.Error("failed-to-attach-to-load-balancer", err, lager.Data{"loadBalancerId": lb.LoadBalancerID})
			state.Errors = append(state.Errors, fmt.Sprintf("failed to attach server %s to load balancer %s: %s",
				entityID, lb.LoadBalancerID, err.Error()))
			if nova.IsIrrecoverable(err) {
				state.Status = models.GroupStatusError
			}
		}
	}

	entity.State = models.EntityStateActive
	state.Active = append(state.Active, entity)
	logger.Info("entity-active", lager.Data{"activeCapacity": state.ActiveCapacity()})
	return e.groupDB.SaveGroupState(tenantID, groupID, state)
}

func (e *engine) ReportEntityFailed(tenantID string, groupID string, entityID string, reason string) error {
	lock := e.groupLock.GetLock(groupID)
	lock.Lock()
	defer lock.Unlock()

	group, err := e.groupDB.GetGroup(tenantID, groupID)
	if err != nil {
		return err
	}
	state := &group.State

	if _, found := removeEntity(&state.Draining, entityID); found {
		// a failed build we wanted gone anyway
		return e.finishPass(tenantID, group)
	}
	if _, found := removeEntity(&state.Pending, entityID); !found {
		if _, found = removeEntity(&state.Active, entityID); !found {
			return nil
		}
	}
	state.Errors = append(state.Errors, fmt.Sprintf("server %s failed: %s", entityID, reason))
	e.logger.Info("entity-failed", lager.Data{"groupId": groupID, "entityId": entityID, "reason": reason})
	return e.finishPass(tenantID, group)
}

// convergeGroup runs a single reconciliation pass. The caller holds the
// group's lock and has loaded fresh state.
func (e *engine) convergeGroup(group *models.ScalingGroup, reason string, oldDesired int) error {
	e.collector.IncConcurrentConvergence()
	defer e.collector.DecConcurrentConvergence()

	logger := e.logger.WithData(lager.Data{"groupId": group.ID})
	state := &group.State
	now := e.clock.Now()

	// configuration may have changed since desired was last set
	if state.DesiredCapacity < group.Config.MinEntities {
		state.DesiredCapacity = group.Config.MinEntities
	}
	if state.DesiredCapacity > group.Config.MaxEntities {
		state.DesiredCapacity = group.Config.MaxEntities
	}

	history := &models.ScalingHistory{
		TenantID:   group.TenantID,
		GroupID:    group.ID,
		Timestamp:  now.UnixNano(),
		Reason:     reason,
		OldDesired: oldDesired,
		NewDesired: state.DesiredCapacity,
	}

	delta := state.DesiredCapacity - (state.ActiveCapacity() + state.PendingCapacity())
	logger.Info("converge", lager.Data{"desired": state.DesiredCapacity, "active": state.ActiveCapacity(),
		"pending": state.PendingCapacity(), "delta": delta})

	changed := false
	switch {
	case delta > 0:
		changed = e.scaleOut(logger, group, delta)
	case delta < 0:
		changed = e.scaleIn(logger, group, -delta)
	}

	if state.Status == models.GroupStatusError {
		history.Status = models.ScalingStatusFailed
		history.Error = lastError(state)
	} else if delta == 0 {
		history.Status = models.ScalingStatusIgnored
		history.Message = "group already converged"
	} else {
		history.Status = models.ScalingStatusSucceeded
	}
	defer e.groupDB.SaveScalingHistory(history)

	if changed {
		expireAt := now.Add(group.Config.CooldownDuration()).UnixNano()
		err := e.groupDB.UpdateGroupCooldownExpireTime(group.ID, expireAt)
		if err != nil {
			logger.Error("failed-to-update-group-cooldown-expire-time", err)
		}
	}

	return e.finishPass(group.TenantID, group)
}

// finishPass persists state, or removes the group record once a deleting
// group has fully drained.
func (e *engine) finishPass(tenantID string, group *models.ScalingGroup) error {
	state := &group.State
	if state.Status == models.GroupStatusDeleting &&
		len(state.Active)+len(state.Pending)+len(state.Draining) == 0 {
		e.logger.Info("group-drained", lager.Data{"groupId": group.ID})
		return e.groupDB.DeleteGroup(tenantID, group.ID)
	}
	return e.groupDB.SaveGroupState(tenantID, group.ID, state)
}

func (e *engine) scaleOut(logger lager.Logger, group *models.ScalingGroup, count int) bool {
	state := &group.State
	failures := 0
	created := 0
	for i := 0; i < count; i++ {
		handle, err := e.novaClient.CreateServer(&group.LaunchConfig)
		if err != nil {
			logger.Error("failed-to-create-server", err)
			state.Errors = append(state.Errors, fmt.Sprintf("failed to create server: %s", err.Error()))
			if nova.IsIrrecoverable(err) {
				state.Status = models.GroupStatusError
				break
			}
			failures++
			if failures >= e.maxFailures {
				state.Status = models.GroupStatusError
				state.Errors = append(state.Errors,
					fmt.Sprintf("convergence halted after %d consecutive create failures", failures))
				break
			}
			continue
		}
		failures = 0
		created++
		state.Pending = append(state.Pending, models.Entity{
			ID:      handle.ID,
			State:   models.EntityStateBuilding,
			Created: e.clock.Now(),
		})
	}
	logger.Info("scale-out", lager.Data{"requested": count, "created": created})
	return created > 0
}

func (e *engine) scaleIn(logger lager.Logger, group *models.ScalingGroup, count int) bool {
	state := &group.State
	pendingVictims, activeVictims := chooseEntitiesToRemove(state, count)

	// a pending entity cannot be deleted mid-build; it is parked in
	// Draining and deleted the moment it becomes active
	for _, entity := range pendingVictims {
		removeEntity(&state.Pending, entity.ID)
		state.Draining = append(state.Draining, entity)
	}

	deleted := 0
	for _, entity := range activeVictims {
		err := e.deleteEntity(group, entity)
		if err != nil {
			logger.Error("failed-to-delete-server", err, lager.Data{"entityId": entity.ID})
			state.Errors = append(state.Errors, fmt.Sprintf("failed to delete server %s: %s", entity.ID, err.Error()))
			if nova.IsIrrecoverable(err) {
				state.Status = models.GroupStatusError
				break
			}
			continue
		}
		removeEntity(&state.Active, entity.ID)
		deleted++
	}
	logger.Info("scale-in", lager.Data{"requested": count, "deleted": deleted, "draining": len(pendingVictims)})
	return deleted > 0 || len(pendingVictims) > 0
}

func (e *engine) deleteEntity(group *models.ScalingGroup, entity models.Entity) error {
	for _, lb := range group.LaunchConfig.LoadBalancers {
		err := e.novaClient.DetachFromLoadBalancer(entity.ID, lb)
		if err != nil && !nova.IsNotFound(err) {
			return err
		}
	}
	return e.novaClient.DeleteServer(entity.ID, group.LaunchConfig.DrainingTimeout)
}

// chooseEntitiesToRemove selects |count| entities for scale-down. Pending
// entities go first, newest build first, so the least-progressed work is
// abandoned; then active entities oldest-first. The source contract leaves
// this ordering open, so it is fixed here to keep scale-down deterministic.
func chooseEntitiesToRemove(state *models.GroupState, count int) (pending []models.Entity, active []models.Entity) {
	for i := len(state.Pending) - 1; i >= 0 && count > 0; i-- {
		pending = append(pending, state.Pending[i])
		count--
	}
	oldestFirst := make([]models.Entity, len(state.Active))
	copy(oldestFirst, state.Active)
	sort.SliceStable(oldestFirst, func(i, j int) bool {
		return oldestFirst[i].Created.Before(oldestFirst[j].Created)
	})
	for i := 0; i < len(oldestFirst) && count > 0; i++ {
		active = append(active, oldestFirst[i])
		count--
	}
	return pending, active
}

func removeEntity(entities *[]models.Entity, entityID string) (models.Entity, bool) {
	for i, entity := range *entities {
		if entity.ID == entityID {
			*entities = append((*entities)[:i], (*entities)[i+1:]...)
			return entity, true
		}
	}
	return models.Entity{}, false
}

func lastError(state *models.GroupState) string {
	if len(state.Errors) == 0 {
		return ""
	}
	return state.Errors[len(state.Errors)-1]
}

func policyExecutionReason(policy *models.ScalingPolicy, oldDesired int, newDesired int) string {
	var adjustment string
	switch {
	case policy.Change != nil:
		adjustment = fmt.Sprintf("change %+d", *policy.Change)
	case policy.ChangePercent != nil:
		adjustment = fmt.Sprintf("change %+.1f percent", *policy.ChangePercent)
	case policy.DesiredCapacity != nil:
		adjustment = fmt.Sprintf("desired capacity %d", *policy.DesiredCapacity)
	}
	return fmt.Sprintf("policy %s (%s) moved desired capacity from %d to %d",
		policy.Name, adjustment, oldDesired, newDesired)
}
