package sqldb

import (
	"database/sql"
	"encoding/json"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"autoscale/db"
	"autoscale/healthendpoint"
	"autoscale/models"
)

type PolicySQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

func NewPolicySQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*PolicySQLDB, error) {
	sqldb, err := sqlx.Open(db.PostgresDriverName, dbConfig.URL)
	if err != nil {
		logger.Error("open-policy-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	err = sqldb.Ping()
	if err != nil {
		sqldb.Close()
		logger.Error("ping-policy-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	sqldb.SetConnMaxLifetime(dbConfig.ConnectionMaxLifetime)
	sqldb.SetMaxIdleConns(dbConfig.MaxIdleConnections)
	sqldb.SetMaxOpenConns(dbConfig.MaxOpenConnections)

	return &PolicySQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (pdb *PolicySQLDB) Close() error {
	err := pdb.sqldb.Close()
	if err != nil {
		pdb.logger.Error("close-policy-db", err, lager.Data{"dbConfig": pdb.dbConfig})
		return err
	}
	return nil
}

func (pdb *PolicySQLDB) CreatePolicies(tenantID string, groupID string, policies []*models.ScalingPolicy) error {
	tx, err := pdb.sqldb.Begin()
	if err != nil {
		pdb.logger.Error("create-policies-begin", err, lager.Data{"groupId": groupID})
		return err
	}
	query := "INSERT INTO scalingpolicy(tenantid, groupid, policyid, policytype, policyjson) VALUES($1, $2, $3, $4, $5)"
	for _, policy := range policies {
		policyJSON, err := json.Marshal(policy)
		if err != nil {
			tx.Rollback()
			return err
		}
		if _, err = tx.Exec(query, tenantID, groupID, policy.ID, policy.Type, policyJSON); err != nil {
			tx.Rollback()
			pdb.logger.Error("create-policies", err, lager.Data{"query": query, "policyId": policy.ID})
			return err
		}
	}
	return tx.Commit()
}

func (pdb *PolicySQLDB) GetPolicy(tenantID string, groupID string, policyID string) (*models.ScalingPolicy, error) {
	query := "SELECT policyjson FROM scalingpolicy WHERE tenantid = $1 AND groupid = $2 AND policyid = $3"
	var policyJSON []byte
	err := pdb.sqldb.QueryRow(query, tenantID, groupID, policyID).Scan(&policyJSON)
	if err == sql.ErrNoRows {
		return nil, &models.NoSuchPolicyError{PolicyID: policyID}
	}
	if err != nil {
		pdb.logger.Error("get-policy", err, lager.Data{"query": query, "policyId": policyID})
		return nil, err
	}
	policy := &models.ScalingPolicy{}
	if err = json.Unmarshal(policyJSON, policy); err != nil {
		pdb.logger.Error("unmarshal-policy", err, lager.Data{"policyId": policyID})
		return nil, err
	}
	return policy, nil
}

func (pdb *PolicySQLDB) ListPolicies(tenantID string, groupID string) ([]*models.ScalingPolicy, error) {
	query := "SELECT policyjson FROM scalingpolicy WHERE tenantid = $1 AND groupid = $2"
	rows, err := pdb.sqldb.Query(query, tenantID, groupID)
	if err != nil {
		pdb.logger.Error("list-policies", err, lager.Data{"query": query, "groupId": groupID})
		return nil, err
	}
	defer rows.Close()

	policies := []*models.ScalingPolicy{}
	for rows.Next() {
		var policyJSON []byte
		if err = rows.Scan(&policyJSON); err != nil {
			pdb.logger.Error("list-policies-scan", err)
			return nil, err
		}
		policy := &models.ScalingPolicy{}
		if err = json.Unmarshal(policyJSON, policy); err != nil {
			pdb.logger.Error("unmarshal-policy", err, lager.Data{"groupId": groupID})
			return nil, err
		}
		policies = append(policies, policy)
	}
	return policies, nil
}

func (pdb *PolicySQLDB) ListSchedulePolicies() ([]*models.SchedulePolicy, error) {
	query := "SELECT p.tenantid, p.groupid, p.policyid, p.policyjson, COALESCE(e.executedat, 0) " +
		"FROM scalingpolicy p LEFT JOIN scheduleexecution e ON e.policyid = p.policyid WHERE p.policytype = $1"
	rows, err := pdb.sqldb.Query(query, models.PolicyTypeSchedule)
	if err != nil {
		pdb.logger.Error("list-schedule-policies", err, lager.Data{"query": query})
		return nil, err
	}
	defer rows.Close()

	schedules := []*models.SchedulePolicy{}
	for rows.Next() {
		var tenantID, groupID, policyID string
		var policyJSON []byte
		var executedAt int64
		if err = rows.Scan(&tenantID, &groupID, &policyID, &policyJSON, &executedAt); err != nil {
			pdb.logger.Error("list-schedule-policies-scan", err)
			return nil, err
		}
		policy := &models.ScalingPolicy{}
		if err = json.Unmarshal(policyJSON, policy); err != nil {
			pdb.logger.Error("unmarshal-policy", err, lager.Data{"policyId": policyID})
			return nil, err
		}
		if policy.Args == nil {
			continue
		}
		schedules = append(schedules, &models.SchedulePolicy{
			PolicyRef:  models.PolicyRef{TenantID: tenantID, GroupID: groupID, PolicyID: policyID},
			Args:       *policy.Args,
			Cooldown:   policy.Cooldown,
			ExecutedAt: executedAt,
		})
	}
	return schedules, nil
}

func (pdb *PolicySQLDB) UpdatePolicy(tenantID string, groupID string, policy *models.ScalingPolicy) error {
	policyJSON, err := json.Marshal(policy)
	if err != nil {
		return err
	}
	query := "UPDATE scalingpolicy SET policytype = $4, policyjson = $5 WHERE tenantid = $1 AND groupid = $2 AND policyid = $3"
	result, err := pdb.sqldb.Exec(query, tenantID, groupID, policy.ID, policy.Type, policyJSON)
	if err != nil {
		pdb.logger.Error("update-policy", err, lager.Data{"query": query, "policyId": policy.ID})
		return err
	}
	return noSuchPolicyOnZeroRows(result, policy.ID)
}

func (pdb *PolicySQLDB) DeletePolicy(tenantID string, groupID string, policyID string) error {
	if err := pdb.deleteCooldown(policyID); err != nil {
		return err
	}
	if err := pdb.deleteScheduleExecution(policyID); err != nil {
		return err
	}
	query := "DELETE FROM scalingpolicy WHERE tenantid = $1 AND groupid = $2 AND policyid = $3"
	result, err := pdb.sqldb.Exec(query, tenantID, groupID, policyID)
	if err != nil {
		pdb.logger.Error("delete-policy", err, lager.Data{"query": query, "policyId": policyID})
		return err
	}
	return noSuchPolicyOnZeroRows(result, policyID)
}

func (pdb *PolicySQLDB) DeleteGroupPolicies(tenantID string, groupID string) error {
	query := "DELETE FROM policycooldown WHERE policyid IN " +
		"(SELECT policyid FROM scalingpolicy WHERE tenantid = $1 AND groupid = $2)"
	if _, err := pdb.sqldb.Exec(query, tenantID, groupID); err != nil {
		pdb.logger.Error("delete-group-policy-cooldowns", err, lager.Data{"query": query, "groupId": groupID})
		return err
	}
	query = "DELETE FROM scheduleexecution WHERE policyid IN " +
		"(SELECT policyid FROM scalingpolicy WHERE tenantid = $1 AND groupid = $2)"
	if _, err := pdb.sqldb.Exec(query, tenantID, groupID); err != nil {
		pdb.logger.Error("delete-group-schedule-executions", err, lager.Data{"query": query, "groupId": groupID})
		return err
	}
	query = "DELETE FROM scalingpolicy WHERE tenantid = $1 AND groupid = $2"
	if _, err := pdb.sqldb.Exec(query, tenantID, groupID); err != nil {
		pdb.logger.Error("delete-group-policies", err, lager.Data{"query": query, "groupId": groupID})
		return err
	}
	return nil
}

func (pdb *PolicySQLDB) CanExecutePolicy(policyID string) (bool, int64, error) {
	query := "SELECT expireat FROM policycooldown WHERE policyid = $1"
	rows, err := pdb.sqldb.Query(query, policyID)
	if err != nil {
		pdb.logger.Error("can-execute-policy-query", err, lager.Data{"query": query, "policyId": policyID})
		return false, 0, err
	}
	defer rows.Close()

	var expireAt int64 = 0
	if rows.Next() {
		if err = rows.Scan(&expireAt); err != nil {
			pdb.logger.Error("can-execute-policy-scan", err, lager.Data{"query": query, "policyId": policyID})
			return false, expireAt, err
		}
		if expireAt < time.Now().UnixNano() {
			return true, expireAt, nil
		}
		return false, expireAt, nil
	}
	return true, expireAt, nil
}

func (pdb *PolicySQLDB) UpdatePolicyCooldownExpireTime(policyID string, expireAt int64) error {
	if err := pdb.deleteCooldown(policyID); err != nil {
		return err
	}
	_, err := pdb.sqldb.Exec("INSERT INTO policycooldown(policyid, expireat) VALUES($1, $2)", policyID, expireAt)
	if err != nil {
		pdb.logger.Error("update-policy-cooldown-insert", err, lager.Data{"policyId": policyID, "expireAt": expireAt})
		return err
	}
	return nil
}

// MarkScheduleExecuted records that an at policy has fired so it never fires
// again, surviving restarts.
func (pdb *PolicySQLDB) MarkScheduleExecuted(policyID string, executedAt int64) error {
	if err := pdb.deleteScheduleExecution(policyID); err != nil {
		return err
	}
	_, err := pdb.sqldb.Exec("INSERT INTO scheduleexecution(policyid, executedat) VALUES($1, $2)", policyID, executedAt)
	if err != nil {
		pdb.logger.Error("mark-schedule-executed-insert", err, lager.Data{"policyId": policyID, "executedAt": executedAt})
		return err
	}
	return nil
}

func (pdb *PolicySQLDB) deleteScheduleExecution(policyID string) error {
	_, err := pdb.sqldb.Exec("DELETE FROM scheduleexecution WHERE policyid = $1", policyID)
	if err != nil {
		pdb.logger.Error("delete-schedule-execution", err, lager.Data{"policyId": policyID})
	}
	return err
}

func (pdb *PolicySQLDB) deleteCooldown(policyID string) error {
	_, err := pdb.sqldb.Exec("DELETE FROM policycooldown WHERE policyid = $1", policyID)
	if err != nil {
		pdb.logger.Error("delete-policy-cooldown", err, lager.Data{"policyId": policyID})
	}
	return err
}

func (pdb *PolicySQLDB) EmitHealthMetrics(h healthendpoint.Health, cclock clock.Clock, interval time.Duration) {
	go func() {
		ticker := cclock.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C() {
			h.Set("openConnection_policyDB", float64(pdb.sqldb.Stats().OpenConnections))
		}
	}()
}

func noSuchPolicyOnZeroRows(result sql.Result, policyID string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &models.NoSuchPolicyError{PolicyID: policyID}
	}
	return nil
}
