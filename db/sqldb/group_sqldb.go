package sqldb

import (
	"database/sql"
	"encoding/json"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	_ "github.com/lib/pq"

	"autoscale/db"
	"autoscale/healthendpoint"
	"autoscale/models"
)

type GroupSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sql.DB
}

func NewGroupSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*GroupSQLDB, error) {
	sqldb, err := sql.Open(db.PostgresDriverName, dbConfig.URL)
	if err != nil {
		logger.Error("open-group-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	err = sqldb.Ping()
	if err != nil {
		sqldb.Close()
		logger.Error("ping-group-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	sqldb.SetConnMaxLifetime(dbConfig.ConnectionMaxLifetime)
	sqldb.SetMaxIdleConns(dbConfig.MaxIdleConnections)
	sqldb.SetMaxOpenConns(dbConfig.MaxOpenConnections)

	return &GroupSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (gdb *GroupSQLDB) Close() error {
	err := gdb.sqldb.Close()
	if err != nil {
		gdb.logger.Error("close-group-db", err, lager.Data{"dbConfig": gdb.dbConfig})
		return err
	}
	return nil
}

func (gdb *GroupSQLDB) CreateGroup(group *models.ScalingGroup) error {
	confJSON, err := json.Marshal(group.Config)
	if err != nil {
		return err
	}
	launchJSON, err := json.Marshal(group.LaunchConfig)
	if err != nil {
		return err
	}
	stateJSON, err := json.Marshal(group.State)
	if err != nil {
		return err
	}

	query := "INSERT INTO scalinggroup(tenantid, groupid, groupconfig, launchconfig, state, pendingcount) " +
		"VALUES($1, $2, $3, $4, $5, $6)"
	_, err = gdb.sqldb.Exec(query, group.TenantID, group.ID, confJSON, launchJSON, stateJSON,
		len(group.State.Pending)+len(group.State.Draining))
	if err != nil {
		gdb.logger.Error("create-group", err, lager.Data{"query": query, "groupId": group.ID})
	}
	return err
}

func (gdb *GroupSQLDB) GetGroup(tenantID string, groupID string) (*models.ScalingGroup, error) {
	query := "SELECT groupconfig, launchconfig, state FROM scalinggroup WHERE tenantid = $1 AND groupid = $2"
	var confJSON, launchJSON, stateJSON []byte
	err := gdb.sqldb.QueryRow(query, tenantID, groupID).Scan(&confJSON, &launchJSON, &stateJSON)
	if err == sql.ErrNoRows {
		return nil, &models.NoSuchScalingGroupError{GroupID: groupID}
	}
	if err != nil {
		gdb.logger.Error("get-group", err, lager.Data{"query": query, "groupId": groupID})
		return nil, err
	}
	return gdb.buildGroup(tenantID, groupID, confJSON, launchJSON, stateJSON)
}

func (gdb *GroupSQLDB) buildGroup(tenantID string, groupID string, confJSON, launchJSON, stateJSON []byte) (*models.ScalingGroup, error) {
	group := &models.ScalingGroup{
		ID:       groupID,
		TenantID: tenantID,
	}
	if err := json.Unmarshal(confJSON, &group.Config); err != nil {
		gdb.logger.Error("unmarshal-group-config", err, lager.Data{"groupId": groupID})
		return nil, err
	}
	if err := json.Unmarshal(launchJSON, &group.LaunchConfig); err != nil {
		gdb.logger.Error("unmarshal-launch-config", err, lager.Data{"groupId": groupID})
		return nil, err
	}
	if err := json.Unmarshal(stateJSON, &group.State); err != nil {
		gdb.logger.Error("unmarshal-group-state", err, lager.Data{"groupId": groupID})
		return nil, err
	}
	return group, nil
}

func (gdb *GroupSQLDB) ListGroups(tenantID string) ([]*models.ScalingGroup, error) {
	query := "SELECT groupid, groupconfig, launchconfig, state FROM scalinggroup WHERE tenantid = $1"
	rows, err := gdb.sqldb.Query(query, tenantID)
	if err != nil {
		gdb.logger.Error("list-groups", err, lager.Data{"query": query, "tenantId": tenantID})
		return nil, err
	}
	defer rows.Close()

	groups := []*models.ScalingGroup{}
	for rows.Next() {
		var groupID string
		var confJSON, launchJSON, stateJSON []byte
		if err = rows.Scan(&groupID, &confJSON, &launchJSON, &stateJSON); err != nil {
			gdb.logger.Error("list-groups-scan", err)
			return nil, err
		}
		group, err := gdb.buildGroup(tenantID, groupID, confJSON, launchJSON, stateJSON)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (gdb *GroupSQLDB) ListGroupsWithPending() ([]*models.ScalingGroup, error) {
	query := "SELECT tenantid, groupid, groupconfig, launchconfig, state FROM scalinggroup WHERE pendingcount > 0"
	rows, err := gdb.sqldb.Query(query)
	if err != nil {
		gdb.logger.Error("list-groups-with-pending", err, lager.Data{"query": query})
		return nil, err
	}
	defer rows.Close()

	groups := []*models.ScalingGroup{}
	for rows.Next() {
		var tenantID, groupID string
		var confJSON, launchJSON, stateJSON []byte
		if err = rows.Scan(&tenantID, &groupID, &confJSON, &launchJSON, &stateJSON); err != nil {
			gdb.logger.Error("list-groups-with-pending-scan", err)
			return nil, err
		}
		group, err := gdb.buildGroup(tenantID, groupID, confJSON, launchJSON, stateJSON)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (gdb *GroupSQLDB) CountGroups(tenantID string) (int, error) {
	var count int
	err := gdb.sqldb.QueryRow("SELECT COUNT(*) FROM scalinggroup WHERE tenantid = $1", tenantID).Scan(&count)
	if err != nil {
		gdb.logger.Error("count-groups", err, lager.Data{"tenantId": tenantID})
		return 0, err
	}
	return count, nil
}

func (gdb *GroupSQLDB) UpdateGroupConfiguration(tenantID string, groupID string, conf models.GroupConfiguration) error {
	confJSON, err := json.Marshal(conf)
	if err != nil {
		return err
	}
	query := "UPDATE scalinggroup SET groupconfig = $3 WHERE tenantid = $1 AND groupid = $2"
	result, err := gdb.sqldb.Exec(query, tenantID, groupID, confJSON)
	if err != nil {
		gdb.logger.Error("update-group-configuration", err, lager.Data{"query": query, "groupId": groupID})
		return err
	}
	return noSuchGroupOnZeroRows(result, groupID)
}

func (gdb *GroupSQLDB) UpdateLaunchConfiguration(tenantID string, groupID string, launch models.LaunchConfiguration) error {
	launchJSON, err := json.Marshal(launch)
	if err != nil {
		return err
	}
	query := "UPDATE scalinggroup SET launchconfig = $3 WHERE tenantid = $1 AND groupid = $2"
	result, err := gdb.sqldb.Exec(query, tenantID, groupID, launchJSON)
	if err != nil {
		gdb.logger.Error("update-launch-configuration", err, lager.Data{"query": query, "groupId": groupID})
		return err
	}
	return noSuchGroupOnZeroRows(result, groupID)
}

// SaveGroupState replaces the mutable state sub-document in one statement;
// the convergence engine's per-group lock makes the read-modify-write safe.
func (gdb *GroupSQLDB) SaveGroupState(tenantID string, groupID string, state *models.GroupState) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return err
	}
	query := "UPDATE scalinggroup SET state = $3, pendingcount = $4 WHERE tenantid = $1 AND groupid = $2"
	result, err := gdb.sqldb.Exec(query, tenantID, groupID, stateJSON, len(state.Pending)+len(state.Draining))
	if err != nil {
		gdb.logger.Error("save-group-state", err, lager.Data{"query": query, "groupId": groupID})
		return err
	}
	return noSuchGroupOnZeroRows(result, groupID)
}

func (gdb *GroupSQLDB) DeleteGroup(tenantID string, groupID string) error {
	_, err := gdb.sqldb.Exec("DELETE FROM scalingcooldown WHERE groupid = $1", groupID)
	if err != nil {
		gdb.logger.Error("delete-group-cooldown", err, lager.Data{"groupId": groupID})
		return err
	}
	query := "DELETE FROM scalinggroup WHERE tenantid = $1 AND groupid = $2"
	result, err := gdb.sqldb.Exec(query, tenantID, groupID)
	if err != nil {
		gdb.logger.Error("delete-group", err, lager.Data{"query": query, "groupId": groupID})
		return err
	}
	return noSuchGroupOnZeroRows(result, groupID)
}

func (gdb *GroupSQLDB) CanScaleGroup(groupID string) (bool, int64, error) {
	query := "SELECT expireat FROM scalingcooldown WHERE groupid = $1"
	rows, err := gdb.sqldb.Query(query, groupID)
	if err != nil {
		gdb.logger.Error("can-scale-group-query", err, lager.Data{"query": query, "groupId": groupID})
		return false, 0, err
	}
	defer rows.Close()

	var expireAt int64 = 0
	if rows.Next() {
		if err = rows.Scan(&expireAt); err != nil {
			gdb.logger.Error("can-scale-group-scan", err, lager.Data{"query": query, "groupId": groupID})
			return false, expireAt, err
		}
		if expireAt < time.Now().UnixNano() {
			return true, expireAt, nil
		}
		return false, expireAt, nil
	}
	return true, expireAt, nil
}

func (gdb *GroupSQLDB) UpdateGroupCooldownExpireTime(groupID string, expireAt int64) error {
	_, err := gdb.sqldb.Exec("DELETE FROM scalingcooldown WHERE groupid = $1", groupID)
	if err != nil {
		gdb.logger.Error("update-group-cooldown-delete", err, lager.Data{"groupId": groupID})
		return err
	}
	_, err = gdb.sqldb.Exec("INSERT INTO scalingcooldown(groupid, expireat) VALUES($1, $2)", groupID, expireAt)
	if err != nil {
		gdb.logger.Error("update-group-cooldown-insert", err, lager.Data{"groupId": groupID, "expireAt": expireAt})
		return err
	}
	return nil
}

func (gdb *GroupSQLDB) SaveScalingHistory(history *models.ScalingHistory) error {
	query := "INSERT INTO scalinghistory" +
		"(tenantid, groupid, timestamp, reason, status, olddesired, newdesired, message, error) " +
		"VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)"
	_, err := gdb.sqldb.Exec(query, history.TenantID, history.GroupID, history.Timestamp, history.Reason,
		history.Status, history.OldDesired, history.NewDesired, history.Message, history.Error)
	if err != nil {
		gdb.logger.Error("save-scaling-history", err, lager.Data{"query": query, "history": history})
	}
	return err
}

func (gdb *GroupSQLDB) RetrieveScalingHistories(tenantID string, groupID string, start int64, end int64, orderType db.OrderType) ([]*models.ScalingHistory, error) {
	orderStr := db.ASCSTR
	if orderType == db.DESC {
		orderStr = db.DESCSTR
	}
	if end <= 0 {
		end = time.Now().UnixNano()
	}

	query := "SELECT timestamp, reason, status, olddesired, newdesired, message, error FROM scalinghistory " +
		"WHERE tenantid = $1 AND groupid = $2 AND timestamp >= $3 AND timestamp <= $4 ORDER BY timestamp " + orderStr
	rows, err := gdb.sqldb.Query(query, tenantID, groupID, start, end)
	if err != nil {
		gdb.logger.Error("retrieve-scaling-histories", err, lager.Data{"query": query, "groupId": groupID})
		return nil, err
	}
	defer rows.Close()

	histories := []*models.ScalingHistory{}
	for rows.Next() {
		history := &models.ScalingHistory{TenantID: tenantID, GroupID: groupID}
		if err = rows.Scan(&history.Timestamp, &history.Reason, &history.Status,
			&history.OldDesired, &history.NewDesired, &history.Message, &history.Error); err != nil {
			gdb.logger.Error("retrieve-scaling-histories-scan", err)
			return nil, err
		}
		histories = append(histories, history)
	}
	return histories, nil
}

func (gdb *GroupSQLDB) EmitHealthMetrics(h healthendpoint.Health, cclock clock.Clock, interval time.Duration) {
	go func() {
		ticker := cclock.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C() {
			h.Set("openConnection_groupDB", float64(gdb.sqldb.Stats().OpenConnections))
		}
	}()
}

func noSuchGroupOnZeroRows(result sql.Result, groupID string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &models.NoSuchScalingGroupError{GroupID: groupID}
	}
	return nil
}
