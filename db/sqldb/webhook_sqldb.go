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

type WebhookSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sql.DB
}

func NewWebhookSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*WebhookSQLDB, error) {
	sqldb, err := sql.Open(db.PostgresDriverName, dbConfig.URL)
	if err != nil {
		logger.Error("open-webhook-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	err = sqldb.Ping()
	if err != nil {
		sqldb.Close()
		logger.Error("ping-webhook-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	sqldb.SetConnMaxLifetime(dbConfig.ConnectionMaxLifetime)
	sqldb.SetMaxIdleConns(dbConfig.MaxIdleConnections)
	sqldb.SetMaxOpenConns(dbConfig.MaxOpenConnections)

	return &WebhookSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (wdb *WebhookSQLDB) Close() error {
	err := wdb.sqldb.Close()
	if err != nil {
		wdb.logger.Error("close-webhook-db", err, lager.Data{"dbConfig": wdb.dbConfig})
		return err
	}
	return nil
}

func (wdb *WebhookSQLDB) CreateWebhooks(tenantID string, groupID string, policyID string, webhooks []*models.Webhook) error {
	tx, err := wdb.sqldb.Begin()
	if err != nil {
		wdb.logger.Error("create-webhooks-begin", err, lager.Data{"policyId": policyID})
		return err
	}
	query := "INSERT INTO webhook" +
		"(tenantid, groupid, policyid, webhookid, capabilityversion, capabilityhash, webhookjson) " +
		"VALUES($1, $2, $3, $4, $5, $6, $7)"
	for _, webhook := range webhooks {
		webhookJSON, err := json.Marshal(webhook)
		if err != nil {
			tx.Rollback()
			return err
		}
		if _, err = tx.Exec(query, tenantID, groupID, policyID, webhook.ID,
			webhook.Capability.Version, webhook.Capability.Hash, webhookJSON); err != nil {
			tx.Rollback()
			wdb.logger.Error("create-webhooks", err, lager.Data{"query": query, "webhookId": webhook.ID})
			return err
		}
	}
	return tx.Commit()
}

func (wdb *WebhookSQLDB) GetWebhook(tenantID string, groupID string, policyID string, webhookID string) (*models.Webhook, error) {
	query := "SELECT webhookjson FROM webhook WHERE tenantid = $1 AND groupid = $2 AND policyid = $3 AND webhookid = $4"
	var webhookJSON []byte
	err := wdb.sqldb.QueryRow(query, tenantID, groupID, policyID, webhookID).Scan(&webhookJSON)
	if err == sql.ErrNoRows {
		return nil, &models.NoSuchWebhookError{WebhookID: webhookID}
	}
	if err != nil {
		wdb.logger.Error("get-webhook", err, lager.Data{"query": query, "webhookId": webhookID})
		return nil, err
	}
	webhook := &models.Webhook{}
	if err = json.Unmarshal(webhookJSON, webhook); err != nil {
		wdb.logger.Error("unmarshal-webhook", err, lager.Data{"webhookId": webhookID})
		return nil, err
	}
	return webhook, nil
}

func (wdb *WebhookSQLDB) ListWebhooks(tenantID string, groupID string, policyID string) ([]*models.Webhook, error) {
	query := "SELECT webhookjson FROM webhook WHERE tenantid = $1 AND groupid = $2 AND policyid = $3"
	rows, err := wdb.sqldb.Query(query, tenantID, groupID, policyID)
	if err != nil {
		wdb.logger.Error("list-webhooks", err, lager.Data{"query": query, "policyId": policyID})
		return nil, err
	}
	defer rows.Close()

	webhooks := []*models.Webhook{}
	for rows.Next() {
		var webhookJSON []byte
		if err = rows.Scan(&webhookJSON); err != nil {
			wdb.logger.Error("list-webhooks-scan", err)
			return nil, err
		}
		webhook := &models.Webhook{}
		if err = json.Unmarshal(webhookJSON, webhook); err != nil {
			wdb.logger.Error("unmarshal-webhook", err, lager.Data{"policyId": policyID})
			return nil, err
		}
		webhooks = append(webhooks, webhook)
	}
	return webhooks, nil
}

// UpdateWebhook replaces name and metadata and, when the capability hash
// changed, atomically swaps the old execute URL for the new one.
func (wdb *WebhookSQLDB) UpdateWebhook(tenantID string, groupID string, policyID string, webhook *models.Webhook) error {
	webhookJSON, err := json.Marshal(webhook)
	if err != nil {
		return err
	}
	query := "UPDATE webhook SET capabilityversion = $5, capabilityhash = $6, webhookjson = $7 " +
		"WHERE tenantid = $1 AND groupid = $2 AND policyid = $3 AND webhookid = $4"
	result, err := wdb.sqldb.Exec(query, tenantID, groupID, policyID, webhook.ID,
		webhook.Capability.Version, webhook.Capability.Hash, webhookJSON)
	if err != nil {
		wdb.logger.Error("update-webhook", err, lager.Data{"query": query, "webhookId": webhook.ID})
		return err
	}
	return noSuchWebhookOnZeroRows(result, webhook.ID)
}

func (wdb *WebhookSQLDB) DeleteWebhook(tenantID string, groupID string, policyID string, webhookID string) error {
	query := "DELETE FROM webhook WHERE tenantid = $1 AND groupid = $2 AND policyid = $3 AND webhookid = $4"
	result, err := wdb.sqldb.Exec(query, tenantID, groupID, policyID, webhookID)
	if err != nil {
		wdb.logger.Error("delete-webhook", err, lager.Data{"query": query, "webhookId": webhookID})
		return err
	}
	return noSuchWebhookOnZeroRows(result, webhookID)
}

// GetPolicyByCapability resolves an anonymous execute URL. The webhook table
// carries a unique index on (capabilityversion, capabilityhash).
func (wdb *WebhookSQLDB) GetPolicyByCapability(version string, hash string) (*models.PolicyRef, error) {
	query := "SELECT tenantid, groupid, policyid FROM webhook WHERE capabilityversion = $1 AND capabilityhash = $2"
	ref := &models.PolicyRef{}
	err := wdb.sqldb.QueryRow(query, version, hash).Scan(&ref.TenantID, &ref.GroupID, &ref.PolicyID)
	if err == sql.ErrNoRows {
		return nil, &models.NoSuchWebhookError{WebhookID: hash}
	}
	if err != nil {
		wdb.logger.Error("get-policy-by-capability", err, lager.Data{"query": query})
		return nil, err
	}
	return ref, nil
}

func (wdb *WebhookSQLDB) EmitHealthMetrics(h healthendpoint.Health, cclock clock.Clock, interval time.Duration) {
	go func() {
		ticker := cclock.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C() {
			h.Set("openConnection_webhookDB", float64(wdb.sqldb.Stats().OpenConnections))
		}
	}()
}

func noSuchWebhookOnZeroRows(result sql.Result, webhookID string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &models.NoSuchWebhookError{WebhookID: webhookID}
	}
	return nil
}
