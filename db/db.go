package db

import (
	"time"

	"code.cloudfoundry.org/clock"

	"autoscale/healthendpoint"
	"autoscale/models"
)

const PostgresDriverName = "postgres"

type OrderType uint8

const (
	DESC OrderType = iota
	ASC
)
const (
	DESCSTR string = "DESC"
	ASCSTR  string = "ASC"
)

type DatabaseConfig struct {
	URL                   string        `yaml:"url"`
	MaxOpenConnections    int           `yaml:"max_open_connections"`
	MaxIdleConnections    int           `yaml:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// GroupDB is the authoritative store for scaling groups. Readers must
// tolerate stale reads; the convergence engine re-reads under its per-group
// lock before deciding.
type GroupDB interface {
	CreateGroup(group *models.ScalingGroup) error
	GetGroup(tenantID string, groupID string) (*models.ScalingGroup, error)
	ListGroups(tenantID string) ([]*models.ScalingGroup, error)
	ListGroupsWithPending() ([]*models.ScalingGroup, error)
	CountGroups(tenantID string) (int, error)
	UpdateGroupConfiguration(tenantID string, groupID string, conf models.GroupConfiguration) error
	UpdateLaunchConfiguration(tenantID string, groupID string, launch models.LaunchConfiguration) error
	SaveGroupState(tenantID string, groupID string, state *models.GroupState) error
	DeleteGroup(tenantID string, groupID string) error
	CanScaleGroup(groupID string) (bool, int64, error)
	UpdateGroupCooldownExpireTime(groupID string, expireAt int64) error
	SaveScalingHistory(history *models.ScalingHistory) error
	RetrieveScalingHistories(tenantID string, groupID string, start int64, end int64, orderType OrderType) ([]*models.ScalingHistory, error)
	Close() error
	EmitHealthMetrics(h healthendpoint.Health, cclock clock.Clock, interval time.Duration)
}

type PolicyDB interface {
	CreatePolicies(tenantID string, groupID string, policies []*models.ScalingPolicy) error
	GetPolicy(tenantID string, groupID string, policyID string) (*models.ScalingPolicy, error)
	ListPolicies(tenantID string, groupID string) ([]*models.ScalingPolicy, error)
	ListSchedulePolicies() ([]*models.SchedulePolicy, error)
	UpdatePolicy(tenantID string, groupID string, policy *models.ScalingPolicy) error
	DeletePolicy(tenantID string, groupID string, policyID string) error
	DeleteGroupPolicies(tenantID string, groupID string) error
	CanExecutePolicy(policyID string) (bool, int64, error)
	UpdatePolicyCooldownExpireTime(policyID string, expireAt int64) error
	MarkScheduleExecuted(policyID string, executedAt int64) error
	Close() error
	EmitHealthMetrics(h healthendpoint.Health, cclock clock.Clock, interval time.Duration)
}

type WebhookDB interface {
	CreateWebhooks(tenantID string, groupID string, policyID string, webhooks []*models.Webhook) error
	GetWebhook(tenantID string, groupID string, policyID string, webhookID string) (*models.Webhook, error)
	ListWebhooks(tenantID string, groupID string, policyID string) ([]*models.Webhook, error)
	UpdateWebhook(tenantID string, groupID string, policyID string, webhook *models.Webhook) error
	DeleteWebhook(tenantID string, groupID string, policyID string, webhookID string) error
	GetPolicyByCapability(version string, hash string) (*models.PolicyRef, error)
	Close() error
	EmitHealthMetrics(h healthendpoint.Health, cclock clock.Clock, interval time.Duration)
}

type LockDB interface {
	Lock(lock *models.Lock) (bool, error)
	Release(owner string) error
	Close() error
}
