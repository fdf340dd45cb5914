package config

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"autoscale/db"
	"autoscale/helpers"
	"autoscale/models"
	"autoscale/nova"
)

const (
	DefaultLoggingLevel = "info"

	DefaultServerPort = 8080
	DefaultHealthPort = 8081

	DefaultLockSize               = 32
	DefaultMaxConsecutiveFailures = 3
	DefaultMonitorInterval        = 10 * time.Second

	DefaultSyncInterval = 10 * time.Second
	DefaultFiringWindow = 10 * time.Second

	DefaultMaxGroups   = 1000
	DefaultMaxPolicies = 25
	DefaultMaxWebhooks = 25

	DefaultRetryInterval      = 5 * time.Second
	DefaultDBLockTTL          = 15 * time.Second
	DefaultHealthEmitInterval = 15 * time.Second
)

type ServerConfig struct {
	Port int             `yaml:"port"`
	TLS  models.TLSCerts `yaml:"tls"`
}

type DBConfig struct {
	GroupDB   db.DatabaseConfig `yaml:"group_db"`
	PolicyDB  db.DatabaseConfig `yaml:"policy_db"`
	WebhookDB db.DatabaseConfig `yaml:"webhook_db"`
	LockDB    db.DatabaseConfig `yaml:"lock_db"`
}

type ConvergenceConfig struct {
	LockSize               int           `yaml:"lock_size"`
	MaxConsecutiveFailures int           `yaml:"max_consecutive_failures"`
	MonitorInterval        time.Duration `yaml:"monitor_interval"`
}

type SchedulerConfig struct {
	SyncInterval time.Duration `yaml:"sync_interval"`
	FiringWindow time.Duration `yaml:"firing_window"`
}

type QuotaConfig struct {
	MaxGroups   int `yaml:"max_groups"`
	MaxPolicies int `yaml:"max_policies"`
	MaxWebhooks int `yaml:"max_webhooks"`
}

type DBLockConfig struct {
	LockTTL           time.Duration `yaml:"ttl"`
	LockRetryInterval time.Duration `yaml:"retry_interval"`
}

type Config struct {
	Logging      helpers.LoggingConfig  `yaml:"logging"`
	Server       ServerConfig           `yaml:"server"`
	Health       models.HealthConfig    `yaml:"health"`
	DB           DBConfig               `yaml:"db"`
	Nova         nova.Config            `yaml:"cloud"`
	Convergence  ConvergenceConfig      `yaml:"convergence"`
	Scheduler    SchedulerConfig        `yaml:"scheduler"`
	Quota        QuotaConfig            `yaml:"quota"`
	RateLimit    models.RateLimitConfig `yaml:"rate_limit"`
	EnableDBLock bool                   `yaml:"enable_db_lock"`
	DBLock       DBLockConfig           `yaml:"db_lock"`
}

func LoadConfig(reader io.Reader) (*Config, error) {
	conf := &Config{
		Logging: helpers.LoggingConfig{Level: DefaultLoggingLevel},
		Server:  ServerConfig{Port: DefaultServerPort},
		Health: models.HealthConfig{
			Port:         DefaultHealthPort,
			EmitInterval: DefaultHealthEmitInterval,
		},
		Nova: nova.Config{
			MaxRetries:                 nova.DefaultMaxRetries,
			BreakerConsecutiveFailures: nova.DefaultBreakerConsecutiveFailures,
			BackOffInitialInterval:     nova.DefaultBackOffInitialInterval,
			BackOffMaxInterval:         nova.DefaultBackOffMaxInterval,
		},
		Convergence: ConvergenceConfig{
			LockSize:               DefaultLockSize,
			MaxConsecutiveFailures: DefaultMaxConsecutiveFailures,
			MonitorInterval:        DefaultMonitorInterval,
		},
		Scheduler: SchedulerConfig{
			SyncInterval: DefaultSyncInterval,
			FiringWindow: DefaultFiringWindow,
		},
		Quota: QuotaConfig{
			MaxGroups:   DefaultMaxGroups,
			MaxPolicies: DefaultMaxPolicies,
			MaxWebhooks: DefaultMaxWebhooks,
		},
		DBLock: DBLockConfig{
			LockTTL:           DefaultDBLockTTL,
			LockRetryInterval: DefaultRetryInterval,
		},
	}

	bytes, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	err = yaml.UnmarshalStrict(bytes, conf)
	if err != nil {
		return nil, err
	}

	conf.Logging.Level = strings.ToLower(conf.Logging.Level)

	return conf, nil
}

func (c *Config) Validate() error {
	if c.DB.GroupDB.URL == "" {
		return fmt.Errorf("Configuration error: db.group_db.url is empty")
	}
	if c.DB.PolicyDB.URL == "" {
		return fmt.Errorf("Configuration error: db.policy_db.url is empty")
	}
	if c.DB.WebhookDB.URL == "" {
		return fmt.Errorf("Configuration error: db.webhook_db.url is empty")
	}
	if c.EnableDBLock && c.DB.LockDB.URL == "" {
		return fmt.Errorf("Configuration error: db.lock_db.url is empty")
	}
	if err := c.Nova.Validate(); err != nil {
		return err
	}
	if c.Convergence.LockSize <= 0 {
		return fmt.Errorf("Configuration error: convergence.lock_size is less than or equal to 0")
	}
	if c.Convergence.MaxConsecutiveFailures <= 0 {
		return fmt.Errorf("Configuration error: convergence.max_consecutive_failures is less than or equal to 0")
	}
	if c.Convergence.MonitorInterval <= time.Duration(0) {
		return fmt.Errorf("Configuration error: convergence.monitor_interval is less than or equal to 0")
	}
	if c.Scheduler.SyncInterval <= time.Duration(0) {
		return fmt.Errorf("Configuration error: scheduler.sync_interval is less than or equal to 0")
	}
	if c.Quota.MaxGroups <= 0 || c.Quota.MaxPolicies <= 0 || c.Quota.MaxWebhooks <= 0 {
		return fmt.Errorf("Configuration error: quota limits must be positive")
	}
	if err := c.Health.Validate(); err != nil {
		return err
	}
	return nil
}
