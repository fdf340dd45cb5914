package nova

import (
	"fmt"
	"time"
)

const (
	DefaultMaxRetries                 = 3
	DefaultBreakerConsecutiveFailures = 10
	DefaultBackOffInitialInterval     = 500 * time.Millisecond
	DefaultBackOffMaxInterval         = 30 * time.Second
)

type Config struct {
	IdentityURL                string        `yaml:"identity_url"`
	Username                   string        `yaml:"username"`
	APIKey                     string        `yaml:"api_key"`
	ServersURL                 string        `yaml:"servers_url"`
	LoadBalancersURL           string        `yaml:"load_balancers_url"`
	SkipSSLValidation          bool          `yaml:"skip_ssl_validation"`
	MaxRetries                 int           `yaml:"max_retries"`
	BreakerConsecutiveFailures int64         `yaml:"breaker_consecutive_failures"`
	BackOffInitialInterval     time.Duration `yaml:"back_off_initial_interval"`
	BackOffMaxInterval         time.Duration `yaml:"back_off_max_interval"`
}

func (c *Config) Validate() error {
	if c.IdentityURL == "" {
		return fmt.Errorf("Configuration error: cloud identity_url is empty")
	}
	if c.Username == "" {
		return fmt.Errorf("Configuration error: cloud username is empty")
	}
	if c.APIKey == "" {
		return fmt.Errorf("Configuration error: cloud api_key is empty")
	}
	if c.ServersURL == "" {
		return fmt.Errorf("Configuration error: cloud servers_url is empty")
	}
	if c.LoadBalancersURL == "" {
		return fmt.Errorf("Configuration error: cloud load_balancers_url is empty")
	}
	return nil
}
