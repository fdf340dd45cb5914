package nova

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"sync"
	"time"

	"code.cloudfoundry.org/cfhttp"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/cenk/backoff"
	backoffv4 "github.com/cenkalti/backoff/v4"
	circuit "github.com/rubyist/circuitbreaker"

	"autoscale/helpers"
	"autoscale/models"
)

const (
	PathTokens                                   = "/v2.0/tokens"
	TimeToRefreshBeforeTokenExpire time.Duration = 10 * time.Minute

	ServerStatusBuild  = "BUILD"
	ServerStatusActive = "ACTIVE"
	ServerStatusError  = "ERROR"
)

type EntityHandle struct {
	ID string
}

// Client is the actuator for a scaling group's entities. A failure is always
// scoped to the single entity the call was about; the convergence engine is
// responsible for aggregating failures across a pass.
type Client interface {
	Login() error
	RefreshAuthToken() (string, error)
	CreateServer(launch *models.LaunchConfiguration) (*EntityHandle, error)
	DeleteServer(entityID string, drainingTimeoutSeconds int) error
	GetServerStatus(entityID string) (string, error)
	AttachToLoadBalancer(entityID string, lb models.LoadBalancer) error
	DetachFromLoadBalancer(entityID string, lb models.LoadBalancer) error
}

// APIError is a non-2xx response from the cloud API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cloud api error: status %d: %s", e.StatusCode, e.Message)
}

// IsIrrecoverable reports whether err is a condition convergence cannot
// retry its way out of, such as a referenced image or load balancer having
// been deleted out-of-band. Rate limiting and request timeouts stay
// retryable.
func IsIrrecoverable(err error) bool {
	apiErr, ok := err.(*APIError)
	if !ok {
		return false
	}
	if apiErr.StatusCode == http.StatusRequestTimeout || apiErr.StatusCode == http.StatusTooManyRequests {
		return false
	}
	return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
}

func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

type tokens struct {
	AccessToken string
	ExpiresAt   time.Time
}

type client struct {
	logger     lager.Logger
	conf       *Config
	clk        clock.Clock
	httpClient *http.Client
	breaker    *circuit.Breaker
	maxRetries uint64

	lock   *sync.Mutex
	tokens tokens
}

func NewClient(conf *Config, logger lager.Logger, clk clock.Clock) Client {
	c := &client{
		logger:     logger,
		conf:       conf,
		clk:        clk,
		lock:       &sync.Mutex{},
		maxRetries: uint64(conf.MaxRetries),
	}
	if c.maxRetries == 0 {
		c.maxRetries = DefaultMaxRetries
	}

	c.httpClient = cfhttp.NewClient()
	c.httpClient.Transport = helpers.NewTransport(&tls.Config{InsecureSkipVerify: conf.SkipSSLValidation})

	bf := backoff.NewExponentialBackOff()
	if conf.BackOffInitialInterval > 0 {
		bf.InitialInterval = conf.BackOffInitialInterval
	} else {
		bf.InitialInterval = DefaultBackOffInitialInterval
	}
	if conf.BackOffMaxInterval > 0 {
		bf.MaxInterval = conf.BackOffMaxInterval
	} else {
		bf.MaxInterval = DefaultBackOffMaxInterval
	}
	bf.MaxElapsedTime = 0
	consecutiveFailures := conf.BreakerConsecutiveFailures
	if consecutiveFailures == 0 {
		consecutiveFailures = DefaultBreakerConsecutiveFailures
	}
	c.breaker = circuit.NewBreakerWithOptions(&circuit.Options{
		BackOff:    bf,
		ShouldTrip: circuit.ConsecutiveTripFunc(consecutiveFailures),
	})

	return c
}

type authRequest struct {
	Auth struct {
		APIKeyCredentials struct {
			Username string `json:"username"`
			APIKey   string `json:"apiKey"`
		} `json:"RAX-KSKEY:apiKeyCredentials"`
	} `json:"auth"`
}

type authResponse struct {
	Access struct {
		Token struct {
			ID      string `json:"id"`
			Expires string `json:"expires"`
		} `json:"token"`
	} `json:"access"`
}

func (c *client) Login() error {
	_, err := c.RefreshAuthToken()
	return err
}

func (c *client) RefreshAuthToken() (string, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.tokens.AccessToken != "" && c.clk.Now().Add(TimeToRefreshBeforeTokenExpire).Before(c.tokens.ExpiresAt) {
		return c.tokens.AccessToken, nil
	}

	var req authRequest
	req.Auth.APIKeyCredentials.Username = c.conf.Username
	req.Auth.APIKeyCredentials.APIKey = c.conf.APIKey
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Post(c.conf.IdentityURL+PathTokens, "application/json", bytes.NewReader(body))
	if err != nil {
		c.logger.Error("request-token", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := ioutil.ReadAll(resp.Body)
		err = &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
		c.logger.Error("request-token-non-200", err)
		return "", err
	}

	var auth authResponse
	err = json.NewDecoder(resp.Body).Decode(&auth)
	if err != nil {
		c.logger.Error("decode-token-response", err)
		return "", err
	}

	expiresAt, err := time.Parse(time.RFC3339, auth.Access.Token.Expires)
	if err != nil {
		c.logger.Error("parse-token-expiry", err)
		return "", err
	}
	c.tokens = tokens{AccessToken: auth.Access.Token.ID, ExpiresAt: expiresAt}
	return c.tokens.AccessToken, nil
}

type createServerRequest struct {
	Server struct {
		Name        string                   `json:"name,omitempty"`
		ImageRef    string                   `json:"imageRef"`
		FlavorRef   string                   `json:"flavorRef"`
		Personality []models.PersonalityFile `json:"personality,omitempty"`
		Metadata    map[string]string        `json:"metadata,omitempty"`
		Networks    []models.Network         `json:"networks,omitempty"`
	} `json:"server"`
}

type createServerResponse struct {
	Server struct {
		ID string `json:"id"`
	} `json:"server"`
}

func (c *client) CreateServer(launch *models.LaunchConfiguration) (*EntityHandle, error) {
	var req createServerRequest
	req.Server.Name = launch.Server.Name
	req.Server.ImageRef = launch.Server.ImageRef
	req.Server.FlavorRef = launch.Server.FlavorRef
	req.Server.Personality = launch.Server.Personality
	req.Server.Metadata = launch.Server.Metadata
	req.Server.Networks = launch.Server.Networks

	var resp createServerResponse
	err := c.do(http.MethodPost, c.conf.ServersURL+"/servers", &req, &resp)
	if err != nil {
		return nil, err
	}
	return &EntityHandle{ID: resp.Server.ID}, nil
}

func (c *client) DeleteServer(entityID string, drainingTimeoutSeconds int) error {
	url := fmt.Sprintf("%s/servers/%s", c.conf.ServersURL, entityID)
	if drainingTimeoutSeconds > 0 {
		url = fmt.Sprintf("%s?draining_timeout=%d", url, drainingTimeoutSeconds)
	}
	return c.do(http.MethodDelete, url, nil, nil)
}

type getServerResponse struct {
	Server struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"server"`
}

func (c *client) GetServerStatus(entityID string) (string, error) {
	var resp getServerResponse
	err := c.do(http.MethodGet, fmt.Sprintf("%s/servers/%s", c.conf.ServersURL, entityID), nil, &resp)
	if err != nil {
		return "", err
	}
	return resp.Server.Status, nil
}

type lbNodeRequest struct {
	Nodes []lbNode `json:"nodes"`
}

type lbNode struct {
	ServerID  string `json:"serverId"`
	Port      int    `json:"port,omitempty"`
	Condition string `json:"condition"`
}

func (c *client) AttachToLoadBalancer(entityID string, lb models.LoadBalancer) error {
	req := &lbNodeRequest{
		Nodes: []lbNode{{ServerID: entityID, Port: lb.Port, Condition: "ENABLED"}},
	}
	url := fmt.Sprintf("%s/loadbalancers/%s/nodes", c.conf.LoadBalancersURL, lb.LoadBalancerID)
	return c.do(http.MethodPost, url, req, nil)
}

func (c *client) DetachFromLoadBalancer(entityID string, lb models.LoadBalancer) error {
	url := fmt.Sprintf("%s/loadbalancers/%s/nodes/%s", c.conf.LoadBalancersURL, lb.LoadBalancerID, entityID)
	return c.do(http.MethodDelete, url, nil, nil)
}

// do issues one API call through the circuit breaker, retrying transient
// failures with exponential backoff. 4xx responses are returned immediately
// and do not count against the breaker's failure threshold.
func (c *client) do(method string, url string, requestBody interface{}, responseBody interface{}) error {
	if !c.breaker.Ready() {
		return circuit.ErrBreakerOpen
	}

	operation := func() error {
		err := c.doOnce(method, url, requestBody, responseBody)
		if err != nil {
			if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode < 500 &&
				apiErr.StatusCode != http.StatusRequestTimeout && apiErr.StatusCode != http.StatusTooManyRequests {
				return backoffv4.Permanent(err)
			}
			return err
		}
		return nil
	}
	err := backoffv4.Retry(operation, backoffv4.WithMaxRetries(backoffv4.NewExponentialBackOff(), c.maxRetries))
	if permanent, ok := err.(*backoffv4.PermanentError); ok {
		return permanent.Err
	}
	if err != nil {
		if apiErr, ok := err.(*APIError); !ok || apiErr.StatusCode >= 500 {
			c.breaker.Fail()
		}
		return err
	}
	c.breaker.Success()
	return nil
}

func (c *client) doOnce(method string, url string, requestBody interface{}, responseBody interface{}) error {
	token, err := c.RefreshAuthToken()
	if err != nil {
		return err
	}

	var reader *bytes.Reader
	if requestBody != nil {
		raw, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Auth-Token", token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("cloud-api-request", err, lager.Data{"method": method, "url": url})
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := ioutil.ReadAll(resp.Body)
		err = &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
		c.logger.Error("cloud-api-non-2xx", err, lager.Data{"method": method, "url": url})
		return err
	}

	if responseBody != nil {
		err = json.NewDecoder(resp.Body).Decode(responseBody)
		if err != nil {
			c.logger.Error("cloud-api-decode-response", err, lager.Data{"method": method, "url": url})
			return err
		}
	}
	return nil
}
