package models

import (
	"fmt"
	"time"
)

const (
	GroupStatusActive   = "ACTIVE"
	GroupStatusError    = "ERROR"
	GroupStatusDeleting = "DELETING"

	EntityStateBuilding = "building"
	EntityStateActive   = "active"

	LaunchTypeServer = "launch_server"

	LoadBalancerTypeCLB         = "CloudLoadBalancer"
	LoadBalancerTypeRackConnect = "RackConnectV3"

	MaxEntitiesDefault = 1000
	MaxEntitiesLimit   = 1000
	MaxCooldownSeconds = 86400

	MinDrainingTimeoutSeconds = 30
	MaxDrainingTimeoutSeconds = 3600
)

// TimestampFormat is the wire format for all timestamps: ISO-8601 with
// seconds and an explicit UTC offset.
const TimestampFormat = time.RFC3339

type GroupConfiguration struct {
	Name        string            `json:"name"`
	Cooldown    int               `json:"cooldown"`
	MinEntities int               `json:"minEntities"`
	MaxEntities int               `json:"maxEntities"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// DefaultGroupConfiguration carries the documented defaults. Configuration
// updates have full-replace semantics: handlers unmarshal the request body
// over a copy of this value so that absent optional fields reset to their
// defaults rather than keeping their previous values.
func DefaultGroupConfiguration() GroupConfiguration {
	return GroupConfiguration{
		MaxEntities: MaxEntitiesDefault,
	}
}

func (c *GroupConfiguration) Validate() error {
	if c.Name == "" {
		return &ValidationError{Message: "group name is required"}
	}
	if c.Cooldown < 0 || c.Cooldown > MaxCooldownSeconds {
		return &ValidationError{Message: fmt.Sprintf("cooldown must be between 0 and %d seconds", MaxCooldownSeconds)}
	}
	if c.MinEntities < 0 {
		return &ValidationError{Message: "minEntities must not be negative"}
	}
	if c.MaxEntities < 0 || c.MaxEntities > MaxEntitiesLimit {
		return &ValidationError{Message: fmt.Sprintf("maxEntities must be between 0 and %d", MaxEntitiesLimit)}
	}
	if c.MinEntities > c.MaxEntities {
		return &ValidationError{Message: "minEntities must not be greater than maxEntities"}
	}
	return nil
}

func (c *GroupConfiguration) CooldownDuration() time.Duration {
	return time.Duration(c.Cooldown) * time.Second
}

type PersonalityFile struct {
	Path     string `json:"path"`
	Contents string `json:"contents"`
}

type Network struct {
	UUID string `json:"uuid"`
}

type ServerTemplate struct {
	Name        string            `json:"name,omitempty"`
	ImageRef    string            `json:"imageRef"`
	FlavorRef   string            `json:"flavorRef"`
	Personality []PersonalityFile `json:"personality,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	Networks    []Network         `json:"networks,omitempty"`
}

type LoadBalancer struct {
	LoadBalancerID string `json:"loadBalancerId"`
	Port           int    `json:"port,omitempty"`
	Type           string `json:"type,omitempty"`
}

type LaunchConfiguration struct {
	Type            string         `json:"type"`
	Server          ServerTemplate `json:"server"`
	LoadBalancers   []LoadBalancer `json:"loadBalancers,omitempty"`
	DrainingTimeout int            `json:"drainingTimeout,omitempty"`
}

func DefaultLaunchConfiguration() LaunchConfiguration {
	return LaunchConfiguration{
		Type: LaunchTypeServer,
	}
}

func (l *LaunchConfiguration) Validate() error {
	if l.Type != LaunchTypeServer {
		return &ValidationError{Message: fmt.Sprintf("launch configuration type must be %q", LaunchTypeServer)}
	}
	if l.Server.ImageRef == "" {
		return &ValidationError{Message: "server imageRef is required"}
	}
	if l.Server.FlavorRef == "" {
		return &ValidationError{Message: "server flavorRef is required"}
	}
	for _, lb := range l.LoadBalancers {
		if lb.LoadBalancerID == "" {
			return &ValidationError{Message: "loadBalancerId is required"}
		}
		switch lb.Type {
		case "", LoadBalancerTypeCLB:
			if lb.Port <= 0 || lb.Port > 65535 {
				return &ValidationError{Message: "load balancer port must be between 1 and 65535"}
			}
		case LoadBalancerTypeRackConnect:
			// RackConnect pools have no port
		default:
			return &ValidationError{Message: fmt.Sprintf("unknown load balancer type %q", lb.Type)}
		}
	}
	if l.DrainingTimeout != 0 &&
		(l.DrainingTimeout < MinDrainingTimeoutSeconds || l.DrainingTimeout > MaxDrainingTimeoutSeconds) {
		return &ValidationError{Message: fmt.Sprintf("drainingTimeout must be between %d and %d seconds",
			MinDrainingTimeoutSeconds, MaxDrainingTimeoutSeconds)}
	}
	return nil
}

type Entity struct {
	ID      string    `json:"id"`
	State   string    `json:"state"`
	Created time.Time `json:"created"`
}

// GroupState is the mutable sub-document of a scaling group. Capacities are
// derived from the entity lists so that bookkeeping cannot drift from the
// entities actually tracked. Draining holds entities whose deletion has been
// requested while they were still building; they count toward no capacity
// and are deleted as soon as they become active.
type GroupState struct {
	Paused          bool     `json:"paused"`
	Status          string   `json:"status"`
	DesiredCapacity int      `json:"desiredCapacity"`
	Active          []Entity `json:"active"`
	Pending         []Entity `json:"pending"`
	Draining        []Entity `json:"draining,omitempty"`
	Errors          []string `json:"errors,omitempty"`
}

func (s *GroupState) ActiveCapacity() int {
	return len(s.Active)
}

func (s *GroupState) PendingCapacity() int {
	return len(s.Pending)
}

type ScalingGroup struct {
	ID           string              `json:"id"`
	TenantID     string              `json:"-"`
	Config       GroupConfiguration  `json:"groupConfiguration"`
	LaunchConfig LaunchConfiguration `json:"launchConfiguration"`
	Policies     []*ScalingPolicy    `json:"scalingPolicies,omitempty"`
	State        GroupState          `json:"state"`
}

// GroupStateResponse is the wire shape of GET .../state.
type GroupStateResponse struct {
	Paused          bool     `json:"paused"`
	Status          string   `json:"status"`
	DesiredCapacity int      `json:"desiredCapacity"`
	PendingCapacity int      `json:"pendingCapacity"`
	ActiveCapacity  int      `json:"activeCapacity"`
	Active          []Entity `json:"active"`
	Errors          []string `json:"errors,omitempty"`
}

func (s *GroupState) ToResponse() *GroupStateResponse {
	active := s.Active
	if active == nil {
		active = []Entity{}
	}
	return &GroupStateResponse{
		Paused:          s.Paused,
		Status:          s.Status,
		DesiredCapacity: s.DesiredCapacity,
		PendingCapacity: s.PendingCapacity(),
		ActiveCapacity:  s.ActiveCapacity(),
		Active:          active,
		Errors:          s.Errors,
	}
}
