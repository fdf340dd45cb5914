package models

import (
	"fmt"
	"time"
)

const (
	PolicyTypeWebhook  = "webhook"
	PolicyTypeSchedule = "schedule"
)

// ScheduleArgs carries the trigger of a schedule policy. Exactly one of At
// and Cron is set: At is an absolute timestamp in TimestampFormat, Cron is a
// five-field cron expression without a seconds field.
type ScheduleArgs struct {
	At   string `json:"at,omitempty"`
	Cron string `json:"cron,omitempty"`
}

type ScalingPolicy struct {
	ID              string        `json:"id,omitempty"`
	Name            string        `json:"name"`
	Type            string        `json:"type"`
	Cooldown        int           `json:"cooldown"`
	Change          *int          `json:"change,omitempty"`
	ChangePercent   *float64      `json:"changePercent,omitempty"`
	DesiredCapacity *int          `json:"desiredCapacity,omitempty"`
	Args            *ScheduleArgs `json:"args,omitempty"`
}

// AdjustmentCount reports how many of the mutually exclusive adjustment
// fields are set. A well-formed policy has exactly one.
func (p *ScalingPolicy) AdjustmentCount() int {
	count := 0
	if p.Change != nil {
		count++
	}
	if p.ChangePercent != nil {
		count++
	}
	if p.DesiredCapacity != nil {
		count++
	}
	return count
}

func (p *ScalingPolicy) Validate() error {
	if p.Name == "" {
		return &ValidationError{Message: "policy name is required"}
	}
	if p.Type != PolicyTypeWebhook && p.Type != PolicyTypeSchedule {
		return &ValidationError{Message: fmt.Sprintf("policy type must be %q or %q", PolicyTypeWebhook, PolicyTypeSchedule)}
	}
	if p.Cooldown < 0 || p.Cooldown > MaxCooldownSeconds {
		return &ValidationError{Message: fmt.Sprintf("policy cooldown must be between 0 and %d seconds", MaxCooldownSeconds)}
	}
	if p.AdjustmentCount() != 1 {
		return &ValidationError{Message: "policy must have exactly one of change, changePercent or desiredCapacity"}
	}
	if p.DesiredCapacity != nil && *p.DesiredCapacity < 0 {
		return &ValidationError{Message: "desiredCapacity must not be negative"}
	}
	switch p.Type {
	case PolicyTypeSchedule:
		if p.Args == nil {
			return &ValidationError{Message: "schedule policy requires args"}
		}
		if (p.Args.At == "") == (p.Args.Cron == "") {
			return &ValidationError{Message: "schedule policy args must have exactly one of at or cron"}
		}
		if p.Args.At != "" {
			if _, err := time.Parse(TimestampFormat, p.Args.At); err != nil {
				return &ValidationError{Message: fmt.Sprintf("invalid at timestamp %q", p.Args.At)}
			}
		}
	case PolicyTypeWebhook:
		if p.Args != nil {
			return &ValidationError{Message: "webhook policy must not have args"}
		}
	}
	return nil
}

func (p *ScalingPolicy) CoolDown() time.Duration {
	return time.Duration(p.Cooldown) * time.Second
}

// PolicyRef locates a policy across tenants; used for capability-hash lookup
// and schedule triggering, where no tenant context is on the request.
type PolicyRef struct {
	TenantID string
	GroupID  string
	PolicyID string
}

// SchedulePolicy is a schedule policy joined with its location, as listed
// for the trigger scheduler.
type SchedulePolicy struct {
	PolicyRef
	Args       ScheduleArgs
	Cooldown   int
	ExecutedAt int64
}
