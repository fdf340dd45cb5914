package models

import "fmt"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type GroupPausedError struct {
	GroupID string
}

func (e *GroupPausedError) Error() string {
	return fmt.Sprintf("group %s is paused", e.GroupID)
}

type CannotExecutePolicyError struct {
	PolicyID string
	Reason   string
}

func (e *CannotExecutePolicyError) Error() string {
	return fmt.Sprintf("cannot execute policy %s: %s", e.PolicyID, e.Reason)
}

type GroupNotEmptyError struct {
	GroupID string
}

func (e *GroupNotEmptyError) Error() string {
	return fmt.Sprintf("group %s still has entities; delete with force=true to remove them", e.GroupID)
}

type NoSuchScalingGroupError struct {
	GroupID string
}

func (e *NoSuchScalingGroupError) Error() string {
	return fmt.Sprintf("no scaling group %s", e.GroupID)
}

type NoSuchPolicyError struct {
	PolicyID string
}

func (e *NoSuchPolicyError) Error() string {
	return fmt.Sprintf("no policy %s", e.PolicyID)
}

type NoSuchWebhookError struct {
	WebhookID string
}

func (e *NoSuchWebhookError) Error() string {
	return fmt.Sprintf("no webhook %s", e.WebhookID)
}

type GroupsOverLimitError struct {
	Limit int
}

func (e *GroupsOverLimitError) Error() string {
	return fmt.Sprintf("group count exceeds the limit of %d per tenant", e.Limit)
}

type PoliciesOverLimitError struct {
	Limit int
}

func (e *PoliciesOverLimitError) Error() string {
	return fmt.Sprintf("policy count exceeds the limit of %d per group", e.Limit)
}

type WebhookOverLimitsError struct {
	Limit int
}

func (e *WebhookOverLimitsError) Error() string {
	return fmt.Sprintf("webhook count exceeds the limit of %d per policy", e.Limit)
}
