package models

const (
	ScalingStatusSucceeded = "succeeded"
	ScalingStatusFailed    = "failed"
	ScalingStatusIgnored   = "ignored"

	ChangeReasonPolicy      = "policy"
	ChangeReasonConvergence = "convergence"
	ChangeReasonForceDelete = "force delete"
)

// ScalingHistory records one capacity-changing decision on a group.
type ScalingHistory struct {
	TenantID   string `json:"-"`
	GroupID    string `json:"groupId"`
	Timestamp  int64  `json:"timestamp"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
	OldDesired int    `json:"oldDesired"`
	NewDesired int    `json:"newDesired"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
}
