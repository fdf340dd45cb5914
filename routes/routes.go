package routes

import (
	"net/http"

	"github.com/gorilla/mux"
)

const (
	GroupsPath           = "/v1.0/{tenantId}/groups"
	CreateGroupRouteName = "CreateGroup"
	ListGroupsRouteName  = "ListGroups"

	GroupPath            = "/v1.0/{tenantId}/groups/{groupId}"
	GetGroupRouteName    = "GetGroup"
	DeleteGroupRouteName = "DeleteGroup"

	GroupConfigPath            = "/v1.0/{tenantId}/groups/{groupId}/config"
	GetGroupConfigRouteName    = "GetGroupConfig"
	UpdateGroupConfigRouteName = "UpdateGroupConfig"

	LaunchConfigPath            = "/v1.0/{tenantId}/groups/{groupId}/launch"
	GetLaunchConfigRouteName    = "GetLaunchConfig"
	UpdateLaunchConfigRouteName = "UpdateLaunchConfig"

	GroupStatePath         = "/v1.0/{tenantId}/groups/{groupId}/state"
	GetGroupStateRouteName = "GetGroupState"

	PauseGroupPath      = "/v1.0/{tenantId}/groups/{groupId}/pause"
	PauseGroupRouteName = "PauseGroup"

	ResumeGroupPath      = "/v1.0/{tenantId}/groups/{groupId}/resume"
	ResumeGroupRouteName = "ResumeGroup"

	ConvergeGroupPath      = "/v1.0/{tenantId}/groups/{groupId}/converge"
	ConvergeGroupRouteName = "ConvergeGroup"

	ScalingHistoriesPath         = "/v1.0/{tenantId}/groups/{groupId}/scaling_histories"
	GetScalingHistoriesRouteName = "GetScalingHistories"

	PoliciesPath            = "/v1.0/{tenantId}/groups/{groupId}/policies"
	CreatePoliciesRouteName = "CreatePolicies"
	ListPoliciesRouteName   = "ListPolicies"

	PolicyPath            = "/v1.0/{tenantId}/groups/{groupId}/policies/{policyId}"
	GetPolicyRouteName    = "GetPolicy"
	UpdatePolicyRouteName = "UpdatePolicy"
	DeletePolicyRouteName = "DeletePolicy"

	ExecutePolicyPath      = "/v1.0/{tenantId}/groups/{groupId}/policies/{policyId}/execute"
	ExecutePolicyRouteName = "ExecutePolicy"

	WebhooksPath            = "/v1.0/{tenantId}/groups/{groupId}/policies/{policyId}/webhooks"
	CreateWebhooksRouteName = "CreateWebhooks"
	ListWebhooksRouteName   = "ListWebhooks"

	WebhookPath            = "/v1.0/{tenantId}/groups/{groupId}/policies/{policyId}/webhooks/{webhookId}"
	GetWebhookRouteName    = "GetWebhook"
	UpdateWebhookRouteName = "UpdateWebhook"
	DeleteWebhookRouteName = "DeleteWebhook"

	AnonymousExecutePath      = "/v1.0/execute/{capabilityVersion}/{capabilityHash}"
	AnonymousExecuteRouteName = "AnonymousExecute"
)

type AutoscaleRoute struct {
	apiRoutes *mux.Router
}

var autoscaleRouteInstance *AutoscaleRoute = newRouters()

func newRouters() *AutoscaleRoute {
	instance := &AutoscaleRoute{
		apiRoutes: mux.NewRouter(),
	}

	// registered before the tenant-scoped paths so "/v1.0/execute/..."
	// never matches "{tenantId}"
	instance.apiRoutes.Path(AnonymousExecutePath).Methods(http.MethodPost).Name(AnonymousExecuteRouteName)

	instance.apiRoutes.Path(GroupsPath).Methods(http.MethodPost).Name(CreateGroupRouteName)
	instance.apiRoutes.Path(GroupsPath).Methods(http.MethodGet).Name(ListGroupsRouteName)
	instance.apiRoutes.Path(GroupPath).Methods(http.MethodGet).Name(GetGroupRouteName)
	instance.apiRoutes.Path(GroupPath).Methods(http.MethodDelete).Name(DeleteGroupRouteName)
	instance.apiRoutes.Path(GroupConfigPath).Methods(http.MethodGet).Name(GetGroupConfigRouteName)
	instance.apiRoutes.Path(GroupConfigPath).Methods(http.MethodPut).Name(UpdateGroupConfigRouteName)
	instance.apiRoutes.Path(LaunchConfigPath).Methods(http.MethodGet).Name(GetLaunchConfigRouteName)
	instance.apiRoutes.Path(LaunchConfigPath).Methods(http.MethodPut).Name(UpdateLaunchConfigRouteName)
	instance.apiRoutes.Path(GroupStatePath).Methods(http.MethodGet).Name(GetGroupStateRouteName)
	instance.apiRoutes.Path(PauseGroupPath).Methods(http.MethodPost).Name(PauseGroupRouteName)
	instance.apiRoutes.Path(ResumeGroupPath).Methods(http.MethodPost).Name(ResumeGroupRouteName)
	instance.apiRoutes.Path(ConvergeGroupPath).Methods(http.MethodPost).Name(ConvergeGroupRouteName)
	instance.apiRoutes.Path(ScalingHistoriesPath).Methods(http.MethodGet).Name(GetScalingHistoriesRouteName)
	instance.apiRoutes.Path(PoliciesPath).Methods(http.MethodPost).Name(CreatePoliciesRouteName)
	instance.apiRoutes.Path(PoliciesPath).Methods(http.MethodGet).Name(ListPoliciesRouteName)
	instance.apiRoutes.Path(PolicyPath).Methods(http.MethodGet).Name(GetPolicyRouteName)
	instance.apiRoutes.Path(PolicyPath).Methods(http.MethodPut).Name(UpdatePolicyRouteName)
	instance.apiRoutes.Path(PolicyPath).Methods(http.MethodDelete).Name(DeletePolicyRouteName)
	instance.apiRoutes.Path(ExecutePolicyPath).Methods(http.MethodPost).Name(ExecutePolicyRouteName)
	instance.apiRoutes.Path(WebhooksPath).Methods(http.MethodPost).Name(CreateWebhooksRouteName)
	instance.apiRoutes.Path(WebhooksPath).Methods(http.MethodGet).Name(ListWebhooksRouteName)
	instance.apiRoutes.Path(WebhookPath).Methods(http.MethodGet).Name(GetWebhookRouteName)
	instance.apiRoutes.Path(WebhookPath).Methods(http.MethodPut).Name(UpdateWebhookRouteName)
	instance.apiRoutes.Path(WebhookPath).Methods(http.MethodDelete).Name(DeleteWebhookRouteName)

	return instance
}

// ApiRoutes holds every route of the public server. All routes except
// AnonymousExecute are tenant-scoped and require an auth token.
func ApiRoutes() *mux.Router {
	return autoscaleRouteInstance.apiRoutes
}
