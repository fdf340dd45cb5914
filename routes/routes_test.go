package routes_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"autoscale/routes"
)

var _ = Describe("ApiRoutes", func() {
	match := func(method string, url string) *mux.RouteMatch {
		req := httptest.NewRequest(method, url, nil)
		routeMatch := &mux.RouteMatch{}
		matched := routes.ApiRoutes().Match(req, routeMatch)
		Expect(matched).To(BeTrue(), "no route for %s %s", method, url)
		return routeMatch
	}

	It("resolves the group routes", func() {
		Expect(match("POST", "/v1.0/tenant-1/groups").Route.GetName()).To(Equal(routes.CreateGroupRouteName))
		Expect(match("GET", "/v1.0/tenant-1/groups").Route.GetName()).To(Equal(routes.ListGroupsRouteName))
		Expect(match("GET", "/v1.0/tenant-1/groups/group-1").Route.GetName()).To(Equal(routes.GetGroupRouteName))
		Expect(match("DELETE", "/v1.0/tenant-1/groups/group-1").Route.GetName()).To(Equal(routes.DeleteGroupRouteName))
		Expect(match("PUT", "/v1.0/tenant-1/groups/group-1/config").Route.GetName()).To(Equal(routes.UpdateGroupConfigRouteName))
		Expect(match("PUT", "/v1.0/tenant-1/groups/group-1/launch").Route.GetName()).To(Equal(routes.UpdateLaunchConfigRouteName))
		Expect(match("GET", "/v1.0/tenant-1/groups/group-1/state").Route.GetName()).To(Equal(routes.GetGroupStateRouteName))
		Expect(match("POST", "/v1.0/tenant-1/groups/group-1/pause").Route.GetName()).To(Equal(routes.PauseGroupRouteName))
		Expect(match("POST", "/v1.0/tenant-1/groups/group-1/resume").Route.GetName()).To(Equal(routes.ResumeGroupRouteName))
		Expect(match("POST", "/v1.0/tenant-1/groups/group-1/converge").Route.GetName()).To(Equal(routes.ConvergeGroupRouteName))
		Expect(match("GET", "/v1.0/tenant-1/groups/group-1/scaling_histories").Route.GetName()).To(Equal(routes.GetScalingHistoriesRouteName))
	})

	It("resolves the policy routes", func() {
		Expect(match("POST", "/v1.0/tenant-1/groups/group-1/policies").Route.GetName()).To(Equal(routes.CreatePoliciesRouteName))
		Expect(match("GET", "/v1.0/tenant-1/groups/group-1/policies/policy-1").Route.GetName()).To(Equal(routes.GetPolicyRouteName))
		Expect(match("POST", "/v1.0/tenant-1/groups/group-1/policies/policy-1/execute").Route.GetName()).To(Equal(routes.ExecutePolicyRouteName))
	})

	It("resolves the webhook routes", func() {
		Expect(match("POST", "/v1.0/tenant-1/groups/group-1/policies/policy-1/webhooks").Route.GetName()).To(Equal(routes.CreateWebhooksRouteName))
		Expect(match("PUT", "/v1.0/tenant-1/groups/group-1/policies/policy-1/webhooks/webhook-1").Route.GetName()).To(Equal(routes.UpdateWebhookRouteName))
	})

	It("extracts the path variables", func() {
		routeMatch := match("GET", "/v1.0/tenant-1/groups/group-1/policies/policy-1")
		Expect(routeMatch.Vars).To(Equal(map[string]string{
			"tenantId": "tenant-1",
			"groupId":  "group-1",
			"policyId": "policy-1",
		}))
	})

	It("routes anonymous execution ahead of the tenant-scoped paths", func() {
		routeMatch := match("POST", "/v1.0/execute/1/abcdef0123456789")
		Expect(routeMatch.Route.GetName()).To(Equal(routes.AnonymousExecuteRouteName))
		Expect(routeMatch.Vars).To(Equal(map[string]string{
			"capabilityVersion": "1",
			"capabilityHash":    "abcdef0123456789",
		}))
	})

	It("rejects unknown methods", func() {
		req := httptest.NewRequest(http.MethodPatch, "/v1.0/tenant-1/groups/group-1", nil)
		routeMatch := &mux.RouteMatch{}
		Expect(routes.ApiRoutes().Match(req, routeMatch)).To(BeFalse())
	})
})
