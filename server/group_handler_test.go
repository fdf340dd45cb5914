package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"autoscale/db"
	"autoscale/fakes"
	"autoscale/models"
	"autoscale/policyvalidator"
	"autoscale/server"
)

const (
	testTenantID = "tenant-1"
	testGroupID  = "group-id-1"
)

var _ = Describe("GroupHandler", func() {
	var (
		handler  *server.GroupHandler
		groupDB  *fakes.FakeGroupDB
		policyDB *fakes.FakePolicyDB
		engine   *fakes.FakeEngine
		resp     *httptest.ResponseRecorder
		req      *http.Request
		vars     map[string]string

		maxGroups   int
		maxPolicies int
	)

	BeforeEach(func() {
		groupDB = &fakes.FakeGroupDB{}
		policyDB = &fakes.FakePolicyDB{}
		engine = &fakes.FakeEngine{}
		resp = httptest.NewRecorder()
		vars = map[string]string{"tenantId": testTenantID, "groupId": testGroupID}
		maxGroups = 1000
		maxPolicies = 100
	})

	JustBeforeEach(func() {
		logger := lagertest.NewTestLogger("group-handler-test")
		handler = server.NewGroupHandler(logger, groupDB, policyDB, engine,
			policyvalidator.NewPolicyValidator(), maxGroups, maxPolicies)
	})

	newGroup := func() *models.ScalingGroup {
		return &models.ScalingGroup{
			ID:       testGroupID,
			TenantID: testTenantID,
			Config: models.GroupConfiguration{
				Name:        "web workers",
				Cooldown:    60,
				MinEntities: 1,
				MaxEntities: 10,
			},
			LaunchConfig: models.LaunchConfiguration{
				Type: models.LaunchTypeServer,
				Server: models.ServerTemplate{
					ImageRef:  "image-1",
					FlavorRef: "flavor-1",
				},
			},
			State: models.GroupState{
				Status:          models.GroupStatusActive,
				DesiredCapacity: 2,
				Active: []models.Entity{
					{ID: "server-1", State: models.EntityStateActive},
					{ID: "server-2", State: models.EntityStateActive},
				},
				Pending: []models.Entity{},
			},
		}
	}

	Describe("CreateGroup", func() {
		var body string

		BeforeEach(func() {
			body = `{
				"groupConfiguration": {"name": "web workers", "cooldown": 60, "minEntities": 2, "maxEntities": 10},
				"launchConfiguration": {"type": "launch_server", "server": {"imageRef": "image-1", "flavorRef": "flavor-1"}},
				"scalingPolicies": [{"name": "scale up", "type": "webhook", "cooldown": 300, "change": 1}]
			}`
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("POST", "/v1.0/tenant-1/groups", bytes.NewBufferString(body))
			handler.CreateGroup(resp, req, map[string]string{"tenantId": testTenantID})
		})

		Context("when the request is valid", func() {
			It("persists the group with its policies and responds 201", func() {
				Expect(resp.Code).To(Equal(http.StatusCreated))

				Expect(groupDB.CreateGroupCallCount()).To(Equal(1))
				group := groupDB.CreateGroupArgsForCall(0)
				Expect(group.ID).NotTo(BeEmpty())
				Expect(group.TenantID).To(Equal(testTenantID))
				Expect(group.Config.Name).To(Equal("web workers"))
				Expect(group.State.Status).To(Equal(models.GroupStatusActive))
				Expect(group.State.DesiredCapacity).To(Equal(2))

				Expect(policyDB.CreatePoliciesCallCount()).To(Equal(1))
				tenantID, groupID, policies := policyDB.CreatePoliciesArgsForCall(0)
				Expect(tenantID).To(Equal(testTenantID))
				Expect(groupID).To(Equal(group.ID))
				Expect(policies).To(HaveLen(1))
				Expect(policies[0].ID).NotTo(BeEmpty())
				Expect(policies[0].Name).To(Equal("scale up"))
			})

			It("converges the group in the background", func() {
				Eventually(engine.ConvergeCallCount).Should(Equal(1))
				tenantID, groupID := engine.ConvergeArgsForCall(0)
				Expect(tenantID).To(Equal(testTenantID))
				Expect(groupID).To(Equal(groupDB.CreateGroupArgsForCall(0).ID))
			})

			It("returns the created group", func() {
				created := &models.ScalingGroup{}
				Expect(json.Unmarshal(resp.Body.Bytes(), created)).To(Succeed())
				Expect(created.ID).NotTo(BeEmpty())
				Expect(created.Config.MinEntities).To(Equal(2))
				Expect(created.State.Active).To(BeEmpty())
			})
		})

		Context("when the request has no policies", func() {
			BeforeEach(func() {
				body = `{
					"groupConfiguration": {"name": "web workers", "maxEntities": 10},
					"launchConfiguration": {"type": "launch_server", "server": {"imageRef": "image-1", "flavorRef": "flavor-1"}}
				}`
			})

			It("creates the group without touching the policy store", func() {
				Expect(resp.Code).To(Equal(http.StatusCreated))
				Expect(groupDB.CreateGroupCallCount()).To(Equal(1))
				Expect(policyDB.CreatePoliciesCallCount()).To(BeZero())
			})
		})

		Context("when the body is not valid json", func() {
			BeforeEach(func() {
				body = `not json`
			})

			It("responds 400", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				assertErrorCode(resp, "Validation-Error")
				Expect(groupDB.CreateGroupCallCount()).To(BeZero())
			})
		})

		Context("when the group configuration is missing", func() {
			BeforeEach(func() {
				body = `{"launchConfiguration": {"type": "launch_server", "server": {"imageRef": "i", "flavorRef": "f"}}}`
			})

			It("responds 400", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Body.String()).To(ContainSubstring("groupConfiguration is required"))
			})
		})

		Context("when minEntities exceeds maxEntities", func() {
			BeforeEach(func() {
				body = `{
					"groupConfiguration": {"name": "web workers", "minEntities": 5, "maxEntities": 2},
					"launchConfiguration": {"type": "launch_server", "server": {"imageRef": "i", "flavorRef": "f"}}
				}`
			})

			It("responds 400", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Body.String()).To(ContainSubstring("minEntities must not be greater than maxEntities"))
			})
		})

		Context("when the launch configuration has no imageRef", func() {
			BeforeEach(func() {
				body = `{
					"groupConfiguration": {"name": "web workers", "maxEntities": 10},
					"launchConfiguration": {"type": "launch_server", "server": {"flavorRef": "f"}}
				}`
			})

			It("responds 400", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Body.String()).To(ContainSubstring("imageRef is required"))
			})
		})

		Context("when the policies exceed the per-group limit", func() {
			BeforeEach(func() {
				maxPolicies = 1
				body = `{
					"groupConfiguration": {"name": "web workers", "maxEntities": 10},
					"launchConfiguration": {"type": "launch_server", "server": {"imageRef": "i", "flavorRef": "f"}},
					"scalingPolicies": [
						{"name": "up", "type": "webhook", "cooldown": 300, "change": 1},
						{"name": "down", "type": "webhook", "cooldown": 300, "change": -1}
					]
				}`
			})

			It("responds 422", func() {
				Expect(resp.Code).To(Equal(http.StatusUnprocessableEntity))
				assertErrorCode(resp, "Over-Limit")
			})
		})

		Context("when groupConfiguration has an unknown field", func() {
			BeforeEach(func() {
				body = `{
					"groupConfiguration": {"name": "web workers", "maxEntities": 10, "maxInstances": 10},
					"launchConfiguration": {"type": "launch_server", "server": {"imageRef": "i", "flavorRef": "f"}}
				}`
			})

			It("responds 400 without creating the group", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				assertErrorCode(resp, "Validation-Error")
				Expect(groupDB.CreateGroupCallCount()).To(BeZero())
			})
		})

		Context("when two policies in the request share a name", func() {
			BeforeEach(func() {
				body = `{
					"groupConfiguration": {"name": "web workers", "maxEntities": 10},
					"launchConfiguration": {"type": "launch_server", "server": {"imageRef": "i", "flavorRef": "f"}},
					"scalingPolicies": [
						{"name": "scale up", "type": "webhook", "cooldown": 300, "change": 1},
						{"name": "scale up", "type": "webhook", "cooldown": 300, "change": 2}
					]
				}`
			})

			It("responds 400 without creating the group", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				assertErrorCode(resp, "Validation-Error")
				Expect(groupDB.CreateGroupCallCount()).To(BeZero())
			})
		})

		Context("when the tenant already has the maximum number of groups", func() {
			BeforeEach(func() {
				maxGroups = 3
				groupDB.CountGroupsReturns(3, nil)
			})

			It("responds 422", func() {
				Expect(resp.Code).To(Equal(http.StatusUnprocessableEntity))
				assertErrorCode(resp, "Over-Limit")
				Expect(groupDB.CreateGroupCallCount()).To(BeZero())
			})
		})

		Context("when persisting the group fails", func() {
			BeforeEach(func() {
				groupDB.CreateGroupReturns(errDBConnection)
			})

			It("responds 500 without leaking the error", func() {
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
				assertErrorCode(resp, "Internal-Server-Error")
				Expect(resp.Body.String()).NotTo(ContainSubstring(errDBConnection.Error()))
			})
		})
	})

	Describe("ListGroups", func() {
		JustBeforeEach(func() {
			req = httptest.NewRequest("GET", "/v1.0/tenant-1/groups", nil)
			handler.ListGroups(resp, req, map[string]string{"tenantId": testTenantID})
		})

		Context("when groups exist", func() {
			BeforeEach(func() {
				groupDB.ListGroupsReturns([]*models.ScalingGroup{newGroup()}, nil)
			})

			It("returns them", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))
				groups := []*models.ScalingGroup{}
				Expect(json.Unmarshal(resp.Body.Bytes(), &groups)).To(Succeed())
				Expect(groups).To(HaveLen(1))
				Expect(groups[0].ID).To(Equal(testGroupID))
			})
		})

		Context("when listing fails", func() {
			BeforeEach(func() {
				groupDB.ListGroupsReturns(nil, errDBConnection)
			})

			It("responds 500", func() {
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("GetGroup", func() {
		JustBeforeEach(func() {
			req = httptest.NewRequest("GET", "/v1.0/tenant-1/groups/group-id-1", nil)
			handler.GetGroup(resp, req, vars)
		})

		Context("when the group exists", func() {
			BeforeEach(func() {
				groupDB.GetGroupReturns(newGroup(), nil)
				policyDB.ListPoliciesReturns([]*models.ScalingPolicy{
					{ID: "policy-1", Name: "scale up", Type: models.PolicyTypeWebhook},
				}, nil)
			})

			It("returns the group with its policies attached", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))
				group := &models.ScalingGroup{}
				Expect(json.Unmarshal(resp.Body.Bytes(), group)).To(Succeed())
				Expect(group.ID).To(Equal(testGroupID))
				Expect(group.Policies).To(HaveLen(1))
				Expect(group.Policies[0].ID).To(Equal("policy-1"))
			})
		})

		Context("when the group does not exist", func() {
			BeforeEach(func() {
				groupDB.GetGroupReturns(nil, &models.NoSuchScalingGroupError{GroupID: testGroupID})
			})

			It("responds 404", func() {
				Expect(resp.Code).To(Equal(http.StatusNotFound))
				assertErrorCode(resp, "Not-Found")
			})
		})
	})

	Describe("DeleteGroup", func() {
		var url string

		BeforeEach(func() {
			url = "/v1.0/tenant-1/groups/group-id-1"
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("DELETE", url, nil)
			handler.DeleteGroup(resp, req, vars)
		})

		Context("without force", func() {
			It("deletes through the engine and removes the group policies", func() {
				Expect(resp.Code).To(Equal(http.StatusNoContent))
				Expect(engine.DeleteGroupCallCount()).To(Equal(1))
				tenantID, groupID, force := engine.DeleteGroupArgsForCall(0)
				Expect(tenantID).To(Equal(testTenantID))
				Expect(groupID).To(Equal(testGroupID))
				Expect(force).To(BeFalse())
				Expect(policyDB.DeleteGroupPoliciesCallCount()).To(Equal(1))
			})
		})

		Context("with force=true", func() {
			BeforeEach(func() {
				url = "/v1.0/tenant-1/groups/group-id-1?force=true"
			})

			It("passes force through", func() {
				Expect(resp.Code).To(Equal(http.StatusNoContent))
				_, _, force := engine.DeleteGroupArgsForCall(0)
				Expect(force).To(BeTrue())
			})
		})

		Context("when the group still has entities", func() {
			BeforeEach(func() {
				engine.DeleteGroupReturns(&models.GroupNotEmptyError{GroupID: testGroupID})
			})

			It("responds 403", func() {
				Expect(resp.Code).To(Equal(http.StatusForbidden))
				assertErrorCode(resp, "Group-Not-Empty")
				Expect(policyDB.DeleteGroupPoliciesCallCount()).To(BeZero())
			})
		})
	})

	Describe("GetGroupConfig", func() {
		JustBeforeEach(func() {
			req = httptest.NewRequest("GET", "/v1.0/tenant-1/groups/group-id-1/config", nil)
			handler.GetGroupConfig(resp, req, vars)
		})

		BeforeEach(func() {
			groupDB.GetGroupReturns(newGroup(), nil)
		})

		It("returns the group configuration", func() {
			Expect(resp.Code).To(Equal(http.StatusOK))
			conf := models.GroupConfiguration{}
			Expect(json.Unmarshal(resp.Body.Bytes(), &conf)).To(Succeed())
			Expect(conf.Name).To(Equal("web workers"))
			Expect(conf.MaxEntities).To(Equal(10))
		})
	})

	Describe("UpdateGroupConfig", func() {
		var body string

		BeforeEach(func() {
			body = `{"name": "web workers", "cooldown": 120, "minEntities": 3, "maxEntities": 8}`
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("PUT", "/v1.0/tenant-1/groups/group-id-1/config", bytes.NewBufferString(body))
			handler.UpdateGroupConfig(resp, req, vars)
		})

		Context("when the configuration is valid", func() {
			It("updates the configuration and responds 204", func() {
				Expect(resp.Code).To(Equal(http.StatusNoContent))
				Expect(groupDB.UpdateGroupConfigurationCallCount()).To(Equal(1))
				tenantID, groupID, conf := groupDB.UpdateGroupConfigurationArgsForCall(0)
				Expect(tenantID).To(Equal(testTenantID))
				Expect(groupID).To(Equal(testGroupID))
				Expect(conf.Cooldown).To(Equal(120))
				Expect(conf.MinEntities).To(Equal(3))
			})

			It("converges against the new bounds in the background", func() {
				Eventually(engine.ConvergeCallCount).Should(Equal(1))
			})
		})

		Context("when the configuration is invalid", func() {
			BeforeEach(func() {
				body = `{"name": "", "maxEntities": 8}`
			})

			It("responds 400 without updating", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(groupDB.UpdateGroupConfigurationCallCount()).To(BeZero())
				Consistently(engine.ConvergeCallCount).Should(BeZero())
			})
		})

		Context("when the body has an unknown field", func() {
			BeforeEach(func() {
				body = `{"name": "web workers", "maxEntities": 8, "maxInstances": 8}`
			})

			It("responds 400 without updating", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				assertErrorCode(resp, "Validation-Error")
				Expect(groupDB.UpdateGroupConfigurationCallCount()).To(BeZero())
			})
		})

		Context("when the group does not exist", func() {
			BeforeEach(func() {
				groupDB.UpdateGroupConfigurationReturns(&models.NoSuchScalingGroupError{GroupID: testGroupID})
			})

			It("responds 404", func() {
				Expect(resp.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("GetLaunchConfig", func() {
		BeforeEach(func() {
			groupDB.GetGroupReturns(newGroup(), nil)
		})

		It("returns the launch configuration", func() {
			req = httptest.NewRequest("GET", "/v1.0/tenant-1/groups/group-id-1/launch", nil)
			handler.GetLaunchConfig(resp, req, vars)

			Expect(resp.Code).To(Equal(http.StatusOK))
			launch := models.LaunchConfiguration{}
			Expect(json.Unmarshal(resp.Body.Bytes(), &launch)).To(Succeed())
			Expect(launch.Server.ImageRef).To(Equal("image-1"))
		})
	})

	Describe("UpdateLaunchConfig", func() {
		var body string

		BeforeEach(func() {
			body = `{"type": "launch_server", "server": {"imageRef": "image-2", "flavorRef": "flavor-2"}}`
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("PUT", "/v1.0/tenant-1/groups/group-id-1/launch", bytes.NewBufferString(body))
			handler.UpdateLaunchConfig(resp, req, vars)
		})

		Context("when the launch configuration is valid", func() {
			It("updates it and responds 204 without converging", func() {
				Expect(resp.Code).To(Equal(http.StatusNoContent))
				Expect(groupDB.UpdateLaunchConfigurationCallCount()).To(Equal(1))
				Consistently(engine.ConvergeCallCount).Should(BeZero())
			})
		})

		Context("when the launch configuration is invalid", func() {
			BeforeEach(func() {
				body = `{"type": "launch_server", "server": {"imageRef": "image-2"}}`
			})

			It("responds 400", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(groupDB.UpdateLaunchConfigurationCallCount()).To(BeZero())
			})
		})
	})

	Describe("GetGroupState", func() {
		BeforeEach(func() {
			group := newGroup()
			group.State.Pending = []models.Entity{{ID: "server-3", State: models.EntityStateBuilding}}
			groupDB.GetGroupReturns(group, nil)
		})

		It("returns the state with derived capacities", func() {
			req = httptest.NewRequest("GET", "/v1.0/tenant-1/groups/group-id-1/state", nil)
			handler.GetGroupState(resp, req, vars)

			Expect(resp.Code).To(Equal(http.StatusOK))
			state := models.GroupStateResponse{}
			Expect(json.Unmarshal(resp.Body.Bytes(), &state)).To(Succeed())
			Expect(state.Status).To(Equal(models.GroupStatusActive))
			Expect(state.DesiredCapacity).To(Equal(2))
			Expect(state.ActiveCapacity).To(Equal(2))
			Expect(state.PendingCapacity).To(Equal(1))
			Expect(state.Active).To(HaveLen(2))
		})
	})

	Describe("PauseGroup", func() {
		JustBeforeEach(func() {
			req = httptest.NewRequest("POST", "/v1.0/tenant-1/groups/group-id-1/pause", nil)
			handler.PauseGroup(resp, req, vars)
		})

		It("pauses through the engine", func() {
			Expect(resp.Code).To(Equal(http.StatusNoContent))
			Expect(engine.SetPausedCallCount()).To(Equal(1))
			tenantID, groupID, paused := engine.SetPausedArgsForCall(0)
			Expect(tenantID).To(Equal(testTenantID))
			Expect(groupID).To(Equal(testGroupID))
			Expect(paused).To(BeTrue())
			Consistently(engine.ConvergeCallCount).Should(BeZero())
		})

		Context("when the group does not exist", func() {
			BeforeEach(func() {
				engine.SetPausedReturns(&models.NoSuchScalingGroupError{GroupID: testGroupID})
			})

			It("responds 404", func() {
				Expect(resp.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("ResumeGroup", func() {
		JustBeforeEach(func() {
			req = httptest.NewRequest("POST", "/v1.0/tenant-1/groups/group-id-1/resume", nil)
			handler.ResumeGroup(resp, req, vars)
		})

		It("resumes and converges in the background", func() {
			Expect(resp.Code).To(Equal(http.StatusNoContent))
			_, _, paused := engine.SetPausedArgsForCall(0)
			Expect(paused).To(BeFalse())
			Eventually(engine.ConvergeCallCount).Should(Equal(1))
		})
	})

	Describe("ConvergeGroup", func() {
		JustBeforeEach(func() {
			req = httptest.NewRequest("POST", "/v1.0/tenant-1/groups/group-id-1/converge", nil)
			handler.ConvergeGroup(resp, req, vars)
		})

		It("converges synchronously and responds 204", func() {
			Expect(resp.Code).To(Equal(http.StatusNoContent))
			Expect(engine.ConvergeCallCount()).To(Equal(1))
		})

		Context("when the group is paused", func() {
			BeforeEach(func() {
				engine.ConvergeReturns(&models.GroupPausedError{GroupID: testGroupID})
			})

			It("responds 403", func() {
				Expect(resp.Code).To(Equal(http.StatusForbidden))
				assertErrorCode(resp, "Group-Paused")
			})
		})
	})

	Describe("GetScalingHistories", func() {
		var url string

		BeforeEach(func() {
			url = "/v1.0/tenant-1/groups/group-id-1/scaling_histories"
			groupDB.RetrieveScalingHistoriesReturns([]*models.ScalingHistory{
				{GroupID: testGroupID, Status: models.ScalingStatusSucceeded},
			}, nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("GET", url, nil)
			handler.GetScalingHistories(resp, req, vars)
		})

		Context("without query parameters", func() {
			It("queries the full range in descending order", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))
				tenantID, groupID, start, end, order := groupDB.RetrieveScalingHistoriesArgsForCall(0)
				Expect(tenantID).To(Equal(testTenantID))
				Expect(groupID).To(Equal(testGroupID))
				Expect(start).To(Equal(int64(0)))
				Expect(end).To(Equal(int64(-1)))
				Expect(order).To(Equal(db.DESC))
			})
		})

		Context("with start, end and order", func() {
			BeforeEach(func() {
				url = "/v1.0/tenant-1/groups/group-id-1/scaling_histories?start=100&end=200&order=asc"
			})

			It("passes them through", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))
				_, _, start, end, order := groupDB.RetrieveScalingHistoriesArgsForCall(0)
				Expect(start).To(Equal(int64(100)))
				Expect(end).To(Equal(int64(200)))
				Expect(order).To(Equal(db.ASC))
			})
		})

		Context("with a non-numeric start", func() {
			BeforeEach(func() {
				url = "/v1.0/tenant-1/groups/group-id-1/scaling_histories?start=yesterday"
			})

			It("responds 400", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Body.String()).To(ContainSubstring("invalid start time"))
				Expect(groupDB.RetrieveScalingHistoriesCallCount()).To(BeZero())
			})
		})

		Context("with an unknown order", func() {
			BeforeEach(func() {
				url = "/v1.0/tenant-1/groups/group-id-1/scaling_histories?order=sideways"
			})

			It("responds 400", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Body.String()).To(ContainSubstring("invalid order"))
			})
		})
	})
})
