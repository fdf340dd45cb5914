package convergence_test

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"autoscale/convergence"
	"autoscale/fakes"
	"autoscale/healthendpoint"
	"autoscale/models"
	"autoscale/nova"
)

const (
	testTenantID = "test-tenant-id"
	testGroupID  = "test-group-id"
	testPolicyID = "test-policy-id"
)

var _ = Describe("Engine", func() {
	var (
		engine     convergence.Engine
		groupDB    *fakes.FakeGroupDB
		policyDB   *fakes.FakePolicyDB
		novaClient *fakes.FakeNovaClient
		fclock     *fakeclock.FakeClock
		group      *models.ScalingGroup
		err        error
	)

	newGroup := func(min, max, desired int) *models.ScalingGroup {
		return &models.ScalingGroup{
			ID:       testGroupID,
			TenantID: testTenantID,
			Config: models.GroupConfiguration{
				Name:        "test group",
				Cooldown:    60,
				MinEntities: min,
				MaxEntities: max,
			},
			LaunchConfig: models.LaunchConfiguration{
				Type: models.LaunchTypeServer,
				Server: models.ServerTemplate{
					ImageRef:  "image-ref",
					FlavorRef: "flavor-ref",
				},
			},
			State: models.GroupState{
				Status:          models.GroupStatusActive,
				DesiredCapacity: desired,
			},
		}
	}

	entity := func(id string, state string, created time.Time) models.Entity {
		return models.Entity{ID: id, State: state, Created: created}
	}

	BeforeEach(func() {
		groupDB = &fakes.FakeGroupDB{}
		policyDB = &fakes.FakePolicyDB{}
		novaClient = &fakes.FakeNovaClient{}
		fclock = fakeclock.NewFakeClock(time.Now())

		serial := 0
		novaClient.CreateServerStub = func(launchConfig *models.LaunchConfiguration) (*nova.EntityHandle, error) {
			serial++
			return &nova.EntityHandle{ID: fmt.Sprintf("server-%d", serial)}, nil
		}
		groupDB.CanScaleGroupReturns(true, 0, nil)
		policyDB.CanExecutePolicyReturns(true, 0, nil)

		engine = convergence.NewEngine(lagertest.NewTestLogger("engine"), novaClient, groupDB, policyDB, fclock,
			healthendpoint.NewConvergenceCollector("autoscale", "convergence"), 32, 3)
	})

	Describe("Converge", func() {
		JustBeforeEach(func() {
			err = engine.Converge(testTenantID, testGroupID)
		})

		Context("when actual capacity is below desired", func() {
			BeforeEach(func() {
				group = newGroup(0, 10, 3)
				groupDB.GetGroupReturns(group, nil)
			})

			It("creates servers up to desired and records them pending", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(novaClient.CreateServerCallCount()).To(Equal(3))

				_, _, state := groupDB.SaveGroupStateArgsForCall(0)
				Expect(state.Pending).To(HaveLen(3))
				Expect(state.Pending[0].State).To(Equal(models.EntityStateBuilding))
			})

			It("starts the group cooldown", func() {
				groupID, expireAt := groupDB.UpdateGroupCooldownExpireTimeArgsForCall(0)
				Expect(groupID).To(Equal(testGroupID))
				Expect(expireAt).To(Equal(fclock.Now().Add(60 * time.Second).UnixNano()))
			})

			It("records a succeeded scaling history", func() {
				history := groupDB.SaveScalingHistoryArgsForCall(0)
				Expect(history.Status).To(Equal(models.ScalingStatusSucceeded))
				Expect(history.Reason).To(Equal(models.ChangeReasonConvergence))
				Expect(history.NewDesired).To(Equal(3))
			})
		})

		Context("when the group is already converged", func() {
			BeforeEach(func() {
				group = newGroup(0, 10, 2)
				group.State.Active = []models.Entity{
					entity("server-a", models.EntityStateActive, fclock.Now()),
					entity("server-b", models.EntityStateActive, fclock.Now()),
				}
				groupDB.GetGroupReturns(group, nil)
			})

			It("makes no actuator calls", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(novaClient.CreateServerCallCount()).To(Equal(0))
				Expect(novaClient.DeleteServerCallCount()).To(Equal(0))
			})

			It("records an ignored scaling history and no cooldown", func() {
				history := groupDB.SaveScalingHistoryArgsForCall(0)
				Expect(history.Status).To(Equal(models.ScalingStatusIgnored))
				Expect(history.Message).To(Equal("group already converged"))
				Expect(groupDB.UpdateGroupCooldownExpireTimeCallCount()).To(Equal(0))
			})
		})

		Context("when a pending build already covers desired", func() {
			BeforeEach(func() {
				group = newGroup(0, 10, 2)
				group.State.Active = []models.Entity{entity("server-a", models.EntityStateActive, fclock.Now())}
				group.State.Pending = []models.Entity{entity("server-b", models.EntityStateBuilding, fclock.Now())}
				groupDB.GetGroupReturns(group, nil)
			})

			It("does not create more servers", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(novaClient.CreateServerCallCount()).To(Equal(0))
			})
		})

		Context("when actual capacity is above desired", func() {
			BeforeEach(func() {
				now := fclock.Now()
				group = newGroup(0, 10, 1)
				group.State.Active = []models.Entity{
					entity("server-old", models.EntityStateActive, now.Add(-2*time.Hour)),
					entity("server-mid", models.EntityStateActive, now.Add(-1*time.Hour)),
					entity("server-new", models.EntityStateActive, now),
				}
				groupDB.GetGroupReturns(group, nil)
			})

			It("deletes the oldest active servers first", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(novaClient.DeleteServerCallCount()).To(Equal(2))
				first, _ := novaClient.DeleteServerArgsForCall(0)
				second, _ := novaClient.DeleteServerArgsForCall(1)
				Expect(first).To(Equal("server-old"))
				Expect(second).To(Equal("server-mid"))

				_, _, state := groupDB.SaveGroupStateArgsForCall(0)
				Expect(state.Active).To(HaveLen(1))
				Expect(state.Active[0].ID).To(Equal("server-new"))
			})
		})

		Context("when scaling in while builds are in flight", func() {
			BeforeEach(func() {
				now := fclock.Now()
				group = newGroup(0, 10, 1)
				group.State.Active = []models.Entity{entity("server-a", models.EntityStateActive, now.Add(-time.Hour))}
				group.State.Pending = []models.Entity{
					entity("server-b", models.EntityStateBuilding, now.Add(-time.Minute)),
					entity("server-c", models.EntityStateBuilding, now),
				}
				groupDB.GetGroupReturns(group, nil)
			})

			It("parks the newest pending builds in draining instead of deleting actives", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(novaClient.DeleteServerCallCount()).To(Equal(0))

				_, _, state := groupDB.SaveGroupStateArgsForCall(0)
				Expect(state.Pending).To(BeEmpty())
				Expect(state.Draining).To(ConsistOf(
					HaveField("ID", "server-c"),
					HaveField("ID", "server-b"),
				))
				Expect(state.Active).To(HaveLen(1))
			})
		})

		Context("when the group is paused", func() {
			BeforeEach(func() {
				group = newGroup(0, 10, 3)
				group.State.Paused = true
				groupDB.GetGroupReturns(group, nil)
			})

			It("refuses to converge", func() {
				Expect(err).To(BeAssignableToTypeOf(&models.GroupPausedError{}))
				Expect(novaClient.CreateServerCallCount()).To(Equal(0))
			})
		})

		Context("when the group is in ERROR", func() {
			BeforeEach(func() {
				group = newGroup(0, 10, 2)
				group.State.Status = models.GroupStatusError
				group.State.Errors = []string{"previous failure"}
				groupDB.GetGroupReturns(group, nil)
			})

			It("clears the error state and converges", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(novaClient.CreateServerCallCount()).To(Equal(2))

				_, _, state := groupDB.SaveGroupStateArgsForCall(0)
				Expect(state.Status).To(Equal(models.GroupStatusActive))
				Expect(state.Errors).To(BeEmpty())
			})
		})

		Context("when desired falls outside an updated configuration", func() {
			BeforeEach(func() {
				group = newGroup(2, 4, 8)
				groupDB.GetGroupReturns(group, nil)
			})

			It("clamps desired into the configured bounds", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(novaClient.CreateServerCallCount()).To(Equal(4))

				_, _, state := groupDB.SaveGroupStateArgsForCall(0)
				Expect(state.DesiredCapacity).To(Equal(4))
			})
		})

		Context("when server creation keeps failing", func() {
			BeforeEach(func() {
				group = newGroup(0, 10, 5)
				groupDB.GetGroupReturns(group, nil)
				novaClient.CreateServerStub = nil
				novaClient.CreateServerReturns(nil, errors.New("boom"))
			})

			It("halts after the configured consecutive failures and marks the group ERROR", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(novaClient.CreateServerCallCount()).To(Equal(3))

				_, _, state := groupDB.SaveGroupStateArgsForCall(0)
				Expect(state.Status).To(Equal(models.GroupStatusError))

				history := groupDB.SaveScalingHistoryArgsForCall(0)
				Expect(history.Status).To(Equal(models.ScalingStatusFailed))
				Expect(history.Error).NotTo(BeEmpty())
			})
		})

		Context("when server creation fails irrecoverably", func() {
			BeforeEach(func() {
				group = newGroup(0, 10, 5)
				groupDB.GetGroupReturns(group, nil)
				novaClient.CreateServerStub = nil
				novaClient.CreateServerReturns(nil, &nova.APIError{StatusCode: 400, Message: "image not found"})
			})

			It("stops immediately and marks the group ERROR", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(novaClient.CreateServerCallCount()).To(Equal(1))

				_, _, state := groupDB.SaveGroupStateArgsForCall(0)
				Expect(state.Status).To(Equal(models.GroupStatusError))
			})
		})

		Context("when the group does not exist", func() {
			BeforeEach(func() {
				groupDB.GetGroupReturns(nil, &models.NoSuchScalingGroupError{GroupID: testGroupID})
			})

			It("returns the not found error", func() {
				Expect(err).To(BeAssignableToTypeOf(&models.NoSuchScalingGroupError{}))
			})
		})
	})

	Describe("ExecutePolicy", func() {
		var policy *models.ScalingPolicy

		BeforeEach(func() {
			group = newGroup(0, 10, 4)
			now := fclock.Now()
			group.State.Active = []models.Entity{
				entity("server-1", models.EntityStateActive, now),
				entity("server-2", models.EntityStateActive, now),
				entity("server-3", models.EntityStateActive, now),
				entity("server-4", models.EntityStateActive, now),
			}
			groupDB.GetGroupReturns(group, nil)
			policy = &models.ScalingPolicy{
				ID:       testPolicyID,
				Name:     "scale up",
				Type:     models.PolicyTypeWebhook,
				Cooldown: 120,
				Change:   intPtr(2),
			}
			policyDB.GetPolicyReturns(policy, nil)
		})

		JustBeforeEach(func() {
			err = engine.ExecutePolicy(testTenantID, testGroupID, testPolicyID)
		})

		It("applies the adjustment and converges", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(novaClient.CreateServerCallCount()).To(Equal(2))

			_, _, state := groupDB.SaveGroupStateArgsForCall(0)
			Expect(state.DesiredCapacity).To(Equal(6))
		})

		It("starts the policy cooldown after the pass", func() {
			policyID, expireAt := policyDB.UpdatePolicyCooldownExpireTimeArgsForCall(0)
			Expect(policyID).To(Equal(testPolicyID))
			Expect(expireAt).To(Equal(fclock.Now().Add(120 * time.Second).UnixNano()))
		})

		It("records the policy in the scaling history", func() {
			history := groupDB.SaveScalingHistoryArgsForCall(0)
			Expect(history.Status).To(Equal(models.ScalingStatusSucceeded))
			Expect(history.Reason).To(ContainSubstring("scale up"))
			Expect(history.OldDesired).To(Equal(4))
			Expect(history.NewDesired).To(Equal(6))
		})

		Context("when the group cooldown has not expired", func() {
			BeforeEach(func() {
				groupDB.CanScaleGroupReturns(false, fclock.Now().Add(time.Minute).UnixNano(), nil)
			})

			It("rejects the execution", func() {
				Expect(err).To(MatchError(ContainSubstring("group cooldown has not expired")))
				Expect(novaClient.CreateServerCallCount()).To(Equal(0))
			})
		})

		Context("when the policy cooldown has not expired", func() {
			BeforeEach(func() {
				policyDB.CanExecutePolicyReturns(false, fclock.Now().Add(time.Minute).UnixNano(), nil)
			})

			It("rejects the execution", func() {
				Expect(err).To(MatchError(ContainSubstring("policy cooldown has not expired")))
				Expect(novaClient.CreateServerCallCount()).To(Equal(0))
			})
		})

		Context("when the adjustment would not change capacity", func() {
			BeforeEach(func() {
				group.State.DesiredCapacity = 10
				group.State.Active = []models.Entity{}
			})

			It("rejects without a convergence pass and without cooldowns", func() {
				// +2 clamped to maxEntities 10 equals current desired
				Expect(err).To(MatchError(ContainSubstring("would not change capacity")))
				Expect(groupDB.SaveScalingHistoryCallCount()).To(Equal(0))
				Expect(policyDB.UpdatePolicyCooldownExpireTimeCallCount()).To(Equal(0))
				Expect(groupDB.UpdateGroupCooldownExpireTimeCallCount()).To(Equal(0))
			})
		})

		Context("when the group is paused", func() {
			BeforeEach(func() {
				group.State.Paused = true
			})

			It("rejects the execution", func() {
				Expect(err).To(BeAssignableToTypeOf(&models.GroupPausedError{}))
			})
		})

		Context("when the group is in ERROR", func() {
			BeforeEach(func() {
				group.State.Status = models.GroupStatusError
			})

			It("rejects the execution", func() {
				Expect(err).To(MatchError(ContainSubstring("operator attention")))
			})
		})

		Context("when the group is being deleted", func() {
			BeforeEach(func() {
				group.State.Status = models.GroupStatusDeleting
			})

			It("rejects the execution", func() {
				Expect(err).To(MatchError(ContainSubstring("being deleted")))
			})
		})

		Context("when the policy does not exist", func() {
			BeforeEach(func() {
				policyDB.GetPolicyReturns(nil, &models.NoSuchPolicyError{PolicyID: testPolicyID})
			})

			It("returns the not found error", func() {
				Expect(err).To(BeAssignableToTypeOf(&models.NoSuchPolicyError{}))
			})
		})
	})

	Describe("SetPaused", func() {
		BeforeEach(func() {
			group = newGroup(0, 10, 2)
			groupDB.GetGroupReturns(group, nil)
		})

		It("pauses the group", func() {
			Expect(engine.SetPaused(testTenantID, testGroupID, true)).To(Succeed())

			_, _, state := groupDB.SaveGroupStateArgsForCall(0)
			Expect(state.Paused).To(BeTrue())
		})

		It("is idempotent", func() {
			group.State.Paused = true
			Expect(engine.SetPaused(testTenantID, testGroupID, true)).To(Succeed())
			Expect(groupDB.SaveGroupStateCallCount()).To(Equal(0))
		})
	})

	Describe("DeleteGroup", func() {
		BeforeEach(func() {
			group = newGroup(0, 10, 0)
			groupDB.GetGroupReturns(group, nil)
		})

		Context("without force", func() {
			It("deletes an empty group", func() {
				Expect(engine.DeleteGroup(testTenantID, testGroupID, false)).To(Succeed())
				Expect(groupDB.DeleteGroupCallCount()).To(Equal(1))
			})

			It("refuses to delete a group with entities", func() {
				group.State.Active = []models.Entity{entity("server-a", models.EntityStateActive, fclock.Now())}
				err := engine.DeleteGroup(testTenantID, testGroupID, false)
				Expect(err).To(BeAssignableToTypeOf(&models.GroupNotEmptyError{}))
				Expect(groupDB.DeleteGroupCallCount()).To(Equal(0))
			})
		})

		Context("with force", func() {
			BeforeEach(func() {
				now := fclock.Now()
				group.Config.MinEntities = 2
				group.State.DesiredCapacity = 3
				group.State.Active = []models.Entity{
					entity("server-a", models.EntityStateActive, now.Add(-time.Hour)),
					entity("server-b", models.EntityStateActive, now),
				}
				group.State.Pending = []models.Entity{entity("server-c", models.EntityStateBuilding, now)}
			})

			It("zeroes the configuration so nothing can scale back up", func() {
				Expect(engine.DeleteGroup(testTenantID, testGroupID, true)).To(Succeed())

				_, _, conf := groupDB.UpdateGroupConfigurationArgsForCall(0)
				Expect(conf.MinEntities).To(Equal(0))
				Expect(conf.MaxEntities).To(Equal(0))
			})

			It("deletes active servers and parks in-flight builds for draining", func() {
				Expect(engine.DeleteGroup(testTenantID, testGroupID, true)).To(Succeed())

				Expect(novaClient.DeleteServerCallCount()).To(Equal(2))
				_, _, state := groupDB.SaveGroupStateArgsForCall(0)
				Expect(state.Status).To(Equal(models.GroupStatusDeleting))
				Expect(state.Active).To(BeEmpty())
				Expect(state.Pending).To(BeEmpty())
				Expect(state.Draining).To(ConsistOf(HaveField("ID", "server-c")))
				Expect(groupDB.DeleteGroupCallCount()).To(Equal(0))
			})

			It("removes the group record once fully drained", func() {
				group.State.Pending = nil
				Expect(engine.DeleteGroup(testTenantID, testGroupID, true)).To(Succeed())
				Expect(groupDB.DeleteGroupCallCount()).To(Equal(1))
			})
		})
	})

	Describe("ReportEntityActive", func() {
		BeforeEach(func() {
			group = newGroup(0, 10, 2)
			group.LaunchConfig.LoadBalancers = []models.LoadBalancer{
				{LoadBalancerID: "lb-1", Port: 8080},
			}
			group.State.Pending = []models.Entity{entity("server-a", models.EntityStateBuilding, fclock.Now())}
			groupDB.GetGroupReturns(group, nil)
		})

		It("attaches the entity to load balancers and moves it to active", func() {
			Expect(engine.ReportEntityActive(testTenantID, testGroupID, "server-a")).To(Succeed())

			Expect(novaClient.AttachToLoadBalancerCallCount()).To(Equal(1))
			entityID, lb := novaClient.AttachToLoadBalancerArgsForCall(0)
			Expect(entityID).To(Equal("server-a"))
			Expect(lb.LoadBalancerID).To(Equal("lb-1"))

			_, _, state := groupDB.SaveGroupStateArgsForCall(0)
			Expect(state.Pending).To(BeEmpty())
			Expect(state.Active).To(HaveLen(1))
			Expect(state.Active[0].State).To(Equal(models.EntityStateActive))
		})

		Context("when the load balancer is gone", func() {
			BeforeEach(func() {
				novaClient.AttachToLoadBalancerReturns(&nova.APIError{StatusCode: 404, Message: "no such lb"})
			})

			It("marks the group ERROR", func() {
				Expect(engine.ReportEntityActive(testTenantID, testGroupID, "server-a")).To(Succeed())

				_, _, state := groupDB.SaveGroupStateArgsForCall(0)
				Expect(state.Status).To(Equal(models.GroupStatusError))
				Expect(state.Errors).NotTo(BeEmpty())
			})
		})

		Context("when the entity was parked in draining", func() {
			BeforeEach(func() {
				group.State.Pending = nil
				group.State.Draining = []models.Entity{entity("server-a", models.EntityStateBuilding, fclock.Now())}
			})

			It("deletes it as soon as it becomes active", func() {
				Expect(engine.ReportEntityActive(testTenantID, testGroupID, "server-a")).To(Succeed())

				Expect(novaClient.DeleteServerCallCount()).To(Equal(1))
				_, _, state := groupDB.SaveGroupStateArgsForCall(0)
				Expect(state.Draining).To(BeEmpty())
				Expect(state.Active).To(BeEmpty())
			})
		})

		Context("when the group is being deleted", func() {
			BeforeEach(func() {
				group.State.Status = models.GroupStatusDeleting
			})

			It("deletes the entity instead of activating it, then removes the drained group", func() {
				Expect(engine.ReportEntityActive(testTenantID, testGroupID, "server-a")).To(Succeed())

				Expect(novaClient.DeleteServerCallCount()).To(Equal(1))
				Expect(novaClient.AttachToLoadBalancerCallCount()).To(Equal(0))
				Expect(groupDB.DeleteGroupCallCount()).To(Equal(1))
			})
		})

		Context("when the entity is not tracked", func() {
			It("ignores the report", func() {
				Expect(engine.ReportEntityActive(testTenantID, testGroupID, "server-unknown")).To(Succeed())
				Expect(groupDB.SaveGroupStateCallCount()).To(Equal(0))
			})
		})
	})

	Describe("ReportEntityFailed", func() {
		BeforeEach(func() {
			group = newGroup(0, 10, 2)
			group.State.Pending = []models.Entity{entity("server-a", models.EntityStateBuilding, fclock.Now())}
			groupDB.GetGroupReturns(group, nil)
		})

		It("drops the entity and records the failure", func() {
			Expect(engine.ReportEntityFailed(testTenantID, testGroupID, "server-a", "build error")).To(Succeed())

			_, _, state := groupDB.SaveGroupStateArgsForCall(0)
			Expect(state.Pending).To(BeEmpty())
			Expect(state.Errors).To(ConsistOf(ContainSubstring("build error")))
		})

		Context("when the entity was draining", func() {
			BeforeEach(func() {
				group.State.Pending = nil
				group.State.Draining = []models.Entity{entity("server-a", models.EntityStateBuilding, fclock.Now())}
			})

			It("drops it without recording an error", func() {
				Expect(engine.ReportEntityFailed(testTenantID, testGroupID, "server-a", "build error")).To(Succeed())

				_, _, state := groupDB.SaveGroupStateArgsForCall(0)
				Expect(state.Draining).To(BeEmpty())
				Expect(state.Errors).To(BeEmpty())
			})
		})
	})

	Describe("concurrent triggers on one group", func() {
		var (
			createStarted chan struct{}
			createRelease chan struct{}
		)

		BeforeEach(func() {
			group = newGroup(0, 10, 2)

			// the stubs share a store so the second pass reads the state
			// the first pass persisted
			var mu sync.Mutex
			groupDB.GetGroupStub = func(tenantID string, groupID string) (*models.ScalingGroup, error) {
				mu.Lock()
				defer mu.Unlock()
				copied := *group
				return &copied, nil
			}
			groupDB.SaveGroupStateStub = func(tenantID string, groupID string, state *models.GroupState) error {
				mu.Lock()
				defer mu.Unlock()
				group.State = *state
				return nil
			}

			createStarted = make(chan struct{}, 4)
			createRelease = make(chan struct{})
			serial := 0
			novaClient.CreateServerStub = func(*models.LaunchConfiguration) (*nova.EntityHandle, error) {
				createStarted <- struct{}{}
				<-createRelease
				serial++
				return &nova.EntityHandle{ID: fmt.Sprintf("server-%d", serial)}, nil
			}
		})

		It("never issues two actuator batches at once", func() {
			done := make(chan error, 2)
			for i := 0; i < 2; i++ {
				go func() {
					done <- engine.Converge(testTenantID, testGroupID)
				}()
			}

			Eventually(createStarted).Should(Receive())
			Consistently(novaClient.CreateServerCallCount).Should(Equal(1))

			close(createRelease)
			Eventually(done).Should(Receive(BeNil()))
			Eventually(done).Should(Receive(BeNil()))

			Expect(novaClient.CreateServerCallCount()).To(Equal(2))
			Expect(group.State.PendingCapacity()).To(Equal(2))
		})
	})
})
