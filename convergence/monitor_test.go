package convergence_test

import (
	"os"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tedsuo/ifrit"

	"autoscale/convergence"
	"autoscale/fakes"
	"autoscale/models"
	"autoscale/nova"
)

var _ = Describe("Monitor", func() {
	const interval = 10 * time.Second

	var (
		monitor    *convergence.Monitor
		groupDB    *fakes.FakeGroupDB
		novaClient *fakes.FakeNovaClient
		engine     *fakes.FakeEngine
		fclock     *fakeclock.FakeClock
		process    ifrit.Process
		group      *models.ScalingGroup
	)

	BeforeEach(func() {
		groupDB = &fakes.FakeGroupDB{}
		novaClient = &fakes.FakeNovaClient{}
		engine = &fakes.FakeEngine{}
		fclock = fakeclock.NewFakeClock(time.Now())

		group = &models.ScalingGroup{
			ID:       testGroupID,
			TenantID: testTenantID,
			State: models.GroupState{
				Status:          models.GroupStatusActive,
				DesiredCapacity: 1,
				Pending: []models.Entity{
					{ID: "server-a", State: models.EntityStateBuilding, Created: fclock.Now()},
				},
			},
		}
		groupDB.ListGroupsWithPendingReturns([]*models.ScalingGroup{group}, nil)

		monitor = convergence.NewMonitor(lagertest.NewTestLogger("monitor"), fclock, interval, groupDB, novaClient, engine)
	})

	JustBeforeEach(func() {
		process = ifrit.Invoke(monitor)
	})

	AfterEach(func() {
		process.Signal(os.Interrupt)
		Eventually(process.Wait()).Should(Receive(BeNil()))
	})

	Context("when a pending server becomes active", func() {
		BeforeEach(func() {
			novaClient.GetServerStatusReturns(nova.ServerStatusActive, nil)
		})

		It("reports the completion to the engine", func() {
			fclock.WaitForWatcherAndIncrement(interval)

			Eventually(engine.ReportEntityActiveCallCount).Should(Equal(1))
			tenantID, groupID, entityID := engine.ReportEntityActiveArgsForCall(0)
			Expect(tenantID).To(Equal(testTenantID))
			Expect(groupID).To(Equal(testGroupID))
			Expect(entityID).To(Equal("server-a"))
		})
	})

	Context("when a pending server enters ERROR", func() {
		BeforeEach(func() {
			novaClient.GetServerStatusReturns(nova.ServerStatusError, nil)
		})

		It("reports the failure to the engine", func() {
			fclock.WaitForWatcherAndIncrement(interval)

			Eventually(engine.ReportEntityFailedCallCount).Should(Equal(1))
			_, _, entityID, reason := engine.ReportEntityFailedArgsForCall(0)
			Expect(entityID).To(Equal("server-a"))
			Expect(reason).To(ContainSubstring("ERROR"))
		})
	})

	Context("when a pending server has disappeared", func() {
		BeforeEach(func() {
			novaClient.GetServerStatusReturns("", &nova.APIError{StatusCode: 404, Message: "no such server"})
		})

		It("reports the failure to the engine", func() {
			fclock.WaitForWatcherAndIncrement(interval)

			Eventually(engine.ReportEntityFailedCallCount).Should(Equal(1))
			_, _, entityID, reason := engine.ReportEntityFailedArgsForCall(0)
			Expect(entityID).To(Equal("server-a"))
			Expect(reason).To(ContainSubstring("disappeared"))
		})
	})

	Context("when a pending server is still building", func() {
		BeforeEach(func() {
			novaClient.GetServerStatusReturns(nova.ServerStatusBuild, nil)
		})

		It("reports nothing and polls again next cycle", func() {
			fclock.WaitForWatcherAndIncrement(interval)
			Eventually(novaClient.GetServerStatusCallCount).Should(Equal(1))

			fclock.WaitForWatcherAndIncrement(interval)
			Eventually(novaClient.GetServerStatusCallCount).Should(Equal(2))

			Expect(engine.ReportEntityActiveCallCount()).To(Equal(0))
			Expect(engine.ReportEntityFailedCallCount()).To(Equal(0))
		})
	})

	Context("when a draining server is polled", func() {
		BeforeEach(func() {
			group.State.Pending = nil
			group.State.Draining = []models.Entity{
				{ID: "server-d", State: models.EntityStateBuilding, Created: fclock.Now()},
			}
			novaClient.GetServerStatusReturns(nova.ServerStatusActive, nil)
		})

		It("is checked like a pending one", func() {
			fclock.WaitForWatcherAndIncrement(interval)

			Eventually(engine.ReportEntityActiveCallCount).Should(Equal(1))
			_, _, entityID := engine.ReportEntityActiveArgsForCall(0)
			Expect(entityID).To(Equal("server-d"))
		})
	})
})
