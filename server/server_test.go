package server_test

import (
	"fmt"
	"net/http"

	"code.cloudfoundry.org/lager"
	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/ginkgomon"

	"autoscale/config"
	"autoscale/fakes"
	"autoscale/models"
	"autoscale/routes"
	"autoscale/server"
)

var (
	serverProcess ifrit.Process
	serverURL     string
)

var _ = BeforeSuite(func() {
	conf := &config.Config{
		Server: config.ServerConfig{Port: 18080},
		Quota:  config.QuotaConfig{MaxGroups: 10, MaxPolicies: 10, MaxWebhooks: 10},
	}
	groupDB := &fakes.FakeGroupDB{}
	policyDB := &fakes.FakePolicyDB{}
	webhookDB := &fakes.FakeWebhookDB{}
	webhookDB.GetPolicyByCapabilityReturns(&models.PolicyRef{
		TenantID: testTenantID,
		GroupID:  testGroupID,
		PolicyID: testPolicyID,
	}, nil)
	engine := &fakes.FakeEngine{}
	httpStatusCollector := &fakes.FakeHTTPStatusCollector{}

	httpServer, err := server.NewServer(lager.NewLogger("server-test"), conf,
		groupDB, policyDB, webhookDB, engine, httpStatusCollector)
	Expect(err).NotTo(HaveOccurred())
	serverProcess = ginkgomon.Invoke(httpServer)
	serverURL = fmt.Sprintf("http://127.0.0.1:%d", conf.Server.Port)
})

var _ = AfterSuite(func() {
	ginkgomon.Interrupt(serverProcess)
})

var _ = Describe("Server", func() {
	var (
		urlPath string
		rsp     *http.Response
		err     error
	)

	Context("when listing groups", func() {
		BeforeEach(func() {
			route := mux.Route{}
			uPath, err := route.Path(routes.GroupsPath).URLPath("tenantId", testTenantID)
			Expect(err).NotTo(HaveOccurred())
			urlPath = uPath.Path
		})

		Context("with an auth token", func() {
			JustBeforeEach(func() {
				req, reqErr := http.NewRequest(http.MethodGet, serverURL+urlPath, nil)
				Expect(reqErr).NotTo(HaveOccurred())
				req.Header.Set("X-Auth-Token", "test-token")
				rsp, err = http.DefaultClient.Do(req)
			})

			It("should return 200", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(rsp.StatusCode).To(Equal(http.StatusOK))
				rsp.Body.Close()
			})
		})

		Context("without an auth token", func() {
			JustBeforeEach(func() {
				rsp, err = http.Get(serverURL + urlPath)
			})

			It("should return 401", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(rsp.StatusCode).To(Equal(http.StatusUnauthorized))
				rsp.Body.Close()
			})
		})

		Context("when requesting the wrong path", func() {
			JustBeforeEach(func() {
				rsp, err = http.Get(serverURL + "/not-exist-path")
			})

			It("should return 404", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(rsp.StatusCode).To(Equal(http.StatusNotFound))
				rsp.Body.Close()
			})
		})

		Context("when using the wrong method", func() {
			JustBeforeEach(func() {
				req, reqErr := http.NewRequest(http.MethodPatch, serverURL+urlPath, nil)
				Expect(reqErr).NotTo(HaveOccurred())
				req.Header.Set("X-Auth-Token", "test-token")
				rsp, err = http.DefaultClient.Do(req)
			})

			It("should return 405", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(rsp.StatusCode).To(Equal(http.StatusMethodNotAllowed))
				rsp.Body.Close()
			})
		})
	})

	Context("when executing an anonymous webhook", func() {
		BeforeEach(func() {
			route := mux.Route{}
			uPath, err := route.Path(routes.AnonymousExecutePath).URLPath(
				"capabilityVersion", models.CapabilityVersion, "capabilityHash", "abcdef0123456789")
			Expect(err).NotTo(HaveOccurred())
			urlPath = uPath.Path
		})

		JustBeforeEach(func() {
			rsp, err = http.Post(serverURL+urlPath, "application/json", nil)
		})

		It("should return 202 without an auth token", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(rsp.StatusCode).To(Equal(http.StatusAccepted))
			rsp.Body.Close()
		})
	})
})
