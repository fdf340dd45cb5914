package server

import (
	"fmt"
	"net/http"

	"code.cloudfoundry.org/cfhttp"
	"code.cloudfoundry.org/lager"
	"github.com/gorilla/mux"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"

	"autoscale/config"
	"autoscale/convergence"
	"autoscale/db"
	"autoscale/healthendpoint"
	"autoscale/policyvalidator"
	"autoscale/ratelimiter"
	"autoscale/routes"
)

type VarsFunc func(w http.ResponseWriter, r *http.Request, vars map[string]string)

func (vh VarsFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vh(w, r, vars)
}

func NewServer(logger lager.Logger, conf *config.Config, groupDB db.GroupDB, policyDB db.PolicyDB,
	webhookDB db.WebhookDB, engine convergence.Engine,
	httpStatusCollector healthendpoint.HTTPStatusCollector) (ifrit.Runner, error) {
	policyValidator := policyvalidator.NewPolicyValidator()
	groupHandler := NewGroupHandler(logger, groupDB, policyDB, engine, policyValidator,
		conf.Quota.MaxGroups, conf.Quota.MaxPolicies)
	policyHandler := NewPolicyHandler(logger, policyDB, engine, policyValidator, conf.Quota.MaxPolicies)
	webhookHandler := NewWebhookHandler(logger, webhookDB, engine, conf.Quota.MaxWebhooks)

	httpStatusCollectMiddleware := healthendpoint.NewHTTPStatusCollectMiddleware(httpStatusCollector)
	authMiddleware := NewAuthMiddleware(logger)

	r := routes.ApiRoutes()
	r.Use(httpStatusCollectMiddleware.Collect)
	r.Use(authMiddleware.CheckAuthToken)
	if conf.RateLimit.MaxAmount > 0 {
		tenantLimiter := ratelimiter.NewRateLimiter(conf.RateLimit.MaxAmount, conf.RateLimit.ValidDuration, logger.Session("tenant-ratelimiter"))
		ipLimiter := ratelimiter.NewRateLimiter(conf.RateLimit.MaxAmount, conf.RateLimit.ValidDuration, logger.Session("ip-ratelimiter"))
		tenantMiddleware := ratelimiter.NewRateLimiterMiddleware("tenantId", tenantLimiter, logger.Session("tenant-ratelimiter-middleware"))
		ipMiddleware := ratelimiter.NewRateLimiterMiddlewareIPBased(ipLimiter, logger.Session("ip-ratelimiter-middleware"))
		r.Use(func(next http.Handler) http.Handler {
			tenantLimited := tenantMiddleware.CheckRateLimit(next)
			ipLimited := ipMiddleware.CheckRateLimit(next)
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				if route := mux.CurrentRoute(req); route != nil && route.GetName() == routes.AnonymousExecuteRouteName {
					ipLimited.ServeHTTP(w, req)
					return
				}
				tenantLimited.ServeHTTP(w, req)
			})
		})
	}

	r.Get(routes.CreateGroupRouteName).Handler(VarsFunc(groupHandler.CreateGroup))
	r.Get(routes.ListGroupsRouteName).Handler(VarsFunc(groupHandler.ListGroups))
	r.Get(routes.GetGroupRouteName).Handler(VarsFunc(groupHandler.GetGroup))
	r.Get(routes.DeleteGroupRouteName).Handler(VarsFunc(groupHandler.DeleteGroup))
	r.Get(routes.GetGroupConfigRouteName).Handler(VarsFunc(groupHandler.GetGroupConfig))
	r.Get(routes.UpdateGroupConfigRouteName).Handler(VarsFunc(groupHandler.UpdateGroupConfig))
	r.Get(routes.GetLaunchConfigRouteName).Handler(VarsFunc(groupHandler.GetLaunchConfig))
	r.Get(routes.UpdateLaunchConfigRouteName).Handler(VarsFunc(groupHandler.UpdateLaunchConfig))
	r.Get(routes.GetGroupStateRouteName).Handler(VarsFunc(groupHandler.GetGroupState))
	r.Get(routes.PauseGroupRouteName).Handler(VarsFunc(groupHandler.PauseGroup))
	r.Get(routes.ResumeGroupRouteName).Handler(VarsFunc(groupHandler.ResumeGroup))
	r.Get(routes.ConvergeGroupRouteName).Handler(VarsFunc(groupHandler.ConvergeGroup))
	r.Get(routes.GetScalingHistoriesRouteName).Handler(VarsFunc(groupHandler.GetScalingHistories))

	r.Get(routes.CreatePoliciesRouteName).Handler(VarsFunc(policyHandler.CreatePolicies))
	r.Get(routes.ListPoliciesRouteName).Handler(VarsFunc(policyHandler.ListPolicies))
	r.Get(routes.GetPolicyRouteName).Handler(VarsFunc(policyHandler.GetPolicy))
	r.Get(routes.UpdatePolicyRouteName).Handler(VarsFunc(policyHandler.UpdatePolicy))
	r.Get(routes.DeletePolicyRouteName).Handler(VarsFunc(policyHandler.DeletePolicy))
	r.Get(routes.ExecutePolicyRouteName).Handler(VarsFunc(policyHandler.ExecutePolicy))

	r.Get(routes.CreateWebhooksRouteName).Handler(VarsFunc(webhookHandler.CreateWebhooks))
	r.Get(routes.ListWebhooksRouteName).Handler(VarsFunc(webhookHandler.ListWebhooks))
	r.Get(routes.GetWebhookRouteName).Handler(VarsFunc(webhookHandler.GetWebhook))
	r.Get(routes.UpdateWebhookRouteName).Handler(VarsFunc(webhookHandler.UpdateWebhook))
	r.Get(routes.DeleteWebhookRouteName).Handler(VarsFunc(webhookHandler.DeleteWebhook))
	r.Get(routes.AnonymousExecuteRouteName).Handler(VarsFunc(webhookHandler.AnonymousExecute))

	addr := fmt.Sprintf("0.0.0.0:%d", conf.Server.Port)
	logger.Info("new-http-server", lager.Data{"serverConfig": conf.Server})

	if (conf.Server.TLS.KeyFile != "") && (conf.Server.TLS.CertFile != "") {
		tlsConfig, err := cfhttp.NewTLSConfig(conf.Server.TLS.CertFile, conf.Server.TLS.KeyFile, conf.Server.TLS.CACertFile)
		if err != nil {
			logger.Error("failed-new-server-new-tls-config", err, lager.Data{"tls": conf.Server.TLS})
			return nil, err
		}
		return http_server.NewTLSServer(addr, r, tlsConfig), nil
	}

	return http_server.New(addr, r), nil
}
