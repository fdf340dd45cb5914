package main

import (
	"flag"
	"fmt"
	"os"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"

	"autoscale/config"
	"autoscale/convergence"
	"autoscale/db"
	"autoscale/db/sqldb"
	"autoscale/healthendpoint"
	"autoscale/helpers"
	"autoscale/nova"
	"autoscale/scheduler"
	"autoscale/server"
	"autoscale/sync"
)

func main() {
	var path string
	flag.StringVar(&path, "c", "", "config file")
	flag.Parse()
	if path == "" {
		fmt.Fprintln(os.Stderr, "missing config file")
		os.Exit(1)
	}

	configFile, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to open config file '%s' : %s\n", path, err.Error())
		os.Exit(1)
	}

	var conf *config.Config
	conf, err = config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to read config file '%s' : %s\n", path, err.Error())
		os.Exit(1)
	}
	configFile.Close()

	err = conf.Validate()
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to validate configuration : %s\n", err.Error())
		os.Exit(1)
	}

	logger := helpers.InitLoggerFromConfig(&conf.Logging, "autoscale")

	httpStatusCollector := healthendpoint.NewHTTPStatusCollector("autoscale", "api")
	convergenceCollector := healthendpoint.NewConvergenceCollector("autoscale", "convergence")
	promRegistry := prometheus.NewRegistry()
	healthRegistry := healthendpoint.New(promRegistry, map[string]prometheus.Gauge{
		"openConnection_groupDB": prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "autoscale",
				Subsystem: "api",
				Name:      "openConnection_groupDB",
				Help:      "Number of open connections to the group DB",
			},
		),
		"openConnection_policyDB": prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "autoscale",
				Subsystem: "api",
				Name:      "openConnection_policyDB",
				Help:      "Number of open connections to the policy DB",
			},
		),
		"openConnection_webhookDB": prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "autoscale",
				Subsystem: "api",
				Name:      "openConnection_webhookDB",
				Help:      "Number of open connections to the webhook DB",
			},
		),
	}, true, logger.Session("autoscale-prometheus"))
	healthendpoint.RegisterCollectors(promRegistry, []prometheus.Collector{httpStatusCollector, convergenceCollector},
		false, logger.Session("autoscale-prometheus"))

	aClock := clock.NewClock()
	novaClient := nova.NewClient(&conf.Nova, logger.Session("nova"), aClock)
	err = novaClient.Login()
	if err != nil {
		logger.Error("failed to login cloud identity service", err, lager.Data{"identityURL": conf.Nova.IdentityURL})
		os.Exit(1)
	}

	var groupDB db.GroupDB
	groupDB, err = sqldb.NewGroupSQLDB(conf.DB.GroupDB, logger.Session("group-db"))
	if err != nil {
		logger.Error("failed to connect group database", err, lager.Data{"dbConfig": conf.DB.GroupDB})
		os.Exit(1)
	}
	groupDB.EmitHealthMetrics(healthRegistry, aClock, conf.Health.EmitInterval)
	defer groupDB.Close()

	var policyDB db.PolicyDB
	policyDB, err = sqldb.NewPolicySQLDB(conf.DB.PolicyDB, logger.Session("policy-db"))
	if err != nil {
		logger.Error("failed to connect policy database", err, lager.Data{"dbConfig": conf.DB.PolicyDB})
		os.Exit(1)
	}
	policyDB.EmitHealthMetrics(healthRegistry, aClock, conf.Health.EmitInterval)
	defer policyDB.Close()

	var webhookDB db.WebhookDB
	webhookDB, err = sqldb.NewWebhookSQLDB(conf.DB.WebhookDB, logger.Session("webhook-db"))
	if err != nil {
		logger.Error("failed to connect webhook database", err, lager.Data{"dbConfig": conf.DB.WebhookDB})
		os.Exit(1)
	}
	webhookDB.EmitHealthMetrics(healthRegistry, aClock, conf.Health.EmitInterval)
	defer webhookDB.Close()

	engine := convergence.NewEngine(logger, novaClient, groupDB, policyDB, aClock,
		convergenceCollector, conf.Convergence.LockSize, conf.Convergence.MaxConsecutiveFailures)

	httpServer, err := server.NewServer(logger.Session("http-server"), conf, groupDB, policyDB, webhookDB, engine, httpStatusCollector)
	if err != nil {
		logger.Error("failed to create http server", err)
		os.Exit(1)
	}

	healthServer, err := healthendpoint.NewServer(logger.Session("health-server"), conf.Health.Port, promRegistry)
	if err != nil {
		logger.Error("failed to create health server", err)
		os.Exit(1)
	}

	nonLockMembers := grouper.Members{
		{Name: "http_server", Runner: httpServer},
		{Name: "health_server", Runner: healthServer},
	}

	entityMonitor := convergence.NewMonitor(logger, aClock, conf.Convergence.MonitorInterval, groupDB, novaClient, engine)
	policyScheduler := scheduler.New(logger, aClock, conf.Scheduler.SyncInterval, conf.Scheduler.FiringWindow, policyDB, engine)

	lockMembers := grouper.Members{
		{Name: "entity_monitor", Runner: entityMonitor},
		{Name: "policy_scheduler", Runner: policyScheduler},
	}

	if conf.EnableDBLock {
		const lockTableName = "autoscale_lock"
		guid, err := helpers.GenerateGUID(logger)
		if err != nil {
			logger.Error("failed-to-generate-guid", err)
		}
		logger.Debug("database-lock-feature-enabled")
		var lockDB db.LockDB
		lockDB, err = sqldb.NewLockSQLDB(conf.DB.LockDB, lockTableName, logger.Session("lock-db"))
		if err != nil {
			logger.Error("failed-to-connect-lock-database", err, lager.Data{"dbConfig": conf.DB.LockDB})
			os.Exit(1)
		}
		defer func() {
			lockDB.Release(guid)
			lockDB.Close()
		}()

		dbLockMaintainer := sync.NewLockRunner(logger.Session("db-lock"), guid,
			conf.DBLock.LockTTL, conf.DBLock.LockRetryInterval, lockDB)
		lockMembers = append(grouper.Members{{Name: "db-lock-maintainer", Runner: dbLockMaintainer}}, lockMembers...)
	}

	goRoutineDone := make(chan struct{})
	go func() {
		defer close(goRoutineDone)
		lockMonitor := ifrit.Invoke(sigmon.New(grouper.NewOrdered(os.Interrupt, lockMembers)))
		lmerr := <-lockMonitor.Wait()
		if lmerr != nil {
			logger.Error("background-workers-exited-with-failure", lmerr)
			os.Exit(1)
		}
	}()
	nonLockMonitor := ifrit.Invoke(sigmon.New(grouper.NewOrdered(os.Interrupt, nonLockMembers)))
	logger.Info("started")
	nlmerr := <-nonLockMonitor.Wait()
	if nlmerr != nil {
		logger.Error("http-server-exited-with-failure", nlmerr)
		os.Exit(1)
	}

	<-goRoutineDone
	logger.Info("exited")
}
