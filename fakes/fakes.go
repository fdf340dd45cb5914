package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o ./fake_group_db.go ../db GroupDB
//counterfeiter:generate -o ./fake_policy_db.go ../db PolicyDB
//counterfeiter:generate -o ./fake_webhook_db.go ../db WebhookDB
//counterfeiter:generate -o ./fake_nova_client.go ../nova Client
//counterfeiter:generate -o ./fake_engine.go ../convergence Engine
//counterfeiter:generate -o ./fake_ratelimiter.go ../ratelimiter Limiter
//counterfeiter:generate -o ./fake_httpstatus_collector.go ../healthendpoint HTTPStatusCollector
