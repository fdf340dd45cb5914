package sync

import (
	"errors"
	"os"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/tedsuo/ifrit"

	"autoscale/db"
	"autoscale/models"
)

// NewLockRunner returns an ifrit runner that holds the instance lock for as
// long as the process runs. It signals ready once the lock is acquired,
// refreshes the lease every retryInterval, and releases it on shutdown. A
// database failure while refreshing surrenders the lock and stops the
// runner, taking the lock-guarded members down with it.
func NewLockRunner(logger lager.Logger, owner string, ttl time.Duration, retryInterval time.Duration, lockDB db.LockDB) ifrit.Runner {
	return ifrit.RunFunc(func(signals <-chan os.Signal, ready chan<- struct{}) error {
		if owner == "" {
			return errors.New("lock owner is required")
		}

		acquired := false
		claim := func() error {
			ok, err := lockDB.Lock(&models.Lock{Owner: owner, TTL: ttl})
			if err != nil {
				return err
			}
			if ok && !acquired {
				logger.Info("acquired-lock", lager.Data{"owner": owner})
				acquired = true
				close(ready)
			}
			return nil
		}

		if err := claim(); err != nil {
			logger.Error("failed-to-acquire-lock", err)
		}

		ticker := time.NewTicker(retryInterval)
		defer ticker.Stop()
		for {
			select {
			case <-signals:
				logger.Info("releasing-lock", lager.Data{"owner": owner})
				if err := lockDB.Release(owner); err != nil {
					logger.Error("failed-to-release-lock", err)
				}
				return nil

			case <-ticker.C:
				if err := claim(); err != nil {
					logger.Error("failed-to-refresh-lock", err)
					if releaseErr := lockDB.Release(owner); releaseErr != nil {
						logger.Error("failed-to-release-lock", releaseErr)
					}
					return err
				}
			}
		}
	})
}
