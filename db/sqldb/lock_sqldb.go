package sqldb

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"time"

	"code.cloudfoundry.org/lager"
	_ "github.com/lib/pq"

	"autoscale/db"
	"autoscale/models"
)

type LockSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	table    string
	sqldb    *sql.DB
}

func NewLockSQLDB(dbConfig db.DatabaseConfig, table string, logger lager.Logger) (*LockSQLDB, error) {
	sqldb, err := sql.Open(db.PostgresDriverName, dbConfig.URL)
	if err != nil {
		logger.Error("open-lock-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	err = sqldb.Ping()
	if err != nil {
		sqldb.Close()
		logger.Error("ping-lock-db", err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	sqldb.SetConnMaxLifetime(dbConfig.ConnectionMaxLifetime)
	sqldb.SetMaxIdleConns(dbConfig.MaxIdleConnections)
	sqldb.SetMaxOpenConns(dbConfig.MaxOpenConnections)

	return &LockSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
		table:    table,
	}, nil
}

func (ldb *LockSQLDB) Close() error {
	err := ldb.sqldb.Close()
	if err != nil {
		ldb.logger.Error("close-lock-db", err, lager.Data{"dbConfig": ldb.dbConfig})
		return err
	}
	return nil
}

func (ldb *LockSQLDB) fetch(tx *sql.Tx) (*models.Lock, error) {
	ldb.logger.Debug("fetching-lock")
	var (
		owner     string
		timestamp time.Time
		ttl       time.Duration
	)

	tquery := "LOCK TABLE " + ldb.table + " IN ACCESS EXCLUSIVE MODE"
	if _, err := tx.Exec(tquery); err != nil {
		ldb.logger.Error("failed-to-set-table-level-lock", err)
		return &models.Lock{}, err
	}

	query := "SELECT owner,lock_timestamp,ttl FROM " + ldb.table + " LIMIT 1 FOR UPDATE NOWAIT"
	row := tx.QueryRow(query)
	err := row.Scan(&owner, &timestamp, &ttl)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		ldb.logger.Error("failed-to-fetch-lock-details", err)
		return &models.Lock{}, err
	}
	return &models.Lock{Owner: owner, LastModifiedTimestamp: timestamp, TTL: ttl}, nil
}

func (ldb *LockSQLDB) remove(owner string, tx *sql.Tx) error {
	ldb.logger.Debug("removing-lock", lager.Data{"Owner": owner})
	query := "DELETE FROM " + ldb.table + " WHERE owner = $1"
	if _, err := tx.Exec(query, owner); err != nil {
		ldb.logger.Error("failed-to-delete-lock-details", err)
		return err
	}
	return nil
}

func (ldb *LockSQLDB) insert(lockDetails *models.Lock, tx *sql.Tx) error {
	ldb.logger.Info("inserting-the-lock-details", lager.Data{"Owner": lockDetails.Owner, "ttl": lockDetails.TTL})
	currentTimestamp, err := ldb.getDatabaseTimestamp(tx)
	if err != nil {
		ldb.logger.Error("error-getting-timestamp-while-inserting-lock-details", err)
		return err
	}
	query := "INSERT INTO " + ldb.table + " (owner,lock_timestamp,ttl) VALUES ($1,$2,$3)"
	if _, err = tx.Exec(query, lockDetails.Owner, currentTimestamp, int64(lockDetails.TTL/time.Second)); err != nil {
		ldb.logger.Error("failed-to-insert-lock-details", err)
		return err
	}
	return err
}

func (ldb *LockSQLDB) renew(owner string, tx *sql.Tx) error {
	ldb.logger.Debug("renewing-lock", lager.Data{"Owner": owner})
	currentTimestamp, err := ldb.getDatabaseTimestamp(tx)
	if err != nil {
		ldb.logger.Error("error-getting-timestamp-while-renewing-lock", err)
		return err
	}
	updatequery := "UPDATE " + ldb.table + " SET lock_timestamp=$1 WHERE owner=$2"
	if _, err = tx.Exec(updatequery, currentTimestamp, owner); err != nil {
		ldb.logger.Error("failed-to-update-lock-details-during-lock-renewal", err)
		return err
	}
	return err
}

func (ldb *LockSQLDB) Release(owner string) error {
	ldb.logger.Debug("releasing-lock", lager.Data{"Owner": owner})
	return ldb.transact(func(tx *sql.Tx) error {
		return ldb.remove(owner, tx)
	})
}

func (ldb *LockSQLDB) Lock(lock *models.Lock) (bool, error) {
	ldb.logger.Debug("acquiring-lock", lager.Data{"Owner": lock.Owner})
	isLockAcquired := true
	err := ldb.transact(func(tx *sql.Tx) error {
		newLock := false
		fetchedLock, err := ldb.fetch(tx)
		if err == nil && fetchedLock == nil {
			ldb.logger.Debug("no-one-holds-the-lock")
			newLock = true
		} else if err != nil {
			isLockAcquired = false
			return err
		} else if fetchedLock.Owner != lock.Owner && fetchedLock.Owner != "" {
			lastUpdatedTimestamp := fetchedLock.LastModifiedTimestamp
			currentTimestamp, err := ldb.getDatabaseTimestamp(tx)
			if err != nil {
				ldb.logger.Error("error-getting-timestamp-while-fetching-lock-details", err)
				isLockAcquired = false
				return err
			}
			if lastUpdatedTimestamp.Add(time.Second * fetchedLock.TTL).Before(currentTimestamp) {
				ldb.logger.Info("lock-expired", lager.Data{"Owner": fetchedLock.Owner})
				if err = ldb.remove(fetchedLock.Owner, tx); err != nil {
					isLockAcquired = false
					return err
				}
				newLock = true
			} else {
				ldb.logger.Debug("lock-still-valid", lager.Data{"Owner": fetchedLock.Owner})
				isLockAcquired = false
				return nil
			}
		}

		if newLock {
			if err = ldb.insert(lock, tx); err != nil {
				isLockAcquired = false
				return err
			}
			ldb.logger.Info("acquired-lock-successfully")
		} else {
			if err = ldb.renew(lock.Owner, tx); err != nil {
				isLockAcquired = false
				return err
			}
			ldb.logger.Debug("renewed-lock-successfully")
		}
		return nil
	})

	return isLockAcquired, err
}

func (ldb *LockSQLDB) getDatabaseTimestamp(tx *sql.Tx) (time.Time, error) {
	var currentTimestamp time.Time
	err := tx.QueryRow("SELECT NOW() AT TIME ZONE 'utc'").Scan(&currentTimestamp)
	if err != nil {
		ldb.logger.Error("failed-fetching-timestamp", err)
		return time.Time{}, err
	}
	return currentTimestamp, nil
}

func (ldb *LockSQLDB) transact(f func(tx *sql.Tx) error) error {
	var err error
	for attempts := 0; attempts < 3; attempts++ {
		err = func() error {
			tx, err := ldb.sqldb.Begin()
			if err != nil {
				ldb.logger.Error("failed-starting-transaction", err)
				return err
			}
			defer func() {
				_ = tx.Rollback()
			}()

			if err = f(tx); err != nil {
				return err
			}

			if err = tx.Commit(); err != nil {
				ldb.logger.Error("failed-committing-transaction", err)
			}
			return err
		}()

		// sql package does not always retry on ErrBadConn
		if attempts >= 2 || !errors.Is(err, driver.ErrBadConn) {
			break
		}
		ldb.logger.Debug("wait-before-retry-for-transaction", lager.Data{"attempts": attempts})
		time.Sleep(500 * time.Millisecond)
	}

	return err
}
