package postgres

import (
	"fmt"
	"time"

	apperrors "files-manager/pkg/errors"
)

const (
	poolHealthCheckPeriod = time.Minute
	poolMaxConnLifetime   = time.Hour
	poolMaxConnIdleTime   = 30 * time.Minute
	dbPingTimeout         = 5 * time.Second

	errUserNotFound = "user not found"
	errFileNotFound = "file not found"
	errEmailExists  = "Already exist"

	errFailedParseDatabaseConfigFmt  = "failed to parse database config: %w"
	errFailedCreateConnectionPoolFmt = "failed to create connection pool: %w"
	errFailedPingDatabaseFmt         = "failed to ping database: %w"

	msgFailedCreateUser = "failed to create user"
	msgFailedGetUser    = "failed to get user"
	msgFailedCountUsers = "failed to count users"

	msgFailedCreateFile  = "failed to create file"
	msgFailedGetFile     = "failed to get file"
	msgFailedListFiles   = "failed to list files"
	msgFailedScanFile    = "failed to scan file"
	msgFailedSetPublic   = "failed to set file visibility"
	msgFailedCountFiles  = "failed to count files"
	msgFailedIterateFile = "error iterating files"
)

// Infra failures carry the catalog error kind so callers can report them as
// one category without inspecting pg internals.
var (
	errFailedParseDatabaseConfig  = func(err error) error { return fmt.Errorf(errFailedParseDatabaseConfigFmt, err) }
	errFailedCreateConnectionPool = func(err error) error { return fmt.Errorf(errFailedCreateConnectionPoolFmt, err) }
	errFailedPingDatabase         = func(err error) error { return fmt.Errorf(errFailedPingDatabaseFmt, err) }
	errFailedCreateUser           = func(err error) error { return apperrors.Catalog(msgFailedCreateUser, err) }
	errFailedGetUser              = func(err error) error { return apperrors.Catalog(msgFailedGetUser, err) }
	errFailedCountUsers           = func(err error) error { return apperrors.Catalog(msgFailedCountUsers, err) }
	errFailedCreateFile           = func(err error) error { return apperrors.Catalog(msgFailedCreateFile, err) }
	errFailedGetFile              = func(err error) error { return apperrors.Catalog(msgFailedGetFile, err) }
	errFailedListFiles            = func(err error) error { return apperrors.Catalog(msgFailedListFiles, err) }
	errFailedScanFile             = func(err error) error { return apperrors.Catalog(msgFailedScanFile, err) }
	errFailedSetPublic            = func(err error) error { return apperrors.Catalog(msgFailedSetPublic, err) }
	errFailedCountFiles           = func(err error) error { return apperrors.Catalog(msgFailedCountFiles, err) }
	errFailedIterateFiles         = func(err error) error { return apperrors.Catalog(msgFailedIterateFile, err) }
)
