package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaIndexError

	// Seed errors
	SeedFileError
	SeedValidationError
	SeedInsertError

	// Input errors
	InputReadError
	InputColumnsError
	InputMetadataError
	InputEmptyError
	InputDuplicateError

	// Staging errors
	StagingWriteError
	StagingCleanupError
	StagingSentinelError

	// Reconcile errors
	ReconcileMissingToolError
	ReconcileTxBeginError
	ReconcileLockError
	ReconcileLookupError
	ReconcileInsertError
	ReconcileCommitError
	ReconcileConfirmError
	ReconcileAbortedError
	ReconcileCancelledError
)
