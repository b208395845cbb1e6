package constants

// JobStatus is the canonical status for rows in extract_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"     // queued for processing
	JobStatusRunning   JobStatus = "RUNNING"    // in progress
	JobStatusExtractOK JobStatus = "EXTRACT_OK" // extraction finished, courses persisted
	JobStatusEmpty     JobStatus = "EMPTY"      // run finished but no courses were found
	JobStatusFailed    JobStatus = "FAILED"     // terminal failure
)
