package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"   // queued for processing
	JobStatusRunning JobStatus = "RUNNING"  // in progress
	JobStatusOCROK   JobStatus = "OCR_OK"   // stage 1 completed (lines/tokens extracted)
	JobStatusParseOK JobStatus = "PARSE_OK" // stage 2 completed (records reconciled)
	JobStatusFailed  JobStatus = "FAILED"   // terminal failure
)

// JobStatuses holds the allowed status values for ExtractJob rows.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusOCROK),
	string(JobStatusParseOK),
	string(JobStatusFailed),
}
