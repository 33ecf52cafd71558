package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// Organizational data problems, fixed by HR rather than the caller
	CodeMissingCompany      = "MISSING_COMPANY"
	CodeMissingDepartment   = "MISSING_DEPARTMENT"
	CodeMissingProject      = "MISSING_PROJECT"
	CodePolicyNotConfigured = "POLICY_NOT_CONFIGURED"
	CodeMissingBranch       = "MISSING_BRANCH"
	CodeBranchNotConfigured = "BRANCH_NOT_CONFIGURED"

	// Caller input problems
	CodeInvalidCoordinates = "INVALID_COORDINATES"
	CodeMissingLocation    = "MISSING_LOCATION"
	CodeInvalidEvidence    = "INVALID_EVIDENCE"
	CodeInvalidLogType     = "INVALID_LOG_TYPE"
	CodeInvalidTimestamp   = "INVALID_TIMESTAMP"

	// Attendance decisions
	CodeEmployeeNotFound = "EMPLOYEE_NOT_FOUND"
	CodeEmployeeInactive = "EMPLOYEE_INACTIVE"
	CodeGeofenceExceeded = "GEOFENCE_EXCEEDED"
	CodeEvidenceRequired = "EVIDENCE_REQUIRED"
	CodeEvidenceNotFound = "EVIDENCE_NOT_FOUND"
	CodeDuplicateEvent   = "DUPLICATE_EVENT"

	// Server errors (5xx)
	CodeInternalError         = "INTERNAL_ERROR"
	CodeServiceUnavailable    = "SERVICE_UNAVAILABLE"
	CodeDependencyUnavailable = "DEPENDENCY_UNAVAILABLE"
)
