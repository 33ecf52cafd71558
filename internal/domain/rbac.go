package domain

// EnforceRequest asks whether the caller's role may perform action on resource.
type EnforceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	CompanyID  string `json:"company_id" binding:"required"`
	Role       string `json:"role" binding:"required"`
	Resource   string `json:"resource" binding:"required"`
	Action     string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

const (
	ResourceCheckin       = "checkin"
	ResourceConfiguration = "attendance_configuration"
	ResourceEvidence      = "evidence"

	ActionCreate    = "create"
	ActionRead      = "read"
	ActionRecordAny = "record_any"
	ActionReadAny   = "read_any"
	ActionExport    = "export"
)
