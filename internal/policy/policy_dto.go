package policy

type BranchResponse struct {
	BranchID            string  `json:"branch_id"`
	BranchName          string  `json:"branch_name"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	CheckinRadiusMeters float64 `json:"checkin_radius_meters"`
	Address             *string `json:"address"`
}

type SettingsResponse struct {
	RequiredToUploadLocationPhoto        bool    `json:"required_to_upload_location_photo"`
	RequiredToUploadClientBioMetricPhoto bool    `json:"required_to_upload_client_bio_metric_photo"`
	RequireLocationCheckOnCheckOut       bool    `json:"require_location_check_on_check_out"`
	SettingsSource                       string  `json:"settings_source"`
	DepartmentID                         *string `json:"department_id"`
	DepartmentName                       *string `json:"department_name"`
	ProjectID                            *string `json:"project_id"`
	ProjectName                          *string `json:"project_name"`
}

type ConfigurationResponse struct {
	EmployeeID   string           `json:"employee_id"`
	EmployeeCode string           `json:"employee_code"`
	EmployeeName string           `json:"employee_name"`
	Designation  string           `json:"designation"`
	CompanyID    string           `json:"company_id"`
	Branch       BranchResponse   `json:"branch"`
	Settings     SettingsResponse `json:"settings"`
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func mapToResponse(cfg *Configuration) ConfigurationResponse {
	emp := cfg.Employee
	pol := cfg.Policy

	settings := SettingsResponse{
		RequiredToUploadLocationPhoto:        pol.RequireLocationPhoto,
		RequiredToUploadClientBioMetricPhoto: pol.RequireBiometricPhoto,
		RequireLocationCheckOnCheckOut:       pol.RequireLocationOnCheckOut,
		SettingsSource:                       string(pol.Source.Kind),
		DepartmentID:                         strPtr(pol.Source.DepartmentID.String()),
		DepartmentName:                       strPtr(pol.Source.DepartmentName),
	}
	if pol.Source.Kind == SourceProject {
		settings.ProjectID = strPtr(pol.Source.ID.String())
		settings.ProjectName = strPtr(pol.Source.Name)
	}

	return ConfigurationResponse{
		EmployeeID:   emp.ID.String(),
		EmployeeCode: emp.Code(),
		EmployeeName: emp.DisplayName(),
		Designation:  emp.Designation,
		CompanyID:    cfg.CompanyID.String(),
		Branch: BranchResponse{
			BranchID:            cfg.Branch.ID.String(),
			BranchName:          cfg.Branch.DisplayName(),
			Latitude:            cfg.Geofence.Latitude,
			Longitude:           cfg.Geofence.Longitude,
			CheckinRadiusMeters: cfg.Geofence.RadiusMeters,
			Address:             cfg.Branch.Address,
		},
		Settings: settings,
	}
}
