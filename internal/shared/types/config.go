package types

// Config represents the application configuration that can be loaded from a
// file. Credentials are deliberately absent: tokens and passwords come only
// from flags or environment variables.
type Config struct {
	Provider       string `json:"provider" yaml:"provider" toml:"provider"`
	BaseURL        string `json:"base_url" yaml:"base_url" toml:"base_url"`
	UserID         string `json:"user_id" yaml:"user_id" toml:"user_id"`
	EmployeeID     string `json:"employee_id" yaml:"employee_id" toml:"employee_id"`
	FlashUsername  string `json:"flash_username" yaml:"flash_username" toml:"flash_username"`
	FlashCompanyID string `json:"flash_company_id" yaml:"flash_company_id" toml:"flash_company_id"`
	Output         string `json:"output" yaml:"output" toml:"output"`
	ReportPDF      bool   `json:"report_pdf" yaml:"report_pdf" toml:"report_pdf"`
}
