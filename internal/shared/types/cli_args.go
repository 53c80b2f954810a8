package types

import "time"

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile         string
	Provider           string
	BaseURL            string
	BearerToken        Secret
	RefreshToken       Secret
	UserID             string
	EmployeeID         string
	FlashUsername      string
	FlashPassword      Secret
	FlashCompanyID     string
	FlashOverrideToken string
	Month              time.Month
	Year               int
	OutputFile         string
	ReportPDF          bool
}
