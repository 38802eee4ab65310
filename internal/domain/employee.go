package domain

// EmployeeStatus marks whether a team member is on the active roster.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "Active"
	EmployeeStatusInactive EmployeeStatus = "Inactive"
)

// Certification tracks one held certificate and its expiration date
// (ISO date string, empty when the certificate does not expire).
type Certification struct {
	Held    bool   `json:"held"`
	Expires string `json:"expires"`
}

// Employee is an HR roster record. OfficeID "all" means the employee works
// across every office (operations/IT staff).
type Employee struct {
	ID            string         `json:"id"`
	BadgeID       string         `json:"badgeId"`
	Name          string         `json:"name"`
	PreferredName string         `json:"preferredName"`
	Role          string         `json:"role"`
	OfficeID      string         `json:"officeId"`
	OfficeName    string         `json:"officeName"`
	LicenseType   string         `json:"licenseType"`
	LicenseID     string         `json:"licenseId"`
	Expires       string         `json:"expires"`
	// ClinicallyLicensed is derived from LicenseType on every write, never
	// accepted from the client.
	ClinicallyLicensed bool           `json:"clinicallyLicensed"`
	Status             EmployeeStatus `json:"status"`
	LastVerified       string         `json:"lastVerified"`
	CertCPR            Certification  `json:"certCpr"`
	CertXray           Certification  `json:"certXray"`
	CertOSHA           Certification  `json:"certOsha"`
	EmploymentStatus   string         `json:"employmentStatus"`
	PayType            string         `json:"payType"`
	ADPID              string         `json:"adpId"`
}

// CredentialStatus is the derived license/certification state shown on the
// credentials board.
type CredentialStatus string

const (
	CredentialActive       CredentialStatus = "Active"
	CredentialExpiringSoon CredentialStatus = "Expiring soon"
	CredentialExpired      CredentialStatus = "Expired"
	CredentialNoExpiration CredentialStatus = "No expiration"
)

// CredentialRow is one license/certification line on the credentials report.
type CredentialRow struct {
	Type    string           `json:"type"`
	Status  CredentialStatus `json:"status"`
	Expires string           `json:"expires"`
}

// EmployeeCredentials groups the derived credential rows for one employee.
type EmployeeCredentials struct {
	EmployeeID string          `json:"employeeId"`
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	OfficeID   string          `json:"officeId"`
	OfficeName string          `json:"officeName"`
	Licenses   []CredentialRow `json:"licenses"`
}
