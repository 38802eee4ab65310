package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/campbellos/backend/internal/directory"
	"github.com/campbellos/backend/internal/domain"
	"github.com/campbellos/backend/internal/repository"
	"github.com/campbellos/backend/pkg/util/errorutil"
)

// expiringSoonWindow is how far out a credential shows as "Expiring soon".
const expiringSoonWindow = 90 * 24 * time.Hour

// HRService maintains the employee roster and derives the credentials
// report from license and certification expirations.
type HRService struct {
	employees repository.EmployeeRepository
}

// NewHRService constructs the service.
func NewHRService(employees repository.EmployeeRepository) *HRService {
	return &HRService{employees: employees}
}

// EmployeeCreateInput describes a new roster record.
type EmployeeCreateInput struct {
	Name             string
	PreferredName    string
	Role             string
	OfficeID         string
	LicenseType      string
	LicenseID        string
	Expires          string
	LastVerified     string
	CertCPR          domain.Certification
	CertXray         domain.Certification
	CertOSHA         domain.Certification
	EmploymentStatus string
	PayType          string
	ADPID            string
}

// EmployeeUpdateInput describes a merge-update; nil keeps the existing
// value. ClinicallyLicensed is always re-derived, never accepted.
type EmployeeUpdateInput struct {
	Name             *string
	PreferredName    *string
	Role             *string
	OfficeID         *string
	LicenseType      *string
	LicenseID        *string
	Expires          *string
	Status           *domain.EmployeeStatus
	LastVerified     *string
	CertCPR          *domain.Certification
	CertXray         *domain.Certification
	CertOSHA         *domain.Certification
	EmploymentStatus *string
	PayType          *string
	ADPID            *string
}

// List returns roster records; officeID "" returns everyone, otherwise the
// office's staff plus cross-office ("all") employees.
func (s *HRService) List(ctx context.Context, officeID string) ([]domain.Employee, error) {
	return s.employees.List(ctx, officeID)
}

// Create adds a roster record, generating the badge id and deriving the
// clinical-license flag from the license type.
func (s *HRService) Create(ctx context.Context, input EmployeeCreateInput) (*domain.Employee, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errorutil.NewValidationError("Name is required", nil)
	}

	officeID := defaultString(input.OfficeID, directory.DefaultOfficeID)
	emp := &domain.Employee{
		BadgeID:            generateBadgeID(),
		Name:               toTitleCase(input.Name),
		PreferredName:      defaultString(input.PreferredName, firstWord(input.Name)),
		Role:               input.Role,
		OfficeID:           officeID,
		OfficeName:         officeDisplayName(officeID),
		LicenseType:        input.LicenseType,
		LicenseID:          input.LicenseID,
		Expires:            input.Expires,
		ClinicallyLicensed: inferClinicallyLicensed(input.LicenseType),
		Status:             domain.EmployeeStatusActive,
		LastVerified:       input.LastVerified,
		CertCPR:            input.CertCPR,
		CertXray:           input.CertXray,
		CertOSHA:           input.CertOSHA,
		EmploymentStatus:   defaultString(input.EmploymentStatus, "Full time"),
		PayType:            defaultString(input.PayType, "Hourly"),
		ADPID:              input.ADPID,
	}
	if err := s.employees.Insert(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// Update merges the supplied fields and re-derives the dependent ones. The
// merge runs atomically inside the repository.
func (s *HRService) Update(ctx context.Context, id string, input EmployeeUpdateInput) (*domain.Employee, error) {
	emp, err := s.employees.Update(ctx, id, func(emp *domain.Employee) error {
		if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
			emp.Name = toTitleCase(*input.Name)
		}
		applyString(&emp.PreferredName, input.PreferredName)
		applyString(&emp.Role, input.Role)
		applyString(&emp.LicenseType, input.LicenseType)
		applyString(&emp.LicenseID, input.LicenseID)
		applyString(&emp.Expires, input.Expires)
		applyString(&emp.LastVerified, input.LastVerified)
		applyString(&emp.EmploymentStatus, input.EmploymentStatus)
		applyString(&emp.PayType, input.PayType)
		applyString(&emp.ADPID, input.ADPID)
		if input.OfficeID != nil && *input.OfficeID != emp.OfficeID {
			emp.OfficeID = *input.OfficeID
			emp.OfficeName = officeDisplayName(emp.OfficeID)
		}
		if input.Status != nil {
			emp.Status = *input.Status
		}
		if input.CertCPR != nil {
			emp.CertCPR = *input.CertCPR
		}
		if input.CertXray != nil {
			emp.CertXray = *input.CertXray
		}
		if input.CertOSHA != nil {
			emp.CertOSHA = *input.CertOSHA
		}
		emp.ClinicallyLicensed = inferClinicallyLicensed(emp.LicenseType)
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errorutil.NewNotFound("Employee", nil)
		}
		return nil, err
	}
	return emp, nil
}

// Credentials builds the per-employee license/certification report with
// derived expiration statuses.
func (s *HRService) Credentials(ctx context.Context, officeID string) ([]domain.EmployeeCredentials, error) {
	employees, err := s.employees.List(ctx, officeID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	report := make([]domain.EmployeeCredentials, 0, len(employees))
	for _, emp := range employees {
		rows := []domain.CredentialRow{}
		if emp.LicenseType != "" {
			rows = append(rows, domain.CredentialRow{
				Type:    emp.LicenseType,
				Status:  credentialStatus(emp.Expires, now),
				Expires: emp.Expires,
			})
		}
		rows = appendCertRow(rows, "CPR/BLS", emp.CertCPR, now)
		rows = appendCertRow(rows, "Radiology Certification", emp.CertXray, now)
		rows = appendCertRow(rows, "OSHA Training", emp.CertOSHA, now)

		report = append(report, domain.EmployeeCredentials{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Role:       emp.Role,
			OfficeID:   emp.OfficeID,
			OfficeName: emp.OfficeName,
			Licenses:   rows,
		})
	}
	return report, nil
}

func appendCertRow(rows []domain.CredentialRow, name string, cert domain.Certification, now time.Time) []domain.CredentialRow {
	if !cert.Held {
		return rows
	}
	return append(rows, domain.CredentialRow{
		Type:    name,
		Status:  credentialStatus(cert.Expires, now),
		Expires: cert.Expires,
	})
}

// credentialStatus classifies an ISO expiration date relative to now.
func credentialStatus(expires string, now time.Time) domain.CredentialStatus {
	if expires == "" {
		return domain.CredentialNoExpiration
	}
	exp, err := time.Parse("2006-01-02", expires)
	if err != nil {
		return domain.CredentialNoExpiration
	}
	// the credential is good through the end of its expiration day
	exp = exp.Add(24*time.Hour - time.Nanosecond)
	switch {
	case exp.Before(now):
		return domain.CredentialExpired
	case exp.Before(now.Add(expiringSoonWindow)):
		return domain.CredentialExpiringSoon
	default:
		return domain.CredentialActive
	}
}

// inferClinicallyLicensed mirrors the dashboard's heuristic: admin and
// front-desk roles, and explicit no-license types, are not clinical.
func inferClinicallyLicensed(licenseType string) bool {
	if licenseType == "" {
		return false
	}
	lower := strings.ToLower(licenseType)
	if strings.Contains(lower, "no clinical") ||
		strings.Contains(lower, "no license") ||
		strings.Contains(lower, "unlicensed") {
		return false
	}
	if strings.Contains(lower, "admin") || strings.Contains(lower, "front desk") {
		return false
	}
	return true
}

func toTitleCase(value string) string {
	words := strings.Fields(strings.ToLower(value))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func firstWord(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return value
	}
	return fields[0]
}

// badgeSeq makes badge ids unique even when several roster records are
// created within the same millisecond.
var badgeSeq atomic.Int64

func init() {
	badgeSeq.Store(time.Now().UnixMilli())
}

func generateBadgeID() string {
	return fmt.Sprintf("CB-%06d", badgeSeq.Add(1)%1000000)
}

// officeDisplayName resolves the full practice name; roster records use the
// long form, with "all" meaning cross-office staff.
func officeDisplayName(officeID string) string {
	if officeID == "all" {
		return "All offices"
	}
	if office, ok := directory.Get(officeID); ok {
		return office.Name
	}
	return directory.UnknownOffice
}
