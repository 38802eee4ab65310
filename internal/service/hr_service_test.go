package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campbellos/backend/internal/domain"
	"github.com/campbellos/backend/internal/repository"
	"github.com/campbellos/backend/pkg/util/errorutil"
)

func newHRService(seed []domain.Employee) *HRService {
	return NewHRService(repository.NewMemoryEmployeeRepository(seed))
}

func TestCreateEmployee(t *testing.T) {
	svc := newHRService(nil)

	emp, err := svc.Create(context.Background(), EmployeeCreateInput{
		Name:        "maria lopez garcia",
		Role:        "Dental Assistant",
		OfficeID:    "vernor",
		LicenseType: "Registered Dental Assistant",
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria Lopez Garcia", emp.Name)
	assert.Equal(t, "maria", emp.PreferredName)
	assert.True(t, emp.ClinicallyLicensed)
	assert.Equal(t, domain.EmployeeStatusActive, emp.Status)
	assert.Equal(t, "Vernor Dental Care", emp.OfficeName)
	assert.Equal(t, "Full time", emp.EmploymentStatus)
	assert.Equal(t, "Hourly", emp.PayType)
	assert.NotEmpty(t, emp.ID)
	assert.Regexp(t, `^CB-\d{6}$`, emp.BadgeID)
}

func TestToTitleCaseHandlesNonASCII(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"maria lopez", "Maria Lopez"},
		{"álvaro gómez", "Álvaro Gómez"},
		{"émile", "Émile"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, toTitleCase(tc.in))
	}
}

func TestBadgeIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		badge := generateBadgeID()
		assert.Regexp(t, `^CB-\d{6}$`, badge)
		assert.False(t, seen[badge], "badge %s issued twice", badge)
		seen[badge] = true
	}
}

func TestRapidCreatesGetDistinctBadges(t *testing.T) {
	svc := newHRService(nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, EmployeeCreateInput{Name: "ana"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, EmployeeCreateInput{Name: "bea"})
	require.NoError(t, err)

	assert.NotEqual(t, first.BadgeID, second.BadgeID)
}

func TestCreateEmployeeRequiresName(t *testing.T) {
	svc := newHRService(nil)

	_, err := svc.Create(context.Background(), EmployeeCreateInput{Name: "   "})
	require.Error(t, err)
	assert.Equal(t, 400, errorutil.ToDomainError(err).HTTPStatus)
}

func TestCreateEmployeeAllOffices(t *testing.T) {
	svc := newHRService(nil)

	emp, err := svc.Create(context.Background(), EmployeeCreateInput{
		Name:        "manny gomez",
		OfficeID:    "all",
		LicenseType: "Admin - No clinical license",
	})
	require.NoError(t, err)
	assert.Equal(t, "All offices", emp.OfficeName)
	assert.False(t, emp.ClinicallyLicensed)
}

func TestListIncludesCrossOfficeStaff(t *testing.T) {
	svc := newHRService(nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, EmployeeCreateInput{Name: "carolina", OfficeID: "campbell"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, EmployeeCreateInput{Name: "manny", OfficeID: "all"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, EmployeeCreateInput{Name: "lorena", OfficeID: "vernor"})
	require.NoError(t, err)

	campbell, err := svc.List(ctx, "campbell")
	require.NoError(t, err)
	require.Len(t, campbell, 2)

	everyone, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, everyone, 3)
}

func TestUpdateEmployeeReDerivesLicenseFlag(t *testing.T) {
	svc := newHRService(nil)
	ctx := context.Background()

	emp, err := svc.Create(ctx, EmployeeCreateInput{
		Name:        "jessica",
		LicenseType: "Registered Dental Hygienist",
	})
	require.NoError(t, err)
	require.True(t, emp.ClinicallyLicensed)

	newType := "Front desk - No license"
	updated, err := svc.Update(ctx, emp.ID, EmployeeUpdateInput{LicenseType: &newType})
	require.NoError(t, err)
	assert.False(t, updated.ClinicallyLicensed)
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	svc := newHRService(nil)

	role := "Dentist"
	_, err := svc.Update(context.Background(), "emp-99", EmployeeUpdateInput{Role: &role})
	require.Error(t, err)
	assert.Equal(t, 404, errorutil.ToDomainError(err).HTTPStatus)
}

func TestInferClinicallyLicensed(t *testing.T) {
	tests := []struct {
		licenseType string
		want        bool
	}{
		{"", false},
		{"Dentist", true},
		{"Registered Dental Hygienist", true},
		{"Clinical - No license", false},
		{"Admin - No clinical license", false},
		{"Front desk", false},
		{"Unlicensed assistant", false},
	}
	for _, tc := range tests {
		t.Run(tc.licenseType, func(t *testing.T) {
			assert.Equal(t, tc.want, inferClinicallyLicensed(tc.licenseType))
		})
	}
}

func TestCredentialStatus(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expires string
		want    domain.CredentialStatus
	}{
		{"no expiration", "", domain.CredentialNoExpiration},
		{"unparseable", "soon", domain.CredentialNoExpiration},
		{"expired last year", "2025-08-01", domain.CredentialExpired},
		{"expired yesterday", "2026-08-27", domain.CredentialExpired},
		{"good through today", "2026-08-28", domain.CredentialExpiringSoon},
		{"inside the 90 day window", "2026-11-01", domain.CredentialExpiringSoon},
		{"well beyond the window", "2027-06-01", domain.CredentialActive},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, credentialStatus(tc.expires, now))
		})
	}
}

func TestCredentialsReport(t *testing.T) {
	svc := newHRService(nil)
	ctx := context.Background()

	emp, err := svc.Create(ctx, EmployeeCreateInput{
		Name:        "carolina gomez",
		Role:        "Registered Dental Hygienist",
		OfficeID:    "campbell",
		LicenseType: "Registered Dental Hygienist",
		Expires:     "2027-01-15",
		CertCPR:     domain.Certification{Held: true, Expires: "2026-09-15"},
		CertOSHA:    domain.Certification{Held: false},
	})
	require.NoError(t, err)

	report, err := svc.Credentials(ctx, "campbell")
	require.NoError(t, err)
	require.Len(t, report, 1)

	row := report[0]
	assert.Equal(t, emp.ID, row.EmployeeID)
	assert.Equal(t, "Carolina Gomez", row.Name)
	require.Len(t, row.Licenses, 2)
	assert.Equal(t, "Registered Dental Hygienist", row.Licenses[0].Type)
	assert.Equal(t, "CPR/BLS", row.Licenses[1].Type)
	// certs not held stay off the report
	for _, license := range row.Licenses {
		assert.NotEqual(t, "OSHA Training", license.Type)
	}
}
