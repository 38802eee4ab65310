package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/campbellos/backend/internal/api/dto"
	"github.com/campbellos/backend/internal/service"
	"github.com/campbellos/backend/pkg/util/errorutil"
)

// HRHandler serves the roster and the credentials report.
type HRHandler struct {
	service *service.HRService
}

// NewHRHandler constructs handler.
func NewHRHandler(hrService *service.HRService) *HRHandler {
	return &HRHandler{service: hrService}
}

// ListEmployees GET /api/hr/employees?officeId=.
func (h *HRHandler) ListEmployees(c *fiber.Ctx) error {
	employees, err := h.service.List(c.UserContext(), c.Query("officeId"))
	if err != nil {
		return err
	}
	return c.JSON(employees)
}

// CreateEmployee POST /api/hr/employees.
func (h *HRHandler) CreateEmployee(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}

	emp, err := h.service.Create(c.UserContext(), service.EmployeeCreateInput{
		Name:             req.Name,
		PreferredName:    req.PreferredName,
		Role:             req.Role,
		OfficeID:         req.OfficeID,
		LicenseType:      req.LicenseType,
		LicenseID:        req.LicenseID,
		Expires:          req.Expires,
		LastVerified:     req.LastVerified,
		CertCPR:          req.CertCPR,
		CertXray:         req.CertXray,
		CertOSHA:         req.CertOSHA,
		EmploymentStatus: req.EmploymentStatus,
		PayType:          req.PayType,
		ADPID:            req.ADPID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(emp)
}

// UpdateEmployee PUT /api/hr/employees/:id.
func (h *HRHandler) UpdateEmployee(c *fiber.Ctx) error {
	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}

	emp, err := h.service.Update(c.UserContext(), c.Params("id"), service.EmployeeUpdateInput{
		Name:             req.Name,
		PreferredName:    req.PreferredName,
		Role:             req.Role,
		OfficeID:         req.OfficeID,
		LicenseType:      req.LicenseType,
		LicenseID:        req.LicenseID,
		Expires:          req.Expires,
		Status:           req.Status,
		LastVerified:     req.LastVerified,
		CertCPR:          req.CertCPR,
		CertXray:         req.CertXray,
		CertOSHA:         req.CertOSHA,
		EmploymentStatus: req.EmploymentStatus,
		PayType:          req.PayType,
		ADPID:            req.ADPID,
	})
	if err != nil {
		return err
	}
	return c.JSON(emp)
}

// Credentials GET /api/hr/credentials?officeId=.
func (h *HRHandler) Credentials(c *fiber.Ctx) error {
	report, err := h.service.Credentials(c.UserContext(), c.Query("officeId"))
	if err != nil {
		return err
	}
	return c.JSON(report)
}
