package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"messmate_backend/internals/constants"
	dto "messmate_backend/internals/features/organizations/dto"
	model "messmate_backend/internals/features/organizations/model"
	helper "messmate_backend/internals/helpers"
)

type OrganizationController struct {
	DB *gorm.DB
}

func NewOrganizationController(db *gorm.DB) *OrganizationController {
	return &OrganizationController{DB: db}
}

var validate = validator.New()

// GET /api/organizations
func (h *OrganizationController) List(c *fiber.Ctx) error {
	var orgs []model.OrganizationModel
	if err := h.DB.Order("organization_created_at ASC").Find(&orgs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModels(orgs))
}

// GET /api/organizations/:id
func (h *OrganizationController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID is required")
	}

	var org model.OrganizationModel
	if err := h.DB.Where("organization_id = ?", id).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Organization not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(org))
}

// GET /api/organizations/parameters/:id
func (h *OrganizationController) GetParameters(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID is required")
	}

	var org model.OrganizationModel
	if err := h.DB.Where("organization_id = ?", id).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Organization not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", org.Rates())
}

// PUT /api/organizations/parameters — organization account updates its own
// rate table; only sent fields change.
func (h *OrganizationController) UpdateParameters(c *fiber.Ctx) error {
	if helper.GetRoleFromToken(c) != constants.RoleOrganization {
		return fiber.NewError(fiber.StatusForbidden, "Access denied")
	}
	orgID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateMessParametersRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var org model.OrganizationModel
	if err := h.DB.Where("organization_id = ?", orgID).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Organization not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&org)
	if err := h.DB.Save(&org).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update parameters")
	}

	return helper.JsonOK(c, "Mess parameters updated", dto.FromModel(org))
}
