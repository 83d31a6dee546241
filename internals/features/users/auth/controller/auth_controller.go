package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"messmate_backend/internals/configs"
	"messmate_backend/internals/constants"
	orgModel "messmate_backend/internals/features/organizations/model"
	dto "messmate_backend/internals/features/users/auth/dto"
	userModel "messmate_backend/internals/features/users/user/model"
	helper "messmate_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

const accessTokenTTL = 30 * 24 * time.Hour

/* ======================= REGISTER STUDENT ======================= */
// POST /api/auth/register/student
func (h *AuthController) RegisterStudent(c *fiber.Ctx) error {
	var req dto.RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing userModel.UserModel
	if err := h.DB.Where("email = ?", strings.ToLower(req.Email)).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "User already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var org orgModel.OrganizationModel
	if err := h.DB.Where("organization_id = ?", req.OrganizationID).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Organization not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	category := req.Category
	if category == "" {
		category = constants.CategoryGeneral
	}

	user := userModel.UserModel{
		Name:           req.Name,
		Email:          strings.ToLower(req.Email),
		Role:           constants.RoleStudent,
		StudentID:      &req.StudentID,
		OrganizationID: &req.OrganizationID,
		Category:       category,
		Phone:          req.Phone,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := h.DB.Create(&user).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusBadRequest, "User already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}

	token, err := h.signToken(user.ID, user.Role, user.OrganizationID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.JsonCreated(c, "Student registered", dto.FromUser(token, user))
}

/* ======================= REGISTER ORGANIZATION ======================= */
// POST /api/auth/register/organization
func (h *AuthController) RegisterOrganization(c *fiber.Ctx) error {
	var req dto.RegisterOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing orgModel.OrganizationModel
	if err := h.DB.Where("organization_email = ?", strings.ToLower(req.Email)).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Organization already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	org := orgModel.OrganizationModel{
		OrganizationName:    req.Name,
		OrganizationEmail:   strings.ToLower(req.Email),
		OrganizationAddress: req.Address,
	}
	hash, err := hashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}
	org.OrganizationPassword = hash

	if p := req.MessParameters; p != nil {
		org.OrganizationBreakfastRate = p.BreakfastRate
		org.OrganizationLunchRate = p.LunchRate
		org.OrganizationDinnerRate = p.DinnerRate
		org.OrganizationSpecialItemRate = p.SpecialItemRate
		org.OrganizationSemesterHostelFee = p.SemesterHostelFee
		org.OrganizationBasicMonthlyCharge = p.BasicMonthlyCharge
	}

	if err := h.DB.Create(&org).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create organization")
	}

	token, err := h.signToken(org.OrganizationID, constants.RoleOrganization, &org.OrganizationID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}

	resp := dto.AuthOrganizationResponse{Token: token}
	resp.Organization.ID = org.OrganizationID
	resp.Organization.Name = org.OrganizationName
	resp.Organization.Email = org.OrganizationEmail

	return helper.JsonCreated(c, "Organization registered", resp)
}

/* ======================= LOGIN ======================= */
// POST /api/auth/login — email+password for students/admins or, with
// role=organization, for an organization account.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(req.Email)

	if req.Role == constants.RoleOrganization {
		var org orgModel.OrganizationModel
		if err := h.DB.Where("organization_email = ?", email).First(&org).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid credentials")
		}
		if !matchPassword(org.OrganizationPassword, req.Password) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid credentials")
		}

		token, err := h.signToken(org.OrganizationID, constants.RoleOrganization, &org.OrganizationID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
		}

		resp := dto.AuthOrganizationResponse{Token: token}
		resp.Organization.ID = org.OrganizationID
		resp.Organization.Name = org.OrganizationName
		resp.Organization.Email = org.OrganizationEmail
		return helper.JsonOK(c, "Login successful", resp)
	}

	var user userModel.UserModel
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid credentials")
	}
	if !user.MatchPassword(req.Password) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid credentials")
	}

	token, err := h.signToken(user.ID, user.Role, user.OrganizationID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.JsonOK(c, "Login successful", dto.FromUser(token, user))
}

func (h *AuthController) signToken(id uuid.UUID, role string, orgID *uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"id":   id.String(),
		"role": role,
		"exp":  time.Now().Add(accessTokenTTL).Unix(),
	}
	if orgID != nil {
		claims["org_id"] = orgID.String()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}
