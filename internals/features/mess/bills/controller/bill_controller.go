package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "messmate_backend/internals/features/mess/bills/dto"
	model "messmate_backend/internals/features/mess/bills/model"
	service "messmate_backend/internals/features/mess/bills/service"
	userModel "messmate_backend/internals/features/users/user/model"
	helper "messmate_backend/internals/helpers"
)

type BillController struct {
	DB *gorm.DB
}

func NewBillController(db *gorm.DB) *BillController {
	return &BillController{DB: db}
}

var validate = validator.New()

/* ======================= MY BILLS ======================= */
// GET /api/bills/my-bills
func (h *BillController) MyBills(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var bills []model.BillModel
	if err := h.DB.
		Where("bill_user_id = ?", userID).
		Order("bill_generated_at DESC").
		Find(&bills).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModels(bills))
}

/* ======================= CURRENT ======================= */
// GET /api/bills/current — returns this month's bill, generating it on
// first access.
func (h *BillController) Current(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	var bill model.BillModel
	err = h.DB.Where("bill_user_id = ? AND bill_month = ? AND bill_year = ?", userID, month, year).
		First(&bill).Error
	if err == nil {
		return helper.JsonOK(c, "OK", dto.FromModel(bill))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	generated, err := h.generateFor(userID.String(), month, year)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.FromModel(*generated))
}

/* ======================= GENERATE ======================= */
// POST /api/bills/generate/:month/:year — idempotent regeneration.
func (h *BillController) Generate(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	month, err := strconv.Atoi(c.Params("month"))
	if err != nil || month < 1 || month > 12 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid month")
	}
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 2000 || year > 2100 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid year")
	}

	bill, err := h.generateFor(userID.String(), month, year)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Bill generated", dto.FromModel(*bill))
}

func (h *BillController) generateFor(userID string, month, year int) (*model.BillModel, error) {
	var user userModel.UserModel
	if err := h.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	bill, err := service.GenerateBill(h.DB, &user, month, year)
	if err != nil {
		if errors.Is(err, service.ErrUserWithoutOrganization) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "User has no organization")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to generate bill")
	}
	return bill, nil
}

/* ======================= PAY ======================= */
// POST /api/bills/pay — record a counter payment against a bill.
func (h *BillController) Pay(c *fiber.Ctx) error {
	var req dto.PayBillRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var bill model.BillModel
	if err := h.DB.Where("bill_id = ?", req.BillID).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Bill not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := service.RecordPayment(h.DB, &bill, req.Amount, req.Method, "", time.Now()); err != nil {
		if errors.Is(err, service.ErrInvalidPaymentAmount) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}

	return helper.JsonOK(c, "Payment recorded", dto.FromModel(bill))
}

/* ======================= PAY ONLINE ======================= */
// POST /api/bills/pay/online — Midtrans Snap checkout for the due amount.
func (h *BillController) PayOnline(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.PayBillOnlineRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var bill model.BillModel
	if err := h.DB.Where("bill_id = ? AND bill_user_id = ?", req.BillID, userID).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Bill not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if bill.BillDueAmount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Bill has no due amount")
	}

	var user userModel.UserModel
	if err := h.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	snapToken, redirectURL, err := service.GenerateSnapToken(&bill, user.Name, user.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to create payment transaction")
	}

	return helper.JsonOK(c, "Checkout created", dto.SnapCheckoutResponse{
		OrderID:     service.BillOrderID(&bill),
		SnapToken:   snapToken,
		RedirectURL: redirectURL,
		Amount:      bill.BillDueAmount,
	})
}

/* ======================= NOTIFICATION ======================= */
// POST /api/bills/notification — Midtrans webhook (auth is skipped for
// this path in the middleware).
func (h *BillController) Notification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	if err := service.HandleBillStatusWebhook(h.DB, body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, "OK", nil)
}

/* ======================= ALL ======================= */
// GET /api/bills/all?month=&year= — admin listing.
func (h *BillController) All(c *fiber.Ctx) error {
	var q dto.ListBillsQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	if err := validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	base := h.DB.Model(&model.BillModel{})
	if q.Month != nil && q.Year != nil {
		base = base.Where("bill_month = ? AND bill_year = ?", *q.Month, *q.Year)
	}

	var bills []model.BillModel
	if err := base.Order("bill_generated_at DESC").Find(&bills).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModels(bills))
}
