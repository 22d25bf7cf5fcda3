package handlers

import (
	"errors"
	"time"

	"github.com/Jajanan-pasar/web/internal/config"
	"github.com/Jajanan-pasar/web/internal/locale"
	"github.com/Jajanan-pasar/web/internal/services/bonus"
	"github.com/Jajanan-pasar/web/internal/utils"
	"github.com/Jajanan-pasar/web/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type BonusHandler struct {
	bonusService bonus.Service
	pages        config.PaginationProvider
}

func NewBonusHandler(bonusService bonus.Service, pages config.PaginationProvider) *BonusHandler {
	return &BonusHandler{
		bonusService: bonusService,
		pages:        pages,
	}
}

type bonusRequest struct {
	Title             string   `json:"title" form:"title" validate:"required"`
	Description       string   `json:"description" form:"description"`
	BonusType         string   `json:"bonus_type" form:"bonus_type" validate:"required"`
	BonusAmount       float64  `json:"bonus_amount" form:"bonus_amount" validate:"required,gte=0.01"`
	MinAddMoneyAmount float64  `json:"min_add_money_amount" form:"min_add_money_amount" validate:"required,gte=0.01"`
	MaxBonusAmount    *float64 `json:"max_bonus_amount" form:"max_bonus_amount"`
	StartDateTime     string   `json:"start_date_time" form:"start_date_time" validate:"required"`
	EndDateTime       string   `json:"end_date_time" form:"end_date_time"`
}

const dateTimeLayout = "2006-01-02 15:04:05"

func parseDateTime(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateTimeLayout, value, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", value, time.Local)
}

// input converts the request into a service input, reporting unparseable
// datetimes as field errors.
func (r bonusRequest) input() (bonus.Input, []validation.FieldError) {
	start, err := parseDateTime(r.StartDateTime)
	if err != nil {
		return bonus.Input{}, []validation.FieldError{
			{Code: "start_date_time", Message: "The start_date_time must be a valid date"},
		}
	}

	var end *time.Time
	if r.EndDateTime != "" {
		t, err := parseDateTime(r.EndDateTime)
		if err != nil {
			return bonus.Input{}, []validation.FieldError{
				{Code: "end_date_time", Message: "The end_date_time must be a valid date"},
			}
		}
		end = &t
	}

	return bonus.Input{
		Title:             r.Title,
		Description:       r.Description,
		BonusType:         r.BonusType,
		BonusAmount:       r.BonusAmount,
		MinAddMoneyAmount: r.MinAddMoneyAmount,
		MaxBonusAmount:    r.MaxBonusAmount,
		StartDateTime:     start,
		EndDateTime:       end,
	}, nil
}

// List returns one page of bonus rules, optionally narrowed by a free-text
// title search.
func (h *BonusHandler) List(c *fiber.Ctx) error {
	p := utils.ParsePagination(c, h.pages)
	rows, total, err := h.bonusService.List(c.Context(), c.Query("search"), p.Limit, p.Offset)
	if err != nil {
		return utils.InternalError(c, "Failed to fetch bonus categories")
	}

	p.Total = total
	payload := utils.PaginatedResponse(p, rows)
	if notice := utils.ConsumeFlash(c); notice != "" {
		payload["notice"] = notice
	}
	return utils.Success(c, payload)
}

// Store creates a bonus rule and finishes with the dual-mode success
// contract.
func (h *BonusHandler) Store(c *fiber.Ctx) error {
	var req bonusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrors(c, []validation.FieldError{
			{Code: "request", Message: "Invalid request format"},
		})
	}

	if errs := validation.Struct(req); errs != nil {
		return utils.ValidationErrors(c, errs)
	}
	in, errs := req.input()
	if errs != nil {
		return utils.ValidationErrors(c, errs)
	}

	if _, err := h.bonusService.Create(c.Context(), in); err != nil {
		return utils.InternalError(c, "Failed to create bonus category")
	}

	return utils.MutationSuccess(c, locale.Translate("wallet_bonus_added_successfully"))
}

// Edit returns a single rule for the edit form. Missing IDs are a 404; the
// original rendered an undefined record here, which was a bug.
func (h *BonusHandler) Edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequest(c, "Invalid bonus id")
	}

	row, err := h.bonusService.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, bonus.ErrNotFound) {
			return utils.NotFound(c, locale.Translate("bonus_not_found"))
		}
		return utils.InternalError(c, "Failed to fetch bonus category")
	}

	return utils.Success(c, row)
}

// Update overwrites a rule's editable fields. A missing ID is a silent
// no-op, matching the store/update contract.
func (h *BonusHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequest(c, "Invalid bonus id")
	}

	var req bonusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrors(c, []validation.FieldError{
			{Code: "request", Message: "Invalid request format"},
		})
	}

	if errs := validation.Struct(req); errs != nil {
		return utils.ValidationErrors(c, errs)
	}
	in, errs := req.input()
	if errs != nil {
		return utils.ValidationErrors(c, errs)
	}

	if err := h.bonusService.Update(c.Context(), uint(id), in); err != nil {
		return utils.InternalError(c, "Failed to update bonus category")
	}

	return utils.MutationSuccess(c, locale.Translate("wallet_bonus_updated_successfully"))
}

type bonusStatusRequest struct {
	ID     uint `json:"id" form:"id" validate:"required"`
	Status *int `json:"status" form:"status" validate:"required"`
}

// UpdateStatus toggles is_active. Toggling a missing ID still reports
// success; the update simply affects no rows.
func (h *BonusHandler) UpdateStatus(c *fiber.Ctx) error {
	var req bonusStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrors(c, []validation.FieldError{
			{Code: "request", Message: "Invalid request format"},
		})
	}

	if errs := validation.Struct(req); errs != nil {
		return utils.ValidationErrors(c, errs)
	}

	if err := h.bonusService.SetStatus(c.Context(), req.ID, *req.Status != 0); err != nil {
		return utils.InternalError(c, "Failed to update bonus status")
	}

	return utils.MutationSuccess(c, locale.Translate("status_updated_successfully"))
}

type bonusDeleteRequest struct {
	ID uint `json:"id" form:"id" validate:"required"`
}

// Delete removes a rule. Deleting twice reports success both times; the
// second call affects no rows.
func (h *BonusHandler) Delete(c *fiber.Ctx) error {
	var req bonusDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrors(c, []validation.FieldError{
			{Code: "request", Message: "Invalid request format"},
		})
	}

	if errs := validation.Struct(req); errs != nil {
		return utils.ValidationErrors(c, errs)
	}

	if err := h.bonusService.Delete(c.Context(), req.ID); err != nil {
		return utils.InternalError(c, "Failed to delete bonus category")
	}

	return utils.MutationSuccess(c, locale.Translate("bonus_removed_successfully"))
}
