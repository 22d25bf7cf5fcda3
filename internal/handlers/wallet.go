// Package handlers exposes the admin wallet subsystem over HTTP.
package handlers

import (
	"errors"

	"github.com/Jajanan-pasar/web/internal/config"
	"github.com/Jajanan-pasar/web/internal/locale"
	"github.com/Jajanan-pasar/web/internal/services/wallet"
	"github.com/Jajanan-pasar/web/internal/utils"
	"github.com/Jajanan-pasar/web/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletService wallet.Service
	pages         config.PaginationProvider
}

func NewWalletHandler(walletService wallet.Service, pages config.PaginationProvider) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		pages:         pages,
	}
}

type addFundRequest struct {
	CustomerID uint    `json:"customer_id" form:"customer_id" validate:"required"`
	Amount     float64 `json:"amount" form:"amount" validate:"required,gte=0.01,lte=10000000"`
	Reference  string  `json:"reference" form:"reference"`
}

// AddFund credits a customer wallet. Validation and creation failures are
// reported as HTTP 200 with an errors payload; the admin panel's form layer
// relies on that contract.
func (h *WalletHandler) AddFund(c *fiber.Ctx) error {
	var req addFundRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationErrors(c, []validation.FieldError{
			{Code: "request", Message: "Invalid request format"},
		})
	}

	if errs := validation.Struct(req); errs != nil {
		return utils.ValidationErrors(c, errs)
	}

	_, err := h.walletService.AddFundByAdmin(c.Context(), req.CustomerID, req.Amount, req.Reference)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrCustomerNotFound):
			return utils.ValidationErrors(c, []validation.FieldError{
				{Code: "customer_id", Message: "The selected customer_id is invalid"},
			})
		case errors.Is(err, wallet.ErrInvalidAmount):
			return utils.ValidationErrors(c, []validation.FieldError{
				{Code: "amount", Message: "The amount is invalid"},
			})
		default:
			return utils.OperationError(c, locale.Translate("failed_to_create_transaction"))
		}
	}

	return utils.Success(c, fiber.Map{})
}

// Report returns the wallet report page data: aggregate totals over the
// filter, one page of transactions, and the storefront wallet flag.
func (h *WalletHandler) Report(c *fiber.Ctx) error {
	filter := wallet.ReportFilter{
		From:            c.Query("from"),
		To:              c.Query("to"),
		TransactionType: c.Query("transaction_type"),
		CustomerID:      uint(c.QueryInt("customer_id", 0)),
	}

	p := utils.ParsePagination(c, h.pages)
	report, err := h.walletService.Report(c.Context(), filter, p.Limit, p.Offset)
	if err != nil {
		return utils.InternalError(c, "Failed to build wallet report")
	}

	p.Total = report.Total
	payload := fiber.Map{
		"totals":        report.Totals,
		"wallet_status": report.WalletEnabled,
		"transactions":  utils.PaginatedResponse(p, report.Transactions),
	}
	if notice := utils.ConsumeFlash(c); notice != "" {
		payload["notice"] = notice
	}
	return utils.Success(c, payload)
}
