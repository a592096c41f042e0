package controller

import (
	"scholarship-fund-be/internal/pkg/serverutils"
	"scholarship-fund-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFinanceController interface {
	RegisterRoutes(r fiber.Router)
	Summary(ctx *fiber.Ctx) error
}

type financeController struct {
	financeService service.IFinanceService
}

func NewFinanceController(financeService service.IFinanceService) IFinanceController {
	return &financeController{financeService: financeService}
}

func (c *financeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/finance/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("summary", c.Summary)
}

func (c *financeController) Summary(ctx *fiber.Ctx) error {
	res, err := c.financeService.GetSummary(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get financial summary", res))
}
