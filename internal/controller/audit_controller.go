package controller

import (
	"scholarship-fund-be/internal/pkg/serverutils"
	"scholarship-fund-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuditController interface {
	RegisterRoutes(r fiber.Router)
	Recent(ctx *fiber.Ctx) error
}

type auditController struct {
	auditService service.IAuditService
}

func NewAuditController(auditService service.IAuditService) IAuditController {
	return &auditController{auditService: auditService}
}

func (c *auditController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/audit/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("recent", c.Recent)
}

func (c *auditController) Recent(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)

	res, err := c.auditService.GetRecent(ctx.Context(), limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list recent activity", res))
}
