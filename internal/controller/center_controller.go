package controller

import (
	"scholarship-fund-be/internal/pkg/serverutils"
	"scholarship-fund-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICenterController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
}

type centerController struct {
	clientService service.IClientService
}

func NewCenterController(clientService service.IClientService) ICenterController {
	return &centerController{clientService: clientService}
}

func (c *centerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/center/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Index)
}

func (c *centerController) Index(ctx *fiber.Ctx) error {
	res, err := c.clientService.GetTreatmentCenters(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list treatment centers", res))
}
