package controller

import (
	"scholarship-fund-be/internal/dto"
	"scholarship-fund-be/internal/pkg/serverutils"
	"scholarship-fund-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IClientController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Deactivate(ctx *fiber.Ctx) error
}

type clientController struct {
	clientService service.IClientService
}

func NewClientController(clientService service.IClientService) IClientController {
	return &clientController{clientService: clientService}
}

func (c *clientController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/client/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.Index)
	h.Delete(":id", c.Deactivate)
}

func (c *clientController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateClientRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.clientService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create client", res))
}

func (c *clientController) Index(ctx *fiber.Ctx) error {
	res, err := c.clientService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list clients", res))
}

func (c *clientController) Deactivate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.clientService.Deactivate(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success deactivate client", nil))
}
