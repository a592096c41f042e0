package controller

import (
	"scholarship-fund-be/internal/dto"
	"scholarship-fund-be/internal/pkg/serverutils"
	"scholarship-fund-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDonationController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	SetReceiptSent(ctx *fiber.Ctx) error
}

type donationController struct {
	donationService service.IDonationService
}

func NewDonationController(donationService service.IDonationService) IDonationController {
	return &donationController{donationService: donationService}
}

func (c *donationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/donation/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.Index)
	h.Put(":id/receipt", c.SetReceiptSent)
}

func (c *donationController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.RecordDonationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.donationService.Record(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record donation", res))
}

func (c *donationController) Index(ctx *fiber.Ctx) error {
	res, err := c.donationService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list donations", res))
}

func (c *donationController) SetReceiptSent(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.SetReceiptSentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.donationService.SetReceiptSent(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update receipt status", res))
}
