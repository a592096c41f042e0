package controller

import (
	"scholarship-fund-be/internal/dto"
	"scholarship-fund-be/internal/pkg/serverutils"
	"scholarship-fund-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IScholarshipController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Pending(ctx *fiber.Ctx) error
	Approve(ctx *fiber.Ctx) error
	Disburse(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
}

type scholarshipController struct {
	scholarshipService service.IScholarshipService
}

func NewScholarshipController(scholarshipService service.IScholarshipService) IScholarshipController {
	return &scholarshipController{scholarshipService: scholarshipService}
}

func (c *scholarshipController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/scholarship/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.Index)
	h.Get("pending", c.Pending)
	h.Post(":id/approve", c.Approve)
	h.Post(":id/disburse", c.Disburse)
	h.Post(":id/cancel", c.Cancel)
}

func (c *scholarshipController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateScholarshipRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.scholarshipService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create scholarship", res))
}

func (c *scholarshipController) Index(ctx *fiber.Ctx) error {
	res, err := c.scholarshipService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list scholarships", res))
}

func (c *scholarshipController) Pending(ctx *fiber.Ctx) error {
	res, err := c.scholarshipService.GetPending(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list pending scholarships", res))
}

func (c *scholarshipController) Approve(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.RecordApprovalRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return err
		}
	}

	res, err := c.scholarshipService.RecordApproval(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record approval", res))
}

func (c *scholarshipController) Disburse(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.scholarshipService.Disburse(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success disburse scholarship", res))
}

func (c *scholarshipController) Cancel(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.scholarshipService.Cancel(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success cancel scholarship", res))
}
