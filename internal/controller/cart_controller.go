package controller

import (
	"strconv"

	"valetkleen-be/internal/apperror"
	"valetkleen-be/internal/dto"
	"valetkleen-be/internal/pkg/serverutils"
	"valetkleen-be/internal/repository/contract"
	"valetkleen-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICartController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
	RemoveLine(ctx *fiber.Ctx) error
	UpdateLine(ctx *fiber.Ctx) error
}

// cartController exposes the cart REST surface the chat widget uses for
// out-of-band edits. Each mutation is staged on a session clone and saved
// once, same as a chat turn.
type cartController struct {
	sessionRepo contract.SessionRepository
	cartService service.ICartService
}

func NewCartController(sessionRepo contract.SessionRepository, cartService service.ICartService) ICartController {
	return &cartController{
		sessionRepo: sessionRepo,
		cartService: cartService,
	}
}

func (c *cartController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cart/v1")
	h.Get(":session_id", c.Show)
	h.Delete(":session_id", c.Clear)
	h.Put(":session_id/item/:line_id", c.UpdateLine)
	h.Delete(":session_id/item/:line_id", c.RemoveLine)
}

func (c *cartController) Show(ctx *fiber.Ctx) error {
	sess, ok := c.sessionRepo.Get(ctx.Params("session_id"))
	if !ok {
		return apperror.ErrSessionNotFound
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get cart", c.cartService.Summary(sess)))
}

func (c *cartController) Clear(ctx *fiber.Ctx) error {
	sess, ok := c.sessionRepo.Get(ctx.Params("session_id"))
	if !ok {
		return apperror.ErrSessionNotFound
	}

	work := sess.Clone()
	c.cartService.Clear(work)
	c.sessionRepo.Save(work)

	return ctx.JSON(serverutils.SuccessResponse("Success clear cart", c.cartService.Summary(work)))
}

func (c *cartController) RemoveLine(ctx *fiber.Ctx) error {
	sess, ok := c.sessionRepo.Get(ctx.Params("session_id"))
	if !ok {
		return apperror.ErrSessionNotFound
	}
	lineId, err := strconv.Atoi(ctx.Params("line_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "line_id must be an integer")
	}

	work := sess.Clone()
	if _, err := c.cartService.Remove(work, lineId); err != nil {
		return err
	}
	c.sessionRepo.Save(work)

	return ctx.JSON(serverutils.SuccessResponse("Success remove cart line", c.cartService.Summary(work)))
}

func (c *cartController) UpdateLine(ctx *fiber.Ctx) error {
	sess, ok := c.sessionRepo.Get(ctx.Params("session_id"))
	if !ok {
		return apperror.ErrSessionNotFound
	}
	lineId, err := strconv.Atoi(ctx.Params("line_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "line_id must be an integer")
	}

	var req dto.UpdateQuantityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	work := sess.Clone()
	if _, err := c.cartService.UpdateQuantity(work, lineId, req.Quantity); err != nil {
		return err
	}
	c.sessionRepo.Save(work)

	return ctx.JSON(serverutils.SuccessResponse("Success update cart line", c.cartService.Summary(work)))
}
