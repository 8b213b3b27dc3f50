package controller

import (
	"valetkleen-be/internal/dto"
	"valetkleen-be/internal/pkg/serverutils"
	"valetkleen-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOrderController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	PaymentLink(ctx *fiber.Ctx) error
}

type orderController struct {
	orderService   service.IOrderService
	paymentService service.IPaymentService
}

func NewOrderController(orderService service.IOrderService, paymentService service.IPaymentService) IOrderController {
	return &orderController{
		orderService:   orderService,
		paymentService: paymentService,
	}
}

func (c *orderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/order/v1")
	h.Get(":order_number", c.Show)
	h.Put(":order_number/status", c.UpdateStatus)
	h.Post(":order_number/cancel", c.Cancel)
	h.Post(":order_number/payment-link", c.PaymentLink)
}

func (c *orderController) Show(ctx *fiber.Ctx) error {
	res, err := c.orderService.Get(ctx.Context(), ctx.Params("order_number"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get order", res))
}

func (c *orderController) UpdateStatus(ctx *fiber.Ctx) error {
	var req dto.UpdateOrderStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.orderService.UpdateStatus(ctx.Context(), ctx.Params("order_number"), req.Status); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update order status", nil))
}

func (c *orderController) Cancel(ctx *fiber.Ctx) error {
	if err := c.orderService.Cancel(ctx.Context(), ctx.Params("order_number")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success cancel order", nil))
}

func (c *orderController) PaymentLink(ctx *fiber.Ctx) error {
	link, err := c.paymentService.CreatePaymentLink(ctx.Context(), ctx.Params("order_number"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create payment link", fiber.Map{
		"redirect_url": link,
	}))
}
