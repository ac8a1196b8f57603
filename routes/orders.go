package routes

import (
	"time"

	"jewelmart/models"
	"jewelmart/validation"

	"github.com/gofiber/fiber/v2"
)

func createOrder(c *fiber.Ctx) error {
	var input validation.OrderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validation.Validate(&input); err != nil {
		return validationError(c, err)
	}

	order, err := st.CreateOrder(input.Model())
	if err != nil {
		return storeError(c, err, "Order not found")
	}

	notify("order.created", order)
	return c.Status(fiber.StatusCreated).JSON(order)
}

func getOrder(c *fiber.Ctx) error {
	order, err := st.GetOrder(c.Params("id"))
	if err != nil {
		return storeError(c, err, "Order not found")
	}
	return c.JSON(order)
}

// dateRange parses optional ?from=2006-01-02&to=2006-01-02 bounds.
func dateRange(c *fiber.Ctx) (from, to *time.Time, err error) {
	if raw := c.Query("from"); raw != "" {
		t, perr := time.Parse("2006-01-02", raw)
		if perr != nil {
			return nil, nil, perr
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, perr := time.Parse("2006-01-02", raw)
		if perr != nil {
			return nil, nil, perr
		}
		// inclusive end date
		t = t.AddDate(0, 0, 1)
		to = &t
	}
	return from, to, nil
}

func getAllOrders(c *fiber.Ctx) error {
	from, to, err := dateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date parameter, expected YYYY-MM-DD",
		})
	}
	orders, err := st.GetOrders(from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get orders",
		})
	}
	return c.JSON(fiber.Map{
		"orders": orders,
		"total":  len(orders),
	})
}

func getMyOrders(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)
	orders, err := st.GetOrdersByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get orders",
		})
	}
	return c.JSON(fiber.Map{
		"orders": orders,
	})
}

func updateOrderStatus(c *fiber.Ctx) error {
	var body struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil || body.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status is required",
		})
	}

	if err := st.UpdateOrderStatus(c.Params("id"), body.Status); err != nil {
		return storeError(c, err, "Order not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order status updated",
	})
}

func updatePaymentStatus(c *fiber.Ctx) error {
	var body struct {
		Status models.PaymentStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil || body.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status is required",
		})
	}

	if err := st.UpdatePaymentStatus(c.Params("id"), body.Status); err != nil {
		return storeError(c, err, "Order not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payment status updated",
	})
}

func deleteOrder(c *fiber.Ctx) error {
	deleted, err := st.DeleteOrder(c.Params("id"))
	if err != nil {
		return storeError(c, err, "Order not found")
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order deleted successfully",
	})
}
