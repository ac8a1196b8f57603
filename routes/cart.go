package routes

import (
	"jewelmart/validation"

	"github.com/gofiber/fiber/v2"
)

// cartOwner resolves the owner from query params: ?session_id=... for
// guests, ?user_id=... for logged-in customers.
func cartOwner(c *fiber.Ctx) (sessionID, userID *string) {
	if v := c.Query("session_id"); v != "" {
		sessionID = &v
	}
	if v := c.Query("user_id"); v != "" {
		userID = &v
	}
	return sessionID, userID
}

func getCart(c *fiber.Ctx) error {
	sessionID, userID := cartOwner(c)
	items, err := st.GetCartItems(sessionID, userID)
	if err != nil {
		return storeError(c, err, "Cart not found")
	}
	return c.JSON(fiber.Map{
		"items": items,
		"total": len(items),
	})
}

func addCartItem(c *fiber.Ctx) error {
	var input validation.CartItemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validation.Validate(&input); err != nil {
		return validationError(c, err)
	}

	item, err := st.AddCartItem(input.Model())
	if err != nil {
		return storeError(c, err, "Product not found")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func updateCartItem(c *fiber.Ctx) error {
	var body struct {
		Quantity validation.Number `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	item, err := st.UpdateCartItemQuantity(c.Params("id"), body.Quantity.Int())
	if err != nil {
		return storeError(c, err, "Cart item not found")
	}
	return c.JSON(item)
}

func removeCartItem(c *fiber.Ctx) error {
	removed, err := st.RemoveCartItem(c.Params("id"))
	if err != nil {
		return storeError(c, err, "Cart item not found")
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Cart item not found",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Item removed from cart",
	})
}

func clearCart(c *fiber.Ctx) error {
	sessionID, userID := cartOwner(c)
	if err := st.ClearCart(sessionID, userID); err != nil {
		return storeError(c, err, "Cart not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Cart cleared",
	})
}

// mergeCart folds the guest session cart into the authenticated user's cart.
func mergeCart(c *fiber.Ctx) error {
	var body struct {
		SessionID string `json:"session_id"`
	}
	if err := c.BodyParser(&body); err != nil || body.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id is required",
		})
	}

	userID, _ := c.Locals("userID").(string)
	if err := st.MergeGuestCart(body.SessionID, userID); err != nil {
		return storeError(c, err, "Cart not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Cart merged",
	})
}
