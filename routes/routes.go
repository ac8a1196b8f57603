package routes

import (
	"errors"

	"jewelmart/config"
	"jewelmart/middleware"
	"jewelmart/store"
	"jewelmart/validation"

	"github.com/gofiber/fiber/v2"
)

var (
	st  *store.Store
	cfg *config.Config
)

func SetupRoutes(app *fiber.App, s *store.Store, c *config.Config) {
	st = s
	cfg = c

	// Live notification feed for the admin dashboard
	app.Get("/ws", websocketHandler())
	go runBroadcast()

	api := app.Group("/api")

	// Auth
	api.Post("/signup", signup)
	api.Post("/login", login)
	api.Post("/forgot-password", requestOtp)
	api.Post("/verify-otp", verifyOtp)
	api.Post("/reset-password", resetPassword)

	// Storefront catalog
	products := api.Group("/products")
	products.Get("/search", searchProducts)
	products.Get("/featured", getFeaturedProducts)
	products.Get("/", getAllProducts)
	products.Get("/:id", getProduct)

	categories := api.Group("/categories")
	categories.Get("/hierarchy", getCategoriesHierarchy)
	categories.Get("/", getAllCategories)
	categories.Get("/:slug/products", getProductsByCategory)

	// Home page layout
	home := api.Group("/home")
	home.Get("/sections", getHomeSections)
	home.Get("/sections/:id/items", getHomeSectionItems)

	// Cart (guest via session id, or logged-in via user id)
	cart := api.Group("/cart")
	cart.Get("/", getCart)
	cart.Post("/items", addCartItem)
	cart.Put("/items/:id", updateCartItem)
	cart.Delete("/items/:id", removeCartItem)
	cart.Delete("/", clearCart)

	// Checkout
	api.Post("/orders", createOrder)

	authed := api.Group("/me", middleware.RequireAuth(cfg.JWTSecret))
	authed.Get("/orders", getMyOrders)
	authed.Post("/cart/merge", mergeCart)

	// Admin surface
	admin := api.Group("/admin", middleware.RequireAuth(cfg.JWTSecret), middleware.RequireAdmin())

	admin.Get("/products", adminListProducts)
	admin.Post("/products", createProduct)
	admin.Put("/products/:id", updateProduct)
	admin.Delete("/products/:id", deleteProduct)
	admin.Post("/products/:id/restore", restoreProduct)

	admin.Post("/categories", createCategory)
	admin.Put("/categories/reorder", reorderCategories)
	admin.Put("/categories/:id", updateCategory)
	admin.Delete("/categories/:id", deleteCategory)

	admin.Get("/orders", getAllOrders)
	admin.Get("/orders/:id", getOrder)
	admin.Put("/orders/:id/status", updateOrderStatus)
	admin.Put("/orders/:id/payment", updatePaymentStatus)
	admin.Delete("/orders/:id", deleteOrder)

	admin.Post("/bills", createBill)
	admin.Get("/bills", getAllBills)
	admin.Get("/bills/:id", getBill)
	admin.Put("/bills/:id", updateBill)
	admin.Delete("/bills/:id", deleteBill)

	admin.Post("/estimates", createEstimate)
	admin.Get("/estimates", getAllEstimates)
	admin.Get("/estimates/:id", getEstimate)
	admin.Put("/estimates/:id", updateEstimate)
	admin.Put("/estimates/:id/status", updateEstimateStatus)
	admin.Delete("/estimates/:id", deleteEstimate)

	admin.Post("/home/sections", createHomeSection)
	admin.Put("/home/sections/reorder", reorderHomeSections)
	admin.Put("/home/sections/:id", updateHomeSection)
	admin.Delete("/home/sections/:id", deleteHomeSection)
	admin.Post("/home/items", addHomeSectionItem)
	admin.Delete("/home/items/:id", removeHomeSectionItem)
}

// validationError renders a FieldErrors list as a field-level 400 body.
func validationError(c *fiber.Ctx, err error) error {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fieldErrs,
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// storeError maps store sentinels onto HTTP statuses.
func storeError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": notFoundMsg,
		})
	case errors.Is(err, store.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Already exists",
		})
	case errors.Is(err, store.ErrInvalidSlug),
		errors.Is(err, store.ErrCartOwner),
		errors.Is(err, store.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
