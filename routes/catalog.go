package routes

import (
	"jewelmart/store"
	"jewelmart/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// --- Products ---

func getAllProducts(c *fiber.Ctx) error {
	products, err := st.GetAllProducts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}
	return c.JSON(fiber.Map{
		"products": products,
		"total":    len(products),
	})
}

func getFeaturedProducts(c *fiber.Ctx) error {
	products, err := st.GetFeaturedProducts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}
	return c.JSON(fiber.Map{
		"products": products,
	})
}

func getProduct(c *fiber.Ctx) error {
	product, err := st.GetProduct(c.Params("id"))
	if err != nil {
		return storeError(c, err, "Product not found")
	}
	return c.JSON(product)
}

func getProductsByCategory(c *fiber.Ctx) error {
	category, err := st.GetCategoryBySlug(c.Params("slug"))
	if err != nil {
		return storeError(c, err, "Category not found")
	}
	products, err := st.GetProductsByCategory(category.Slug)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}
	return c.JSON(fiber.Map{
		"category": category,
		"products": products,
	})
}

func searchProducts(c *fiber.Ctx) error {
	filters := store.SearchFilters{
		Category:    c.Query("category"),
		SubCategory: c.Query("sub_category"),
		Material:    c.Query("material"),
		Gender:      c.Query("gender"),
		Occasion:    c.Query("occasion"),
		Currency:    c.Query("currency"),
		SortBy:      c.Query("sort"),
	}
	if raw := c.Query("min_price"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid min_price parameter",
			})
		}
		filters.MinPrice = &d
	}
	if raw := c.Query("max_price"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid max_price parameter",
			})
		}
		filters.MaxPrice = &d
	}

	products, err := st.SearchProducts(c.Query("q"), filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search products",
		})
	}
	return c.JSON(fiber.Map{
		"products": products,
		"total":    len(products),
	})
}

func adminListProducts(c *fiber.Ctx) error {
	products, err := st.AdminListProducts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}
	return c.JSON(fiber.Map{
		"products": products,
		"total":    len(products),
	})
}

func createProduct(c *fiber.Ctx) error {
	var input validation.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validation.Validate(&input); err != nil {
		return validationError(c, err)
	}

	product, err := st.CreateProduct(input.Model())
	if err != nil {
		return storeError(c, err, "Product not found")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func updateProduct(c *fiber.Ctx) error {
	var input validation.ProductUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validation.Validate(&input); err != nil {
		return validationError(c, err)
	}

	product, err := st.UpdateProduct(c.Params("id"), input.Model())
	if err != nil {
		return storeError(c, err, "Product not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    product,
	})
}

func deleteProduct(c *fiber.Ctx) error {
	deleted, err := st.DeleteProduct(c.Params("id"))
	if err != nil {
		return storeError(c, err, "Product not found")
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product deleted successfully",
	})
}

func restoreProduct(c *fiber.Ctx) error {
	restored, err := st.RestoreProduct(c.Params("id"))
	if err != nil {
		return storeError(c, err, "Product not found")
	}
	if !restored {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found or already active",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product restored successfully",
	})
}

// --- Categories ---

func getAllCategories(c *fiber.Ctx) error {
	categories, err := st.GetCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get categories",
		})
	}
	return c.JSON(fiber.Map{
		"categories": categories,
		"total":      len(categories),
	})
}

func getCategoriesHierarchy(c *fiber.Ctx) error {
	nodes, err := st.GetCategoriesHierarchy()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get categories",
		})
	}
	return c.JSON(fiber.Map{
		"categories": nodes,
	})
}

func createCategory(c *fiber.Ctx) error {
	var input validation.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validation.Validate(&input); err != nil {
		return validationError(c, err)
	}

	category, err := st.CreateCategory(input.Model())
	if err != nil {
		return storeError(c, err, "Category not found")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func updateCategory(c *fiber.Ctx) error {
	var input validation.CategoryUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validation.Validate(&input); err != nil {
		return validationError(c, err)
	}

	category, err := st.UpdateCategory(c.Params("id"), input.Model())
	if err != nil {
		return storeError(c, err, "Category not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    category,
	})
}

// deleteCategory surfaces the referential guard as a 409, not an error:
// the category still exists and the client must act on that.
func deleteCategory(c *fiber.Ctx) error {
	deleted, err := st.DeleteCategory(c.Params("id"))
	if err != nil {
		return storeError(c, err, "Category not found")
	}
	if !deleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Category has subcategories or products and cannot be deleted",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Category deleted successfully",
	})
}

func reorderCategories(c *fiber.Ctx) error {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if len(body.IDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ids must not be empty",
		})
	}

	if err := st.ReorderCategories(body.IDs); err != nil {
		return storeError(c, err, "Category not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Categories reordered successfully",
	})
}
