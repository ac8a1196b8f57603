package routes

import (
	"jewelmart/validation"

	"github.com/gofiber/fiber/v2"
)

func getHomeSections(c *fiber.Ctx) error {
	sections, err := st.GetHomeSections()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get home sections",
		})
	}
	return c.JSON(fiber.Map{
		"sections": sections,
	})
}

func getHomeSectionItems(c *fiber.Ctx) error {
	items, err := st.GetHomeSectionItems(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get section items",
		})
	}
	return c.JSON(fiber.Map{
		"items": items,
	})
}

func createHomeSection(c *fiber.Ctx) error {
	var input validation.HomeSectionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validation.Validate(&input); err != nil {
		return validationError(c, err)
	}

	section, err := st.CreateHomeSection(input.Model())
	if err != nil {
		return storeError(c, err, "Section not found")
	}
	return c.Status(fiber.StatusCreated).JSON(section)
}

func updateHomeSection(c *fiber.Ctx) error {
	var input validation.HomeSectionUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validation.Validate(&input); err != nil {
		return validationError(c, err)
	}

	section, err := st.UpdateHomeSection(c.Params("id"), input.Model())
	if err != nil {
		return storeError(c, err, "Section not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    section,
	})
}

func deleteHomeSection(c *fiber.Ctx) error {
	if err := st.DeleteHomeSection(c.Params("id")); err != nil {
		return storeError(c, err, "Section not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Section deleted successfully",
	})
}

func reorderHomeSections(c *fiber.Ctx) error {
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

	if err := st.ReorderHomeSections(body.IDs); err != nil {
		return storeError(c, err, "Section not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Sections reordered successfully",
	})
}

func addHomeSectionItem(c *fiber.Ctx) error {
	var input validation.HomeSectionItemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validation.Validate(&input); err != nil {
		return validationError(c, err)
	}

	item, err := st.AddHomeSectionItem(input.Model())
	if err != nil {
		return storeError(c, err, "Section or product not found")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func removeHomeSectionItem(c *fiber.Ctx) error {
	removed, err := st.RemoveHomeSectionItem(c.Params("id"))
	if err != nil {
		return storeError(c, err, "Section item not found")
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Section item not found",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Item removed from section",
	})
}
