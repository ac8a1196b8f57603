package routes

import (
	"jewelmart/models"
	"jewelmart/validation"

	"github.com/gofiber/fiber/v2"
)

// --- Bills ---

func createBill(c *fiber.Ctx) error {
	var input validation.BillInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validation.Validate(&input); err != nil {
		return validationError(c, err)
	}

	bill, err := st.CreateBill(input.Model())
	if err != nil {
		return storeError(c, err, "Bill not found")
	}

	notify("bill.created", bill)
	return c.Status(fiber.StatusCreated).JSON(bill)
}

func getAllBills(c *fiber.Ctx) error {
	from, to, err := dateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date parameter, expected YYYY-MM-DD",
		})
	}
	bills, err := st.GetBills(from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get bills",
		})
	}
	return c.JSON(fiber.Map{
		"bills": bills,
		"total": len(bills),
	})
}

func getBill(c *fiber.Ctx) error {
	bill, err := st.GetBill(c.Params("id"))
	if err != nil {
		return storeError(c, err, "Bill not found")
	}
	return c.JSON(bill)
}

func updateBill(c *fiber.Ctx) error {
	var input validation.BillUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validation.Validate(&input); err != nil {
		return validationError(c, err)
	}

	updates, cols := input.Changes()
	bill, err := st.UpdateBill(c.Params("id"), updates, cols)
	if err != nil {
		return storeError(c, err, "Bill not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    bill,
	})
}

func deleteBill(c *fiber.Ctx) error {
	deleted, err := st.DeleteBill(c.Params("id"))
	if err != nil {
		return storeError(c, err, "Bill not found")
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Bill not found",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Bill deleted successfully",
	})
}

// --- Estimates ---

func createEstimate(c *fiber.Ctx) error {
	var input validation.EstimateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validation.Validate(&input); err != nil {
		return validationError(c, err)
	}

	estimate, err := st.CreateEstimate(input.Model())
	if err != nil {
		return storeError(c, err, "Estimate not found")
	}
	return c.Status(fiber.StatusCreated).JSON(estimate)
}

func getAllEstimates(c *fiber.Ctx) error {
	status := models.EstimateStatus(c.Query("status"))
	estimates, err := st.GetEstimates(status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get estimates",
		})
	}
	return c.JSON(fiber.Map{
		"estimates": estimates,
		"total":     len(estimates),
	})
}

func getEstimate(c *fiber.Ctx) error {
	estimate, err := st.GetEstimate(c.Params("id"))
	if err != nil {
		return storeError(c, err, "Estimate not found")
	}
	return c.JSON(estimate)
}

func updateEstimate(c *fiber.Ctx) error {
	var input validation.EstimateUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validation.Validate(&input); err != nil {
		return validationError(c, err)
	}

	updates, cols := input.Changes()
	estimate, err := st.UpdateEstimate(c.Params("id"), updates, cols)
	if err != nil {
		return storeError(c, err, "Estimate not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    estimate,
	})
}

func updateEstimateStatus(c *fiber.Ctx) error {
	var body struct {
		Status models.EstimateStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil || body.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status is required",
		})
	}

	if err := st.UpdateEstimateStatus(c.Params("id"), body.Status); err != nil {
		return storeError(c, err, "Estimate not found")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Estimate status updated",
	})
}

func deleteEstimate(c *fiber.Ctx) error {
	deleted, err := st.DeleteEstimate(c.Params("id"))
	if err != nil {
		return storeError(c, err, "Estimate not found")
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Estimate not found",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Estimate deleted successfully",
	})
}
