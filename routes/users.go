package routes

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"jewelmart/auth"
	"jewelmart/validation"

	"github.com/gofiber/fiber/v2"
)

func signup(c *fiber.Ctx) error {
	var input validation.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validation.Validate(&input); err != nil {
		return validationError(c, err)
	}

	user, err := st.CreateUser(input.Model())
	if err != nil {
		return storeError(c, err, "User not found")
	}

	token, err := auth.GenerateToken(cfg.JWTSecret, user, cfg.TokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to issue token",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

func login(c *fiber.Ctx) error {
	var input validation.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validation.Validate(&input); err != nil {
		return validationError(c, err)
	}

	// One message for every failure mode: do not reveal whether the email
	// or the password was wrong.
	user, err := st.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to authenticate",
		})
	}
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	token, err := auth.GenerateToken(cfg.JWTSecret, user, cfg.TokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to issue token",
		})
	}
	return c.JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

// requestOtp stores a fresh 6-digit code against the account. Delivery is
// handled outside this service; the response never reveals whether the
// email exists.
func requestOtp(c *fiber.Ctx) error {
	var input validation.OtpRequestInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validation.Validate(&input); err != nil {
		return validationError(c, err)
	}

	user, err := st.GetUserByEmail(input.Email)
	if err == nil {
		code := fmt.Sprintf("%06d", rand.Intn(1000000))
		expiry := time.Now().Add(cfg.OtpTTL)
		if err := st.UpdateUserOtp(user.ID, code, expiry); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to generate code",
			})
		}
		log.Println("OTP generated for user", user.ID)
	}

	return c.JSON(fiber.Map{
		"message": "If the account exists, a code has been sent",
	})
}

func verifyOtp(c *fiber.Ctx) error {
	var input validation.OtpVerifyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validation.Validate(&input); err != nil {
		return validationError(c, err)
	}

	user, err := st.GetUserByEmail(input.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired code",
		})
	}

	// The store keeps expiry as advisory data; the clock check lives here.
	if user.OtpCode == "" || user.OtpCode != input.Code ||
		user.OtpExpiry == nil || time.Now().After(*user.OtpExpiry) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired code",
		})
	}

	if err := st.UpdateUserOtpVerified(user.ID, true); err != nil {
		return storeError(c, err, "User not found")
	}
	return c.JSON(fiber.Map{
		"message": "Code verified",
	})
}

func resetPassword(c *fiber.Ctx) error {
	var input validation.PasswordResetInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validation.Validate(&input); err != nil {
		return validationError(c, err)
	}

	user, err := st.GetUserByEmail(input.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Code verification required",
		})
	}
	if !user.OtpVerified {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Code verification required",
		})
	}

	if err := st.UpdateUserPassword(user.ID, input.Password); err != nil {
		return storeError(c, err, "User not found")
	}
	if err := st.ClearUserOtp(user.ID); err != nil {
		return storeError(c, err, "User not found")
	}
	return c.JSON(fiber.Map{
		"message": "Password updated",
	})
}
