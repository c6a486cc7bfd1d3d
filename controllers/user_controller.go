package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"eventstats/middlewares"
)

func (ctl *Controller) GetProfile(c *fiber.Ctx) error {
	userToken, ok := c.Locals(middlewares.UserContextKey).(*jwt.Token)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication is not configured"})
	}
	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}
	userID, ok := claims["id"].(float64) // JSON numbers decode as float64
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	user, err := ctl.store.FindUserByID(c.UserContext(), int64(userID))
	if err != nil {
		return fail(c, err, "User")
	}
	return c.JSON(user)
}
