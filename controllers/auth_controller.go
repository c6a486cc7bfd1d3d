package controllers

import (
	"errors"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"eventstats/database"
	"eventstats/models"
	"eventstats/utils"
)

func (ctl *Controller) Login(c *fiber.Ctx) error {
	if ctl.auth.JWTSecret == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Authentication is not configured"})
	}

	input := new(models.LoginRequest)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := utils.Validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": utils.FormatValidationErrors(err)})
	}

	user, err := ctl.store.FindUserByEmail(c.UserContext(), input.Email)
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}
	if err != nil {
		return fail(c, err, "User")
	}
	if !user.IsActive || !ctl.roleAllowed(user.Role) || !utils.CheckPassword(user.HashedPassword, input.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   user.ID,
		"role": user.Role,
		"exp":  ctl.now().Add(ctl.auth.TokenTTL).Unix(),
	})
	tokenString, err := token.SignedString([]byte(ctl.auth.JWTSecret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create token"})
	}

	return c.JSON(fiber.Map{"token": tokenString})
}

func (ctl *Controller) roleAllowed(role string) bool {
	return slices.ContainsFunc(ctl.auth.Roles, func(r string) bool {
		return strings.EqualFold(r, role)
	})
}
