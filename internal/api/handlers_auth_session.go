package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sahanavh/cognicare/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid registration input.")
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "Name, email, and password are required.")
	}

	// Duplicate emails answer 409 before any hashing happens; the unique
	// index backstops concurrent registrations.
	exists, err := handler.authService.RegistrationEmailExists(input.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to create account.")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "An account with this email already exists.")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to secure password.")
	}

	user := models.User{
		Name:         input.Name,
		Age:          input.Age,
		Gender:       input.Gender,
		Email:        input.Email,
		PasswordHash: string(passwordHash),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "An account with this email already exists.")
	}

	return apiMessage(c, fiber.StatusCreated, "User registered successfully!")
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid login input.")
	}

	// Unknown email and wrong password answer identically so the endpoint
	// cannot be used to enumerate accounts.
	user, err := handler.authService.FindByEmail(strings.TrimSpace(input.Email))
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "Invalid email or password.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "Invalid email or password.")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to create session.")
	}

	return apiMessage(c, fiber.StatusOK, "Login successful!")
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return apiMessage(c, fiber.StatusOK, "Logged out successfully!")
}
