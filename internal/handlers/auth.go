package handlers

import (
	"github.com/digisamuday/samuday/internal/services"
	"github.com/digisamuday/samuday/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthHandler handles registration, login and profile routes
type AuthHandler struct {
	DB         *gorm.DB
	BcryptCost int
}

// LoginRequest is the body of POST /api/login/
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the reusable token of the resident
type LoginResponse struct {
	Message string `json:"message"`
	Role    string `json:"role"`
	Token   string `json:"token"`
}

// ProfileResponse is the caller's own account
type ProfileResponse struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	ApartmentNo string `json:"apartment_no"`
	PhoneNumber string `json:"phone_number"`
}

// Register handles POST /api/register/
// @Summary Register an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.RegisterInput true "Account"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /register/ [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in services.RegisterInput
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	if _, err := services.Register(h.DB, in, h.BcryptCost); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, "User registered successfully", nil)
}

// Login handles POST /api/login/
// @Summary Log in and receive a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /login/ [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in LoginRequest
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	user, token, err := services.Authenticate(h.DB, in.Username, in.Password)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(LoginResponse{
		Message: "Login successful",
		Role:    user.Role.String(),
		Token:   token,
	})
}

// Logout handles POST /api/logout/
// @Summary Revoke the caller's token
// @Tags Auth
// @Produce json
// @Security TokenAuth
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /logout/ [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := services.Revoke(h.DB, currentUser(c)); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Logout successful", nil)
}

// Profile handles GET /api/user-profile/
// @Summary Get the caller's profile
// @Tags Auth
// @Produce json
// @Security TokenAuth
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /user-profile/ [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user := currentUser(c)
	return c.Status(fiber.StatusOK).JSON(ProfileResponse{
		ID:          user.ID,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		Role:        user.Role.String(),
		ApartmentNo: user.ApartmentNo,
		PhoneNumber: user.PhoneNumber,
	})
}

// UpdateProfile handles PATCH /api/update-profile/
// @Summary Update the caller's profile
// @Tags Auth
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param body body services.ProfileInput true "Profile fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /update-profile/ [patch]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var in services.ProfileInput
	if err := parseBody(c, &in); err != nil {
		return utils.HandleError(c, err)
	}
	if _, err := services.UpdateProfile(h.DB, currentUser(c), in); err != nil {
		return utils.HandleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Profile updated successfully",
	})
}
