package identity

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/walletsim/walletsim/internal/validation"
)

// Handler exposes identity endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs an identity HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type registerRequest struct {
	FirstName      string `json:"first_name" validate:"required,max=100"`
	LastName       string `json:"last_name" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,email"`
	DocumentType   string `json:"document_type" validate:"required"`
	DocumentNumber string `json:"document_number" validate:"required,max=50"`
}

// UserResponse is the JSON projection of a User.
type UserResponse struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToResponse projects a user for the API.
func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:             u.ID(),
		FirstName:      u.FirstName(),
		LastName:       u.LastName(),
		FullName:       u.FullName(),
		Email:          u.Email().String(),
		DocumentType:   string(u.Document().Type()),
		DocumentNumber: u.Document().Number(),
		Active:         u.Active(),
		CreatedAt:      u.CreatedAt(),
		UpdatedAt:      u.UpdatedAt(),
	}
}

// Register handles user onboarding.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validation.Struct(req); err != nil {
		return err
	}
	user, err := h.service.Register(c.UserContext(), RegisterInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(ToResponse(user))
}

// Get returns a user by id.
func (h *Handler) Get(c *fiber.Ctx) error {
	user, err := h.service.FindByID(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(ToResponse(user))
}

// Search looks a user up by ?email=, or lists users (?active=true for active only).
func (h *Handler) Search(c *fiber.Ctx) error {
	if email := c.Query("email"); email != "" {
		user, err := h.service.FindByEmail(c.UserContext(), email)
		if err != nil {
			return err
		}
		return c.Status(http.StatusOK).JSON(ToResponse(user))
	}

	users, err := h.service.List(c.UserContext(), c.QueryBool("active", false))
	if err != nil {
		return err
	}
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToResponse(u))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"users": out})
}
