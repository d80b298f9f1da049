package authapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"talentbridge/pkg/auth"
	"talentbridge/pkg/auth/authsrv"
	"talentbridge/pkg/errx"
)

type AuthHandlers struct {
	service  *authsrv.AuthService
	validate *validator.Validate
}

func NewAuthHandlers(service *authsrv.AuthService) *AuthHandlers {
	return &AuthHandlers{
		service:  service,
		validate: validator.New(),
	}
}

func (h *AuthHandlers) RegisterRoutes(app *fiber.App, tokenMiddleware *auth.TokenMiddleware) {
	app.Post("/auth/login", h.Login)
	app.Get("/auth/me", tokenMiddleware.Authenticate(), h.Me)
}

func (h *AuthHandlers) Login(c *fiber.Ctx) error {
	var req auth.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errx.Wrap(err, "invalid request body", errx.TypeValidation)
	}
	if err := h.validate.Struct(req); err != nil {
		return errx.Wrap(err, "email and password are required", errx.TypeValidation)
	}

	resp, err := h.service.Login(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *AuthHandlers) Me(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	rec, err := h.service.Me(c.Context(), authCtx.RecruiterID)
	if err != nil {
		return err
	}
	return c.JSON(rec)
}
