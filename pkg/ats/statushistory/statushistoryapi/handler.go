package statushistoryapi

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"talentbridge/pkg/ats/statushistory"
	"talentbridge/pkg/ats/statushistory/statushistorysrv"
	"talentbridge/pkg/auth"
	"talentbridge/pkg/errx"
	"talentbridge/pkg/kernel"
)

// Handler exposes status history over HTTP.
type Handler struct {
	service *statushistorysrv.Service
}

func NewHandler(service *statushistorysrv.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router fiber.Router, tokenMiddleware *auth.TokenMiddleware) {
	group := router.Group("/status-history", tokenMiddleware.Authenticate())

	group.Post("/", h.Create)
	group.Post("/batch", h.CreateBatch)
	group.Get("/candidate/:candidateId", h.History)
	group.Get("/candidate/:candidateId/timeline", h.Timeline)
	group.Get("/calendar", h.Calendar)
	group.Get("/stats", h.Stats)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req statushistory.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return errx.Wrap(err, "invalid request body", errx.TypeValidation)
	}

	entry, err := h.service.Create(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *Handler) CreateBatch(c *fiber.Ctx) error {
	var reqs []statushistory.CreateRequest
	if err := c.BodyParser(&reqs); err != nil {
		return errx.Wrap(err, "invalid request body", errx.TypeValidation)
	}

	results, err := h.service.CreateBatch(c.Context(), reqs)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusMultiStatus).JSON(fiber.Map{"results": results})
}

func (h *Handler) History(c *fiber.Ctx) error {
	candidateID, err := kernel.ParseCandidateID(c.Params("candidateId"))
	if err != nil {
		return errx.Wrap(err, "invalid candidate id", errx.TypeValidation)
	}

	entries, err := h.service.History(c.Context(), candidateID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"entries": entries})
}

func (h *Handler) Timeline(c *fiber.Ctx) error {
	candidateID, err := kernel.ParseCandidateID(c.Params("candidateId"))
	if err != nil {
		return errx.Wrap(err, "invalid candidate id", errx.TypeValidation)
	}

	timeline, err := h.service.Timeline(c.Context(), candidateID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"timeline": timeline})
}

func (h *Handler) Calendar(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return err
	}

	buckets, err := h.service.Calendar(c.Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"calendar": buckets})
}

func (h *Handler) Stats(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"stats": stats})
}

// parseDateRange reads from/to query params as YYYY-MM-DD. Missing params
// default to the current month.
func parseDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, errx.Wrap(err, "invalid from date", errx.TypeValidation)
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, errx.Wrap(err, "invalid to date", errx.TypeValidation)
		}
		// Inclusive end date.
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, nil
}
