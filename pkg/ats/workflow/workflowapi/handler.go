package workflowapi

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"talentbridge/pkg/ats/intake"
	"talentbridge/pkg/ats/workflow"
	"talentbridge/pkg/auth"
	"talentbridge/pkg/errx"
	"talentbridge/pkg/kernel"
)

// Handler exposes the candidate workflows over HTTP.
type Handler struct {
	service *workflow.Service
}

func NewHandler(service *workflow.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router fiber.Router, tokenMiddleware *auth.TokenMiddleware) {
	candidates := router.Group("/candidates", tokenMiddleware.Authenticate())

	candidates.Post("/complete", h.CreateComplete)
	candidates.Post("/cna", h.SubmitCNA)
	candidates.Get("/search", h.Search)
	candidates.Get("/", h.List)

	candidates.Get("/:id/complete", h.GetComplete)
	candidates.Put("/:id/complete", h.UpdateComplete)
	candidates.Delete("/:id/complete", h.DeleteComplete)
	candidates.Put("/:id/scoring", h.UpdateScoring)
	candidates.Post("/:id/resume", h.UploadResume)
	candidates.Get("/:id/resume", h.DownloadResume)

	jobs := router.Group("/client-jobs", tokenMiddleware.Authenticate())
	jobs.Get("/:id/feedback/legacy", h.LegacyFeedback)
}

func executiveCode(c *fiber.Ctx) string {
	if authCtx, ok := auth.GetAuthContext(c); ok {
		return authCtx.ExecutiveCode
	}
	return ""
}

func (h *Handler) CreateComplete(c *fiber.Ctx) error {
	var form intake.FormData
	if err := c.BodyParser(&form); err != nil {
		return errx.Wrap(err, "invalid request body", errx.TypeValidation)
	}

	result, err := h.service.CreateComplete(c.Context(), form, executiveCode(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *Handler) UpdateComplete(c *fiber.Ctx) error {
	candidateID, err := kernel.ParseCandidateID(c.Params("id"))
	if err != nil {
		return errx.Wrap(err, "invalid candidate id", errx.TypeValidation)
	}

	var form intake.FormData
	if err := c.BodyParser(&form); err != nil {
		return errx.Wrap(err, "invalid request body", errx.TypeValidation)
	}

	result, err := h.service.UpdateComplete(c.Context(), candidateID, form, executiveCode(c))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *Handler) GetComplete(c *fiber.Ctx) error {
	candidateID, err := kernel.ParseCandidateID(c.Params("id"))
	if err != nil {
		return errx.Wrap(err, "invalid candidate id", errx.TypeValidation)
	}

	form, err := h.service.GetComplete(c.Context(), candidateID)
	if err != nil {
		return err
	}
	return c.JSON(form)
}

func (h *Handler) DeleteComplete(c *fiber.Ctx) error {
	candidateID, err := kernel.ParseCandidateID(c.Params("id"))
	if err != nil {
		return errx.Wrap(err, "invalid candidate id", errx.TypeValidation)
	}

	if err := h.service.DeleteComplete(c.Context(), candidateID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Candidate dependents deleted"})
}

func (h *Handler) UpdateScoring(c *fiber.Ctx) error {
	var form intake.FormData
	if err := c.BodyParser(&form); err != nil {
		return errx.Wrap(err, "invalid request body", errx.TypeValidation)
	}

	// The scoring path accepts compound ids like "42-suffix".
	result, err := h.service.UpdateScoring(c.Context(), c.Params("id"), form, executiveCode(c))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// SubmitCNA accepts either a plain JSON body or a multipart form with a
// "data" JSON field plus an optional "resume" file.
func (h *Handler) SubmitCNA(c *fiber.Ctx) error {
	var form intake.FormData

	contentType := string(c.Request().Header.ContentType())
	if strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		if raw := c.FormValue("data"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &form); err != nil {
				return errx.Wrap(err, "invalid data field", errx.TypeValidation)
			}
		}

		if file, err := c.FormFile("resume"); err == nil && file != nil {
			f, openErr := file.Open()
			if openErr != nil {
				return errx.Wrap(openErr, "failed to read resume upload", errx.TypeValidation)
			}
			defer f.Close()

			result, cnaErr := h.service.SubmitCNA(c.Context(), form, file.Filename, f, executiveCode(c))
			if cnaErr != nil {
				return cnaErr
			}
			return c.JSON(result)
		}
	} else {
		if err := c.BodyParser(&form); err != nil {
			return errx.Wrap(err, "invalid request body", errx.TypeValidation)
		}
	}

	result, err := h.service.SubmitCNA(c.Context(), form, "", nil, executiveCode(c))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *Handler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return workflow.ErrRegistry.New(workflow.CodeMissingSearchTerm)
	}

	candidates, err := h.service.SearchCandidates(c.Context(), term)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"candidates": candidates})
}

func (h *Handler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	candidates, err := h.service.ListCandidates(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"candidates": candidates})
}

func (h *Handler) UploadResume(c *fiber.Ctx) error {
	candidateID, err := kernel.ParseCandidateID(c.Params("id"))
	if err != nil {
		return errx.Wrap(err, "invalid candidate id", errx.TypeValidation)
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return errx.Wrap(err, "resume file is required", errx.TypeValidation)
	}
	f, err := file.Open()
	if err != nil {
		return errx.Wrap(err, "failed to read resume upload", errx.TypeValidation)
	}
	defer f.Close()

	key, err := h.service.UploadResume(c.Context(), candidateID, file.Filename, f)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"resume_key": key})
}

func (h *Handler) DownloadResume(c *fiber.Ctx) error {
	candidateID, err := kernel.ParseCandidateID(c.Params("id"))
	if err != nil {
		return errx.Wrap(err, "invalid candidate id", errx.TypeValidation)
	}

	rc, key, err := h.service.DownloadResume(c.Context(), candidateID)
	if err != nil {
		return err
	}

	parts := strings.Split(key, "_")
	filename := parts[len(parts)-1]
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendStream(rc)
}

func (h *Handler) LegacyFeedback(c *fiber.Ctx) error {
	rawID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errx.Wrap(err, "invalid client job id", errx.TypeValidation)
	}

	log, err := h.service.LegacyFeedbackLog(c.Context(), kernel.ClientJobID(rawID))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"feedback_log": log})
}
