package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "dialedbyh/internal/log"
	"dialedbyh/internal/services"
)

type SubmissionHandler struct {
	Subs *services.SubmissionService
}

func (h *SubmissionHandler) Create(c *fiber.Ctx) error {
	var req services.SubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		applog.Security(c, "submission.body.parse", map[string]any{"error": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	res, err := h.Subs.Submit(req)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			applog.Security(c, "submission.validation.fail", map[string]any{"type": req.Type})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Error()})
		}
		applog.Error(c, "submission.insert.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"details": err.Error(),
		})
	}

	applog.Audit(c, "submission.create", map[string]any{
		"submission_id": res.ID,
		"type":          req.Type,
		"email_sent":    res.EmailSent,
	})

	var emailID any // null when no message went out
	if res.EmailID != "" {
		emailID = res.EmailID
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"id":        res.ID,
		"emailSent": res.EmailSent,
		"emailId":   emailID,
	})
}
