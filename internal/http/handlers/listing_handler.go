package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"dialedbyh/internal/domain"
	applog "dialedbyh/internal/log"
	"dialedbyh/internal/services"
	"dialedbyh/internal/validate"
)

// ListingHandler serves one public listing. Two instances exist: the
// inventory listing (Available-only, photo-backed, cacheable) and the
// collectibles listing (everything, uncached).
type ListingHandler struct {
	Inv   *services.InventoryService
	Opts  services.ListingOptions
	Cache string // Cache-Control value; "" skips the header
}

func (h *ListingHandler) List(c *fiber.Ctx) error {
	if h.Cache != "" {
		c.Set("Cache-Control", h.Cache)
	}

	watches, err := h.Inv.Watches(c.UserContext(), h.Opts)
	if err != nil {
		applog.Error(c, "listing.query.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch inventory",
			"details": err.Error(),
		})
	}

	// Single watch by id; direct links bypass the image filter.
	if raw := strings.TrimSpace(c.Query("id")); raw != "" {
		id, ok := validate.ID(raw)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "id"})
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Watch not found"})
		}
		for _, w := range watches {
			if w.ID == id {
				return c.JSON(w)
			}
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Watch not found"})
	}

	if h.Opts.RequireImages {
		withImages := make([]domain.Watch, 0, len(watches))
		for _, w := range watches {
			if len(w.Images) > 0 {
				withImages = append(withImages, w)
			}
		}
		watches = withImages
	}

	return c.JSON(watches)
}
