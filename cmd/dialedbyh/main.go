package main

import (
	"io"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"dialedbyh/internal/config"
	"dialedbyh/internal/http/handlers"
	applog "dialedbyh/internal/log"
	"dialedbyh/internal/mail"
	"dialedbyh/internal/notion"
	"dialedbyh/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Collaborator handles: created once, shared across requests.
	notionClient := notion.NewClient(cfg.NotionToken)
	sender := mail.NewSMTPSender(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Last-resort boundary; don't leak internals to clients.
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(recover.New())

	// ---------- API routes ----------
	deps := handlers.NewDeps(db, cfg, notionClient, sender)

	api := app.Group("/api/v1", handlers.APIHeaders)
	api.Get("/inventory", deps.Inventory.List)
	api.Get("/collectibles", deps.Collectibles.List)
	api.Post("/submissions", deps.Submissions.Create)
	api.All("/submissions", handlers.MethodNotAllowed)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
