package main

import (
	"io"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/isuruAnjula/E-Commerce-Website/internal/config"
	"github.com/isuruAnjula/E-Commerce-Website/internal/http/handlers"
	applog "github.com/isuruAnjula/E-Commerce-Website/internal/log"
	"github.com/isuruAnjula/E-Commerce-Website/internal/repos"
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

	db, err := repos.OpenDB(cfg.DBDSN, cfg.AdminUser, cfg.AdminPassword)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and answer with the generic body; no internals leak.
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON("Error...")
		},
	})
	// Room for image uploads
	app.Server().MaxRequestBodySize = 10 << 20

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// The frontend runs on its own origin.
	app.Use(cors.New())

	// ---------- Static assets ----------
	// Frontend bundle and uploaded images. Unmatched paths fall through
	// to the routes below.
	log.Printf("[static] / -> %s", cfg.PublicDir)
	app.Static("/", cfg.PublicDir)

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg)
	deps.Register(app)

	log.Fatal(app.Listen(":" + cfg.Port))
}
