// Package api exposes the statement-processing pipeline over HTTP:
// session-gated endpoints to start a run, poll its progress, and fetch
// the finished report.
package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/AkshayAwasthi30/Finance-Flow/internal/runs"
)

const sessionCookie = "ff_session"

// Handler holds the HTTP handlers and their collaborators.
type Handler struct {
	Runner   *runs.Runner
	Store    *runs.Store
	Sessions *Sessions
	Log      zerolog.Logger
}

// NewApp builds the fiber application with all routes registered.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "finance-flow",
		DisableStartupMessage: true,
	})

	app.Get("/api/health", h.HandleHealth)
	app.Post("/api/authenticate", h.HandleAuthenticate)
	app.Post("/api/process-statements", h.HandleProcessStatements)
	app.Get("/api/processing-status/:taskID", h.HandleProcessingStatus)
	app.Get("/api/transactions/:taskID", h.HandleTransactions)
	app.Post("/logout", h.HandleLogout)

	return app
}

func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"engine": "fiber",
	})
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleAuthenticate validates mailbox credentials' shape and opens a
// session. Credentials are not verified against the mailbox here; a
// bad password surfaces when a run tries to fetch.
func (h *Handler) HandleAuthenticate(c *fiber.Ctx) error {
	var req authRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)
	if email == "" || password == "" || !strings.Contains(strings.ToLower(email), "@gmail.com") {
		return fail(c, fiber.StatusBadRequest, "Valid Gmail address required")
	}

	token, err := h.Sessions.Open(email)
	if err != nil {
		h.Log.Error().Err(err).Msg("failed to open session")
		return fail(c, fiber.StatusInternalServerError, "Authentication failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		HTTPOnly: true,
		Expires:  time.Now().Add(12 * time.Hour),
	})
	return c.JSON(fiber.Map{"success": true})
}

type processRequest struct {
	FromDate    string `json:"from_date"`
	ToDate      string `json:"to_date"`
	PDFPassword string `json:"pdf_password"`
}

// HandleProcessStatements starts a background run and returns its task
// ID for polling.
func (h *Handler) HandleProcessStatements(c *fiber.Ctx) error {
	if !h.authenticated(c) {
		return fail(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	var req processRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.FromDate == "" || req.ToDate == "" || req.PDFPassword == "" {
		return fail(c, fiber.StatusBadRequest, "Missing required fields: from_date, to_date, pdf_password")
	}

	from, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "from_date must be YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", req.ToDate)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "to_date must be YYYY-MM-DD")
	}
	if from.After(to) {
		return fail(c, fiber.StatusBadRequest, "from_date cannot be later than to_date")
	}

	taskID := h.Runner.Start(runs.Request{
		From:        from,
		To:          to,
		PDFPassword: req.PDFPassword,
	})
	h.Log.Info().Str("run_id", taskID).Msg("processing started")

	return c.JSON(fiber.Map{"success": true, "task_id": taskID})
}

// HandleProcessingStatus reports a run's coarse progress.
func (h *Handler) HandleProcessingStatus(c *fiber.Ctx) error {
	run, ok := h.Store.Get(c.Params("taskID"))
	if !ok {
		return c.JSON(fiber.Map{"status": "not_found"})
	}
	return c.JSON(fiber.Map{
		"status":   run.Status,
		"progress": run.Progress,
		"message":  run.Message,
	})
}

// HandleTransactions returns the completed run's report.
func (h *Handler) HandleTransactions(c *fiber.Ctx) error {
	run, ok := h.Store.Get(c.Params("taskID"))
	if !ok || run.Report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No data found"})
	}
	return c.JSON(run.Report)
}

func (h *Handler) HandleLogout(c *fiber.Ctx) error {
	if token := c.Cookies(sessionCookie); token != "" {
		h.Sessions.Close(token)
	}
	c.ClearCookie(sessionCookie)
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) authenticated(c *fiber.Ctx) bool {
	token := c.Cookies(sessionCookie)
	if token == "" {
		return false
	}
	_, ok := h.Sessions.Lookup(token)
	return ok
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": msg})
}
