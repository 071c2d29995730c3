package handler

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fadilmartias/cold-mail-generator/internal/config"
	"github.com/fadilmartias/cold-mail-generator/internal/dto"
	"github.com/fadilmartias/cold-mail-generator/internal/middleware"
	"github.com/fadilmartias/cold-mail-generator/internal/usecase"
	"github.com/fadilmartias/cold-mail-generator/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxResumeSize = 5 * 1024 * 1024

type ColdMailHandler struct {
	uc        *usecase.ColdMailUsecase
	uploadDir string
}

func NewColdMailHandler(uc *usecase.ColdMailUsecase) *ColdMailHandler {
	return &ColdMailHandler{uc: uc, uploadDir: os.TempDir()}
}

func (h *ColdMailHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.Form)
	app.Post("/generate", middleware.RateLimiter(5, 1*time.Minute), h.Generate)
	app.Post("/api/resume/sections", middleware.RateLimiter(20, 1*time.Minute), h.ResumeSections)
}

func (h *ColdMailHandler) Form(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, formTemplate, fiber.Map{"AppName": config.LoadAppConfig().Name})
}

func (h *ColdMailHandler) Generate(c *fiber.Ctx) error {
	wantsJSON := c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON

	req := usecase.ColdMailRequest{
		URL:            c.FormValue("url"),
		AdditionalInfo: c.FormValue("additional_info"),
	}
	if strings.TrimSpace(req.URL) == "" {
		return h.fail(c, wantsJSON, usecase.ErrMissingURL)
	}

	path, err := h.saveResume(c)
	if err != nil {
		return h.fail(c, wantsJSON, err)
	}
	defer h.removeUpload(path)
	req.ResumePath = path

	mails, err := h.uc.Generate(c.UserContext(), req)
	if err != nil {
		return h.fail(c, wantsJSON, err)
	}

	data := dto.NewGeneratedMailDTOs(mails)
	if wantsJSON {
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Message: "Success generate emails",
			Data:    data,
			Meta:    fiber.Map{"count": len(data)},
		})
	}
	return h.render(c, fiber.StatusOK, resultTemplate, fiber.Map{
		"AppName": config.LoadAppConfig().Name,
		"Mails":   data,
	})
}

func (h *ColdMailHandler) ResumeSections(c *fiber.Ctx) error {
	path, err := h.saveResume(c)
	if err != nil {
		return h.fail(c, true, err)
	}
	defer h.removeUpload(path)

	sections, err := h.uc.Sections(path)
	if err != nil {
		return h.fail(c, true, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success label resume sections",
		Data:    dto.NewResumeSectionDTOs(sections),
	})
}

// saveResume stores the uploaded résumé under a random name and returns its path.
func (h *ColdMailHandler) saveResume(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("resume")
	if err != nil {
		return "", usecase.ErrMissingResume
	}
	if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != ".pdf" {
		return "", util.NewFormError("resume must be a PDF file", map[string]string{
			"resume": fmt.Sprintf("unsupported file type %q", ext),
		})
	}
	if file.Size > maxResumeSize {
		return "", util.NewFormError("resume file size is too large (max 5MB)", map[string]string{
			"resume": fmt.Sprintf("%d bytes", file.Size),
		})
	}

	savePath := filepath.Join(h.uploadDir, uuid.NewString()+".pdf")
	if err := c.SaveFile(file, savePath); err != nil {
		return "", fmt.Errorf("cannot save resume file: %w", err)
	}
	return savePath, nil
}

func (h *ColdMailHandler) removeUpload(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to remove upload %s: %v", path, err)
	}
}

func (h *ColdMailHandler) fail(c *fiber.Ctx, wantsJSON bool, err error) error {
	code, message := errorStatus(err)
	if code >= fiber.StatusInternalServerError {
		log.Printf("Request %s %s failed: %v", c.Method(), c.Path(), err)
	}
	if wantsJSON {
		format := util.ErrorResponseFormat{Code: code, Message: message}
		var formErr *util.FormError
		if errors.As(err, &formErr) {
			format.Details = formErr.Errors
		}
		return util.ErrorResponse(c, format, err)
	}
	return h.render(c, code, resultTemplate, fiber.Map{
		"AppName": config.LoadAppConfig().Name,
		"Error":   message,
	})
}

func (h *ColdMailHandler) render(c *fiber.Ctx, code int, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	c.Type("html", "utf-8")
	return c.Status(code).Send(buf.Bytes())
}

// errorStatus maps an error to its HTTP status and the message shown to the user.
func errorStatus(err error) (int, string) {
	var formErr *util.FormError
	switch {
	case errors.As(err, &formErr):
		return fiber.StatusBadRequest, formErr.Message
	case errors.Is(err, usecase.ErrMissingURL):
		return fiber.StatusBadRequest, usecase.ErrMissingURL.Error()
	case errors.Is(err, usecase.ErrMissingResume):
		return fiber.StatusBadRequest, usecase.ErrMissingResume.Error()
	case errors.Is(err, usecase.ErrResumeNotFound):
		return fiber.StatusUnprocessableEntity, usecase.ErrResumeNotFound.Error()
	case errors.Is(err, usecase.ErrNoJobs):
		return fiber.StatusUnprocessableEntity, usecase.ErrNoJobs.Error()
	case errors.Is(err, usecase.ErrPageUnavailable):
		return fiber.StatusBadGateway, usecase.ErrPageUnavailable.Error()
	default:
		return fiber.StatusInternalServerError, "an error occurred while generating emails"
	}
}
