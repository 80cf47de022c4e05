package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"soscrise/internal/http/middleware"
)

const (
	detailGuideNotFound  = "Guia não encontrado"
	detailInvalidGuideID = "ID de guia inválido"
)

// errorPayload is the error body returned to clients.
type errorPayload struct {
	Detail string `json:"detail"`
}

// writeJSON sends body as UTF-8 JSON with the given status.
func writeJSON(c *fiber.Ctx, status int, body any) error {
	return c.Status(status).JSON(body, fiber.MIMEApplicationJSONCharsetUTF8)
}

// writeError writes {"detail": ...} without leaking internal errors.
func writeError(c *fiber.Ctx, status int, detail string) error {
	return writeJSON(c, status, errorPayload{Detail: detail})
}

// internalError logs err with the request id and answers with a generic 500.
func internalError(c *fiber.Ctx, log *zap.Logger, resource string, err error) error {
	log.Error("request_failed",
		zap.String("request_id", middleware.RequestIDFromCtx(c)),
		zap.String("resource", resource),
		zap.Error(err),
	)
	return writeError(c, fiber.StatusInternalServerError, utils.StatusMessage(fiber.StatusInternalServerError))
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		if status >= fiber.StatusInternalServerError {
			log.Error("unhandled_error",
				zap.String("request_id", middleware.RequestIDFromCtx(c)),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		return writeError(c, status, utils.StatusMessage(status))
	}
}
