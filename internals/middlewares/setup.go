package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "raisemyhand_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the base chain: recovery first so panics in
// anything below are caught, then logging, CORS, and the global limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
