// internals/features/realtime/controller/ws_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classModel "raisemyhand_backend/internals/features/classes/model"
	"raisemyhand_backend/internals/features/realtime/hub"
)

type WSController struct {
	DB  *gorm.DB
	Hub *hub.Hub
}

func NewWSController(db *gorm.DB, h *hub.Hub) *WSController {
	return &WSController{DB: db, Hub: h}
}

// UpgradeGuard rejects plain HTTP requests to the socket endpoint and
// verifies the meeting exists before the upgrade handshake. Ended
// meetings still accept subscribers; the audience may be waiting for a
// restart.
func (h *WSController) UpgradeGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		code := c.Params("meeting_code")
		var meeting classModel.MeetingModel
		if err := h.DB.Select("meeting_id").
			Where("meeting_code = ?", code).
			First(&meeting).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Meeting not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		return c.Next()
	}
}

// HandleMeetingSocket subscribes the connection to its meeting audience
// and holds it open. Inbound frames are read only to detect disconnects;
// the wire is write-only from the server's perspective.
func (h *WSController) HandleMeetingSocket(conn *websocket.Conn) {
	code := conn.Params("meeting_code")

	client := h.Hub.Subscribe(code, conn)
	defer h.Hub.Unsubscribe(client)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
