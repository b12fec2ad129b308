// internals/features/realtime/route/ws_route.go
package route

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	wsCtrl "raisemyhand_backend/internals/features/realtime/controller"
	"raisemyhand_backend/internals/features/realtime/hub"
)

func RealtimeRoutes(app *fiber.App, db *gorm.DB, h *hub.Hub) {
	ctl := wsCtrl.NewWSController(db, h)

	app.Get("/ws/:meeting_code", ctl.UpgradeGuard(), websocket.New(ctl.HandleMeetingSocket))
}
