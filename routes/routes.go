package routes

import (
	"zaoan/board"
	"zaoan/cart"
	"zaoan/checkout"
	"zaoan/menu"
	"zaoan/orders"
	"zaoan/ratelim"
	"zaoan/receipts"
	"zaoan/reservations"

	"github.com/julienschmidt/httprouter"
)

func AddMenuRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/menu/categories", rl.Limit(menu.GetCategories))
	router.GET("/api/menu/categories/:catid/items", rl.Limit(menu.GetCategoryItems))
	router.GET("/api/menu/items/:itemid", rl.Limit(menu.GetItem))
	router.GET("/api/menu/notes", rl.Limit(menu.GetCommonNotes))
	router.GET("/api/menu/tables", rl.Limit(menu.GetTableNumbers))
}

func AddCartRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *cart.Handler) {
	router.GET("/api/cart", rl.Limit(h.GetCart))
	router.POST("/api/cart/items", rl.Limit(h.AddItem))
	router.PATCH("/api/cart/items", rl.Limit(h.UpdateQty))
	router.DELETE("/api/cart/items", rl.Limit(h.RemoveItem))
	router.DELETE("/api/cart", rl.Limit(h.ClearCart))
}

func AddCheckoutRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *checkout.Handler) {
	router.POST("/api/checkout/qr", rl.Limit(h.GenerateQR))
	router.GET("/api/checkout/qr.png", rl.Limit(h.QRImage))
}

// AddPOSRoutes wires the staging order, scan intake, submission and the
// kanban board. The staging order reuses the cart handler on its own prefix.
func AddPOSRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, staging *cart.Handler, oh *orders.Handler, sh *checkout.ScanHandler) {
	router.GET("/api/pos/order", rl.Limit(staging.GetCart))
	router.POST("/api/pos/order/items", rl.Limit(staging.AddItem))
	router.PATCH("/api/pos/order/items", rl.Limit(staging.UpdateQty))
	router.DELETE("/api/pos/order/items", rl.Limit(staging.RemoveItem))
	router.DELETE("/api/pos/order", rl.Limit(staging.ClearCart))

	router.POST("/api/pos/scan", rl.Limit(sh.Ingest))
	router.POST("/api/pos/submit", rl.Limit(oh.Submit))

	router.GET("/api/pos/board", rl.Limit(oh.Board))
	router.POST("/api/pos/orders/:orderid/advance", rl.Limit(oh.Advance))
	router.POST("/api/pos/orders/:orderid/cancel", rl.Limit(oh.Cancel))
}

func AddReceiptRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *receipts.Handler) {
	router.GET("/api/receipts/:orderid", rl.Limit(h.PrintReceipt))
}

func AddReservationRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *reservations.Handler) {
	router.POST("/api/reservations", rl.Limit(h.Create))
	router.GET("/api/reservations", rl.Limit(h.List))
}

func AddBoardRoutes(router *httprouter.Router, hub *board.Hub) {
	router.GET("/ws/board", board.ServeWS(hub))
}
