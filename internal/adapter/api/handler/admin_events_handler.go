package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"mentorhub/internal/infrastructure/token"
	ws "mentorhub/internal/infrastructure/websocket"
	"mentorhub/internal/usecase"
	"mentorhub/pkg/errors"
	"mentorhub/pkg/logger"
	"mentorhub/pkg/response"
)

// AdminEventsHandler upgrades admin dashboards to a websocket stream of
// user-management events. Browsers cannot set an Authorization header on a
// websocket handshake, so the session token rides in the query string.
type AdminEventsHandler struct {
	manager  *ws.Manager
	tokens   *token.Manager
	upgrader websocket.Upgrader
}

func NewAdminEventsHandler(manager *ws.Manager, tokens *token.Manager) *AdminEventsHandler {
	return &AdminEventsHandler{
		manager: manager,
		tokens:  tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *AdminEventsHandler) Stream(c echo.Context) error {
	tokenString := c.QueryParam("token")
	if tokenString == "" {
		return response.Error(c, errors.Unauthorized("Token query parameter required", nil))
	}

	claims, err := h.tokens.Parse(tokenString)
	if err != nil {
		return response.Error(c, err)
	}
	if claims.UserType != usecase.UserTypeAdmin {
		return response.Error(c, errors.Forbidden("Admin privileges required", nil))
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("Websocket upgrade failed for %s: %v", claims.Subject, err)
		return err
	}

	client := &ws.Client{
		UserID: claims.Subject,
		Conn:   conn,
		Send:   make(chan []byte, 16),
	}
	h.manager.Register <- client

	go client.WritePump()
	go client.ReadPump(h.manager)

	return nil
}
