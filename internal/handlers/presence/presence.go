package presence

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GlebRadaev/valorhood/internal/domain"
	"github.com/GlebRadaev/valorhood/internal/handlers/respond"
	"github.com/GlebRadaev/valorhood/internal/presence"
	"github.com/GlebRadaev/valorhood/pkg/auth"
	"github.com/GlebRadaev/valorhood/pkg/utils"
)

type Users interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

type PresenceHandler struct {
	hub      *presence.Hub
	users    Users
	upgrader websocket.Upgrader
}

func New(hub *presence.Hub, users Users) *PresenceHandler {
	return &PresenceHandler{
		hub:   hub,
		users: users,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The handshake is authenticated by token, not by cookie.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Connect godoc
//
//	@Summary		Join the live map
//	@Description	Upgrade to a websocket. The server sends a playersUpdate snapshot, accepts updatePosition events and broadcasts playersUpdate on every change. Browsers pass the token as the access_token query parameter.
//	@Tags			Presence
//	@Security		BearerAuth
//	@Param			access_token	query	string	false	"JWT for clients that can't set headers"
//	@Success		101	"Switching protocols"
//	@Failure		400	{object}	utils.Response	"Not a websocket handshake"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Router			/api/presence [get]
func (h *PresenceHandler) Connect(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.users.GetUser(r.Context(), userID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Debug("presence handshake failed", zap.String("user_id", user.ID), zap.Error(err))
		return
	}
	if err := presence.NewClient(h.hub, conn, user.ID, user.DisplayName).Run(); err != nil {
		zap.L().Info("presence client refused", zap.String("user_id", user.ID), zap.Error(err))
	}
}
