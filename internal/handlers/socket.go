package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/googollee/go-socket.io/engineio"
	"github.com/googollee/go-socket.io/engineio/transport"
	"github.com/googollee/go-socket.io/engineio/transport/polling"
	"github.com/googollee/go-socket.io/engineio/transport/websocket"
	"github.com/polyglotlabs/linguachat-backend/internal/services"
	"github.com/polyglotlabs/linguachat-backend/pkg/logger"
	"github.com/polyglotlabs/linguachat-backend/pkg/utils"
)

var SocketServer *socketio.Server

// roomBroadcaster publishes persisted messages to a chat's room. It is the
// best-effort phase of the relay: whoever is joined to the room right now
// gets the push, nobody else.
type roomBroadcaster struct {
	server *socketio.Server
}

func (b *roomBroadcaster) BroadcastMessage(chatID string, payload services.MessagePayload) {
	b.server.BroadcastToRoom("/", chatRoom(chatID), "receive_message", payload)
}

func chatRoom(chatID string) string {
	return "chat:" + chatID
}

type sendMessageEvent struct {
	ChatID string `json:"chatId"`
	services.InboundMessage
}

func InitSocketServer() *socketio.Server {
	var broadcaster services.Broadcaster

	server := socketio.NewServer(&engineio.Options{
		Transports: []transport.Transport{
			&websocket.Transport{
				CheckOrigin: func(r *http.Request) bool { return true },
			},
			&polling.Transport{
				CheckOrigin: func(r *http.Request) bool { return true },
			},
		},
	})

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		url := s.URL()

		// Token comes as a query param; there is no reliable header access
		// during the websocket handshake.
		token := url.Query().Get("token")
		if token == "" {
			token = url.Query().Get("auth_token")
		}
		if token == "" {
			logger.Warn().Str("socket_id", s.ID()).Msg("Socket connection rejected: no token")
			return fmt.Errorf("authentication required")
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			logger.Warn().Str("socket_id", s.ID()).Msg("Socket connection rejected: invalid token")
			return fmt.Errorf("invalid token")
		}

		// Store userId in the socket context for O(1) lookup on every event
		s.SetContext(claims.UserID)
		s.Join(claims.UserID)

		logger.Debug().Str("socket_id", s.ID()).Str("user_id", claims.UserID).Msg("Socket authenticated")
		return nil
	})

	server.OnEvent("/", "join_chat", func(s socketio.Conn, chatId string) {
		// Anyone authenticated may subscribe to a chat topic; membership only
		// gates sending and history.
		s.Join(chatRoom(chatId))
	})

	server.OnEvent("/", "leave_chat", func(s socketio.Conn, chatId string) {
		s.Leave(chatRoom(chatId))
	})

	server.OnEvent("/", "send_message", func(s socketio.Conn, event sendMessageEvent) {
		senderID, _ := s.Context().(string)
		if senderID == "" {
			return
		}

		// Phase 1: durable persist (or idempotent lookup of a replay).
		payload, err := services.SendMessage(senderID, event.ChatID, event.InboundMessage)
		if err != nil {
			s.Emit("send_error", map[string]interface{}{
				"chatId": event.ChatID,
				"error":  err.Error(),
			})
			return
		}

		// Phase 2: best-effort fan-out to current subscribers.
		broadcaster.BroadcastMessage(event.ChatID, payload)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		// Rooms are cleaned up by the server; nothing else to release.
		logger.Debug().Str("reason", reason).Msg("Socket closed")
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		logger.Error().Err(e).Msg("Socket error")
	})

	broadcaster = &roomBroadcaster{server: server}

	go server.Serve()
	SocketServer = server
	return server
}

// SocketHandler wraps the Socket.io server for Gin.
func SocketHandler(server *socketio.Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		server.ServeHTTP(c.Writer, c.Request)
	}
}
