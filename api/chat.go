package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"fitapi/logger"
	"fitapi/metrics"
	"fitapi/models"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())
	history, err := s.chat.History(r.Context(), id.Subject, 0)
	if err != nil {
		logger.Error("fetch chat history failed", err, logger.FieldKV("user", id.Subject))
		writeFail(w, http.StatusInternalServerError, "Could not fetch chat history")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"results": len(history),
		"data":    map[string]interface{}{"messages": history},
	})
}

func (s *Server) handleClearChat(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())
	removed, err := s.chat.Clear(r.Context(), id.Subject)
	if err != nil {
		logger.Error("clear chat history failed", err, logger.FieldKV("user", id.Subject))
		writeFail(w, http.StatusInternalServerError, "Could not clear chat history")
		return
	}
	writeSuccess(w, http.StatusOK, map[string]interface{}{"removed": removed})
}

// handleChatWS upgrades to a websocket. Auth uses a token query parameter
// because browsers cannot set headers on websocket handshakes.
func (s *Server) handleChatWS(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeFail(w, http.StatusUnauthorized, "token not provided")
		return
	}
	id, err := s.verifier.Verify(r.Context(), token)
	if err != nil {
		logger.Error("chat token verification failed", err)
		writeFail(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("websocket upgrade failed", err)
		return
	}
	s.hub.Add(conn, id.Subject)
	metrics.IncWSConnections()

	go func() {
		defer func() {
			s.hub.Remove(conn)
			metrics.DecWSConnections()
		}()
		for {
			var msg models.ChatMessage
			if err := conn.ReadJSON(&msg); err != nil {
				logger.Error("chat read error", err, logger.FieldKV("remote_addr", conn.RemoteAddr().String()))
				return
			}
			// The socket owner is the author regardless of what the payload claims.
			msg.UserID = id.Subject
			msg.Role = "user"
			if msg.MessageID == "" {
				msg.MessageID = uuid.NewString()
			}
			if msg.Timestamp.IsZero() {
				msg.Timestamp = time.Now().UTC()
			}
			if len(msg.Content) == 0 || len(msg.Content) > s.chatMaxLen {
				continue
			}

			if err := s.producer.PublishChat(context.Background(), msg); err != nil {
				logger.Error("chat publish failed", err, logger.FieldKV("message_id", msg.MessageID))
				// Fallback: deliver and persist directly so the client isn't blocked by Kafka
				s.deliverChat(msg)
				metrics.IncChatIngested()
				continue
			}
			metrics.IncChatIngested()
		}
	}()
}

// broadcastLoop consumes the Kafka-fed channel, fans messages out and persists them.
func (s *Server) broadcastLoop() {
	logger.Info("starting chat broadcast loop")
	for m := range s.broadcastC {
		s.deliverChat(m)
		if m.Role == "user" && s.advisor != nil {
			go s.coachReply(m)
		}
	}
}

// deliverChat broadcasts to the owner's connections and persists the message,
// routing persist failures to the DLQ.
func (s *Server) deliverChat(m models.ChatMessage) {
	s.hub.BroadcastTo(m.UserID, m)
	metrics.IncChatBroadcast()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.chat.Insert(ctx, m); err != nil {
		logger.Error("persist chat message failed", err, logger.FieldKV("message_id", m.MessageID))
		if s.producer != nil {
			_ = s.producer.PublishDLQ(ctx, m, "mongo_persist_failure")
		}
	}
}

// coachReply asks the advisor for an answer and feeds it back through the pipeline.
func (s *Server) coachReply(m models.ChatMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	text, err := s.advisor.CoachReply(ctx, m.Content)
	if err != nil {
		logger.Warn("coach reply degraded", err, logger.FieldKV("message_id", m.MessageID))
	}
	reply := models.ChatMessage{
		MessageID: uuid.NewString(),
		UserID:    m.UserID,
		Role:      "assistant",
		Content:   text,
		Timestamp: time.Now().UTC(),
	}
	if err := s.producer.PublishChat(ctx, reply); err != nil {
		logger.Error("coach reply publish failed", err, logger.FieldKV("message_id", reply.MessageID))
		s.deliverChat(reply)
	}
}
