package site

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/dgallion1/folio/internal/session"
)

const (
	writeWait       = 10 * time.Second
	maxMessageBytes = 64 << 10
)

// handlePageSocket runs one live page session: client messages drive the
// session's tracker and copy state, and everything the session emits is
// written back as JSON.
func (s *Server) handlePageSocket(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/"
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.cfg.Server.AllowedOrigins,
	})
	if err != nil {
		s.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	conn.SetReadLimit(maxMessageBytes)

	sess, err := s.sessions.Open(path)
	if err != nil {
		if errors.Is(err, session.ErrFull) {
			conn.Close(websocket.StatusTryAgainLater, "too many sessions")
			return
		}
		conn.Close(websocket.StatusInternalError, "session unavailable")
		return
	}
	defer s.sessions.Remove(sess.ID)
	log := s.log.With("session_id", sess.ID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go s.writeLoop(ctx, cancel, conn, sess)

	for {
		var msg session.ClientMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure &&
				status != websocket.StatusGoingAway &&
				ctx.Err() == nil {
				log.Debug("websocket read ended", "error", err)
			}
			break
		}
		if err := sess.Handle(msg); err != nil {
			log.Warn("bad client message", "type", msg.Type, "error", err)
		}
	}
	conn.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) writeLoop(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, sess *session.Session) {
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case <-sess.Done():
			conn.Close(websocket.StatusGoingAway, "session closed")
			return
		case msg := <-sess.Outbox():
			writeCtx, writeCancel := context.WithTimeout(ctx, writeWait)
			err := wsjson.Write(writeCtx, conn, msg)
			writeCancel()
			if err != nil {
				return
			}
		}
	}
}
