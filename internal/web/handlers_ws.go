package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"anthropic-dashboard/internal/bindings"
)

// handleWS runs the bindings channel for one frontend connection: on
// connect every output is pushed, then each applied input triggers a full
// recompute and re-push. One goroutine per connection; the session is not
// shared.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	session := bindings.NewSession(time.Now().UTC())
	logger := s.logger.With("session", session.ID)
	logger.Info("bindings session opened", "remote", r.RemoteAddr)

	if err := s.pushOutputs(r, conn, session); err != nil {
		logger.Warn("initial push failed", "error", err)
		return
	}

	for {
		var msg bindings.ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("bindings session read failed", "error", err)
			} else {
				logger.Info("bindings session closed")
			}
			return
		}
		if msg.Type != bindings.TypeInput {
			continue
		}

		if err := session.Apply(msg.Name, msg.Value); err != nil {
			logger.Warn("input rejected", "input", msg.Name, "error", err)
			if !errors.Is(err, bindings.ErrUnknownInput) {
				_ = conn.WriteJSON(bindings.NewToast(bindings.ToastError, err.Error()))
			}
			continue
		}
		logger.Debug("input applied", "input", msg.Name)

		if msg.Name == bindings.InputRefresh {
			_ = conn.WriteJSON(bindings.NewToast(bindings.ToastInfo, "Refreshing dashboard data..."))
		}

		if err := s.pushOutputs(r, conn, session); err != nil {
			logger.Warn("push failed", "error", err)
			return
		}
	}
}

// pushOutputs recomputes the snapshot for the session's inputs and writes
// every output update frame.
func (s *Server) pushOutputs(r *http.Request, conn *websocket.Conn, session *bindings.Session) error {
	snap := s.svc.Snapshot(r.Context(), session.Inputs())
	for _, update := range bindings.BuildOutputs(snap) {
		if err := conn.WriteJSON(update); err != nil {
			return err
		}
	}
	return nil
}
