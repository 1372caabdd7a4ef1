package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/phyten/contrastcheck/internal/announce"
	"github.com/phyten/contrastcheck/internal/checker"
	"github.com/phyten/contrastcheck/internal/config"
	"github.com/phyten/contrastcheck/internal/logger"
)

const (
	maxMessageBytes = 4096
	writeWait       = 5 * time.Second
)

// Origin checking is left to the gorilla default: same host only.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// checkMessage is one live edit sent by the page.
type checkMessage struct {
	Background         string   `json:"background"`
	FallbackBackground string   `json:"fallback_background"`
	Text               string   `json:"text"`
	FallbackText       string   `json:"fallback_text"`
	LargeText          *bool    `json:"large_text"`
	FontSize           *float64 `json:"font_size"`
	Lang               string   `json:"lang"`
}

type frame struct {
	Type    string           `json:"type"`
	Outcome *checker.Outcome `json:"outcome,omitempty"`
	Text    string           `json:"text,omitempty"`
	Message string           `json:"message,omitempty"`
}

// session owns one websocket. gorilla connections allow a single concurrent
// writer, so every write goes through writeMu.
type session struct {
	conn       *websocket.Conn
	writeMu    sync.Mutex
	dispatcher *announce.Dispatcher
	log        *logger.Logger
}

func (s *session) send(f frame) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(f)
}

func (s *Server) handleWS(c *gin.Context) {
	log := requestLogger(c, s.log)
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageBytes)

	sess := &session{conn: conn, log: log}
	sess.dispatcher = announce.NewDispatcher(
		announce.Func(func(_ context.Context, text string) error {
			return sess.send(frame{Type: "announce", Text: text})
		}),
		announce.WithLogger(log),
		announce.WithMetrics(s.metrics),
	)
	log.Debug("websocket session opened")
	s.serveSession(c.Request.Context(), sess)
	log.Debug("websocket session closed")
}

func (s *Server) serveSession(ctx context.Context, sess *session) {
	for {
		messageType, data, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				sess.log.WithError(err).Debug("websocket read failed")
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		var msg checkMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			if sess.send(frame{Type: "error", Message: "invalid message: " + err.Error()}) != nil {
				return
			}
			continue
		}
		if err := config.ValidateFontSize(msg.FontSize); err != nil {
			if sess.send(frame{Type: "error", Message: err.Error()}) != nil {
				return
			}
			continue
		}
		out := s.checkerFor(msg.Lang).Evaluate(checker.Input{
			Background:         msg.Background,
			FallbackBackground: msg.FallbackBackground,
			Text:               msg.Text,
			FallbackText:       msg.FallbackText,
			Size:               checker.SizeContext{IsLargeText: msg.LargeText, FontSizePx: msg.FontSize},
		})
		if err := sess.send(frame{Type: "outcome", Outcome: &out}); err != nil {
			sess.log.WithError(err).Debug("websocket write failed")
			return
		}
		sess.dispatcher.MaybeAnnounce(ctx, out, announce.Pair{Background: msg.Background, Text: msg.Text})
	}
}
