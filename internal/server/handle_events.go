package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"nhooyr.io/websocket"

	"github.com/playperu/worldtour/internal/journey"
)

const pingInterval = 30 * time.Second

// currentEvent describes the journey as it is now, sent first on every
// new stream so clients need not poll before the next change.
func currentEvent(v journey.View) []byte {
	data, _ := json.Marshal(journey.Event{Type: "snapshot", Phase: v.Phase, Round: v.Round, Generating: v.Generating})
	return data
}

func handleEvents(logger *slog.Logger, engine *journey.Engine, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := journeyID(r)
		view, err := engine.View(r.Context(), id)
		if err != nil {
			writeJourneyError(w, logger, err, nil)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, http.StatusInternalServerError, "streaming not supported")
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		ch := broker.Subscribe(id)
		defer broker.Unsubscribe(id, ch)

		fmt.Fprintf(w, "event: journey\ndata: %s\n\n", currentEvent(view))
		flusher.Flush()

		ping := time.NewTicker(pingInterval)
		defer ping.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case data := <-ch:
				fmt.Fprintf(w, "event: journey\ndata: %s\n\n", data)
				flusher.Flush()
			case <-ping.C:
				fmt.Fprintf(w, ": ping\n\n")
				flusher.Flush()
			}
		}
	}
}

// handleEventsWS streams the same events as handleEvents over a
// WebSocket. Messages from the client are ignored.
func handleEventsWS(logger *slog.Logger, engine *journey.Engine, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := journeyID(r)
		view, err := engine.View(r.Context(), id)
		if err != nil {
			writeJourneyError(w, logger, err, nil)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Error("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		ch := broker.Subscribe(id)
		defer broker.Unsubscribe(id, ch)

		ctx := conn.CloseRead(r.Context())
		if err := writeWS(ctx, conn, currentEvent(view)); err != nil {
			logger.Debug("websocket write failed", "error", err)
			return
		}

		ping := time.NewTicker(pingInterval)
		defer ping.Stop()

		for {
			select {
			case <-ctx.Done():
				conn.Close(websocket.StatusNormalClosure, "")
				return
			case data := <-ch:
				if err := writeWS(ctx, conn, data); err != nil {
					logger.Debug("websocket write failed", "error", err)
					return
				}
			case <-ping.C:
				if err := conn.Ping(ctx); err != nil {
					logger.Debug("websocket ping failed", "error", err)
					return
				}
			}
		}
	}
}

func writeWS(ctx context.Context, conn *websocket.Conn, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, data)
}
