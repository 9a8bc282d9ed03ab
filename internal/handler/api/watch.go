package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	resdto "agrispray/internal/handler/dto/response"
	"agrispray/internal/handler/httperr"
	"agrispray/internal/handler/middleware"
	"agrispray/internal/pkg/errs"
	"agrispray/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const watchWriteTimeout = 10 * time.Second

type WatchHandler struct {
	requestQueries queries.RequestQueries
	watcher        queries.RequestWatcher
	upgrader       websocket.Upgrader
}

func NewWatchHandler(requestQueries queries.RequestQueries, watcher queries.RequestWatcher) *WatchHandler {
	return &WatchHandler{
		requestQueries: requestQueries,
		watcher:        watcher,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser origins are already filtered by the CORS layer.
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}
}

// @Summary Watch spray request
// @Description Websocket stream of live updates to one request; the first frame is the current state
// @Tags requests
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 101
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests/{id}/watch [get]
func (h *WatchHandler) Watch(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	// Authorize and snapshot before upgrading so failures stay plain HTTP.
	current, err := h.requestQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err.Error())
		return
	}
	defer conn.Close()

	// Change callbacks arrive on the publisher's goroutine; funnel them into
	// channels so only this goroutine writes to the connection.
	events := make(chan *queries.RequestView, 16)
	watchErrs := make(chan error, 1)

	unsubscribe := h.watcher.WatchRequest(id, func(view *queries.RequestView) {
		select {
		case events <- view:
		default:
			slog.Warn("dropping watch update for slow consumer", "request_id", id)
		}
	}, func(err error) {
		select {
		case watchErrs <- err:
		default:
		}
	})
	defer unsubscribe()

	if err := h.writeView(conn, current); err != nil {
		return
	}

	// Read pump: we never expect client frames, but reading is the only way
	// to notice the peer going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case view := <-events:
			if err := h.writeView(conn, view); err != nil {
				return
			}
		case err := <-watchErrs:
			slog.Warn("request watch failed", "request_id", id, "error", err.Error())
			msg := websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "watch failed")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(watchWriteTimeout))
			return
		}
	}
}

func (h *WatchHandler) writeView(conn *websocket.Conn, view *queries.RequestView) error {
	_ = conn.SetWriteDeadline(time.Now().Add(watchWriteTimeout))
	return conn.WriteJSON(resdto.FromRequestView(view))
}
