package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ayusman/poseview/internal/view"
)

// streamInterval paces the MJPEG stream at ~30 FPS.
const streamInterval = 33 * time.Millisecond

// StreamHandler serves the composited overlay feed as MJPEG.
type StreamHandler struct {
	feed *view.Feed
}

// NewStreamHandler creates a new StreamHandler over the render feed.
func NewStreamHandler(feed *view.Feed) *StreamHandler {
	return &StreamHandler{feed: feed}
}

// ServeHTTP streams MJPEG frames to connected clients.
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ticker := time.NewTicker(streamInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}

		data := h.feed.JPEG()
		if len(data) == 0 {
			// Nothing rendered yet
			continue
		}

		fmt.Fprintf(w, "--frame\r\n")
		fmt.Fprintf(w, "Content-Type: image/jpeg\r\n")
		fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(data))
		w.Write(data)
		fmt.Fprintf(w, "\r\n")

		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
	}
}
