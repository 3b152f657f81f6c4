package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ayusman/poseview/internal/capture"
	"github.com/ayusman/poseview/internal/control"
	"github.com/ayusman/poseview/internal/metrics"
)

// CameraHandler exposes camera status and the switch action.
type CameraHandler struct {
	controller *control.Controller
	metrics    *metrics.Metrics
}

// NewCameraHandler creates a handler bound to the camera controller.
func NewCameraHandler(c *control.Controller, m *metrics.Metrics) *CameraHandler {
	return &CameraHandler{controller: c, metrics: m}
}

// cameraStatus is the JSON shape of GET /api/camera.
type cameraStatus struct {
	Requested string `json:"requested"`
	Granted   string `json:"granted"`
	Mirror    bool   `json:"mirror"`
	Running   bool   `json:"running"`
}

func (h *CameraHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case strings.HasSuffix(r.URL.Path, "/switch"):
		h.handleSwitch(w, r)
	default:
		h.handleStatus(w, r)
	}
}

func (h *CameraHandler) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.writeStatus(w)
}

// handleSwitch serves POST /api/camera/switch: toggle the requested
// facing and report the resulting state.
func (h *CameraHandler) handleSwitch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.controller.Switch(); err != nil {
		var acqErr *capture.AcquisitionError
		if errors.As(err, &acqErr) {
			http.Error(w, acqErr.Error(), http.StatusServiceUnavailable)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if h.metrics != nil {
		h.metrics.CameraSwitches.Inc()
	}
	h.writeStatus(w)
}

func (h *CameraHandler) writeStatus(w http.ResponseWriter) {
	status := cameraStatus{
		Requested: h.controller.Requested().String(),
		Granted:   h.controller.Facing().String(),
		Mirror:    h.controller.Mirror(),
		Running:   h.controller.IsRunning(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
