package http

import (
	"encoding/json"
	"net/http"

	"github.com/vncsmyrnk/verifybot/internal/core/ports"
)

type PollHandler struct {
	service ports.PollReader
}

func NewPollHandler(service ports.PollReader) *PollHandler {
	return &PollHandler{
		service: service,
	}
}

// GetPoll godoc
// @Summary      Current poll state
// @Description  Returns the accepted vote count, the poll capacity and whether the poll is closed.
// @Tags         poll
// @Produce      json
// @Success      200
// @Router       /api/poll [get]
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	snapshot := h.service.Snapshot()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
