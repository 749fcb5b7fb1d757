package http

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/logger"

	"github.com/mind-engage/mindengage-rounds/internal/journal"
)

type roundOut struct {
	journal.Entry
	Age string `json:"age"`
}

// GET /admin/rounds?limit=50
func ListRoundsHandler(j journal.Journal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseIntDefault(r.URL.Query().Get("limit"), 50)
		if limit == 0 || limit > 500 {
			limit = 500
		}
		entries, err := j.Recent(r.Context(), limit)
		if err != nil {
			logger.Errorf("journal recent: %v", err)
			http.Error(w, "journal unavailable", http.StatusInternalServerError)
			return
		}
		now := time.Now()
		out := make([]roundOut, 0, len(entries))
		for _, e := range entries {
			out = append(out, roundOut{Entry: e, Age: humanize.RelTime(e.CreatedAt, now, "ago", "from now")})
		}
		respondJSON(w, http.StatusOK, map[string]any{"rounds": out})
	}
}
