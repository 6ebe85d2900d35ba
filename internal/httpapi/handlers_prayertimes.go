package httpapi

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/masjidapp/backend/internal/prayertimes"
)

func (s *Server) handleGetPrayerTimes(w http.ResponseWriter, r *http.Request) {
	file, found, err := s.prayerTimes.Fetch(r.Context())
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	if !found {
		http.Error(w, "no prayer times uploaded", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(file)
}

// handleUpdatePrayerTimes rejects uploads whose digest does not match the
// payload before anything touches the store.
func (s *Server) handleUpdatePrayerTimes(w http.ResponseWriter, r *http.Request) {
	var req updatePrayerTimesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.PrayerTimesData) == 0 || req.Hash == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	sum := sha256.Sum256(req.PrayerTimesData)
	if hex.EncodeToString(sum[:]) != req.Hash {
		http.Error(w, "payload hash mismatch", http.StatusBadRequest)
		return
	}

	out, err := s.prayerTimes.Update(r.Context(), req.PrayerTimesData)
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	if out.Status != prayertimes.Updated {
		http.Error(w, out.Reason.String(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
