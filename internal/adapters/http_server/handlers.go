package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"kfar_marketplace/internal/app"
	"kfar_marketplace/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	O *app.OnboardingService
}

type errorBody struct {
	Error string `json:"error"`
}

type onboardingResponse struct {
	Success  bool   `json:"success"`
	VendorID string `json:"vendorId"`
	Message  string `json:"message"`
}

func (s *Server) MountHandlers(h *Handlers, onboardingLimiter func(http.Handler) http.Handler) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/api/vendors", h.listVendors)
	s.mux.Get("/api/vendor/{vendorId}", h.getStore)
	s.mux.With(onboardingLimiter).Post("/api/vendor/onboarding", h.onboard)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorBody{Error: msg}); err != nil {
		log.Error().Err(err).Msg("write JSON error response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func (h *Handlers) getStore(w http.ResponseWriter, r *http.Request) {
	vendorID := chi.URLParam(r, "vendorId")
	resp, err := h.Q.GetStore(r.Context(), vendorID)
	if err != nil {
		if errors.Is(err, domain.ErrVendorNotFound) {
			writeError(w, http.StatusNotFound, "Vendor not found")
			return
		}
		log.Error().Err(err).Str("vendor_id", vendorID).Msg("store resolve failed")
		writeError(w, http.StatusInternalServerError, "Failed to load vendor store")
		return
	}

	etag, body := calcETagAndBody(resp)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getStore body")
	}
}

func (h *Handlers) listVendors(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 100 {
			writeError(w, http.StatusBadRequest, "limit must be an integer between 1 and 100")
			return
		}
		limit = l
	}

	page, err := h.Q.ListVendors(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("vendor listing failed")
		writeError(w, http.StatusInternalServerError, "Failed to list vendors")
		return
	}

	etag, body := calcETagAndBody(page)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listVendors body")
	}
}

func (h *Handlers) onboard(w http.ResponseWriter, r *http.Request) {
	var sub domain.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	ack, err := h.O.Submit(r.Context(), sub)
	if err != nil {
		var fe *domain.FieldError
		if errors.As(err, &fe) {
			writeError(w, http.StatusBadRequest, "Missing required field: "+fe.Field)
			return
		}
		log.Error().Err(err).Msg("onboarding failed")
		writeError(w, http.StatusInternalServerError, "Failed to process onboarding")
		return
	}

	writeJSON(w, http.StatusOK, onboardingResponse{
		Success:  true,
		VendorID: ack.VendorID,
		Message:  ack.Message,
	})
}
