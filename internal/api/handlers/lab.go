package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/Harshitk-cp/stratcheck/internal/api/middleware"
	"github.com/Harshitk-cp/stratcheck/internal/domain"
)

type LabHandler struct {
	store domain.LabStore
}

func NewLabHandler(store domain.LabStore) *LabHandler {
	return &LabHandler{store: store}
}

type createLabRequest struct {
	Name string `json:"name"`
}

type createLabResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	APIKey string `json:"api_key"`
}

// Create registers a lab and returns its API key. The key is shown once;
// only its hash is stored.
func (h *LabHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLabRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	apiKey, err := generateAPIKey()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate API key")
		return
	}

	lab := &domain.Lab{
		Name:       req.Name,
		APIKeyHash: middleware.HashAPIKey(apiKey),
	}

	if err := h.store.Create(r.Context(), lab); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create lab")
		return
	}

	writeJSON(w, http.StatusCreated, createLabResponse{
		ID:     lab.ID.String(),
		Name:   lab.Name,
		APIKey: apiKey,
	})
}

func generateAPIKey() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "sc_" + hex.EncodeToString(b), nil
}
