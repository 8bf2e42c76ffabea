package server

import (
	"encoding/json"
	"net/http"
	"strings"
)

const maxBodyBytes = 1 << 16

type approvalRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type approvalResponse struct {
	Sent bool `json:"sent"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// approvalHandler answers 200 with {"sent": bool} for every well-formed
// request. Delivery failures are not HTTP errors.
func approvalHandler(n Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req approvalRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err := dec.Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
			return
		}

		req.Email = strings.TrimSpace(req.Email)
		if req.Email == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email is required"})
			return
		}

		sent := n.SendApprovalEmail(r.Context(), req.Email, req.Name)
		writeJSON(w, http.StatusOK, approvalResponse{Sent: sent})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
