package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/drive"
)

// handleDriveAuth starts the OAuth consent flow.
func (s *Server) handleDriveAuth(w http.ResponseWriter, r *http.Request) {
	if s.drive == nil || !s.drive.Configured() {
		jsonError(w, "google drive is not configured: set GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET and GOOGLE_REDIRECT_URI", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, s.drive.AuthURL(), http.StatusFound)
}

// handleDriveCallback exchanges the authorization code for tokens.
func (s *Server) handleDriveCallback(w http.ResponseWriter, r *http.Request) {
	if s.drive == nil || !s.drive.Configured() {
		jsonError(w, "google drive is not configured", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	if errMsg := q.Get("error"); errMsg != "" {
		jsonError(w, "consent denied: "+errMsg, http.StatusBadRequest)
		return
	}
	code := q.Get("code")
	if code == "" {
		jsonError(w, "no authorization code", http.StatusBadRequest)
		return
	}

	if err := s.drive.Exchange(r.Context(), code); err != nil {
		s.log.Error("drive token exchange failed", "error", err)
		jsonError(w, "token exchange failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"connected": true})
}

func (s *Server) handleDriveStatus(w http.ResponseWriter, r *http.Request) {
	configured := s.drive != nil && s.drive.Configured()
	connected := configured && s.drive.Connected()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{
		"configured": configured,
		"connected":  connected,
	})
}

// handleDriveUpload pushes an already rendered document straight to Drive.
func (s *Server) handleDriveUpload(w http.ResponseWriter, r *http.Request) {
	if s.drive == nil || !s.drive.Configured() {
		jsonError(w, "google drive is not configured", http.StatusInternalServerError)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes+1024*1024)
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxBodyBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxBodyBytes {
		jsonError(w, "file exceeds max size", http.StatusRequestEntityTooLarge)
		return
	}

	fileName := r.FormValue("fileName")
	if fileName == "" {
		fileName = "Acta_SAS.docx"
	}
	folderID := r.FormValue("folderId")

	res, err := s.drive.Upload(r.Context(), fileName, folderID, data)
	if err != nil {
		if errors.Is(err, drive.ErrNotConnected) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{
				"error":     "not connected to google drive",
				"needsAuth": true,
			})
			return
		}
		s.log.Error("drive upload failed", "error", err)
		jsonError(w, "drive upload failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"success":     true,
		"fileId":      res.FileID,
		"fileName":    res.FileName,
		"webViewLink": res.WebViewLink,
	})
}
