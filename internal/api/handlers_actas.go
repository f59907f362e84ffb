package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/acta"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/compose"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/render"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// decodeRequest reads and validates the generation input.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (acta.Request, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req acta.Request
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return acta.Request{}, false
	}
	return req, true
}

// handleDocx renders an acta synchronously and streams it back as a
// download. The document is rendered fully in memory first: a render
// failure yields a JSON error, never a truncated file.
func (s *Server) handleDocx(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	tree := compose.Compose(req)
	data, err := render.DOCX(tree, render.DefaultStyle())
	if err != nil {
		s.log.Error("docx render failed", "error", err)
		jsonError(w, "render failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", docxMIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", compose.FileName(req)))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.Write(data)
}

// handlePreview renders the HTML preview of the same document tree.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	tree := compose.Compose(req)
	doc := render.HTML(tree, render.DefaultStyle())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(doc))
}
