// Healthcare Analytics Dashboard
// Copyright 2026 gaco
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gaco/portrait-data-engineer-test

package api

import (
	"bytes"
	"crypto/rand"
	"embed"
	"encoding/base64"
	"html/template"
	"net/http"

	"github.com/gaco/portrait-data-engineer-test/internal/logging"
	"github.com/gaco/portrait-data-engineer-test/internal/reports"
)

//go:embed templates/index.html.tmpl
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html.tmpl"))

// vegaCDN serves vega, vega-lite and vega-embed to the dashboard page.
const vegaCDN = "https://cdn.jsdelivr.net"

type indexData struct {
	Title    string
	Sections []reports.Section
	Nonce    string
	CDN      string
}

// Index renders the dashboard page: a section navigation bar and a script
// that fetches the selected section and draws its panels with vega-embed.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	nonce, err := newNonce()
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to generate CSP nonce")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, indexData{
		Title:    reports.DashboardTitle,
		Sections: reports.Sections(),
		Nonce:    nonce,
		CDN:      vegaCDN,
	}); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to execute index template")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	hdr := w.Header()
	hdr.Set("Content-Type", "text/html; charset=utf-8")
	hdr.Set("Cache-Control", cacheControlNoStore)
	hdr.Set("X-Content-Type-Options", "nosniff")
	hdr.Set("Content-Security-Policy",
		"default-src 'self'; script-src 'nonce-"+nonce+"' 'unsafe-eval' "+vegaCDN+"; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'")
	_, _ = w.Write(buf.Bytes())
}

func newNonce() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
