// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/logroute/internal/category"
	"github.com/tomtom215/logroute/internal/logging"
	"github.com/tomtom215/logroute/internal/models"
	"github.com/tomtom215/logroute/internal/provider"
)

// Loggers lists the live loggers of every provider, optionally filtered by a
// category pattern.
//
// GET /api/v1/loggers[?pattern=p]
func (h *Handler) Loggers(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := LoggersRequest{Pattern: r.URL.Query().Get("pattern")}
	if !validateRequest(rw, &req) {
		return
	}

	infos := make([]provider.LoggerInfo, 0)
	for _, p := range h.factory.Providers() {
		for _, info := range p.Loggers() {
			if req.Pattern != "" && !category.Match(req.Pattern, info.Category).Matched() {
				continue
			}
			infos = append(infos, info)
		}
	}
	rw.List(infos, len(infos))
}

// Logs returns the newest entries retained for a category by the memory
// provider, oldest first.
//
// GET /api/v1/logs/{category}[?count=K]
func (h *Handler) Logs(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.memory == nil {
		rw.ServiceUnavailable("Memory sink is disabled")
		return
	}

	name, err := url.PathUnescape(chi.URLParam(r, "category"))
	if err != nil {
		rw.BadRequest("Invalid category")
		return
	}
	count, err := parseIntParam(r, "count", h.api.DefaultCount)
	if err != nil {
		rw.BadRequest("count must be an integer")
		return
	}

	req := LogsRequest{Category: name, Count: count}
	if !validateRequest(rw, &req) {
		return
	}
	if req.Count > h.api.MaxCount {
		req.Count = h.api.MaxCount
	}

	entries, ok := h.memory.ReadRecent(req.Category, req.Count)
	if !ok {
		logging.Ctx(r.Context()).Debug().Str("category", req.Category).Msg("Recent entries requested for unknown category")
		rw.NotFound("No memory logger registered for category " + req.Category)
		return
	}
	if entries == nil {
		entries = []models.LogEntry{}
	}
	rw.List(entries, len(entries))
}

// ResolutionView is how one provider resolves a category.
type ResolutionView struct {
	Provider     string `json:"provider"`
	Accepted     bool   `json:"accepted"`
	Name         string `json:"name,omitempty"`
	Match        string `json:"match,omitempty"`
	Pattern      string `json:"pattern,omitempty"`
	Aliased      bool   `json:"aliased"`
	AliasMatch   string `json:"alias_match,omitempty"`
	AliasPattern string `json:"alias_pattern,omitempty"`
}

func newResolutionView(providerName string, res category.Resolution) ResolutionView {
	v := ResolutionView{
		Provider:     providerName,
		Accepted:     res.Accepted,
		Name:         res.Name,
		Pattern:      res.Pattern,
		Aliased:      res.Aliased,
		AliasPattern: res.AliasPattern,
	}
	if res.Kind.Matched() {
		v.Match = res.Kind.String()
	}
	if res.AliasKind.Matched() {
		v.AliasMatch = res.AliasKind.String()
	}
	return v
}

// Resolve reports, per provider, whether a category would be accepted and
// under which name, without creating a logger.
//
// GET /api/v1/resolve/{category}
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	name, err := url.PathUnescape(chi.URLParam(r, "category"))
	if err != nil {
		rw.BadRequest("Invalid category")
		return
	}
	req := ResolveRequest{Category: name}
	if !validateRequest(rw, &req) {
		return
	}

	providers := h.factory.Providers()
	views := make([]ResolutionView, 0, len(providers))
	for _, p := range providers {
		views = append(views, newResolutionView(p.Name(), p.Resolve(req.Category)))
	}
	rw.List(views, len(views))
}
