// Package chi exposes the search pipeline over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/veritia/trustsearch/internal/config"
	"github.com/veritia/trustsearch/internal/domain"
	"github.com/veritia/trustsearch/internal/domain/search/filter"
	"github.com/veritia/trustsearch/internal/domain/search/request"
	"github.com/veritia/trustsearch/internal/logger"
	"github.com/veritia/trustsearch/internal/metrics"
	healthuc "github.com/veritia/trustsearch/internal/usecase/health"
	optionsuc "github.com/veritia/trustsearch/internal/usecase/options"
	searchuc "github.com/veritia/trustsearch/internal/usecase/search"
	suggestuc "github.com/veritia/trustsearch/internal/usecase/suggest"
)

// Server is the HTTP API for search, suggestions, and filter options.
type Server struct {
	search  *searchuc.Service
	suggest *suggestuc.Service
	options *optionsuc.Service
	health  *healthuc.Service
	cfg     config.SearchConfig
	logger  *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	suggest *suggestuc.Service,
	options *optionsuc.Service,
	health *healthuc.Service,
	cfg config.SearchConfig,
	logger *zap.Logger,
) *Server {
	return &Server{
		search:  search,
		suggest: suggest,
		options: options,
		health:  health,
		cfg:     cfg,
		logger:  logger,
	}
}

// Router builds the fully wired route tree. The API endpoints are GET-only:
// any other verb gets a METHOD_NOT_ALLOWED envelope, not a silent ignore.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(withRequestID(s.logger))
	r.Use(metrics.Middleware())
	r.Use(recoverer)
	r.MethodNotAllowed(s.handleMethodNotAllowed)

	r.Get("/api/search", s.handleSearch)
	r.Get("/api/search/suggestions", s.handleSuggestions)
	r.Get("/api/filters/options", s.handleFilterOptions)
	r.Get("/health", s.handleHealth)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		promhttp.Handler().ServeHTTP(w, req)
	})

	return r
}

// handleSearch handles GET /api/search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	log := logger.FromContext(r.Context())

	q := params.Get("q")
	if strings.TrimSpace(q) == "" {
		writeError(w, r, http.StatusBadRequest, codeMissingQuery, "Search query is required")
		return
	}

	page, ok := intParam(params.Get("page"), request.DefaultPage)
	if !ok {
		writeError(w, r, http.StatusBadRequest, codeInvalidParams, "Invalid page or limit parameters")
		return
	}
	limit, ok := intParam(params.Get("limit"), s.cfg.DefaultPageSize)
	if !ok {
		writeError(w, r, http.StatusBadRequest, codeInvalidParams, "Invalid page or limit parameters")
		return
	}

	// The combined filters blob is strict: bad JSON fails the request.
	// Itemized parameters are lenient: each bad one is dropped with a
	// warning and the rest of the request proceeds.
	var set filter.Set
	if blob := params.Get("filters"); blob != "" {
		var err error
		set, err = filter.DecodeCombined(blob, s.cfg.MaxAuthorityScore)
		switch {
		case errors.Is(err, filter.ErrMalformed):
			writeError(w, r, http.StatusBadRequest, codeInvalidFilters, "Invalid filters format")
			return
		case errors.Is(err, domain.ErrValidation):
			writeError(w, r, http.StatusBadRequest, codeValidationError, err.Error())
			return
		case err != nil:
			s.internalError(w, r, err)
			return
		}
	} else {
		var warnings []string
		var err error
		set, warnings, err = filter.Decode(params, s.cfg.MaxAuthorityScore)
		for _, warning := range warnings {
			log.Warn("invalid filter parameter", zap.String("detail", warning))
		}
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, r, http.StatusBadRequest, codeValidationError, err.Error())
			return
		}
		if err != nil {
			s.internalError(w, r, err)
			return
		}
	}

	req, err := request.New(q, page, limit, set, request.Limits{
		MaxQueryLength:  s.cfg.MaxQueryLength,
		DefaultPageSize: s.cfg.DefaultPageSize,
		MaxPageSize:     s.cfg.MaxPageSize,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingQuery):
			writeError(w, r, http.StatusBadRequest, codeMissingQuery, "Search query is required")
		case errors.Is(err, domain.ErrInvalidParameters):
			writeError(w, r, http.StatusBadRequest, codeInvalidParams, "Invalid page or limit parameters")
		default:
			s.internalError(w, r, err)
		}
		return
	}

	resultPage, err := s.search.Search(r.Context(), &req)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToWire(&resultPage))
}

// handleSuggestions handles GET /api/search/suggestions.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := params.Get("q")

	limit := 0 // service default
	if raw := params.Get("limit"); raw != "" {
		// An explicit zero is rejected, not treated as "use the default".
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, codeInvalidLimit, "Limit must be between 1 and 20")
			return
		}
		limit = n
	}

	suggestions, err := s.suggest.Suggest(r.Context(), q, limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLimit) {
			writeError(w, r, http.StatusBadRequest, codeInvalidLimit, "Limit must be between 1 and 20")
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, suggestionsResponse{
		Suggestions: suggestions,
		Query:       q,
		Count:       len(suggestions),
	})
}

// handleFilterOptions handles GET /api/filters/options.
func (s *Server) handleFilterOptions(w http.ResponseWriter, r *http.Request) {
	snapshot := s.options.Options(r.Context())
	writeJSON(w, http.StatusOK, optionsToWire(&snapshot))
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthToWire(report))
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, codeMethodNotAllowed,
		fmt.Sprintf("%s method not supported for this endpoint", r.Method))
}

// internalError logs the cause and reports a generic envelope. Internal
// detail never reaches the caller.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Error("internal error", zap.Error(err))
	writeError(w, r, http.StatusInternalServerError, codeInternalError,
		"An internal server error occurred")
}

// intParam parses an optional pagination parameter. Only an absent value
// yields the default: an explicit zero or negative value fails, it is not
// "unset". Upper bounds are checked in request.New.
func intParam(raw string, def int) (int, bool) {
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		RequestID: requestID(r.Context()),
	}})
}
