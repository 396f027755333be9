package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	api "techsnap/internal/api"
	"techsnap/internal/domain"
	"techsnap/internal/metrics"
	"techsnap/internal/ports"
)

// Pinger reports store liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server implements the generated StrictServerInterface.
type Server struct {
	scanner ports.Scanner
	results ports.Results
	db      Pinger
	metrics *metrics.Metrics
	log     logrus.FieldLogger
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(scanner ports.Scanner, results ports.Results, db Pinger, m *metrics.Metrics, log logrus.FieldLogger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{scanner: scanner, results: results, db: db, metrics: m, log: log}
}

// Routes returns a chi.Router mounting the generated handlers and /metrics.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(1 << 16))

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, api.ErrorResponse{Error: "Method not allowed"})
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, api.ErrorResponse{Error: "Not found"})
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, _ error) {
			writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		},
		ResponseErrorHandlerFunc: s.writeError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		},
	})
	return r
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	if s.db != nil {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := s.db.Ping(ctx); err != nil {
			s.log.WithError(err).Warn("health check: store unreachable")
			return api.GetHealthz503JSONResponse{Status: "unavailable"}, nil
		}
	}
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

func (s *Server) PostScan(ctx context.Context, req api.PostScanRequestObject) (api.PostScanResponseObject, error) {
	if err := s.scanner.Enqueue(ctx, req.Body.Domain); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return api.PostScan400JSONResponse{Error: ve.Error()}, nil
		}
		return nil, err
	}
	return api.PostScan200JSONResponse{Status: api.Queued}, nil
}

func (s *Server) GetTechs(ctx context.Context, _ api.GetTechsRequestObject) (api.GetTechsResponseObject, error) {
	snap, err := s.results.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return api.GetTechs200JSONResponse(api.FromSnapshot(snap)), nil
}

func (s *Server) GetStats(ctx context.Context, _ api.GetStatsRequestObject) (api.GetStatsResponseObject, error) {
	stats, err := s.results.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return api.GetStats200JSONResponse(api.FromStats(stats)), nil
}

func (s *Server) ListWebsites(ctx context.Context, req api.ListWebsitesRequestObject) (api.ListWebsitesResponseObject, error) {
	f := domain.WebsiteFilter{}
	if p := req.Params.Page; p != nil {
		f.Page = *p
		if f.Page == 0 {
			return api.ListWebsites400JSONResponse{Error: "page must be positive"}, nil
		}
	}
	if pp := req.Params.PerPage; pp != nil {
		f.PerPage = *pp
		if f.PerPage == 0 {
			return api.ListWebsites400JSONResponse{Error: "per_page must be positive"}, nil
		}
	}
	if req.Params.Tech != nil {
		f.Technologies = *req.Params.Tech
	}
	page, err := s.results.Websites(ctx, f)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return api.ListWebsites400JSONResponse{Error: ve.Error()}, nil
		}
		return nil, err
	}
	return api.ListWebsites200JSONResponse(api.FromWebsitePage(page)), nil
}

func (s *Server) GetLatestWebsites(ctx context.Context, req api.GetLatestWebsitesRequestObject) (api.GetLatestWebsitesResponseObject, error) {
	limit := 0
	if l := req.Params.Limit; l != nil {
		limit = *l
		if limit == 0 {
			return api.GetLatestWebsites400JSONResponse{Error: "limit must be positive"}, nil
		}
	}
	sites, err := s.results.Latest(ctx, limit)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return api.GetLatestWebsites400JSONResponse{Error: ve.Error()}, nil
		}
		return nil, err
	}
	return api.GetLatestWebsites200JSONResponse(api.FromWebsites(sites)), nil
}

func (s *Server) GetWebsite(ctx context.Context, req api.GetWebsiteRequestObject) (api.GetWebsiteResponseObject, error) {
	detail, err := s.results.Website(ctx, req.Domain)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return api.GetWebsite404JSONResponse{Error: "Not found"}, nil
		}
		return nil, err
	}
	return api.GetWebsite200JSONResponse(api.FromWebsite(detail)), nil
}

// writeError handles errors the strict handlers return. Storage details stay in the log.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: ve.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, api.ErrorResponse{Error: "Not found"})
	default:
		s.log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "db error"})
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func requestLogger(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"duration":   time.Since(start).String(),
				"request_id": middleware.GetReqID(r.Context()),
			}).Debug("http request")
		})
	}
}
