// Package httpapi exposes the progress cache and badge board as a JSON API
// for UI clients.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/abhisek/fika/internal/badges"
	"github.com/abhisek/fika/internal/logger"
	"github.com/abhisek/fika/internal/progress"
)

// Deps are the services behind the API.
type Deps struct {
	Cache      *progress.Cache
	Reconciler *progress.Reconciler
	Badges     *badges.Synchronizer
	Log        *logger.Logger
	Clock      func() time.Time
	Version    string
}

// Server handles API requests.
type Server struct {
	cache      *progress.Cache
	reconciler *progress.Reconciler
	badges     *badges.Synchronizer
	log        *logger.Logger
	clock      func() time.Time
	version    string
	validate   *validator.Validate
}

// NewServer creates a Server from deps.
func NewServer(deps Deps) *Server {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Server{
		cache:      deps.Cache,
		reconciler: deps.Reconciler,
		badges:     deps.Badges,
		log:        log,
		clock:      clock,
		version:    deps.Version,
		validate:   validator.New(),
	}
}

// Router returns the API routes with default middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: s.version})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/progress", s.getProgress)
		r.Post("/progress/xp", s.addXP)
		r.Post("/progress/streak", s.incrementStreak)
		r.Post("/topics/{topicID}/complete", s.completeTopic)
		r.Get("/words/due", s.dueWords)
		r.Post("/words/{word}/attempts", s.recordWord)
		r.Put("/session", s.signIn)
		r.Delete("/session", s.signOut)
		r.Get("/badges", s.getBadges)
	})
	return r
}

func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	code := strings.ToLower(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// decode reads a JSON body into dst and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			writeError(w, http.StatusBadRequest, validationMessage(verrs[0]))
			return false
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func validationMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "gte":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	default:
		return field + " is invalid"
	}
}
