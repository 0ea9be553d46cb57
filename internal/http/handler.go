package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"activities-service/internal/model"
	"activities-service/internal/service"
)

// IndexPath — страница, на которую перенаправляется корень сервиса.
const IndexPath = "/static/index.html"

// ActivityService описывает операции бизнес-слоя, нужные обработчикам.
type ActivityService interface {
	ListActivities(ctx context.Context) (model.Catalog, error)
	Signup(ctx context.Context, activity, email string) (string, error)
	Unregister(ctx context.Context, activity, email string) (service.UnregisterResult, error)
}

// Options задаёт необязательные параметры роутера.
type Options struct {
	// StaticDir — каталог фронтенда, раздаётся под /static/. Пусто — раздача выключена.
	StaticDir      string
	AllowedOrigins []string
}

type Handler struct {
	Activities ActivityService
	Log        *slog.Logger

	opts     Options
	validate *validator.Validate
}

func NewHandler(activities ActivityService, log *slog.Logger, opts Options) *Handler {
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	return &Handler{
		Activities: activities,
		Log:        log,
		opts:       opts,
		validate:   NewValidator(),
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.Log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/", h.handleRoot)
	r.Get("/health", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.handleActivitiesList)
		r.Post("/{activity_name}/signup", h.handleSignup)
		r.Delete("/{activity_name}/participants", h.handleUnregister)
	})

	if h.opts.StaticDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(h.opts.StaticDir)))
		r.Handle("/static/*", fs)
	}

	return r
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr := service.AsAppError(err)

	level := slog.LevelWarn
	if appErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.Log.Log(context.Background(), level, "handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	h.writeJSON(w, appErr.Status, errorResponse{Detail: appErr.Message})
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, IndexPath, http.StatusTemporaryRedirect)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
