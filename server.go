package main

import (
	"blogfeed/config"
	"blogfeed/handlers"
	"blogfeed/storage"
	"blogfeed/storage/in_memory"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

const requestIdHeader = "X-Request-Id"

func CreateServer(cfg config.ServerConfig) *http.Server {
	return CreateServerWithStorage(cfg, in_memory.CreateInMemoryStorage())
}

func CreateServerWithStorage(cfg config.ServerConfig, storage storage.Storage) *http.Server {
	r := mux.NewRouter()
	r.Use(requestId)

	handler := &handlers.HTTPHandler{Storage: storage}

	r.HandleFunc("/maintenance/ping", handler.HealthCheck).Methods("GET")
	r.HandleFunc("/", handler.HandleGetPosts).Methods("GET")

	corsOptions := []gorillahandlers.CORSOption{
		gorillahandlers.AllowedOrigins(cfg.AllowedOrigins),
		gorillahandlers.AllowedMethods([]string{http.MethodGet}),
	}
	if len(cfg.AllowedOrigins) == 0 {
		// an empty list means "any origin" to the CORS middleware
		corsOptions = append(corsOptions, gorillahandlers.AllowedOriginValidator(func(string) bool { return false }))
	}
	cors := gorillahandlers.CORS(corsOptions...)

	return &http.Server{
		Handler:      withAccessLog(cors(r)),
		Addr:         "0.0.0.0:" + cfg.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
}

func requestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIdHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIdHeader, id)
		next.ServeHTTP(w, r)
	})
}

func withAccessLog(h http.Handler) http.Handler {
	recovered := gorillahandlers.RecoveryHandler(gorillahandlers.PrintRecoveryStack(true))(h)
	return gorillahandlers.CombinedLoggingHandler(os.Stdout, recovered)
}
