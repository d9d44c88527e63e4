package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"
	"github.com/programme-lv/scoreboard/auth"
	"github.com/programme-lv/scoreboard/feed"
	"github.com/programme-lv/scoreboard/logger"
)

// FeedSource is anything that can produce a full contest feed: a local
// directory (feed.DirSource) or an S3 prefix (s3feed.Source).
type FeedSource interface {
	LoadContest(ctx context.Context) (*feed.Contest, error)
}

// snapshot is one immutable loaded feed. Handlers grab the current
// snapshot under the read lock and build their own Rank from it, so an
// admin reload never races an in-flight request.
type snapshot struct {
	id      string
	contest *feed.Contest
}

type HttpServer struct {
	source FeedSource

	jwtKey          []byte
	adminUsername   string
	adminBcryptHash string

	mu   sync.RWMutex
	snap *snapshot

	router *chi.Mux
}

func NewHttpServer(
	source FeedSource,
	jwtKey []byte,
	adminUsername string,
	adminBcryptHash string,
) *HttpServer {
	router := chi.NewRouter()

	requestLogger := httplog.NewLogger("scoreboard", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(requestLogger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))

	server := &HttpServer{
		source:          source,
		jwtKey:          jwtKey,
		adminUsername:   adminUsername,
		adminBcryptHash: adminBcryptHash,
		router:          router,
	}

	router.Use(server.tagSnapshot)
	server.routes()

	return server
}

// tagSnapshot attaches the id of the snapshot the request is served
// from to the request's context logger, so every handler log line can
// be traced back to one loaded feed.
func (s *HttpServer) tagSnapshot(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if snap := s.currentSnapshot(); snap != nil {
			r = r.WithContext(logger.WithSnapshotID(r.Context(), snap.id))
		}
		next.ServeHTTP(w, r)
	})
}

// Reload fetches a fresh feed from the source and swaps it in as the
// current snapshot. It returns the new snapshot's id.
func (s *HttpServer) Reload(ctx context.Context) (string, error) {
	contest, err := s.source.LoadContest(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load contest feed: %w", err)
	}
	snap := &snapshot{id: uuid.New().String(), contest: contest}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	slog.Info("contest feed loaded",
		"snapshot_id", snap.id,
		"contest", contest.Contest.Name,
		"teams", len(contest.Teams),
		"submissions", len(contest.Submissions))
	return snap.id, nil
}

func (s *HttpServer) currentSnapshot() *snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, s.router)
}

// Handler exposes the router, mainly for tests.
func (s *HttpServer) Handler() http.Handler {
	return s.router
}

func (s *HttpServer) routes() {
	r := s.router
	r.Get("/contest", s.getContest)
	r.Get("/scoreboard", s.getScoreboard)
	r.Get("/problems", s.getProblems)
	r.Get("/submissions", s.listSubmissions)
	r.Post("/auth/login", s.authLogin)
	r.Post("/scoreboard/reload", s.reloadFeed)
}
