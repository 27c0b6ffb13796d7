package cli

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpadapter "github.com/echoenvoy/sudoku-solver/internal/adapters/http"
	"github.com/echoenvoy/sudoku-solver/internal/generator"
	"github.com/echoenvoy/sudoku-solver/internal/infrastructure/storage"
	"github.com/echoenvoy/sudoku-solver/internal/solver"
	"github.com/echoenvoy/sudoku-solver/internal/usecase"
	"github.com/echoenvoy/sudoku-solver/internal/validator"
)

var (
	serveAddr     string
	servePersist  string
	serveLogLevel string
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		RunE:  runServe,
	}

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&servePersist, "persist-path", "./data", "Save directory for puzzles")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "debug|info|warn|error")

	rootCmd.AddCommand(serveCmd)
}

// requestLogger logs method, path, status, bytes, and duration for every request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	lvl := slog.LevelInfo
	switch strings.ToLower(serveLogLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	_ = os.MkdirAll(servePersist, 0o755)

	// Wire providers → use cases → HTTP adapter
	s := solver.NewBacktracker()
	g := generator.NewUniqueGenerator(s)
	v := validator.New()
	st := storage.NewFS(servePersist)
	uc := usecase.NewService(s, g, v, st)
	h := httpadapter.New(uc)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(requestLogger(logger), gin.Recovery())
	h.Register(engine)

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", serveAddr, "persist", servePersist)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		return err
	}
	return nil
}
