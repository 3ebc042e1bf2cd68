// Package preview serves a browser-facing invoice preview with one-shot
// auto-print, backed by the gateway client.
package preview

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cellmart/pos-client/internal/invoice"
	"github.com/cellmart/pos-client/internal/store"
)

// Server renders invoice previews and drives local reprints.
type Server struct {
	loader  *invoice.Loader
	surface invoice.Surface
	journal *store.Journal
	log     zerolog.Logger

	allowedOrigins []string
	autoPrintDelay time.Duration
}

// Option configures a Server.
type Option func(*Server)

func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) { s.allowedOrigins = origins }
}

// WithAutoPrintDelay sets the client-side settle delay before the automatic
// print dialog opens.
func WithAutoPrintDelay(d time.Duration) Option {
	return func(s *Server) { s.autoPrintDelay = d }
}

func NewServer(loader *invoice.Loader, surface invoice.Surface, journal *store.Journal, log zerolog.Logger, opts ...Option) *Server {
	s := &Server{
		loader:         loader,
		surface:        surface,
		journal:        journal,
		log:            log,
		autoPrintDelay: 300 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router creates the Gin engine and registers all routes.
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(s.loggerMiddleware())
	router.Use(s.corsMiddleware())

	router.SetHTMLTemplate(invoiceTemplate)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "pos-preview"})
	})

	router.GET("/invoice/:id", s.showInvoice)
	router.POST("/invoice/:id/print", s.printInvoice)

	return router
}

func (s *Server) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		s.log.Info().
			Str("request_id", requestID[:8]).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")

		for _, e := range c.Errors {
			s.log.Error().Str("request_id", requestID[:8]).Err(e.Err).Msg("handler error")
		}
	}
}

func (s *Server) corsMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:  s.allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Accept", "Content-Type", "X-Request-ID", "Origin"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	return cors.New(cfg)
}

func (s *Server) showInvoice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusBadRequest, "not_found.html", gin.H{"ID": c.Param("id")})
		return
	}

	res := s.loader.Load(c.Request.Context(), id)
	if res.State != invoice.StateReady {
		c.HTML(http.StatusNotFound, "not_found.html", gin.H{"ID": id})
		return
	}

	c.HTML(http.StatusOK, "invoice.html", gin.H{
		"Doc":          viewModel(res.Doc),
		"Auto":         c.Query("auto") == "1",
		"SettleMillis": s.autoPrintDelay.Milliseconds(),
	})
}

func (s *Server) printInvoice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale id"})
		return
	}

	res := s.loader.Load(c.Request.Context(), id)
	if res.State != invoice.StateReady {
		c.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
		return
	}

	printErr := s.surface.Print(c.Request.Context(), res.Doc)
	if s.journal != nil {
		if err := s.journal.Record(c.Request.Context(), id, res.Doc.InvoiceNo, s.surface.Name(), printErr); err != nil {
			s.log.Error().Err(err).Msg("journal write failed")
		}
	}
	if printErr != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": printErr.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "printed", "invoice_no": res.Doc.InvoiceNo})
}
