package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PavanTalluri45/portfolio/config"
	"github.com/PavanTalluri45/portfolio/internal/analytics"
	"github.com/PavanTalluri45/portfolio/internal/contact"
	"github.com/PavanTalluri45/portfolio/internal/content"
	"github.com/PavanTalluri45/portfolio/internal/media"
	"github.com/PavanTalluri45/portfolio/internal/session"
	"github.com/PavanTalluri45/portfolio/internal/trace"
	"github.com/PavanTalluri45/portfolio/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.Server.Mode)

	site := content.Default()
	if err := site.Validate(); err != nil {
		log.Fatalf("Invalid site content: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store session.Store
	var sweepers []analytics.Sweeper
	if cfg.Session.RedisURL != "" {
		redisStore, err := session.OpenRedis(ctx, cfg.Session.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
		log.Println("[session] using Redis session store")
	} else {
		mem := session.NewMemoryStore()
		store = mem
		sweepers = append(sweepers, mem)
		log.Println("[session] REDIS_URL not set, using in-memory session store")
	}

	stats, err := analytics.Open(ctx, cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open analytics database: %v", err)
	}
	defer stats.Close()
	log.Printf("[analytics] visitor tracking enabled with hashed IP addresses (%s)", cfg.Database.Path)

	limiter := contact.NewLimiter(cfg.Contact.RatePerHour, cfg.Contact.Burst)
	sweepers = append(sweepers, limiter)

	scheduler := analytics.NewScheduler(stats, cfg.Database.Retention, sweepers...)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()
	// Records that expired while the server was down go at boot.
	go scheduler.RunCleanup()

	tp, err := trace.Setup(ctx, cfg.Tracing.Endpoint, cfg.Tracing.ServiceName)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	if tp != nil {
		log.Printf("[trace] exporting spans to %s", cfg.Tracing.Endpoint)
	}

	sender := contact.NewSMTPSender(contact.SMTPConfig{
		Host: cfg.SMTP.Host,
		Port: cfg.SMTP.Port,
		User: cfg.SMTP.User,
		Pass: cfg.SMTP.Pass,
		To:   cfg.SMTP.To,
	})
	if !sender.Configured() {
		log.Println("[contact] SMTP credentials not configured; contact form will report an error")
	}

	router, err := web.NewRouter(web.Deps{
		Config:    cfg,
		Site:      site,
		Gate:      session.NewGate(store, cfg.Session.TTL, cfg.Release()),
		Media:     media.NewResolver(os.DirFS(cfg.Site.MediaDir), cfg.Site.FallbackImage),
		Analytics: stats,
		Contact:   sender,
		Limiter:   limiter,
		Tracer:    tp.Tracer(),
	})
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}
	if !cfg.Admin.Enabled() {
		log.Println("[admin] ADMIN_USERNAME/ADMIN_PASSWORD not set; admin area disabled")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (%s)", cfg.Server.Port, cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.Printf("[trace] shutdown error: %v", err)
	}
}
