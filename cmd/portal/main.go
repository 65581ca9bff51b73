// cmd/portal/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"grievance-desk/internal/common/auth"
	"grievance-desk/internal/common/aws"
	"grievance-desk/internal/common/cache"
	"grievance-desk/internal/common/config"
	"grievance-desk/internal/common/logger"
	"grievance-desk/internal/common/observability"
	"grievance-desk/internal/email"
	"grievance-desk/internal/export"
	"grievance-desk/internal/models"
	"grievance-desk/internal/qualify"
	"grievance-desk/internal/services"
	"grievance-desk/internal/wizard"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

// portal holds the wired service facades behind the local HTTP surface.
type portal struct {
	cfg        *config.Config
	auth       *services.AuthService
	staff      *services.StaffService
	complaints *services.ComplaintService
	analytics  *services.AnalyticsService
	requests   *services.RequestService
	email      *email.Service
	zapLog     *zap.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting grievance portal...",
		zap.String("environment", cfg.App.Environment),
		zap.String("version", cfg.App.Version),
	)

	obs := observability.New("grievance-portal")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Redis session cache with retry ---
	var redisClient *cache.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			return err
		}
		return redisClient.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redisClient.Close()
	zapLog.Info("Redis connected successfully")

	sessionStore := services.NewSessionStore(
		redisClient,
		time.Duration(cfg.Auth.SessionTTLMinutes)*time.Minute,
	)

	// --- Backend transport and service facades ---
	client := services.NewClient(services.ClientConfig{
		BaseURL:        cfg.API.BaseURL,
		RequestTimeout: time.Duration(cfg.API.RequestTimeout) * time.Millisecond,
		MaxRetries:     cfg.API.MaxRetries,
		RetryBaseDelay: time.Duration(cfg.API.RetryBaseDelay) * time.Millisecond,
	}, nil, log)

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)

	staffService, err := services.NewStaffService(client, log)
	if err != nil {
		zapLog.Fatal("failed to create staff service", zap.Error(err))
	}

	// --- Email delivery provider ---
	var sender email.Sender
	switch cfg.Email.Provider {
	case "ses":
		sesClient, err := aws.NewSESClient(ctx, cfg.Email.AWS.Region)
		if err != nil {
			zapLog.Fatal("failed to create SES client", zap.Error(err))
		}
		sender = email.NewSESSender(sesClient)
	default:
		sender = &email.SMTPSender{
			Host:     cfg.Email.SMTP.Host,
			Port:     cfg.Email.SMTP.Port,
			Username: cfg.Email.SMTP.Username,
			Password: cfg.Email.SMTP.Password,
		}
	}
	emailService := email.NewService(sender, cfg.Email.FromEmail, log)
	zapLog.Info("Email provider initialized", zap.String("provider", cfg.Email.Provider))

	p := &portal{
		cfg:        cfg,
		auth:       services.NewAuthService(client, verifier, sessionStore, log),
		staff:      staffService,
		complaints: services.NewComplaintService(client, log),
		analytics:  services.NewAnalyticsService(client, log),
		requests:   services.NewRequestService(client, log),
		email:      emailService,
		zapLog:     zapLog,
	}

	// --- Application flow wiring ---
	p.wireApplicationFlow(ctx, log)

	// --- Local HTTP surface ---
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := redisClient.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "ready",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	mux.HandleFunc("/export/complaints", p.handleExportComplaints)
	mux.HandleFunc("/export/summary", p.handleExportSummary)
	mux.HandleFunc("/requests", p.handleRequests)
	if cfg.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}

	go func() {
		zapLog.Info("Portal server listening", zap.String("address", cfg.Metrics.Address))
		if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
			zapLog.Error("Portal server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping portal...")
	zapLog.Info("Grievance portal stopped gracefully")
}

// wireApplicationFlow connects wizard, qualification engine, backend, and
// notifications: submission opens the test, a pass is persisted and the
// applicant is emailed.
func (p *portal) wireApplicationFlow(ctx context.Context, log logger.Logger) (*wizard.Controller, *qualify.Engine) {
	engine := qualify.NewEngine(p.cfg.Application.PassThresholdPct, log)

	rules := wizard.Rules{
		GraduationYearMin: p.cfg.Application.GraduationYearMin,
		GraduationYearMax: p.cfg.Application.GraduationYearMax,
	}
	controller := wizard.NewController(
		rules,
		p.staff,
		time.Duration(p.cfg.Application.SubmitTimeoutSecs)*time.Second,
		log,
	)

	controller.OnAccepted(func(requestID string) {
		if err := engine.Begin(requestID); err != nil {
			p.zapLog.Error("failed to open qualification test",
				zap.String("requestId", requestID),
				zap.Error(err),
			)
		}
	})

	engine.OnPassed(func(completion qualify.Completion) {
		callCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		if err := p.staff.CompleteTest(callCtx, completion); err != nil {
			p.zapLog.Error("failed to record test completion",
				zap.String("requestId", completion.RequestID),
				zap.Error(err),
			)
			return
		}

		applicant := controller.Draft().Personal
		if applicant.Email == "" {
			return
		}
		_, err := p.email.Send(callCtx, applicant.Email, "test-passed", map[string]interface{}{
			"fullName":  applicant.FullName,
			"requestId": completion.RequestID,
			"score":     completion.Score,
		})
		if err != nil {
			p.zapLog.Error("failed to send test-passed email", zap.Error(err))
		}
	})

	return controller, engine
}

// restoreSession resolves the bearer token to a cached session, or writes the
// failure response and returns nil.
func (p *portal) restoreSession(w http.ResponseWriter, r *http.Request) *models.Session {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" || token == r.Header.Get("Authorization") {
		http.Error(w, "missing bearer token", http.StatusUnauthorized)
		return nil
	}

	session, err := p.auth.Restore(r.Context(), token)
	if err != nil {
		http.Error(w, "session invalid or expired", http.StatusUnauthorized)
		return nil
	}
	return session
}

func (p *portal) handleExportComplaints(w http.ResponseWriter, r *http.Request) {
	session := p.restoreSession(w, r)
	if session == nil {
		return
	}
	if !auth.IsStaff(session.Role) {
		http.Error(w, "staff role required", http.StatusForbidden)
		return
	}

	complaints, err := p.complaints.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	format := r.URL.Query().Get("format")
	switch format {
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="complaints.xlsx"`)
		err = export.WriteComplaintsXLSX(w, complaints)
	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="complaints.pdf"`)
		err = export.WriteComplaintsPDF(w, p.cfg.Export.PDFTitle, complaints)
	default:
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="complaints.csv"`)
		err = export.WriteComplaintsCSV(w, complaints)
	}
	if err != nil {
		p.zapLog.Error("complaint export failed", zap.String("format", format), zap.Error(err))
	}
}

func (p *portal) handleExportSummary(w http.ResponseWriter, r *http.Request) {
	session := p.restoreSession(w, r)
	if session == nil {
		return
	}
	if !auth.IsStaff(session.Role) {
		http.Error(w, "staff role required", http.StatusForbidden)
		return
	}

	summary, err := p.analytics.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="summary.xlsx"`)
	if err := export.WriteSummaryXLSX(w, summary); err != nil {
		p.zapLog.Error("summary export failed", zap.Error(err))
	}
}

func (p *portal) handleRequests(w http.ResponseWriter, r *http.Request) {
	session := p.restoreSession(w, r)
	if session == nil {
		return
	}
	if !auth.IsStaff(session.Role) {
		http.Error(w, "staff role required", http.StatusForbidden)
		return
	}

	requests, err := p.requests.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(requests)
}
