package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/smallbizdoctor/backend/internal/infra/database"
	"github.com/smallbizdoctor/backend/internal/infra/http/handlers"
	"github.com/smallbizdoctor/backend/internal/infra/http/middleware"
	"github.com/smallbizdoctor/backend/internal/infra/integration/openai"
	"github.com/smallbizdoctor/backend/internal/infra/mail"
	"github.com/smallbizdoctor/backend/internal/usecase"
)

const defaultCalendlyLink = "https://calendly.com/ryansmallbussinessdoctor/15min"

func main() {
	godotenv.Load()

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := database.NewConnection(connString)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}
	cancel()

	calendlyLink := os.Getenv("CALENDLY_LINK")
	if calendlyLink == "" {
		calendlyLink = defaultCalendlyLink
	}
	fromEmail := os.Getenv("FROM_EMAIL")
	if fromEmail == "" {
		fromEmail = "onboarding@resend.dev"
	}

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	signupRepo := database.NewClassSignupRepository(db)
	statusRepo := database.NewContactStatusRepository(db)
	promptRepo := database.NewPromptRepository(db)
	businessRepo := database.NewBusinessRepository(db)
	subscriberRepo := database.NewNewsletterSubscriberRepository(db)
	draftRepo := database.NewNewsletterDraftRepository(db)

	// 2. External adapters. A missing credential leaves the adapter nil;
	// the dependent endpoint reports "not configured" instead of crashing.
	mailSender := newMailSender(fromEmail, calendlyLink)

	var generator usecase.TextGenerator
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		generator = openai.NewClient(key)
	}

	// 3. UseCases
	updateStatusUC := usecase.NewUpdateContactStatusUseCase(statusRepo)
	dispatchUC := usecase.NewDispatchConsultationUseCase(mailSender, updateStatusUC)
	subscribeUC := usecase.NewSubscribeNewsletterUseCase(subscriberRepo)
	generateUC := usecase.NewGenerateNewsletterUseCase(generator, draftRepo)

	// 4. Handlers
	formLimiter := handlers.NewRateLimiter(10, time.Minute) // 10 req/min per IP
	submissionHandler := handlers.NewSubmissionHandler(leadRepo, formLimiter)
	classSignupHandler := handlers.NewClassSignupHandler(signupRepo, formLimiter)
	statusHandler := handlers.NewStatusHandler(updateStatusUC)
	dispatchHandler := handlers.NewDispatchHandler(dispatchUC, mailSender != nil)
	promptHandler := handlers.NewPromptHandler(promptRepo)
	businessHandler := handlers.NewBusinessHandler(businessRepo)
	newsletterHandler := handlers.NewNewsletterHandler(subscribeUC, generateUC, subscriberRepo, draftRepo, formLimiter)
	statsHandler := handlers.NewStatsHandler(leadRepo, signupRepo)
	healthHandler := handlers.NewHealthHandler(db, mailSender != nil, generator != nil)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/submit", submissionHandler.HandleSubmit)
		r.Get("/submissions", submissionHandler.HandleList)

		r.Post("/class-signup", classSignupHandler.HandleSignup)
		r.Get("/class-signups", classSignupHandler.HandleList)

		r.Post("/update-status", statusHandler.HandleUpdate)
		r.Post("/send-calendly", dispatchHandler.HandleSendCalendly)

		r.Get("/prompts", promptHandler.HandleList)
		r.Post("/prompts", promptHandler.HandleCreate)
		r.Put("/prompts", promptHandler.HandleUpdate)
		r.Delete("/prompts", promptHandler.HandleDelete)

		r.Get("/businesses", businessHandler.HandleList)
		r.Post("/businesses", businessHandler.HandleCreate)
		r.Put("/businesses", businessHandler.HandleUpdate)
		r.Delete("/businesses", businessHandler.HandleDelete)

		r.Post("/newsletter-signup", newsletterHandler.HandleSignup)
		r.Get("/newsletter-signup", newsletterHandler.HandleListSubscribers)
		r.Post("/newsletter-generate", newsletterHandler.HandleGenerate)
		r.Get("/newsletter-drafts", newsletterHandler.HandleListDrafts)
		r.Put("/newsletter-drafts", newsletterHandler.HandleUpdateDraft)

		r.Get("/stats", statsHandler.HandleStats)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	log.Printf("Server running on http://localhost:%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}

// newMailSender picks the transport: Resend when a key is present, the
// legacy SMTP relay otherwise, a logging no-op in dev mode, nil when
// nothing is configured.
func newMailSender(fromEmail, calendlyLink string) mail.Sender {
	if os.Getenv("EMAIL_DEV_MODE") == "true" {
		return mail.NewNoopSender()
	}

	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		return mail.NewResendSender(apiKey, fromEmail, calendlyLink)
	}

	if host := os.Getenv("MAIL_HOST"); host != "" {
		port := 587
		if p, err := strconv.Atoi(os.Getenv("MAIL_PORT")); err == nil {
			port = p
		}
		return mail.NewSMTPSender(host, port, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"), fromEmail, calendlyLink)
	}

	return nil
}
