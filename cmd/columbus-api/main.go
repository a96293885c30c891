// README: Entry point; loads config, wires services, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"columbus/internal/ai"
	"columbus/internal/config"
	httptransport "columbus/internal/http"
	"columbus/internal/infra"
	"columbus/internal/modules/chat"
	"columbus/internal/modules/itinerary"
	"columbus/internal/modules/user"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("COLUMBUS_FIREBASE_PROJECT_ID is required")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	secrets := infra.NewCachedSecretSource(infra.EnvSecretSource{})
	llm := ai.NewGeminiClient(cfg.AI.Model, cfg.AI.SecretName, secrets)
	defer llm.Close()

	userStore := user.NewStore(dbPool)
	userSvc := user.NewService(userStore)

	itineraryStore := itinerary.NewStore(dbPool)
	itinerarySvc := itinerary.NewService(itineraryStore, userStore, llm, cfg.AI.Model)

	chatStore := chat.NewStore(redisClient, cfg.Chat.SessionTTL)
	chatSvc := chat.NewService(chatStore, itinerarySvc, llm, cfg.Chat.HistoryLimit)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Itinerary: itinerarySvc,
		Chat:      chatSvc,
		User:      userSvc,
		Verifier:  verifier,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("columbus-api listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
