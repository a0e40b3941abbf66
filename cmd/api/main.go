package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"nexar/internal/adapter/api"
	"nexar/internal/adapter/api/handler"
	apimiddleware "nexar/internal/adapter/api/middleware"
	"nexar/internal/adapter/api/router"
	"nexar/internal/adapter/repository"
	"nexar/internal/infrastructure/firebase"
	"nexar/internal/infrastructure/storage"
	"nexar/internal/infrastructure/websocket"
	"nexar/internal/usecase"
	"nexar/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	credentialsPath := ""

	// Service account from env var in production, file path locally.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		credentialsPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if credentialsPath == "" {
			credentialsPath = "./service-account.json"
		}
		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credentialsPath)
		}
		opt = option.WithCredentialsFile(credentialsPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	listingStorage, err := storage.NewCloudStorageClient(ctx, cfg.ListingImagesBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize listing image storage: %v", err)
	}
	defer listingStorage.Close()

	profileStorage, err := storage.NewCloudStorageClient(ctx, cfg.ProfileImagesBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize profile image storage: %v", err)
	}
	defer profileStorage.Close()

	profileRepo := repository.NewFirestoreProfileRepository(firestoreClient)
	listingRepo := repository.NewFirestoreListingRepository(firestoreClient)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	remediator := repository.NewFirestoreRemediator(firestoreClient)

	authClient := firebase.NewAuthClient(fbAuth, cfg.FirebaseApiKey)

	hub := websocket.NewHub()
	hub.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(profileRepo, authClient)
	profileUseCase := usecase.NewProfileUseCase(profileRepo, authClient, profileStorage, cfg.MaxUploadSize)
	listingUseCase := usecase.NewListingUseCase(listingRepo, profileRepo, listingStorage, cfg.MaxUploadSize)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, listingRepo)
	messageUseCase := usecase.NewMessageUseCase(messageRepo, listingRepo, profileRepo, hub)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, profileRepo, listingRepo)
	repairUseCase := usecase.NewRepairUseCase(profileRepo, remediator)
	adminUseCase := usecase.NewAdminUseCase(listingRepo, profileRepo)

	handler.Setup(
		authUseCase,
		profileUseCase,
		listingUseCase,
		favoriteUseCase,
		messageUseCase,
		reviewUseCase,
		repairUseCase,
		adminUseCase,
	)
	handler.SetupHealthHandler()
	handler.SetupWebSocketHandler(hub)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("10M"))

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(profileRepo)
	rateLimiter := apimiddleware.NewRateLimiter(20, time.Minute)

	router.Setup(e, authMiddleware, adminMiddleware, rateLimiter)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
