package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"

	"github.com/raulniraj/CampusGig/internal/config"
	"github.com/raulniraj/CampusGig/internal/db"
	"github.com/raulniraj/CampusGig/internal/handlers"
	"github.com/raulniraj/CampusGig/internal/middleware"
	"github.com/raulniraj/CampusGig/internal/models"
	"github.com/raulniraj/CampusGig/internal/realtime"
	"github.com/raulniraj/CampusGig/internal/services/assist"
	"github.com/raulniraj/CampusGig/internal/services/gigflow"
	"github.com/raulniraj/CampusGig/internal/services/notify"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Gig{},
		&models.Proposal{},
		&models.Notification{},
		&models.ChatMessage{},
		&models.KnowledgeEntry{},
	); err != nil {
		log.Fatal(err)
	}

	rdb := realtime.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Redis not reachable:", err)
	}

	store := realtime.NewStore(gdb)
	hub := realtime.NewHub(store.Snapshot)
	go hub.Run()

	events := realtime.NewEvents(hub, rdb)
	go events.RunBridge(context.Background())

	dispatcher := notify.NewDispatcher(gdb)
	flow := gigflow.NewService(gdb, dispatcher, events)
	assistSvc := assist.NewAssistService(cfg.AITextURL, cfg.AITextKey)

	authH := &handlers.AuthHandler{
		DB:        gdb,
		JWTSecret: cfg.JWTSecret,
		Expires:   cfg.JWTExpiresMin,
	}
	googleH := &handlers.GoogleOAuthHandler{
		DB:              gdb,
		JWTSecret:       cfg.JWTSecret,
		Expires:         cfg.JWTExpiresMin,
		GoogleClientID:  cfg.GoogleClientID,
		GoogleSecret:    cfg.GoogleSecret,
		GoogleRedirect:  cfg.GoogleRedirect,
		FrontendBaseURL: cfg.FrontendBaseURL,
	}
	profileH := handlers.NewProfileHandler(gdb)
	gigH := handlers.NewGigHandler(gdb, flow)
	proposalH := handlers.NewProposalHandler(gdb, flow)
	notifH := handlers.NewNotificationHandler(gdb, dispatcher)
	chatH := handlers.NewChatHandler(gdb, events)
	assistantH := handlers.NewAssistantHandler(gdb, assistSvc, cfg.SupportEmail)
	wsH := handlers.NewWSHandler(hub, cfg.JWTSecret)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendBaseURL,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Length",
		AllowCredentials: true,
	}))

	app.Options("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	api := app.Group("/api")

	// public
	api.Post("/auth/register", authH.Register)
	api.Post("/auth/login", authH.Login)
	api.Post("/auth/logout", authH.Logout)
	api.Get("/auth/google/start", googleH.GoogleStart)
	api.Get("/auth/google/callback", googleH.GoogleCallback)
	api.Get("/gigs", gigH.ListPublic)
	api.Post("/support/ask", assistantH.AskSupport)

	// protected (JWT cookie)
	protected := api.Group("/",
		middleware.JWTFromCookie(cfg.JWTSecret),
		middleware.AttachJWTLocals(),
	)

	protected.Get("/me", authH.Me)
	protected.Post("/auth/role", authH.ChooseRole)
	protected.Put("/profile", profileH.UpdateProfile)
	protected.Post("/assistant/improve", assistantH.ImproveProfile)

	// role-gated: a signed-in user without a role is redirected to role
	// selection by the frontend on the 403 these return
	protected.Get("/gigs/:id",
		middleware.RequireRoles("student", "client"),
		gigH.GetDetail,
	)
	protected.Get("/students/:id",
		middleware.RequireRoles("student", "client"),
		profileH.GetStudent,
	)

	// client only
	protected.Post("/gigs",
		middleware.RequireRoles("client"),
		gigH.Create,
	)
	protected.Put("/gigs/:id",
		middleware.RequireRoles("client"),
		gigH.Update,
	)
	protected.Get("/my/gigs",
		middleware.RequireRoles("client"),
		gigH.ListMine,
	)
	protected.Post("/proposals/:id/accept",
		middleware.RequireRoles("client"),
		proposalH.Accept,
	)

	// student only
	protected.Post("/gigs/:gigId/proposals",
		middleware.RequireRoles("student"),
		proposalH.Submit,
	)
	protected.Put("/proposals/:id",
		middleware.RequireRoles("student"),
		proposalH.Update,
	)
	protected.Get("/my/proposals",
		middleware.RequireRoles("student"),
		proposalH.ListMine,
	)

	// notifications
	protected.Get("/notifications", notifH.List)
	protected.Get("/notifications/unread-count", notifH.UnreadCount)
	protected.Patch("/notifications/:id/read", notifH.MarkRead)

	// chat
	protected.Get("/chat/:peerId/messages", chatH.GetMessages)
	protected.Post("/chat/:peerId/messages", chatH.SendMessage)

	// WebSocket endpoint (token via query param)
	app.Get("/ws", websocket.New(wsH.Serve))

	log.Fatal(app.Listen(":" + cfg.AppPort))
}
