package handlers_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/raulniraj/CampusGig/internal/handlers"
)

// Without the JWT middleware chain no userId ever lands in Locals, so every
// protected handler must refuse before touching storage.

func TestProtectedHandlers_RejectWithoutSession(t *testing.T) {
	app := fiber.New()

	authH := &handlers.AuthHandler{}
	gigH := handlers.NewGigHandler(nil, nil)
	proposalH := handlers.NewProposalHandler(nil, nil)
	notifH := handlers.NewNotificationHandler(nil, nil)
	chatH := handlers.NewChatHandler(nil, nil)
	assistantH := handlers.NewAssistantHandler(nil, nil, "support@campusgig.app")
	profileH := handlers.NewProfileHandler(nil)

	app.Get("/me", authH.Me)
	app.Post("/gigs", gigH.Create)
	app.Get("/my/gigs", gigH.ListMine)
	app.Post("/gigs/:gigId/proposals", proposalH.Submit)
	app.Put("/proposals/:id", proposalH.Update)
	app.Post("/proposals/:id/accept", proposalH.Accept)
	app.Get("/my/proposals", proposalH.ListMine)
	app.Get("/notifications", notifH.List)
	app.Get("/notifications/unread-count", notifH.UnreadCount)
	app.Patch("/notifications/:id/read", notifH.MarkRead)
	app.Get("/chat/:peerId/messages", chatH.GetMessages)
	app.Post("/chat/:peerId/messages", chatH.SendMessage)
	app.Post("/assistant/improve", assistantH.ImproveProfile)
	app.Put("/profile", profileH.UpdateProfile)

	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/me"},
		{"POST", "/gigs"},
		{"GET", "/my/gigs"},
		{"POST", "/gigs/x/proposals"},
		{"PUT", "/proposals/x"},
		{"POST", "/proposals/x/accept"},
		{"GET", "/my/proposals"},
		{"GET", "/notifications"},
		{"GET", "/notifications/unread-count"},
		{"PATCH", "/notifications/x/read"},
		{"GET", "/chat/x/messages"},
		{"POST", "/chat/x/messages"},
		{"POST", "/assistant/improve"},
		{"PUT", "/profile"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}"))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != fiber.StatusUnauthorized {
				t.Errorf("status = %d, want 401", resp.StatusCode)
			}
		})
	}
}

func TestAskSupport_RequiresQuestion(t *testing.T) {
	app := fiber.New()
	assistantH := handlers.NewAssistantHandler(nil, nil, "support@campusgig.app")
	app.Post("/support/ask", assistantH.AskSupport)

	req := httptest.NewRequest("POST", "/support/ask", strings.NewReader(`{"question":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRegister_ValidationBeforeStorage(t *testing.T) {
	// all-empty input fails validation before any DB access
	app := fiber.New()
	authH := &handlers.AuthHandler{}
	app.Post("/auth/register", authH.Register)

	req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
