package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// getUserUUID resolves the caller's id from Locals, where the JWT middleware
// chain put it. No value means no session: every protected handler calls this
// before touching storage. The middleware stores a string; the other shapes
// show up in tests that set Locals directly.
func getUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	switch v := c.Locals("userId").(type) {
	case uuid.UUID:
		return v, nil
	case string:
		return uuid.Parse(v)
	case []byte:
		return uuid.ParseBytes(v)
	case nil:
		return uuid.Nil, fmt.Errorf("no session")
	default:
		return uuid.Nil, fmt.Errorf("unexpected userId type %T", v)
	}
}
