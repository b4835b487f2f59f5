package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"

	"github.com/Nehalakshmi23/carrer-campus/internal/models"
	"github.com/Nehalakshmi23/carrer-campus/internal/services"
)

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// HandleChat handles POST /chat. The body carries the previously returned
// analysis report plus a free-text question; the report is read leniently
// with gjson so clients can send it back in either raw or flattened form.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	body := c.Body()
	if !gjson.ValidBytes(body) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	analysis := gjson.GetBytes(body, "analysis")
	question := gjson.GetBytes(body, "question").String()

	answer, err := h.chatService.Respond(analysis, question)
	if err != nil {
		if errors.Is(err, models.ErrChatContextMissing) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "No analysis report provided. Run an analysis first, then ask about it.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to answer question",
		})
	}

	return c.JSON(models.ChatResponse{Answer: answer})
}
