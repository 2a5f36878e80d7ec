package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "gag-stock-bot/internal/common/errors"
	"gag-stock-bot/internal/common/middleware"
	"gag-stock-bot/internal/features/webhook/models"
	"gag-stock-bot/internal/features/webhook/service"
)

type WebhookHandler struct {
	processor   service.Processor
	verifyToken string
}

func NewWebhookHandler(processor service.Processor, verifyToken string) *WebhookHandler {
	return &WebhookHandler{
		processor:   processor,
		verifyToken: verifyToken,
	}
}

func (h *WebhookHandler) RegisterRoutes(router gin.IRouter) {
	wrap := middleware.HandleErrorWrapper()
	router.GET("/webhook", wrap(h.verify))
	router.POST("/webhook", wrap(h.receive))
}

// @Summary Verify webhook subscription
// @Description Echoes hub.challenge when hub.verify_token matches the configured token
// @Tags webhook
// @Produce plain
// @Param hub.mode query string false "Subscription mode"
// @Param hub.verify_token query string true "Verification token"
// @Param hub.challenge query string true "Challenge to echo"
// @Success 200 {string} string "The challenge"
// @Failure 403 {object} middleware.ErrorResponse "Token mismatch"
// @Router /webhook [get]
func (h *WebhookHandler) verify(c *gin.Context) {
	if h.verifyToken == "" || c.Query("hub.verify_token") != h.verifyToken {
		_ = c.Error(apperrors.New(apperrors.ErrCodeForbidden, "Verification token mismatch"))
		return
	}
	c.String(http.StatusOK, c.Query("hub.challenge"))
}

// @Summary Receive page events
// @Description Registers new senders, runs commands and mirrors activity to admins
// @Tags webhook
// @Accept json
// @Produce plain
// @Param input body models.Envelope true "Page event envelope"
// @Success 200 {string} string "OK"
// @Failure 400 {object} middleware.ErrorResponse "Malformed body"
// @Failure 404 {object} middleware.ErrorResponse "Not a page envelope"
// @Router /webhook [post]
func (h *WebhookHandler) receive(c *gin.Context) {
	var env models.Envelope
	if err := c.ShouldBindJSON(&env); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.ErrCodeValidation, "Invalid webhook body"))
		return
	}
	if env.Object != models.ObjectPage {
		_ = c.Error(apperrors.New(apperrors.ErrCodeNotFound, "Unsupported webhook object").
			WithDetail("object", env.Object))
		return
	}

	// the platform may hang up before dispatch finishes
	h.processor.Process(context.WithoutCancel(c.Request.Context()), &env)
	c.String(http.StatusOK, "OK")
}
