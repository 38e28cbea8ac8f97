package billing

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/usage"
	"resume-builder/internal/users"
)

// Handler exposes the payment boundary. The provider is opaque to this
// service; checkout hands the client a redirect target and activation
// flips the plan tier once the provider confirms.
type Handler struct {
	Users       *users.Service
	CheckoutURL string
}

// NewHandler constructs a Handler.
func NewHandler(usersSvc *users.Service, checkoutURL string) *Handler {
	return &Handler{Users: usersSvc, CheckoutURL: checkoutURL}
}

// RegisterRoutes attaches billing routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/billing/checkout", h.checkout)
	rg.POST("/billing/activate", h.activate)
}

func (h *Handler) checkout(c *gin.Context) {
	if h.CheckoutURL == "" {
		respond.Error(c, http.StatusServiceUnavailable, "billing_not_configured", "payments are not configured", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)

	u, err := url.Parse(h.CheckoutURL)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "invalid checkout url", nil)
		return
	}
	q := u.Query()
	q.Set("client_reference_id", userID)
	u.RawQuery = q.Encode()

	respond.OK(c, gin.H{"url": u.String()})
}

func (h *Handler) activate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	u, token, err := h.Users.UpgradePlan(c.Request.Context(), userID, usage.PlanPro)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to activate plan", nil)
		return
	}
	respond.OK(c, gin.H{"plan": u.Plan, "token": token})
}
