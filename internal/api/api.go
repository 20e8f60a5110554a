package api

import (
	"net/http"

	"referral-server/internal/apierrors"
	campaignsHandler "referral-server/internal/campaigns/handler"
	codesHandler "referral-server/internal/codes/handler"
	referralsHandler "referral-server/internal/referrals/handler"
	settlementHandler "referral-server/internal/settlement/handler"
	"referral-server/internal/store"
	triggersHandler "referral-server/internal/triggers/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router            *gin.RouterGroup
	codesHandler      codesHandler.Handler
	referralsHandler  referralsHandler.Handler
	settlementHandler settlementHandler.Handler
	campaignsHandler  campaignsHandler.Handler
	triggersHandler   triggersHandler.Handler
}

func New(router *gin.RouterGroup,
	codesH codesHandler.Handler,
	referralsH referralsHandler.Handler,
	settlementH settlementHandler.Handler,
	campaignsH campaignsHandler.Handler,
	triggersH triggersHandler.Handler) API {
	return API{
		router:            router,
		codesHandler:      codesH,
		referralsHandler:  referralsH,
		settlementHandler: settlementH,
		campaignsHandler:  campaignsH,
		triggersHandler:   triggersH,
	}
}

// ActorMiddleware lifts the gateway-authenticated actor headers into the gin
// context. Authentication itself happens upstream; an absent actor id only
// matters on routes that need one.
func ActorMiddleware(c *gin.Context) {
	if actorID := c.GetHeader("X-Actor-ID"); actorID != "" {
		c.Set("Actor-ID", actorID)
	}
	if actorRole := c.GetHeader("X-Actor-Role"); actorRole != "" {
		c.Set("Actor-Role", actorRole)
	}
	c.Next()
}

// AdminMiddleware rejects requests whose actor role is not admin.
func AdminMiddleware(c *gin.Context) {
	role, _ := c.Get("Actor-Role")
	if roleStr, _ := role.(string); roleStr != store.RoleAdmin {
		apierrors.Forbidden(c, "ADMIN_ONLY", "admin role required")
		c.Abort()
		return
	}
	c.Next()
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api", ActorMiddleware)
	{
		codesGroup := apiGroup.Group("/codes")
		codesGroup.POST("", a.codesHandler.HandleIssueCode)
		codesGroup.GET("", a.codesHandler.HandleListCodes)
		codesGroup.GET("/:code", a.codesHandler.HandleResolveCode)
		codesGroup.DELETE("/:id", a.codesHandler.HandleDeactivateCode)

		referralsGroup := apiGroup.Group("/referrals")
		referralsGroup.POST("", a.referralsHandler.HandleCreateReferral)
		referralsGroup.GET("", a.referralsHandler.HandleListReferrals)
		referralsGroup.GET("/:id", a.referralsHandler.HandleGetReferral)

		rewardsGroup := apiGroup.Group("/rewards")
		rewardsGroup.GET("", a.settlementHandler.HandleListRewards)
		rewardsGroup.GET("/summary", a.settlementHandler.HandleRewardSummary)
		rewardsGroup.POST("/:id/claim", a.settlementHandler.HandleClaimReward)

		campaignsGroup := apiGroup.Group("/campaigns")
		campaignsGroup.GET("", a.campaignsHandler.HandleListCampaigns)
		campaignsGroup.GET("/:id", a.campaignsHandler.HandleGetCampaign)

		internalGroup := apiGroup.Group("/internal")
		internalGroup.POST("/triggers", a.triggersHandler.HandleTrigger)

		adminGroup := apiGroup.Group("/admin", AdminMiddleware)
		adminGroup.POST("/campaigns", a.campaignsHandler.HandleCreateCampaign)
		adminGroup.POST("/campaigns/:id/activate", a.campaignsHandler.HandleActivateCampaign)
		adminGroup.POST("/campaigns/:id/deactivate", a.campaignsHandler.HandleDeactivateCampaign)
		adminGroup.POST("/referrals/:id/cancel", a.referralsHandler.HandleCancelReferral)
		adminGroup.POST("/rewards/campaign", a.settlementHandler.HandleSettleCampaign)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
