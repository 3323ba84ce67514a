// router.go
package router

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"

	"cogscreen-go/internal/config"
	"cogscreen-go/internal/handlers"
	"cogscreen-go/internal/models"
	sessionpkg "cogscreen-go/internal/session"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Try again later."})
}

func Setup(log *zap.Logger, bank *models.QuestionBank, manager *sessionpkg.Manager) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	store := cookie.NewStore([]byte(config.Conf.Server.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	})
	router.Use(sessions.Sessions("cogscreen_session", store))

	// --- Now that sessions are initialized, other middleware can use them ---
	router.Use(CSRFProtection())
	router.Use(UserLoaderMiddleware())

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			c.Abort()
			return
		}
	})

	// Handlers and routes
	authHandler := handlers.NewAuthHandler(log)
	assessmentHandler := handlers.NewAssessmentHandler(log, bank, manager)
	resultsHandler := handlers.NewResultsHandler(log)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: errorHandler,
		KeyFunc:      keyFunc,
	})

	router.GET("/csrf", func(c *gin.Context) {
		token, _ := c.Get(csrfTokenContextKey)
		c.JSON(http.StatusOK, gin.H{"csrfToken": token})
	})

	router.POST("/register", limiter, authHandler.Register)
	router.POST("/login", limiter, authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	authorized := router.Group("/")
	authorized.Use(AuthRequired())
	{
		assessmentRoutes := authorized.Group("/assessment")
		{
			assessmentRoutes.POST("/start", assessmentHandler.Start)
			assessmentRoutes.GET("/question", assessmentHandler.Question)
			assessmentRoutes.POST("/answer", assessmentHandler.Answer)
			assessmentRoutes.POST("/events", assessmentHandler.Events)
			assessmentRoutes.POST("/save-retry", assessmentHandler.RetrySave)
			assessmentRoutes.POST("/reset", assessmentHandler.Reset)
		}

		authorized.POST("/profile/reminder", authHandler.UpdateReminder)

		resultsRoutes := authorized.Group("/results")
		{
			resultsRoutes.GET("/latest", resultsHandler.Latest)
			resultsRoutes.GET("/history", resultsHandler.History)
			resultsRoutes.GET("/trend", resultsHandler.Trend)
			resultsRoutes.GET("/recommendations", resultsHandler.Recommendations)
		}
	}

	return router
}
