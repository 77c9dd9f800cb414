package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tripledger/internal/auth"
	"tripledger/internal/middleware"
	"tripledger/internal/service"
)

// Services bundles everything the router serves.
type Services struct {
	Auth    *service.AuthService
	Groups  *service.GroupService
	Expense *service.ExpenseService
	Summary *service.SummaryService
}

// NewRouter builds the gin engine with all routes and middleware wired.
func NewRouter(svcs Services, jwtManager *auth.JWTManager) *gin.Engine {
	registerValidations()

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics(), cors())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := NewAuthHandler(svcs.Auth)
	groupHandler := NewGroupHandler(svcs.Groups)
	expenseHandler := NewExpenseHandler(svcs.Expense)
	summaryHandler := NewSummaryHandler(svcs.Summary)

	api := router.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("", middleware.RequireAuth(jwtManager))
	{
		authed.GET("/groups", groupHandler.List)
		authed.POST("/groups", groupHandler.Create)
		authed.GET("/groups/:id", groupHandler.Get)
		authed.POST("/groups/:id/members", groupHandler.AddMember)
		authed.DELETE("/groups/:id/members/:memberId", groupHandler.RemoveMember)
		authed.GET("/groups/:id/summary", summaryHandler.Get)

		authed.GET("/expenses", expenseHandler.List)
		authed.POST("/expenses", expenseHandler.Create)
		authed.POST("/expenses/validate", expenseHandler.ValidateShares)
	}

	return router
}

// registerValidations adds custom binding rules to gin's validator.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// tripdate: expense dates are plain YYYY-MM-DD strings.
	_ = v.RegisterValidation("tripdate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
}

// cors allows browser clients on other origins to call the API.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusOK)
			c.Abort()
			return
		}

		c.Next()
	}
}
