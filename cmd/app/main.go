package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"soulmate/cmd/fx/account_fx"
	"soulmate/cmd/fx/biodata_fx"
	"soulmate/cmd/fx/contact_fx"
	"soulmate/cmd/fx/controllers_fx"
	"soulmate/cmd/fx/dashboard_fx"
	"soulmate/cmd/fx/db_fx"
	"soulmate/cmd/fx/favourite_fx"
	"soulmate/cmd/fx/payment_service_fx"
	"soulmate/cmd/fx/premium_fx"
	"soulmate/cmd/fx/story_fx"
	"soulmate/internal/api/controllers"
	"soulmate/internal/infra"
	"soulmate/pkg/middleware"
)

// @title Matrimony Platform API
// @version 1.0.0
// @description CRUD backend for the matrimony matchmaking platform
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		biodata_fx.Module,
		favourite_fx.Module,
		premium_fx.Module,
		contact_fx.Module,
		payment_service_fx.Module,
		dashboard_fx.Module,
		story_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(infra.Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "5000"
				}
				logrus.Infof("starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					logrus.Fatalf("failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logrus.Info("stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	db *gorm.DB,
	accountController *controllers.AccountController,
	biodataController *controllers.BiodataController,
	userController *controllers.UserController,
	paymentController *controllers.PaymentController,
	adminController *controllers.AdminController,
	storyController *controllers.StoryController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, db,
		accountController, biodataController, userController,
		paymentController, adminController, storyController)

	return r
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB,
	accountController *controllers.AccountController,
	biodataController *controllers.BiodataController,
	userController *controllers.UserController,
	paymentController *controllers.PaymentController,
	adminController *controllers.AdminController,
	storyController *controllers.StoryController) {

	authRequired := middleware.JWTAuthMiddleware()
	adminOnly := middleware.AdminOnlyMiddleware(db)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Matrimony Server is Running")
	})
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/auth/jwt", accountController.IssueToken)

	biodataGroup := r.Group("/biodatas")
	biodataGroup.GET("", biodataController.List)
	biodataGroup.GET("/similar/:type", biodataController.GetSimilar)
	biodataGroup.GET("/email/:email", authRequired, biodataController.GetByEmail)
	biodataGroup.GET("/:id", biodataController.GetByID)
	biodataGroup.POST("", authRequired, biodataController.Upsert)
	biodataGroup.POST("/make-premium", authRequired, biodataController.MakePremium)

	userGroup := r.Group("/users", authRequired)
	userGroup.GET("/favourites/:email", userController.ListFavourites)
	userGroup.POST("/favourites", userController.AddFavourite)
	userGroup.DELETE("/favourites/:id", userController.RemoveFavourite)
	userGroup.GET("/contact-requests/:email", userController.ListContactRequests)
	userGroup.DELETE("/contact-requests/:id", userController.DeleteContactRequest)
	userGroup.GET("/:email", accountController.GetUser)

	paymentGroup := r.Group("/payment", authRequired)
	paymentGroup.POST("/create-payment-intent", paymentController.CreatePaymentIntent)
	paymentGroup.POST("/save-info", paymentController.SavePaymentInfo)

	adminGroup := r.Group("/admin", authRequired, adminOnly)
	adminGroup.GET("/stats", adminController.Stats)
	adminGroup.GET("/users", adminController.ListUsers)
	adminGroup.PATCH("/users/admin/:id", adminController.MakeAdmin)
	adminGroup.PATCH("/users/premium/:id", adminController.MakePremium)
	adminGroup.GET("/premium-requests", adminController.ListPremiumRequests)
	adminGroup.PATCH("/premium-request/approve/:id", adminController.ApprovePremiumRequest)
	adminGroup.GET("/contact-requests", adminController.ListContactRequests)
	adminGroup.PATCH("/contact-request/approve/:id", adminController.ApproveContactRequest)

	storyGroup := r.Group("/success-stories")
	storyGroup.GET("", storyController.List)
	storyGroup.POST("", storyController.Create)
}
