package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"civix/cmd/fx/account_fx"
	"civix/cmd/fx/controllers_fx"
	dbfx "civix/cmd/fx/db_fx"
	"civix/cmd/fx/election_fx"
	"civix/cmd/fx/mail_fx"
	"civix/cmd/fx/memcache_fx"
	"civix/cmd/fx/metrics_fx"
	"civix/cmd/fx/nomination_fx"
	"civix/cmd/fx/organization_fx"
	"civix/cmd/fx/post_fx"
	"civix/internal/api/controllers"
	"civix/internal/infra"
	"civix/internal/models/db_models"
	"civix/pkg/config"
	mem "civix/pkg/memcache"
	"civix/pkg/middleware"
	"civix/pkg/utils"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		dbfx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		metrics_fx.Module,
		account_fx.Module,
		organization_fx.Module,
		election_fx.Module,
		post_fx.Module,
		nomination_fx.Module,
		controllers_fx.Module,

		fx.Invoke(Bootstrap),
		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

// Bootstrap runs the one-time startup work: the signing key for tokens,
// schema migration and the bootstrap admin account.
func Bootstrap(cfg *config.Config, db *gorm.DB) error {
	utils.SetJWTSecret(cfg.JWTSecret)

	if err := infra.Migrate(db); err != nil {
		return err
	}

	return infra.SeedDefaultAdmin(db, cfg)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	revoked mem.RevokedTokenStore,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	organizationController *controllers.OrganizationController,
	electionController *controllers.ElectionController,
	postController *controllers.PostController,
	nominationController *controllers.NominationController,
	candidateController *controllers.CandidateController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.FrontendOrigin))
	r.Use(middleware.MetricsMiddleware())

	r.Static("/uploads", cfg.UploadDir)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterRoutes(r, revoked,
		authController, adminController, organizationController,
		electionController, postController, nominationController, candidateController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	revoked mem.RevokedTokenStore,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	organizationController *controllers.OrganizationController,
	electionController *controllers.ElectionController,
	postController *controllers.PostController,
	nominationController *controllers.NominationController,
	candidateController *controllers.CandidateController) {

	auth := middleware.JWTAuthMiddleware(revoked)
	adminOnly := middleware.RoleMiddleware(db_models.RoleAdmin)
	committee := middleware.RoleMiddleware(db_models.RoleCommittee, db_models.RoleAdmin)

	authGroup := r.Group("/api/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/verify-email", authController.VerifyEmail)
	authGroup.POST("/resend-verification", authController.ResendVerification)
	authGroup.GET("/check", auth, authController.CheckAuth)
	authGroup.POST("/logout", auth, authController.Logout)

	orgGroup := r.Group("/api/organizations")
	orgGroup.GET("", organizationController.GetAll)
	orgGroup.GET("/:id", organizationController.GetById)
	orgGroup.POST("", auth, adminOnly, organizationController.Create)
	orgGroup.PUT("/:id", auth, adminOnly, organizationController.Update)
	orgGroup.PUT("/:id/committee", auth, adminOnly, organizationController.AssignCommittee)
	orgGroup.DELETE("/:id", auth, adminOnly, organizationController.Delete)

	electionGroup := r.Group("/api/election")
	electionGroup.GET("/elections", electionController.ListAll)
	electionGroup.GET("/committee/elections", auth, committee, electionController.ListMine)
	electionGroup.POST("/committee/elections", auth, committee, electionController.Create)
	electionGroup.PUT("/committee/elections/:id", auth, committee, electionController.Update)
	electionGroup.DELETE("/committee/elections/:id", auth, committee, electionController.Delete)

	postGroup := r.Group("/api/post")
	postGroup.GET("/:id/posts", postController.ListByElection)
	postGroup.POST("/:id/posts", auth, committee, postController.Create)
	postGroup.PUT("/:id", auth, committee, postController.Update)
	postGroup.DELETE("/:id", auth, committee, postController.Delete)

	nominationGroup := r.Group("/api/nomination")
	nominationGroup.POST("", auth, nominationController.Create)
	nominationGroup.GET("/:id/nominations", auth, committee, nominationController.ListByElection)
	nominationGroup.GET("/candidate/:candidateId", auth, committee, nominationController.ListByCandidate)
	nominationGroup.GET("/:id", auth, nominationController.GetById)
	nominationGroup.PUT("/:id/approve", auth, committee, nominationController.Approve)
	nominationGroup.PUT("/:id/reject", auth, committee, nominationController.Reject)
	nominationGroup.PUT("/:id", auth, nominationController.Update)
	nominationGroup.DELETE("/:id", auth, nominationController.Delete)

	candidateGroup := r.Group("/api/candidates")
	candidateGroup.POST("/register", candidateController.Register)
	candidateGroup.POST("/verify-otp", candidateController.VerifyOtp)
	candidateGroup.POST("/submit", auth, candidateController.SubmitNomination)
	candidateGroup.GET("/my-nominations", auth, candidateController.MyNominations)
	candidateGroup.PUT("/:id/update-agenda", auth, candidateController.UpdateAgenda)

	adminGroup := r.Group("/api/admin", auth)
	adminGroup.GET("/profile", adminController.GetProfile)
	adminGroup.GET("", adminOnly, adminController.GetAllUsers)
	adminGroup.GET("/:id", adminOnly, adminController.GetUser)
	adminGroup.PUT("/:id", adminOnly, adminController.UpdateUser)
	adminGroup.PUT("/:id/role", adminOnly, adminController.UpdateRole)
	adminGroup.DELETE("/:id", adminOnly, adminController.DeleteUser)
}
