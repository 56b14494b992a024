package router

import (
	"todo-vault/internal/config"
	"todo-vault/internal/handler"
	"todo-vault/internal/middleware"
	"todo-vault/internal/repository"
	"todo-vault/internal/service"
	"todo-vault/internal/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRouter wires the HTTP surface.
func SetupRouter(cfg *config.Config, db *gorm.DB, log *zap.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	codec := token.NewCodec(cfg.JWT.Secret)
	authService := service.NewAuthService(db, codec, cfg.JWT.TTLSeconds)
	listRepo := repository.NewTodoListRepository(db)

	authHandler := handler.NewAuthHandler(authService)
	listHandler := handler.NewTodoListHandler(listRepo)
	exportHandler := handler.NewExportHandler(listRepo)
	logHandler := handler.NewLogHandler(db)

	// ====== API ======
	api := r.Group("/api")

	// no access token needed; the session id is the credential here
	api.POST("/auth/signup", authHandler.SignUp)
	api.POST("/auth/signin", authHandler.SignIn)
	api.GET("/auth/accesstoken/:sessionID", authHandler.RenewAccessToken)
	api.GET("/auth/refreshtokens/:sessionID", authHandler.GetSession)
	api.DELETE("/auth/refreshtokens/:sessionID", authHandler.DeleteSession)

	// everything below requires a valid access token
	protected := api.Group("")
	protected.Use(
		middleware.AuthGuard(codec),
		middleware.Audit(db),
	)

	protected.POST("/auth/changepassword", authHandler.ChangePassword)
	protected.GET("/me", handler.GetMe)

	protected.GET("/todolists", listHandler.List)
	protected.POST("/todolists", listHandler.Create)
	protected.GET("/todolists/export/csv", exportHandler.ExportCSV)
	protected.GET("/todolists/export/xlsx", exportHandler.ExportXLSX)
	protected.GET("/todolists/:id", listHandler.Get)
	protected.PATCH("/todolists/:id", listHandler.Update)
	protected.DELETE("/todolists/:id", listHandler.Delete)
	protected.POST("/todolists/:id/todo", listHandler.AddItem)
	protected.PATCH("/todolists/:id/todo", listHandler.UpdateItem)
	protected.DELETE("/todolists/:id/todo", listHandler.RemoveItem)

	protected.GET("/logs", logHandler.List)

	return r
}
