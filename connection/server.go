package connection

import (
	"log"

	authctrl "duit/controller/auth"
	todoctrl "duit/controller/todo"
	"duit/middleware"
	"duit/scheduler"
	"duit/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fs, authClient, err := FBConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}

	store := services.NewFirestoreTodoStore(fs)
	guards := services.NewGuardSet(cfg.RefreshCooldown)
	svc := services.NewTodoService(store, guards, cfg.Location)

	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())
	router.Use(middleware.RequestID())

	auth := middleware.Auth(authClient, cfg.AuthMode)
	todoctrl.ListController(router, auth, svc)
	todoctrl.CreateController(router, auth, svc)
	todoctrl.UpdateController(router, auth, svc)
	todoctrl.DeleteController(router, auth, svc)
	authctrl.DevTokenController(router, cfg.AuthMode)

	if cfg.SweepInterval > 0 {
		sweeper := scheduler.NewSweeper(store, store, cfg.Location)
		if err := sweeper.Start(cfg.SweepInterval); err != nil {
			log.Fatalf("Failed to start sweep scheduler: %v", err)
		}
		defer sweeper.Stop()
	}

	if cfg.Port != "" {
		router.Run(":" + cfg.Port)
		return
	}
	router.Run()
}
