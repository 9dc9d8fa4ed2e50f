package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"swapi/auth"
	"swapi/config"
	"swapi/db"
	"swapi/handlers"
	"swapi/models"
	"swapi/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

func main() {
	db.Init()
	models.Init()

	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}

	// Public routes
	router.GET("/", handlers.Sitemap(router))
	router.GET("/people", handlers.PeopleList)
	router.GET("/people/:people_id", handlers.PersonGet)
	router.GET("/planets", handlers.PlanetList)
	router.GET("/planets/:planet_id", handlers.PlanetGet)
	router.GET("/users", handlers.UserList)
	router.GET("/users/favorites", handlers.UserList)
	router.POST("/login", handlers.UserLogin)

	// Routes requiring a bearer token
	authRouter := &auth.Router{Base: router}
	authRouter.GET("/current-user", handlers.UserCurrent)
	authRouter.POST("/favorite/planet/:planet_id", handlers.FavouritePlanetAdd)
	authRouter.DELETE("/favorite/planet/:planet_id", handlers.FavouritePlanetRemove)
	authRouter.POST("/favorite/people/:people_id", handlers.FavouritePersonAdd)
	authRouter.DELETE("/favorite/people/:people_id", handlers.FavouritePersonRemove)

	// Release the connection pool on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		if err := db.Close(); err != nil {
			log.Printf("Cannot close DB: %v", err)
		}
		os.Exit(0)
	}()

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	_ = db.Close()
	log.Fatalf("Server stopped: %v", err)
}
