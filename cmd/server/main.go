package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/socialpedia/backend/server"
	"github.com/socialpedia/backend/server/api"
	"github.com/socialpedia/backend/server/token"
	"github.com/socialpedia/backend/utils"
	"github.com/socialpedia/backend/utils/dotenv"
	Flag "github.com/socialpedia/backend/utils/flag"
	Logger "github.com/socialpedia/backend/utils/log"
)

const (
	defaultPort     = "6001"
	defaultAssetDir = "public/assets"
)

func main() {
	Flag.ParseFlags()
	Logger.InitLogger()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		Logger.Log.Fatal("fail to connect to database: ", err)
	}
	utils.DatabaseSetupAndMigration(db)

	tokens, err := token.NewServiceFromEnv()
	if err != nil {
		Logger.Log.Fatal("fail to initialize token service: ", err)
	}

	// Profile view counting is best effort, the server runs fine without redis.
	views, err := utils.GetProfileViewStore()
	if err != nil {
		Logger.Log.Warn("redis unavailable, profile view counting disabled: ", err)
		views = nil
	}

	assetDir := os.Getenv("ASSET_DIR")
	if assetDir == "" {
		assetDir = defaultAssetDir
	}
	if err := os.MkdirAll(assetDir, 0o755); err != nil {
		Logger.Log.Fatal("fail to create asset dir: ", err)
	}

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()
	router.Use(cors.Default())
	router.Static("/assets", assetDir)

	server.RegisterRoutes(router, api.New(db, tokens, views, assetDir), tokens, Flag.ByPassAuth)

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	Logger.Log.Info("api server starts up")
	router.Run(":" + port)
}
