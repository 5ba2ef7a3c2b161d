package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/maze-solver-api/api"
	api_i "github.com/beka-birhanu/maze-solver-api/api/i"
	"github.com/beka-birhanu/maze-solver-api/api/identity"
	"github.com/beka-birhanu/maze-solver-api/api/mazeapi"
	"github.com/beka-birhanu/maze-solver-api/config"
	logger "github.com/beka-birhanu/maze-solver-api/infrastruture/log"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/repo"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/sortedstorage"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/token"
	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/service"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient        *mongo.Client
	redisClient        *redis.Client
	userRepo           i.UserRepo
	scoreboard         i.Scoreboard
	mazeSessionManager i.MazeSessionManager
	mazeController     api_i.Controller
	jwtTokenizer       i.Tokenizer
	authService        i.Authenticator
	authController     api_i.Controller
	router             *api.Router
	appLogger          i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initUserRepo(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	appLogger.Info("User repository initialized")
}

func initScoreboard() {
	var err error
	scoreboard, err = sortedstorage.NewRedisScoreboard(redisClient, config.Envs.ScoreTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating scoreboard: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Scoreboard initialized")
}

func initMazeSessionManager() {
	mazeLogger, err := logger.New("MAZE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze session logger: %v", err))
		os.Exit(1)
	}

	mazeSessionManager, err = service.NewMazeSessionManager(&service.Config{
		MazeFactory: func(rows, cols int) (i.Maze, error) {
			m, err := maze.New(rows, cols)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
		Scoreboard: scoreboard,
		Logger:     mazeLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze session manager: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze session manager initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeSessionManager)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initAuthController() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Auth controller initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Creating application logger: %v", err)
	}

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initUserRepo(mongoClient)
	initScoreboard()
	initMazeSessionManager()
	initMazeController()
	initJWTTokenizer()
	initAuthService()
	initAuthController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
