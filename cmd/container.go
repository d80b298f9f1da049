// container.go
package main

import (
	"context"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"talentbridge/pkg/ats/statushistory/statushistoryapi"
	"talentbridge/pkg/ats/statushistory/statushistorysrv"
	"talentbridge/pkg/ats/storage/storageinfra"
	"talentbridge/pkg/ats/workflow"
	"talentbridge/pkg/ats/workflow/workflowapi"
	"talentbridge/pkg/ats/workflow/workflowinfra"
	"talentbridge/pkg/auth"
	"talentbridge/pkg/auth/authapi"
	"talentbridge/pkg/auth/authinfra"
	"talentbridge/pkg/auth/authsrv"
	"talentbridge/pkg/config"
	"talentbridge/pkg/fsx"
	"talentbridge/pkg/fsx/fsxlocal"
	"talentbridge/pkg/fsx/fsxs3"
	"talentbridge/pkg/logx"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client
	Store      *storageinfra.PostgresStore

	// Services
	AuthService          *authsrv.AuthService
	TokenService         auth.TokenService
	StatusHistoryService *statushistorysrv.Service
	WorkflowService      *workflow.Service
	FeedbackQueue        workflow.FeedbackQueue

	// API Handlers
	AuthHandlers          *authapi.AuthHandlers
	WorkflowHandlers      *workflowapi.Handler
	StatusHistoryHandlers *statushistoryapi.Handler

	// Middleware
	AuthMiddleware *auth.TokenMiddleware

	// Background Services
	DrainWorker *workflow.DrainWorker
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) *Container {
	logx.Info("Initializing dependency container...")

	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()

	logx.Info("Container initialized")
	return c
}

func (c *Container) initInfrastructure() {
	db, err := sqlx.Connect("postgres", c.Config.Database.DSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
	db.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
	db.SetConnMaxLifetime(c.Config.Database.ConnMaxLifetime)
	c.DB = db
	logx.Info("Database connected")

	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Address(),
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Fatalf("Failed to connect to Redis: %v (Redis backs the pending feedback queue)", err)
	}
	logx.Info("Redis connected")

	c.initFileStorage()
	c.Store = storageinfra.NewPostgresStore(c.DB)
}

func (c *Container) initFileStorage() {
	switch c.Config.Storage.Mode {
	case "s3":
		cfg, err := awsConfig.LoadDefaultConfig(context.TODO(),
			awsConfig.WithRegion(c.Config.Storage.AWSRegion))
		if err != nil {
			logx.Fatalf("Unable to load AWS SDK config: %v", err)
		}
		c.S3Client = s3.NewFromConfig(cfg)
		c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, c.Config.Storage.AWSBucket, "")
		logx.Infof("S3 file system configured (bucket: %s, region: %s)",
			c.Config.Storage.AWSBucket, c.Config.Storage.AWSRegion)

	case "local":
		localFS, err := fsxlocal.NewLocalFileSystem(c.Config.Storage.UploadDir)
		if err != nil {
			logx.Fatalf("Failed to initialize local file system: %v", err)
		}
		c.FileSystem = localFS
		logx.Infof("Local file system configured (path: %s)", c.Config.Storage.UploadDir)

	default:
		logx.Fatalf("Unknown STORAGE_MODE: %s (use 'local' or 's3')", c.Config.Storage.Mode)
	}
}

func (c *Container) initServices() {
	// --- Auth ---
	recruiterRepo := authinfra.NewPostgresRecruiterRepository(c.DB)
	passwordSvc := authinfra.NewBcryptPasswordService(c.Config.Auth.Password.BcryptCost)
	c.TokenService = auth.NewJWTServiceFromConfig(&c.Config.Auth.JWT)
	c.AuthService = authsrv.NewAuthService(recruiterRepo, passwordSvc, c.TokenService)
	c.AuthMiddleware = auth.NewTokenMiddleware(c.TokenService)

	// --- Status History ---
	c.StatusHistoryService = statushistorysrv.NewService(c.Store.Repos().StatusHistory)

	// --- Candidate Workflows ---
	c.FeedbackQueue = workflowinfra.NewRedisFeedbackQueue(c.Redis)
	historyRecorder := workflowinfra.NewStatusHistoryRecorder(c.StatusHistoryService)
	c.WorkflowService = workflow.NewService(c.Store, historyRecorder, c.FeedbackQueue, c.FileSystem)

	// --- API Handlers ---
	c.AuthHandlers = authapi.NewAuthHandlers(c.AuthService)
	c.WorkflowHandlers = workflowapi.NewHandler(c.WorkflowService)
	c.StatusHistoryHandlers = statushistoryapi.NewHandler(c.StatusHistoryService)

	// --- Background Services ---
	c.DrainWorker = workflow.NewDrainWorker(
		c.Store,
		c.FeedbackQueue,
		c.Config.Storage.FeedbackDrainInterval,
		c.Config.Storage.FeedbackMaxAge,
	)

	logx.Info("All services and handlers initialized")
}

// StartBackgroundServices starts background workers
func (c *Container) StartBackgroundServices(ctx context.Context) {
	go c.DrainWorker.Run(ctx)
	logx.Info("Pending feedback drain worker started")
}

// Cleanup closes all connections and stops workers
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logx.Errorf("Error closing database: %v", err)
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logx.Errorf("Error closing Redis: %v", err)
		}
	}
	logx.Info("Cleanup completed")
}
