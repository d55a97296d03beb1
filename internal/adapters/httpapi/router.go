package httpapi

import (
	"context"
	"net/http"

	"emojifeed/internal/adapters/httpapi/middleware"
	postPort "emojifeed/internal/ports/post"
	userPort "emojifeed/internal/ports/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserUseCase is what the user routes need from the application layer.
type UserUseCase interface {
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, username, profileImageURL, password string) (*userPort.IdentityDTO, error)
	GetProfileByUsername(ctx context.Context, username string) (*userPort.IdentityDTO, error)
}

type FeedUseCase interface {
	GetFeed(ctx context.Context) ([]*postPort.FeedEntryDTO, error)
	GetFeedByAuthor(ctx context.Context, authorID string) ([]*postPort.FeedEntryDTO, error)
	GetPostByID(ctx context.Context, id string) (*postPort.FeedEntryDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID, content string) (*postPort.PostDTO, error)
}

// RouterConfig carries the use cases and cross-cutting pieces the router needs.
type RouterConfig struct {
	Users     UserUseCase
	Feed      FeedUseCase
	Posts     PostUseCase
	JWTSecret []byte
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
	Logger  *zap.Logger
}

// SetupRoutes only routes; use cases are injected from outside.
func SetupRoutes(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.ZapLogger(logger))

	uc := NewUserController(cfg.Users)
	fc := NewFeedController(cfg.Feed)
	pc := NewPostController(cfg.Posts)

	r.POST("/register", uc.RegisterUser)
	r.POST("/login", uc.LoginUser)
	r.GET("/profiles/:username", uc.GetProfile)

	r.GET("/posts", fc.GetFeed)
	r.GET("/posts/:id", fc.GetPostByID)
	r.GET("/users/:id/posts", fc.GetFeedByAuthor)

	r.POST("/posts", middleware.JWTAuthMiddleware(cfg.JWTSecret), pc.CreatePost)

	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics))
	}
	return r
}
