// Command seed fills a development database with fake users and emoji posts.
// Posts go through the same write path as the API, so the per-author rate
// limit applies and excess posts are logged as throttled.
package main

import (
	"context"
	"flag"
	"strings"

	dbadapter "emojifeed/internal/adapters/database"
	redisadapter "emojifeed/internal/adapters/redis"
	"emojifeed/internal/config"
	"emojifeed/internal/core/apperr"
	"emojifeed/internal/core/post"
	postapp "emojifeed/internal/core/post/service"
	"emojifeed/internal/core/ratelimit"
	ratelimitapp "emojifeed/internal/core/ratelimit/service"
	userapp "emojifeed/internal/core/user/service"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
)

var emojis = []string{"😀", "😂", "🥳", "🔥", "🚀", "🎉", "❤️", "👍🏽", "🌮", "🐙", "☕", "🌈", "👀", "🤖"}

func main() {
	numUsers := flag.Int("users", 20, "number of users to create")
	postsPerUser := flag.Int("posts", 3, "posts to attempt per user")
	seed := flag.Int64("seed", 0, "faker seed (0 picks a random one)")
	flag.Parse()

	settings, err := config.Load()
	if err != nil {
		config.InitLogger("development").Fatal("Invalid configuration", zap.Error(err))
	}
	logger := config.InitLogger(settings.Env)

	db, err := config.InitDB(settings.DBDSN)
	if err != nil {
		logger.Fatal("Error connecting to database", zap.Error(err))
	}
	if err := dbadapter.Migrate(db); err != nil {
		logger.Fatal("Error during migrations", zap.Error(err))
	}
	rdb, err := config.InitRedis(settings.RedisAddr, settings.RedisPassword, settings.RedisDB)
	if err != nil {
		logger.Fatal("Error connecting to Redis", zap.Error(err))
	}
	defer rdb.Close()

	limiter := ratelimitapp.NewLimiterService(
		redisadapter.NewRateLimitRepositoryRedis(rdb),
		ratelimit.Policy{MaxRequests: settings.RateLimitMax, Window: settings.RateLimitWindow},
		logger,
	)
	policy := post.DefaultContentPolicy()
	policy.MaxLength = settings.ContentMaxLength

	userSvc := userapp.NewUserService(dbadapter.NewUserRepositoryDatabase(db), []byte(settings.JWTSecret), logger)
	postSvc := postapp.NewPostService(dbadapter.NewPostRepositoryDatabase(db), limiter, policy, nil, logger)

	faker := gofakeit.New(*seed)
	ctx := context.Background()

	logger.Info("🚀 Creating users", zap.Int("count", *numUsers))
	userIDs := make([]string, 0, *numUsers)
	for i := 0; i < *numUsers; i++ {
		username := strings.ToLower(faker.Username()) + faker.DigitN(3)
		u, err := userSvc.RegisterUser(ctx, username, faker.ImageURL(128, 128), faker.Password(true, true, true, false, false, 12))
		if err != nil {
			logger.Error("❌ Error creating user", zap.String("username", username), zap.Error(err))
			continue
		}
		userIDs = append(userIDs, u.ID)
	}
	logger.Info("✅ Finished creating users", zap.Int("count", len(userIDs)))

	created, throttled := 0, 0
	for _, uid := range userIDs {
		for p := 0; p < *postsPerUser; p++ {
			var b strings.Builder
			for n := faker.Number(1, 6); n > 0; n-- {
				b.WriteString(emojis[faker.Number(0, len(emojis)-1)])
			}
			dto, err := postSvc.CreatePost(ctx, uid, b.String())
			if apperr.Is(err, apperr.CodeThrottled) {
				throttled++
				continue
			}
			if err != nil {
				logger.Error("❌ Error creating post", zap.String("userID", uid), zap.Error(err))
				continue
			}
			created++
			logger.Debug("📝 Created post", zap.String("id", dto.ID), zap.String("content", dto.Content))
		}
	}

	logger.Info("✅ Seed completed", zap.Int("posts", created), zap.Int("throttled", throttled))
}
