package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports whether postgres and redis answer a ping. Redis being down
// degrades the menu cache and the notification queue but the API keeps
// serving, so it is reported per-dependency instead of as a single flag.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		dbOK := err == nil && sqlDB.PingContext(ctx) == nil
		redisOK := rdb.Ping(ctx).Err() == nil

		status := http.StatusOK
		if !dbOK || !redisOK {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":    dbOK && redisOK,
			"db":    estado(dbOK),
			"redis": estado(redisOK),
		})
	}
}

func estado(ok bool) string {
	if ok {
		return "disponible"
	}
	return "sin conexion"
}
