package cache

import (
	"bytes"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/Lex0104/Saphir/internal/config"
)

// NewRedis connects the page cache. A nil return disables caching; the site
// stays correct without it, only slower.
func NewRedis(cfg *config.Config) *redis.Client {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.WithError(err).Warn("invalid REDIS_URL, page cache disabled")
		return nil
	}
	return redis.NewClient(opts)
}

type bodyCapture struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// PageCache caches successful GET responses by request URI. Reservation
// state is never cached; only the short-lived public pages (table detail,
// staff roster) sit behind it.
func PageCache(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || c.Request.Method != "GET" {
			c.Next()
			return
		}

		key := "page:" + c.Request.RequestURI

		if body, err := rdb.Get(c.Request.Context(), key).Bytes(); err == nil {
			c.Data(200, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		w := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		if c.Writer.Status() == 200 && w.buf.Len() > 0 {
			if err := rdb.Set(c.Request.Context(), key, w.buf.Bytes(), ttl).Err(); err != nil {
				log.WithError(err).Debug("page cache store failed")
			}
		}
	}
}
