// Package middleware contains Echo middleware shared across routes.
// The response cache here fronts the catalog listing endpoints, whose
// payloads change only by administrative action.
package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/metro-ticket-booking/internal/config"
)

// captureWriter captures the response body while forwarding to the client.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

// cacheKey derives a stable Redis key from the route and query string.
func cacheKey(prefix string, c echo.Context) string {
	tail := strings.Join([]string{c.Path(), c.Request().URL.RawQuery}, "?")
	sum := sha1.Sum([]byte(tail))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// NewCatalogCache caches successful GET responses in Redis for the
// configured TTL.  Only 200 responses are stored; anything else passes
// through untouched.  Cache failures never fail the request — a broken
// Redis simply means every request is a miss.
func NewCatalogCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Request().Context()
			key := cacheKey(cfg.Prefix, c)

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil && len(body) > 0 {
				c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
				c.Response().Header().Set("X-Cache", "HIT")
				c.Response().WriteHeader(http.StatusOK)
				_, _ = c.Response().Write(body)
				return nil
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if cw.status == http.StatusOK && cw.buf.Len() > 0 {
				// Detached context: the store must outlive the request.
				_ = rdb.SetEx(context.Background(), key, cw.buf.Bytes(), ttl).Err()
			}
			return nil
		}
	}
}
