package celld

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/cellkit/cell"
	"github.com/danmuck/cellkit/internal/auth"
	"github.com/danmuck/cellkit/internal/node"
	"github.com/danmuck/cellkit/internal/observability"
	"github.com/danmuck/cellkit/internal/registry"
	"github.com/danmuck/cellkit/internal/resources"
)

// Node is the running daemon: one registry of lazily initialized resources
// behind an admin router.
type Node struct {
	ID       string    `json:"id"`
	Addr     string    `json:"addr"`
	Appeared time.Time `json:"appeared"`

	registry  *registry.Registry
	validator auth.Validator
	router    *gin.Engine
}

var _ node.Node = (*Node)(nil)

// Appear builds the admin router and wraps the registry. The registry may
// already hold bindings; Appear never forces them.
func Appear(id, addr string, corsOrigins []string, validator auth.Validator, reg *registry.Registry) *Node {
	observability.RegisterMetrics()
	if reg == nil {
		reg = registry.NewRegistry()
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestTelemetry(id, log.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(corsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	return &Node{
		ID:        id,
		Addr:      addr,
		Appeared:  time.Now(),
		registry:  reg,
		validator: validator,
		router:    r,
	}
}

func (n *Node) NodeID() string {
	return n.ID
}

func (n *Node) Kind() string {
	return "celld"
}

func (n *Node) HTTPRouter() *gin.Engine {
	return n.router
}

func (n *Node) Registry() *registry.Registry {
	return n.registry
}

func (n *Node) RegisterRoutes() {
	n.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(n.Appeared).String(),
			"node":    n.ID,
			"version": "0.0.1",
		})
	})

	n.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":  true,
			"uptime": time.Since(n.Appeared).String(),
			"node":   n.ID,
		})
	})

	n.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	n.router.GET("/resources", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"resources": resources.Statuses(n.registry),
		})
	})

	n.router.GET("/resources/:id", func(c *gin.Context) {
		id := c.Param("id")
		handle, ok := n.registry.Get(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": registry.ErrNotBound.Error()})
			return
		}
		body := gin.H{
			"id":          handle.ID(),
			"kind":        handle.Kind(),
			"initialized": handle.Initialized(),
		}
		if val, ok := handle.Peek(); ok {
			if s, isString := val.(string); isString {
				body["value"] = s
			}
		}
		c.JSON(http.StatusOK, body)
	})

	n.router.POST("/resources/:id/init", func(c *gin.Context) {
		if err := n.authorize(c); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		id := c.Param("id")
		val, err := n.registry.Resolve(id)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, registry.ErrNotBound) {
				status = http.StatusNotFound
			} else if errors.Is(err, cell.ErrInitFailed) {
				status = http.StatusBadGateway
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		body := gin.H{"status": "ok", "id": id}
		if s, isString := val.(string); isString {
			body["value"] = s
		}
		c.JSON(http.StatusOK, body)
	})
}

func (n *Node) authorize(c *gin.Context) error {
	if n.validator == nil {
		return nil
	}
	token := auth.FromHeader(c.GetHeader("Authorization"))
	return n.validator.Validate(token)
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			out = append(out, origin)
		}
	}
	if len(out) == 0 {
		out = append(out, "http://localhost:3000")
	}
	return out
}
