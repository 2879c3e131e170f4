package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	vo "mantis/internal/domain/ticket/valueobjects"
	"mantis/internal/shared/logger"
	"mantis/internal/shared/utils"
)

// Identity is resolved upstream (gateway or reverse proxy) and handed to
// this service through trusted headers. This middleware only parses and
// enforces them; it never authenticates.
const (
	HeaderActorKind = "X-Actor-Kind"
	HeaderActorID   = "X-Actor-Id"

	ContextKeyActorKind = "actor_kind"
	ContextKeyActorID   = "actor_id"
)

type IdentityMiddleware struct {
	logger logger.Interface
}

func NewIdentityMiddleware(logger logger.Interface) *IdentityMiddleware {
	return &IdentityMiddleware{logger: logger}
}

// RequireIdentity parses the trusted identity headers and aborts with 401
// when they are missing or malformed.
func (m *IdentityMiddleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := vo.ActorKind(c.GetHeader(HeaderActorKind))
		if !kind.IsValid() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing or invalid actor kind header")
			c.Abort()
			return
		}

		actorID, err := strconv.ParseUint(c.GetHeader(HeaderActorID), 10, 32)
		if err != nil || actorID == 0 {
			m.logger.Warnw("malformed actor ID header",
				"value", c.GetHeader(HeaderActorID),
				"path", c.Request.URL.Path,
			)
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing or invalid actor ID header")
			c.Abort()
			return
		}

		c.Set(ContextKeyActorKind, kind)
		c.Set(ContextKeyActorID, uint(actorID))

		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the resolved identity is an admin.
func (m *IdentityMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorKindFromContext(c).IsAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireTech aborts with 403 unless the resolved identity is a technician.
func (m *IdentityMiddleware) RequireTech() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorKindFromContext(c).IsTech() {
			utils.ErrorResponse(c, http.StatusForbidden, "technician access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorKindFromContext returns the actor kind set by RequireIdentity.
func ActorKindFromContext(c *gin.Context) vo.ActorKind {
	if v, ok := c.Get(ContextKeyActorKind); ok {
		if kind, ok := v.(vo.ActorKind); ok {
			return kind
		}
	}
	return ""
}

// ActorIDFromContext returns the actor ID set by RequireIdentity.
func ActorIDFromContext(c *gin.Context) uint {
	if v, ok := c.Get(ContextKeyActorID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
