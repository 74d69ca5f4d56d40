package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simhonchourasia/playbet-be/authentication"
	"github.com/simhonchourasia/playbet-be/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": msg})
}

// bearerToken accepts "Authorization: Bearer <jwt>" and the older "token" header.
func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		const prefix = "bearer "
		if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
			return strings.TrimSpace(h[len(prefix):])
		}
	}
	return strings.TrimSpace(r.Header.Get("token"))
}

func Authentication(tm *authentication.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := bearerToken(c.Request)
		if clientToken == "" {
			abort(c, http.StatusUnauthorized, "Missing authorization header")
			return
		}

		claims, err := tm.ValidateToken(clientToken)
		if err != nil {
			abort(c, http.StatusUnauthorized, err.Error())
			return
		}
		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			abort(c, http.StatusUnauthorized, authentication.ErrInvalidToken.Error())
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RequireAdmin must run after Authentication.
var RequireAdmin gin.HandlerFunc = func(c *gin.Context) {
	role, _ := c.Get(ContextRole)
	if r, ok := role.(models.Role); !ok || r != models.RoleAdmin {
		abort(c, http.StatusForbidden, "Admin access required")
		return
	}
	c.Next()
}

// AccountLookup loads the account a token was issued for.
type AccountLookup interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// ActiveAdmin checks the stored account behind an admin token, so a demoted or blocked admin is
// turned away before the token expires. It must run after RequireAdmin.
func ActiveAdmin(accounts AccountLookup, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			abort(c, http.StatusUnauthorized, authentication.ErrInvalidToken.Error())
			return
		}
		user, err := accounts.FindByID(c.Request.Context(), id)
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			abort(c, http.StatusUnauthorized, "Account not found")
			return
		case err != nil:
			log.WithError(err).WithField("user", id.Hex()).Error("admin lookup failed")
			abort(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		if user.Blocked || user.Role != models.RoleAdmin {
			abort(c, http.StatusForbidden, "Admin access required")
			return
		}
		c.Next()
	}
}

func UserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}

// RequestLogger writes one access log line per request.
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		entry := log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    path,
			"status":  status,
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}
		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("request")
		case status >= http.StatusBadRequest:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	}
}
