package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simhonchourasia/playbet-be/authentication"
	"github.com/simhonchourasia/playbet-be/middleware"
	"github.com/simhonchourasia/playbet-be/models"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var tokens = authentication.NewTokenManager("controller-secret", time.Hour)

func nullLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

func bearer(t *testing.T, id primitive.ObjectID, role models.Role) string {
	token, err := tokens.GenerateToken(id.Hex(), role)
	require.NoError(t, err)
	return "Bearer " + token
}

func authed() gin.HandlerFunc {
	return middleware.Authentication(tokens)
}

type envelope struct {
	Success    bool            `json:"success"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
	Total      int64           `json:"total"`
	TotalPages int64           `json:"totalPages"`
	Token      string          `json:"token"`
}

func perform(t *testing.T, r http.Handler, method, path, auth string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	headers := map[string]string{}
	if auth != "" {
		headers["Authorization"] = auth
	}
	return performWithHeaders(t, r, method, path, headers, body)
}

func performWithHeaders(t *testing.T, r http.Handler, method, path string, headers map[string]string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}
