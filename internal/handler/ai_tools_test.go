package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CreatorKit/api-service/internal/metrics"
	"github.com/CreatorKit/api-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeImageService struct {
	gotInput           service.GenerationInput
	gotPage, gotLimit  int
	view               *service.GenerationView
	hist               *service.HistoryData
	err                error
}

func (f *fakeImageService) Generate(_ context.Context, _, _ string, input service.GenerationInput) (*service.GenerationView, error) {
	f.gotInput = input
	return f.view, f.err
}

func (f *fakeImageService) History(_ context.Context, _ string, page, limit int) (*service.HistoryData, error) {
	f.gotPage, f.gotLimit = page, limit
	return f.hist, f.err
}

func newAIToolsRouter(fake *fakeImageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{
		services: &service.Service{ImageGenerator: fake},
		logger:   zap.NewNop(),
		metrics:  metrics.Noop{},
	}

	withIdentity := func(c *gin.Context) {
		c.Set(ctxUserID, "5f0c2f0e-9f5a-4f5e-8f2f-1c9a40d4a001")
		c.Set(ctxWorkspaceID, "5f0c2f0e-9f5a-4f5e-8f2f-1c9a40d4a002")
	}

	router := gin.New()
	router.POST("/api/v1/ai-tools/generators/images", withIdentity, h.generateImages)
	router.GET("/api/v1/ai-tools/generators/images/history", withIdentity, h.imagesHistory)

	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func TestGenerateImagesDefaultsCount(t *testing.T) {
	fake := &fakeImageService{view: &service.GenerationView{GenerationRecordID: "rec-1"}}
	router := newAIToolsRouter(fake)

	w := postJSON(router, "/api/v1/ai-tools/generators/images", `{"textPrompt":"a red fox","sizeCode":"square"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, fake.gotInput.NoOfImages)
	assert.Equal(t, "a red fox", fake.gotInput.TextPrompt)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	payload := body["payload"].(map[string]interface{})
	assert.Contains(t, payload, "newImages")
}

func TestGenerateImagesRejectsTooMany(t *testing.T) {
	router := newAIToolsRouter(&fakeImageService{})

	w := postJSON(router, "/api/v1/ai-tools/generators/images", `{"textPrompt":"a red fox","sizeCode":"square","noOfImages":11}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])

	errs := body["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, "noOfImages", errs[0].(map[string]interface{})["field"])
}

func TestGenerateImagesRequiresPrompt(t *testing.T) {
	router := newAIToolsRouter(&fakeImageService{})

	w := postJSON(router, "/api/v1/ai-tools/generators/images", `{"sizeCode":"square"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateImagesInsufficientCredits(t *testing.T) {
	fake := &fakeImageService{err: service.ErrInsufficientCredits}
	router := newAIToolsRouter(fake)

	w := postJSON(router, "/api/v1/ai-tools/generators/images", `{"textPrompt":"a red fox","sizeCode":"square","noOfImages":2}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "AI Credits not available", decodeBody(t, w)["message"])
}

func TestImagesHistoryDefaults(t *testing.T) {
	fake := &fakeImageService{hist: &service.HistoryData{Records: []*service.GenerationView{}}}
	router := newAIToolsRouter(fake)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ai-tools/generators/images/history", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, fake.gotPage)
	assert.Equal(t, 10, fake.gotLimit)
}

func TestImagesHistoryRejectsOversizedLimit(t *testing.T) {
	router := newAIToolsRouter(&fakeImageService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ai-tools/generators/images/history?limit=100", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
