package handler_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analysisdomain "thumblytics/internal/feature/analysis/domain"
	analysisentity "thumblytics/internal/feature/analysis/domain/entity"
	comparisonentity "thumblytics/internal/feature/comparison/domain/entity"
	"thumblytics/internal/feature/export/domain"
	"thumblytics/internal/feature/export/transport/handler"
)

// mockExportUsecase はExportUsecaseインターフェースのモック実装です。
type mockExportUsecase struct {
	SnapshotJSONFunc func(result *analysisentity.AnalysisResult, comparison *comparisonentity.ComparisonResult) ([]byte, error)
	AnnotatePNGFunc  func(ctx context.Context, in analysisentity.Input, result analysisentity.AnalysisResult) ([]byte, error)
}

func (m *mockExportUsecase) SnapshotJSON(result *analysisentity.AnalysisResult, comparison *comparisonentity.ComparisonResult) ([]byte, error) {
	return m.SnapshotJSONFunc(result, comparison)
}

func (m *mockExportUsecase) AnnotatePNG(ctx context.Context, in analysisentity.Input, result analysisentity.AnalysisResult) ([]byte, error) {
	return m.AnnotatePNGFunc(ctx, in, result)
}

func newRouter(uc handler.ExportUsecase) *gin.Engine {
	h := handler.NewExportHandler(uc)
	r := gin.New()
	r.POST("/v1/export/json", h.JSON)
	r.POST("/v1/export/png", h.PNG)
	return r
}

func TestExportHandler_JSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		mockFunc       func(result *analysisentity.AnalysisResult, comparison *comparisonentity.ComparisonResult) ([]byte, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: analysis with comparison",
			body: `{"analysis":{"attractiveness_score":77},"comparison":{"winner":"B"}}`,
			mockFunc: func(result *analysisentity.AnalysisResult, comparison *comparisonentity.ComparisonResult) ([]byte, error) {
				assert.Equal(t, 77.0, result.AttractivenessScore)
				require.NotNil(t, comparison)
				assert.Equal(t, comparisonentity.WinnerB, comparison.Winner)
				return []byte(`{"ok":true}`), nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":true}`,
		},
		{
			name: "success: analysis only",
			body: `{"analysis":{"attractiveness_score":50}}`,
			mockFunc: func(result *analysisentity.AnalysisResult, comparison *comparisonentity.ComparisonResult) ([]byte, error) {
				assert.Nil(t, comparison)
				return []byte(`{}`), nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{}`,
		},
		{
			name:           "error: missing analysis",
			body:           `{"comparison":{"winner":"A"}}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"analysis result is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&mockExportUsecase{SnapshotJSONFunc: tt.mockFunc})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/v1/export/json", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			if tt.expectedStatus == http.StatusOK {
				cd := w.Header().Get("Content-Disposition")
				assert.True(t, strings.HasPrefix(cd, `attachment; filename="thumblytics-`), cd)
				assert.True(t, strings.HasSuffix(cd, `.json"`), cd)
			}
		})
	}
}

func pngForm(t *testing.T, fields map[string]string, file []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		part, err := w.CreateFormFile("file", "thumb.png")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/v1/export/png", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestExportHandler_PNG(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		req            func(t *testing.T) *http.Request
		mockFunc       func(ctx context.Context, in analysisentity.Input, result analysisentity.AnalysisResult) ([]byte, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: file upload",
			req: func(t *testing.T) *http.Request {
				return pngForm(t, map[string]string{"result": `{"attractiveness_score":64}`}, []byte("img"))
			},
			mockFunc: func(ctx context.Context, in analysisentity.Input, result analysisentity.AnalysisResult) ([]byte, error) {
				require.NotNil(t, in.File)
				assert.Equal(t, []byte("img"), in.File.Data)
				assert.Equal(t, 64.0, result.AttractivenessScore)
				return []byte("\x89PNG"), nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "error: result missing",
			req: func(t *testing.T) *http.Request {
				return pngForm(t, nil, []byte("img"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"result must be an analysis result JSON"}`,
		},
		{
			name: "error: invalid input",
			req: func(t *testing.T) *http.Request {
				return pngForm(t, map[string]string{"result": `{}`}, nil)
			},
			mockFunc: func(ctx context.Context, in analysisentity.Input, result analysisentity.AnalysisResult) ([]byte, error) {
				return nil, analysisdomain.ErrInvalidInput
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"either a YouTube URL or an image file must be provided"}`,
		},
		{
			name: "error: thumbnail download failed",
			req: func(t *testing.T) *http.Request {
				return pngForm(t, map[string]string{"result": `{}`, "youtube_url": "https://youtu.be/abcdefghijk"}, nil)
			},
			mockFunc: func(ctx context.Context, in analysisentity.Input, result analysisentity.AnalysisResult) ([]byte, error) {
				return nil, domain.ErrImageUnavailable
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"thumbnail image could not be fetched"}`,
		},
		{
			name: "error: unexpected failure",
			req: func(t *testing.T) *http.Request {
				return pngForm(t, map[string]string{"result": `{}`}, []byte("img"))
			},
			mockFunc: func(ctx context.Context, in analysisentity.Input, result analysisentity.AnalysisResult) ([]byte, error) {
				return nil, errors.New("encoder exploded")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"encoder exploded"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&mockExportUsecase{AnnotatePNGFunc: tt.mockFunc})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, tt.req(t))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
				return
			}
			assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
			assert.Equal(t, "\x89PNG", w.Body.String())
		})
	}
}
