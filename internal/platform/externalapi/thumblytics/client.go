package thumblytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"thumblytics/internal/feature/analysis/domain"
	"thumblytics/internal/feature/analysis/domain/entity"
	"thumblytics/internal/feature/analysis/usecase"
	"thumblytics/internal/platform/externalapi/thumblytics/dto"
)

const (
	analyzePath   = "/analyze-thumbnail"
	fieldURL      = "youtube_url"
	fieldFile     = "file"
	maxErrorBytes = 64 * 1024
)

// Client はサムネイル解析APIを呼び出すThumbnailAnalyzer実装です。
// 1回の呼び出しにつき1回だけリクエストを送信し、リトライもキャッシュも行いません。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがThumbnailAnalyzerを実装していることをコンパイル時に検証します。
var _ usecase.ThumbnailAnalyzer = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: cfg.withDefaults().Timeout}
	}
	return &Client{cfg: cfg.withDefaults(), client: client}
}

// BaseURL は接続先のベースURLを返します。
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

// AnalyzeThumbnail はYouTube URLまたは画像ファイルを解析APIに送信し、解析結果を返します。
func (c *Client) AnalyzeThumbnail(ctx context.Context, in entity.Input) (*entity.AnalysisResult, error) {
	// URLとファイルはどちらか一方のみ
	if in.HasURL() == in.HasFile() {
		return nil, domain.ErrInvalidInput
	}

	body, contentType, err := encodeForm(in)
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+analyzePath, body)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &domain.ServerError{
			StatusCode: res.StatusCode,
			Detail:     readDetail(res),
		}
	}

	var out dto.AnalyzeResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, &domain.ParseError{Err: err}
	}
	return toEntity(out), nil
}

// encodeForm はマルチパートのリクエストボディを組み立てます。
func encodeForm(in entity.Input) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	if in.HasURL() {
		if err := w.WriteField(fieldURL, strings.TrimSpace(in.YouTubeURL)); err != nil {
			return nil, "", err
		}
	} else {
		name := in.File.Name
		if name == "" {
			name = "thumbnail"
		}
		part, err := w.CreateFormFile(fieldFile, name)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(in.File.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// readDetail はエラーレスポンスから"detail"文字列を取り出します。
// 取り出せない場合はHTTPステータステキストを返します。
func readDetail(res *http.Response) string {
	fallback := http.StatusText(res.StatusCode)
	if fallback == "" {
		fallback = res.Status
	}

	var body dto.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(res.Body, maxErrorBytes)).Decode(&body); err != nil {
		return fallback
	}
	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err != nil || strings.TrimSpace(detail) == "" {
		return fallback
	}
	return detail
}

// toEntity はDTOをドメインエンティティに変換します。
func toEntity(r dto.AnalyzeResponse) *entity.AnalysisResult {
	objects := make([]entity.DetectedObject, 0, len(r.DetectedObjects))
	for _, o := range r.DetectedObjects {
		bbox := o.BBox
		if len(bbox) == 0 {
			bbox = o.BBoxNormalized
		}
		objects = append(objects, entity.DetectedObject{
			Label:             o.Label,
			Confidence:        o.Confidence,
			BBox:              bbox,
			ContrastScoreVsBG: o.ContrastScoreVsBG,
			Position:          o.Position,
			ElementType:       o.ElementType,
			Emotion:           o.Emotion,
		})
	}
	colors := r.DominantColors
	if colors == nil {
		colors = []string{}
	}
	suggestions := r.AISuggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return &entity.AnalysisResult{
		AverageBrightness:   r.AverageBrightness,
		ContrastLevel:       r.ContrastLevel,
		DominantColors:      colors,
		WordCount:           r.WordCount,
		TextContent:         r.TextContent,
		FaceCount:           r.FaceCount,
		DetectedEmotion:     r.DetectedEmotion,
		DetectedObjects:     objects,
		AttractivenessScore: r.AttractivenessScore,
		AISuggestions:       suggestions,
	}
}
