package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"thumblytics/internal/feature/analysis/domain/entity"
)

// ReadInput はフォームから解析入力を読み取ります。
// urlFieldの値とfileFieldのファイルのどちらか（または両方）を詰めて返し、排他チェックはusecaseに任せます。
// ファイルはmaxBytes+1バイトまでしか読まないため、超過はusecase側のサイズ検証で検出されます。
func ReadInput(c *gin.Context, urlField, fileField string, maxBytes int64) (entity.Input, error) {
	in := entity.Input{YouTubeURL: c.PostForm(urlField)}

	fh, err := c.FormFile(fileField)
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return in, nil
	case err != nil:
		return in, fmt.Errorf("read form file %q: %w", fileField, err)
	}

	f, err := fh.Open()
	if err != nil {
		return in, fmt.Errorf("open form file %q: %w", fileField, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return in, fmt.Errorf("read form file %q: %w", fileField, err)
	}
	in.File = &entity.ImageFile{Name: fh.Filename, Data: data}
	return in, nil
}
