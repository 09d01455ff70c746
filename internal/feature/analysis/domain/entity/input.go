package entity

import "strings"

// ImageFile はアップロードされた画像ファイルです。
type ImageFile struct {
	Name string
	Data []byte
}

// Input は解析リクエストの入力です。YouTubeURLかFileのどちらか一方のみを指定します。
type Input struct {
	YouTubeURL string
	File       *ImageFile
}

// HasURL はYouTube URLが指定されているかを返します。
func (in Input) HasURL() bool {
	return strings.TrimSpace(in.YouTubeURL) != ""
}

// HasFile は画像ファイルが指定されているかを返します。
func (in Input) HasFile() bool {
	return in.File != nil && len(in.File.Data) > 0
}

// Source は入力の出所（URLまたはファイル名）を返します。
func (in Input) Source() string {
	if in.HasURL() {
		return strings.TrimSpace(in.YouTubeURL)
	}
	if in.File != nil {
		return in.File.Name
	}
	return ""
}
