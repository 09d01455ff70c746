// Package entity はhistoryフィーチャーのドメインモデルを定義します。
package entity

import "time"

// MaxEntries は保持する履歴の最大件数です。超えた分は古いものから削除されます。
const MaxEntries = 10

// Entry は解析1件分の履歴です。
type Entry struct {
	ID        string    `json:"id"`         // UUID
	CreatedAt time.Time `json:"created_at"` // 解析日時
	Thumbnail string    `json:"thumbnail"`  // サムネイルURLまたはファイル名
	Score     float64   `json:"score"`      // 魅力度スコア
	Source    string    `json:"source"`     // 入力元（YouTube URLまたはファイル名）
}
