package storage

import (
	"context"
	"io"
)

// Storage は生成済みドキュメント（請求書 PDF の控えなど）の保存・削除を
// 抽象化するインターフェース。ローカルファイルシステム実装の他、
// S3 / Cloudflare R2 等に差し替え可能。
type Storage interface {
	// Save はドキュメントを保存し、保存先のパスを返す。
	// key はストレージ内の一意パス (例: "invoices/2026/INV-7.pdf")。
	Save(ctx context.Context, key string, data io.Reader) (path string, err error)

	// Delete は key に対応するドキュメントを削除する。
	Delete(ctx context.Context, key string) error
}
