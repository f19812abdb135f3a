package repository

import (
	"context"

	"shopfast/internal/domain/model"
)

// カテゴリの取得だけを約束（クライアントからは書き込まない）。
type CategoryRepository interface {
	//全カテゴリを名前順で返す
	ListAll(ctx context.Context) ([]model.Category, error)

	//slugからカテゴリIDを1件引く。無ければErrNotFound
	FindIDBySlug(ctx context.Context, slug string) (string, error)
}
