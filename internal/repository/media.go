package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/lingobot.git/internal/models"
)

type MediaR struct {
	db QueryI
}

func NewMediaRepository(db QueryI) *MediaR {
	return &MediaR{db: db}
}

func (m *MediaR) WordMedia(ctx context.Context, wordID int64, contentType string) (models.Media, error) {
	query := `
		SELECT id, element_id, content_type, file_id
		FROM media
		WHERE element_id = $1 AND content_type = $2
		ORDER BY id DESC
		LIMIT 1
	`

	var media models.Media
	if err := m.db.GetContext(ctx, &media, query, wordID, contentType); err != nil {
		return models.Media{}, dbError(fmt.Sprintf("%s of word %d", contentType, wordID), err)
	}
	return media, nil
}

func (m *MediaR) AddMedia(ctx context.Context, wordID int64, contentType, fileID string) error {
	query := `INSERT INTO media (element_id, content_type, file_id) VALUES ($1, $2, $3)`

	if _, err := m.db.ExecContext(ctx, query, wordID, contentType, fileID); err != nil {
		return dbError(fmt.Sprintf("add %s to word %d", contentType, wordID), err)
	}
	return nil
}
