package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/lingobot.git/internal/models"
)

type WordsR struct {
	db QueryI
}

func NewWordsRepository(db QueryI) *WordsR {
	return &WordsR{db: db}
}

func (w *WordsR) Word(ctx context.Context, id int64) (models.Word, error) {
	query := `SELECT id, text, topic_id, position FROM elements WHERE id = $1`

	var word models.Word
	if err := w.db.GetContext(ctx, &word, query, id); err != nil {
		return models.Word{}, dbError(fmt.Sprintf("word %d", id), err)
	}
	return word, nil
}

func (w *WordsR) WordsInTopic(ctx context.Context, topicID int64) ([]models.Word, error) {
	query := `
		SELECT id, text, topic_id, position
		FROM elements
		WHERE topic_id = $1
		ORDER BY position, id
	`

	words := make([]models.Word, 0)
	if err := w.db.SelectContext(ctx, &words, query, topicID); err != nil {
		return nil, dbError(fmt.Sprintf("words of topic %d", topicID), err)
	}
	return words, nil
}

func (w *WordsR) Topics(ctx context.Context) ([]models.Topic, error) {
	query := `SELECT id, title FROM topics ORDER BY id`

	topics := make([]models.Topic, 0)
	if err := w.db.SelectContext(ctx, &topics, query); err != nil {
		return nil, dbError("topics", err)
	}
	return topics, nil
}

func (w *WordsR) AddTopic(ctx context.Context, title string) (models.Topic, error) {
	query := `INSERT INTO topics (title) VALUES ($1) RETURNING id, title`

	var topic models.Topic
	if err := w.db.GetContext(ctx, &topic, query, title); err != nil {
		return models.Topic{}, dbError("add topic", err)
	}
	return topic, nil
}

// AddWord appends a word to the end of the topic.
func (w *WordsR) AddWord(ctx context.Context, topicID int64, text string) (models.Word, error) {
	query := `
		INSERT INTO elements (text, topic_id, position)
		VALUES ($1, $2, (SELECT COALESCE(MAX(position), 0) + 1 FROM elements WHERE topic_id = $2))
		RETURNING id, text, topic_id, position
	`

	var word models.Word
	if err := w.db.GetContext(ctx, &word, query, text, topicID); err != nil {
		return models.Word{}, dbError(fmt.Sprintf("add word to topic %d", topicID), err)
	}
	return word, nil
}
