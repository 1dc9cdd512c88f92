package models

type Topic struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
}

// Word is a vocabulary entry. Position orders words inside a topic.
type Word struct {
	ID       int64  `db:"id"`
	Text     string `db:"text"`
	TopicID  int64  `db:"topic_id"`
	Position int    `db:"position"`
}

type Translation struct {
	ID           int64  `db:"id"`
	WordID       int64  `db:"element_id"`
	LanguageCode string `db:"language_code"`
	Text         string `db:"text"`
}

const MediaAudio = "audio"

// Media is a Telegram file attached to a word, stored by file_id.
type Media struct {
	ID          int64  `db:"id"`
	WordID      int64  `db:"element_id"`
	ContentType string `db:"content_type"`
	FileID      string `db:"file_id"`
}
