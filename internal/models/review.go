package models

import "time"

type Review struct {
	ID        int64      `db:"id"`
	UserID    int64      `db:"user_id"`
	WordID    int64      `db:"element_id"`
	Count     int        `db:"count"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// LastTouched is the moment the review was last updated, or created if it
// never was.
func (r Review) LastTouched() time.Time {
	if r.UpdatedAt != nil {
		return *r.UpdatedAt
	}
	return r.CreatedAt
}

type RetentionTier int

const (
	TierForgotten RetentionTier = iota + 1
	TierWeak
	TierHalf
	TierStrong
	TierMastered
)

func (t RetentionTier) Symbol() string {
	switch t {
	case TierForgotten:
		return "🌑"
	case TierWeak:
		return "🌒"
	case TierHalf:
		return "🌓"
	case TierStrong:
		return "🌔"
	case TierMastered:
		return "🌕"
	default:
		return "?"
	}
}

type Option struct {
	Text     string `json:"text"`
	OptionID int64  `json:"option_id"`
}

type PromptView struct {
	UserID          int64
	TopicID         int64
	WordID          int64
	ReviewID        int64
	WordText        string
	Tier            RetentionTier
	Options         []Option
	CorrectOptionID int64
	AudioFileID     string
}

func (v PromptView) State() PromptState {
	return PromptState{
		UserID:          v.UserID,
		TopicID:         v.TopicID,
		WordID:          v.WordID,
		ReviewID:        v.ReviewID,
		CorrectOptionID: v.CorrectOptionID,
	}
}

// PromptState is what has to be remembered between showing a card and
// grading the answer.
type PromptState struct {
	UserID          int64 `json:"user_id"`
	TopicID         int64 `json:"topic_id"`
	WordID          int64 `json:"word_id"`
	ReviewID        int64 `json:"review_id"`
	CorrectOptionID int64 `json:"correct_option_id"`
}

type GradeResult struct {
	Correct bool
	WordID  int64
}
