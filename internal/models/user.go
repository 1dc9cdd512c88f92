package models

import "time"

type Language struct {
	Code  string `db:"code"`
	Title string `db:"title"`
}

type User struct {
	ID           int64      `db:"id"`
	Username     string     `db:"username"`
	TgFirstName  string     `db:"tg_first_name"`
	TgLastName   string     `db:"tg_last_name"`
	TgUsername   string     `db:"tg_username"`
	LanguageCode string     `db:"language_code"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

const (
	StageNone          = ""
	StageRegLanguage   = "reg_language"
	StageRegNickname   = "reg_nickname"
	StageRegConfirm    = "reg_confirm"
	StageTranslateSrc  = "tr_src"
	StageTranslateDst  = "tr_dst"
	StageTranslateText = "tr_text"
)

// Session is the per-user dialog state of the multi-step flows.
type Session struct {
	Stage        string `json:"stage"`
	Nickname     string `json:"nickname,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	SourceLang   string `json:"source_lang,omitempty"`
	TargetLang   string `json:"target_lang,omitempty"`
}
