package service

import (
	"context"
	"testing"

	"github.com/DanRulev/lingobot.git/internal/models"
	mock_service "github.com/DanRulev/lingobot.git/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newContentServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *ContentS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}
	return NewContentService(repo, repo, repo, repo, zap.NewNop())
}

func TestContentS_AddTopic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		f       func(*mock_service.MockRepositoryI)
		want    models.Topic
		wantErr error
	}{
		{
			name:  "success",
			title: "3 🏠 Zu Hause",
			f: func(repo *mock_service.MockRepositoryI) {
				repo.EXPECT().AddTopic(gomock.Any(), "3 🏠 Zu Hause").Return(models.Topic{ID: 3, Title: "3 🏠 Zu Hause"}, nil)
			},
			want: models.Topic{ID: 3, Title: "3 🏠 Zu Hause"},
		},
		{
			name:    "empty title",
			title:   "",
			wantErr: models.ErrInvalidInput,
		},
		{
			name:  "write retried once",
			title: "Fruit",
			f: func(repo *mock_service.MockRepositoryI) {
				repo.EXPECT().AddTopic(gomock.Any(), "Fruit").Return(models.Topic{}, storageFailure("add topic")).Times(2)
			},
			wantErr: models.ErrStorage,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newContentServiceMock(t, ctrl, tt.f)
			got, err := svc.AddTopic(context.Background(), tt.title)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContentS_AddWord(t *testing.T) {
	t.Parallel()

	birne := models.Word{ID: 13, Text: "Birne", TopicID: 2, Position: 7}

	tests := []struct {
		name         string
		text         string
		translations map[string]string
		f            func(*mock_service.MockRepositoryI)
		wantErr      error
	}{
		{
			name:         "word and translations stored",
			text:         "Birne",
			translations: map[string]string{"ru": "груша", "en": "pear"},
			f: func(repo *mock_service.MockRepositoryI) {
				repo.EXPECT().Language(gomock.Any(), "ru").Return(models.Language{Code: "ru"}, nil)
				repo.EXPECT().Language(gomock.Any(), "en").Return(models.Language{Code: "en"}, nil)
				repo.EXPECT().AddWord(gomock.Any(), int64(2), "Birne").Return(birne, nil)
				gomock.InOrder(
					repo.EXPECT().AddTranslation(gomock.Any(), int64(13), "en", "pear").Return(models.Translation{ID: 50}, nil),
					repo.EXPECT().AddTranslation(gomock.Any(), int64(13), "ru", "груша").Return(models.Translation{ID: 51}, nil),
				)
			},
		},
		{
			name:         "unknown language stores nothing",
			text:         "Birne",
			translations: map[string]string{"xx": "?"},
			f: func(repo *mock_service.MockRepositoryI) {
				repo.EXPECT().Language(gomock.Any(), "xx").Return(models.Language{}, notFound("language"))
				repo.EXPECT().AddWord(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: models.ErrNotFound,
		},
		{
			name:         "no translations",
			text:         "Birne",
			translations: map[string]string{},
			wantErr:      models.ErrInvalidInput,
		},
		{
			name:         "empty translation text",
			text:         "Birne",
			translations: map[string]string{"ru": ""},
			wantErr:      models.ErrInvalidInput,
		},
		{
			name:         "unknown topic",
			text:         "Birne",
			translations: map[string]string{"ru": "груша"},
			f: func(repo *mock_service.MockRepositoryI) {
				repo.EXPECT().Language(gomock.Any(), "ru").Return(models.Language{Code: "ru"}, nil)
				repo.EXPECT().AddWord(gomock.Any(), int64(2), "Birne").Return(models.Word{}, notFound("topic"))
			},
			wantErr: models.ErrNotFound,
		},
		{
			name:         "translation write fails",
			text:         "Birne",
			translations: map[string]string{"ru": "груша"},
			f: func(repo *mock_service.MockRepositoryI) {
				repo.EXPECT().Language(gomock.Any(), "ru").Return(models.Language{Code: "ru"}, nil)
				repo.EXPECT().AddWord(gomock.Any(), int64(2), "Birne").Return(birne, nil)
				repo.EXPECT().AddTranslation(gomock.Any(), int64(13), "ru", "груша").
					Return(models.Translation{}, storageFailure("add translation")).Times(2)
			},
			wantErr: models.ErrStorage,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newContentServiceMock(t, ctrl, tt.f)
			got, err := svc.AddWord(context.Background(), 2, tt.text, tt.translations)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, birne, got)
		})
	}
}

func TestContentS_AddAudio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fileID  string
		f       func(*mock_service.MockRepositoryI)
		wantErr error
	}{
		{
			name:   "success",
			fileID: "audio-5",
			f: func(repo *mock_service.MockRepositoryI) {
				repo.EXPECT().Word(gomock.Any(), int64(5)).Return(topicWords[0], nil)
				repo.EXPECT().AddMedia(gomock.Any(), int64(5), models.MediaAudio, "audio-5").Return(nil)
			},
		},
		{
			name:   "unknown word",
			fileID: "audio-5",
			f: func(repo *mock_service.MockRepositoryI) {
				repo.EXPECT().Word(gomock.Any(), int64(5)).Return(models.Word{}, notFound("word"))
				repo.EXPECT().AddMedia(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: models.ErrNotFound,
		},
		{
			name:    "missing file id",
			fileID:  "",
			wantErr: models.ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newContentServiceMock(t, ctrl, tt.f)
			err := svc.AddAudio(context.Background(), 5, tt.fileID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
