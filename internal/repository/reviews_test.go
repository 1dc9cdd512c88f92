package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DanRulev/lingobot.git/internal/models"
	mock_repository "github.com/DanRulev/lingobot.git/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewsMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *ReviewsR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}
	return &ReviewsR{db: db}
}

func TestReviewsR_Review(t *testing.T) {
	t.Parallel()

	stored := models.Review{ID: 7, UserID: 1, WordID: 5, Count: 3, CreatedAt: time.Now()}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.Review
		wantErr error
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&stored), gomock.Any(), int64(1), int64(5)).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*models.Review) = stored
						return nil
					})
			},
			want: stored,
		},
		{
			name: "no rows",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
			wantErr: models.ErrNotFound,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("conn reset"))
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

			repo := newReviewsMock(t, ctrl, tt.f)
			got, err := repo.Review(context.Background(), 1, 5)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReviewsR_CreateReview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), int64(1), int64(5)).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						assert.Contains(t, query, "ON CONFLICT (user_id, element_id)")
						*dest.(*models.Review) = models.Review{ID: 9, UserID: 1, WordID: 5}
						return nil
					})
			},
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newReviewsMock(t, ctrl, tt.f)
			got, err := repo.CreateReview(context.Background(), 1, 5)
			if tt.wantErr {
				require.ErrorIs(t, err, models.ErrStorage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(9), got.ID)
			assert.Equal(t, 0, got.Count)
		})
	}
}

func TestReviewsR_IncrementReview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr error
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), int64(9)).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						assert.Contains(t, query, "count = count + 1")
						now := time.Now()
						*dest.(*models.Review) = models.Review{ID: 9, Count: 4, UpdatedAt: &now}
						return nil
					})
			},
		},
		{
			name: "missing review",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
			wantErr: models.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newReviewsMock(t, ctrl, tt.f)
			got, err := repo.IncrementReview(context.Background(), 9)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 4, got.Count)
			require.NotNil(t, got.UpdatedAt)
		})
	}
}
