package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/sparknest-admin/internal/adapter"
	"github.com/MKhiriev/sparknest-admin/internal/logger"
	"github.com/MKhiriev/sparknest-admin/internal/mock"
	"github.com/MKhiriev/sparknest-admin/models"
)

func TestClientResourceService_PassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientResourceService(mockAdapter, logger.Nop())
	ctx := context.Background()

	article := models.Entity{"title": "Hello"}
	stored := models.Entity{"id": float64(3), "title": "Hello"}

	mockAdapter.EXPECT().List(ctx, models.Articles).Return([]models.Entity{stored}, nil)
	mockAdapter.EXPECT().Create(ctx, models.Articles, article).Return(stored, nil)
	mockAdapter.EXPECT().Update(ctx, models.Articles, models.ID("3"), article).Return(stored, nil)
	mockAdapter.EXPECT().Delete(ctx, models.Articles, models.ID("3")).Return(nil)
	mockAdapter.EXPECT().MarkRead(ctx, models.ID("8")).Return(nil)

	items, err := svc.List(ctx, models.Articles)
	require.NoError(t, err)
	assert.Equal(t, []models.Entity{stored}, items)

	created, err := svc.Create(ctx, models.Articles, article)
	require.NoError(t, err)
	assert.Equal(t, models.ID("3"), created.ID())

	_, err = svc.Update(ctx, models.Articles, "3", article)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, models.Articles, "3"))
	require.NoError(t, svc.MarkRead(ctx, "8"))
}

func TestClientResourceService_ErrorsAreNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientResourceService(mockAdapter, logger.Nop())
	ctx := context.Background()

	// ровно один вызов: повторов нет
	mockAdapter.EXPECT().Delete(ctx, models.Projects, models.ID("1")).Return(adapter.ErrNetwork).Times(1)
	mockAdapter.EXPECT().List(ctx, models.Projects).Return(nil, adapter.ErrForbidden).Times(1)

	assert.ErrorIs(t, svc.Delete(ctx, models.Projects, "1"), adapter.ErrNetwork)

	_, err := svc.List(ctx, models.Projects)
	assert.True(t, errors.Is(err, adapter.ErrForbidden))
}
