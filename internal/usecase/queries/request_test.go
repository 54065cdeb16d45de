//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	queriesmock "shareit/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRequestQueries_ListByOthers(t *testing.T) {
	ctx := context.Background()

	t.Run("lists other users' requests with their items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := queriesmock.NewMockRequestReadStore(ctrl)
		items := queriesmock.NewMockItemReadStore(ctrl)
		users := queriesmock.NewMockUserReadStore(ctrl)

		page := queries.Page{Limit: 10, Offset: 0}
		created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
		rv := &queries.RequestView{ID: 8, Description: "need a ladder", Created: created}
		offered := []*queries.ItemView{{ID: 3, Name: "ladder", Available: true}}

		users.EXPECT().FindByID(ctx, int64(2)).Return(&queries.UserView{ID: 2}, nil)
		repo.EXPECT().FindByOthers(ctx, int64(2), page).Return([]*queries.RequestView{rv}, nil)
		items.EXPECT().FindByRequest(ctx, int64(8)).Return(offered, nil)

		q := queries.NewRequestQueries(repo, items, users)
		got, err := q.ListByOthers(ctx, 2, page)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Empty(t, cmp.Diff(&queries.RequestDetails{RequestView: *rv, Items: offered}, got[0]))
	})

	t.Run("unknown user gets not found before the store is consulted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := queriesmock.NewMockRequestReadStore(ctrl)
		items := queriesmock.NewMockItemReadStore(ctrl)
		users := queriesmock.NewMockUserReadStore(ctrl)

		users.EXPECT().FindByID(ctx, int64(9999)).Return(nil, notFoundErr("user not found"))

		q := queries.NewRequestQueries(repo, items, users)
		got, err := q.ListByOthers(ctx, 9999, queries.Page{})

		require.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, got)
	})
}

func TestRequestQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("missing request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := queriesmock.NewMockRequestReadStore(ctrl)
		items := queriesmock.NewMockItemReadStore(ctrl)
		users := queriesmock.NewMockUserReadStore(ctrl)

		users.EXPECT().FindByID(ctx, int64(2)).Return(&queries.UserView{ID: 2}, nil)
		repo.EXPECT().FindByID(ctx, int64(77)).Return(nil, notFoundErr("request not found"))

		q := queries.NewRequestQueries(repo, items, users)
		_, err := q.GetByID(ctx, 2, 77)

		require.ErrorIs(t, err, errs.ErrRequestNotFound)
	})
}
