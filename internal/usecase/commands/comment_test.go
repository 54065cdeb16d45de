//go:build unit

package commands_test

import (
	"context"
	"testing"

	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCommands_Add(t *testing.T) {
	ctx := context.Background()

	seed := func(uow *fakeUoW, eligible bool) {
		uow.tx.reads.users[2] = &shared.UserSnapshot{ID: 2, Name: "alice", Email: "alice@example.com"}
		uow.tx.reads.items[5] = &shared.ItemSnapshot{ID: 5, Name: "drill", Available: true, OwnerID: 1}
		if eligible {
			uow.tx.reads.pastBookings[pastBookingKey{bookerID: 2, itemID: 5}] = true
		}
	}

	t.Run("eligible author", func(t *testing.T) {
		uow := newFakeUoW()
		seed(uow, true)

		uc := commands.NewCommentUseCase(uow, clock.NewMockClock(fixedNow))
		result, err := uc.Add(ctx, 2, 5, commands.AddCommentRequest{Text: "works great"})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, int64(1), result.ID)
		assert.Equal(t, "works great", result.Text)
		assert.Equal(t, "alice", result.AuthorName)
		assert.Equal(t, fixedNow, result.Created)
		require.Len(t, uow.tx.comments.created, 1)
	})

	t.Run("text is trimmed", func(t *testing.T) {
		uow := newFakeUoW()
		seed(uow, true)

		uc := commands.NewCommentUseCase(uow, clock.NewMockClock(fixedNow))
		result, err := uc.Add(ctx, 2, 5, commands.AddCommentRequest{Text: "  padded  "})

		require.NoError(t, err)
		assert.Equal(t, "padded", result.Text)
	})

	t.Run("unknown author", func(t *testing.T) {
		uow := newFakeUoW()
		seed(uow, true)

		uc := commands.NewCommentUseCase(uow, clock.NewMockClock(fixedNow))
		_, err := uc.Add(ctx, 404, 5, commands.AddCommentRequest{Text: "hi"})

		require.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		uow := newFakeUoW()
		seed(uow, true)

		uc := commands.NewCommentUseCase(uow, clock.NewMockClock(fixedNow))
		_, err := uc.Add(ctx, 2, 404, commands.AddCommentRequest{Text: "hi"})

		require.ErrorIs(t, err, errs.ErrItemNotFound)
	})

	t.Run("no finished booking", func(t *testing.T) {
		uow := newFakeUoW()
		seed(uow, false)

		uc := commands.NewCommentUseCase(uow, clock.NewMockClock(fixedNow))
		_, err := uc.Add(ctx, 2, 5, commands.AddCommentRequest{Text: "hi"})

		require.ErrorIs(t, err, errs.ErrCommentWithoutBooking)
		assert.Empty(t, uow.tx.comments.created)
	})

	t.Run("blank text", func(t *testing.T) {
		uow := newFakeUoW()
		seed(uow, true)

		uc := commands.NewCommentUseCase(uow, clock.NewMockClock(fixedNow))
		_, err := uc.Add(ctx, 2, 5, commands.AddCommentRequest{Text: "   "})

		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}
