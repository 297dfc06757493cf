package support

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/salapeso/savings-api/internal/domain/error"
	coremocks "github.com/salapeso/savings-api/mocks/port/core"
	persistencemocks "github.com/salapeso/savings-api/mocks/port/persistence"
)

func newService(hearts *persistencemocks.MockSupportRepository) *Service {
	logger := new(coremocks.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()

	random := new(coremocks.MockRandomSource)
	random.On("NewID").Return("heart-1").Maybe()

	return NewService(hearts, random, logger).(*Service)
}

func TestService_Status(t *testing.T) {
	t.Run("anonymous caller sees only the count", func(t *testing.T) {
		hearts := new(persistencemocks.MockSupportRepository)
		hearts.On("Count", mock.Anything).Return(int64(42), nil)

		status, err := newService(hearts).Status(context.Background(), "")

		assert.NoError(t, err)
		assert.Equal(t, int64(42), status.Count)
		assert.False(t, status.HasHearted)
		hearts.AssertNotCalled(t, "HasHearted", mock.Anything, mock.Anything)
	})

	t.Run("authenticated caller sees their own state", func(t *testing.T) {
		hearts := new(persistencemocks.MockSupportRepository)
		hearts.On("Count", mock.Anything).Return(int64(42), nil)
		hearts.On("HasHearted", mock.Anything, "user-1").Return(true, nil)

		status, err := newService(hearts).Status(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.True(t, status.HasHearted)
	})
}

func TestService_Toggle(t *testing.T) {
	t.Run("adds a heart when none exists", func(t *testing.T) {
		hearts := new(persistencemocks.MockSupportRepository)
		hearts.On("HasHearted", mock.Anything, "user-1").Return(false, nil)
		hearts.On("Add", mock.Anything, "heart-1", "user-1").Return(nil)
		hearts.On("Count", mock.Anything).Return(int64(43), nil)

		status, err := newService(hearts).Toggle(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.True(t, status.HasHearted)
		assert.Equal(t, int64(43), status.Count)
	})

	t.Run("removes an existing heart", func(t *testing.T) {
		hearts := new(persistencemocks.MockSupportRepository)
		hearts.On("HasHearted", mock.Anything, "user-1").Return(true, nil)
		hearts.On("Remove", mock.Anything, "user-1").Return(nil)
		hearts.On("Count", mock.Anything).Return(int64(41), nil)

		status, err := newService(hearts).Toggle(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.False(t, status.HasHearted)
		assert.Equal(t, int64(41), status.Count)
	})

	t.Run("anonymous caller cannot toggle", func(t *testing.T) {
		hearts := new(persistencemocks.MockSupportRepository)

		_, err := newService(hearts).Toggle(context.Background(), "")

		assert.ErrorIs(t, err, errs.ErrTokenInvalid)
		hearts.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	})
}
