package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/semestra/semestra/internal/shared/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUnitOfWork struct {
	began      bool
	committed  bool
	rolledBack bool
	beginErr   error
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	f.began = true
	return ctx, nil
}

func (f *fakeUnitOfWork) Commit(ctx context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeUnitOfWork) Rollback(ctx context.Context) error {
	f.rolledBack = true
	return nil
}

func TestWithUnitOfWork_CommitsOnSuccess(t *testing.T) {
	uow := &fakeUnitOfWork{}

	err := application.WithUnitOfWork(context.Background(), uow, func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.True(t, uow.began)
	assert.True(t, uow.committed)
	assert.False(t, uow.rolledBack)
}

func TestWithUnitOfWork_RollsBackOnError(t *testing.T) {
	uow := &fakeUnitOfWork{}
	boom := errors.New("boom")

	err := application.WithUnitOfWork(context.Background(), uow, func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.True(t, uow.rolledBack)
	assert.False(t, uow.committed)
}

func TestWithUnitOfWork_BeginFailure(t *testing.T) {
	boom := errors.New("no connection")
	uow := &fakeUnitOfWork{beginErr: boom}

	err := application.WithUnitOfWork(context.Background(), uow, func(ctx context.Context) error {
		t.Fatal("fn must not run when Begin fails")
		return nil
	})

	assert.ErrorIs(t, err, boom)
}
