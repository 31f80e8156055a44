package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAfterCommit_WithoutHooksRunsImmediately(t *testing.T) {
	called := false
	AfterCommit(context.Background(), func() { called = true })
	assert.True(t, called)
}

func TestAfterCommit_DeferredUntilRun(t *testing.T) {
	ctx, hooks := ContextWithCommitHooks(context.Background())

	var order []int
	AfterCommit(ctx, func() { order = append(order, 1) })
	AfterCommit(ctx, func() { order = append(order, 2) })
	assert.Empty(t, order)

	hooks.Run()
	assert.Equal(t, []int{1, 2}, order)

	hooks.Run()
	assert.Equal(t, []int{1, 2}, order)
}
