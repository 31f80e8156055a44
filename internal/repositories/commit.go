package repositories

import "context"

type commitHooksKey struct{}

// CommitHooks collects callbacks that must only run once the request
// transaction has committed. They are dropped on rollback.
type CommitHooks struct {
	fns []func()
}

// ContextWithCommitHooks attaches an empty hook list to ctx.
func ContextWithCommitHooks(ctx context.Context) (context.Context, *CommitHooks) {
	hooks := &CommitHooks{}
	return context.WithValue(ctx, commitHooksKey{}, hooks), hooks
}

// Run calls the registered callbacks in registration order.
func (h *CommitHooks) Run() {
	for _, fn := range h.fns {
		fn()
	}
	h.fns = nil
}

// AfterCommit defers fn until the transaction bound to ctx commits.
// Without a hook list in ctx there is no pending transaction and fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	if hooks, ok := ctx.Value(commitHooksKey{}).(*CommitHooks); ok {
		hooks.fns = append(hooks.fns, fn)
		return
	}
	fn()
}
