package shared

import "context"

// TransactionManager runs a function inside a single transactional scope.
// Repository calls made with the context passed to fn join that scope;
// any error returned by fn rolls back every write made inside it.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
