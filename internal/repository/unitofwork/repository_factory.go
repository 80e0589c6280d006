package unitofwork

import "context"

// RepositoryFactory hands out a fresh unit of work per request. The chat
// service never shares a UoW across queries.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
