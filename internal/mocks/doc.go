// Package mocks provides shared test doubles for the store, auth and
// service interfaces.
//
// Store mocks are in-memory implementations that enforce the same
// uniqueness rules as the PostgreSQL stores; every method can be
// overridden through a function field. Service mocks are built on
// testify's mock.Mock for expectation-style handler tests.
//
//	users := mocks.NewMockUserStore()
//	users.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
//	    return nil, errors.New("connection reset")
//	}
package mocks
