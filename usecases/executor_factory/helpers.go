package executor_factory

import (
	"context"

	"github.com/amanahq/amana-backend/repositories"
)

// TransactionReturnValue runs fn inside a transaction and surfaces its
// return value, which the Transaction signature alone cannot do.
func TransactionReturnValue[ReturnType any](
	ctx context.Context,
	factory TransactionFactory,
	fn func(tx repositories.Transaction) (ReturnType, error),
) (ReturnType, error) {
	var value ReturnType
	transactionErr := factory.Transaction(ctx, func(tx repositories.Transaction) error {
		var fnErr error
		value, fnErr = fn(tx)
		return fnErr
	})
	return value, transactionErr
}
