package interfaces

import (
	"context"
	"errors"
)

var ErrLockTimeout = errors.New("timed out waiting for quote lock")

// IQuoteLocker serializes mutations of a single quote. There is no
// cross-quote locking.
type IQuoteLocker interface {
	Lock(ctx context.Context, quoteID string) (unlock func(), err error)
}
