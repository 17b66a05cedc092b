package interfaces

import (
	"context"
	"errors"
	"time"

	"instant_offer/internal/domain/entities"
)

var (
	// ErrVersionConflict is returned by Save when the stored version no longer
	// matches the expected one.
	ErrVersionConflict = errors.New("quote version conflict")
	// ErrDuplicateQuoteID is returned by Create when the quote id is taken.
	ErrDuplicateQuoteID = errors.New("quote id already exists")
)

// QuoteFilter narrows List. Zero values mean "no constraint".
type QuoteFilter struct {
	Status        entities.QuoteStatus
	CreatedAfter  time.Time
	CreatedBefore time.Time
	// ExpiredAt matches quotes still in an open status whose expiry is
	// before this instant.
	ExpiredAt time.Time
	// ActiveAt matches quotes whose expiry is not before this instant.
	ActiveAt time.Time
	Limit    int
}

// IQuoteRepository abstracts persistence for Quote.
//
// Lookups return a zero Quote (empty QuoteID) and a nil error when nothing
// matches. Save is a compare-and-swap on Version: the stored version must
// equal expectedVersion, and the saved quote carries the new version.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, quoteID string) (entities.Quote, error)
	GetByAccessToken(ctx context.Context, token string) (entities.Quote, error)
	Save(ctx context.Context, q entities.Quote, expectedVersion int64) (entities.Quote, error)
	List(ctx context.Context, filter QuoteFilter) ([]entities.Quote, error)
}
