package server

import (
	"git.appkode.ru/pub/go/failure"

	"tarkov_market/internal/domain"
	"tarkov_market/pkg/errcodes"
)

// asHTTPError maps domain error codes onto the HTTP error categories the
// reply layer understands. Unknown errors fall through and render as 500.
func asHTTPError(err error) error {
	code, ok := domain.GetCode(err)
	if !ok {
		return err
	}

	switch code {
	case errcodes.InvalidGameMode, errcodes.InvalidItemID, errcodes.InvalidSearchQuery:
		return failure.NewInvalidArgumentErrorFromError(err, failure.WithCode(code))
	case errcodes.ItemNotFound, errcodes.QuestNotFound, errcodes.SnapshotNotReady:
		return failure.NewNotFoundErrorFromError(err, failure.WithCode(code))
	default:
		return err
	}
}
