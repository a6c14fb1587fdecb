package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	ItemNotFound        failure.ErrorCode = "ItemNotFound"
	QuestNotFound       failure.ErrorCode = "QuestNotFound"
	SnapshotNotReady    failure.ErrorCode = "SnapshotNotReady"
	InvalidGameMode     failure.ErrorCode = "InvalidGameMode"
	InvalidItemID       failure.ErrorCode = "InvalidItemID"
	InvalidSearchQuery  failure.ErrorCode = "InvalidSearchQuery"
	UpstreamUnavailable failure.ErrorCode = "UpstreamUnavailable"
	UpstreamBadResponse failure.ErrorCode = "UpstreamBadResponse"
)
