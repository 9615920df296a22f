package services

import "github.com/go-kratos/kratos/v2/errors"

// 错误 reason，HTTP 层通过 kratos 默认 ErrorEncoder 输出。
const (
	ReasonVideoNotFound        = "VIDEO_NOT_FOUND"
	ReasonVideoForbidden       = "VIDEO_FORBIDDEN"
	ReasonStorageWriteFailed   = "STORAGE_WRITE_FAILED"
	ReasonVideoInvalidArgument = "VIDEO_INVALID_ARGUMENT"
	ReasonUnauthenticated      = "UNAUTHENTICATED"
	ReasonQueryTimeout         = "QUERY_TIMEOUT"
	ReasonQueryVideoFailed     = "QUERY_VIDEO_FAILED"
)

var (
	// ErrVideoNotFound 是当视频未找到时返回的哨兵错误。
	ErrVideoNotFound = errors.NotFound(ReasonVideoNotFound, "video not found")
	// ErrVideoForbidden 表示调用方不是视频所有者。
	ErrVideoForbidden = errors.Forbidden(ReasonVideoForbidden, "only the owner can modify this video")
	// ErrStorageWrite 表示媒体写入失败，未创建任何记录。
	ErrStorageWrite = errors.ServiceUnavailable(ReasonStorageWriteFailed, "failed to store media")
)

func invalidArgument(message string) *errors.Error {
	return errors.BadRequest(ReasonVideoInvalidArgument, message)
}
