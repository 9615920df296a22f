// Package mediastore 封装媒体二进制对象的持久化，屏蔽 S3 与本地文件系统的差异。
//
// 对外只暴露 locator（绝对 URL），对象 key 始终由 locator 推导，
// 因此写入方与删除方不需要共享任何额外状态。
package mediastore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-kratos/kratos/v2/log"
)

// Category 决定对象 key 的一级目录。
type Category string

// 支持的对象分类。
const (
	CategoryVideos  Category = "videos"
	CategoryAvatars Category = "avatars"
)

// Backend 名称。
const (
	BackendS3    = "s3"
	BackendLocal = "local"
)

var (
	// ErrStorageWrite 表示对象写入失败（I/O 错误或后端拒绝）。
	ErrStorageWrite = errors.New("mediastore: storage write failed")
	// ErrStorageDelete 表示后端拒绝删除。对象本就不存在不会返回该错误。
	ErrStorageDelete = errors.New("mediastore: storage delete failed")
	// ErrInvalidLocator 表示无法从 locator 推导出对象 key。
	ErrInvalidLocator = errors.New("mediastore: invalid locator")
	// ErrObjectNotFound 表示 Open 的对象不存在。
	ErrObjectNotFound = errors.New("mediastore: object not found")
)

// Upload 描述一次待写入的对象。
type Upload struct {
	Body        io.Reader
	Size        int64 // 未知时为 -1
	Filename    string
	ContentType string // 为空时按内容嗅探
	Category    Category
}

// Store 是媒体存储适配器。实现必须并发安全。
type Store interface {
	// Put 持久化对象并返回绝对 URL 形式的 locator。
	Put(ctx context.Context, upload Upload) (string, error)
	// Delete 删除 locator 指向的对象，对象不存在视为成功。
	Delete(ctx context.Context, locator string) error
	// Exists 判断 locator 指向的对象是否存在。
	Exists(ctx context.Context, locator string) (bool, error)
	// Open 读取对象内容，调用方负责关闭。
	Open(ctx context.Context, locator string) (io.ReadCloser, error)
}

// Config 描述媒体存储配置。
type Config struct {
	Backend         string
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
	PublicBaseURL   string
	LocalRoot       string
}

// NewStore 按配置构建唯一的 Store 实例，只在启动时调用一次。
func NewStore(ctx context.Context, cfg Config, logger log.Logger) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case BackendS3:
		return NewS3Store(ctx, cfg, logger)
	case BackendLocal, "":
		return NewLocalStore(cfg, logger)
	default:
		return nil, fmt.Errorf("mediastore: unsupported backend %q", cfg.Backend)
	}
}
