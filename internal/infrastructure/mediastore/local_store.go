package mediastore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
)

// LocalStore 将对象写入本地目录，用于开发与测试。
type LocalStore struct {
	root     string
	base     string
	basePath string
	log      *log.Helper
	now      func() time.Time
}

// NewLocalStore 构造 LocalStore，root 不存在时自动创建。
func NewLocalStore(cfg Config, logger log.Logger) (*LocalStore, error) {
	root := strings.TrimSpace(cfg.LocalRoot)
	if root == "" {
		return nil, fmt.Errorf("mediastore: local root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("mediastore: create local root: %w", err)
	}
	base, basePath, err := publicBase(cfg.PublicBaseURL)
	if err != nil {
		return nil, err
	}
	return &LocalStore{
		root:     root,
		base:     base,
		basePath: basePath,
		log:      log.NewHelper(log.With(logger, "component", "mediastore.local")),
		now:      time.Now,
	}, nil
}

// Put 先写临时文件再 rename，失败时不留下半截对象。
func (s *LocalStore) Put(ctx context.Context, upload Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}
	prepared, err := prepareUpload(upload, s.now())
	if err != nil {
		return "", err
	}

	target := s.pathFor(prepared.key)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("%w: mkdir: %w", ErrStorageWrite, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("%w: create temp: %w", ErrStorageWrite, err)
	}
	tmpName := tmp.Name()

	_, copyErr := io.Copy(tmp, &ctxReader{ctx: ctx, r: prepared.body})
	closeErr := tmp.Close()
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr == nil {
		copyErr = os.Rename(tmpName, target)
	}
	if copyErr != nil {
		_ = os.Remove(tmpName)
		s.log.WithContext(ctx).Errorf("write object failed: key=%s err=%v", prepared.key, copyErr)
		return "", fmt.Errorf("%w: write %s: %w", ErrStorageWrite, prepared.key, copyErr)
	}

	s.log.WithContext(ctx).Infof("object stored: key=%s content_type=%s", prepared.key, prepared.contentType)
	return joinLocator(s.base, prepared.key), nil
}

// Delete 实现 Store，文件不存在视为成功。
func (s *LocalStore) Delete(ctx context.Context, locator string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageDelete, err)
	}
	key, err := ObjectKeyFromLocator(locator, s.basePath)
	if err != nil {
		return err
	}
	if err := os.Remove(s.pathFor(key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		s.log.WithContext(ctx).Errorf("delete object failed: key=%s err=%v", key, err)
		return fmt.Errorf("%w: delete %s: %w", ErrStorageDelete, key, err)
	}
	s.log.WithContext(ctx).Infof("object deleted: key=%s", key)
	return nil
}

// Exists 实现 Store。
func (s *LocalStore) Exists(_ context.Context, locator string) (bool, error) {
	key, err := ObjectKeyFromLocator(locator, s.basePath)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(s.pathFor(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("mediastore: stat %s: %w", key, err)
	}
	return info.Mode().IsRegular(), nil
}

// Open 实现 Store。
func (s *LocalStore) Open(_ context.Context, locator string) (io.ReadCloser, error) {
	key, err := ObjectKeyFromLocator(locator, s.basePath)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(s.pathFor(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return nil, fmt.Errorf("mediastore: open %s: %w", key, err)
	}
	return file, nil
}

func (s *LocalStore) pathFor(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}

// ctxReader 让长时间的拷贝能被 ctx 取消。
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
