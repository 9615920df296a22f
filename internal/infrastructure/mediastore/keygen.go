package mediastore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/oklog/ulid/v2"
)

// sniffLen 与 mimetype 默认读取上限一致。
const sniffLen = 3072

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

func newULID(now time.Time) ulid.ULID {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), entropy)
}

// preparedUpload 是嗅探后的上传内容。
type preparedUpload struct {
	key         string
	contentType string
	body        io.Reader
}

// prepareUpload 生成 <category>/<ulid><ext> 形式的 key，并确定 Content-Type。
// 读取过的头部会被拼回 body；可 Seek 的 body 直接回到起点。
func prepareUpload(upload Upload, now time.Time) (preparedUpload, error) {
	if upload.Body == nil {
		return preparedUpload{}, fmt.Errorf("%w: empty body", ErrStorageWrite)
	}
	category := upload.Category
	if category == "" {
		category = CategoryVideos
	}

	header := make([]byte, sniffLen)
	n, err := io.ReadFull(upload.Body, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return preparedUpload{}, fmt.Errorf("%w: read upload: %w", ErrStorageWrite, err)
	}
	header = header[:n]
	detected := mimetype.Detect(header)

	body := io.Reader(io.MultiReader(bytes.NewReader(header), upload.Body))
	if seeker, ok := upload.Body.(io.ReadSeeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err == nil {
			body = seeker
		}
	}

	contentType := strings.TrimSpace(upload.ContentType)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = detected.String()
	}

	return preparedUpload{
		key:         string(category) + "/" + strings.ToLower(newULID(now).String()) + extensionFor(detected, upload.Filename),
		contentType: contentType,
		body:        body,
	}, nil
}

func extensionFor(detected *mimetype.MIME, filename string) string {
	if detected != nil && detected.Extension() != "" {
		return detected.Extension()
	}
	if ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename))); isSafeExt(ext) {
		return ext
	}
	return ""
}

func isSafeExt(ext string) bool {
	if len(ext) < 2 || len(ext) > 10 {
		return false
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
