package mediastore

import (
	"fmt"
	"net/url"
	"strings"
)

// ObjectKeyFromLocator 从 locator 推导对象 key：
// 去掉可选的 scheme://，再去掉第一个 / 之前的 host，剩余部分即 key。
// basePath 是公开访问地址自带的路径前缀（例如 /media），存在时一并剥离。
func ObjectKeyFromLocator(locator, basePath string) (string, error) {
	rest := strings.TrimSpace(locator)
	if idx := strings.Index(rest, "://"); idx >= 0 {
		rest = rest[idx+len("://"):]
	}
	slash := strings.Index(rest, "/")
	if slash < 0 {
		return "", fmt.Errorf("%w: %q has no path", ErrInvalidLocator, locator)
	}
	rest = rest[slash+1:]
	if cut := strings.IndexAny(rest, "?#"); cut >= 0 {
		rest = rest[:cut]
	}
	rest = strings.TrimLeft(rest, "/")

	prefix := strings.Trim(basePath, "/")
	if prefix != "" {
		switch {
		case rest == prefix:
			rest = ""
		case strings.HasPrefix(rest, prefix+"/"):
			rest = rest[len(prefix)+1:]
		}
	}

	if rest == "" {
		return "", fmt.Errorf("%w: %q has empty key", ErrInvalidLocator, locator)
	}
	for _, segment := range strings.Split(rest, "/") {
		if segment == ".." || segment == "." || segment == "" {
			return "", fmt.Errorf("%w: %q has unsafe key", ErrInvalidLocator, locator)
		}
	}
	return rest, nil
}

// publicBase 解析公开访问地址，返回去掉尾部 / 的 base 以及其路径前缀。
func publicBase(raw string) (base string, basePath string, err error) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if raw == "" {
		return "", "", fmt.Errorf("mediastore: public base url is empty")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("mediastore: parse public base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", "", fmt.Errorf("mediastore: public base url %q must be absolute", raw)
	}
	return raw, strings.Trim(parsed.Path, "/"), nil
}

func joinLocator(base, key string) string {
	return base + "/" + key
}

// PublicPathPrefix 返回公开地址的路径前缀（形如 /media/），供本地后端挂载静态文件路由。
func PublicPathPrefix(cfg Config) (string, error) {
	_, basePath, err := publicBase(cfg.PublicBaseURL)
	if err != nil {
		return "", err
	}
	if basePath == "" {
		return "/", nil
	}
	return "/" + basePath + "/", nil
}
