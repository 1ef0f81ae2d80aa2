package favorites

import (
	"context"
	"os"

	"github.com/yourorg/listing-api/internal/redisx"
)

// redisKV persists the set in Redis with no expiry.
type redisKV struct{ c *redisx.Client }

func NewRedisKV(c *redisx.Client) KV { return redisKV{c: c} }

func (r redisKV) Get(ctx context.Context, key string) (string, bool, error) {
	return r.c.Get(ctx, key)
}

func (r redisKV) Set(ctx context.Context, key string, val string) error {
	return r.c.Set(ctx, key, val, 0)
}

// fileKV is the local fallback when Redis is not configured. One file per
// key under dir, mirroring the browser's localStorage entry.
type fileKV struct{ dir string }

func NewFileKV(dir string) KV { return fileKV{dir: dir} }

func (f fileKV) path(key string) string { return f.dir + "/" + key + ".json" }

func (f fileKV) Get(_ context.Context, key string) (string, bool, error) {
	b, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

func (f fileKV) Set(_ context.Context, key string, val string) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path(key), []byte(val), 0o644)
}
