package storage

import "github.com/indexadmin/indexadmin/pkg/badgerfx"

// Mode identifies the backing medium of the document store.
type Mode string

const (
	ModeFS Mode = "fs"
	ModeKV Mode = "kv"
)

type KVConfig struct {
	// redis://, rediss:// URL or a bare host:port
	URL   string
	Token string
	// Prepended to every collection key
	Prefix string
}

type Config struct {
	Mode Mode

	FS badgerfx.Config
	KV KVConfig
}
