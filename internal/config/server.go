package config

import "time"

type Server struct {
	HTTPAddress    string        `env:"HTTP_ADDRESS" envDefault:":8080"`
	ProbeAddress   string        `env:"PROBE_ADDRESS" envDefault:":8081"`
	MetricsAddress string        `env:"METRICS_ADDRESS" envDefault:":9090"`
	RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"15s"`
}

type Refresh struct {
	Cronspec    string        `env:"REFRESH_CRONSPEC" envDefault:"*/5 * * * *" validate:"required"`
	SnapshotTTL time.Duration `env:"SNAPSHOT_TTL" envDefault:"1h"`
	Concurrency int           `env:"REFRESH_CONCURRENCY" envDefault:"8"`
	Bootstrap   bool          `env:"REFRESH_BOOTSTRAP" envDefault:"true"`
}
