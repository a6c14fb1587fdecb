package config

import "time"

type Tarkov struct {
	APIURL         string        `env:"TARKOV_API_URL" envDefault:"https://api.tarkov.dev/graphql" validate:"required,url"`
	APIToken       string        `env:"TARKOV_API_TOKEN" json:"-"`
	RequestTimeout time.Duration `env:"TARKOV_REQUEST_TIMEOUT" envDefault:"30s"`
	LogRequests    bool          `env:"TARKOV_LOG_REQUESTS" envDefault:"false"`

	// BundledSources maps target item ids to the display-name search term
	// of the composite item they can be stripped out of. The default covers
	// the RSASS, the one questline target sold only inside a preset.
	BundledSources map[string]string `env:"TARKOV_BUNDLED_SOURCES" envDefault:"5a1eaa87fcdbcb001865f75e:RSASS"`
}
