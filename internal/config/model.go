// internal/config/model.go
//
// Typed configuration model for Halyard.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                           – dotenv values,
//   • `conf/global.yaml`                        – primary static file,
//   • `HALYARD_`-prefixed environment overrides – highest precedence.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.

package config

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
	ForceHTTPS bool   `koanf:"force_https"`
}

//
// Render section
//

// Render holds wire-format tunables.  PrettyJSON is a debugging aid;
// production leaves it off so bodies stay compact and byte-stable.
type Render struct {
	PrettyJSON bool `koanf:"pretty_json"`
	YAMLIndent int  `koanf:"yaml_indent" validate:"gte=0,lte=8"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or HALYARD_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // HALYARD_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP   HTTP   `koanf:"http"`
	Render Render `koanf:"render"`
	Paths  Paths  `koanf:"-"` // not loaded from config files
}
