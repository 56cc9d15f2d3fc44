package configs

// SQLite configures the file-backed key/value backend used by default.
type SQLite struct {
	// Path is the database file. It is created on first start.
	Path string `env:"PATH" envDefault:"beatboost.db"`
}
