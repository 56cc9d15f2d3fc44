package configs

const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Storage selects where campaigns, submissions and the session are kept.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"`
}
