package cmd

// Config carries the process configuration read from the environment.
// Storage selects the persistence backend: "memory" keeps everything
// in-process, "postgres" uses the database settings below.
type Config struct {
	HTTPPort   string
	Storage    string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
}
