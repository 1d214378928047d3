package config

type Config struct {
	DatabaseURL string `flag:"database-url"`
	NATSURL     string `flag:"nats-url"`
	NATSInit    bool   `flag:"nats-init"`
	LogLevel    string `flag:"log-level"`
	ListenAddr  string `flag:"listen-addr"`
	MetricsAddr string `flag:"metrics-addr"`
}
