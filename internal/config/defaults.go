package config

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "matching_db",
}

var defaultKafka = Kafka{
	Topic:       "job-events",
	GroupID:     "matching-worker",
	NotifyTopic: "match-notifications",
}

var defaultMatching = Matching{
	HistoryLimit:       50,
	RateLimitPerMinute: 120,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default Kafka settings (brokers unset).
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultMatching returns the default matching knobs.
func DefaultMatching() Matching {
	return defaultMatching
}
