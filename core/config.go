package core

import (
	"log"
	"os"

	"github.com/go-yaml/yaml"
)

// Config is streamhive base configuration
type Config struct {
	Server  Server  `yaml:"server"`
	Mail    Mail    `yaml:"mail"`
	Storage Storage `yaml:"storage"`
	Ingest  Ingest  `yaml:"ingest"`
}

type Server struct {
	Dsn           string `yaml:"dsn"`
	RedisAddr     string `yaml:"redisAddr"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	ListenAddr    string `yaml:"listenAddr"`
	TraceEndpoint string `yaml:"traceEndpoint"`
	EnableTrace   bool   `yaml:"enableTrace"`
	// RelayMode selects the event relay implementation: "local" for a single
	// process, "redis" when multiple workers share one endpoint.
	RelayMode string `yaml:"relayMode"`
}

// Mail configures the transactional email sender. Enabled is the product's
// global email flag: when false no dispatch job calls the sender at all.
type Mail struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// Storage configures the blob store holding prerecorded videos.
type Storage struct {
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
}

// Ingest points at the media ingest server queried for stream liveness.
type Ingest struct {
	BaseAddr        string `yaml:"baseAddr"`
	CacheTTLSeconds int32  `yaml:"cacheTTLSeconds"`
}

// Load loads streamhive config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal("failed to open configuration file:", err)
		return err
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		log.Fatal("failed to load configuration file:", err)
		return err
	}

	return nil
}
