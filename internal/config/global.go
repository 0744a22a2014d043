package config

import (
	"fmt"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"os"
	"strings"
	"vision-coach/internal/utils/runtime"
)

const (
	kafkaHostFlag       = "kafka-host"
	kafkaPortFlag       = "kafka-port"
	kafkaTopicFlag      = "kafka-topic"
	mongoDBURIFlag      = "mongodb-uri"
	mongoDBDatabaseFlag = "mongodb-database"
	developmentFlag     = "development"
	grpcPortFlag        = "port"
)

type Config struct {
	Kafka   KafkaConfig
	MongoDB MongoDBConfig

	Development bool

	GRPCPort int
}

type KafkaConfig struct {
	Host  string
	Port  int
	Topic string
}

type MongoDBConfig struct {
	URI      string
	Database string
}

func LoadGlobalConfig() (*Config, error) {
	v := viper.New()
	flags := pflag.NewFlagSet("vision-coach", pflag.ExitOnError)
	registerFlags(v, flags)
	runtime.Must(flags.Parse(os.Args[1:]))

	return load(v, flags)
}

func registerFlags(v *viper.Viper, flags *pflag.FlagSet) {
	v.SetDefault(kafkaHostFlag, "localhost")
	v.SetDefault(kafkaPortFlag, 9092)
	v.SetDefault(kafkaTopicFlag, "vision-coach-roster")
	v.SetDefault(mongoDBURIFlag, "mongodb://localhost:27017")
	v.SetDefault(mongoDBDatabaseFlag, "vision-coach")
	v.SetDefault(developmentFlag, true)
	v.SetDefault(grpcPortFlag, 10010)

	flags.String(kafkaHostFlag, v.GetString(kafkaHostFlag), "Kafka host")
	flags.Int32(kafkaPortFlag, v.GetInt32(kafkaPortFlag), "Kafka port")
	flags.String(kafkaTopicFlag, v.GetString(kafkaTopicFlag), "Kafka topic for roster change messages")
	flags.String(mongoDBURIFlag, v.GetString(mongoDBURIFlag), "MongoDB URI")
	flags.String(mongoDBDatabaseFlag, v.GetString(mongoDBDatabaseFlag), "MongoDB database name")
	flags.Bool(developmentFlag, v.GetBool(developmentFlag), "Development mode")
	flags.Int32(grpcPortFlag, v.GetInt32(grpcPortFlag), "gRPC port")
}

func load(v *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	// Bind the viper flags to environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	runtime.Must(v.BindEnv(kafkaHostFlag))
	runtime.Must(v.BindEnv(kafkaPortFlag))
	runtime.Must(v.BindEnv(kafkaTopicFlag))
	runtime.Must(v.BindEnv(mongoDBURIFlag))
	runtime.Must(v.BindEnv(mongoDBDatabaseFlag))
	runtime.Must(v.BindEnv(developmentFlag))
	runtime.Must(v.BindEnv(grpcPortFlag))

	cfg := &Config{
		Kafka: KafkaConfig{
			Host:  v.GetString(kafkaHostFlag),
			Port:  int(v.GetInt32(kafkaPortFlag)),
			Topic: v.GetString(kafkaTopicFlag),
		},
		MongoDB: MongoDBConfig{
			URI:      v.GetString(mongoDBURIFlag),
			Database: v.GetString(mongoDBDatabaseFlag),
		},
		Development: v.GetBool(developmentFlag),
		GRPCPort:    int(v.GetInt32(grpcPortFlag)),
	}

	if cfg.GRPCPort <= 0 || cfg.GRPCPort > 65535 {
		return nil, fmt.Errorf("invalid gRPC port %d", cfg.GRPCPort)
	}
	if cfg.MongoDB.Database == "" {
		return nil, fmt.Errorf("mongodb database name must not be empty")
	}

	return cfg, nil
}
