package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	envPort                  = "PORT"
	envServerReadTimeout     = "SERVER_READ_TIMEOUT"
	envServerWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	envServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"
	envEnablePprof           = "ENABLE_PPROF"
	envDBHost                = "DB_HOST"
	envDBPort                = "DB_PORT"
	envDBName                = "DB_DATABASE"
	envDBUser                = "DB_USER"
	envDBPassword            = "DB_PASSWORD"
	envDBSSLMode             = "DB_SSL_MODE"
	envDBMaxConns            = "DB_MAX_CONNS"
	envDBMinConns            = "DB_MIN_CONNS"
	envRedisHost             = "REDIS_HOST"
	envRedisPort             = "REDIS_PORT"
	envRedisPassword         = "REDIS_PASSWORD"
	envRedisDB               = "REDIS_DB"
	envFolderPath            = "FOLDER_PATH"
	envStorageBackend        = "STORAGE_BACKEND"
	envS3Bucket              = "S3_BUCKET"
	envAWSRegion             = "REGION"
	envAWSAccessKeyID        = "AWS_ACCESS_KEY_ID"
	envAWSSecretAccessKey    = "AWS_SECRET_ACCESS_KEY"
	envTokenTTL              = "TOKEN_TTL"
	envQueuePollTimeout      = "QUEUE_POLL_TIMEOUT"
	envJobTimeout            = "JOB_TIMEOUT"
	envResendAPIKey          = "RESEND_API_KEY"
	envMailFrom              = "MAIL_FROM"
)

const (
	defaultServerPort         = "5000"
	defaultServerReadTimeout  = 10 * time.Second
	defaultServerWriteTimeout = 10 * time.Second
	defaultServerShutdown     = 10 * time.Second
	defaultDBHost             = "localhost"
	defaultDBPort             = 5432
	defaultDBName             = "files_manager"
	defaultDBUser             = "files_manager_app"
	defaultDBSSLMode          = "disable"
	defaultDBMaxConns         = 25
	defaultDBMinConns         = 5
	defaultRedisHost          = "localhost"
	defaultRedisPort          = 6379
	defaultRedisDB            = 0
	defaultFolderPath         = "/tmp/files_manager"
	defaultTokenTTL           = 24 * time.Hour
	defaultQueuePollTimeout   = 5 * time.Second
	defaultJobTimeout         = 30 * time.Second
	defaultMailFrom           = "no-reply@files-manager.local"

	// StorageBackendLocal keeps content on the local filesystem under FolderPath.
	StorageBackendLocal = "local"
	// StorageBackendS3 keeps content in an S3 bucket, addressed by the same refs.
	StorageBackendS3 = "s3"

	errPortRequiredFmt         = "PORT must be set"
	errDBPasswordRequiredFmt   = "DB_PASSWORD must be set"
	errUnknownStorageFmt       = "unknown storage backend %q"
	errS3BucketRequiredFmt     = "S3_BUCKET must be set when STORAGE_BACKEND=s3"
	errRegionRequiredFmt       = "REGION must be set when STORAGE_BACKEND=s3"
	errInvalidConfigurationFmt = "invalid configuration: %w"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Auth     AuthConfig
	Worker   WorkerConfig
	Mail     MailConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	EnablePprof     bool
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type StorageConfig struct {
	Backend         string
	FolderPath      string
	S3Bucket        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type AuthConfig struct {
	TokenTTL time.Duration
}

type WorkerConfig struct {
	QueuePollTimeout time.Duration
	JobTimeout       time.Duration
}

type MailConfig struct {
	ResendAPIKey string
	From         string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv(envPort, defaultServerPort),
			ReadTimeout:     getDurationEnv(envServerReadTimeout, defaultServerReadTimeout),
			WriteTimeout:    getDurationEnv(envServerWriteTimeout, defaultServerWriteTimeout),
			ShutdownTimeout: getDurationEnv(envServerShutdownTimeout, defaultServerShutdown),
			EnablePprof:     getBoolEnv(envEnablePprof, false),
		},
		Database: DatabaseConfig{
			Host:     getEnv(envDBHost, defaultDBHost),
			Port:     getIntEnv(envDBPort, defaultDBPort),
			Database: getEnv(envDBName, defaultDBName),
			User:     getEnv(envDBUser, defaultDBUser),
			Password: requireEnv(envDBPassword),
			SSLMode:  getEnv(envDBSSLMode, defaultDBSSLMode),
			MaxConns: getIntEnv(envDBMaxConns, defaultDBMaxConns),
			MinConns: getIntEnv(envDBMinConns, defaultDBMinConns),
		},
		Redis: RedisConfig{
			Host:     getEnv(envRedisHost, defaultRedisHost),
			Port:     getIntEnv(envRedisPort, defaultRedisPort),
			Password: os.Getenv(envRedisPassword),
			DB:       getIntEnv(envRedisDB, defaultRedisDB),
		},
		Storage: StorageConfig{
			Backend:         getEnv(envStorageBackend, StorageBackendLocal),
			FolderPath:      getEnv(envFolderPath, defaultFolderPath),
			S3Bucket:        os.Getenv(envS3Bucket),
			Region:          os.Getenv(envAWSRegion),
			AccessKeyID:     os.Getenv(envAWSAccessKeyID),
			SecretAccessKey: os.Getenv(envAWSSecretAccessKey),
		},
		Auth: AuthConfig{
			TokenTTL: getDurationEnv(envTokenTTL, defaultTokenTTL),
		},
		Worker: WorkerConfig{
			QueuePollTimeout: getDurationEnv(envQueuePollTimeout, defaultQueuePollTimeout),
			JobTimeout:       getDurationEnv(envJobTimeout, defaultJobTimeout),
		},
		Mail: MailConfig{
			ResendAPIKey: os.Getenv(envResendAPIKey),
			From:         getEnv(envMailFrom, defaultMailFrom),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(errInvalidConfigurationFmt, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf(errPortRequiredFmt)
	}

	if c.Database.Password == "" {
		return fmt.Errorf(errDBPasswordRequiredFmt)
	}

	switch c.Storage.Backend {
	case StorageBackendLocal:
	case StorageBackendS3:
		if c.Storage.S3Bucket == "" {
			return fmt.Errorf(errS3BucketRequiredFmt)
		}
		if c.Storage.Region == "" {
			return fmt.Errorf(errRegionRequiredFmt)
		}
	default:
		return fmt.Errorf(errUnknownStorageFmt, c.Storage.Backend)
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func requireEnv(key string) string {
	return os.Getenv(key)
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
