package conf

import (
	"fmt"
	"os"
)

// ServerConfig is the scoreboard server's environment configuration.
// Exactly one of FeedDir or S3Bucket must be set: the contest data is
// read either from a local feed directory or from an S3 prefix.
type ServerConfig struct {
	ListenAddr string

	FeedDir string

	S3Bucket string
	S3Region string
	S3Prefix string

	JwtKey string

	AdminUsername   string
	AdminBcryptHash string
}

// ReadServerConfigFromEnv reads the server configuration from the
// environment. Callers load .env themselves (godotenv) before calling.
func ReadServerConfigFromEnv() (ServerConfig, error) {
	cfg := ServerConfig{
		ListenAddr: os.Getenv("LISTEN_ADDR"),

		FeedDir: os.Getenv("FEED_DIR"),

		S3Bucket: os.Getenv("FEED_S3_BUCKET"),
		S3Region: os.Getenv("FEED_S3_REGION"),
		S3Prefix: os.Getenv("FEED_S3_PREFIX"),

		JwtKey: os.Getenv("JWT_KEY"),

		AdminUsername:   os.Getenv("ADMIN_USERNAME"),
		AdminBcryptHash: os.Getenv("ADMIN_BCRYPT_PWD"),
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.FeedDir == "" && cfg.S3Bucket == "" {
		return ServerConfig{}, fmt.Errorf("neither FEED_DIR nor FEED_S3_BUCKET is set")
	}
	if cfg.FeedDir != "" && cfg.S3Bucket != "" {
		return ServerConfig{}, fmt.Errorf("FEED_DIR and FEED_S3_BUCKET are mutually exclusive")
	}
	if cfg.S3Bucket != "" && cfg.S3Region == "" {
		return ServerConfig{}, fmt.Errorf("FEED_S3_REGION is required with FEED_S3_BUCKET")
	}
	if cfg.JwtKey == "" {
		return ServerConfig{}, fmt.Errorf("JWT_KEY is not set")
	}
	return cfg, nil
}
