package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type (
	APP struct {
		Name      string
		Host      string
		Port      string
		Env       string
		JWTSecret string
	}
	DB struct {
		User          string
		Password      string
		Name          string
		Host          string
		Port          string
		MigrationsDir string
	}
	SMTP struct {
		Host      string
		Port      string
		User      string
		Password  string
		FromName  string
		FromEmail string
		Timeout   time.Duration
		Enabled   bool
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}
	Admin struct {
		Username string
		Email    string
		Password string
	}
	OpenAPI struct {
		FilePath     string
		TemplatesDir string
	}

	Config struct {
		App     APP
		DB      DB
		SMTP    SMTP
		MQ      MQ
		Admin   Admin
		OpenAPI OpenAPI
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(def)))
	if err != nil {
		return def
	}
	return v
}

func Load() Config {
	app := APP{
		Name:      getEnv("SERVICE_NAME", "useraccountapi"),
		Host:      getEnv("SERVICE_HOST", ""),
		Port:      getEnv("SERVICE_PORT", "8000"),
		Env:       getEnv("SERVICE_ENV", ""),
		JWTSecret: getEnv("SERVICE_JWT_SECRET", ""),
	}
	db := DB{
		User:          getEnv("POSTGRES_USER", ""),
		Password:      getEnv("POSTGRES_PASSWORD", ""),
		Name:          getEnv("POSTGRES_DB", ""),
		Host:          getEnv("POSTGRES_HOST", ""),
		Port:          getEnv("POSTGRES_PORT", ""),
		MigrationsDir: getEnv("POSTGRES_MIGRATIONS_DIR", "migrations"),
	}
	smtp := SMTP{
		Host:      getEnv("SMTP_HOST", ""),
		Port:      getEnv("SMTP_PORT", "587"),
		User:      getEnv("SMTP_USER", ""),
		Password:  getEnv("SMTP_PASSWORD", ""),
		FromName:  getEnv("SMTP_FROM_NAME", "User Account API"),
		FromEmail: getEnv("SMTP_FROM_EMAIL", ""),
		Timeout:   10 * time.Second,
		Enabled:   getEnvBool("SMTP_ENABLED", false),
	}
	mq := MQ{
		User:         getEnv("RABBITMQ_USER", ""),
		Password:     getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:        getEnv("RABBITMQ_VHOST", ""),
		Host:         getEnv("RABBITMQ_HOST", ""),
		AmqpPort:     getEnv("RABBITMQ_AMQP_PORT", ""),
		Exchange:     getEnv("RABBITMQ_EXCHANGE", "account.events"),
		ExchangeType: getEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
		QueueName:    getEnv("RABBITMQ_QUEUE_NAME", "account.notifications"),
	}
	admin := Admin{
		Username: getEnv("FIRST_SUPERUSER_USERNAME", ""),
		Email:    getEnv("FIRST_SUPERUSER_EMAIL", ""),
		Password: getEnv("FIRST_SUPERUSER_PASSWORD", ""),
	}
	openAPI := OpenAPI{
		FilePath:     getEnv("OPENAPI_FILE_PATH", "assets/openapi.json"),
		TemplatesDir: getEnv("EMAIL_TEMPLATES_DIR", "assets/templates"),
	}

	return Config{
		App:     app,
		DB:      db,
		SMTP:    smtp,
		MQ:      mq,
		Admin:   admin,
		OpenAPI: openAPI,
	}
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}

func (c Config) SMTPAddr() (string, error) {
	if c.SMTP.Host == "" || c.SMTP.Port == "" {
		return "", fmt.Errorf("invalid SMTP config: host and port are required")
	}
	return c.SMTP.Host + ":" + c.SMTP.Port, nil
}
