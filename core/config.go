package core

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Addr            string
		ShutdownTimeout time.Duration
	}

	DatabaseConfig struct {
		Path string
	}

	// EmailConfig holds the notification provider settings. Backend selects the
	// adapter: "emailjs" (default), "sendgrid" or "console".
	EmailConfig struct {
		Backend     string
		Timeout     time.Duration
		ServiceID   string
		TemplateReg string
		PublicKey   string
		PrivateKey  string
		SendgridKey string
	}

	// Config is read once at startup and treated as immutable for the process
	// lifetime. It is passed explicitly to everything that needs it.
	Config struct {
		Debug    bool
		TestMode bool
		Env      string
		Build    string
		AppName  string

		Server   ServerConfig
		Database DatabaseConfig
		Email    EmailConfig

		FromEmail   string
		SchoolEmail string
		SchoolName  string

		RollbarToken string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("env", "DEV")
	v.SetDefault("build", "dev")
	v.SetDefault("appName", "Przedszkole Miasteczkole API")
	v.SetDefault("port", "8000")
	v.SetDefault("shutdownTimeout", 5*time.Second)
	v.SetDefault("databasePath", "miasteczkole.db")
	v.SetDefault("emailBackend", "emailjs")
	v.SetDefault("emailTimeout", 10*time.Second)
	v.SetDefault("emailjsServiceID", "miasteczkole")
	v.SetDefault("emailjsTemplateReg", "advent_registration")
	v.SetDefault("fromEmail", "no-reply@miasteczkole.pl")
	v.SetDefault("schoolEmail", "info@miasteczkole.pl")
	v.SetDefault("schoolName", "Przedszkole Miasteczkole")

	// load .env if it exists (ignore if it does not)
	if _, err := os.Stat(".env"); err == nil {
		if err = godotenv.Load(); err != nil {
			log.Fatalf("config.godotenv: %v", err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(.env): %v", err)
	}

	for key, envVar := range map[string]string{
		"debug":              "DEBUG",
		"testMode":           "TEST_MODE",
		"env":                "ENV",
		"build":              "BUILD",
		"port":               "PORT",
		"shutdownTimeout":    "SHUTDOWN_TIMEOUT",
		"databasePath":       "DATABASE_PATH",
		"emailBackend":       "EMAIL_BACKEND",
		"emailTimeout":       "EMAIL_TIMEOUT",
		"emailjsServiceID":   "EMAILJS_SERVICE_ID",
		"emailjsTemplateReg": "EMAILJS_TEMPLATE_REG",
		"emailjsPublicKey":   "EMAILJS_PUBLIC_KEY",
		"emailjsPrivateKey":  "EMAILJS_PRIVATE_KEY",
		"sendgridApiKey":     "SENDGRID_API_KEY",
		"fromEmail":          "FROM_EMAIL",
		"schoolEmail":        "SCHOOL_EMAIL",
		"schoolName":         "SCHOOL_NAME",
		"rollbarToken":       "ROLLBAR_TOKEN",
	} {
		_ = v.BindEnv(key, envVar)
	}

	return &Config{
		Debug:    v.GetBool("debug"),
		TestMode: v.GetBool("testMode"),
		Env:      v.GetString("env"),
		Build:    v.GetString("build"),
		AppName:  v.GetString("appName"),
		Server: ServerConfig{
			Addr:            ":" + v.GetString("port"),
			ShutdownTimeout: v.GetDuration("shutdownTimeout"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("databasePath"),
		},
		Email: EmailConfig{
			Backend:     v.GetString("emailBackend"),
			Timeout:     v.GetDuration("emailTimeout"),
			ServiceID:   v.GetString("emailjsServiceID"),
			TemplateReg: v.GetString("emailjsTemplateReg"),
			PublicKey:   v.GetString("emailjsPublicKey"),
			PrivateKey:  v.GetString("emailjsPrivateKey"),
			SendgridKey: v.GetString("sendgridApiKey"),
		},
		FromEmail:    v.GetString("fromEmail"),
		SchoolEmail:  v.GetString("schoolEmail"),
		SchoolName:   v.GetString("schoolName"),
		RollbarToken: v.GetString("rollbarToken"),
	}
}

// EmailConfigured reports whether the notification provider credentials are all present.
func (c *Config) EmailConfigured() bool {
	return c.Email.ServiceID != "" && c.Email.PublicKey != "" && c.Email.PrivateKey != ""
}
