package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string

	// Content workspace (listing source)
	NotionToken      string
	InventoryDBID    string
	CollectiblesDBID string

	// Outbound notification mail
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	FromName    string
	FromEmail   string
	NotifyEmail string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "dialedbyh.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./dialedbyh.log" // default log sink in project root
	}

	smtpPort := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			smtpPort = n
		}
	}
	fromName := os.Getenv("FROM_NAME")
	if fromName == "" {
		fromName = "Dialed By H"
	}
	fromEmail := os.Getenv("FROM_EMAIL")
	if fromEmail == "" {
		fromEmail = "inquiries@mail.dialedbyhenry.com"
	}
	notify := os.Getenv("NOTIFICATION_EMAIL")
	if notify == "" {
		notify = "dialedbyh@gmail.com"
	}

	cfg := Config{
		Port:             port,
		DBDSN:            dsn,
		LogFile:          logFile,
		NotionToken:      os.Getenv("NOTION_API_KEY"),
		InventoryDBID:    os.Getenv("NOTION_DATABASE_ID"),
		CollectiblesDBID: os.Getenv("NOTION_COLLECTIBLES_DATABASE_ID"),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         smtpPort,
		SMTPUser:         os.Getenv("SMTP_USER"),
		SMTPPass:         os.Getenv("SMTP_PASSWORD"),
		FromName:         fromName,
		FromEmail:        fromEmail,
		NotifyEmail:      notify,
	}

	// Log presence of secrets, never their values.
	log.Printf("[config] PORT=%s DB_DSN=%s NOTION_API_KEY=%t NOTION_DATABASE_ID=%t NOTION_COLLECTIBLES_DATABASE_ID=%t SMTP_HOST=%s SMTP_USER=%t NOTIFICATION_EMAIL=%s",
		cfg.Port, cfg.DBDSN, cfg.NotionToken != "", cfg.InventoryDBID != "", cfg.CollectiblesDBID != "",
		cfg.SMTPHost, cfg.SMTPUser != "", cfg.NotifyEmail)
	return cfg
}
