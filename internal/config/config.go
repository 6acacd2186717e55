package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	Port          string
	DBDSN         string
	PublicDir     string
	UploadDir     string
	LogFile       string
	DBTimeout     time.Duration
	AdminUser     string
	AdminPassword string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "ecommerce.db"
	} // sqlite file in project root
	public := os.Getenv("PUBLIC_DIR")
	if public == "" {
		public = "./public"
	}
	upload := os.Getenv("UPLOAD_DIR")
	if upload == "" {
		// Inside the public dir so uploaded images stay reachable at /images/<name>.
		upload = "./public/images"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./ecommerce.log" // default log sink in project root
	}
	timeout := 5 * time.Second
	if v := os.Getenv("DB_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		} else {
			log.Printf("[warn] ignoring bad DB_TIMEOUT %q", v)
		}
	}
	adminUser := os.Getenv("ADMIN_USER")
	if adminUser == "" {
		adminUser = "admin"
	}
	adminPass := os.Getenv("ADMIN_PASSWORD")
	if adminPass == "" {
		adminPass = "Passw0rd!"
	}

	cfg := Config{
		Port:          port,
		DBDSN:         dsn,
		PublicDir:     public,
		UploadDir:     upload,
		LogFile:       logFile,
		DBTimeout:     timeout,
		AdminUser:     adminUser,
		AdminPassword: adminPass,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s PUBLIC_DIR=%s UPLOAD_DIR=%s LOG_FILE=%s DB_TIMEOUT=%s",
		cfg.Port, cfg.DBDSN, cfg.PublicDir, cfg.UploadDir, cfg.LogFile, cfg.DBTimeout)
	return cfg
}
