// Package config arma la conexión a la base desde variables de entorno,
// con los mismos fallbacks en todos los jobs.
package config

import "os"

// DSN devuelve DB_DSN si está seteada, o arma el DSN de Postgres pieza por
// pieza con defaults locales.
func DSN() string {
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		return dsn
	}

	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	user := os.Getenv("DB_USER")
	if user == "" {
		user = getenv("POSTGRES_USER", "postgres")
	}
	pass := os.Getenv("DB_PASSWORD")
	if pass == "" {
		pass = getenv("POSTGRES_PASSWORD", "postgres")
	}
	name := os.Getenv("DB_NAME")
	if name == "" {
		name = getenv("POSTGRES_DB", "smartkubik")
	}
	ssl := getenv("DB_SSLMODE", "disable")

	return "host=" + host + " user=" + user + " password=" + pass + " dbname=" + name + " port=" + port + " sslmode=" + ssl
}

// ReportDir es la carpeta donde los jobs dejan sus reportes JSON.
func ReportDir() string {
	return getenv("REPORT_DIR", "reports")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
