package database

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.  When sslCA is a
// non-empty path, the file is loaded as the CA bundle and the
// connection uses TLS; managed MySQL offerings hand out such a
// certificate per deployment.
func Open(user, pass, host, port, name, sslCA string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	if sslCA != "" {
		pem, err := os.ReadFile(sslCA)
		if err != nil {
			return nil, fmt.Errorf("read ssl ca: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("ssl ca %s contains no certificates", sslCA)
		}
		if err := mysql.RegisterTLSConfig("pos", &tls.Config{RootCAs: pool}); err != nil {
			return nil, err
		}
		dsn += "&tls=pos"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
