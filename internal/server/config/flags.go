package config

import (
	"flag"
	"os"
	"time"

	"github.com/masjidapp/backend/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-m int      write confirmation attempts
//	-r int      delay between confirmation attempts, milliseconds
//	-p bool     pin one database connection for the process
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-m", "-r", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")
	verifyMaxAttempts := fs.Uint64("m", config.VerifyMaxAttempts, "write confirmation attempts")
	verifyRetryDelay := fs.Int("r", int(config.VerifyRetryDelay.Milliseconds()), "confirmation retry delay (in milliseconds)")

	fs.BoolVar(&config.PersistentConnection, "p", config.PersistentConnection, "pin one database connection")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
	config.VerifyMaxAttempts = *verifyMaxAttempts
	config.VerifyRetryDelay = time.Duration(*verifyRetryDelay) * time.Millisecond
}
