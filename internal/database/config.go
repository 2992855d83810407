package database

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/kansah/site/internal/model"
)

// Supported values for Config.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DefaultConnectTimeout bounds connection setup when Config.ConnectTimeout is zero.
const DefaultConnectTimeout = 30 * time.Second

// Config holds the recognized connection options.
type Config struct {
	Server         string
	Database       string
	Username       string
	Password       string
	Driver         string
	Port           int
	ConnectTimeout time.Duration
}

// Trusted reports whether the connection uses the server's integrated
// authentication instead of credentials.
func (c Config) Trusted() bool {
	return c.Username == "" && c.Password == ""
}

// Validate checks the options for the selected driver.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.Server == "" {
			return fmt.Errorf("%w: database server is required", model.ErrConfiguration)
		}
		if c.Port <= 0 || c.Port > 65535 {
			return fmt.Errorf("%w: database port %d out of range", model.ErrConfiguration, c.Port)
		}
		if c.Password != "" && c.Username == "" {
			return fmt.Errorf("%w: database password given without username", model.ErrConfiguration)
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported database driver %q", model.ErrConfiguration, c.Driver)
	}
	if c.Database == "" {
		return fmt.Errorf("%w: database name is required", model.ErrConfiguration)
	}
	if c.ConnectTimeout < 0 {
		return fmt.Errorf("%w: negative connect timeout", model.ErrConfiguration)
	}
	return nil
}

// driverName maps Config.Driver to the database/sql driver registered for it.
func (c Config) driverName() string {
	if c.Driver == DriverPostgres {
		return "pgx"
	}
	return "sqlite"
}

func (c Config) connectTimeout() time.Duration {
	if c.ConnectTimeout == 0 {
		return DefaultConnectTimeout
	}
	return c.ConnectTimeout
}

// connectTimeoutSeconds rounds d up to whole seconds. The driver reads 0
// as no timeout, so the result is at least 1.
func connectTimeoutSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

// DSN builds the data source name for the selected driver. Credentials are
// left out in trusted mode so the server falls back to peer, trust or
// pgpass authentication.
func (c Config) DSN() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	if c.Driver == DriverSQLite {
		return c.Database + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", nil
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Server, strconv.Itoa(c.Port)),
		Path:   "/" + c.Database,
	}
	switch {
	case c.Trusted():
	case c.Password == "":
		u.User = url.User(c.Username)
	default:
		u.User = url.UserPassword(c.Username, c.Password)
	}
	q := url.Values{}
	q.Set("connect_timeout", strconv.Itoa(connectTimeoutSeconds(c.connectTimeout())))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Redacted returns the DSN with the password masked, for logging.
func (c Config) Redacted() string {
	if c.Driver == DriverSQLite {
		return c.Database
	}
	host := net.JoinHostPort(c.Server, strconv.Itoa(c.Port))
	if c.Trusted() {
		return fmt.Sprintf("postgres://%s/%s (trusted)", host, c.Database)
	}
	return fmt.Sprintf("postgres://%s:***@%s/%s", c.Username, host, c.Database)
}
