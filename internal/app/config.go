package app

import (
	"github.com/ansel1/merry"
	"github.com/fpawel/shopsql/internal/data"
	"github.com/go-sql-driver/mysql"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
	"io/ioutil"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	Driver   string `yaml:"driver" toml:"driver" comment:"mysql, postgres, sqlite3 or duckdb"`
	Host     string `yaml:"host" toml:"host"`
	Port     int    `yaml:"port" toml:"port" comment:"0 - driver default"`
	User     string `yaml:"user" toml:"user"`
	Password string `yaml:"password" toml:"password"`
	Database string `yaml:"database" toml:"database" comment:"database name, file name for sqlite3 and duckdb"`
	AuthMode string `yaml:"auth_mode" toml:"auth_mode" comment:"mysql: mysql_native_password, mysql_clear_password, caching_sha2_password; postgres: sslmode"`
	SeedMode string `yaml:"seed_mode" toml:"seed_mode" comment:"insert - fail if sample rows exist, upsert - skip existing rows"`

	OrderID               int64   `yaml:"order_id" toml:"order_id" comment:"order listed in section 4"`
	SalesYear             int     `yaml:"sales_year" toml:"sales_year"`
	HighSpendingThreshold float64 `yaml:"high_spending_threshold" toml:"high_spending_threshold"`
}

func DefaultConfig() Config {
	return Config{
		Driver:                data.DriverMySQL,
		Host:                  "localhost",
		User:                  "root",
		Database:              "safertek",
		AuthMode:              authMySQLNative,
		SeedMode:              string(data.SeedInsert),
		OrderID:               1,
		SalesYear:             2023,
		HighSpendingThreshold: 1000,
	}
}

const (
	authMySQLNative    = "mysql_native_password"
	authMySQLCleartext = "mysql_clear_password"
	authMySQLSHA2      = "caching_sha2_password"
)

const envPrefix = "SHOPSQL_"

// LoadConfig reads defaults, then the file if filename is not empty, then
// SHOPSQL_* environment variables. A missing file is created with the
// defaults.
func LoadConfig(filename string) (Config, error) {
	c := DefaultConfig()
	if filename != "" {
		if err := c.readFile(filename); err != nil {
			return c, err
		}
	}
	if err := c.readEnv(os.LookupEnv); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func isToml(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".toml")
}

func (c *Config) readFile(filename string) error {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		log.Info("create config file with defaults", "file", filename)
		return c.Save(filename)
	}
	b, err := ioutil.ReadFile(filename)
	if err != nil {
		return merry.Wrap(err)
	}
	if isToml(filename) {
		err = toml.Unmarshal(b, c)
	} else {
		err = yaml.Unmarshal(b, c)
	}
	return merry.Prepend(err, "config: "+filename)
}

func (c Config) Save(filename string) error {
	var (
		b   []byte
		err error
	)
	if isToml(filename) {
		b, err = toml.Marshal(c)
	} else {
		b, err = yaml.Marshal(c)
	}
	if err != nil {
		return merry.Wrap(err)
	}
	return merry.Wrap(ioutil.WriteFile(filename, b, 0600))
}

func (c *Config) readEnv(lookup func(string) (string, bool)) error {
	for name, p := range map[string]*string{
		"DRIVER":    &c.Driver,
		"HOST":      &c.Host,
		"USER":      &c.User,
		"PASSWORD":  &c.Password,
		"DATABASE":  &c.Database,
		"AUTH_MODE": &c.AuthMode,
		"SEED_MODE": &c.SeedMode,
	} {
		if s, ok := lookup(envPrefix + name); ok {
			*p = s
		}
	}
	if s, ok := lookup(envPrefix + "PORT"); ok {
		n, err := strconv.Atoi(s)
		if err != nil {
			return merry.Prepend(err, envPrefix+"PORT")
		}
		c.Port = n
	}
	return nil
}

func (c Config) Validate() error {
	if _, err := data.DialectOf(c.Driver); err != nil {
		return err
	}
	if _, err := data.ParseSeedMode(c.SeedMode); err != nil {
		return err
	}
	if c.Port < 0 || c.Port > 65535 {
		return merry.Errorf("port out of range: %d", c.Port)
	}
	switch c.Driver {
	case data.DriverMySQL:
		switch c.AuthMode {
		case "", authMySQLNative, authMySQLCleartext, authMySQLSHA2:
		default:
			return merry.Errorf("unknown mysql auth mode %q", c.AuthMode)
		}
	case data.DriverPostgres:
		switch c.AuthMode {
		case "", "disable", "allow", "prefer", "require", "verify-ca", "verify-full":
		default:
			return merry.Errorf("unknown postgres sslmode %q", c.AuthMode)
		}
	}
	return nil
}

func (c Config) port(defaultPort int) string {
	if c.Port == 0 {
		return strconv.Itoa(defaultPort)
	}
	return strconv.Itoa(c.Port)
}

// DataSourceName builds the driver specific connection string.
func (c Config) DataSourceName() string {
	switch c.Driver {
	case data.DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.Host, c.port(3306))
		mc.DBName = c.Database
		mc.ParseTime = true
		switch c.AuthMode {
		case authMySQLNative:
			mc.AllowNativePasswords = true
		case authMySQLCleartext:
			mc.AllowCleartextPasswords = true
		case authMySQLSHA2:
			mc.AllowNativePasswords = false
		}
		return mc.FormatDSN()

	case data.DriverPostgres:
		sslMode := c.AuthMode
		if sslMode == "" {
			sslMode = "disable"
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.User, c.Password),
			Host:     net.JoinHostPort(c.Host, c.port(5432)),
			Path:     "/" + c.Database,
			RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
		}
		return u.String()

	case data.DriverSQLite:
		if c.Database == "" {
			return ":memory:"
		}
		return c.Database
	}
	return c.Database
}
