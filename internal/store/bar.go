// Package store persists aggregated bars to PostgreSQL. Tick
// persistence stays on the flat journal files; only the replay product
// lands here.
package store

import (
	"fmt"
	"net/url"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tickrec/internal/model"
)

const (
	defaultHost    = "localhost"
	defaultPort    = 5432
	defaultSSLMode = "disable"
)

// Option defines PostgreSQL connection options.
type Option struct {
	Host       string            `json:"host"`
	Port       int               `json:"port"`
	User       string            `json:"user"`
	Password   string            `json:"password"`
	Database   string            `json:"database"`
	SSLMode    string            `json:"sslMode"`
	Params     map[string]string `json:"params"`
	ConnString string            `json:"connString"`
}

// BarStore writes finished bars into the bars table.
type BarStore struct {
	opt Option
	db  *gorm.DB
}

// NewBarStore opens the connection and migrates the bars table.
func NewBarStore(option Option) (*BarStore, error) {
	db, err := gorm.Open(postgres.Open(option.dsn()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.BarData{}); err != nil {
		return nil, err
	}
	return &BarStore{opt: option, db: db}, nil
}

// SaveBars inserts bars in arrival order. Errors propagate; there is no
// internal retry.
func (s *BarStore) SaveBars(bars []model.BarData) error {
	if len(bars) == 0 {
		return nil
	}
	return s.db.CreateInBatches(bars, 500).Error
}

// Close closes the underlying connection pool.
func (s *BarStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (opt Option) dsn() string {
	if opt.ConnString != "" {
		return opt.ConnString
	}

	host := opt.Host
	if host == "" {
		host = defaultHost
	}
	port := opt.Port
	if port == 0 {
		port = defaultPort
	}
	sslMode := opt.SSLMode
	if sslMode == "" {
		sslMode = defaultSSLMode
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", host, port),
	}
	if opt.User != "" {
		if opt.Password != "" {
			u.User = url.UserPassword(opt.User, opt.Password)
		} else {
			u.User = url.User(opt.User)
		}
	}
	if opt.Database != "" {
		u.Path = "/" + opt.Database
	}

	query := url.Values{}
	query.Set("sslmode", sslMode)
	for key, value := range opt.Params {
		if key == "" {
			continue
		}
		query.Set(key, value)
	}
	u.RawQuery = query.Encode()

	return u.String()
}
