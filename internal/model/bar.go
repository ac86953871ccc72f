package model

import (
	"time"

	"github.com/shopspring/decimal"

	"tickrec/internal/model/enum"
)

// BarData is one fixed-interval OHLCV aggregate of ticks.
type BarData struct {
	ID       uint          `gorm:"primarykey"`
	Symbol   string        `gorm:"index:idx_bar,unique"`
	Exchange enum.Exchange `gorm:"-"`
	// ExchangeCode is the venue code persisted instead of the enum value.
	ExchangeCode string    `gorm:"index:idx_bar,unique"`
	Datetime     time.Time `gorm:"index:idx_bar,unique"`
	Interval     string    `gorm:"index:idx_bar,unique"`

	Open  decimal.Decimal `gorm:"type:numeric"`
	High  decimal.Decimal `gorm:"type:numeric"`
	Low   decimal.Decimal `gorm:"type:numeric"`
	Close decimal.Decimal `gorm:"type:numeric"`

	Volume       decimal.Decimal `gorm:"type:numeric"`
	Turnover     decimal.Decimal `gorm:"type:numeric"`
	OpenInterest float64
}

// TableName keeps the gorm table name stable across model renames.
func (BarData) TableName() string { return "bars" }
