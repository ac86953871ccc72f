// Package gateway defines the feed-gateway contract. Gateways push
// contract metadata and raw snapshot mappings into the event engine;
// their transport internals live elsewhere.
package gateway

import (
	"context"

	"tickrec/internal/model/enum"
)

// Product classifies a listed instrument. Only futures are recorded.
type Product uint8

const (
	ProductUnknown Product = iota
	ProductFutures
	ProductOption
	ProductSpread
)

// ContractData is the static metadata a venue announces per instrument.
type ContractData struct {
	Symbol   string
	Exchange enum.Exchange
	Name     string
	Product  Product
}

// SubscribeRequest asks the gateway for market data on one instrument.
type SubscribeRequest struct {
	Symbol   string
	Exchange enum.Exchange
}

// ConnectSettings carries venue credentials, loaded from config.
type ConnectSettings struct {
	BrokerID  string `json:"brokerId"`
	UserID    string `json:"userId"`
	Password  string `json:"password"`
	MDAddress string `json:"mdAddress"`
	AppID     string `json:"appId"`
	AuthCode  string `json:"authCode"`
}

// Gateway is a venue feed connection. Implementations deliver events
// through the engine passed at construction.
type Gateway interface {
	Connect(ctx context.Context, settings ConnectSettings) error
	Subscribe(req SubscribeRequest) error
	Close() error
}
