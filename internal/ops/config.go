// Package ops loads the recorder's JSON configuration and resolves it
// into runtime values.
package ops

import (
	"encoding/json"
	"os"

	"github.com/yanun0323/errors"

	"tickrec/internal/gateway"
	"tickrec/internal/model/enum"
	"tickrec/internal/store"
)

const defaultQueueSize = 4096

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	DataDir   string                  `json:"dataDir"`
	QueueSize int                     `json:"queueSize"`
	Gateway   gateway.ConnectSettings `json:"gateway"`
	Contracts []ContractConfig        `json:"contracts"`
	Postgres  *store.Option           `json:"postgres"`
}

// ContractConfig describes one instrument entry.
type ContractConfig struct {
	Symbol   string `json:"symbol"`
	Exchange string `json:"exchange"`
	Name     string `json:"name"`
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	DataDir   string
	QueueSize int
	Gateway   gateway.ConnectSettings
	Contracts []gateway.ContractData
	Postgres  *store.Option
}

// Load reads and resolves the config file.
func Load(path string) (Loaded, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, err
	}

	var file FileConfig
	if err := json.Unmarshal(raw, &file); err != nil {
		return Loaded{}, errors.Wrap(err, "parse config")
	}
	return file.resolve()
}

func (f FileConfig) resolve() (Loaded, error) {
	if f.DataDir == "" {
		return Loaded{}, errors.New("config: dataDir is empty")
	}

	loaded := Loaded{
		DataDir:   f.DataDir,
		QueueSize: f.QueueSize,
		Gateway:   f.Gateway,
		Postgres:  f.Postgres,
	}
	if loaded.QueueSize <= 0 {
		loaded.QueueSize = defaultQueueSize
	}

	for _, contract := range f.Contracts {
		exchange, ok := enum.ParseExchange(contract.Exchange)
		if !ok {
			return Loaded{}, errors.New("config: unknown exchange " + contract.Exchange)
		}
		loaded.Contracts = append(loaded.Contracts, gateway.ContractData{
			Symbol:   contract.Symbol,
			Exchange: exchange,
			Name:     contract.Name,
			Product:  gateway.ProductFutures,
		})
	}
	return loaded, nil
}
