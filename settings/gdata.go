package settings

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/hopdrop/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// itemStorage is the part of gdata.Manager the store needs.
type itemStorage interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// GdataStore persists settings as one JSON item in the platform's user data
// directory.
type GdataStore struct {
	*MemoryStore
	items   itemStorage
	itemKey string
	logger  *log.Logger
}

// OpenGdata opens the gdata manager for the configured app and loads any
// saved settings. A missing or unreadable item leaves the store empty.
func OpenGdata(logger *log.Logger) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return nil, fmt.Errorf("settings: open gdata: %w", err)
	}
	return newGdataStore(m, cfg.Settings.ItemKey, logger), nil
}

func newGdataStore(items itemStorage, itemKey string, logger *log.Logger) *GdataStore {
	if logger == nil {
		logger = log.Default()
	}
	s := &GdataStore{
		MemoryStore: NewMemoryStore(),
		items:       items,
		itemKey:     itemKey,
		logger:      logger,
	}
	s.load()
	return s
}

func (s *GdataStore) load() {
	data, err := s.items.LoadItem(s.itemKey)
	if err != nil {
		s.logger.Warn("could not load settings", "err", err)
		return
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		s.logger.Warn("could not parse saved settings", "err", err)
		return
	}
	s.replace(values)
}

// Save writes every value back to disk.
func (s *GdataStore) Save() error {
	data, err := json.Marshal(s.snapshot())
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := s.items.SaveItem(s.itemKey, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}
