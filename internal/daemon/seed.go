package daemon

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/wodanio-group/bos/internal/config"
	"github.com/wodanio-group/bos/internal/db/controller/option"
)

// seed creates the option records the allocators depend on. Existing
// records are left untouched so counters never reset on restart.
func seed(cfg *config.Config, db *gorm.DB) error {
	defaults := []struct {
		key   string
		value interface{}
	}{
		{KeyCustomerIDCounter, option.CounterValue{Counter: cfg.Numbering.Customer.CounterStart}},
		{KeyCustomerIDSchema, option.SchemaValue{Schema: cfg.Numbering.Customer.Schema}},
		{KeyQuoteIDCounter, option.CounterValue{Counter: cfg.Numbering.Quote.CounterStart}},
		{KeyQuoteIDSchema, option.SchemaValue{Schema: cfg.Numbering.Quote.Schema}},
	}

	for _, d := range defaults {
		data, err := json.Marshal(d.value)
		if err != nil {
			return err
		}

		if _, err = option.SeedDefault(db, d.key, data); err != nil {
			return err
		}

		log.Debug().Str("key", d.key).Msg("option seeded")
	}

	return nil
}
