package app

import (
	"fmt"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (STOREVIEW_ prefix), flags, or YAML config files.
type Config struct {
	CatalogURL string `default:"https://fakestoreapi.com" usage:"Base URL of the product catalog endpoint" flag:"catalog-url"`
	// ProductID is the fixed catalog record this viewer displays. It is not
	// derived from any route or argument.
	ProductID    int           `default:"1" usage:"Catalog product ID to display" flag:"product-id"`
	PageURL      string        `default:"" usage:"Page URL used by the share affordance (defaults to the product URL)" flag:"page-url"`
	HTTPTimeout  time.Duration `default:"30s" usage:"Timeout of the HTTP client used for the fetch" flag:"http-timeout"`
	ShareCommand string        `default:"" usage:"Override for the native share helper binary" flag:"share-command"`
	NoInput      bool          `default:"false" usage:"Render once and exit instead of reading commands" flag:"no-input"`
}

// LoadConfig loads configuration from environment variables, YAML config
// files, and flags.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STOREVIEW",
		Files:     []string{"config.yaml", "/etc/storeview/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if cfg.ProductID <= 0 {
		return nil, errors.New("product ID must be positive")
	}
	if cfg.PageURL == "" {
		cfg.PageURL = fmt.Sprintf("%s/products/%d", cfg.CatalogURL, cfg.ProductID)
	}

	return &cfg, nil
}
