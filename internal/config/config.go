package config

import (
	"fmt"
	"strings"
	"time"

	"lostfound-cli/internal/model"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	lostPlaceholderImage  = "https://images.unsplash.com/photo-1593891125785-c0e5e07a7027?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60"
	foundPlaceholderImage = "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60"
)

// Catalog holds the per-category defaults used whenever an item is built
// without an explicit image or type.
type Catalog struct {
	LostImage  string `yaml:"lost_image" env:"LOSTFOUND_LOST_IMAGE" env-default:"https://images.unsplash.com/photo-1593891125785-c0e5e07a7027?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60"`
	FoundImage string `yaml:"found_image" env:"LOSTFOUND_FOUND_IMAGE" env-default:"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60"`
	// DraftImage is what the create-post screen forwards when no photo was picked.
	DraftImage string `yaml:"draft_image" env:"LOSTFOUND_DRAFT_IMAGE" env-default:"https://images.unsplash.com/photo-1593891125785-c0e5e07a7027?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60"`
	LostType   string `yaml:"lost_type" env:"LOSTFOUND_LOST_TYPE" env-default:"wallet"`
	FoundType  string `yaml:"found_type" env:"LOSTFOUND_FOUND_TYPE" env-default:"bag"`
	CommentMax int    `yaml:"comment_max" env:"LOSTFOUND_COMMENT_MAX" env-default:"200"`
}

func (c Catalog) PlaceholderImage(cat model.Category) string {
	if cat == model.CategoryFound {
		return c.FoundImage
	}
	return c.LostImage
}

func (c Catalog) DefaultType(cat model.Category) model.ItemType {
	if cat == model.CategoryFound {
		return model.ParseItemType(c.FoundType)
	}
	return model.ParseItemType(c.LostType)
}

type Config struct {
	UI struct {
		LoadDelay   time.Duration `yaml:"load_delay" env:"LOSTFOUND_LOAD_DELAY" env-default:"1s"`
		SubmitDelay time.Duration `yaml:"submit_delay" env:"LOSTFOUND_SUBMIT_DELAY" env-default:"1500ms"`
		Glyphs      string        `yaml:"glyphs" env:"LOSTFOUND_TUI_GLYPHS" env-default:"unicode"`
		Theme       string        `yaml:"theme" env:"LOSTFOUND_TUI_THEME" env-default:"auto"`
	} `yaml:"ui"`
	Catalog Catalog `yaml:"catalog"`
	Log     struct {
		File      string `yaml:"file" env:"LOSTFOUND_LOG_FILE"`
		Level     string `yaml:"level" env:"LOSTFOUND_LOG_LEVEL" env-default:"info"`
		SentryDSN string `yaml:"sentry_dsn" env:"LOSTFOUND_SENTRY_DSN"`
	} `yaml:"log"`
}

// Defaults returns the built-in configuration without consulting the environment.
func Defaults() *Config {
	cfg := &Config{}
	cfg.UI.LoadDelay = time.Second
	cfg.UI.SubmitDelay = 1500 * time.Millisecond
	cfg.UI.Glyphs = "unicode"
	cfg.UI.Theme = "auto"
	cfg.Catalog = Catalog{
		LostImage:  lostPlaceholderImage,
		FoundImage: foundPlaceholderImage,
		DraftImage: lostPlaceholderImage,
		LostType:   string(model.ItemTypeWallet),
		FoundType:  string(model.ItemTypeBag),
		CommentMax: 200,
	}
	cfg.Log.Level = "info"
	return cfg
}

// Load reads configuration from the environment, or from path (YAML, JSON,
// TOML or .env) overlaid with the environment when path is non-empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	var err error
	if strings.TrimSpace(path) != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		help, _ := cleanenv.GetDescription(cfg, nil)
		return nil, fmt.Errorf("read configuration: %w\n%s", err, help)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.UI.LoadDelay < 0 {
		return fmt.Errorf("invalid load delay: %s", c.UI.LoadDelay)
	}
	if c.UI.SubmitDelay < 0 {
		return fmt.Errorf("invalid submit delay: %s", c.UI.SubmitDelay)
	}
	if !model.ItemType(c.Catalog.LostType).Valid() {
		return fmt.Errorf("invalid lost item type: %q", c.Catalog.LostType)
	}
	if !model.ItemType(c.Catalog.FoundType).Valid() {
		return fmt.Errorf("invalid found item type: %q", c.Catalog.FoundType)
	}
	if c.Catalog.CommentMax <= 0 {
		return fmt.Errorf("invalid comment max length: %d", c.Catalog.CommentMax)
	}
	switch strings.ToLower(strings.TrimSpace(c.UI.Glyphs)) {
	case "", "unicode", "utf8", "ascii":
	default:
		return fmt.Errorf("invalid glyph set: %q", c.UI.Glyphs)
	}
	switch strings.ToLower(strings.TrimSpace(c.UI.Theme)) {
	case "", "auto", "light", "dark":
	default:
		return fmt.Errorf("invalid theme: %q", c.UI.Theme)
	}
	return nil
}
