package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/cognicore/artikel/pkg/artikel/internalerr"
)

// Settings holds the configuration of the artikel binaries.
type Settings struct {
	Log          LogSettings       `mapstructure:"log"`
	Server       ServerSettings    `mapstructure:"server"`
	Annotator    AnnotatorSettings `mapstructure:"annotator"`
	Cache        CacheSettings     `mapstructure:"cache"`
	Workers      int               `mapstructure:"workers" validate:"gte=1,lte=256"`
	Dictionaries DictionaryPaths   `mapstructure:"dictionaries"`
}

type LogSettings struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
}

type ServerSettings struct {
	Port int `mapstructure:"port" validate:"gte=1,lte=65535"`
}

type AnnotatorSettings struct {
	Type     string        `mapstructure:"type" validate:"oneof=lexicon prose remote"`
	URL      string        `mapstructure:"url" validate:"required_if=Type remote"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gte=0"`
	RetryMax int           `mapstructure:"retry_max" validate:"gte=0"`
	Lexicon  string        `mapstructure:"lexicon"`
}

type CacheSettings struct {
	Type        string        `mapstructure:"type" validate:"oneof=none memory file sqlite redis"`
	Path        string        `mapstructure:"path" validate:"required_if=Type file,required_if=Type sqlite"`
	RedisAddr   string        `mapstructure:"redis_addr" validate:"required_if=Type redis"`
	RedisPrefix string        `mapstructure:"redis_prefix"`
	RedisTTL    time.Duration `mapstructure:"redis_ttl" validate:"gte=0"`
}

type DictionaryPaths struct {
	Contractions string `mapstructure:"contractions"`
	TagRules     string `mapstructure:"tag_rules"`
	Uncountable  string `mapstructure:"uncountable"`
}

// Loader returns a dictionary loader for the configured paths.
func (s *Settings) Loader() *Loader {
	return &Loader{
		ContractionsPath: s.Dictionaries.Contractions,
		TagRulesPath:     s.Dictionaries.TagRules,
		UncountablePath:  s.Dictionaries.Uncountable,
	}
}

var validate = validator.New()

// LoadSettings reads configFile (or ./artikel.yaml when it exists), a .env
// file and ARTIKEL_* environment variables, in increasing precedence.
func LoadSettings(configFile string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("artikel")
	}

	// .env values only fill variables that are not already set.
	_ = godotenv.Load()

	v.SetEnvPrefix("ARTIKEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: %w", internalerr.ErrInvalidConfig, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", internalerr.ErrInvalidConfig, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks field constraints.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", internalerr.ErrInvalidConfig, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("server.port", 8000)
	v.SetDefault("annotator.type", "lexicon")
	v.SetDefault("annotator.url", "")
	v.SetDefault("annotator.timeout", 10*time.Second)
	v.SetDefault("annotator.retry_max", 3)
	v.SetDefault("annotator.lexicon", "")
	v.SetDefault("cache.type", "none")
	v.SetDefault("cache.path", "")
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.redis_prefix", "artikel:")
	v.SetDefault("cache.redis_ttl", time.Duration(0))
	v.SetDefault("workers", 4)
	v.SetDefault("dictionaries.contractions", "")
	v.SetDefault("dictionaries.tag_rules", "")
	v.SetDefault("dictionaries.uncountable", "")
}
