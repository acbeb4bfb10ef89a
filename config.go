package skipgram

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Initializer names accepted by Config.Init.
const (
	InitXavier = "xavier"
	InitGlorot = "glorot"
)

// Config holds everything NewTrainer needs. Fields tagged json:"-" are
// runtime hooks and never come from a config file.
type Config struct {
	VocabSize  int     `json:"vocab_size"`
	Alpha      float64 `json:"alpha"`
	Epochs     int     `json:"epochs"`
	EmbDim     int     `json:"emb_dim"`
	Window     int     `json:"window"`
	Init       string  `json:"init"`
	TrackScore bool    `json:"track_score"`
	LogLevel   string  `json:"log_level"`

	// Encoder label-encodes the corpus passed to Train. Defaults to an
	// IndexEncoder over VocabSize.
	Encoder Encoder            `json:"-"`
	Logger  logrus.FieldLogger `json:"-"`
	Metrics *Metrics           `json:"-"`
	// OnEpoch, if non-nil, is called after every epoch with its stats.
	// It runs without the Trainer's lock held and may call its accessors.
	OnEpoch func(EpochStats) `json:"-"`
}

func DefaultConfig() Config {
	return Config{
		Alpha:      0.01,
		Epochs:     5,
		EmbDim:     16,
		Window:     2,
		Init:       InitXavier,
		TrackScore: true,
		LogLevel:   "info",
	}
}

// LoadConfig reads a JSON config file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "open config")
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "decode config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.VocabSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "vocab_size must be positive, got %d", c.VocabSize)
	case c.Alpha <= 0:
		return errors.Wrapf(ErrInvalidConfig, "alpha must be positive, got %g", c.Alpha)
	case c.Epochs <= 0:
		return errors.Wrapf(ErrInvalidConfig, "epochs must be positive, got %d", c.Epochs)
	case c.EmbDim <= 0:
		return errors.Wrapf(ErrInvalidConfig, "emb_dim must be positive, got %d", c.EmbDim)
	case c.Window < 0:
		return errors.Wrapf(ErrInvalidConfig, "window must not be negative, got %d", c.Window)
	}
	_, err := initializerFor(c.Init)
	return err
}
