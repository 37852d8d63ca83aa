package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgrasp/bias"
	"github.com/katalvlaran/lvgrasp/localsearch"
	"github.com/katalvlaran/lvgrasp/reactive"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Default values applied before decoding.
const (
	DefaultIterations = 1000
	DefaultRuns       = 10
	DefaultSeed       = 1
)

// Config is one benchmark session.
type Config struct {
	Instances           []string        `yaml:"instances" validate:"dive,required"`
	Random              []RandomSpec    `yaml:"random" validate:"dive"`
	Constrained         bool            `yaml:"constrained"`
	Iterations          int             `yaml:"iterations" validate:"gt=0"`
	Runs                int             `yaml:"runs" validate:"gt=0"`
	Seed                int64           `yaml:"seed"`
	Parallelism         int             `yaml:"parallelism" validate:"gte=0"`
	Tolerance           float64         `yaml:"tolerance" validate:"gte=0"`
	StopOnNoImprovement bool            `yaml:"stop_on_no_improvement"`
	Variants            []VariantConfig `yaml:"variants" validate:"required,min=1,unique=Name,dive"`
}

// RandomSpec describes a seeded random QBF instance.
type RandomSpec struct {
	N    int   `yaml:"n" validate:"gt=0"`
	Lo   int   `yaml:"lo"`
	Hi   int   `yaml:"hi" validate:"gtefield=Lo"`
	Seed int64 `yaml:"seed"`
}

// VariantConfig is one GRASP configuration. Iterations overrides the
// session value when positive.
type VariantConfig struct {
	Name       string          `yaml:"name" validate:"required"`
	Alpha      float64         `yaml:"alpha" validate:"gte=0,lte=1"`
	Reactive   *ReactiveConfig `yaml:"reactive"`
	Bias       string          `yaml:"bias" validate:"omitempty,biasname"`
	BiasDegree float64         `yaml:"bias_degree" validate:"gte=0"`
	Iterations int             `yaml:"iterations" validate:"gte=0"`
}

// ReactiveConfig selects Reactive GRASP. Values wins over PoolSize.
type ReactiveConfig struct {
	PoolSize       int       `yaml:"pool_size" validate:"omitempty,gte=2"`
	Values         []float64 `yaml:"values" validate:"omitempty,min=2,dive,gte=0,lte=1"`
	UpdateInterval int       `yaml:"update_interval" validate:"gte=0"`
}

// validate is shared by every Validate call.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("biasname", validateBiasName); err != nil {
		panic(fmt.Sprintf("config: register biasname validation: %v", err))
	}
}

// validateBiasName accepts every name bias.ByName resolves.
func validateBiasName(fl validator.FieldLevel) bool {
	_, err := bias.ByName(fl.Field().String(), 1)
	return err == nil
}

// Default returns a session with the package defaults and no instances.
func Default() Config {
	return Config{
		Iterations: DefaultIterations,
		Runs:       DefaultRuns,
		Seed:       DefaultSeed,
		Tolerance:  localsearch.DefaultTolerance,
	}
}

// Parse decodes YAML from r over Default and validates the result.
// Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks struct tags and cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if len(c.Instances) == 0 && len(c.Random) == 0 {
		return fmt.Errorf("%w: no instances or random instances given", ErrInvalid)
	}
	for _, v := range c.Variants {
		if v.Reactive == nil {
			continue
		}
		if len(v.Reactive.Values) == 0 && v.Reactive.PoolSize < reactive.MinPoolSize {
			return fmt.Errorf("%w: variant %q: reactive needs pool_size >= %d or values",
				ErrInvalid, v.Name, reactive.MinPoolSize)
		}
	}

	return nil
}
