package configsvc

import (
	"context"
	"os"

	"github.com/MKhiriev/go-pi-config/internal/discovery"
	"github.com/MKhiriev/go-pi-config/internal/logger"
	"github.com/MKhiriev/go-pi-config/internal/merge"
	"github.com/MKhiriev/go-pi-config/internal/store"
	"github.com/MKhiriev/go-pi-config/models"
	"github.com/MKhiriev/go-pi-config/validators"
)

type options[T any] struct {
	defaults   models.Document
	validator  validators.Validator[T]
	discoverer discovery.Discoverer
	homeDir    string
	workingDir string
	environ    func() []string
	log        *logger.Logger
	stack      *store.Stack
}

// Option configures [New].
type Option[T any] func(*options[T])

// WithDefaults sets the lowest-precedence values. The document is copied.
func WithDefaults[T any](defaults models.Document) Option[T] {
	return func(o *options[T]) {
		o.defaults = merge.Clone(defaults)
	}
}

// WithValidator sets the validation hook. Without one, [validators.Passthrough]
// is used.
func WithValidator[T any](v validators.Validator[T]) Option[T] {
	return func(o *options[T]) {
		o.validator = v
	}
}

// WithParseFunc sets the validation hook from a plain function.
func WithParseFunc[T any](fn func(ctx context.Context, doc models.Document) (T, error)) Option[T] {
	return func(o *options[T]) {
		o.validator = validators.Func[T](fn)
	}
}

// WithDiscoverer replaces the git-based project root discovery.
func WithDiscoverer[T any](d discovery.Discoverer) Option[T] {
	return func(o *options[T]) {
		o.discoverer = d
	}
}

// WithHomeDir overrides the user home directory.
func WithHomeDir[T any](dir string) Option[T] {
	return func(o *options[T]) {
		o.homeDir = dir
	}
}

// WithWorkingDir overrides the directory used when no project root is
// discovered. It is also where the default git discovery runs.
func WithWorkingDir[T any](dir string) Option[T] {
	return func(o *options[T]) {
		o.workingDir = dir
	}
}

// WithEnviron replaces [os.Environ] as the source of the environment layer.
func WithEnviron[T any](environ func() []string) Option[T] {
	return func(o *options[T]) {
		o.environ = environ
	}
}

// WithLogger sets the logger for debug events. Default is a no-op logger.
func WithLogger[T any](log *logger.Logger) Option[T] {
	return func(o *options[T]) {
		o.log = log
	}
}

// withStack injects a prepared layer stack; discovery and path options are
// then ignored.
func withStack[T any](s *store.Stack) Option[T] {
	return func(o *options[T]) {
		o.stack = s
	}
}

func (o *options[T]) fillDefaults() error {
	if o.validator == nil {
		o.validator = validators.Passthrough[T]()
	}
	if o.log == nil {
		o.log = logger.Nop()
	}
	if o.environ == nil {
		o.environ = os.Environ
	}
	if o.workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		o.workingDir = wd
	}
	if o.discoverer == nil {
		o.discoverer = discovery.NewGitDiscoverer(o.workingDir)
	}
	if o.homeDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		o.homeDir = home
	}

	return nil
}
