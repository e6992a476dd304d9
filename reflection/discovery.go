package reflection

import (
	"go.uber.org/zap"

	"github.com/skdltmxn/refmeta/classinfo"
)

// MetadataSource is the well-known accessor a class exposes for its
// embedded metadata record.
type MetadataSource interface {
	ReflectionMetadata() []byte
}

// Blob is an encoded record usable as a MetadataSource, e.g. from go:embed.
type Blob []byte

func (b Blob) ReflectionMetadata() []byte { return b }

// Discover decodes the metadata record exposed by src. A nil source or an
// empty blob means the class has no metadata and yields nil.
//
// Discover runs while the type-initialization lock is held. It must not call
// a Registry and it must not return an error: a record that cannot be used,
// including one with a foreign version tag, is logged at Fatal level and
// ends the process.
func Discover(src MetadataSource, log *zap.Logger) *classinfo.Record {
	if src == nil {
		return nil
	}
	data := src.ReflectionMetadata()
	if len(data) == 0 {
		return nil
	}

	rec, err := classinfo.Parse(data)
	if err != nil {
		log.Fatal("unusable class metadata",
			zap.Uint16("want_version", classinfo.CurrentVersion),
			zap.Error(err))
		return nil
	}
	return rec
}

type options struct {
	log *zap.Logger
}

// Option configures a Universe or a Resolver.
type Option func(*options)

// WithLogger sets the logger. The default logger discards output.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
