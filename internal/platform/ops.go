package platform

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/knowling/pkg/adapters/fs"
	"github.com/aretw0/knowling/pkg/adapters/rpc"
	"github.com/aretw0/knowling/pkg/core"
)

// Open returns the backend selected by opts. The URI is adapter specific: a
// vault directory for "fs", a base URL for "http".
func Open(uri string, opts ...Option) (core.Backend, error) {
	return open(uri, buildOptions(opts))
}

func open(uri string, o *options) (core.Backend, error) {
	if o.backend != nil {
		return o.backend, nil
	}

	switch o.adapter {
	case AdapterFS:
		return openFS(uri, o)
	case AdapterHTTP:
		backend, err := rpc.NewClient(uri, rpc.WithHTTPClient(o.httpClient))
		if err != nil {
			return nil, err
		}
		o.logger.Debug("using remote note service", "url", uri)
		return backend, nil
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}

func openFS(path string, o *options) (core.Backend, error) {
	if path == "" {
		return nil, fmt.Errorf("vault path is required")
	}
	autoInit, _ := o.config["auto_init"].(bool)
	readOnly, _ := o.config["read_only"].(bool)
	now, _ := o.config["clock"].(func() time.Time)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	repo := fs.NewRepository(fs.Config{
		Path:         path,
		AutoInit:     autoInit,
		ReadOnly:     readOnly,
		SystemDir:    SystemDir,
		Logger:       o.logger,
		Now:          now,
		ErrorHandler: errorHandler,
	})
	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}
	o.logger.Debug("vault opened", "path", path, "read_only", readOnly)
	return repo, nil
}
