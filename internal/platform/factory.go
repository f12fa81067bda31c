package platform

import (
	"github.com/aretw0/knowling/pkg/client"
)

// New opens the backend selected by opts and wraps it in a client.
//
//	c, err := knowling.New("./notes", knowling.WithAutoInit(true))
func New(uri string, opts ...Option) (*client.Client, error) {
	o := buildOptions(opts)

	backend, err := open(uri, o)
	if err != nil {
		return nil, err
	}

	clientOpts := []client.Option{client.WithLogger(o.logger)}
	if o.calendar != nil {
		clientOpts = append(clientOpts, client.WithCalendar(o.calendar))
	}
	return client.New(backend, clientOpts...), nil
}
