package client

import "context"

// Route names understood by a Navigator.
const (
	RouteHome     = "Home"
	RouteAddNote  = "AddNote"
	RouteEditNote = "EditNote"
)

// Navigator moves the user interface to a named route.
type Navigator interface {
	Navigate(ctx context.Context, route string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, route string) error

// Navigate implements Navigator.
func (f NavigatorFunc) Navigate(ctx context.Context, route string) error {
	return f(ctx, route)
}
