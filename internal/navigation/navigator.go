package navigation

import "sync"

// Navigator keeps the back stack of visited paths. The bottom entry is
// always the list destination.
type Navigator struct {
	routes *Routes

	mu    sync.Mutex
	stack []string
}

// NewNavigator returns a navigator positioned on the list
func NewNavigator(routes *Routes) *Navigator {
	if routes == nil {
		routes = New()
	}
	return &Navigator{
		routes: routes,
		stack:  []string{routes.ListPath()},
	}
}

// Routes returns the route table the navigator resolves against
func (n *Navigator) Routes() *Routes {
	return n.routes
}

// Open pushes the detail destination for name
func (n *Navigator) Open(name string) error {
	path, err := n.routes.DetailPath(name)
	if err != nil {
		return err
	}

	n.mu.Lock()
	n.stack = append(n.stack, path)
	n.mu.Unlock()
	return nil
}

// Back pops one destination. It returns false when already on the list.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.stack) <= 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

// Path returns the escaped path on top of the stack
func (n *Navigator) Path() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of entries on the stack
func (n *Navigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack)
}

// Current resolves the top of the stack. Paths on the stack were built by
// the same routes, so resolution only fails on a programming error; the
// list is returned in that case.
func (n *Navigator) Current() Route {
	route, err := n.routes.Resolve(n.Path())
	if err != nil {
		return Route{Name: RouteList, Path: n.routes.ListPath()}
	}
	return route
}
