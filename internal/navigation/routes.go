// Package navigation declares the list and detail destinations and the
// paths that address them.
package navigation

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
)

// Route names
const (
	RouteList   = "list"
	RouteDetail = "detail"
)

// Route path templates
const (
	ListTemplate   = "/list"
	DetailTemplate = "/detail/{name}"
)

// ErrUnknownPath is returned when a path addresses no destination
var ErrUnknownPath = errors.New("unknown navigation path")

// Route is a resolved destination. Person is set only for detail and holds
// the decoded display name.
type Route struct {
	Name   string
	Person string
	Path   string
}

// IsDetail reports whether r is the detail destination
func (r Route) IsDetail() bool {
	return r.Name == RouteDetail
}

// Routes owns the router the destinations are declared on. Handlers may be
// attached to the named routes by an HTTP surface; resolution does not
// need them.
type Routes struct {
	router *mux.Router
}

// New declares the destinations on a fresh router
func New() *Routes {
	router := mux.NewRouter().UseEncodedPath().SkipClean(true)

	router.Path(ListTemplate).Methods(http.MethodGet, http.MethodHead).Name(RouteList)
	router.Path(DetailTemplate).Methods(http.MethodGet, http.MethodHead).Name(RouteDetail)

	return &Routes{router: router}
}

// Router returns the underlying router
func (r *Routes) Router() *mux.Router {
	return r.router
}

// ListPath returns the path of the list destination
func (r *Routes) ListPath() string {
	return ListTemplate
}

// DetailPath returns the detail path for name. The name is escaped so any
// character survives the trip back through Resolve.
func (r *Routes) DetailPath(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("detail path: empty name")
	}
	u, err := r.router.Get(RouteDetail).URLPath("name", url.PathEscape(name))
	if err != nil {
		return "", fmt.Errorf("detail path for %q: %w", name, err)
	}
	// mux substitutes variables verbatim, so Path already holds the escaped form
	return u.Path, nil
}

// Resolve maps an escaped path back to its destination
func (r *Routes) Resolve(path string) (Route, error) {
	u, err := url.Parse(path)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %s", ErrUnknownPath, path)
	}

	req := &http.Request{Method: http.MethodGet, URL: u}
	var match mux.RouteMatch
	if !r.router.Match(req, &match) || match.MatchErr != nil {
		return Route{}, fmt.Errorf("%w: %s", ErrUnknownPath, path)
	}

	return routeFromMatch(match.Route.GetName(), match.Vars, u.EscapedPath())
}

// FromRequest resolves the destination a matched request addresses
func FromRequest(req *http.Request) (Route, error) {
	current := mux.CurrentRoute(req)
	if current == nil {
		return Route{}, fmt.Errorf("%w: %s", ErrUnknownPath, req.URL.EscapedPath())
	}
	return routeFromMatch(current.GetName(), mux.Vars(req), req.URL.EscapedPath())
}

func routeFromMatch(name string, vars map[string]string, path string) (Route, error) {
	switch name {
	case RouteList:
		return Route{Name: RouteList, Path: path}, nil
	case RouteDetail:
		person, err := url.PathUnescape(vars["name"])
		if err != nil {
			return Route{}, fmt.Errorf("%w: bad name escape in %s", ErrUnknownPath, path)
		}
		return Route{Name: RouteDetail, Person: person, Path: path}, nil
	default:
		return Route{}, fmt.Errorf("%w: %s", ErrUnknownPath, path)
	}
}
