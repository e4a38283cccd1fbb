package nav

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Screen identifies a navigation destination.
type Screen int

const (
	// ScreenHome is the list editor and the start destination.
	ScreenHome Screen = iota
	// ScreenResult renders the list carried in the route.
	ScreenResult
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenResult:
		return "result"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

const (
	// RouteHome is the parameterless home route.
	RouteHome = "home"
	// RouteResultPattern documents the result route and its argument.
	RouteResultPattern = resultPath + "?" + ArgListData + "={" + ArgListData + "}"
	// ArgListData names the result route's payload argument.
	ArgListData = "listData"

	resultPath = "resultContent/"
)

// Destination is a parsed route.
type Destination struct {
	ID     uuid.UUID
	Screen Screen
	Route  string
	args   map[string]string
}

// Arg returns the named route argument, or "" when it is absent.
func (d Destination) Arg(name string) string {
	return d.args[name]
}

// ResultRoute builds the result route carrying payload. The payload must
// already be escaped for use inside a query value.
func ResultRoute(payload string) string {
	return resultPath + "?" + ArgListData + "=" + payload
}

// Parse matches route against the known screens. Query values are returned
// raw; decoding them is up to the screen.
func Parse(route string) (Destination, error) {
	path, query, _ := strings.Cut(route, "?")
	path = strings.TrimPrefix(path, "/")

	switch path {
	case RouteHome:
		if query != "" {
			return Destination{}, fmt.Errorf("%w: %q takes no arguments", ErrUnknownRoute, route)
		}
		return Destination{ID: uuid.New(), Screen: ScreenHome, Route: route}, nil
	case resultPath, strings.TrimSuffix(resultPath, "/"):
		args := parseQuery(query)
		if _, ok := args[ArgListData]; !ok {
			args[ArgListData] = ""
		}
		return Destination{ID: uuid.New(), Screen: ScreenResult, Route: route, args: args}, nil
	default:
		return Destination{}, fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}
}

func parseQuery(query string) map[string]string {
	args := make(map[string]string)
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if _, seen := args[key]; seen {
			continue
		}
		args[key] = value
	}
	return args
}
