package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Mode says what the detail screen was opened for.
type Mode string

const (
	ModeCreate Mode = "CREATE"
	ModeUpdate Mode = "UPDATE"
)

const (
	routeList   = "list"
	routeDetail = "detail"
)

var ErrBadRoute = errors.New("bad route")

// Route is one entry of the navigation stack: "list" or "detail/{id}/{mode}".
type Route struct {
	Name string
	ID   int
	Mode Mode
}

func ListRoute() Route { return Route{Name: routeList} }

// CreateRoute uses id 0: the store assigns the real id on submit.
func CreateRoute() Route { return Route{Name: routeDetail, Mode: ModeCreate} }

func UpdateRoute(id int) Route { return Route{Name: routeDetail, ID: id, Mode: ModeUpdate} }

func (r Route) IsDetail() bool { return r.Name == routeDetail }

func (r Route) String() string {
	if r.Name != routeDetail {
		return r.Name
	}
	return fmt.Sprintf("%s/%d/%s", r.Name, r.ID, r.Mode)
}

// ParseRoute is the inverse of Route.String.
func ParseRoute(s string) (Route, error) {
	if s == routeList {
		return ListRoute(), nil
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 || parts[0] != routeDetail {
		return Route{}, fmt.Errorf("%w: %q", ErrBadRoute, s)
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return Route{}, fmt.Errorf("%w: id %q", ErrBadRoute, parts[1])
	}
	switch m := Mode(parts[2]); m {
	case ModeCreate, ModeUpdate:
		return Route{Name: routeDetail, ID: id, Mode: m}, nil
	default:
		return Route{}, fmt.Errorf("%w: mode %q", ErrBadRoute, parts[2])
	}
}

// navigator is the back stack. The root is always the list screen.
type navigator struct {
	stack []Route
}

func newNavigator() navigator { return navigator{stack: []Route{ListRoute()}} }

func (n *navigator) Push(r Route) { n.stack = append(n.stack, r) }

// PopToRoot drops everything above the list screen.
func (n *navigator) PopToRoot() { n.stack = n.stack[:1] }

func (n navigator) Current() Route { return n.stack[len(n.stack)-1] }

func (n navigator) Depth() int { return len(n.stack) }
