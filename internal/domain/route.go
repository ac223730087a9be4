package domain

// Route identifies a screen of the application.
type Route string

const (
	RouteHome      Route = "home"
	RouteLogin     Route = "login"
	RouteSignup    Route = "signup"
	RouteDashboard Route = "dashboard"
	RouteTickets   Route = "tickets"
	RouteNotFound  Route = "not_found"
)

// ParseRoute maps a raw route name to a Route. Unknown names map to RouteNotFound.
func ParseRoute(raw string) Route {
	switch r := Route(raw); r {
	case RouteHome, RouteLogin, RouteSignup, RouteDashboard, RouteTickets:
		return r
	}
	return RouteNotFound
}

// Public reports whether the route is reachable without a session.
func (r Route) Public() bool {
	return r == RouteHome || r == RouteLogin || r == RouteSignup
}
