// Package routing decides which screen a client may reach for a given
// session state, resolved user view and requested path. The decision function
// is pure and total: every input combination maps to exactly one screen, and
// evaluating it has no side effects, so it can be re-run on every navigation
// and every user-view change.
package routing

import (
	"strings"

	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"
)

// Screen identifies a renderable view.
type Screen string

const (
	ScreenLoading    Screen = "loading"
	ScreenLogin      Screen = "login"
	ScreenSignup     Screen = "signup"
	ScreenOnboarding Screen = "onboarding"
	ScreenNotFound   Screen = "not_found"

	// Creator screens.
	ScreenCreatorHome     Screen = "creator_home"
	ScreenEventHistory    Screen = "event_history"
	ScreenProductShowcase Screen = "product_showcase"
	ScreenCreatorProfile  Screen = "creator_profile"
	ScreenSchemes         Screen = "schemes"
	ScreenGuidance        Screen = "guidance"
	ScreenNotifications   Screen = "notifications"

	// Investor screens.
	ScreenProductDiscovery      Screen = "product_discovery"
	ScreenProductDetail         Screen = "product_detail"
	ScreenCreatorPublicProfile  Screen = "creator_public_profile"
	ScreenInvestorProfile       Screen = "investor_profile"
	ScreenInvestorNotifications Screen = "investor_notifications"

	// Organizer screens.
	ScreenOrganizerEvents        Screen = "organizer_events"
	ScreenOrganizerInvitations   Screen = "organizer_invitations"
	ScreenOrganizerApplications  Screen = "organizer_applications"
	ScreenOrganizerNotifications Screen = "organizer_notifications"
	ScreenOrganizerProfile       Screen = "organizer_profile"
)

// Decision is the outcome of resolving a navigation request. Path is the path
// the client should render; it differs from the requested path only when the
// request was redirected to a gate or a default landing.
type Decision struct {
	Screen Screen
	Path   string
}

const (
	pathLogin      = "/login"
	pathSignup     = "/signup"
	pathOnboarding = "/onboarding"
)

// route matches a path pattern against one screen. Pattern segments starting
// with ':' match any single non-empty segment.
type route struct {
	pattern string
	screen  Screen
}

// roleScreenSet is the complete reachable surface for one role, plus the
// landing path used when a request falls outside it.
type roleScreenSet struct {
	defaultPath string
	routes      []route
}

var roleScreenSets = map[entity.Role]roleScreenSet{
	entity.RoleCreator: {
		defaultPath: "/",
		routes: []route{
			{"/", ScreenCreatorHome},
			{"/history", ScreenEventHistory},
			{"/products", ScreenProductShowcase},
			{"/profile", ScreenCreatorProfile},
			{"/schemes", ScreenSchemes},
			{"/guidance", ScreenGuidance},
			{"/notifications", ScreenNotifications},
		},
	},
	entity.RoleInvestor: {
		defaultPath: "/investor/discover",
		routes: []route{
			{"/investor/discover", ScreenProductDiscovery},
			{"/investor/product/:id", ScreenProductDetail},
			{"/investor/creator/:id", ScreenCreatorPublicProfile},
			{"/investor/profile", ScreenInvestorProfile},
			{"/investor/notifications", ScreenInvestorNotifications},
		},
	},
	entity.RoleOrganizer: {
		defaultPath: "/organizer/events",
		routes: []route{
			{"/organizer/events", ScreenOrganizerEvents},
			{"/organizer/invitations", ScreenOrganizerInvitations},
			{"/organizer/applications", ScreenOrganizerApplications},
			{"/organizer/notifications", ScreenOrganizerNotifications},
			{"/organizer/profile", ScreenOrganizerProfile},
		},
	},
}

// Resolve maps {session state, user view, requested path} to a screen decision.
//
// The precedence order is fixed: a loading session shows the loading view, no
// session shows the unauthenticated set, a session without onboarding is
// hard-gated to onboarding regardless of the requested destination, and an
// onboarded session reaches exactly its role's screen set. Requests for a path
// registered to a different role resolve to the caller's default landing;
// paths no role registers resolve to not-found.
func Resolve(state usecase.SessionState, view *entity.UserView, requestedPath string) Decision {
	requestedPath = normalizePath(requestedPath)

	if state == usecase.SessionStateLoading {
		return Decision{Screen: ScreenLoading, Path: requestedPath}
	}

	if state != usecase.SessionStateAuthenticated || view == nil {
		if requestedPath == pathSignup {
			return Decision{Screen: ScreenSignup, Path: pathSignup}
		}

		return Decision{Screen: ScreenLogin, Path: pathLogin}
	}

	if !view.Onboarded {
		// Hard gate: no deep link bypasses onboarding.
		return Decision{Screen: ScreenOnboarding, Path: pathOnboarding}
	}

	set, ok := roleScreenSets[view.Role]
	if !ok {
		// An unrecognized role reaches nothing.
		return Decision{Screen: ScreenLogin, Path: pathLogin}
	}

	if screen, matched := set.match(requestedPath); matched {
		return Decision{Screen: screen, Path: requestedPath}
	}

	if registeredByAnyRole(requestedPath) || isGatePath(requestedPath) {
		landing, _ := set.match(set.defaultPath)

		return Decision{Screen: landing, Path: set.defaultPath}
	}

	return Decision{Screen: ScreenNotFound, Path: requestedPath}
}

// DefaultLandingPath returns the landing path for a role, or the login path
// for an unrecognized role.
func DefaultLandingPath(role entity.Role) string {
	set, ok := roleScreenSets[role]
	if !ok {
		return pathLogin
	}

	return set.defaultPath
}

func (s roleScreenSet) match(path string) (Screen, bool) {
	for _, r := range s.routes {
		if matchPattern(r.pattern, path) {
			return r.screen, true
		}
	}

	return "", false
}

func registeredByAnyRole(path string) bool {
	for _, set := range roleScreenSets {
		if _, ok := set.match(path); ok {
			return true
		}
	}

	return false
}

// isGatePath reports whether the path belongs to the pre-authentication
// surface. An onboarded session requesting it lands on its role default.
func isGatePath(path string) bool {
	return path == pathLogin || path == pathSignup || path == pathOnboarding
}

func matchPattern(pattern, path string) bool {
	if pattern == path {
		return true
	}
	if !strings.Contains(pattern, ":") {
		return false
	}

	patternSegments := strings.Split(strings.Trim(pattern, "/"), "/")
	pathSegments := strings.Split(strings.Trim(path, "/"), "/")
	if len(patternSegments) != len(pathSegments) {
		return false
	}
	for i, segment := range patternSegments {
		if strings.HasPrefix(segment, ":") {
			if pathSegments[i] == "" {
				return false
			}

			continue
		}
		if segment != pathSegments[i] {
			return false
		}
	}

	return true
}

func normalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}

	return path
}
