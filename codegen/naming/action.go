package naming

import (
	"strings"
	"unicode/utf8"
)

// ActionType is the HTTP verb of an action.
type ActionType string

const (
	// ActionGet reads a resource.
	ActionGet ActionType = "GET"
	// ActionPost creates a resource.
	ActionPost ActionType = "POST"
	// ActionPut replaces a resource.
	ActionPut ActionType = "PUT"
	// ActionPatch modifies a resource.
	ActionPatch ActionType = "PATCH"
	// ActionDelete removes a resource.
	ActionDelete ActionType = "DELETE"
)

// maxNamedSegments caps the number of literal segments used in a method
// name. Two literal segments normally each carry a parameter; anything
// further up belongs to the parent controller.
const maxNamedSegments = 2

// ParseActionType returns the ActionType for an HTTP method name, ignoring
// case. Unknown methods are returned upper-cased and map to the "do" prefix.
func ParseActionType(method string) ActionType {
	return ActionType(strings.ToUpper(strings.TrimSpace(method)))
}

// ActionName infers a method name using the default Namer.
func ActionName(controllerRoute, actionRoute string, verb ActionType) string {
	return Default().ActionName(controllerRoute, actionRoute, verb)
}

// ActionName infers the name of the method implementing verb on
// actionRoute inside the controller mapped to controllerRoute, e.g.
// "getUserById" for GET /users/{id}. It returns "" when actionRoute is blank.
func (n *Namer) ActionName(controllerRoute, actionRoute string, verb ActionType) string {
	route := actionRoute
	if controllerRoute != actionRoute &&
		strings.Count(route, "{") < strings.Count(route, "/")-1 {
		route = shortenRoute(route)
	}
	segs := Segments(route)
	if isBlank(route) || len(segs) == 0 {
		return ""
	}

	w := n.walk(segs)
	name := w.name
	tail := segs[len(segs)-1]
	if n.Singularize(tail) != tail && !strings.HasSuffix(tail, "details") &&
		(verb == ActionPost || (verb == ActionPut && w.idInPath)) {
		name = n.Singularize(name)
	}
	return intent(verb, w.idInPath) + name
}

// segmentWalk is the state of the backward walk over the segments of a route.
type segmentWalk struct {
	name            string
	literals        int
	singularizeNext bool
	idInPath        bool
}

// walk visits segs from the last one backwards until two literal segments
// have been consumed.
func (n *Namer) walk(segs []string) segmentWalk {
	var w segmentWalk
	last := len(segs) - 1
	for i := last; i >= 0 && w.literals < maxNamedSegments; i-- {
		seg := segs[i]
		if IsParamSegment(seg) {
			if i == last {
				w.idInPath = true
				prev := ""
				if i > 0 {
					prev = segs[i-1]
				}
				w.name = n.byName(prev, seg)
			}
			// The parameter selects one item of the collection named by
			// the preceding segment.
			w.singularizeNext = true
			continue
		}
		clean := n.identifier(seg)
		lit := Capitalize(clean)
		if w.singularizeNext {
			if !strings.HasSuffix(clean, "details") {
				lit = n.Singularize(lit)
			}
			w.singularizeNext = false
		}
		w.name = lit + w.name
		w.literals++
	}
	return w
}

// byName returns the "By..." suffix for a trailing parameter segment. A bare
// parameter contributes the part of its name that differs from the previous
// segment so that /users/{userId} yields "ById".
func (n *Namer) byName(prev, seg string) string {
	if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
		diff := difference(strings.ToLower(prev), seg[1:len(seg)-1])
		return "By" + Capitalize(n.identifier(diff))
	}
	name := "By"
	for _, part := range strings.FieldsFunc(seg, func(r rune) bool { return r == '{' || r == '}' }) {
		name += Capitalize(n.identifier(part))
	}
	return name
}

// identifier sanitizes s and maps blank results to "".
func (n *Namer) identifier(s string) string {
	if c := n.CleanForIdentifier(s); !isBlank(c) {
		return c
	}
	return ""
}

// intent maps verb to a method name prefix. A POST on a route ending with a
// parameter reads as an update.
func intent(verb ActionType, idInPath bool) string {
	switch {
	case verb == ActionDelete:
		return "delete"
	case verb == ActionGet:
		return "get"
	case verb == ActionPost && !idInPath:
		return "create"
	case verb == ActionPost, verb == ActionPut:
		return "update"
	case verb == ActionPatch:
		return "modify"
	default:
		return "do"
	}
}

// difference returns the remainder of b starting at the first rune where a
// and b differ. It returns "" when b is a prefix of a.
func difference(a, b string) string {
	i := 0
	for i < len(a) && i < len(b) {
		ra, sa := utf8.DecodeRuneInString(a[i:])
		rb, sb := utf8.DecodeRuneInString(b[i:])
		if ra != rb || sa != sb {
			break
		}
		i += sa
	}
	return b[i:]
}
