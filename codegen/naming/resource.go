package naming

import "strings"

// NamingContext controls how SpanName combines the segments of a route.
type NamingContext struct {
	// Singularize singularizes every segment name.
	Singularize bool `yaml:"singularize" json:"singularize"`
	// Depth caps the number of segments included; 0 means no limit.
	Depth int `yaml:"depth" json:"depth"`
	// TopLevel is the number of leading segments that form the API root and
	// are never included.
	TopLevel int `yaml:"topLevel" json:"topLevel"`
	// ReverseOrder appends segment names from the deepest segment outwards
	// instead of preserving route order.
	ReverseOrder bool `yaml:"reverseOrder" json:"reverseOrder"`
}

// ResourceName converts a single route segment into a capitalized name.
// It returns "" when segment is blank.
func (n *Namer) ResourceName(segment string, singularize bool) string {
	if isBlank(segment) {
		return ""
	}
	name := Capitalize(segment)
	if singularize {
		name = n.Singularize(name)
	}
	return Capitalize(n.CleanForIdentifier(name))
}

// LastResourceName returns the ResourceName of the last segment of route,
// or "" when route has none.
func (n *Namer) LastResourceName(route string, singularize bool) string {
	i := strings.LastIndexByte(route, '/')
	if i == -1 {
		return ""
	}
	return n.ResourceName(route[i+1:], singularize)
}

// SpanName builds a compound name from the segments of route. Segments are
// visited from the last one back to the one following the TopLevel root
// segments. Segment indexes count the empty segment preceding a leading '/'
// so that TopLevel 0 keeps every segment of "/a/b".
func (n *Namer) SpanName(route string, nc NamingContext) string {
	if isBlank(route) {
		return ""
	}
	parts := strings.Split(route, "/")
	var names []string
	for i := len(parts) - 1; i >= nc.TopLevel+1; i-- {
		if !isBlank(parts[i]) {
			names = append(names, n.ResourceName(parts[i], nc.Singularize))
		}
		if nc.Depth > 0 && len(names) >= nc.Depth {
			break
		}
	}
	if !nc.ReverseOrder {
		for l, r := 0, len(names)-1; l < r; l, r = l+1, r-1 {
			names[l], names[r] = names[r], names[l]
		}
	}
	return strings.Join(names, "")
}

// ResourceName converts a route segment into a name using the default Namer.
func ResourceName(segment string, singularize bool) string {
	return Default().ResourceName(segment, singularize)
}

// SpanName builds a compound route name using the default Namer.
func SpanName(route string, nc NamingContext) string {
	return Default().SpanName(route, nc)
}
