package naming

import "strings"

// Segments splits route on '/' and discards empty segments.
func Segments(route string) []string {
	parts := strings.Split(route, "/")
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// IsParamSegment reports whether segment holds a route parameter, i.e.
// contains both '{' and '}'.
func IsParamSegment(segment string) bool {
	return strings.Contains(segment, "{") && strings.Contains(segment, "}")
}

// TrimRoot removes the first levels non-empty segments of route, e.g. the
// API root "/v1" of "/v1/users/{id}". It returns "" when nothing is left.
func TrimRoot(route string, levels int) string {
	rest := route
	for i := 0; i < levels; i++ {
		rest = strings.TrimLeft(rest, "/")
		j := strings.IndexByte(rest, '/')
		if j == -1 {
			return ""
		}
		rest = rest[j:]
	}
	return rest
}

// IsURIParamResource reports whether a relative route is exactly one
// parameter such as "{id}", ignoring surrounding noise.
func IsURIParamResource(resource string) bool {
	if resource == "" {
		return false
	}
	r := CleanFreeText(strings.ToLower(resource))
	return strings.HasPrefix(r, "{") && strings.HasSuffix(r, "}")
}

// ExtractURIParams returns the names of the parameters of route in order of
// appearance. Only the first parameter of each segment is returned.
func ExtractURIParams(route string) []string {
	var params []string
	for _, seg := range Segments(route) {
		start := strings.IndexByte(seg, '{')
		end := strings.IndexByte(seg, '}')
		if start != -1 && end != -1 && start < end {
			params = append(params, seg[start+1:end])
		}
	}
	return params
}

// shortenRoute reduces route to its last two segments.
func shortenRoute(route string) string {
	segs := Segments(route)
	if len(segs) < 2 {
		return route
	}
	return "/" + segs[len(segs)-2] + "/" + segs[len(segs)-1]
}
