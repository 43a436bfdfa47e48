package ratelimit

import "strings"

// unlimited lists GET paths that are never throttled
var unlimited = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

var noLimit = EndpointConfig{}

// MatchEndpoint picks the endpoint rule for a request. An exact path wins;
// otherwise the longest rule path ending in "/" that prefixes path is used,
// so "/v1/rooms/" covers "/v1/rooms/{id}/join". Nil means the default limit.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if method == "GET" && unlimited[path] {
		ec := noLimit
		return &ec
	}

	var best *EndpointConfig
	for i := range configs {
		ec := &configs[i]
		if ec.Method != method {
			continue
		}
		if ec.Path == path {
			return ec
		}
		if strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) &&
			(best == nil || len(ec.Path) > len(best.Path)) {
			best = ec
		}
	}
	return best
}
