/*
Package ipc serves email domain suggestions over msgpack on a byte stream,
usually the stdin/stdout pair of a child process.

Every request carries an id that is echoed in its response. The action field
selects the operation and defaults to complete:

	{"id": "r1", "i": "jo@gm"}
	{"id": "r1", "s": [{"d": "gmail.com", "c": "ail.com"}], "c": 1, "t": 12}

The domain list can be read and replaced at runtime. An empty list restores
the built-in providers; lists are never merged:

	{"id": "r2", "a": "set_domains", "d": ["proton.me"]}
	{"id": "r3", "a": "get_domains"}

Failed requests answer with an error message and code:

	{"id": "r4", "e": "unknown action: reload", "code": 400}

The server writes {"status": "ready", "v": "0.1.0"} once before reading any request and
returns when the input reaches EOF.
*/
package ipc

// Actions understood by the server.
const (
	ActionComplete   = "complete"
	ActionSetDomains = "set_domains"
	ActionGetDomains = "get_domains"
	ActionHealth     = "health"
)

// Request is the union of all request shapes.
type Request struct {
	ID      string   `msgpack:"id"`
	Action  string   `msgpack:"a,omitempty"`
	Input   string   `msgpack:"i,omitempty"`
	Domains []string `msgpack:"d,omitempty"`
}

// Suggestion is one completion candidate.
type Suggestion struct {
	Domain     string `msgpack:"d"`
	Completion string `msgpack:"c"`
}

// CompletionResponse answers a complete request. TimeTaken is in microseconds.
type CompletionResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// DomainsResponse answers set_domains and get_domains with the effective list.
type DomainsResponse struct {
	ID      string   `msgpack:"id"`
	Status  string   `msgpack:"status"`
	Domains []string `msgpack:"d"`
}

// StatusResponse is the ready banner and the health answer. Version is set on
// the banner only.
type StatusResponse struct {
	ID      string `msgpack:"id,omitempty"`
	Status  string `msgpack:"status"`
	Version string `msgpack:"v,omitempty"`
}

// ErrorResponse reports a rejected request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"code"`
}
