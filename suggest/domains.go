package suggest

// DefaultDomains is the built-in provider list used when no domains are
// configured.
var DefaultDomains = []string{
	"gmail.com",
	"googlemail.com",
	"comcast.net",
	"yahoo.com",
	"hotmail.com",
	"hotmail.co.uk",
	"aol.com",
	"msn.com",
	"yahoo.co.uk",
	"live.com",
	"live.co.uk",
	"icloud.com",
}

// Resolve returns the effective domain list for a configuration.
//
// A nil or empty list yields the defaults. Any other list replaces the
// defaults entirely; lists are never merged.
func Resolve(domains []string) []string {
	if len(domains) == 0 {
		return append([]string(nil), DefaultDomains...)
	}
	return append([]string(nil), domains...)
}
