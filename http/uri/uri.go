package uri

import "strings"

// Auth is the userinfo part of the authority.
type Auth struct {
	Username, Password string
}

// URI is a decomposed request target. Every string refers to the buffer the URI
// was parsed from: the buffer must outlive the URI and must not be modified while
// it is in use. Use Clone to detach the URI from the buffer.
type URI struct {
	Scheme   string
	Auth     Auth
	Host     string
	Port     uint16
	Path     string
	Query    string
	Fragment string
}

// Clone returns a copy of the URI owning its own memory.
func (u URI) Clone() URI {
	return URI{
		Scheme: strings.Clone(u.Scheme),
		Auth: Auth{
			Username: strings.Clone(u.Auth.Username),
			Password: strings.Clone(u.Auth.Password),
		},
		Host:     strings.Clone(u.Host),
		Port:     u.Port,
		Path:     strings.Clone(u.Path),
		Query:    strings.Clone(u.Query),
		Fragment: strings.Clone(u.Fragment),
	}
}
