// Package routes registers route groups on a net/http ServeMux using method patterns.
package routes

import "net/http"

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Description string
	Routes      []Route
	Children    []Group
}

// Route is one method and pattern bound to a handler. Pattern is relative to the group prefix.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
