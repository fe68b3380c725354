// Package pagescript is a self-contained component that serves the pagekit
// browser runtime and the rendered inline behavior snippet over net/http.
package pagescript
