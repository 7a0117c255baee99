// Package web serves the brand directory page.
//
// Every interaction is a GET link: the query string carries the next
// selection and language, and the theme travels in a session cookie once
// chosen. Handlers decode that state, render the page from it, and never
// hold per-user state on the server.
package web
