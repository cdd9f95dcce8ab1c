// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. The request gate resolves bearer tokens into identities for every
// request; requireAuth and the unauthorized entry point enforce the
// configured route protection policy before requests are delegated to the
// service layer.
package http
