// Package http implements the HTTP transport layer of the service. It
// provides middleware, route handlers, and request/response utilities for the
// REST API. Token gating, admin gating, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
//
// Authorization failures deliberately return generic bodies: a caller must
// not be able to distinguish a missing resource from a bad token, and nothing
// about the envelope scheme may leak through error text.
package http
