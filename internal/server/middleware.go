package server

import "github.com/gin-gonic/gin"

// CORS header values attached to every response. The receiver page is opened
// from file:// during development and fetched cross-origin by companion
// apps, so the set is fixed and permissive. Exactly these three headers,
// on every response, success or error.
const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET, POST, OPTIONS"
	corsAllowHeaders = "Content-Type"
)

// corsMiddleware attaches the fixed CORS header set to every response and
// answers OPTIONS preflight directly with 204.
func (s *Server) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", corsAllowOrigin)
		c.Header("Access-Control-Allow-Methods", corsAllowMethods)
		c.Header("Access-Control-Allow-Headers", corsAllowHeaders)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// rewriteMiddleware serves the receiver page for the landing paths. Requests
// for exactly "/" or "/index.html" are rewritten in place to the configured
// index file before the static handler runs; this is an internal rewrite,
// not an HTTP redirect, so the browser address bar keeps the original path.
func (s *Server) rewriteMiddleware() gin.HandlerFunc {
	index := "/" + s.config.IndexFile

	return func(c *gin.Context) {
		// When the index file is literally index.html, FileServer already
		// handles both landing paths (it serves index.html for "/" and
		// redirects "/index.html" there); rewriting would redirect-loop.
		if index == "/index.html" {
			c.Next()
			return
		}

		if p := c.Request.URL.Path; p == "/" || p == "/index.html" {
			c.Request.URL.Path = index
		}
		c.Next()
	}
}
