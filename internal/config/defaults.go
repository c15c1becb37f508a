// Package config provides common default configuration values shared across
// hiserve components (HTTP server, daemon CLI, hiservectl). Centralizing the
// literals keeps the daemon flags, the server config, and the CLI in agreement
// about what an out-of-the-box hiserved does.
package config

const (
	// DefaultBindAddr is the default bind address for the HTTP server.
	// Using 0.0.0.0 allows phones and tablets on the LAN to reach the
	// receiver page, which is the whole point of the server.
	DefaultBindAddr = "0.0.0.0"

	// DefaultPort is the fixed port the receiver setup has always used.
	// The receiver page and its docs reference :8082, so keep it stable.
	DefaultPort = 8082

	// DefaultIndexFile is the landing page served for "/" and "/index.html".
	// The file is expected to sit next to the hiserved binary.
	DefaultIndexFile = "web-receiver.html"

	// DefaultProbeAddr is the external address dialed (UDP, nothing is sent)
	// to discover the outward-facing LAN IP for the startup banner.
	DefaultProbeAddr = "8.8.8.8:80"

	// DefaultLogLevel is the default log level for all components.
	// INFO provides good balance of visibility without verbose debug output.
	DefaultLogLevel = "INFO"
)
