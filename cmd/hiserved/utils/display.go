// Package utils contains utility functions for the hiserved daemon.
package utils

import (
	"fmt"
)

// DisplayLogo prints the HiAudio ASCII logo with version information
func DisplayLogo(version string) {
	fmt.Println()
	fmt.Println(` ░░░░░░░░░░░░░░░░░░░░░░░░░░
 ░█░█░▀█▀░█▀█░█░█░█▀▄░▀█▀░█▀█░
 ░█▀█░░█░░█▀█░█░█░█░█░░█░░█░█░
 ░▀░▀░▀▀▀░▀░▀░▀▀▀░▀▀░░▀▀▀░▀▀▀░
 ░░░░░░░░░░░░░░░░░░░░░░░░░░`)
	fmt.Printf("\n HiAudio receiver server v%s\n", version)
	fmt.Println(" Streams the web receiver page to devices on your LAN")
	fmt.Println()
}

// DisplayAccessInfo prints the access URLs and operator guidance once the
// listener is bound. lanHost is the best-effort LAN IP ("localhost" when
// discovery failed, in which case the first line simply duplicates the
// localhost URL).
func DisplayAccessInfo(lanHost string, port int) {
	fmt.Println("🌐 HiAudio Web Server Started!")
	fmt.Printf("📱 iPhone/iPad: http://%s:%d\n", lanHost, port)
	fmt.Printf("💻 Mac/PC: http://localhost:%d\n", port)
	fmt.Printf("🔗 Direct: http://127.0.0.1:%d\n", port)
	fmt.Println()
	fmt.Printf("🔥 Server running on port %d\n", port)
	fmt.Println("   Press Ctrl+C to stop")
	fmt.Println("   📲 Access from iPhone Safari for best experience!")
}
