// Command frogquiz runs the frog call quiz and inspects its screen registry
// and assets.
package main

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	Execute()
}
