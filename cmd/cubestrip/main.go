package main

// main delegates to the cobra root command defined in root.go.
// Cobra prints the error and exits non-zero when RunE fails.
func main() {
	Execute()
}
