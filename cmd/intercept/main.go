// intercept CLI - tooling for HTTP interception fixture files
package main

import "github.com/getmockd/intercept/pkg/cli"

func main() {
	cli.Execute()
}
