// Command faults prints the groundwork fault taxonomy reference table.
package main

import "github.com/mesh-intelligence/groundwork/internal/cli"

func main() {
	cli.Execute()
}
