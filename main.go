// Command savecalc compares fixed-rate savings scenarios against a target.
package main

import "github.com/theirongolddev/savecalc/cmd"

func main() {
	cmd.Execute()
}
