package main

import (
	"fmt"

	"github.com/fwojciec/citeneeded"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	report, err := deps.Checker.Check(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", citeneeded.ErrorMessage(err))
		return err
	}

	return citeneeded.WriteReport(deps.Stdout, report)
}
