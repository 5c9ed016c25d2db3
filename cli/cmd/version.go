package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardnew/texpr/pkg"
)

// Version prints the command name and semantic version.
type Version struct{}

// Run executes the version command.
func (Version) Run(context.Context) error {
	_, err := fmt.Printf("%s version %s\n",
		pkg.Name, strings.TrimSpace(pkg.Version))

	return err
}
