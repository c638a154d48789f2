package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/inventory/internal/cli"
	"github.com/idilsaglam/inventory/internal/loader"
)

func main() {
	// Root flags (apply to every subcommand)
	url := flag.String("url", "", "inventory source URL (http(s):// or file://)")
	client := flag.String("client", "http", "network client: http or fasthttp")
	timeout := flag.Duration("timeout", loader.DefaultTimeout, "request timeout")
	theme := flag.String("theme", "classic", "color theme: classic, neon or mono")
	demo := flag.Bool("demo", false, "use built-in sample items")
	debug := flag.Bool("debug", false, "write logs to debug.log")
	flag.Parse()

	// Hand the remaining args to the CLI runner.
	code := cli.Run(flag.Args(), cli.Options{
		URL:     *url,
		Client:  *client,
		Timeout: *timeout,
		Theme:   *theme,
		Demo:    *demo,
		Debug:   *debug,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
