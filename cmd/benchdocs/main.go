package main

import (
	"fmt"
	"os"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe()
	case "export":
		path := ""
		if len(os.Args) > 2 {
			path = os.Args[2]
		}
		err = runExport(path)
	case "icons":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: benchdocs icons <dir>")
			os.Exit(1)
		}
		err = runIcons(os.Args[2])
	case "version":
		fmt.Printf("benchdocs %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`benchdocs - the Bench AI docs theme

Usage:
  benchdocs <command> [arguments]

Commands:
  serve          Run the theme preview server
  export [file]  Write the theme as JSON to file (default stdout)
  icons <dir>    Write favicon.svg, favicon.png and preview.png into dir
  version        Print the benchdocs version
  help           Show this help message

Environment:
  BENCHDOCS_ADDR            Listen address (default :3000)
  BENCHDOCS_URL             Canonical URL (default http://localhost:3000)
  BENCHDOCS_SESSION_SECRET  Session secret (random per run if unset)
  BENCHDOCS_COOKIE_SECURE   Set to true behind HTTPS`)
}
