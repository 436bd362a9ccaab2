package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/notionclip/internal/commands"
	"github.com/gerunddev/notionclip/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "convert":
		commands.Convert(os.Args[2:])
	case "markdown", "md":
		commands.Markdown(os.Args[2:])
	case "roundtrip":
		commands.Roundtrip(os.Args[2:])
	case "validate", "check":
		commands.Validate(os.Args[2:])
	case "config":
		commands.Config(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("notionclip v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`notionclip - Convert Markdown to Notion block payloads

Usage:
  notionclip <command> [file] [options]

Commands:
  convert     Parse Markdown and print the block payload as JSON
  markdown    Parse Markdown and print its canonical reconstruction
  roundtrip   Show what a Markdown -> blocks -> Markdown roundtrip loses
  validate    Report limit and structure violations in the payload
  config      Show, init, or locate the config file
  version     Show version information
  help        Show this help message

Options:
  --pretty     Indent JSON output (convert)
  --plain      Treat input as plain text, no Markdown parsing
  --no-inline  Skip inline formatting (bold, links, code spans)
  --no-media   Skip image and bare-URL detection
  --no-format  Skip the block formatter passes
  --verbose    Debug logging to stderr
  --quiet      No logging

Examples:
  notionclip convert notes.md --pretty
  cat notes.md | notionclip convert
  notionclip roundtrip notes.md
  notionclip validate notes.md
  notionclip config init

Configuration:
  Config file: %s
`, config.ConfigPath())
	fmt.Print(usage)
}
