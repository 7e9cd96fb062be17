package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

func main() {
	input := flag.String("input", "", "template document (JSON or YAML) to render")
	output := flag.String("output", "", "output file (stdout if empty)")
	page := flag.Bool("page", false, "wrap the rendered fragment in a full HTML page")
	layout := flag.String("layout", "", "pongo2 layout used with -page (built-in layout if empty)")
	watch := flag.Bool("watch", false, "re-render whenever the input document changes")
	build := flag.Bool("build", false, "assemble a template interactively and print it")
	flag.Parse()

	if *build {
		result, err := runBuilder(surveyPrompter{})
		if err != nil {
			log.Fatalf("Failed to build template: %v", err)
		}
		log.Printf("Preview: %s", result.Preview)
		if err := writeOutput(*output, result.Document); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		return
	}

	path := strings.TrimSpace(*input)
	if path == "" {
		log.Fatalf("missing -input document")
	}
	opts := renderOptions{Page: *page, Layout: strings.TrimSpace(*layout)}

	render := func() {
		rendered, err := renderFile(path, opts)
		if err != nil {
			log.Printf("Failed to render %s: %v", path, err)
			return
		}
		if err := writeOutput(*output, rendered); err != nil {
			log.Printf("Failed to write output: %v", err)
			return
		}
		if *output != "" {
			fmt.Printf("Rendered %s to %s\n", path, *output)
		}
	}

	if !*watch {
		rendered, err := renderFile(path, opts)
		if err != nil {
			log.Fatalf("Failed to render %s: %v", path, err)
		}
		if err := writeOutput(*output, rendered); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	render()
	if err := watchFile(ctx, path, render); err != nil {
		log.Fatalf("Watch stopped: %v", err)
	}
}

func writeOutput(path, content string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
