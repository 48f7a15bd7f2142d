package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
	"github.com/triagekit/triage/internal/domain/ticket"
	"github.com/triagekit/triage/internal/jsonstore"
	"github.com/triagekit/triage/internal/triage"
)

// Color palette
var (
	colorPrimary = lipgloss.Color("#7AA2F7")
	colorMuted   = lipgloss.Color("#666666")
	colorError   = lipgloss.Color("#E74C3C")
	colorSuccess = lipgloss.Color("#2ECC71")
)

// Styles
var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)
)

func main() {
	dataPath := pflag.String("data", "data/tickets.json", "path to the ticket store")
	pflag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	store, err := jsonstore.New(*dataPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("store error: %v", err)))
		os.Exit(1)
	}

	tickets := ticket.NewService(store, logger)
	processor := triage.NewProcessor(tickets, logger)

	fmt.Println(bannerStyle.Render("triage — ticket tracking"))
	fmt.Println(subtitleStyle.Render("Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	run(processor)
}

func run(processor *triage.Processor) {
	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(promptStyle.Render(">>> "), " ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "quit", "exit", "q":
			fmt.Println(subtitleStyle.Render("Goodbye!"))
			return
		case "help":
			printHelp()
			continue
		case "stats":
			printStats(ctx, processor)
			continue
		case "":
			continue
		}

		resp := processor.Process(ctx, line)
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("encode error: %v", err)))
			continue
		}
		fmt.Println(string(out))
		fmt.Println()
	}
}

func printHelp() {
	sections := []struct {
		title    string
		examples []string
	}{
		{"CREATE", []string{
			`create ticket for login bug, high priority`,
			`new ticket: API timeout in production`,
		}},
		{"UPDATE", []string{
			`update T001 to in progress, investigating`,
			`change T002 status to done`,
		}},
		{"VIEW", []string{
			`show open tickets`,
			`view T001`,
			`list high priority tickets`,
		}},
		{"CLOSE", []string{
			`close T001, fixed configuration`,
			`resolve T002, updated documentation`,
		}},
	}

	for _, s := range sections {
		fmt.Println(headingStyle.Render(s.title))
		for _, e := range s.examples {
			fmt.Println("  " + e)
		}
	}
	fmt.Println()
	fmt.Println(subtitleStyle.Render("Categories: code, infra, doc, other"))
	fmt.Println(subtitleStyle.Render("Priorities: high (1), medium (2), low (3)"))
	fmt.Println(subtitleStyle.Render("Status: open, prog, done"))
	fmt.Println()
}

func printStats(ctx context.Context, processor *triage.Processor) {
	stats, err := processor.Stats(ctx)
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("stats error: %v", err)))
		return
	}

	if stats.Total == 0 {
		fmt.Println(subtitleStyle.Render("No tickets in system"))
		fmt.Println()
		return
	}

	fmt.Println(headingStyle.Render(fmt.Sprintf("Total tickets: %d", stats.Total)))

	fmt.Println(headingStyle.Render("Status"))
	for _, s := range []ticket.Status{ticket.StatusOpen, ticket.StatusProg, ticket.StatusDone} {
		fmt.Printf("  %-6s %d\n", s, stats.ByStatus[s])
	}

	fmt.Println(headingStyle.Render("Category"))
	for _, c := range []ticket.Category{ticket.CategoryCode, ticket.CategoryInfra, ticket.CategoryDoc, ticket.CategoryOther} {
		fmt.Printf("  %-6s %d\n", c, stats.ByCategory[c])
	}

	fmt.Println(headingStyle.Render("Priority"))
	for _, p := range []ticket.Priority{ticket.PriorityHigh, ticket.PriorityMedium, ticket.PriorityLow} {
		fmt.Printf("  %-6d %d\n", p, stats.ByPriority[p])
	}
	fmt.Println()
}
