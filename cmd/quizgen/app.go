package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/matchday/quizgen/internal/domain"
	"github.com/matchday/quizgen/internal/service"
)

// generateService and transferService are the slices of the service layer
// the menu loop needs, kept as interfaces so the loop is testable.
type generateService interface {
	Generate(ctx context.Context, category domain.Category, topic string) (*service.GenerateResult, error)
}

type transferService interface {
	Transfer(ctx context.Context, path string) (*service.TransferSummary, error)
}

// application holds the wired components and drives the interactive menu.
type application struct {
	logger           *slog.Logger
	generationSvc    generateService
	transferSvc      transferService
	defaultStorePath string
	in               io.Reader
	out              io.Writer
}

// run executes the menu loop until the user exits or input ends.
func (a *application) run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Football Quiz Generator")

	scanner := bufio.NewScanner(a.in)
	for {
		a.printMenu()

		choice, ok := readLine(scanner)
		if !ok {
			return nil
		}

		switch {
		case choice == "0":
			fmt.Fprintln(a.out, "Goodbye!")
			return nil
		case choice == "7":
			a.handleUpload(ctx, scanner)
		default:
			category, ok := categoryForChoice(choice)
			if !ok {
				fmt.Fprintln(a.out, "Invalid choice. Please try again.")
				continue
			}
			a.handleGenerate(ctx, scanner, category)
		}
	}
}

func (a *application) printMenu() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, strings.Repeat("=", 50))
	fmt.Fprintln(a.out, "Select a question category:")
	for i, category := range domain.Categories {
		fmt.Fprintf(a.out, "  [%d] %s\n", i+1, category)
	}
	fmt.Fprintln(a.out, "  [7] Upload quiz data to backend")
	fmt.Fprintln(a.out, "  [0] Exit")
	fmt.Fprint(a.out, "Enter your choice (1-7 or 0 to exit): ")
}

// categoryForChoice maps a menu choice ("1".."6") to its category.
func categoryForChoice(choice string) (domain.Category, bool) {
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(domain.Categories) {
		return "", false
	}
	return domain.Categories[n-1], true
}

// handleGenerate prompts for a topic and runs the generation pipeline,
// printing a preview of every stored quiz and a reason for every rejection.
func (a *application) handleGenerate(ctx context.Context, scanner *bufio.Scanner, category domain.Category) {
	fmt.Fprintf(a.out, "Selected category: %s.\nEnter a specific topic (e.g. 'Manchester Derby 2024'): ", category)
	topic, ok := readLine(scanner)
	if !ok || topic == "" {
		fmt.Fprintln(a.out, "Topic cannot be empty. Please try again.")
		return
	}

	fmt.Fprintf(a.out, "Generating quizzes for category %q on topic %q...\n", category, topic)

	result, err := a.generationSvc.Generate(ctx, category, topic)
	if err != nil {
		a.logger.Error("generation failed", "category", category, "topic", topic, "error", err)
		fmt.Fprintf(a.out, "Could not generate quizzes: %v\n", err)
		return
	}

	for i, record := range result.Records {
		a.printPreview(i+1, record)
	}
	for _, rejection := range result.Rejections {
		fmt.Fprintf(a.out, "Skipped candidate %d: %v\n", rejection.Index+1, rejection.Reason)
	}

	if len(result.Records) == 0 {
		fmt.Fprintln(a.out, "No valid quizzes in this batch; nothing was saved.")
		return
	}
	fmt.Fprintf(a.out, "Saved %d quizzes to %s\n", len(result.Records), a.defaultStorePath)
}

// handleUpload prompts for an optional file path and runs the bulk transfer.
func (a *application) handleUpload(ctx context.Context, scanner *bufio.Scanner) {
	fmt.Fprintf(a.out, "Enter the path to the quiz data file (or press Enter for %s): ", a.defaultStorePath)
	path, ok := readLine(scanner)
	if !ok {
		return
	}

	summary, err := a.transferSvc.Transfer(ctx, path)
	if err != nil {
		a.logger.Error("bulk transfer failed", "path", path, "error", err)
		fmt.Fprintf(a.out, "Upload failed: %v\n", err)
		return
	}

	a.printSummary(summary)
}

func (a *application) printPreview(n int, record *domain.QuizRecord) {
	fmt.Fprintln(a.out, strings.Repeat("#", 60))
	fmt.Fprintf(a.out, "  GENERATED QUIZ %d\n", n)
	fmt.Fprintf(a.out, "  Category: %s\n", record.Category)
	fmt.Fprintf(a.out, "  Topic: %s\n", record.Topic)
	fmt.Fprintf(a.out, "  Question (EN): %s\n", record.Question.EN)
	fmt.Fprintln(a.out, "  Options:")
	for _, opt := range record.Options {
		fmt.Fprintf(a.out, "    [%s] %s\n", opt.ID, opt.Text.EN)
	}
	fmt.Fprintf(a.out, "  Correct answer: [%s] %s\n", record.CorrectOptionID, record.CorrectAnswerText.EN)
	fmt.Fprintf(a.out, "  Source: %s\n", record.Source)
}

func (a *application) printSummary(summary *service.TransferSummary) {
	fmt.Fprintf(a.out, "Transfer finished: %d records read, %d validated, %d delivered.\n",
		summary.Total, summary.Validated, summary.Delivered)
	for _, rejected := range summary.Rejected {
		fmt.Fprintf(a.out, "  Rejected %s (index %d): %s\n", rejected.QuizID, rejected.Index, rejected.Reason)
	}
	for _, failed := range summary.Failed {
		fmt.Fprintf(a.out, "  Delivery failed %s (index %d): %s\n", failed.QuizID, failed.Index, failed.Reason)
	}
}

// readLine returns the next trimmed input line; ok is false once input ends.
func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
