package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"minidb/internal/catalog"
	"minidb/internal/engine"
	"minidb/internal/sql"
)

var noPrompt bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minidb",
	Short: "In-memory SQL engine",
	Long: `An interactive in-memory SQL engine supporting CREATE/ALTER/DROP TABLE,
INSERT, UPDATE, DELETE and SELECT with joins, grouping and aggregates.
The catalog lives for the session only; nothing is written to disk.`,
	RunE: runRepl,
}

var execCmd = &cobra.Command{
	Use:   "exec <file>",
	Short: "Run a SQL script",
	Long:  `Run a file of semicolon-separated SQL statements and print each result.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExec,
}

func init() {
	rootCmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "Suppress the interactive prompt (useful when piping input)")
	rootCmd.AddCommand(execCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	eng := engine.New(catalog.New())
	scanner := bufio.NewScanner(os.Stdin)

	if !noPrompt {
		fmt.Println("minidb (in-memory; type 'exit' to quit)")
	}
	for {
		if !noPrompt {
			fmt.Print("minidb> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		// A statement-level error never ends the session.
		for _, stmtText := range splitStatements(line) {
			runStatement(eng, stmtText)
		}
	}
	return scanner.Err()
}

func runExec(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	eng := engine.New(catalog.New())
	for _, stmtText := range splitStatements(string(data)) {
		fmt.Printf("> %s\n", stmtText)
		runStatement(eng, stmtText)
	}
	return nil
}

// runStatement parses and executes one statement and prints its result or
// error. Failures are terminal only for this statement.
func runStatement(eng *engine.Engine, text string) {
	stmt, err := sql.Parse(text)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	res, err := eng.Execute(stmt)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Print(formatResult(res))
}

// formatResult renders a query result as a pipe-separated table, or the
// status line for DDL/DML.
func formatResult(res *engine.Result) string {
	if res.Columns == nil {
		return res.Status + "\n"
	}

	var b strings.Builder
	header := strings.Join(res.Columns, " | ")
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", len(header)))
	b.WriteString("\n")
	for _, row := range res.Rows {
		parts := make([]string, len(row))
		for i, v := range row {
			parts[i] = v.String()
		}
		b.WriteString(strings.Join(parts, " | "))
		b.WriteString("\n")
	}
	return b.String()
}

// splitStatements splits input on semicolons outside single-quoted strings,
// dropping empty pieces. Statements may span lines in scripts and share a
// line in the REPL.
func splitStatements(input string) []string {
	var out []string
	start := 0
	inString := false
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '\'':
			inString = !inString
		case ';':
			if !inString {
				if piece := strings.TrimSpace(input[start:i]); piece != "" {
					out = append(out, piece)
				}
				start = i + 1
			}
		}
	}
	if piece := strings.TrimSpace(input[start:]); piece != "" {
		out = append(out, piece)
	}
	return out
}
