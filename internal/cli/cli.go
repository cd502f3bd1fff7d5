package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// CLIArgs are the command-line arguments controlling one client run.
type CLIArgs struct {
	// ConfigPath is an optional YAML config file layered over the defaults.
	ConfigPath string

	// BaseURL overrides the configured posts service root.
	BaseURL string

	// Op selects the operation:
	// fetch-default|fetch-by-id|fetch-by-owner|fetch-by-owner-filtered|create|create-form|all.
	Op string

	// ID is the post id for fetch-by-id.
	ID int

	// UserID is the owner for the fetch-by-owner operations and the creates.
	UserID int

	// Sort and Order become extra query parameters (_sort/_order) for
	// fetch-by-owner-filtered.
	Sort  string
	Order string

	// Title and Body are the payload fields for the create operations.
	Title string
	Body  string

	// Demo runs against an in-process fixture server instead of BaseURL.
	Demo bool

	// RawArgs is the original args slice (useful for debugging/tests).
	RawArgs []string
}

var validOps = map[string]bool{
	"fetch-default":           true,
	"fetch-by-id":             true,
	"fetch-by-owner":          true,
	"fetch-by-owner-filtered": true,
	"create":                  true,
	"create-form":             true,
	"all":                     true,
}

// ParseArgs parses a slice of args and returns CLIArgs. Use in tests by passing
// arbitrary slices. The function is deterministic and does not read os.Args.
func ParseArgs(args []string) (*CLIArgs, error) {
	fs := flag.NewFlagSet("posty-cli", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "Path to a YAML config file (optional)")
		baseURL    = fs.String("base-url", "", "Posts service base URL (overrides config)")
		op         = fs.String("op", "all", "Operation: fetch-default|fetch-by-id|fetch-by-owner|fetch-by-owner-filtered|create|create-form|all")
		id         = fs.Int("id", 1, "Post id for fetch-by-id")
		userID     = fs.Int("user", 1, "Owner id for the fetch-by-owner and create operations")
		sortKey    = fs.String("sort", "", "Extra _sort query parameter for fetch-by-owner-filtered")
		order      = fs.String("order", "", "Extra _order query parameter for fetch-by-owner-filtered")
		title      = fs.String("title", "hello", "Title for the create operations")
		body       = fs.String("body", "world", "Body for the create operations")
		demo       = fs.Bool("demo", false, "Run against an in-process fixture server")
	)

	// Ensure Parse doesn't write to stdout/stderr in tests
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		// Flag parsing errors are useful to return to caller
		return nil, err
	}

	opName := strings.TrimSpace(*op)
	if !validOps[opName] {
		return nil, fmt.Errorf("unknown -op %q", opName)
	}

	return &CLIArgs{
		ConfigPath: *configPath,
		BaseURL:    *baseURL,
		Op:         opName,
		ID:         *id,
		UserID:     *userID,
		Sort:       *sortKey,
		Order:      *order,
		Title:      *title,
		Body:       *body,
		Demo:       *demo,
		RawArgs:    args,
	}, nil
}
