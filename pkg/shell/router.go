// Package shell routes interactive command lines to handlers through a middleware chain.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"restaurant-menu/internal/apperr"

	"github.com/spf13/pflag"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	// ErrExit is returned by a handler to end the shell loop.
	ErrExit = errors.New("exit requested")
)

// Prompter reads follow-up input from the operator.
type Prompter interface {
	ReadLine(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}

type Request struct {
	Command string
	Args    []string
	Out     io.Writer
	Prompt  Prompter
	State   *State
}

// Parse binds the request arguments to fs. Usage errors become validation errors.
func (r *Request) Parse(fs *pflag.FlagSet) error {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(r.Args); err != nil {
		return apperr.NewValidationError("arguments", err.Error())
	}
	return nil
}

type HandlerFunc func(ctx context.Context, req *Request) error

type Middleware func(next HandlerFunc) HandlerFunc

// Command describes a route for help output.
type Command struct {
	Name    string
	Usage   string
	Summary string
}

type route struct {
	Command
	handler HandlerFunc
}

type routeTable struct {
	mu     sync.RWMutex
	routes map[string]route
	order  []string
}

// Router is a command multiplexer. Routers returned by With share the
// route table and add their own middleware.
type Router struct {
	table       *routeTable
	middlewares []Middleware
}

func NewRouter() *Router {
	return &Router{table: &routeTable{routes: map[string]route{}}}
}

// Use appends middleware applied to routes registered afterwards.
func (r *Router) Use(middlewares ...Middleware) {
	r.middlewares = append(r.middlewares, middlewares...)
}

// With returns a router that registers into the same table with extra middleware.
func (r *Router) With(middlewares ...Middleware) *Router {
	return &Router{
		table:       r.table,
		middlewares: append(slices.Clone(r.middlewares), middlewares...),
	}
}

// Handle registers h under cmd.Name. Registering a name twice panics.
func (r *Router) Handle(cmd Command, h HandlerFunc) {
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		h = r.middlewares[i](h)
	}

	name := strings.ToLower(cmd.Name)
	r.table.mu.Lock()
	defer r.table.mu.Unlock()
	if _, exists := r.table.routes[name]; exists {
		panic(fmt.Sprintf("shell: command %q registered twice", name))
	}
	r.table.routes[name] = route{Command: cmd, handler: h}
	r.table.order = append(r.table.order, name)
}

// Commands lists registered commands in registration order.
func (r *Router) Commands() []Command {
	r.table.mu.RLock()
	defer r.table.mu.RUnlock()
	out := make([]Command, 0, len(r.table.order))
	for _, name := range r.table.order {
		out = append(out, r.table.routes[name].Command)
	}
	return out
}

// Dispatch splits line and runs the matching handler. A blank line is a no-op.
func (r *Router) Dispatch(ctx context.Context, line string, req *Request) error {
	args, err := SplitArgs(line)
	if err != nil {
		return apperr.NewValidationError("input", err.Error())
	}
	if len(args) == 0 {
		return nil
	}

	name := strings.ToLower(args[0])
	r.table.mu.RLock()
	rt, ok := r.table.routes[name]
	r.table.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownCommand)
	}

	req.Command = name
	req.Args = args[1:]
	return rt.handler(ctx, req)
}

// SplitArgs tokenizes a command line. Single and double quotes group words;
// a backslash escapes the next character outside single quotes.
func SplitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)

	for _, ch := range line {
		switch {
		case escaped:
			current.WriteRune(ch)
			escaped = false
		case ch == '\\' && quote != '\'':
			escaped = true
			inWord = true
		case quote != 0:
			if ch == quote {
				quote = 0
			} else {
				current.WriteRune(ch)
			}
		case ch == '"' || ch == '\'':
			quote = ch
			inWord = true
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			if inWord {
				args = append(args, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(ch)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}
	if escaped {
		return nil, errors.New("trailing backslash")
	}
	if inWord {
		args = append(args, current.String())
	}
	return args, nil
}
