package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"restaurant-menu/internal/data/entity"
	"restaurant-menu/pkg/shell"
	"restaurant-menu/pkg/utils"

	"github.com/chzyer/readline"
	"go.uber.org/zap"
)

// readlinePrompter reads lines with history and passwords without echo.
type readlinePrompter struct {
	rl *readline.Instance
}

func newReadlinePrompter(historyFile string) (*readlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &readlinePrompter{rl: rl}, nil
}

func (p *readlinePrompter) ReadLine(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	return p.rl.Readline()
}

func (p *readlinePrompter) ReadPassword(prompt string) (string, error) {
	password, err := p.rl.ReadPassword(prompt)
	if err != nil {
		return "", err
	}
	return string(password), nil
}

func (p *readlinePrompter) Out() io.Writer {
	return p.rl.Stdout()
}

func (p *readlinePrompter) Close() error {
	return p.rl.Close()
}

func runShell(ctx context.Context, opts *options) error {
	rt, err := setup(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	prompter, err := newReadlinePrompter(rt.config.Shell.HistoryFile)
	if err != nil {
		return err
	}
	defer prompter.Close()

	out := prompter.Out()
	fmt.Fprintln(out, "Restaurant Menu")
	fmt.Fprintln(out, "Type 'login' to start, 'help' for commands, or 'exit' to quit.")

	l := &loop{
		router: rt.app.Router,
		prompt: prompter,
		out:    out,
		state:  shell.NewState(),
		logout: rt.app.Service.Auth.Logout,
		log:    rt.logger,
	}
	return l.run(ctx)
}

// loop reads command lines until exit, EOF or interrupt. Command errors are
// rendered and never end the loop.
type loop struct {
	router *shell.Router
	prompt shell.Prompter
	out    io.Writer
	state  *shell.State
	logout func(ctx context.Context, session *entity.Session)
	log    *zap.Logger
}

func (l *loop) run(ctx context.Context) error {
	defer l.end(ctx)

	for {
		line, err := l.prompt.ReadLine(promptFor(l.state.Session()))
		if err != nil {
			if isEndOfInput(err) {
				return nil
			}
			return err
		}

		err = l.router.Dispatch(ctx, line, &shell.Request{
			Out:    l.out,
			Prompt: l.prompt,
			State:  l.state,
		})
		switch {
		case err == nil:
		case errors.Is(err, shell.ErrExit):
			return nil
		case errors.Is(err, shell.ErrUnknownCommand):
			l.log.Warn("Unknown shell command", zap.Error(err))
			utils.ResponseInfo(l.out, fmt.Sprintf("%v. Type 'help' for a list of commands.", err))
		case isEndOfInput(err):
			// input was abandoned at a follow-up prompt
			utils.ResponseInfo(l.out, "Cancelled.")
		default:
			utils.ResponseError(l.out, err)
		}
	}
}

// end logs out whoever is still logged in.
func (l *loop) end(ctx context.Context) {
	if session := l.state.Logout(); session != nil {
		l.logout(ctx, session)
	}
	l.log.Info("Shell closed")
}

func promptFor(session *entity.Session) string {
	if session == nil {
		return "menu> "
	}
	return fmt.Sprintf("%s@menu> ", session.Username)
}

func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt)
}
