package shell

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"restaurant-menu/internal/apperr"
	"restaurant-menu/internal/data/entity"

	"github.com/spf13/pflag"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		line    string
		want    []string
		wantErr bool
	}{
		{"", nil, false},
		{"   ", nil, false},
		{"menu", []string{"menu"}, false},
		{"search  cake ", []string{"search", "cake"}, false},
		{`add-item --name "Chocolate Cake" --price 8.99`, []string{"add-item", "--name", "Chocolate Cake", "--price", "8.99"}, false},
		{`say 'it''s'`, []string{"say", "its"}, false},
		{`say "a \"quoted\" word"`, []string{"say", `a "quoted" word`}, false},
		{`path 'C:\temp'`, []string{"path", `C:\temp`}, false},
		{`empty ""`, []string{"empty", ""}, false},
		{`broken "quote`, nil, true},
		{`trailing \`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := SplitArgs(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SplitArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	var gotArgs []string
	r.Handle(Command{Name: "Echo", Usage: "echo <words>"}, func(ctx context.Context, req *Request) error {
		gotArgs = req.Args
		_, err := req.Out.Write([]byte(strings.Join(req.Args, " ")))
		return err
	})

	var out bytes.Buffer
	req := &Request{Out: &out, State: NewState()}
	if err := r.Dispatch(context.Background(), `ECHO hello "big world"`, req); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if out.String() != "hello big world" {
		t.Errorf("out = %q", out.String())
	}
	if req.Command != "echo" || len(gotArgs) != 2 {
		t.Errorf("command = %q, args = %q", req.Command, gotArgs)
	}

	if err := r.Dispatch(context.Background(), "   ", req); err != nil {
		t.Errorf("blank line error = %v", err)
	}
	if err := r.Dispatch(context.Background(), "nope", req); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("unknown command error = %v", err)
	}
	if err := r.Dispatch(context.Background(), `echo "open`, req); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("bad quoting error = %v", err)
	}
}

func TestRouterMiddlewareOrder(t *testing.T) {
	var trace []string
	mark := func(name string) Middleware {
		return func(next HandlerFunc) HandlerFunc {
			return func(ctx context.Context, req *Request) error {
				trace = append(trace, name)
				return next(ctx, req)
			}
		}
	}
	handler := func(ctx context.Context, req *Request) error {
		trace = append(trace, req.Command)
		return nil
	}

	r := NewRouter()
	r.Use(mark("outer"), mark("inner"))
	r.Handle(Command{Name: "open"}, handler)
	r.With(mark("guard")).Handle(Command{Name: "closed"}, handler)

	req := &Request{State: NewState()}
	_ = r.Dispatch(context.Background(), "open", req)
	_ = r.Dispatch(context.Background(), "closed", req)

	want := []string{"outer", "inner", "open", "outer", "inner", "guard", "closed"}
	if !reflect.DeepEqual(trace, want) {
		t.Errorf("trace = %v, want %v", trace, want)
	}

	var names []string
	for _, c := range r.Commands() {
		names = append(names, c.Name)
	}
	if !reflect.DeepEqual(names, []string{"open", "closed"}) {
		t.Errorf("Commands() = %v", names)
	}
}

func TestRouterDuplicatePanics(t *testing.T) {
	r := NewRouter()
	noop := func(context.Context, *Request) error { return nil }
	r.Handle(Command{Name: "menu"}, noop)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate command")
		}
	}()
	r.Handle(Command{Name: "MENU"}, noop)
}

func TestRequestParse(t *testing.T) {
	req := &Request{Args: []string{"--price", "8.99", "12"}}
	fs := pflag.NewFlagSet("update-item", pflag.ContinueOnError)
	price := fs.Float64("price", 0, "")
	if err := req.Parse(fs); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if *price != 8.99 || fs.Arg(0) != "12" {
		t.Errorf("price = %v, arg = %q", *price, fs.Arg(0))
	}

	bad := &Request{Args: []string{"--price", "cheap"}}
	fs = pflag.NewFlagSet("update-item", pflag.ContinueOnError)
	fs.Float64("price", 0, "")
	if err := bad.Parse(fs); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("Parse() error = %v, want ErrValidation", err)
	}
}

func TestState(t *testing.T) {
	s := NewState()
	if s.Session() != nil {
		t.Fatal("new state should be logged out")
	}
	session := &entity.Session{UserID: 1, Role: entity.RoleStaff}
	s.Login(session)
	if s.Session() != session {
		t.Error("Session() after Login mismatch")
	}
	if ended := s.Logout(); ended != session || s.Session() != nil {
		t.Error("Logout() did not clear the session")
	}
}
