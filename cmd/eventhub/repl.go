package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sakif/eventhub-client/internal/apperror"
	"github.com/sakif/eventhub-client/internal/controller"
	"github.com/sakif/eventhub-client/internal/model"
)

// repl is the line-oriented front-end over the controller. It owns no state
// of its own beyond the input scanner — every question it answers comes from
// the controller.
type repl struct {
	ctrl *controller.Controller
	in   *bufio.Scanner
	out  io.Writer
}

func newREPL(ctrl *controller.Controller, in io.Reader, out io.Writer) *repl {
	return &repl{
		ctrl: ctrl,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// run restores any persisted session and processes commands until quit or
// end of input.
func (r *repl) run(ctx context.Context) error {
	fmt.Fprintln(r.out, "EventHub — type 'help' for commands")

	restored, err := r.ctrl.RestoreSession(ctx)
	if err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}
	if restored {
		s := r.ctrl.Session()
		fmt.Fprintf(r.out, "Welcome back, %s\n", s.DisplayName)
		r.renderEvents()
	}

	for {
		fmt.Fprint(r.out, "> ")
		if !r.in.Scan() {
			return r.in.Err()
		}
		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		switch cmd {
		case "help":
			r.printHelp()
		case "login":
			r.login(ctx)
		case "signup":
			r.signup(ctx)
		case "events":
			r.renderEvents()
		case "create":
			r.create(ctx)
		case "register":
			r.register(ctx, strings.TrimSpace(arg))
		case "filter":
			r.setFilter(strings.TrimSpace(arg))
		case "refresh":
			if err := r.ctrl.Reload(ctx); err != nil {
				fmt.Fprintln(r.out, apperror.Message(err))
				continue
			}
			r.renderEvents()
		case "whoami":
			r.whoami()
		case "logout":
			if err := r.ctrl.Logout(ctx); err != nil {
				fmt.Fprintln(r.out, apperror.Message(err))
				continue
			}
			fmt.Fprintln(r.out, "Logged out")
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(r.out, "Unknown command %q — type 'help'\n", cmd)
		}
	}
}

func (r *repl) printHelp() {
	fmt.Fprint(r.out, `Commands:
  login              log in with email and password
  signup             create a new account
  events             show the event list
  create             create a new event
  register <id>      register for an event
  filter all|mine    show all events or only yours
  refresh            reload events from the server
  whoami             show the current session
  logout             log out (your registrations are kept)
  quit               exit
`)
}

func (r *repl) login(ctx context.Context) {
	email := r.prompt("Email: ")
	password := r.prompt("Password: ")

	if err := r.ctrl.Login(ctx, email, password); err != nil {
		fmt.Fprintln(r.out, apperror.Message(err))
		return
	}
	fmt.Fprintf(r.out, "Welcome, %s!\n", r.ctrl.Session().DisplayName)
	r.renderEvents()
}

func (r *repl) signup(ctx context.Context) {
	name := r.prompt("Full name: ")
	email := r.prompt("Email: ")
	password := r.prompt("Password: ")

	msg, err := r.ctrl.Signup(ctx, name, email, password)
	if err != nil {
		fmt.Fprintln(r.out, apperror.Message(err))
		return
	}
	if msg == "" {
		msg = "Account created"
	}
	fmt.Fprintf(r.out, "%s — now log in\n", msg)
}

func (r *repl) create(ctx context.Context) {
	draft := model.EventDraft{
		Title:       r.prompt("Title: "),
		Description: r.prompt("Description: "),
		EventDate:   r.prompt("Date (e.g. 2026-09-12T18:30:00): "),
		Location:    r.prompt("Location: "),
	}

	capacity, err := strconv.Atoi(r.prompt("Max capacity: "))
	if err != nil {
		fmt.Fprintln(r.out, "Capacity must be a number")
		return
	}
	draft.MaxCapacity = capacity

	msg, err := r.ctrl.Create(ctx, draft)
	if err != nil {
		fmt.Fprintln(r.out, apperror.Message(err))
		return
	}
	fmt.Fprintln(r.out, msg)
	r.renderEvents()
}

func (r *repl) register(ctx context.Context, eventID string) {
	if eventID == "" {
		fmt.Fprintln(r.out, "Usage: register <event id>")
		return
	}
	if err := r.ctrl.Register(ctx, eventID); err != nil {
		fmt.Fprintln(r.out, apperror.Message(err))
		return
	}
	fmt.Fprintln(r.out, "You are registered!")
}

func (r *repl) setFilter(arg string) {
	switch arg {
	case "all":
		r.ctrl.SetFilter(controller.FilterAll)
	case "mine":
		r.ctrl.SetFilter(controller.FilterRegistered)
	default:
		fmt.Fprintln(r.out, "Usage: filter all|mine")
		return
	}
	r.renderEvents()
}

func (r *repl) whoami() {
	s := r.ctrl.Session()
	if s == nil {
		fmt.Fprintln(r.out, "Not logged in")
		return
	}
	fmt.Fprintf(r.out, "%s <%s>\n", s.DisplayName, s.Email)
}

func (r *repl) renderEvents() {
	events := r.ctrl.Events()
	if len(events) == 0 {
		if r.ctrl.State() == controller.StateAnonymous {
			fmt.Fprintln(r.out, "Log in to see events")
		} else {
			fmt.Fprintln(r.out, "No events available right now — create the first one!")
		}
		return
	}

	now := time.Now()
	for _, ev := range events {
		fmt.Fprintf(r.out, "[%s] %s — %s @ %s\n", ev.ID, ev.Title, ev.Date, ev.Location)
		if ev.Description != "" {
			fmt.Fprintf(r.out, "    %s\n", ev.Description)
		}
		fmt.Fprintf(r.out, "    %d/%d registered · %s\n",
			ev.CurrentAttendees, ev.MaxAttendees, spotsLine(ev, now))
	}
}

// spotsLine mirrors the event card's status strip: registered and past beat
// the spot count, a full event says so, and the count never shows negative.
func spotsLine(ev model.ViewEvent, now time.Time) string {
	switch {
	case ev.IsRegistered:
		return "you are registered"
	case ev.IsPast(now):
		return "already took place"
	case ev.IsFull():
		return "full"
	case ev.AvailableSpots() == 1:
		return "1 spot left"
	default:
		return fmt.Sprintf("%d spots left", ev.AvailableSpots())
	}
}

func (r *repl) prompt(label string) string {
	fmt.Fprint(r.out, label)
	if !r.in.Scan() {
		return ""
	}
	return strings.TrimSpace(r.in.Text())
}
