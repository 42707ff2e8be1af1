package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/smsportal/portal-console/cmd"
	"github.com/smsportal/portal-console/internal/toast"
	"github.com/spf13/cobra"
)

// newToastStore builds the store used by the toast command. Tests replace it.
var newToastStore = func() *toast.Store {
	return toast.NewStore(toast.OptionsFromConfig()...)
}

const toastCommandLong = `Raise a toast and print its lifecycle.

The toast opens, closes when its duration elapses, and is removed after the
remove delay. Without --follow the command prints the opened toast and
exits; with --follow it prints every transition until the toast is removed
or the command is interrupted.

USAGE:
    portal-console toast <TITLE> [OPTIONS]

OPTIONS:
    --description <text>  Secondary text
    --variant <name>      default, destructive or success
    --duration <d>        Auto-dismiss delay, e.g. 3s (0 keeps it open; default: toast_duration_ms)
    --follow              Wait for the toast to be dismissed and removed
    -h, --help            Show this help`

// NewToastCmd creates the toast command.
func NewToastCmd() *cobra.Command {
	var description string
	var variant string
	var duration time.Duration
	var follow bool

	toastCmd := &cobra.Command{
		Use:   "toast <TITLE>",
		Short: "Raise a toast and print its lifecycle",
		Long:  toastCommandLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			v, err := toast.ParseVariant(variant)
			if err != nil {
				return fmt.Errorf("toast: %w", err)
			}
			props := toast.Props{
				Title:       strings.Join(args, " "),
				Description: description,
				Variant:     v,
			}
			if c.Flags().Changed("duration") {
				props.Duration = toast.For(duration)
			}

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt)
			defer stop()
			return runToast(ctx, c.OutOrStdout(), newToastStore(), props, follow)
		},
	}

	toastCmd.Flags().StringVar(&description, "description", "", "Secondary text")
	toastCmd.Flags().StringVar(&variant, "variant", string(toast.VariantDefault), "default, destructive or success")
	toastCmd.Flags().DurationVar(&duration, "duration", 0, "Auto-dismiss delay (0 keeps the toast open)")
	toastCmd.Flags().BoolVar(&follow, "follow", false, "Wait for the toast to be dismissed and removed")
	return toastCmd
}

// runToast raises props on store and prints transitions to w. With follow
// it blocks until the store is empty again or ctx is done.
func runToast(ctx context.Context, w io.Writer, store *toast.Store, props toast.Props, follow bool) error {
	defer store.Close()

	start := time.Now()
	removed := make(chan struct{})
	var once sync.Once
	var mu sync.Mutex
	prev := store.State()

	unsubscribe := store.Subscribe(func(next toast.State) {
		mu.Lock()
		defer mu.Unlock()
		elapsed := time.Since(start).Round(100 * time.Millisecond)
		for _, line := range describeTransitions(prev, next) {
			fmt.Fprintf(w, "[%5.1fs] %s\n", elapsed.Seconds(), line)
		}
		prev = next
		if len(next.Toasts) == 0 {
			once.Do(func() { close(removed) })
		}
	})
	defer unsubscribe()

	h := store.Toast(props)
	if !follow {
		return nil
	}

	select {
	case <-removed:
		return nil
	case <-ctx.Done():
		unsubscribe()
		fmt.Fprintf(w, "interrupted, toast %s discarded\n", h.ID)
		return nil
	}
}

// describeTransitions lists what changed between two snapshots, one line
// per toast, newest first.
func describeTransitions(prev, next toast.State) []string {
	before := make(map[string]toast.Toast, len(prev.Toasts))
	for _, t := range prev.Toasts {
		before[t.ID] = t
	}
	seen := make(map[string]bool, len(next.Toasts))

	var lines []string
	for _, t := range next.Toasts {
		seen[t.ID] = true
		old, existed := before[t.ID]
		switch {
		case !existed:
			lines = append(lines, fmt.Sprintf("opened  #%s %s", t.ID, describeToast(t)))
		case old.Open && !t.Open:
			lines = append(lines, fmt.Sprintf("closed  #%s", t.ID))
		case old.Title != t.Title || old.Description != t.Description || old.Variant != t.Variant:
			lines = append(lines, fmt.Sprintf("updated #%s %s", t.ID, describeToast(t)))
		}
	}
	for _, t := range prev.Toasts {
		if !seen[t.ID] {
			lines = append(lines, fmt.Sprintf("removed #%s", t.ID))
		}
	}
	return lines
}

func describeToast(t toast.Toast) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q", t.Title)
	if t.Description != "" {
		fmt.Fprintf(&b, " (%s)", t.Description)
	}
	fmt.Fprintf(&b, " [%s", t.Variant)
	if t.Duration > 0 {
		fmt.Fprintf(&b, ", closes in %s", t.Duration)
	} else {
		b.WriteString(", stays open")
	}
	b.WriteString("]")
	return b.String()
}

func init() {
	cmd.RootCmd.AddCommand(NewToastCmd())
}
