package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
)

type dispatchedImport struct {
	Path string
}

func (dispatchedImport) Type() string { return "bookmarks.test.dispatched_import" }

func (dispatchedImport) Validate() error { return nil }

type dispatchedExport struct {
	Path string
}

func (dispatchedExport) Type() string { return "bookmarks.test.dispatched_export" }

func (dispatchedExport) Validate() error { return nil }

func TestDispatcherRetriesTransientReadFailures(t *testing.T) {
	t.Parallel()

	var paths []string
	handler := NewHandler(func(ctx context.Context, msg dispatchedImport) error {
		paths = append(paths, msg.Path)
		if len(paths) == 1 {
			return errors.New("file busy")
		}
		return nil
	}, WithTimeout[dispatchedImport](time.Second))

	sub := dispatcher.SubscribeCommand(handler, runner.WithMaxRetries(1))
	t.Cleanup(sub.Unsubscribe)

	if err := dispatcher.Dispatch(context.Background(), dispatchedImport{Path: "bookmarks.html"}); err != nil {
		t.Fatalf("dispatch: expected success after retry, got %v", err)
	}
	if len(paths) != 2 || paths[1] != "bookmarks.html" {
		t.Fatalf("expected the same path to be retried once, got %v", paths)
	}
}

func TestDispatcherReturnsErrorAfterRetries(t *testing.T) {
	t.Parallel()

	var attempts int
	handler := NewHandler(func(ctx context.Context, _ dispatchedExport) error {
		attempts++
		return errors.New("disk full")
	}, WithTimeout[dispatchedExport](time.Second))

	sub := dispatcher.SubscribeCommand(handler, runner.WithMaxRetries(2))
	t.Cleanup(sub.Unsubscribe)

	err := dispatcher.Dispatch(context.Background(), dispatchedExport{Path: "out.html"})
	if err == nil {
		t.Fatal("expected dispatcher to return error after exhausting retries")
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts (initial + 2 retries), got %d", attempts)
	}
}
