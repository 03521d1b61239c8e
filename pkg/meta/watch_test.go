package meta

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherRebuildsOnRecordChange(t *testing.T) {
	opts := writeInputs(t, t.TempDir(),
		`{"name": "Before", "contact_info": {}, "positions": []}`,
		"<title>%TITLE%</title>")

	var mu sync.Mutex
	var titles []string
	w, err := NewWatcher(opts, 20*time.Millisecond, nil, func(values Values, buildErr error) {
		mu.Lock()
		defer mu.Unlock()
		if buildErr == nil {
			titles = append(titles, values.Title)
		}
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	require.NoError(t, os.WriteFile(opts.RecordPath, []byte(`{"name": "After", "contact_info": {}, "positions": []}`), 0600))

	require.Eventually(t, func() bool {
		out, readErr := os.ReadFile(opts.OutputPath)
		return readErr == nil && string(out) == "<title>After</title>"
	}, 5*time.Second, 20*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, titles, "After")
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	opts := writeInputs(t, dir,
		`{"name": "Same", "contact_info": {}, "positions": []}`,
		"%TITLE%")

	built := make(chan struct{}, 1)
	w, err := NewWatcher(opts, 10*time.Millisecond, nil, func(Values, error) {
		built <- struct{}{}
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	require.NoError(t, os.WriteFile(opts.TemplatePath+".bak", []byte("x"), 0600))

	select {
	case <-built:
		t.Fatal("unexpected rebuild for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}
