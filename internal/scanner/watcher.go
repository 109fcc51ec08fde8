package scanner

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 200 * time.Millisecond

// Watch observes the mods root and calls onChange after filesystem activity
// settles, so hosts can rescan without polling. Bursts of events (an archive
// being unpacked into the folder) collapse into a single callback. Watch
// blocks until ctx is cancelled.
func Watch(ctx context.Context, root string, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(root); err != nil {
		return err
	}

	var debounce *time.Timer
	var fire <-chan time.Time

	schedule := func() {
		if debounce == nil {
			debounce = time.NewTimer(watchDebounce)
			fire = debounce.C
		} else {
			debounce.Reset(watchDebounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case <-fire:
			if onChange != nil {
				onChange()
			}

		case _, ok := <-w.Events:
			if !ok {
				return nil
			}
			schedule()

		case _, ok := <-w.Errors:
			if !ok {
				return nil
			}
			// Watch errors are transient on the platforms we target; the
			// next successful event still triggers a rescan.
		}
	}
}
