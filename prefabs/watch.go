package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// ChangeKind says which loader a changed file feeds.
type ChangeKind int

const (
	ChangeTuning ChangeKind = iota + 1
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeTuning:
		return "tuning"
	case ChangeScript:
		return "script"
	default:
		return "unknown"
	}
}

// Change is one debounced edit to a tuning table or wave script.
type Change struct {
	Path string
	Kind ChangeKind
}

// Watcher reports edits to tuning tables and wave scripts so a running game
// can reload them. Repeated events for one file inside the debounce window
// collapse into one Change. Events and Errors close after Close.
type Watcher struct {
	Events chan Change
	Errors chan error

	fs      *fsnotify.Watcher
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		fs:      fw,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher and waits for its goroutine. Safe to call twice.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.Errors)
	defer close(w.Events)

	seen := make(map[string]time.Time)
	for {
		select {
		case <-w.closeCh:
			return
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			change, relevant := classify(ev)
			if !relevant {
				continue
			}
			now := time.Now()
			if last, ok := seen[change.Path]; ok && now.Sub(last) < debounce {
				continue
			}
			seen[change.Path] = now
			select {
			case w.Events <- change:
			case <-w.closeCh:
				return
			}
		}
	}
}

func classify(ev fsnotify.Event) (Change, bool) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return Change{}, false
	}
	switch strings.ToLower(filepath.Ext(ev.Name)) {
	case ".yaml", ".yml":
		return Change{Path: ev.Name, Kind: ChangeTuning}, true
	case ".tengo":
		return Change{Path: ev.Name, Kind: ChangeScript}, true
	}
	return Change{}, false
}
