// Package app is the editor context: it owns the buffers, the renderer,
// the key decoder, and the terminal, and runs the refresh/read/dispatch
// loop on a single goroutine.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/jdedit/internal/config"
	"github.com/dshills/jdedit/internal/engine"
	"github.com/dshills/jdedit/internal/engine/buffer"
	"github.com/dshills/jdedit/internal/input/key"
	"github.com/dshills/jdedit/internal/project/watcher"
	"github.com/dshills/jdedit/internal/renderer"
	"github.com/dshills/jdedit/internal/renderer/backend"
	"github.com/dshills/jdedit/internal/renderer/highlight"
	"github.com/dshills/jdedit/internal/renderer/statusline"
)

// HelpMessage is shown in the message bar at startup.
const HelpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find | Ctrl-O = open | Ctrl-N = new | Ctrl-W = close"

// Options configures an Editor.
type Options struct {
	// Config is the merged configuration. Nil means config.Default().
	Config *config.Config

	// Files are opened, in order, one buffer each.
	Files []string

	// Logger receives diagnostics. Nil means NullLogger.
	Logger *Logger

	// Watcher reports external changes to open files. Nil disables it.
	Watcher watcher.Watcher

	// Syntaxes overrides the registry built from the config.
	Syntaxes *highlight.Registry

	// Version is shown in the welcome banner.
	Version string

	// Now replaces the clock used for message expiry.
	Now func() time.Time
}

// resizer is implemented by backends that learn about window size changes.
type resizer interface {
	Resized() bool
}

// fileStamp identifies the on-disk state written by our own save.
type fileStamp struct {
	size    int64
	modTime time.Time
}

// Editor is the explicit editor context.
type Editor struct {
	cfg      *config.Config
	log      *Logger
	term     backend.Backend
	keys     *key.Decoder
	buffers  *engine.Manager
	render   *renderer.Renderer
	message  *statusline.Message
	syntaxes *highlight.Registry
	watch    watcher.Watcher

	// Our own saves, so the watcher does not report them back.
	saved map[string]fileStamp

	quit    quitState
	closing closeState
}

// New creates an editor drawing to and reading from term. Files in opts
// are opened immediately; a file that can be neither read nor created is
// a fatal error.
func New(term backend.Backend, opts Options) (*Editor, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = NullLogger
	}

	syntaxes := opts.Syntaxes
	if syntaxes == nil {
		var extra []highlight.Syntax
		if cfg.SyntaxFile != "" {
			var err error
			if extra, err = highlight.LoadDefinitionsFile(cfg.SyntaxFile); err != nil {
				return nil, NewComponentError("syntax", "load definitions", err)
			}
		}
		syntaxes = highlight.NewRegistry(extra...)
	}

	ropts := renderer.DefaultOptions()
	ropts.Theme = cfg.HighlightTheme()
	ropts.Welcome = "jdedit editor"
	if opts.Version != "" {
		ropts.Welcome += " -- version " + opts.Version
	}

	e := &Editor{
		cfg:      cfg,
		log:      log.WithComponent("editor"),
		term:     term,
		keys:     key.NewDecoder(term),
		buffers:  engine.NewManager(buffer.WithTabStop(cfg.Editor.TabStop), buffer.WithGutter(cfg.Editor.LineNumbers)),
		render:   renderer.New(term, ropts),
		message:  statusline.NewMessage(cfg.Editor.MessageTimeout.Duration),
		syntaxes: syntaxes,
		watch:    opts.Watcher,
		saved:    make(map[string]fileStamp),
	}
	if opts.Now != nil {
		e.message.SetClock(opts.Now)
	}

	if err := e.updateSize(); err != nil {
		return nil, err
	}

	for _, name := range opts.Files {
		if _, err := e.openFile(name); err != nil {
			return nil, err
		}
	}
	if e.buffers.Len() == 0 {
		e.buffers.Create()
	}
	_ = e.buffers.Activate(0)

	e.SetStatus("%s", HelpMessage)
	e.log.Info("started with %d buffer(s), %d syntaxes", e.buffers.Len(), syntaxes.Len())
	return e, nil
}

// Buffers returns the buffer manager.
func (e *Editor) Buffers() *engine.Manager { return e.buffers }

// Active returns the active buffer, or nil when none is open.
func (e *Editor) Active() *buffer.Buffer { return e.buffers.Active() }

// Config returns the editor configuration.
func (e *Editor) Config() *config.Config { return e.cfg }

// Renderer returns the renderer.
func (e *Editor) Renderer() *renderer.Renderer { return e.render }

// SetStatus sets the message bar text.
func (e *Editor) SetStatus(format string, args ...any) {
	e.message.Set(format, args...)
}

// StatusMessage returns the current message bar text, ignoring expiry.
func (e *Editor) StatusMessage() string { return e.message.Raw() }

// updateSize queries the terminal size. Failure is fatal.
func (e *Editor) updateSize() error {
	rows, cols, err := e.term.Size()
	if err != nil {
		return NewComponentError("terminal", "size", fmt.Errorf("%w: %w", ErrTerminalSize, err))
	}
	e.render.Resize(rows, cols)
	return nil
}

// ensureBuffer recreates an empty buffer when the last one was closed.
func (e *Editor) ensureBuffer() *buffer.Buffer {
	if e.buffers.Len() == 0 {
		i := e.buffers.Create()
		_ = e.buffers.Activate(i)
	}
	return e.buffers.Active()
}

// openFile loads path into a new buffer and activates it.
func (e *Editor) openFile(path string) (int, error) {
	i := e.buffers.Create()
	b := e.buffers.Buffer(i)
	if err := b.Open(path); err != nil {
		_ = e.buffers.Destroy(i)
		return 0, NewOperationError("open", path, err)
	}
	b.SelectSyntax(e.syntaxes)
	_ = e.buffers.Activate(i)
	e.watchFile(path)

	e.log.WithFields(map[string]any{"buffer": shortID(b.ID()), "rows": b.NumRows()}).Info("opened %s", path)
	return i, nil
}

func (e *Editor) watchFile(path string) {
	if e.watch == nil || path == "" {
		return
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	if err := e.watch.Watch(abs); err != nil && err != watcher.ErrAlreadyWatching {
		e.log.WithComponent("watcher").Warn("watch %s: %v", abs, err)
	}
}

func (e *Editor) unwatchFile(path string) {
	if e.watch == nil || path == "" {
		return
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	// Another buffer may still show the same file.
	for _, b := range e.buffers.Buffers() {
		if other, _ := filepath.Abs(b.Filename()); b.Filename() != "" && other == abs {
			return
		}
	}
	_ = e.watch.Unwatch(abs)
	delete(e.saved, abs)
}

// recordSave remembers the file state produced by saving b.
func (e *Editor) recordSave(b *buffer.Buffer) {
	abs, err := filepath.Abs(b.Filename())
	if err != nil {
		return
	}
	if fi, err := os.Stat(abs); err == nil {
		e.saved[abs] = fileStamp{size: fi.Size(), modTime: fi.ModTime()}
	}
}

// pollWatcher reports external changes to files shown in open buffers.
func (e *Editor) pollWatcher() {
	if e.watch == nil {
		return
	}
	for _, ev := range watcher.Drain(e.watch) {
		if ev.Op.Modified() && !ev.Op.Gone() && e.isOwnSave(ev.Path) {
			continue
		}
		name := e.displayName(ev.Path)
		if name == "" {
			continue
		}
		e.log.WithComponent("watcher").Info("%s: %s", ev.Path, ev.Op)
		if ev.Op.Gone() {
			e.SetStatus("%s was removed or renamed on disk", name)
		} else {
			e.SetStatus("%s changed on disk", name)
		}
	}
}

func (e *Editor) isOwnSave(path string) bool {
	stamp, ok := e.saved[path]
	if !ok {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Size() == stamp.size && fi.ModTime().Equal(stamp.modTime)
}

// displayName returns the buffer filename showing path, or "".
func (e *Editor) displayName(path string) string {
	for _, b := range e.buffers.Buffers() {
		if b.Filename() == "" {
			continue
		}
		if abs, err := filepath.Abs(b.Filename()); err == nil && abs == path {
			return b.Filename()
		}
	}
	return ""
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
