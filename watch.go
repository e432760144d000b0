package shaderplay

import (
	"errors"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ShaderWatcher reports changes to a single shader file. Its methods never
// block so they can be called once per frame from the render loop.
type ShaderWatcher struct {
	w       *fsnotify.Watcher
	path    string
	changed chan struct{}
	errs    chan error
	done    chan struct{}
}

// WatchShader starts watching the file at path. The parent directory is
// watched since many editors save by writing a new file and renaming it over
// the old one, which drops watches on the file itself.
func WatchShader(path string) (*ShaderWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	err = w.Add(filepath.Dir(abs))
	if err != nil {
		w.Close()
		return nil, err
	}
	sw := &ShaderWatcher{
		w:       w,
		path:    abs,
		changed: make(chan struct{}, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go sw.loop()
	return sw, nil
}

// Path returns the absolute path of the watched file.
func (sw *ShaderWatcher) Path() string { return sw.path }

func (sw *ShaderWatcher) loop() {
	defer close(sw.done)
	for {
		select {
		case ev, ok := <-sw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != sw.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			// Coalesce: one pending notification is enough.
			select {
			case sw.changed <- struct{}{}:
			default:
			}
		case err, ok := <-sw.w.Errors:
			if !ok {
				return
			}
			select {
			case sw.errs <- err:
			default:
			}
		}
	}
}

// Changed reports whether the file changed since the last call.
func (sw *ShaderWatcher) Changed() bool {
	select {
	case <-sw.changed:
		return true
	default:
		return false
	}
}

// Err returns a pending watcher error, if any.
func (sw *ShaderWatcher) Err() error {
	select {
	case err := <-sw.errs:
		return err
	default:
		return nil
	}
}

// Close stops watching and waits for the event goroutine to exit.
func (sw *ShaderWatcher) Close() error {
	if sw == nil || sw.w == nil {
		return errors.New("nil shader watcher")
	}
	err := sw.w.Close()
	<-sw.done
	return err
}
