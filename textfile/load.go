package textfile

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/gapbuffer"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Fragment is a progress event for one loaded file fragment.
type Fragment struct {
	Pos int64 // start position of the fragment within the file
	Len int64 // fragment length in bytes
}

// Loading is a handle for an in-flight file load.
//
// The loader goroutine owns the gap buffer until loading has finished;
// clients obtain the buffer through Wait, which blocks until then.
type Loading struct {
	buf  *gapbuffer.GapBuffer
	cast *caster.Caster
	done chan struct{}
	err  error
}

// textFile represents an OS file which will be loaded into a gap buffer.
type textFile struct {
	path      string      // file name
	info      os.FileInfo // result from Stat(path)
	file      *os.File    // file handle
	lastError error       // remember last I/O error
}

// Load reads a file, which must be a text file, and loads it into a gap
// buffer. Clients may indicate a recommended fragment length; fragSize 0
// lets Load pick a sensible default from the file size.
//
// Opening of the file is always done synchronously, so a missing or
// irregular file fails fast. Reading the content happens asynchronously;
// the returned Loading handle delivers the buffer once it is complete.
func Load(name string, fragSize int64) (*Loading, error) {
	tf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	if fragSize <= 0 || fragSize > tenKb {
		if tf.info.Size() < 64 {
			fragSize = tf.info.Size()
		} else if tf.info.Size() < 1024 {
			fragSize = 64
		} else if tf.info.Size() < tenKb {
			fragSize = 256
		} else if tf.info.Size() < hundredKb {
			fragSize = 512
		} else if tf.info.Size() < oneMb {
			fragSize = twoKb
		} else {
			fragSize = sixKb
		}
	}
	ld := &Loading{
		buf:  gapbuffer.WithCapacity(int(tf.info.Size())),
		cast: caster.New(nil),
		done: make(chan struct{}),
	}
	go ld.loadAllFragments(tf, fragSize)
	return ld, nil
}

// Wait blocks until loading has finished and returns the buffer holding the
// complete file content. After Wait returns, the caller is the buffer's
// sole owner.
func (ld *Loading) Wait() (*gapbuffer.GapBuffer, error) {
	<-ld.done
	return ld.buf, ld.err
}

// Done returns a channel which is closed when loading has finished.
func (ld *Loading) Done() <-chan struct{} {
	return ld.done
}

// Watch subscribes to per-fragment progress events. The returned channel is
// closed when loading has finished. Subscribing after completion yields a
// closed channel.
func (ld *Loading) Watch(ctx context.Context) <-chan Fragment {
	out := make(chan Fragment, 16)
	ch, ok := ld.cast.Sub(ctx, 16)
	if !ok { // broadcaster already closed
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for m := range ch {
			if frag, ok := m.(Fragment); ok {
				out <- frag
			}
		}
	}()
	return out
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &textFile{
		path: name,
		info: fi,
		file: file,
	}, nil
}

// loadAllFragments reads the file fragment by fragment, appending each one
// at the end of the buffer and publishing a progress event. It runs in its
// own goroutine and is the buffer's exclusive owner until done is closed.
func (ld *Loading) loadAllFragments(tf *textFile, fragSize int64) {
	defer func() {
		tf.file.Close()
		ld.err = tf.lastError
		ld.cast.Close() // closes all subscriber channels
		close(ld.done)
	}()
	size := tf.info.Size()
	buf := make([]byte, fragSize)
	for pos := int64(0); pos < size; pos += fragSize {
		n := min(fragSize, size-pos)
		cnt, err := tf.file.ReadAt(buf[:n], pos)
		if err != nil && err != io.EOF {
			tf.lastError = fmt.Errorf("error loading text fragment: %w", err)
			tracer().Errorf("%v", tf.lastError)
			return
		} else if int64(cnt) < n {
			tf.lastError = fmt.Errorf("not all bytes loaded for text fragment")
			tracer().Errorf("%v", tf.lastError)
			return
		}
		if err := ld.buf.Insert(ld.buf.Len(), buf[:n]); err != nil {
			tf.lastError = err
			return
		}
		tracer().Debugf("loaded fragment [%d,%d) of %q", pos, pos+n, tf.path)
		ld.cast.Pub(Fragment{Pos: pos, Len: n})
	}
}

// --- Helpers ---------------------------------------------------------------

func min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
