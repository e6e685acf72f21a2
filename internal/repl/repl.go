// Package repl wraps a readline-backed interactive loop for checking one
// input sentence at a time against an already-built table.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Reader is the common shape of the two session backends: read one line of
// input, or io.EOF when the session ends.
type Reader interface {
	ReadSentence() (string, error)
	Close() error
}

// InteractiveReader reads sentences from a TTY via readline, giving history
// and line editing.
type InteractiveReader struct {
	rl *readline.Instance
}

// NewInteractiveReader starts a readline session prompting "sentence> ".
func NewInteractiveReader() (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: "sentence> "})
	if err != nil {
		return nil, fmt.Errorf("create readline session: %w", err)
	}
	return &InteractiveReader{rl: rl}, nil
}

func (r *InteractiveReader) ReadSentence() (string, error) {
	for {
		line, err := r.rl.Readline()
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
	}
}

func (r *InteractiveReader) Close() error {
	return r.rl.Close()
}

// DirectReader reads sentences from any io.Reader (piped stdin, files) with
// no line editing, for scripted/batch use.
type DirectReader struct {
	r *bufio.Reader
}

// NewDirectReader wraps src in a buffered line reader.
func NewDirectReader(src io.Reader) *DirectReader {
	return &DirectReader{r: bufio.NewReader(src)}
}

func (r *DirectReader) ReadSentence() (string, error) {
	for {
		line, err := r.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if err == io.EOF {
			return "", io.EOF
		}
	}
}

func (r *DirectReader) Close() error {
	return nil
}

// Session loops, reading sentences from reader and passing each to handle
// until the reader reports io.EOF or handle returns a non-nil error.
func Session(reader Reader, handle func(sentence string) error) error {
	for {
		sentence, err := reader.ReadSentence()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := handle(sentence); err != nil {
			return err
		}
	}
}
