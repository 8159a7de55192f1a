package app

import (
	"github.com/dshills/jdedit/internal/input/key"
)

// PromptFunc is called after every key read by Prompt with the current
// input and the key. It is also called with KeyEnter or KeyEscape when
// the prompt ends.
type PromptFunc func(query string, k key.Key)

// Prompt reads a line of input in the message bar. format must contain
// one %s verb, which is replaced by the input so far. Enter accepts a
// non-empty input; Escape returns ErrPromptCancelled.
func (e *Editor) Prompt(format string, cb PromptFunc) (string, error) {
	var input []byte

	for {
		e.SetStatus(format, input)
		if err := e.refresh(); err != nil {
			return "", err
		}

		k, err := e.readKey()
		if err != nil {
			return "", WrapError(err, "reading prompt input")
		}

		switch {
		case k == key.KeyDelete || k == key.KeyBackspace || k == key.Ctrl('h'):
			if len(input) > 0 {
				input = input[:len(input)-1]
			}

		case k == key.KeyEscape:
			e.SetStatus("")
			if cb != nil {
				cb(string(input), k)
			}
			return "", ErrPromptCancelled

		case k == key.KeyEnter:
			if len(input) > 0 {
				e.SetStatus("")
				if cb != nil {
					cb(string(input), k)
				}
				return string(input), nil
			}

		case k.IsPrintable() || (k >= 0x80 && k <= 0xff):
			input = append(input, k.Byte())
		}

		if cb != nil {
			cb(string(input), k)
		}
	}
}
