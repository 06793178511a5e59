package check

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

type dupFrame struct {
	object       bool
	keys         map[string]struct{}
	expectingKey bool
	key          string // current member of an object
	index        int    // current element of an array
}

func (f dupFrame) segment() string {
	if f.object {
		return strings.NewReplacer("~", "~0", "/", "~1").Replace(f.key)
	}
	return strconv.Itoa(f.index)
}

// duplicateKeys returns the JSON pointer of every object member that repeats
// an earlier key of the same object. Decoders disagree on which value wins.
func duplicateKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var stack []dupFrame
	var dups []string
	valueDone := func() {
		if len(stack) == 0 {
			return
		}
		top := &stack[len(stack)-1]
		if top.object {
			top.expectingKey = true
		} else {
			top.index++
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if len(stack) > 0 {
				return dups, io.ErrUnexpectedEOF
			}
			break
		}
		if err != nil {
			return dups, err
		}

		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, dupFrame{object: true, keys: make(map[string]struct{}), expectingKey: true})
			case '[':
				stack = append(stack, dupFrame{})
			case '}', ']':
				stack = stack[:len(stack)-1]
				valueDone()
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].expectingKey {
				top := &stack[n-1]
				top.key = v
				top.expectingKey = false
				if _, seen := top.keys[v]; seen {
					var p strings.Builder
					for _, f := range stack {
						p.WriteString("/" + f.segment())
					}
					dups = append(dups, p.String())
				}
				top.keys[v] = struct{}{}
				continue
			}
			valueDone()
		default:
			valueDone()
		}
	}
	return dups, nil
}
