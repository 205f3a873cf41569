// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// encodeText converts UTF-8 text to the named IANA charset. An empty
// name or "utf-8" passes the text through unchanged.
func encodeText(text, name string) ([]byte, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return []byte(text), nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported output encoding %q", name)
	}

	data, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encoding output as %s: %w", name, err)
	}
	return data, nil
}
