package phh

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lox/pokernow-stats/internal/hands"
)

// EncodeSession writes the reconstructed hands to w as a sectioned TOML
// document, one [hand_N] table per hand in session order.
func EncodeSession(w io.Writer, session []*hands.Hand) error {
	for i, hand := range session {
		if hand == nil {
			return fmt.Errorf("phh: hand %d is nil", i+1)
		}
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[hand_%d]\n", i+1); err != nil {
			return err
		}
		enc := toml.NewEncoder(w)
		enc.Indent = "\t"
		if err := enc.Encode(FromHand(hand, i+1)); err != nil {
			return fmt.Errorf("phh: encoding hand %d: %w", i+1, err)
		}
	}
	return nil
}

// EncodeSessionToBytes encodes and returns the result as bytes.
func EncodeSessionToBytes(session []*hands.Hand) ([]byte, error) {
	var buf strings.Builder
	if err := EncodeSession(&buf, session); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// DecodeSession parses a sectioned session document back into its hands,
// ordered by section index.
func DecodeSession(raw string) ([]SessionHand, error) {
	sections := make(map[string]SessionHand)
	if _, err := toml.Decode(raw, &sections); err != nil {
		return nil, fmt.Errorf("phh: decoding session: %w", err)
	}

	keys := make([]string, 0, len(sections))
	for key := range sections {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return sectionKeyLess(keys[i], keys[j]) })

	session := make([]SessionHand, 0, len(keys))
	for _, key := range keys {
		session = append(session, sections[key])
	}
	return session, nil
}
