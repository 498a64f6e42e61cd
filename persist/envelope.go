package persist

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"io"
)

// CurrentTag is the ASCII tag line written at the start of every
// envelope this module produces (spec §6: "one of the two ASCII tags
// followed by a newline").
const CurrentTag = "RIVET_msgpack"

// LegacyTag is a predecessor tag recognised on read but never decoded
// (spec §6's `RIVET_1`: "a legacy binary stream preserved
// for backward-compat reads only" — this module has no legacy reader,
// so the tag is recognised only well enough to report ErrFormat rather
// than attempt to decode it as the current format).
const LegacyTag = "RIVET_1"

// Save writes the three sections to w as one envelope: the current tag
// line, then each section length-prefixed (uint32 big-endian byte
// count) and gob-encoded.
func Save(w io.Writer, params InputParameters, tp TemplatePointsMessage, am ArrangementMessage) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(CurrentTag + "\n"); err != nil {
		return err
	}
	for _, section := range []interface{}{params, tp, am} {
		if err := writeSection(bw, section); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Load reads an envelope written by Save. Returns ErrFormat if the tag
// line is missing, unrecognised, or is the legacy tag.
func Load(r io.Reader) (InputParameters, TemplatePointsMessage, ArrangementMessage, error) {
	var params InputParameters
	var tp TemplatePointsMessage
	var am ArrangementMessage

	br := bufio.NewReader(r)
	tag, err := br.ReadString('\n')
	if err != nil && len(tag) == 0 {
		return params, tp, am, ErrFormat
	}
	tag = trimNewline(tag)
	if tag == LegacyTag {
		return params, tp, am, ErrFormat
	}
	if tag != CurrentTag {
		return params, tp, am, ErrFormat
	}

	if err := readSection(br, &params); err != nil {
		return params, tp, am, err
	}
	if err := readSection(br, &tp); err != nil {
		return params, tp, am, err
	}
	if err := readSection(br, &am); err != nil {
		return params, tp, am, err
	}

	return params, tp, am, nil
}

func trimNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s[:n-1]
	}

	return s
}

func writeSection(w io.Writer, v interface{}) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return err
	}

	var lenPrefix [4]byte
	binary.BigEndian.PutUint32(lenPrefix[:], uint32(buf.Len()))
	if _, err := w.Write(lenPrefix[:]); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())

	return err
}

func readSection(r io.Reader, v interface{}) error {
	var lenPrefix [4]byte
	if _, err := io.ReadFull(r, lenPrefix[:]); err != nil {
		return ErrTruncated
	}
	n := binary.BigEndian.Uint32(lenPrefix[:])

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return ErrTruncated
	}

	return gob.NewDecoder(bytes.NewReader(buf)).Decode(v)
}
