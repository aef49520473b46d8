package nav

import (
	"encoding/json"
	"strings"

	"lostfound-cli/internal/model"
)

const commentsWireVersion = 1

// commentsEnvelope is the wire shape of a serialized comment sequence. The
// explicit count lets the decoder reject truncated or spliced blobs instead of
// silently accepting a prefix.
type commentsEnvelope struct {
	V        int            `json:"v"`
	N        int            `json:"n"`
	Comments []wireComment `json:"comments"`
}

type wireComment struct {
	ID        int64  `json:"id"`
	User      string `json:"user"`
	Text      string `json:"text"`
	Date      string `json:"date,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// EncodeComments serializes comments into a single parameter value.
func EncodeComments(comments []model.Comment) string {
	env := commentsEnvelope{
		V:        commentsWireVersion,
		N:        len(comments),
		Comments: make([]wireComment, 0, len(comments)),
	}
	for _, c := range comments {
		env.Comments = append(env.Comments, wireComment(c))
	}
	b, err := json.Marshal(env)
	if err != nil {
		// Only strings and integers are marshaled; this cannot fail.
		return ""
	}
	return string(b)
}

// DecodeComments parses a value produced by EncodeComments. A blank value is
// an empty sequence. Any malformed input yields an empty (non-nil) sequence
// and a DecodeError; it never panics.
func DecodeComments(blob string) ([]model.Comment, error) {
	out := []model.Comment{}
	if strings.TrimSpace(blob) == "" {
		return out, nil
	}

	dec := json.NewDecoder(strings.NewReader(blob))
	dec.DisallowUnknownFields()
	var env commentsEnvelope
	if err := dec.Decode(&env); err != nil {
		return out, DecodeError{Key: KeyComments, Reason: "malformed envelope", Err: err}
	}
	if rest := blob[dec.InputOffset():]; strings.TrimSpace(rest) != "" {
		return out, DecodeError{Key: KeyComments, Reason: "trailing data"}
	}
	if env.V != commentsWireVersion {
		return out, DecodeError{Key: KeyComments, Reason: "unsupported version"}
	}
	if env.N != len(env.Comments) {
		return out, DecodeError{Key: KeyComments, Reason: "count mismatch"}
	}

	seen := make(map[int64]struct{}, len(env.Comments))
	decoded := make([]model.Comment, 0, len(env.Comments))
	for _, wc := range env.Comments {
		if strings.TrimSpace(wc.Text) == "" {
			return out, DecodeError{Key: KeyComments, Reason: "comment without text"}
		}
		if _, dup := seen[wc.ID]; dup {
			return out, DecodeError{Key: KeyComments, Reason: "duplicate comment id"}
		}
		seen[wc.ID] = struct{}{}
		decoded = append(decoded, model.Comment(wc))
	}
	return decoded, nil
}
