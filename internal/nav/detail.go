package nav

import (
	"strconv"
	"strings"

	"lostfound-cli/internal/model"
)

// DetailParams carry one item, including its comments, from the listing to
// the detail screen. There is no DTO for the way back.
type DetailParams struct {
	ID          int
	Title       string
	Description string
	Date        string
	Image       string
	Type        model.ItemType
	Comments    []model.Comment
}

func DetailFromItem(it model.Item) DetailParams {
	return DetailParams{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Date:        it.Date,
		Image:       it.Image,
		Type:        it.Type,
		Comments:    append([]model.Comment(nil), it.Comments...),
	}
}

func (d DetailParams) Encode() Params {
	return Params{
		KeyID:          strconv.Itoa(d.ID),
		KeyTitle:       d.Title,
		KeyDescription: d.Description,
		KeyDate:        d.Date,
		KeyImage:       d.Image,
		KeyType:        string(d.Type),
		KeyComments:    EncodeComments(d.Comments),
	}
}

// DecodeDetail reads detail params. Decode problems are reported but never
// fatal: a bad id becomes 0 and a bad comment blob becomes an empty thread.
func DecodeDetail(p Params) (DetailParams, error) {
	d := DetailParams{
		Title:       p.Get(KeyTitle),
		Description: p.Get(KeyDescription),
		Date:        p.Get(KeyDate),
		Image:       p.Get(KeyImage),
		Type:        model.ParseItemType(p.Get(KeyType)),
	}

	var firstErr error
	if raw := strings.TrimSpace(p.Get(KeyID)); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			firstErr = DecodeError{Key: KeyID, Reason: "not an integer", Err: err}
		} else {
			d.ID = id
		}
	}

	comments, err := DecodeComments(p.Get(KeyComments))
	d.Comments = comments
	if err != nil && firstErr == nil {
		firstErr = err
	}
	return d, firstErr
}

func (d DetailParams) Item() model.Item {
	return model.Item{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Date:        d.Date,
		Image:       d.Image,
		Type:        d.Type,
		Comments:    append([]model.Comment(nil), d.Comments...),
	}
}
