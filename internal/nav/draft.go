package nav

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"lostfound-cli/internal/model"
)

// DraftParams carry a freshly authored post from the create screen to the listing.
type DraftParams struct {
	Title       string
	Description string
	Image       string
	Category    model.Category
	// ItemType is optional; the listing falls back to the category default.
	ItemType    model.ItemType
	// Refresh is a decimal millisecond timestamp; it makes every submission
	// look new to the listing even when title and description repeat.
	Refresh     string
}

var lastRefresh atomic.Int64

// RefreshToken returns now in milliseconds, bumped so that successive
// tokens within one process are strictly increasing.
func RefreshToken(now time.Time) string {
	ms := now.UnixMilli()
	for {
		prev := lastRefresh.Load()
		next := ms
		if next <= prev {
			next = prev + 1
		}
		if lastRefresh.CompareAndSwap(prev, next) {
			return strconv.FormatInt(next, 10)
		}
	}
}

// NewDraft validates the create-post form and fills in the image fallback and
// refresh token. Title and description must be non-blank.
func NewDraft(title, description, image string, cat model.Category, itemType model.ItemType, now time.Time, fallbackImage string) (DraftParams, error) {
	if err := ValidateDraft(title, description); err != nil {
		return DraftParams{}, err
	}
	if strings.TrimSpace(image) == "" {
		image = fallbackImage
	}
	return DraftParams{
		Title:       title,
		Description: description,
		Image:       image,
		Category:    model.ParseCategory(string(cat)),
		ItemType:    model.ParseItemType(string(itemType)),
		Refresh:     RefreshToken(now),
	}, nil
}

// ValidateDraft checks the required create-post fields.
func ValidateDraft(title, description string) error {
	var missing []string
	if strings.TrimSpace(title) == "" {
		missing = append(missing, KeyTitle)
	}
	if strings.TrimSpace(description) == "" {
		missing = append(missing, KeyDescription)
	}
	if len(missing) > 0 {
		return ValidationError{Fields: missing, Message: "Please fill in all fields"}
	}
	return nil
}

// HasDraft reports whether the params describe a post to merge (non-blank title).
func (d DraftParams) HasDraft() bool {
	return strings.TrimSpace(d.Title) != ""
}

func (d DraftParams) Encode() Params {
	return Params{
		KeyTitle:       d.Title,
		KeyDescription: d.Description,
		KeyImage:       d.Image,
		KeyType:        string(d.Category),
		KeyItemType:    string(d.ItemType),
		KeyRefresh:     d.Refresh,
	}
}

// DecodeDraft reads draft fields from params. The "type" key holds the
// category; anything other than "found" routes to lost.
func DecodeDraft(p Params) DraftParams {
	return DraftParams{
		Title:       p.Get(KeyTitle),
		Description: p.Get(KeyDescription),
		Image:       p.Get(KeyImage),
		Category:    model.ParseCategory(p.Get(KeyType)),
		ItemType:    model.ParseItemType(p.Get(KeyItemType)),
		Refresh:     p.Get(KeyRefresh),
	}
}

// CategoryParams are what the sidebar's "Report lost/found" actions pass to
// the create screen.
func CategoryParams(cat model.Category) Params {
	return Params{KeyType: string(cat)}
}

// AuthParams are forwarded by sign-up to decorate the listing's sidebar.
type AuthParams struct {
	Username     string
	ProfileImage string
}

const DefaultUsername = "Akashi"

func (a AuthParams) Encode() Params {
	return Params{KeyUsername: a.Username, KeyProfileImage: a.ProfileImage}
}

func DecodeAuth(p Params) AuthParams {
	return AuthParams{Username: p.Get(KeyUsername), ProfileImage: p.Get(KeyProfileImage)}
}

func (a AuthParams) DisplayName() string {
	if n := strings.TrimSpace(a.Username); n != "" {
		return n
	}
	return DefaultUsername
}
