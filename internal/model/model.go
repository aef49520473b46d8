package model

import "strings"

type Category string

const (
	CategoryLost  Category = "lost"
	CategoryFound Category = "found"
)

// ParseCategory routes anything other than "found" to the lost board.
func ParseCategory(s string) Category {
	if strings.TrimSpace(s) == string(CategoryFound) {
		return CategoryFound
	}
	return CategoryLost
}

func (c Category) Label() string {
	if c == CategoryFound {
		return "Found Items"
	}
	return "Lost Items"
}

type ItemType string

const (
	ItemTypeWallet ItemType = "wallet"
	ItemTypeKey    ItemType = "key"
	ItemTypePhone  ItemType = "phone"
	ItemTypeBag    ItemType = "bag"
)

// ParseItemType returns the empty type for values outside the closed set.
func ParseItemType(s string) ItemType {
	switch t := ItemType(strings.ToLower(strings.TrimSpace(s))); t {
	case ItemTypeWallet, ItemTypeKey, ItemTypePhone, ItemTypeBag:
		return t
	default:
		return ""
	}
}

func (t ItemType) Valid() bool {
	return ParseItemType(string(t)) != ""
}

type Item struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	// Date is a display label ("2 days ago", "Just now"), not a timestamp.
	Date        string    `json:"date"`
	Image       string    `json:"image"`
	Type        ItemType  `json:"type"`
	Comments    []Comment `json:"comments,omitempty"`
}

// Clone returns a copy that shares no comment storage with it.
func (it Item) Clone() Item {
	out := it
	if it.Comments != nil {
		out.Comments = append([]Comment(nil), it.Comments...)
	}
	return out
}

type Comment struct {
	ID        int64  `json:"id"`
	User      string `json:"user"`
	Text      string `json:"text"`
	// Date is only set on seed comments; locally authored comments carry Timestamp instead.
	Date      string `json:"date,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}
