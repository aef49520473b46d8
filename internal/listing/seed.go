package listing

import "lostfound-cli/internal/model"

// Sample data the board starts every session with.

func seedLost() []model.Item {
	return []model.Item{
		{
			ID:          1,
			Title:       "Lost Wallet",
			Description: "Black leather wallet with ID cards",
			Date:        "2 days ago",
			Image:       "https://images.unsplash.com/photo-1551806235-6693c8b4d1c4?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
			Type:        model.ItemTypeWallet,
			Comments: []model.Comment{
				{ID: 1, User: "John", Text: "I think I saw this at the cafeteria", Date: "1 day ago"},
			},
		},
		{
			ID:          2,
			Title:       "Lost Keys",
			Description: "House keys with blue keychain",
			Date:        "1 day ago",
			Image:       "https://images.unsplash.com/photo-1593891125785-c0e5e07a7027?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
			Type:        model.ItemTypeKey,
		},
	}
}

func seedFound() []model.Item {
	return []model.Item{
		{
			ID:          1,
			Title:       "Found Phone",
			Description: "iPhone 13 with black case",
			Date:        "3 hours ago",
			Image:       "https://images.unsplash.com/photo-1601784551446-20c9e07cdbdb?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
			Type:        model.ItemTypePhone,
			Comments: []model.Comment{
				{ID: 1, User: "Sarah", Text: "Is this still available?", Date: "2 hours ago"},
				{ID: 2, User: "Mike", Text: "I lost a similar phone", Date: "1 hour ago"},
			},
		},
		{
			ID:          2,
			Title:       "Found Backpack",
			Description: "Red backpack with books",
			Date:        "Yesterday",
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
			Type:        model.ItemTypeBag,
		},
	}
}
