package recommendation

import "github.com/rachmurali02/social-app/internal/domain"

// Fallback is the fixed pair served when the recommendation source fails.
func Fallback() []domain.Option {
	return []domain.Option{
		{
			Name:          "The Coffee Collective",
			Address:       "123 Main St, Dubai",
			Rating:        4.8,
			Popularity:    "80% of users pick this nearby coffee shop",
			Reason:        "Perfect for casual meetups with great ambiance",
			MapURL:        "https://maps.google.com/?q=Coffee+Collective+Dubai",
			IsRecommended: true,
		},
		{
			Name:       "Garden Terrace Café",
			Address:    "456 Park Ave, Dubai",
			Rating:     4.6,
			Popularity: "65% prefer outdoor seating here",
			Reason:     "Beautiful outdoor space, ideal for afternoon chats",
			MapURL:     "https://maps.google.com/?q=Garden+Terrace+Dubai",
		},
	}
}
