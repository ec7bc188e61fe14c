package source

import (
	"context"
	"encoding/json"
	"fmt"

	"igpulse/models"
)

// fixtureJSON is the sample batch used in mock mode. It flows through the
// same RawPost normalization as live provider data.
const fixtureJSON = `[
  {
    "id": "1",
    "shortcode": "ABC123",
    "caption": "Life is beautiful! #motivation #life",
    "hashtags": ["motivation", "life"],
    "likes": 120,
    "comments_count": 10,
    "is_video": true,
    "display_url": "https://example.com/image1.jpg",
    "video_url": "https://example.com/video1.mp4",
    "timestamp": "2025-09-21T10:00:00",
    "location": "Gym",
    "music_title": "Eye of the Tiger",
    "shares": 5,
    "saves": 15,
    "comments": [
      {"text": "Love this!", "owner": "user1"},
      {"text": "So motivating!", "owner": "user2"}
    ]
  },
  {
    "id": "2",
    "shortcode": "DEF456",
    "caption": "Coding memes 😂 #comedy #coding",
    "hashtags": ["comedy", "coding"],
    "likes": 150,
    "comments_count": 20,
    "is_video": false,
    "display_url": "https://example.com/image2.jpg",
    "video_url": null,
    "timestamp": "2025-09-20T15:30:00",
    "location": "Home",
    "music_title": null,
    "shares": 10,
    "saves": 25,
    "comments": [
      {"text": "Haha 😂", "owner": "user3"},
      {"text": "This made my day", "owner": "user4"}
    ]
  },
  {
    "id": "3",
    "shortcode": "GHI789",
    "caption": "Learn something new every day! #informative #learning",
    "hashtags": ["informative", "learning"],
    "likes": 200,
    "comments_count": 15,
    "is_video": false,
    "display_url": "https://example.com/image3.jpg",
    "video_url": null,
    "timestamp": "2025-09-19T12:00:00",
    "location": null,
    "music_title": null,
    "shares": 2,
    "saves": 12,
    "comments": [
      {"text": "Thanks for sharing!", "owner": "user5"}
    ]
  },
  {
    "id": "4",
    "shortcode": "JKL012",
    "caption": "Just chilling #brainrot #fun",
    "hashtags": ["brainrot", "fun"],
    "likes": 90,
    "comments_count": 5,
    "is_video": true,
    "display_url": "https://example.com/image4.jpg",
    "video_url": "https://example.com/video2.mp4",
    "timestamp": "2025-09-18T18:45:00",
    "location": "Cafe",
    "music_title": "Lo-fi beats",
    "shares": 1,
    "saves": 5,
    "comments": [
      {"text": "Chill vibes!", "owner": "user6"}
    ]
  }
]`

// FixtureSource serves the embedded sample batch. The account argument is
// ignored; mock mode analyzes the same posts for any account.
type FixtureSource struct{}

// NewFixtureSource builds a FixtureSource.
func NewFixtureSource() *FixtureSource {
	return &FixtureSource{}
}

// FetchPosts returns up to maxPosts fixture posts.
func (s *FixtureSource) FetchPosts(ctx context.Context, account string, maxPosts int) ([]models.PostRecord, error) {
	var raws []RawPost
	if err := json.Unmarshal([]byte(fixtureJSON), &raws); err != nil {
		return nil, fmt.Errorf("failed to decode fixture posts: %w", err)
	}

	if maxPosts < len(raws) {
		raws = raws[:maxPosts]
	}

	posts := make([]models.PostRecord, 0, len(raws))
	for _, raw := range raws {
		posts = append(posts, Normalize(raw))
	}
	return posts, nil
}
