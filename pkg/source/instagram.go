package source

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"igpulse/models"
	"igpulse/pkg/caching"
	"igpulse/pkg/fetcher"
)

const profileURLFormat = "https://www.instagram.com/%s/"

// sharedDataPrefix marks the inline script carrying the profile payload.
const sharedDataPrefix = "window._sharedData"

// InstagramSource scrapes a public profile page and normalizes the posts
// embedded in its shared-data payload.
type InstagramSource struct {
	fetcher     *fetcher.Fetcher
	cache       *caching.Cache
	maxComments int
}

// NewInstagramSource builds an InstagramSource. cache may be nil;
// maxComments caps how many comments are kept per post.
func NewInstagramSource(f *fetcher.Fetcher, cache *caching.Cache, maxComments int) *InstagramSource {
	return &InstagramSource{fetcher: f, cache: cache, maxComments: maxComments}
}

// FetchPosts retrieves up to maxPosts recent posts for account. Private
// and nonexistent accounts yield an empty batch together with the
// transport error for the caller to log; the pipeline treats both the
// same way.
func (s *InstagramSource) FetchPosts(ctx context.Context, account string, maxPosts int) ([]models.PostRecord, error) {
	url := fmt.Sprintf(profileURLFormat, account)

	body, err := s.fetchPage(ctx, url)
	if err != nil {
		return []models.PostRecord{}, fmt.Errorf("failed to fetch profile page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return []models.PostRecord{}, fmt.Errorf("failed to parse profile page: %w", err)
	}

	payload, err := extractSharedData(doc)
	if err != nil {
		return []models.PostRecord{}, err
	}

	raws := extractTimelinePosts(payload, maxPosts, s.maxComments)
	posts := make([]models.PostRecord, 0, len(raws))
	for _, raw := range raws {
		posts = append(posts, Normalize(raw))
	}
	return posts, nil
}

func (s *InstagramSource) fetchPage(ctx context.Context, url string) ([]byte, error) {
	if s.cache != nil {
		if data, ok := s.cache.Get(url); ok {
			return data, nil
		}
	}

	body, err := s.fetcher.GetBytes(ctx, url)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Set(url, body)
	}
	return body, nil
}

// extractSharedData locates the inline shared-data script and decodes its
// JSON object.
func extractSharedData(doc *goquery.Document) (map[string]any, error) {
	var payload map[string]any
	var parseErr error
	found := false

	doc.Find("script").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if !strings.HasPrefix(text, sharedDataPrefix) {
			return true
		}

		found = true
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start < 0 || end <= start {
			parseErr = fmt.Errorf("malformed shared-data script")
			return false
		}
		parseErr = json.Unmarshal([]byte(text[start:end+1]), &payload)
		return false
	})

	if !found {
		return nil, fmt.Errorf("no shared-data payload on profile page")
	}
	if parseErr != nil {
		return nil, fmt.Errorf("failed to decode shared-data payload: %w", parseErr)
	}
	return payload, nil
}

// extractTimelinePosts walks the shared-data payload down to the timeline
// media edges and remaps each node into a canonical RawPost. Missing
// intermediate objects yield an empty result, never a panic.
func extractTimelinePosts(payload map[string]any, maxPosts, maxComments int) []RawPost {
	user := dig(payload, "entry_data", "ProfilePage", "graphql", "user")
	if user == nil {
		return nil
	}
	edges := digList(user, "edge_owner_to_timeline_media", "edges")

	raws := make([]RawPost, 0, len(edges))
	for _, edge := range edges {
		if len(raws) >= maxPosts {
			break
		}
		node := digMap(edge, "node")
		if node == nil {
			continue
		}
		raws = append(raws, nodeToRawPost(node, maxComments))
	}
	return raws
}

// nodeToRawPost remaps a graphql media node onto the canonical raw keys
// the normalizer understands.
func nodeToRawPost(node map[string]any, maxComments int) RawPost {
	raw := RawPost{
		"id":          node["id"],
		"shortcode":   node["shortcode"],
		"is_video":    node["is_video"],
		"display_url": node["display_url"],
		"video_url":   node["video_url"],
	}

	if captionEdges := digList(node, "edge_media_to_caption", "edges"); len(captionEdges) > 0 {
		if captionNode := digMap(captionEdges[0], "node"); captionNode != nil {
			raw["caption"] = captionNode["text"]
		}
	}

	if likes := dig(node, "edge_liked_by"); likes != nil {
		raw["likes"] = likes["count"]
	} else if likes := dig(node, "edge_media_preview_like"); likes != nil {
		raw["likes"] = likes["count"]
	}
	if comments := dig(node, "edge_media_to_comment"); comments != nil {
		raw["comments_count"] = comments["count"]
	}

	if ts, ok := node["taken_at_timestamp"].(float64); ok {
		raw["timestamp"] = time.Unix(int64(ts), 0).UTC().Format("2006-01-02T15:04:05")
	}
	if location := dig(node, "location"); location != nil {
		raw["location"] = location["name"]
	}

	comments := []any{}
	for _, edge := range digList(node, "edge_media_to_comment", "edges") {
		if len(comments) >= maxComments {
			break
		}
		commentNode := digMap(edge, "node")
		if commentNode == nil {
			continue
		}
		entry := map[string]any{"text": commentNode["text"]}
		if owner := dig(commentNode, "owner"); owner != nil {
			entry["owner"] = owner["username"]
		}
		comments = append(comments, entry)
	}
	raw["comments"] = comments

	return raw
}

// dig descends through nested objects by key, unwrapping single-element
// lists along the way (the ProfilePage entry is a one-element array).
func dig(value any, keys ...string) map[string]any {
	current := value
	for _, key := range keys {
		if list, ok := current.([]any); ok {
			if len(list) == 0 {
				return nil
			}
			current = list[0]
		}
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[key]
	}
	m, _ := current.(map[string]any)
	return m
}

func digMap(value any, key string) map[string]any {
	m, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	child, _ := m[key].(map[string]any)
	return child
}

func digList(value any, keys ...string) []any {
	m, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	var current any = m
	for i, key := range keys {
		parent, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = parent[key]
		if i == len(keys)-1 {
			list, _ := current.([]any)
			return list
		}
	}
	return nil
}
