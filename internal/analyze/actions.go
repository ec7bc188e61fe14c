package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"igpulse/internal/common"
	"igpulse/models"
	"igpulse/pkg/aggregate"
	"igpulse/pkg/caching"
	"igpulse/pkg/fetcher"
	"igpulse/pkg/language"
	"igpulse/pkg/media"
	"igpulse/pkg/mood"
	"igpulse/pkg/report"
	"igpulse/pkg/sentiment"
	"igpulse/pkg/source"
	"igpulse/pkg/storage"
	"igpulse/pkg/suggest"
)

const (
	ModeMock = "mock"
	ModeReal = "real"
)

// cacheTTL bounds how long fetched pages and probed durations are reused.
const cacheTTL = time.Hour

// AnalyzeAction runs the full pipeline: acquire, normalize, annotate,
// aggregate, render.
func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	account, maxPosts, mode, err := parseArgs(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if c.IsSet("workers") {
		cfg.WorkerCount = c.Int("workers")
	}

	// Credentials are optional; a missing .env just means anonymous
	// access and keyword-fallback classification.
	_ = godotenv.Load()
	hfToken := os.Getenv("HF_API_TOKEN")
	sessionCookie := os.Getenv("IG_SESSION_COOKIE")

	cache, err := caching.New(filepath.Join(os.TempDir(), "igpulse-cache"), cacheTTL)
	if err != nil {
		logger.Warn("cache unavailable, continuing without", "error", err)
		cache = nil
	}

	ctx := c.Context
	posts := acquirePosts(ctx, logger, cfg, cache, sessionCookie, account, maxPosts, mode)
	annotator := buildAnnotator(cfg, cache, hfToken, sessionCookie)

	logger.Info("annotating batch", "account", account, "posts", len(posts), "workers", cfg.WorkerCount, "mode", mode)
	annotated := AnnotateBatch(ctx, logger, annotator, posts, cfg.WorkerCount)
	logLanguageDistribution(logger, annotated)

	agg := aggregate.Build(annotated)

	switch c.String("format") {
	case "csv":
		return renderCSV(c, logger, annotated, agg)
	default:
		return renderJSON(c, agg)
	}
}

// parseArgs reads the positional arguments: account, optional max_posts,
// optional mode. Malformed values are contract violations and fail hard.
func parseArgs(c *cli.Context) (account string, maxPosts int, mode string, err error) {
	account = common.SanitizeAccount(c.Args().Get(0))
	if err = common.ValidateAccount(account); err != nil {
		return "", 0, "", err
	}

	maxPosts = models.DefaultMaxPosts
	if arg := c.Args().Get(1); arg != "" {
		maxPosts, err = strconv.Atoi(arg)
		if err != nil {
			return "", 0, "", fmt.Errorf("invalid max_posts %q", arg)
		}
	}
	if maxPosts < 0 {
		return "", 0, "", fmt.Errorf("max_posts must not be negative, got %d", maxPosts)
	}

	mode = ModeMock
	if arg := c.Args().Get(2); arg != "" {
		mode = arg
	}
	if mode != ModeMock && mode != ModeReal {
		return "", 0, "", fmt.Errorf("invalid mode %q: must be %q or %q", mode, ModeMock, ModeReal)
	}

	return account, maxPosts, mode, nil
}

// acquirePosts fetches the batch from the mode-selected source. All
// acquisition failures degrade to an empty batch; the error is logged for
// diagnostics only.
func acquirePosts(ctx context.Context, logger *slog.Logger, cfg *models.Config, cache *caching.Cache, sessionCookie, account string, maxPosts int, mode string) []models.PostRecord {
	var src source.PostSource
	if mode == ModeReal {
		opts := []fetcher.Option{}
		if sessionCookie != "" {
			opts = append(opts, fetcher.WithSessionCookie(sessionCookie))
		}
		src = source.NewInstagramSource(fetcher.New(opts...), cache, cfg.MaxCommentsPerPost)
	} else {
		src = source.NewFixtureSource()
	}

	posts, err := src.FetchPosts(ctx, account, maxPosts)
	if err != nil {
		logger.Warn("post acquisition degraded to empty batch", "account", account, "error", err)
		return []models.PostRecord{}
	}
	return posts
}

// buildAnnotator constructs the per-post collaborators. The hosted
// classifiers are only wired when a token exists; without one the mood
// path takes the keyword fallback and comment tone stays empty.
func buildAnnotator(cfg *models.Config, cache *caching.Cache, hfToken, sessionCookie string) *Annotator {
	var zeroShot mood.ZeroShotClassifier
	var batchClassifier sentiment.BatchClassifier
	if hfToken != "" {
		zeroShot = mood.NewHuggingFaceClient(cfg.MoodModelURL, hfToken)
		batchClassifier = sentiment.NewHuggingFaceClient(cfg.SentimentModelURL, hfToken)
	}

	prober := media.NewHTTPProber(fetcher.New(), cache)

	return NewAnnotator(
		mood.New(cfg.MoodLabels, zeroShot),
		sentiment.NewAggregator(batchClassifier),
		media.NewEstimator(prober),
		language.NewDetector(),
	)
}

func logLanguageDistribution(logger *slog.Logger, annotated []models.AnnotatedPost) {
	counts := map[string]int{}
	for _, ap := range annotated {
		if ap.Annotation.Language != "" {
			counts[ap.Annotation.Language]++
		}
	}
	if len(counts) > 0 {
		logger.Info("caption language distribution", "languages", counts)
	}
}

func renderJSON(c *cli.Context, agg models.AggregateReport) error {
	data, err := report.RenderSummary(agg)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	fmt.Fprintln(c.App.Writer, string(data))
	return nil
}

func renderCSV(c *cli.Context, logger *slog.Logger, annotated []models.AnnotatedPost, agg models.AggregateReport) error {
	if agg.NoData {
		fmt.Fprintln(c.App.Writer, models.NoPostsMessage)
		return nil
	}

	out := c.String("out")
	if err := report.WriteCSV(out, annotated, &storage.Storage{}); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	logger.Info("CSV report written", "path", out, "rows", len(annotated))

	fmt.Fprintf(c.App.Writer, "CSV saved to %s\n", out)
	fmt.Fprintln(c.App.Writer, "\n--- Suggestions ---")
	for _, line := range suggest.Generate(agg) {
		fmt.Fprintf(c.App.Writer, "• %s\n", line)
	}
	return nil
}
