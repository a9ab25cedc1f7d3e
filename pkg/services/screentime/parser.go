package screentime

import (
	"context"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/folio-tools/folio-api/pkg/models/domain"
	"github.com/rs/zerolog"
)

// IconResolver looks up artwork for apps without a bundled icon. A lookup
// failure is never fatal; the caller keeps the fallback icon.
type IconResolver interface {
	Resolve(ctx context.Context, appName string) (string, error)
}

// Parser heuristically extracts app usage from recognized Screen Time
// screenshot text. The input is noisy OCR output, so everything here is
// best-effort: worst case Parse returns nil and the caller falls back to
// synthetic data.
type Parser struct {
	icons IconResolver
	rng   *rand.Rand
}

type ParserOption func(*Parser)

func WithIconResolver(icons IconResolver) ParserOption {
	return func(p *Parser) { p.icons = icons }
}

func WithParserRand(rng *rand.Rand) ParserOption {
	return func(p *Parser) { p.rng = rng }
}

func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// OCR reads of "6h 27m" come back as "6h27m", "6 h 27 m", "6hr 27min" and
// worse; the patterns tolerate the variants seen in practice.
var (
	hoursMinutesRe = regexp.MustCompile(`(?i)(\d+)\s*(?:hours?|hrs?|h)\s*(\d+)\s*(?:minutes?|mins?|m)\b`)
	hoursOnlyRe    = regexp.MustCompile(`(?i)(\d+)\s*(?:hours?|hrs?|h)\b`)
	minutesOnlyRe  = regexp.MustCompile(`(?i)(\d+)\s*(?:minutes?|mins?|m)\b`)
)

var stopWords = []string{"pickup", "show more", "daily average"}
var skipWords = []string{"show categories", "categories", "subtotal"}

// Parse scans recognized text for per-app durations and partitions the
// recognized apps into the fixed receipt categories. It returns nil when
// nothing was recognized, and never returns an error: malformed input is
// simply unparseable, not exceptional.
func (p *Parser) Parse(ctx context.Context, rawText string) []domain.UsageCategory {
	logger := zerolog.Ctx(ctx)

	lines := splitLines(rawText)
	relevant := afterMostUsed(lines)

	var parsed []domain.AppUsage

scan:
	for i, line := range relevant {
		lower := strings.ToLower(line)

		// Sections after "Most Used" (pickups, averages) mean we are done.
		for _, w := range stopWords {
			if strings.Contains(lower, w) {
				break scan
			}
		}
		isSkip := false
		for _, w := range skipWords {
			if strings.Contains(lower, w) {
				isSkip = true
				break
			}
		}
		if isSkip {
			continue
		}

		next := ""
		if i+1 < len(relevant) {
			next = relevant[i+1]
		}
		prev := ""
		if i > 0 {
			prev = relevant[i-1]
		}

		minutes, inNextLine, found := findDuration(line, next)
		if found {
			// A matched zero duration yields nothing; only a complete
			// absence of a duration falls through to estimation.
			if minutes > 0 {
				// The line that did not carry the duration is the label line.
				label := prev
				if inNextLine {
					label = line
				}
				if app, ok := p.matchApp(ctx, label, parsed, 0); ok {
					app.Minutes = minutes
					parsed = append(parsed, app)
					logger.Debug().Str("app", app.Name).Int("minutes", minutes).Msg("parsed app usage")
				}
			}
			continue
		}

		// No duration on either line: gray time text often defeats OCR
		// while the label survives, so estimate a plausible duration.
		if app, ok := p.matchApp(ctx, line, parsed, 1); ok {
			parsed = append(parsed, app)
			logger.Debug().Str("app", app.Name).Int("minutes", app.Minutes).Msg("estimated app usage")
		}
	}

	if len(parsed) == 0 {
		return nil
	}
	return partition(parsed)
}

// matchApp finds the first known app named in the label line, skipping
// apps already captured. mode 1 assigns an estimated duration.
func (p *Parser) matchApp(ctx context.Context, label string, parsed []domain.AppUsage, mode int) (domain.AppUsage, bool) {
	lower := strings.ToLower(label)
	for _, entry := range knownApps {
		if !strings.Contains(lower, entry.match) {
			continue
		}
		if hasApp(parsed, entry.display) {
			continue
		}
		app := domain.AppUsage{
			Name:     entry.display,
			Category: categoryForApp(entry.match),
			IconRef:  p.resolveIcon(ctx, entry),
		}
		if mode == 1 {
			app.Minutes = p.estimateMinutes(entry.match)
		}
		return app, true
	}
	return domain.AppUsage{}, false
}

// estimateMinutes draws a default duration biased by app class: social and
// entertainment apps toward 2-5 hours, communication and productivity
// toward 1-3 hours, everything else 30-90 minutes.
func (p *Parser) estimateMinutes(matchKey string) int {
	switch matchKey {
	case "instagram", "x", "twitter", "tiktok", "youtube", "netflix", "spotify":
		return p.rng.Intn(180) + 120
	case "messages", "linkedin", "slack", "mail", "notion":
		return p.rng.Intn(120) + 60
	default:
		return p.rng.Intn(60) + 30
	}
}

func (p *Parser) resolveIcon(ctx context.Context, entry appEntry) string {
	iconRef := defaultIcons[entry.key]
	needsLookup := iconRef == "" || (entry.key == fallbackIconKey && !confidentlyLocal[entry.match])
	if needsLookup && p.icons != nil {
		url, err := p.icons.Resolve(ctx, entry.display)
		if err == nil && url != "" {
			return url
		}
		zerolog.Ctx(ctx).Debug().Err(err).Str("app", entry.display).Msg("icon lookup failed, keeping fallback")
	}
	if iconRef == "" {
		return defaultIcons[fallbackIconKey]
	}
	return iconRef
}

// findDuration tries the patterns in priority order on the current line
// first, then on the next. Reports whether the match came from next.
func findDuration(line, next string) (minutes int, inNextLine, found bool) {
	if m, ok := matchDuration(line); ok {
		return m, false, true
	}
	if m, ok := matchDuration(next); ok {
		return m, true, true
	}
	return 0, false, false
}

func matchDuration(line string) (int, bool) {
	if m := hoursMinutesRe.FindStringSubmatch(line); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		return h*60 + mm, true
	}
	if m := hoursOnlyRe.FindStringSubmatch(line); m != nil {
		h, _ := strconv.Atoi(m[1])
		return h * 60, true
	}
	if m := minutesOnlyRe.FindStringSubmatch(line); m != nil {
		mm, _ := strconv.Atoi(m[1])
		return mm, true
	}
	return 0, false
}

func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// afterMostUsed discards everything at or before the "Most Used" heading.
// When the heading is missing the whole text is scanned (degraded mode).
func afterMostUsed(lines []string) []string {
	for i, line := range lines {
		normalized := strings.Map(func(r rune) rune {
			switch r {
			case ' ', '\t':
				return -1
			}
			return r
		}, strings.ToLower(line))
		if strings.Contains(normalized, "mostused") {
			return lines[i+1:]
		}
	}
	return lines
}

func hasApp(parsed []domain.AppUsage, name string) bool {
	for _, app := range parsed {
		if app.Name == name {
			return true
		}
	}
	return false
}

// partition groups parsed apps into the fixed display categories, emitted
// in priority order with empty categories dropped. Social and
// communication share a section.
func partition(parsed []domain.AppUsage) []domain.UsageCategory {
	pick := func(names map[string]bool) []domain.AppUsage {
		var apps []domain.AppUsage
		for _, app := range parsed {
			if names[app.Name] {
				apps = append(apps, app)
			}
		}
		return apps
	}

	social := pick(socialNames)
	comm := pick(commNames)
	work := pick(workNames)
	entertainment := pick(entertainNames)
	browsers := pick(browserNames)

	claimed := make(map[string]bool)
	for _, group := range [][]domain.AppUsage{social, comm, work, entertainment, browsers} {
		for _, app := range group {
			claimed[app.Name] = true
		}
	}
	var other []domain.AppUsage
	for _, app := range parsed {
		if !claimed[app.Name] {
			other = append(other, app)
		}
	}

	var categories []domain.UsageCategory
	if len(social) > 0 || len(comm) > 0 {
		categories = append(categories, domain.UsageCategory{
			Name: "SOCIAL & COMMUNICATION",
			Apps: append(social, comm...),
		})
	}
	if len(work) > 0 {
		categories = append(categories, domain.UsageCategory{Name: "WORK & PRODUCTIVITY", Apps: work})
	}
	if len(entertainment) > 0 {
		categories = append(categories, domain.UsageCategory{Name: "ENTERTAINMENT", Apps: entertainment})
	}
	if len(browsers) > 0 {
		categories = append(categories, domain.UsageCategory{Name: "WEB BROWSING", Apps: browsers})
	}
	if len(other) > 0 {
		categories = append(categories, domain.UsageCategory{Name: "OTHER", Apps: other})
	}
	return categories
}
