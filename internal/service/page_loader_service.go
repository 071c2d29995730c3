package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/fadilmartias/cold-mail-generator/internal/config"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"
)

// PageLoader fetches a page and returns its visible text.
type PageLoader interface {
	Load(ctx context.Context, url string) (string, error)
}

type PageLoaderService struct {
	client *resty.Client
}

func NewPageLoaderService() *PageLoaderService {
	pageConfig := config.LoadPageConfig()
	return NewPageLoaderClient(pageConfig.UserAgent, pageConfig.Timeout)
}

func NewPageLoaderClient(userAgent string, timeout time.Duration) *PageLoaderService {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")
	return &PageLoaderService{client: client}
}

func (s *PageLoaderService) Load(ctx context.Context, url string) (string, error) {
	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetch %s: http %d", url, resp.StatusCode())
	}

	body := resp.String()
	if !strings.Contains(strings.ToLower(resp.Header().Get("Content-Type")), "html") {
		return body, nil
	}
	return HTMLToText(body)
}

var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"svg":      true,
}

// HTMLToText returns the visible text of an HTML document, one text node per line.
func HTMLToText(doc string) (string, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				sb.WriteString(text)
				sb.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return strings.TrimSpace(sb.String()), nil
}

var (
	urlPattern    = regexp.MustCompile(`https?://\S+`)
	blankRunRegex = regexp.MustCompile(`[ \t]+`)
	newlineRuns   = regexp.MustCompile(`\n{2,}`)
)

// CleanPageText drops URLs and squeezes whitespace while keeping line breaks.
func CleanPageText(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\r", "")
	text = blankRunRegex.ReplaceAllString(text, " ")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = newlineRuns.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
