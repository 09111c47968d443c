package fetch

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// jobPostingLD is the subset of a schema.org JobPosting that carries the posting text
type jobPostingLD struct {
	Type        json.RawMessage `json:"@type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Graph       []jobPostingLD  `json:"@graph"`
}

func (j jobPostingLD) isJobPosting() bool {
	var single string
	if json.Unmarshal(j.Type, &single) == nil {
		return single == "JobPosting"
	}
	var many []string
	if json.Unmarshal(j.Type, &many) == nil {
		for _, t := range many {
			if t == "JobPosting" {
				return true
			}
		}
	}
	return false
}

// ExtractJobPosting returns the text of a job posting page. Structured
// schema.org JobPosting data is used when it is at least as complete as what
// the platform selectors find on the page.
func ExtractJobPosting(html string, platform Platform) (string, error) {
	mainText, err := ExtractMainText(html, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...)
	if err != nil {
		return "", err
	}

	structured := structuredJobPosting(html)
	if structured != "" && (len(structured) >= MinContentLength || len(structured) >= len(mainText)) {
		return structured, nil
	}
	return mainText, nil
}

// structuredJobPosting reads the first JobPosting from the page's JSON-LD
// scripts and returns its title and description as plain text.
func structuredJobPosting(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	var text string
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if posting, ok := findJobPosting([]byte(s.Text())); ok {
			text = postingText(posting)
		}
		return text == ""
	})
	return text
}

func findJobPosting(data []byte) (jobPostingLD, bool) {
	var candidates []jobPostingLD
	if err := json.Unmarshal(data, &candidates); err != nil {
		var single jobPostingLD
		if err := json.Unmarshal(data, &single); err != nil {
			return jobPostingLD{}, false
		}
		candidates = []jobPostingLD{single}
	}

	for _, c := range candidates {
		if c.isJobPosting() && strings.TrimSpace(c.Description) != "" {
			return c, true
		}
		for _, g := range c.Graph {
			if g.isJobPosting() && strings.TrimSpace(g.Description) != "" {
				return g, true
			}
		}
	}
	return jobPostingLD{}, false
}

// postingText converts the description, which is usually HTML, to text
func postingText(posting jobPostingLD) string {
	body := posting.Description
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + body + "</body>")); err == nil {
		body = blockText(doc.Find("body"))
	}

	text := cleanWhitespace(body)
	if title := strings.TrimSpace(posting.Title); title != "" && text != "" {
		text = title + "\n" + text
	}
	return text
}
