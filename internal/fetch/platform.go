package fetch

import (
	"net/url"
	"strings"
)

// Platform names a hosted job board whose pages need their own selectors.
type Platform string

// Recognised job boards
const (
	PlatformGreenhouse      Platform = "greenhouse"
	PlatformLever           Platform = "lever"
	PlatformWorkday         Platform = "workday"
	PlatformAshby           Platform = "ashby"
	PlatformSmartRecruiters Platform = "smartrecruiters"
	PlatformWorkable        Platform = "workable"
	PlatformUnknown         Platform = "unknown"
)

// board describes where a platform's posting text lives and which page
// regions to discard before reading it.
type board struct {
	platform Platform
	domains  []string
	content  []string
	noise    []string
}

var boards = []board{
	{
		platform: PlatformGreenhouse,
		domains:  []string{"greenhouse.io"},
		content:  []string{".job__description.body", ".job__description", ".job-description__content", ".job-post-container", "#content"},
		noise:    []string{".application--wrapper", ".voluntary-self-id-wrapper", "#usa_self_id_section", ".post-apply"},
	},
	{
		platform: PlatformLever,
		domains:  []string{"lever.co"},
		content:  []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description", ".content"},
		noise:    []string{".posting-apply", ".apply-section", ".lever-application-form"},
	},
	{
		platform: PlatformWorkday,
		domains:  []string{"myworkdayjobs.com", "workday.com"},
		content:  []string{"[data-automation-id='jobDescription']", ".job-description", ".gwt-HTML"},
		noise:    []string{"[data-automation-id='applyButton']", "[data-automation-id='similarJobs']"},
	},
	{
		platform: PlatformAshby,
		domains:  []string{"ashbyhq.com"},
		content:  []string{"[class*='descriptionText']", ".ashby-job-posting-right-pane", "main"},
		noise:    []string{".ashby-application-form-container", "[class*='applicationForm']"},
	},
	{
		platform: PlatformSmartRecruiters,
		domains:  []string{"smartrecruiters.com"},
		content:  []string{"[itemprop='description']", ".job-sections", "main"},
		noise:    []string{".js-apply-button", ".social-sharing"},
	},
	{
		platform: PlatformWorkable,
		domains:  []string{"workable.com"},
		content:  []string{"[data-ui='job-description']", "[data-ui='job-requirements']", "main"},
		noise:    []string{"[data-ui='apply-button']", "[data-ui='similar-jobs']"},
	},
}

// sharedNoise is removed from every posting page: application forms, EEO
// disclosures, share widgets and consent banners.
var sharedNoise = []string{
	"form", "#application-form", ".application-form", ".apply-button-container",
	".eeo-statement", ".eeo-section", ".voluntary-disclosure", ".self-identification", ".legal-disclosure",
	".social-share", ".share-buttons",
	".cookie-consent", ".gdpr-notice",
}

func lookupBoard(platform Platform) (board, bool) {
	for _, b := range boards {
		if b.platform == platform {
			return b, true
		}
	}
	return board{}, false
}

// DetectPlatform matches the URL host, or any parent domain of it, against the known boards.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Hostname())
	for _, b := range boards {
		for _, domain := range b.domains {
			if host == domain || strings.HasSuffix(host, "."+domain) {
				return b.platform
			}
		}
	}
	return PlatformUnknown
}

// PlatformContentSelectors lists where to look for the posting text, most specific first.
// Unknown platforms use JobPostingSelectors.
func PlatformContentSelectors(platform Platform) []string {
	b, ok := lookupBoard(platform)
	if !ok {
		return JobPostingSelectors()
	}
	return append([]string(nil), b.content...)
}

// PlatformNoiseSelectors lists page regions to remove before extraction.
func PlatformNoiseSelectors(platform Platform) []string {
	noise := append([]string(nil), sharedNoise...)
	if b, ok := lookupBoard(platform); ok {
		noise = append(noise, b.noise...)
	}
	return noise
}
