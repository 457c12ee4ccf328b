// Package fetch - platform.go detects known profile platforms and maps
// them to platform-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform identifies a known career/profile platform.
type Platform string

const (
	// PlatformLinkedIn is a public LinkedIn profile page.
	PlatformLinkedIn Platform = "linkedin"
	// PlatformGupy is the Gupy candidate platform.
	PlatformGupy Platform = "gupy"
	// PlatformCatho is the Catho resume platform.
	PlatformCatho Platform = "catho"
	// PlatformInfoJobs is the InfoJobs resume platform.
	PlatformInfoJobs Platform = "infojobs"
	// PlatformUnknown is an unrecognized host.
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the profile platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "linkedin.com"):
		return PlatformLinkedIn
	case strings.Contains(host, "gupy.io"):
		return PlatformGupy
	case strings.Contains(host, "catho.com"):
		return PlatformCatho
	case strings.Contains(host, "infojobs.com"):
		return PlatformInfoJobs
	default:
		return PlatformUnknown
	}
}

// PlatformContentSelectors returns content selectors for a platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformLinkedIn:
		return []string{
			".core-section-container",
			".profile-section",
			"main.scaffold-layout__main",
			"main",
			"#main-content",
		}
	case PlatformGupy:
		return []string{
			"[data-testid='profile-content']",
			".candidate-profile",
			"main",
			"#main-content",
		}
	case PlatformCatho:
		return []string{
			".curriculum-content",
			".cv-section",
			"main",
			".content",
		}
	case PlatformInfoJobs:
		return []string{
			".cv-view",
			".candidate-cv",
			"main",
			".content",
		}
	default:
		return ProfileSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a
// platform, on top of the generic noise handled by ExtractMainText.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
		".login-form",
		".signup-form",
		".join-form",
		".social-share",
		".share-buttons",
		".social-links",
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",
		".related-profiles",
		".people-also-viewed",
		".recommendations-banner",
	}

	switch platform {
	case PlatformLinkedIn:
		return append(common,
			".join-banner",
			".cta-banner",
			".top-card-layout__cta-container",
			".contextual-sign-in-modal",
		)
	case PlatformGupy:
		return append(common,
			"[data-testid='apply-button']",
			".application-section",
		)
	default:
		return common
	}
}
