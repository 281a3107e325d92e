package services

import (
	"fmt"

	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/contentcache"
	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/i18n"
)

// ServiceItem is one entry of the practice's service list.
type ServiceItem struct {
	Key         string
	Name        string
	Description string
}

// TeamMember is one entry of the team roster.
type TeamMember struct {
	Name string
	Role string
}

// FAQEntry is one question/answer pair.
type FAQEntry struct {
	Question string
	Answer   string
}

// serviceKeys and teamRoster are the static site configuration; the
// localized rendering is derived from the i18n catalog on cache miss.
var serviceKeys = []string{"general", "prevention", "vaccination", "diagnostics", "homevisit"}

var teamRoster = []struct {
	Name    string
	RoleKey string
}{
	{Name: "Dr. med. Elena Rasch", RoleKey: "physician"},
	{Name: "Sabine Keller", RoleKey: "assistant"},
	{Name: "Thomas Brandt", RoleKey: "management"},
}

var faqKeys = []string{"appointment", "insurance", "prescription", "emergency"}

var hoursKeys = []string{"weekdays", "afternoon", "closed"}

var navKeys = []string{"home", "services", "team", "faq", "contact", "imprint", "privacy", "terms"}

// IContentService serves the locale-rendered static content behind the
// read-through cache.
type IContentService interface {
	Services(loc i18n.Locale) []ServiceItem
	Team(loc i18n.Locale) []TeamMember
	FAQ(loc i18n.Locale) []FAQEntry
	OpeningHours(loc i18n.Locale) []string
	Navigation(loc i18n.Locale) map[string]string
	Invalidate(class string, loc i18n.Locale)
}

// ContentService implements IContentService.
type ContentService struct {
	cache *contentcache.Cache
}

// NewContentService creates the content service with the standard TTL.
func NewContentService() IContentService {
	return &ContentService{cache: contentcache.New(contentcache.DefaultTTL)}
}

// NewContentServiceWithCache injects a cache (tests).
func NewContentServiceWithCache(cache *contentcache.Cache) *ContentService {
	return &ContentService{cache: cache}
}

// remember never fails here: computation is pure catalog lookup.
func (s *ContentService) remember(class string, loc i18n.Locale, name string, compute func() any) any {
	value, _ := s.cache.Remember(contentcache.Key(class, string(loc), name), func() (any, error) {
		return compute(), nil
	})
	return value
}

// Services returns the localized service list.
func (s *ContentService) Services(loc i18n.Locale) []ServiceItem {
	value := s.remember("services", loc, "list", func() any {
		items := make([]ServiceItem, 0, len(serviceKeys))
		for _, key := range serviceKeys {
			items = append(items, ServiceItem{
				Key:         key,
				Name:        i18n.T(loc, fmt.Sprintf("services.%s.name", key)),
				Description: i18n.T(loc, fmt.Sprintf("services.%s.description", key)),
			})
		}
		return items
	})
	return value.([]ServiceItem)
}

// Team returns the roster with localized roles.
func (s *ContentService) Team(loc i18n.Locale) []TeamMember {
	value := s.remember("team", loc, "roster", func() any {
		members := make([]TeamMember, 0, len(teamRoster))
		for _, member := range teamRoster {
			members = append(members, TeamMember{
				Name: member.Name,
				Role: i18n.T(loc, "team.role."+member.RoleKey),
			})
		}
		return members
	})
	return value.([]TeamMember)
}

// FAQ returns the localized question/answer entries.
func (s *ContentService) FAQ(loc i18n.Locale) []FAQEntry {
	value := s.remember("faq", loc, "entries", func() any {
		entries := make([]FAQEntry, 0, len(faqKeys))
		for _, key := range faqKeys {
			entries = append(entries, FAQEntry{
				Question: i18n.T(loc, fmt.Sprintf("faq.%s.question", key)),
				Answer:   i18n.T(loc, fmt.Sprintf("faq.%s.answer", key)),
			})
		}
		return entries
	})
	return value.([]FAQEntry)
}

// OpeningHours returns the localized opening hour lines.
func (s *ContentService) OpeningHours(loc i18n.Locale) []string {
	value := s.remember("hours", loc, "lines", func() any {
		lines := make([]string, 0, len(hoursKeys))
		for _, key := range hoursKeys {
			lines = append(lines, i18n.T(loc, "hours."+key))
		}
		return lines
	})
	return value.([]string)
}

// Navigation returns the localized navigation labels.
func (s *ContentService) Navigation(loc i18n.Locale) map[string]string {
	value := s.remember("nav", loc, "labels", func() any {
		labels := make(map[string]string, len(navKeys))
		for _, key := range navKeys {
			labels[key] = i18n.T(loc, "nav."+key)
		}
		return labels
	})
	return value.(map[string]string)
}

// Invalidate removes every cached name of a content class for one locale.
func (s *ContentService) Invalidate(class string, loc i18n.Locale) {
	for _, name := range []string{"list", "roster", "entries", "lines", "labels"} {
		s.cache.Invalidate(contentcache.Key(class, string(loc), name))
	}
}

var _ IContentService = (*ContentService)(nil)
