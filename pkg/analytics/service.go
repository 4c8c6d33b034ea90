package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/tjwaterman99/quicksplit-api/ent"
	"github.com/tjwaterman99/quicksplit-api/ent/conversion"
	"github.com/tjwaterman99/quicksplit-api/ent/experiment"
	"github.com/tjwaterman99/quicksplit-api/ent/exposure"
	"github.com/tjwaterman99/quicksplit-api/pkg/cache"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
	"github.com/tjwaterman99/quicksplit-api/pkg/logger"
)

const (
	// recentEventsTTL bounds staleness of the cached dashboard feed.
	recentEventsTTL = 30 * time.Second

	// recentEventsPerKind matches the feed shape of the dashboard:
	// up to 10 of each kind, 15 merged.
	recentEventsPerKind = 10
	recentEventsMerged  = 15
)

// Event is one entry of the recent-activity feed.
type Event struct {
	Type       string    `json:"type"`
	Experiment string    `json:"experiment"`
	Cohort     string    `json:"cohort"`
	Subject    string    `json:"subject"`
	Value      *float64  `json:"value"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// Service produces the dashboard feeds: recent events and daily
// exposure rollups.
type Service struct {
	db    *ent.Client
	cache *cache.Client
	log   logger.Logger
	now   func() time.Time
}

// NewService creates a new analytics service. The cache client may be
// nil, in which case every read hits the database.
func NewService(db *ent.Client, cacheClient *cache.Client, log logger.Logger) *Service {
	if log == nil {
		log = logger.New("info")
	}
	return &Service{db: db, cache: cacheClient, log: log, now: time.Now}
}

// RecentEvents returns the user's most recent exposures and conversions
// in the scope, merged and ordered newest first.
func (s *Service) RecentEvents(ctx context.Context, userID int, scope domain.Scope) ([]Event, error) {
	key := fmt.Sprintf("recent-events:%d:%s", userID, scope)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			var events []Event
			if err := json.Unmarshal([]byte(cached), &events); err == nil {
				return events, nil
			}
		} else if !cache.IsMiss(err) {
			s.log.Warn("recent events cache read failed", "key", key, "error", err)
		}
	}

	events, err := s.loadRecentEvents(ctx, userID, scope)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(events); err == nil {
			if err := s.cache.Set(ctx, key, payload, recentEventsTTL); err != nil {
				s.log.Warn("recent events cache write failed", "key", key, "error", err)
			}
		}
	}
	return events, nil
}

func (s *Service) loadRecentEvents(ctx context.Context, userID int, scope domain.Scope) ([]Event, error) {
	exposures, err := s.db.Exposure.
		Query().
		Where(
			exposure.ScopeEQ(scope),
			exposure.HasExperimentWith(experiment.UserIDEQ(userID)),
		).
		Order(ent.Desc(exposure.FieldLastSeenAt)).
		Limit(recentEventsPerKind).
		WithExperiment().
		WithCohort().
		WithSubject().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed loading recent exposures: %w", err)
	}

	conversions, err := s.db.Conversion.
		Query().
		Where(
			conversion.ScopeEQ(scope),
			conversion.HasExposureWith(exposure.HasExperimentWith(experiment.UserIDEQ(userID))),
		).
		Order(ent.Desc(conversion.FieldLastSeenAt)).
		Limit(recentEventsPerKind).
		WithExposure(func(q *ent.ExposureQuery) {
			q.WithExperiment().WithCohort().WithSubject()
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed loading recent conversions: %w", err)
	}

	events := make([]Event, 0, len(exposures)+len(conversions))
	for _, e := range exposures {
		events = append(events, Event{
			Type:       "exposure",
			Experiment: e.Edges.Experiment.Name,
			Cohort:     e.Edges.Cohort.Name,
			Subject:    e.Edges.Subject.Name,
			LastSeenAt: e.LastSeenAt,
		})
	}
	for _, c := range conversions {
		expo := c.Edges.Exposure
		events = append(events, Event{
			Type:       "conversion",
			Experiment: expo.Edges.Experiment.Name,
			Cohort:     expo.Edges.Cohort.Name,
			Subject:    expo.Edges.Subject.Name,
			Value:      c.Value,
			LastSeenAt: c.LastSeenAt,
		})
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].LastSeenAt.After(events[j].LastSeenAt)
	})
	if len(events) > recentEventsMerged {
		events = events[:recentEventsMerged]
	}
	return events, nil
}
