// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package application

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/campaignhub/internal/campaign"
	"github.com/taibuivan/campaignhub/internal/platform/apperr"
)

// memoryStore backs both the campaign reader and the application repository
// so a transition can move the participant count under one lock.
type memoryStore struct {
	mu           sync.Mutex
	campaigns    map[string]*campaign.Campaign
	applications map[string]*Application
	clock        time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		campaigns:    make(map[string]*campaign.Campaign),
		applications: make(map[string]*Application),
		clock:        time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (store *memoryStore) addCampaign(c *campaign.Campaign) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.campaigns[c.ID] = c
}

func (store *memoryStore) campaignSnapshot(id string) campaign.Campaign {
	store.mu.Lock()
	defer store.mu.Unlock()
	return *store.campaigns[id]
}

func (store *memoryStore) applicationSnapshot(id string) Application {
	store.mu.Lock()
	defer store.mu.Unlock()
	return *store.applications[id]
}

// # CampaignReader

func (store *memoryStore) FindByID(_ context.Context, id string) (*campaign.Campaign, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	c, ok := store.campaigns[id]
	if !ok {
		return nil, apperr.NotFound("Campaign")
	}
	copied := *c
	return &copied, nil
}

// applicationRepository exposes the application half of memoryStore. It is a
// separate type because both halves need a FindByID.
type applicationRepository struct {
	*memoryStore
}

func (repository applicationRepository) Exists(_ context.Context, userID, campaignID string) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, application := range repository.applications {
		if application.UserID == userID && application.CampaignID == campaignID {
			return true, nil
		}
	}
	return false, nil
}

func (repository applicationRepository) Create(_ context.Context, application *Application) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, existing := range repository.applications {
		if existing.UserID == application.UserID && existing.CampaignID == application.CampaignID {
			return apperr.Conflict("You have already applied to this campaign")
		}
	}

	repository.clock = repository.clock.Add(time.Minute)
	application.SubmittedAt, application.UpdatedAt = repository.clock, repository.clock

	stored := *application
	repository.applications[application.ID] = &stored
	return nil
}

func (repository applicationRepository) FindByID(_ context.Context, id string) (*Application, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	application, ok := repository.applications[id]
	if !ok {
		return nil, apperr.NotFound("Application")
	}
	copied := *application
	return &copied, nil
}

func (repository applicationRepository) ListByUser(_ context.Context, userID string, status Status, limit, offset int) ([]*Submitted, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var items []*Submitted
	for _, application := range repository.sorted() {
		if application.UserID != userID || (status != "" && application.Status != status) {
			continue
		}
		copied := *application
		items = append(items, &Submitted{Application: &copied, CampaignTitle: repository.campaigns[application.CampaignID].Title})
	}
	page, total := window(items, limit, offset)
	return page, total, nil
}

func (repository applicationRepository) ListByCampaign(_ context.Context, campaignID string, status Status, limit, offset int) ([]*Received, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var items []*Received
	for _, application := range repository.sorted() {
		if application.CampaignID != campaignID || (status != "" && application.Status != status) {
			continue
		}
		copied := *application
		items = append(items, &Received{Application: &copied, ApplicantName: "Applicant " + application.UserID, ApplicantEmail: application.UserID + "@example.com"})
	}
	page, total := window(items, limit, offset)
	return page, total, nil
}

func (repository applicationRepository) Apply(_ context.Context, transition Transition) (*Application, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	application, ok := repository.applications[transition.ApplicationID]
	if !ok || application.Status != transition.From {
		return nil, apperr.Conflict("Application status was changed by another request")
	}

	target := repository.campaigns[transition.CampaignID]
	switch {
	case transition.ParticipantDelta > 0:
		if target.CurrentParticipants >= target.MaxParticipants {
			return nil, apperr.Conflict("The campaign has no remaining participant slots")
		}
		target.CurrentParticipants++
	case transition.ParticipantDelta < 0 && target.CurrentParticipants > 0:
		target.CurrentParticipants--
	}

	application.Status = transition.To
	application.Feedback = transition.Feedback
	application.ReviewedAt = transition.ReviewedAt
	application.UpdatedAt = transition.At

	copied := *application
	return &copied, nil
}

// sorted returns applications newest first. Callers hold the lock.
func (store *memoryStore) sorted() []*Application {
	all := make([]*Application, 0, len(store.applications))
	for _, application := range store.applications {
		all = append(all, application)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].SubmittedAt.After(all[j].SubmittedAt) })
	return all
}

func window[T any](items []T, limit, offset int) ([]T, int) {
	total := len(items)
	if offset >= total {
		return []T{}, total
	}
	return items[offset:min(offset+limit, total)], total
}
