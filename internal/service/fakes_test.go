package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/CreatorKit/api-service/internal/model"
	"github.com/CreatorKit/api-service/internal/provider"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*model.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, emailID string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.EmailID == emailID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateGoogleInfo(_ context.Context, id, name, profilePic, googleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			u.Name = name
			u.ProfilePic = profilePic
			gid := googleID
			u.GoogleID = &gid
		}
	}
	return nil
}

type fakeWorkspaceRepo struct {
	mu         sync.Mutex
	workspaces []*model.Workspace
}

func (f *fakeWorkspaceRepo) Create(_ context.Context, w *model.Workspace) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.workspaces = append(f.workspaces, w)
	return nil
}

func (f *fakeWorkspaceRepo) FindByID(_ context.Context, id string) (*model.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.workspaces {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, nil
}

func (f *fakeWorkspaceRepo) FindPersonalByOwner(_ context.Context, userID string) (*model.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.workspaces {
		if w.OwnerUserID == userID && w.WorkspaceType == model.WorkspaceTypePersonal {
			return w, nil
		}
	}
	return nil, nil
}

func (f *fakeWorkspaceRepo) ReserveCredits(_ context.Context, id string, units int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.workspaces {
		if w.ID == id {
			if w.AICredits < units {
				return false, nil
			}
			w.AICredits -= units
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWorkspaceRepo) RefundCredits(_ context.Context, id string, units int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.workspaces {
		if w.ID == id {
			w.AICredits += units
		}
	}
	return nil
}

type fakeMemberRepo struct {
	mu      sync.Mutex
	members []*model.WorkspaceMember
}

func (f *fakeMemberRepo) Create(_ context.Context, m *model.WorkspaceMember) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.members = append(f.members, m)
	return nil
}

func (f *fakeMemberRepo) SetStatus(_ context.Context, workspaceID, userID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.members {
		if m.WorkspaceID == workspaceID && m.UserID == userID {
			m.Status = status
		}
	}
	return nil
}

type fakeRecordRepo struct {
	mu      sync.Mutex
	records []*model.GenerationRecord
}

func (f *fakeRecordRepo) Create(_ context.Context, rec *model.GenerationRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeRecordRepo) Finalize(_ context.Context, id string, images []model.GeneratedImage, cost int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.ID == id {
			r.GeneratedImages = images
			r.GenerationCost = cost
			r.Status = model.GenerationStatusCompleted
		}
	}
	return nil
}

func (f *fakeRecordRepo) MarkFailed(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.ID == id {
			r.Status = model.GenerationStatusFailed
		}
	}
	return nil
}

func (f *fakeRecordRepo) FindCompletedByWorkspace(_ context.Context, workspaceID string, limit, offset int) ([]*model.GenerationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var completed []*model.GenerationRecord
	for _, r := range f.records {
		if r.WorkspaceID == workspaceID && r.Status == model.GenerationStatusCompleted {
			completed = append(completed, r)
		}
	}

	if offset >= len(completed) {
		return nil, nil
	}
	end := offset + limit
	if end > len(completed) {
		end = len(completed)
	}

	return completed[offset:end], nil
}

func (f *fakeRecordRepo) CountCompletedByWorkspace(_ context.Context, workspaceID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, r := range f.records {
		if r.WorkspaceID == workspaceID && r.Status == model.GenerationStatusCompleted {
			count++
		}
	}
	return count, nil
}

type fakeStorage struct {
	mu      sync.Mutex
	uploads int
	failOn  map[int]bool
}

func (f *fakeStorage) Upload(_ context.Context, key string, body io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := f.uploads
	f.uploads++
	if f.failOn[n] {
		return "", errors.New("upload failed")
	}

	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}

	return "https://assets.test/" + key, nil
}

type fakeGenerator struct {
	outputs []string
	err     error
	calls   int
}

func (f *fakeGenerator) Generate(_ context.Context, _ provider.GenerationInput) ([]io.ReadCloser, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	var streams []io.ReadCloser
	for _, output := range f.outputs {
		streams = append(streams, io.NopCloser(strings.NewReader(output)))
	}
	return streams, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []model.AnalyticsEvent
}

func (f *fakePublisher) Publish(event model.AnalyticsEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *fakePublisher) byName(name string) []model.AnalyticsEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []model.AnalyticsEvent
	for _, e := range f.events {
		if e.EventName == name {
			matched = append(matched, e)
		}
	}
	return matched
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []int
}

func (f *fakeMailer) SendOTP(_ string, otp int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, otp)
	return nil
}
