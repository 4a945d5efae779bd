package service

import (
	"context"
	"testing"

	"github.com/CreatorKit/api-service/internal/model"
	"github.com/CreatorKit/api-service/internal/repository"
	"github.com/CreatorKit/api-service/internal/repository/postgres"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type workspaceFixture struct {
	svc        *workspaceService
	users      *fakeUserRepo
	workspaces *fakeWorkspaceRepo
	members    *fakeMemberRepo
	events     *fakePublisher
}

func newWorkspaceFixture() *workspaceFixture {
	users := &fakeUserRepo{users: []*model.User{{ID: testUserID, Name: "Ada", EmailID: "ada@test.dev"}}}
	workspaces := &fakeWorkspaceRepo{}
	members := &fakeMemberRepo{}
	events := &fakePublisher{}

	repo := &repository.Repository{Postgres: &postgres.PostgresRepository{
		User:            users,
		Workspace:       workspaces,
		WorkspaceMember: members,
	}}

	return &workspaceFixture{
		svc:        &workspaceService{logger: zap.NewNop(), repo: repo, events: events},
		users:      users,
		workspaces: workspaces,
		members:    members,
		events:     events,
	}
}

func TestHomeCreatesPersonalWorkspace(t *testing.T) {
	viper.Set("credits.free", 25)
	f := newWorkspaceFixture()

	data, err := f.svc.Home(context.Background(), testUserID, "")
	require.NoError(t, err)

	assert.Equal(t, "Personal Workspace", data.CurrentWorkspaceName)
	assert.Equal(t, 25, data.AICredits)
	assert.Equal(t, "free", data.PlanType)
	assert.Equal(t, "Ada", data.Name)

	require.Len(t, f.workspaces.workspaces, 1)
	created := f.workspaces.workspaces[0]
	assert.Equal(t, model.WorkspaceTypePersonal, created.WorkspaceType)
	assert.Equal(t, testUserID, created.OwnerUserID)
	assert.Equal(t, 25, created.MaximumCredits)

	require.Len(t, f.members.members, 1)
	member := f.members.members[0]
	assert.Equal(t, model.MemberPermissionOwner, member.Permission)
	assert.Equal(t, model.MemberStatusJoined, member.Status)

	assert.Len(t, f.events.byName("Workspace Home Opened"), 1)
}

func TestHomeReusesPersonalWorkspace(t *testing.T) {
	viper.Set("credits.free", 25)
	f := newWorkspaceFixture()

	_, err := f.svc.Home(context.Background(), testUserID, "")
	require.NoError(t, err)
	_, err = f.svc.Home(context.Background(), testUserID, "")
	require.NoError(t, err)

	assert.Len(t, f.workspaces.workspaces, 1)
}

func TestHomeConfirmsInvite(t *testing.T) {
	f := newWorkspaceFixture()
	f.workspaces.workspaces = []*model.Workspace{{ID: testWorkspaceID, Name: "Team", AICredits: 5}}
	f.members.members = []*model.WorkspaceMember{{
		UserID:      testUserID,
		WorkspaceID: testWorkspaceID,
		Permission:  model.MemberPermissionEditor,
		Status:      model.MemberStatusInvited,
	}}

	data, err := f.svc.Home(context.Background(), testUserID, testWorkspaceID)
	require.NoError(t, err)

	assert.Equal(t, "Team", data.CurrentWorkspaceName)
	assert.Equal(t, model.MemberStatusJoined, f.members.members[0].Status)
}

func TestHomeUnknownWorkspace(t *testing.T) {
	f := newWorkspaceFixture()

	_, err := f.svc.Home(context.Background(), testUserID, testWorkspaceID)
	require.ErrorIs(t, err, ErrWorkspaceNotFound)
}

func TestHomeUnknownUser(t *testing.T) {
	f := newWorkspaceFixture()
	f.users.users = nil
	f.workspaces.workspaces = []*model.Workspace{{ID: testWorkspaceID, Name: "Team"}}

	_, err := f.svc.Home(context.Background(), testUserID, testWorkspaceID)
	require.ErrorIs(t, err, ErrUserNotFound)
}
