package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/sparknest-admin/internal/adapter"
	"github.com/MKhiriev/sparknest-admin/internal/icons"
	"github.com/MKhiriev/sparknest-admin/internal/mock"
	"github.com/MKhiriev/sparknest-admin/models"
)

var testMessages = []models.Entity{
	{"id": float64(1), "name": "Jean", "email": "jean@example.com", "subject": "Devis", "read": false},
	{"id": float64(2), "name": "Sophie", "email": "sophie@example.com", "subject": "Hello", "read": true},
}

func openList(t *testing.T, resources *mock.MockResourceService, kind models.ResourceKind, items []models.Entity) *ListModel {
	t.Helper()
	m := NewListModel(context.Background(), resources, icons.Default(), testTranslator())

	resources.EXPECT().List(gomock.Any(), kind).Return(items, nil)
	_, cmd := m.Update(openListMsg{kind: kind})
	_, _ = m.Update(run(cmd))
	require.False(t, m.loading)
	return m
}

func TestListModel_RendersMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := openList(t, mock.NewMockResourceService(ctrl), models.Messages, testMessages)

	view := m.View()
	assert.Contains(t, view, "MESSAGES")
	assert.Contains(t, view, "jean@example.com")
	assert.Contains(t, view, "m: mark read")
}

func TestListModel_LoadFailureShowsOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	resources := mock.NewMockResourceService(ctrl)
	m := NewListModel(context.Background(), resources, icons.Default(), testTranslator())

	resources.EXPECT().List(gomock.Any(), models.Testimonials).
		Return(nil, &adapter.RequestError{Op: "list", StatusCode: 500, Message: "boom"})
	_, cmd := m.Update(openListMsg{kind: models.Testimonials})
	_, _ = m.Update(run(cmd))

	require.NotNil(t, m.overlay)
	assert.Contains(t, m.View(), "Could not load Testimonials: boom")

	_, _ = m.Update(keyPress("esc"))
	assert.Nil(t, m.overlay)
}

func TestListModel_DeleteNeedsConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	resources := mock.NewMockResourceService(ctrl)
	projects := []models.Entity{{"id": float64(7), "title": "Refonte"}}
	m := openList(t, resources, models.Projects, projects)

	_, cmd := m.Update(keyPress("d"))
	assert.Nil(t, cmd)
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), `Delete "Refonte"?`)

	_, cmd = m.Update(keyPress("n"))
	assert.Nil(t, cmd)
	assert.Nil(t, m.confirm)

	_, _ = m.Update(keyPress("d"))
	resources.EXPECT().Delete(gomock.Any(), models.Projects, models.ID("7")).Return(nil)
	_, cmd = m.Update(keyPress("y"))

	resources.EXPECT().List(gomock.Any(), models.Projects).Return(nil, nil)
	_, cmd = m.Update(run(cmd))
	_, _ = m.Update(run(cmd))

	assert.Equal(t, "Deleted.", m.status)
	assert.Contains(t, m.View(), "Nothing here yet.")
}

func TestListModel_MarkReadOnlyUnread(t *testing.T) {
	ctrl := gomock.NewController(t)
	resources := mock.NewMockResourceService(ctrl)
	m := openList(t, resources, models.Messages, testMessages)

	resources.EXPECT().MarkRead(gomock.Any(), models.ID("1")).Return(errors.New("offline"))
	_, cmd := m.Update(keyPress("m"))
	_, _ = m.Update(run(cmd))
	require.NotNil(t, m.overlay)
	assert.Contains(t, m.overlay.message, "Could not mark the message as read")
	_, _ = m.Update(keyPress("enter"))

	// the second message is already read
	_, _ = m.Update(keyPress("down"))
	_, cmd = m.Update(keyPress("m"))
	assert.Nil(t, cmd)
}

func TestListModel_CopyEmail(t *testing.T) {
	var copied string
	original := clipboardWrite
	clipboardWrite = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { clipboardWrite = original })

	ctrl := gomock.NewController(t)
	m := openList(t, mock.NewMockResourceService(ctrl), models.Messages, testMessages)

	_, cmd := m.Update(keyPress("c"))
	_, _ = m.Update(run(cmd))

	assert.Equal(t, "jean@example.com", copied)
	assert.Equal(t, "Copied jean@example.com", m.status)
}

func TestListModel_MessagesAreNotEditable(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := openList(t, mock.NewMockResourceService(ctrl), models.Messages, testMessages)

	_, cmd := m.Update(keyPress("n"))
	assert.Nil(t, cmd)
	_, cmd = m.Update(keyPress("e"))
	assert.Nil(t, cmd)
}

func TestListModel_EditOpensFormWithValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	techs := []models.Entity{{"id": "3", "name": "React", "icon": "Atom"}}
	m := openList(t, mock.NewMockResourceService(ctrl), models.Technologies, techs)

	assert.Contains(t, m.View(), icons.Default().Render("Atom"))

	nav := requireNavigate(t, second(m.Update(keyPress("e"))))
	draft := nav.Payload.(openFormMsg).draft
	assert.Equal(t, models.ID("3"), draft.ID)
	assert.Equal(t, "Atom", draft.Values["icon"])
}

func TestListModel_DetailView(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := openList(t, mock.NewMockResourceService(ctrl), models.Messages, testMessages)

	_, _ = m.Update(keyPress("enter"))
	assert.True(t, m.detail)
	assert.Contains(t, m.View(), "Subject")

	_, _ = m.Update(keyPress("esc"))
	assert.False(t, m.detail)
}
