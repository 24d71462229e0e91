package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

func ptr[T any](v T) *T { return &v }

func TestContentStoreDefaults(t *testing.T) {
	s := NewContentStore(nil)
	assert.Equal(t, models.DefaultContent(), s.Snapshot())
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := NewContentStore(nil)

	snap := s.Snapshot()
	snap.NavMain[0].Items[0].Title = "changed"
	snap.Teams[0].Name = "changed"

	fresh := s.Snapshot()
	assert.Equal(t, "History", fresh.NavMain[0].Items[0].Title)
	assert.Equal(t, "Acme Inc", fresh.Teams[0].Name)
}

func TestSettersCopyInput(t *testing.T) {
	s := NewContentStore(&models.Content{})

	items := []models.NavItem{{Title: "A", Items: []models.SubItem{{Title: "a"}}}}
	s.SetNavMain(items)
	items[0].Items[0].Title = "mutated"

	assert.Equal(t, "a", s.Snapshot().NavMain[0].Items[0].Title)

	s.SetUser(models.User{Name: "Ada"})
	s.SetTeams([]models.Team{{Name: "T"}})
	s.SetProjects([]models.Project{{Name: "P"}})

	snap := s.Snapshot()
	assert.Equal(t, "Ada", snap.User.Name)
	assert.Equal(t, []models.Team{{Name: "T"}}, snap.Teams)
	assert.Equal(t, []models.Project{{Name: "P"}}, snap.Projects)
}

func TestPartialUpdates(t *testing.T) {
	s := NewContentStore(nil)

	require.NoError(t, s.UpdateNavItem(1, models.NavItemPatch{Title: ptr("Engines"), IsActive: ptr(true)}))
	require.NoError(t, s.UpdateTeam(2, models.TeamPatch{Plan: ptr("Pro")}))
	require.NoError(t, s.UpdateProject(0, models.ProjectPatch{URL: ptr("/design")}))

	snap := s.Snapshot()
	assert.Equal(t, "Engines", snap.NavMain[1].Title)
	assert.True(t, snap.NavMain[1].IsActive)
	assert.Equal(t, "Bot", snap.NavMain[1].IconName)
	assert.Len(t, snap.NavMain[1].Items, 3)
	assert.Equal(t, models.Team{Name: "Evil Corp.", IconName: "Command", Plan: "Pro"}, snap.Teams[2])
	assert.Equal(t, "/design", snap.Projects[0].URL)
	assert.Equal(t, "Design Engineering", snap.Projects[0].Name)
}

func TestUpdateOutOfRangeChangesNothing(t *testing.T) {
	s := NewContentStore(nil)
	notified := 0
	s.Subscribe(func(*models.Content) { notified++ })

	tests := []error{
		s.UpdateNavItem(4, models.NavItemPatch{Title: ptr("x")}),
		s.UpdateNavItem(-1, models.NavItemPatch{Title: ptr("x")}),
		s.UpdateTeam(3, models.TeamPatch{Name: ptr("x")}),
		s.UpdateProject(99, models.ProjectPatch{Name: ptr("x")}),
		s.RemoveNavItem(10),
		s.RemoveTeam(-2),
		s.RemoveProject(3),
	}
	for _, err := range tests {
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	}

	assert.Equal(t, models.DefaultContent(), s.Snapshot())
	assert.Zero(t, notified)
}

func TestAddRemove(t *testing.T) {
	s := NewContentStore(&models.Content{})

	s.AddNavItem(models.NavItem{Title: "A"})
	s.AddNavItem(models.NavItem{Title: "B"})
	s.AddTeam(models.Team{Name: "T1"})
	s.AddProject(models.Project{Name: "P1"})
	s.AddProject(models.Project{Name: "P2"})

	require.NoError(t, s.RemoveNavItem(0))
	require.NoError(t, s.RemoveProject(1))
	require.NoError(t, s.RemoveTeam(0))

	snap := s.Snapshot()
	require.Len(t, snap.NavMain, 1)
	assert.Equal(t, "B", snap.NavMain[0].Title)
	assert.Equal(t, []models.Project{{Name: "P1"}}, snap.Projects)
	assert.Empty(t, snap.Teams)
}

func TestResetIsIdempotent(t *testing.T) {
	s := NewContentStore(nil)
	s.SetProjects(nil)
	s.SetUser(models.User{Name: "someone"})

	s.Reset()
	once := s.Snapshot()
	s.Reset()
	twice := s.Snapshot()

	assert.Equal(t, models.DefaultContent(), once)
	assert.Equal(t, once, twice)
}

func TestResetNotifiesOnce(t *testing.T) {
	s := NewContentStore(&models.Content{})
	var got []*models.Content
	s.Subscribe(func(c *models.Content) { got = append(got, c) })

	s.Reset()

	require.Len(t, got, 1)
	assert.Len(t, got[0].Teams, 3)
	assert.Len(t, got[0].NavMain, 4)
	assert.Len(t, got[0].Projects, 3)
	assert.Equal(t, "shadcn", got[0].User.Name)
}

func TestContentPersistenceIsFireAndForget(t *testing.T) {
	p := &recordingPersister{block: make(chan struct{})}
	s := NewContentStore(nil, WithContentPersister(p))

	// Mutations return while the first save is still blocked.
	s.SetUser(models.User{Name: "one"})
	s.SetUser(models.User{Name: "two"})
	s.SetUser(models.User{Name: "three"})
	assert.Equal(t, "three", s.Snapshot().User.Name)

	close(p.block)
	require.NoError(t, s.Close())

	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.content)
	assert.LessOrEqual(t, len(p.content), 3)
	assert.Equal(t, "three", p.content[len(p.content)-1].User.Name)
}

func TestCloseReportsLastSaveError(t *testing.T) {
	p := &recordingPersister{err: errors.New("read-only file system")}
	s := NewContentStore(nil, WithContentPersister(p))

	s.Reset()
	err := s.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")

	// Changes after close are kept in memory only.
	s.SetUser(models.User{Name: "late"})
	assert.Equal(t, "late", s.Snapshot().User.Name)
}

func TestConcurrentMutation(t *testing.T) {
	p := &recordingPersister{}
	s := NewContentStore(&models.Content{}, WithContentPersister(p))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddProject(models.Project{Name: "p"})
			_ = s.Snapshot()
		}()
	}
	wg.Wait()
	require.NoError(t, s.Close())

	assert.Len(t, s.Snapshot().Projects, 20)
	p.mu.Lock()
	defer p.mu.Unlock()
	assert.Len(t, p.content[len(p.content)-1].Projects, 20)
}
