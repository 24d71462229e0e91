package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pluqqy/sidebar-builder/internal/logger"
	"github.com/pluqqy/sidebar-builder/pkg/models"
)

// ErrIndexOutOfRange is returned by index-based updates that miss the collection
var ErrIndexOutOfRange = errors.New("index out of range")

// ContentStore owns the sidebar content. Snapshots handed out are deep
// copies; listeners share one copy per change and must not modify it.
type ContentStore struct {
	mu        sync.RWMutex
	content   *models.Content
	listeners listeners[*models.Content]
	saver     *saver[*models.Content]
	log       *logger.Logger
}

// NewContentStore creates a store holding a copy of initial. A nil initial
// starts from the default dataset.
func NewContentStore(initial *models.Content, opts ...Option) *ContentStore {
	o := buildOptions(opts)
	if initial == nil {
		initial = models.DefaultContent()
	}

	s := &ContentStore{content: initial.Clone(), log: o.log}
	if o.contentPersister != nil {
		s.saver = newSaver(o.contentPersister.SaveContent, o.log)
	}
	return s
}

// Snapshot returns a deep copy of the current content
func (s *ContentStore) Snapshot() *models.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content.Clone()
}

// Subscribe registers fn to run after every change. The returned func removes it.
func (s *ContentStore) Subscribe(fn func(*models.Content)) func() {
	return s.listeners.add(fn)
}

// Close flushes pending saves and returns the last save error
func (s *ContentStore) Close() error {
	if s.saver == nil {
		return nil
	}
	return s.saver.close()
}

// update applies fn to a working copy and commits it only when fn succeeds
func (s *ContentStore) update(fn func(c *models.Content) error) error {
	s.mu.Lock()
	next := s.content.Clone()
	if err := fn(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.content = next
	snapshot := next.Clone()
	if s.saver != nil {
		s.saver.submit(next.Clone())
	}
	s.mu.Unlock()

	s.listeners.notify(snapshot)
	return nil
}

func checkIndex(kind string, i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %s %d (have %d)", ErrIndexOutOfRange, kind, i, n)
	}
	return nil
}

func (s *ContentStore) SetUser(u models.User) {
	_ = s.update(func(c *models.Content) error {
		c.User = u
		return nil
	})
}

func (s *ContentStore) SetTeams(teams []models.Team) {
	_ = s.update(func(c *models.Content) error {
		c.Teams = (&models.Content{Teams: teams}).Clone().Teams
		return nil
	})
}

func (s *ContentStore) SetNavMain(items []models.NavItem) {
	_ = s.update(func(c *models.Content) error {
		c.NavMain = (&models.Content{NavMain: items}).Clone().NavMain
		return nil
	})
}

func (s *ContentStore) SetProjects(projects []models.Project) {
	_ = s.update(func(c *models.Content) error {
		c.Projects = (&models.Content{Projects: projects}).Clone().Projects
		return nil
	})
}

// UpdateNavItem applies patch to the nav item at i
func (s *ContentStore) UpdateNavItem(i int, patch models.NavItemPatch) error {
	return s.update(func(c *models.Content) error {
		if err := checkIndex("nav item", i, len(c.NavMain)); err != nil {
			return err
		}
		c.NavMain[i] = patch.Apply(c.NavMain[i])
		return nil
	})
}

// UpdateTeam applies patch to the team at i
func (s *ContentStore) UpdateTeam(i int, patch models.TeamPatch) error {
	return s.update(func(c *models.Content) error {
		if err := checkIndex("team", i, len(c.Teams)); err != nil {
			return err
		}
		c.Teams[i] = patch.Apply(c.Teams[i])
		return nil
	})
}

// UpdateProject applies patch to the project at i
func (s *ContentStore) UpdateProject(i int, patch models.ProjectPatch) error {
	return s.update(func(c *models.Content) error {
		if err := checkIndex("project", i, len(c.Projects)); err != nil {
			return err
		}
		c.Projects[i] = patch.Apply(c.Projects[i])
		return nil
	})
}

// AddNavItem appends item to the main navigation
func (s *ContentStore) AddNavItem(item models.NavItem) {
	_ = s.update(func(c *models.Content) error {
		item.Items = append([]models.SubItem(nil), item.Items...)
		c.NavMain = append(c.NavMain, item)
		return nil
	})
}

// RemoveNavItem deletes the nav item at i
func (s *ContentStore) RemoveNavItem(i int) error {
	return s.update(func(c *models.Content) error {
		if err := checkIndex("nav item", i, len(c.NavMain)); err != nil {
			return err
		}
		c.NavMain = append(c.NavMain[:i:i], c.NavMain[i+1:]...)
		return nil
	})
}

// AddTeam appends team to the team list
func (s *ContentStore) AddTeam(team models.Team) {
	_ = s.update(func(c *models.Content) error {
		c.Teams = append(c.Teams, team)
		return nil
	})
}

// RemoveTeam deletes the team at i
func (s *ContentStore) RemoveTeam(i int) error {
	return s.update(func(c *models.Content) error {
		if err := checkIndex("team", i, len(c.Teams)); err != nil {
			return err
		}
		c.Teams = append(c.Teams[:i:i], c.Teams[i+1:]...)
		return nil
	})
}

// AddProject appends project to the projects group
func (s *ContentStore) AddProject(project models.Project) {
	_ = s.update(func(c *models.Content) error {
		c.Projects = append(c.Projects, project)
		return nil
	})
}

// RemoveProject deletes the project at i
func (s *ContentStore) RemoveProject(i int) error {
	return s.update(func(c *models.Content) error {
		if err := checkIndex("project", i, len(c.Projects)); err != nil {
			return err
		}
		c.Projects = append(c.Projects[:i:i], c.Projects[i+1:]...)
		return nil
	})
}

// Replace swaps in a copy of next
func (s *ContentStore) Replace(next *models.Content) {
	_ = s.update(func(c *models.Content) error {
		*c = *next.Clone()
		return nil
	})
}

// Reset restores all four collections from the default dataset in one change
func (s *ContentStore) Reset() {
	s.Replace(models.DefaultContent())
}
