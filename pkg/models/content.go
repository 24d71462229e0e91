package models

// User is the signed-in identity shown in the sidebar footer
type User struct {
	Name   string `yaml:"name" json:"name"`
	Email  string `yaml:"email" json:"email" validate:"omitempty,email"`
	Avatar string `yaml:"avatar" json:"avatar"`
}

// Team is an entry of the team switcher
type Team struct {
	Name     string `yaml:"name" json:"name" validate:"required"`
	IconName string `yaml:"icon" json:"icon"`
	Plan     string `yaml:"plan" json:"plan"`
}

// SubItem is a leaf link under a navigation entry
type SubItem struct {
	Title string `yaml:"title" json:"title" validate:"required"`
	URL   string `yaml:"url" json:"url"`
}

// NavItem is a top-level navigation entry. A nil Items slice and an empty
// one mean the same thing.
type NavItem struct {
	Title    string    `yaml:"title" json:"title" validate:"required"`
	URL      string    `yaml:"url" json:"url"`
	IconName string    `yaml:"icon" json:"icon"`
	IsActive bool      `yaml:"is_active,omitempty" json:"isActive,omitempty"`
	Items    []SubItem `yaml:"items,omitempty" json:"items,omitempty" validate:"dive"`
}

// Project is an entry of the projects group
type Project struct {
	Name     string `yaml:"name" json:"name" validate:"required"`
	URL      string `yaml:"url" json:"url"`
	IconName string `yaml:"icon" json:"icon"`
}

// Content is everything the sidebar displays
type Content struct {
	User     User      `yaml:"user" json:"user"`
	Teams    []Team    `yaml:"teams" json:"teams" validate:"dive"`
	NavMain  []NavItem `yaml:"nav_main" json:"navMain" validate:"dive"`
	Projects []Project `yaml:"projects" json:"projects" validate:"dive"`
}

// NavItemPatch carries the fields to change on a NavItem. Nil fields are left alone.
type NavItemPatch struct {
	Title    *string
	URL      *string
	IconName *string
	IsActive *bool
	Items    *[]SubItem
}

// TeamPatch carries the fields to change on a Team
type TeamPatch struct {
	Name     *string
	IconName *string
	Plan     *string
}

// ProjectPatch carries the fields to change on a Project
type ProjectPatch struct {
	Name     *string
	URL      *string
	IconName *string
}

// Apply returns item with the patch's non-nil fields replaced
func (p NavItemPatch) Apply(item NavItem) NavItem {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.URL != nil {
		item.URL = *p.URL
	}
	if p.IconName != nil {
		item.IconName = *p.IconName
	}
	if p.IsActive != nil {
		item.IsActive = *p.IsActive
	}
	if p.Items != nil {
		item.Items = cloneSubItems(*p.Items)
	}
	return item
}

// Apply returns team with the patch's non-nil fields replaced
func (p TeamPatch) Apply(team Team) Team {
	if p.Name != nil {
		team.Name = *p.Name
	}
	if p.IconName != nil {
		team.IconName = *p.IconName
	}
	if p.Plan != nil {
		team.Plan = *p.Plan
	}
	return team
}

// Apply returns project with the patch's non-nil fields replaced
func (p ProjectPatch) Apply(project Project) Project {
	if p.Name != nil {
		project.Name = *p.Name
	}
	if p.URL != nil {
		project.URL = *p.URL
	}
	if p.IconName != nil {
		project.IconName = *p.IconName
	}
	return project
}

// Clone returns a deep copy of c. A nil receiver yields empty content.
func (c *Content) Clone() *Content {
	if c == nil {
		return &Content{}
	}
	out := &Content{User: c.User}
	if c.Teams != nil {
		out.Teams = append([]Team(nil), c.Teams...)
	}
	if c.Projects != nil {
		out.Projects = append([]Project(nil), c.Projects...)
	}
	if c.NavMain != nil {
		out.NavMain = make([]NavItem, len(c.NavMain))
		for i, item := range c.NavMain {
			item.Items = cloneSubItems(item.Items)
			out.NavMain[i] = item
		}
	}
	return out
}

// ActiveTeam returns the team shown as selected, which is always the first one
func (c *Content) ActiveTeam() (Team, bool) {
	if c == nil || len(c.Teams) == 0 {
		return Team{}, false
	}
	return c.Teams[0], true
}

func cloneSubItems(items []SubItem) []SubItem {
	if items == nil {
		return nil
	}
	return append([]SubItem(nil), items...)
}

// DefaultContent returns a fresh copy of the default dataset
func DefaultContent() *Content {
	return &Content{
		User: User{
			Name:   "shadcn",
			Email:  "m@example.com",
			Avatar: "/avatars/shadcn.jpg",
		},
		Teams: []Team{
			{Name: "Acme Inc", IconName: "GalleryVerticalEnd", Plan: "Enterprise"},
			{Name: "Acme Corp.", IconName: "AudioWaveform", Plan: "Startup"},
			{Name: "Evil Corp.", IconName: "Command", Plan: "Free"},
		},
		NavMain: []NavItem{
			{
				Title:    "Playground",
				URL:      "#",
				IconName: "SquareTerminal",
				IsActive: true,
				Items: []SubItem{
					{Title: "History", URL: "#"},
					{Title: "Starred", URL: "#"},
					{Title: "Settings", URL: "#"},
				},
			},
			{
				Title:    "Models",
				URL:      "#",
				IconName: "Bot",
				Items: []SubItem{
					{Title: "Genesis", URL: "#"},
					{Title: "Explorer", URL: "#"},
					{Title: "Quantum", URL: "#"},
				},
			},
			{
				Title:    "Documentation",
				URL:      "#",
				IconName: "BookOpen",
				Items: []SubItem{
					{Title: "Introduction", URL: "#"},
					{Title: "Get Started", URL: "#"},
					{Title: "Tutorials", URL: "#"},
					{Title: "Changelog", URL: "#"},
				},
			},
			{
				Title:    "Settings",
				URL:      "#",
				IconName: "Settings2",
				Items: []SubItem{
					{Title: "General", URL: "#"},
					{Title: "Team", URL: "#"},
					{Title: "Billing", URL: "#"},
					{Title: "Limits", URL: "#"},
				},
			},
		},
		Projects: []Project{
			{Name: "Design Engineering", URL: "#", IconName: "Frame"},
			{Name: "Sales & Marketing", URL: "#", IconName: "PieChart"},
			{Name: "Travel", URL: "#", IconName: "Map"},
		},
	}
}
