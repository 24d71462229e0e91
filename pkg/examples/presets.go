package examples

import "github.com/pluqqy/sidebar-builder/pkg/models"

func docsContent() *models.Content {
	return &models.Content{
		User: models.User{
			Name:   "Docs Team",
			Email:  "docs@example.com",
			Avatar: "/avatars/docs.png",
		},
		Teams: []models.Team{
			{Name: "Handbook", IconName: "BookOpen", Plan: "v2.4"},
			{Name: "Handbook Next", IconName: "Sparkles", Plan: "Preview"},
		},
		NavMain: []models.NavItem{
			{
				Title:    "Getting Started",
				URL:      "/docs",
				IconName: "Home",
				IsActive: true,
				Items: []models.SubItem{
					{Title: "Introduction", URL: "/docs/introduction"},
					{Title: "Installation", URL: "/docs/installation"},
					{Title: "Quick Start", URL: "/docs/quick-start"},
				},
			},
			{
				Title:    "Guides",
				URL:      "/docs/guides",
				IconName: "FileText",
				Items: []models.SubItem{
					{Title: "Theming", URL: "/docs/guides/theming"},
					{Title: "Dark Mode", URL: "/docs/guides/dark-mode"},
					{Title: "Deployment", URL: "/docs/guides/deployment"},
				},
			},
			{
				Title:    "API Reference",
				URL:      "/docs/api",
				IconName: "Code",
				Items: []models.SubItem{
					{Title: "Components", URL: "/docs/api/components"},
					{Title: "Hooks", URL: "/docs/api/hooks"},
				},
			},
			{
				Title:    "Search",
				URL:      "/search",
				IconName: "Search",
			},
		},
		Projects: []models.Project{
			{Name: "Changelog", URL: "/changelog", IconName: "Calendar"},
			{Name: "Community", URL: "/community", IconName: "Users"},
			{Name: "Support", URL: "/support", IconName: "LifeBuoy"},
		},
	}
}

func dashboardContent() *models.Content {
	return &models.Content{
		User: models.User{
			Name:   "Maria Lopez",
			Email:  "maria@example.com",
			Avatar: "/avatars/maria.jpg",
		},
		Teams: []models.Team{
			{Name: "Northwind", IconName: "Globe", Plan: "Enterprise"},
			{Name: "Northwind Labs", IconName: "Zap", Plan: "Pro"},
		},
		NavMain: []models.NavItem{
			{
				Title:    "Dashboard",
				URL:      "/",
				IconName: "LayoutDashboard",
				IsActive: true,
				Items: []models.SubItem{
					{Title: "Overview", URL: "/overview"},
					{Title: "Realtime", URL: "/realtime"},
				},
			},
			{
				Title:    "Reports",
				URL:      "/reports",
				IconName: "ChartBar",
				Items: []models.SubItem{
					{Title: "Revenue", URL: "/reports/revenue"},
					{Title: "Retention", URL: "/reports/retention"},
					{Title: "Funnels", URL: "/reports/funnels"},
				},
			},
			{
				Title:    "Customers",
				URL:      "/customers",
				IconName: "Users",
			},
			{
				Title:    "Inbox",
				URL:      "/inbox",
				IconName: "Inbox",
			},
			{
				Title:    "Billing",
				URL:      "/billing",
				IconName: "CreditCard",
				Items: []models.SubItem{
					{Title: "Invoices", URL: "/billing/invoices"},
					{Title: "Plans", URL: "/billing/plans"},
				},
			},
		},
		Projects: []models.Project{
			{Name: "Q3 Launch", URL: "/projects/q3", IconName: "Frame"},
			{Name: "Pricing Experiment", URL: "/projects/pricing", IconName: "PieChart"},
		},
	}
}

func minimalContent() *models.Content {
	return &models.Content{
		User: models.User{
			Name:  "Sam",
			Email: "sam@example.com",
		},
		Teams: []models.Team{
			{Name: "Personal", IconName: "Home", Plan: "Free"},
		},
		NavMain: []models.NavItem{
			{Title: "Home", URL: "/", IconName: "Home", IsActive: true},
			{Title: "Inbox", URL: "/inbox", IconName: "Inbox"},
			{Title: "Settings", URL: "/settings", IconName: "Settings"},
		},
	}
}
