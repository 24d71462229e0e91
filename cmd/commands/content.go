package commands

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/sidebar-builder/internal/cli"
	"github.com/pluqqy/sidebar-builder/pkg/examples"
	"github.com/pluqqy/sidebar-builder/pkg/files"
	"github.com/pluqqy/sidebar-builder/pkg/icons"
	"github.com/pluqqy/sidebar-builder/pkg/models"
	"github.com/pluqqy/sidebar-builder/pkg/store"
)

var (
	presetList bool

	userName   string
	userEmail  string
	userAvatar string

	entryName   string
	entryURL    string
	entryIcon   string
	entryPlan   string
	entryActive bool

	subName string
	subURL  string
)

// NewContentCommand creates the content command and its subcommands
func NewContentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Show or change what the sidebar displays",
		Long: `Show or change the sidebar content stored in .sidebar-builder/content.yaml:
the user, the teams, the main navigation and the projects.

Examples:
  sidebar-builder content show nav
  sidebar-builder content preset docs
  sidebar-builder content import my-sidebar.yaml
  sidebar-builder content set-user --name "Ada" --email ada@example.com
  sidebar-builder content add projects --name Roadmap --url /roadmap --icon Map
  sidebar-builder content remove teams 2
  sidebar-builder content sub add 0 --name Archive --url /archive`,
	}

	cmd.AddCommand(newContentShowCommand())
	cmd.AddCommand(newContentResetCommand())
	cmd.AddCommand(newContentImportCommand())
	cmd.AddCommand(newContentPresetCommand())
	cmd.AddCommand(newContentSetUserCommand())
	cmd.AddCommand(newContentAddCommand())
	cmd.AddCommand(newContentRemoveCommand())
	cmd.AddCommand(newContentEditCommand())
	cmd.AddCommand(newContentSubCommand())

	return cmd
}

// contentStore opens the project context and its content store
func contentStore(cmd *cobra.Command) (*cli.CommandContext, *store.ContentStore, error) {
	ctx, err := projectContext(cmd)
	if err != nil {
		return nil, nil, err
	}
	content, err := ctx.ContentStore()
	if err != nil {
		ctx.Close()
		return nil, nil, err
	}
	return ctx, content, nil
}

func newContentShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [section]",
		Short: "Print the content, or one section of it",
		Long: `Print the content. Sections: user, teams, nav, projects.
Entries are numbered so they can be passed to 'content remove'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var section string
			if len(args) == 1 {
				section = args[0]
			}
			if err := cli.ValidateContentSection(section); err != nil {
				return err
			}

			ctx, err := commandContext(cmd)
			if err != nil {
				return err
			}
			defer closeContext(ctx, &err)

			content, err := ctx.ContentStore()
			if err != nil {
				return err
			}
			snapshot := content.Snapshot()

			format := outputFormat(cmd)
			if format != string(cli.FormatText) {
				return cli.WriteStructured(cmd.OutOrStdout(), format, contentSection(snapshot, section))
			}

			printContent(cmd.OutOrStdout(), snapshot, section)
			return nil
		},
	}
}

// contentSection returns the part of c named by section, or all of it
func contentSection(c *models.Content, section string) any {
	switch section {
	case "user":
		return c.User
	case "teams":
		return c.Teams
	case "nav":
		return c.NavMain
	case "projects":
		return c.Projects
	}
	return c
}

func printContent(w io.Writer, c *models.Content, section string) {
	show := func(name string) bool { return section == "" || section == name }
	heading := func(title string) {
		if section == "" {
			fmt.Fprintf(w, "%s:\n", title)
		}
	}

	if show("user") {
		heading("User")
		fmt.Fprintf(w, "  name:   %s\n", c.User.Name)
		fmt.Fprintf(w, "  email:  %s\n", c.User.Email)
		fmt.Fprintf(w, "  avatar: %s\n", c.User.Avatar)
	}
	if show("teams") {
		heading("Teams")
		for i, t := range c.Teams {
			fmt.Fprintf(w, "  %d. %s %s (%s)\n", i, glyph(t.IconName), t.Name, t.Plan)
		}
	}
	if show("nav") {
		heading("Navigation")
		for i, item := range c.NavMain {
			marker := ""
			if item.IsActive {
				marker = " *"
			}
			fmt.Fprintf(w, "  %d. %s %s  %s%s\n", i, glyph(item.IconName), item.Title, item.URL, marker)
			for _, sub := range item.Items {
				fmt.Fprintf(w, "       - %s  %s\n", sub.Title, sub.URL)
			}
		}
	}
	if show("projects") {
		heading("Projects")
		for i, p := range c.Projects {
			fmt.Fprintf(w, "  %d. %s %s  %s\n", i, glyph(p.IconName), p.Name, p.URL)
		}
	}
}

func glyph(name string) string {
	if g := icons.Resolve(name); g != "" {
		return g
	}
	return " "
}

func newContentResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, content, err := contentStore(cmd)
			if err != nil {
				return err
			}
			defer closeContext(ctx, &err)

			ok, err := cli.Confirm("Reset all content to the defaults? This discards your teams, navigation and projects.", false)
			if err != nil {
				return err
			}
			if !ok {
				cli.PrintInfo("Reset cancelled")
				return nil
			}

			content.Reset()
			cli.PrintSuccess("Content reset to defaults")
			return nil
		},
	}
}

func newContentImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the content with a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if err := cli.ValidateFilePath(args[0]); err != nil {
				return err
			}
			imported, err := files.LoadContentFile(args[0])
			if err != nil {
				return err
			}

			ctx, content, err := contentStore(cmd)
			if err != nil {
				return err
			}
			defer closeContext(ctx, &err)

			content.Replace(imported)
			warnUnknownIcons(imported)
			cli.PrintSuccess("Imported content from %s", args[0])
			return nil
		},
	}
}

func newContentPresetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset [name]",
		Short: "Replace the content with a built-in preset",
		Long: `Replace the content with one of the built-in presets.

Use --list to see the available presets.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if presetList || len(args) == 0 {
				table := cli.NewTable(cmd.OutOrStdout(), "PRESET", "DESCRIPTION")
				for _, p := range examples.All() {
					table.Row(p.Name, p.Description)
				}
				return table.Flush()
			}

			preset, err := examples.Get(args[0])
			if err != nil {
				return err
			}

			ctx, content, err := contentStore(cmd)
			if err != nil {
				return err
			}
			defer closeContext(ctx, &err)

			ok, err := cli.Confirm(fmt.Sprintf("Replace the current content with the %s preset?", preset.Name), true)
			if err != nil {
				return err
			}
			if !ok {
				cli.PrintInfo("Preset not applied")
				return nil
			}

			content.Replace(preset.Content())
			cli.PrintSuccess("Applied the %s preset", preset.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&presetList, "list", false, "List the available presets")

	return cmd
}

func newContentSetUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-user",
		Short: "Change the user shown in the sidebar footer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			flags := cmd.Flags()
			if !flags.Changed("name") && !flags.Changed("email") && !flags.Changed("avatar") {
				return fmt.Errorf("nothing to change: pass --name, --email or --avatar")
			}

			ctx, content, err := contentStore(cmd)
			if err != nil {
				return err
			}
			defer closeContext(ctx, &err)

			user := content.Snapshot().User
			if flags.Changed("name") {
				user.Name = userName
			}
			if flags.Changed("email") {
				user.Email = userEmail
			}
			if flags.Changed("avatar") {
				user.Avatar = userAvatar
			}

			candidate := &models.Content{User: user}
			if err := models.ValidateContent(candidate); err != nil {
				return err
			}

			content.SetUser(user)
			cli.PrintSuccess("Updated user %s", user.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&userName, "name", "", "Display name")
	cmd.Flags().StringVar(&userEmail, "email", "", "Email address")
	cmd.Flags().StringVar(&userAvatar, "avatar", "", "Avatar image URL")

	return cmd
}

func newContentAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <teams|nav|projects>",
		Short: "Append an entry to a content section",
		Long: `Append an entry to teams, nav or projects.

--name is the team or project name, or the navigation title.
--plan applies to teams, --active to navigation entries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			section := args[0]
			if section == "user" {
				return fmt.Errorf("use 'content set-user' to change the user")
			}
			if err := cli.ValidateContentSection(section); err != nil {
				return err
			}
			if strings.TrimSpace(entryName) == "" {
				return fmt.Errorf("--name is required")
			}

			ctx, content, err := contentStore(cmd)
			if err != nil {
				return err
			}
			defer closeContext(ctx, &err)

			switch section {
			case "teams":
				content.AddTeam(models.Team{Name: entryName, IconName: entryIcon, Plan: entryPlan})
			case "nav":
				content.AddNavItem(models.NavItem{Title: entryName, URL: entryURL, IconName: entryIcon, IsActive: entryActive})
			case "projects":
				content.AddProject(models.Project{Name: entryName, URL: entryURL, IconName: entryIcon})
			}

			if entryIcon != "" && !icons.Known(entryIcon) {
				cli.PrintWarning("Icon %s is not known; it will be emitted as given", entryIcon)
			}
			cli.PrintSuccess("Added %s to %s", entryName, section)
			return nil
		},
	}

	cmd.Flags().StringVar(&entryName, "name", "", "Name or title of the entry")
	cmd.Flags().StringVar(&entryURL, "url", "#", "Link target")
	cmd.Flags().StringVar(&entryIcon, "icon", "", "Lucide icon name")
	cmd.Flags().StringVar(&entryPlan, "plan", "", "Plan label (teams)")
	cmd.Flags().BoolVar(&entryActive, "active", false, "Mark the navigation entry active")

	return cmd
}

func newContentRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <teams|nav|projects> <index>",
		Short: "Remove an entry by its index from 'content show'",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			section := args[0]
			if section == "user" {
				return fmt.Errorf("the user cannot be removed")
			}
			if err := cli.ValidateContentSection(section); err != nil {
				return err
			}
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			ctx, content, err := contentStore(cmd)
			if err != nil {
				return err
			}
			defer closeContext(ctx, &err)

			switch section {
			case "teams":
				err = content.RemoveTeam(index)
			case "nav":
				err = content.RemoveNavItem(index)
			case "projects":
				err = content.RemoveProject(index)
			}
			if err != nil {
				return err
			}

			cli.PrintSuccess("Removed entry %d from %s", index, section)
			return nil
		},
	}
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", arg, err)
	}
	return index, nil
}

func newContentSubCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sub",
		Short: "Add or remove the sub-items of a navigation entry",
		Long: `Add or remove the sub-items listed under a navigation entry.
Indexes are the ones printed by 'content show nav'.`,
	}

	add := &cobra.Command{
		Use:   "add <nav-index>",
		Short: "Append a sub-item to a navigation entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			parent, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			if strings.TrimSpace(subName) == "" {
				return fmt.Errorf("--name is required")
			}

			ctx, content, err := contentStore(cmd)
			if err != nil {
				return err
			}
			defer closeContext(ctx, &err)

			nav := content.Snapshot().NavMain
			if parent < 0 || parent >= len(nav) {
				return fmt.Errorf("nav entry %d: %w", parent, store.ErrIndexOutOfRange)
			}
			items := append(nav[parent].Items, models.SubItem{Title: subName, URL: subURL})
			if err := content.UpdateNavItem(parent, models.NavItemPatch{Items: &items}); err != nil {
				return err
			}

			cli.PrintSuccess("Added %s under %s", subName, nav[parent].Title)
			return nil
		},
	}
	add.Flags().StringVar(&subName, "name", "", "Title of the sub-item")
	add.Flags().StringVar(&subURL, "url", "#", "Link target")

	remove := &cobra.Command{
		Use:   "remove <nav-index> <sub-index>",
		Short: "Remove a sub-item from a navigation entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			parent, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			ctx, content, err := contentStore(cmd)
			if err != nil {
				return err
			}
			defer closeContext(ctx, &err)

			nav := content.Snapshot().NavMain
			if parent < 0 || parent >= len(nav) {
				return fmt.Errorf("nav entry %d: %w", parent, store.ErrIndexOutOfRange)
			}
			items := nav[parent].Items
			if index < 0 || index >= len(items) {
				return fmt.Errorf("sub-item %d: %w", index, store.ErrIndexOutOfRange)
			}
			removed := items[index].Title
			items = slices.Delete(items, index, index+1)
			if err := content.UpdateNavItem(parent, models.NavItemPatch{Items: &items}); err != nil {
				return err
			}

			cli.PrintSuccess("Removed %s from %s", removed, nav[parent].Title)
			return nil
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}

func newContentEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the content file in $EDITOR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := projectContext(cmd)
			if err != nil {
				return err
			}

			path := files.ContentPath()
			if err := cli.NewEditorLauncher().OpenFile(path); err != nil {
				return err
			}

			edited, err := files.LoadContentFile(path)
			if err != nil {
				return fmt.Errorf("the edited file is not valid content: %w", err)
			}
			ctx.Log.Debug("content edited")
			warnUnknownIcons(edited)
			cli.PrintSuccess("Saved %s", path)
			return nil
		},
	}
}

// warnUnknownIcons lists icon names that have no glyph. They still generate.
func warnUnknownIcons(c *models.Content) {
	var unknown []string
	check := func(name string) {
		if name != "" && !icons.Known(name) && !cli.Contains(unknown, name) {
			unknown = append(unknown, name)
		}
	}
	for _, t := range c.Teams {
		check(t.IconName)
	}
	for _, item := range c.NavMain {
		check(item.IconName)
	}
	for _, p := range c.Projects {
		check(p.IconName)
	}
	if len(unknown) > 0 {
		cli.PrintWarning("Unknown icons: %s", strings.Join(unknown, ", "))
	}
}
