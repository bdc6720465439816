package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Makepad-fr/staff/internal/directory"
	"github.com/Makepad-fr/staff/internal/model"
	"github.com/Makepad-fr/staff/internal/store/jsonstore"
	"github.com/Makepad-fr/staff/internal/tui"
	"github.com/Makepad-fr/staff/internal/ui"
	"github.com/spf13/cobra"
)

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive directory (default)",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.browse(cmd.Context())
		},
	}
}

func (a *app) browse(ctx context.Context) error {
	return tui.Run(ctx, a.src, a.log, a.metrics, tui.Header{
		User:   a.cfg.UI.User,
		Unread: a.cfg.UI.Unread,
	})
}

func newListCmd(a *app) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:   "ls [query...]",
		Short: "Print employees matching query (all when empty)",
		Example: `  staff ls
  staff ls ana
  staff ls --group 9876`,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.fetch(cmd.Context())
			if err != nil {
				return err
			}
			return a.printList(directory.Filter(list, strings.Join(args, " ")), group)
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group output by position")
	return cmd
}

func (a *app) printList(list []model.Employee, group bool) error {
	out := a.opt.Stdout
	t := ui.Current()
	if len(list) == 0 {
		fmt.Fprintln(out, t.Muted.Render("no employees"))
		return nil
	}
	if !group {
		for _, e := range list {
			fmt.Fprintln(out, ui.Summary(e))
		}
		return nil
	}

	for i, g := range groupByPosition(list) {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, t.Accent.Render(fmt.Sprintf("%s (%d)", g.position, len(g.employees))))
		for _, e := range g.employees {
			fmt.Fprintln(out, ui.Summary(e))
		}
	}
	return nil
}

type positionGroup struct {
	position  string
	employees []model.Employee
}

// groupByPosition sorts groups by name; members keep their list order.
func groupByPosition(list []model.Employee) []positionGroup {
	idx := map[string]int{}
	var groups []positionGroup
	for _, e := range list {
		p := strings.TrimSpace(e.Position)
		if p == "" {
			p = model.Placeholder
		}
		i, ok := idx[p]
		if !ok {
			i = len(groups)
			idx[p] = i
			groups = append(groups, positionGroup{position: p})
		}
		groups[i].employees = append(groups[i].employees, e)
	}
	slices.SortStableFunc(groups, func(x, y positionGroup) int {
		return strings.Compare(strings.ToLower(x.position), strings.ToLower(y.position))
	})
	return groups
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one employee in full",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := usageArgs(cobra.ExactArgs(1))(cmd, args); err != nil {
				return err
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return usagef("show: not a number: %s", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := strconv.Atoi(args[0])
			list, err := a.fetch(cmd.Context())
			if err != nil {
				return err
			}
			for _, e := range list {
				if e.ID == id {
					fmt.Fprintln(a.opt.Stdout, detailPanel(e))
					return nil
				}
			}
			return fmt.Errorf("no employee with id %d", id)
		},
	}
}

func detailPanel(e model.Employee) string {
	t := ui.Current()
	lines := []string{
		t.Avatar.Render(model.Initials(e.Name)) + " " + t.Title.Render(e.Name),
	}
	lines = append(lines, ui.DetailLines(e)...)
	if e.Image != "" {
		lines = append(lines, t.Muted.Render(e.Image))
	}
	return ui.Panel(lines)
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Fetch the list and write a JSON snapshot readable with --file",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.fetch(cmd.Context())
			if err != nil {
				return err
			}
			if err := jsonstore.Save(args[0], list); err != nil {
				return err
			}
			ui.OK(a.opt.Stdout, fmt.Sprintf("exported %d employees to %s", len(list), args[0]))
			return nil
		},
	}
}
