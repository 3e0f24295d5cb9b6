package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"contributorsboard/internal/adapters/twitter"
	"contributorsboard/internal/domain"
)

func newPeopleCmd() *cobra.Command {
	var role, query string
	cmd := &cobra.Command{
		Use:   "people",
		Short: "List contributors matching a role and search text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := domain.ParseRole(role)
			if err != nil {
				return err
			}
			b, err := loadBoard(cmd.Context())
			if err != nil {
				return err
			}
			defer b.close()

			list, err := b.service.FilterContributors(cmd.Context(), r, query)
			if err != nil {
				return err
			}
			return printContributors(cmd.OutOrStdout(), list)
		},
	}
	cmd.Flags().StringVarP(&role, "role", "r", string(domain.RoleAll), "role filter, or All")
	cmd.Flags().StringVarP(&query, "query", "q", "", "search text over name, Discord and handle")
	return cmd
}

func newAwardsCmd() *cobra.Command {
	var role string
	var townHall int
	cmd := &cobra.Command{
		Use:   "awards",
		Short: "List award winners for a role per Town Hall",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if townHall < 0 {
				return fmt.Errorf("invalid town hall %d", townHall)
			}
			b, err := loadBoard(cmd.Context())
			if err != nil {
				return err
			}
			defer b.close()

			var r domain.Role
			if role == "" {
				if r, err = b.service.DefaultAwardRole(cmd.Context()); err != nil {
					return err
				}
			} else if r, err = domain.ParseRole(role); err != nil {
				return err
			}
			if r == domain.RoleAll {
				fmt.Fprintln(cmd.OutOrStdout(), "Pick a role to see its award winners.")
				return nil
			}
			groups, err := b.service.AwardeesByRole(cmd.Context(), r, townHall)
			if err != nil {
				return err
			}
			return printAwards(cmd.OutOrStdout(), r, groups)
		},
	}
	cmd.Flags().StringVarP(&role, "role", "r", "", "awarded role (default Meme Lord when awarded)")
	cmd.Flags().IntVarP(&townHall, "town-hall", "t", domain.AllTownHalls, "Town Hall id, 0 for all")
	return cmd
}

func newWhoisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whois <handle>",
		Short: "Resolve a contributor by X/Twitter handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(cmd.Context())
			if err != nil {
				return err
			}
			defer b.close()

			c, err := b.service.ResolveContributor(cmd.Context(), args[0])
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("no contributor with handle %q", strings.TrimPrefix(args[0], "@"))
			}
			if err != nil {
				return err
			}
			return printContributor(cmd.OutOrStdout(), c)
		},
	}
}

func printContributors(w io.Writer, list []*domain.Contributor) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No contributors match your filters yet.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTWITTER\tDISCORD\tROLES")
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.DisplayName, handle(c.Twitter), c.Discord, joinRoles(c.Roles))
	}
	return tw.Flush()
}

func printAwards(w io.Writer, role domain.Role, groups []domain.AwardGroup) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, g := range groups {
		fmt.Fprintf(tw, "Town Hall #%d\t%s\n", g.TownHall.ID, g.TownHall.Date.Format("2006-01-02"))
		if len(g.Awardees) == 0 {
			fmt.Fprintf(tw, "  No %s awarded at this Town Hall.\n", role)
			continue
		}
		for _, a := range g.Awardees {
			fmt.Fprintf(tw, "  %s\t%s\n", a.Name(), handle(a.Twitter))
		}
	}
	return tw.Flush()
}

func printContributor(w io.Writer, c *domain.Contributor) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", c.DisplayName)
	fmt.Fprintf(tw, "Twitter:\t%s\n", twitter.ProfileURL(c.Twitter))
	if c.Discord != "" {
		fmt.Fprintf(tw, "Discord:\t%s\n", c.Discord)
	}
	fmt.Fprintf(tw, "Roles:\t%s\n", joinRoles(c.Roles))
	if c.Bio != "" {
		fmt.Fprintf(tw, "Bio:\t%s\n", c.Bio)
	}
	for _, t := range c.Tweets {
		fmt.Fprintf(tw, "Post:\t%s\n", t)
	}
	fmt.Fprintf(tw, "Gallery:\t%d images\n", len(c.Gallery))
	return tw.Flush()
}

func handle(h string) string {
	if h == "" {
		return "-"
	}
	return "@" + h
}

func joinRoles(roles []domain.Role) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
