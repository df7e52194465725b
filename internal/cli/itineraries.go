package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/planmytrip/tripstore/internal/models"
)

func itinerariesCmd(o *options) *cobra.Command {
	c := &cobra.Command{
		Use:     "itineraries",
		Aliases: []string{"it"},
		Short:   "List, show and add itineraries",
	}

	c.AddCommand(itinerariesListCmd(o), itinerariesShowCmd(o), itinerariesAddCmd(o))
	return c
}

func itinerariesListCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list <userID>",
		Short: "List a user's itineraries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID("user id", args[0])
			if err != nil {
				return err
			}
			return withSession(cmd, o, func(ctx context.Context, s *session) error {
				links, err := s.store.GetUserItineraries(ctx, userID)
				if err != nil {
					return err
				}
				return printItineraries(cmd.OutOrStdout(), links)
			})
		},
	}
}

func itinerariesShowCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <userID> <itineraryID>",
		Short: "Show an itinerary with its places",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, itineraryID, err := parseUserItinerary(args)
			if err != nil {
				return err
			}
			return withSession(cmd, o, func(ctx context.Context, s *session) error {
				link, err := s.store.GetUserItineraryByID(ctx, userID, itineraryID)
				if err != nil {
					return err
				}
				if link == nil {
					return fmt.Errorf("user %d has no itinerary %d", userID, itineraryID)
				}
				return printItinerary(cmd.OutOrStdout(), link)
			})
		},
	}
}

func itinerariesAddCmd(o *options) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "add <userID> <name>",
		Short: "Create an itinerary for a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID("user id", args[0])
			if err != nil {
				return err
			}
			it := &models.Itinerary{Name: args[1]}
			if date != "" {
				if it.LastUpdatedDate, err = time.Parse(time.RFC3339, date); err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
			}
			return withSession(cmd, o, func(ctx context.Context, s *session) error {
				id, err := s.store.AddItinerary(ctx, userID, it)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "itinerary %d added\n", id)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "last updated date, RFC 3339 (default now)")
	return cmd
}

func parseID(what, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	return id, nil
}

func parseUserItinerary(args []string) (userID, itineraryID int64, err error) {
	if userID, err = parseID("user id", args[0]); err != nil {
		return 0, 0, err
	}
	if itineraryID, err = parseID("itinerary id", args[1]); err != nil {
		return 0, 0, err
	}
	return userID, itineraryID, nil
}

func printItineraries(w io.Writer, links []*models.UserItinerary) error {
	if len(links) == 0 {
		_, err := fmt.Fprintln(w, "(no itineraries found)")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tUPDATED\tVERSION")
	for _, l := range links {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", l.ID, l.Itinerary.Name, l.Itinerary.LastUpdatedDate.Format(time.RFC3339), l.Itinerary.Version)
	}
	return tw.Flush()
}

func printItinerary(w io.Writer, link *models.UserItinerary) error {
	it := link.Itinerary
	fmt.Fprintf(w, "Itinerary: %s (%d)\n", it.Name, link.ID)
	if link.User != nil {
		fmt.Fprintf(w, "Owner:     %s\n", link.User.UserName)
	}
	fmt.Fprintf(w, "Updated:   %s (version %d)\n\n", it.LastUpdatedDate.Format(time.RFC3339), it.Version)

	if len(it.Places) == 0 {
		_, err := fmt.Fprintln(w, "(no places)")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tGOOGLE ID\tNAME\tADDRESS")
	for _, p := range it.Places {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.Position, p.Place.GooglePlaceID, p.Place.Name, p.Place.Address)
	}
	return tw.Flush()
}
