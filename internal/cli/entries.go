package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planmytrip/tripstore/internal/models"
)

func entriesCmd(o *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "entries",
		Short: "Add, remove and replace the places of an itinerary",
	}

	c.AddCommand(entriesAddCmd(o), entriesRemoveCmd(o), entriesReplaceCmd(o))
	return c
}

// placeFlags registers the descriptive place flags on cmd and returns the
// place they fill.
func placeFlags(cmd *cobra.Command) *models.Place {
	p := &models.Place{}
	cmd.Flags().StringVar(&p.Name, "name", "", "place name (required)")
	cmd.Flags().StringVar(&p.Address, "address", "", "street address")
	cmd.Flags().Float64Var(&p.Latitude, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&p.Longitude, "lng", 0, "longitude")
	_ = cmd.MarkFlagRequired("name")
	return p
}

func entriesAddCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <userID> <itineraryID> <googlePlaceID>",
		Short: "Append a place to an itinerary",
		Args:  cobra.ExactArgs(3),
	}
	place := placeFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		userID, itineraryID, err := parseUserItinerary(args)
		if err != nil {
			return err
		}
		place.GooglePlaceID = args[2]
		return withSession(cmd, o, func(ctx context.Context, s *session) error {
			id, err := s.store.AddItineraryEntry(ctx, userID, itineraryID, place)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "place %s added as entry %d\n", place.GooglePlaceID, id)
			return nil
		})
	}
	return cmd
}

func entriesRemoveCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <userID> <itineraryID> <googlePlaceID>",
		Short: "Remove a place from an itinerary",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, itineraryID, err := parseUserItinerary(args)
			if err != nil {
				return err
			}
			return withSession(cmd, o, func(ctx context.Context, s *session) error {
				ok, err := s.store.RemoveItineraryEntryByGoogleID(ctx, userID, itineraryID, args[2])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("place %s was not removed", args[2])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "place %s removed\n", args[2])
				return nil
			})
		},
	}
}

func entriesReplaceCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace <userID> <itineraryID> <googlePlaceID> <newGooglePlaceID>",
		Short: "Replace a place in an itinerary, keeping its position",
		Args:  cobra.ExactArgs(4),
	}
	place := placeFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		userID, itineraryID, err := parseUserItinerary(args)
		if err != nil {
			return err
		}
		place.GooglePlaceID = args[3]
		return withSession(cmd, o, func(ctx context.Context, s *session) error {
			ok, err := s.store.ReplaceItineraryEntryWithGoogleID(ctx, userID, itineraryID, args[2], place)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("place %s was not replaced", args[2])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "place %s replaced with %s\n", args[2], place.GooglePlaceID)
			return nil
		})
	}
	return cmd
}
