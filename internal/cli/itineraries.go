package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
)

type itineraryFlags struct {
	from      string
	to        string
	fromDate  string
	toDate    string
	carrier   string
	equipment string
	sort      string
	asJSON    bool
}

func newItinerariesCmd(env func(*cobra.Command) (*Env, error)) *cobra.Command {
	var f itineraryFlags

	cmd := &cobra.Command{
		Use:   "itineraries",
		Short: "List itineraries between two ports",
		Example: "  schedulectl itineraries --from EGALY --to MATNG --from-date 2025-08-20 --to-date 2025-09-05\n" +
			"  schedulectl itineraries --from Alexandria --to \"Tanger Med\" --carrier MSCU --equipment 40HC",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := env(cmd)
			if err != nil {
				return err
			}

			filter := domain.ScheduleFilter{
				Origin:      f.from,
				Destination: f.to,
				DateFrom:    f.fromDate,
				DateTo:      f.toDate,
				Equipment:   f.equipment,
				Carrier:     f.carrier,
				Sort:        domain.ParseSortOption(f.sort),
			}
			schedules, err := e.Schedules.Export(cmd.Context(), filter)
			if err != nil {
				return err
			}

			if f.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(schedules)
			}
			printSchedules(cmd.OutOrStdout(), filter, schedules)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.from, "from", "f", "EGALY", "Origin port name or UN/LOCODE")
	flags.StringVarP(&f.to, "to", "t", "MATNG", "Destination port name or UN/LOCODE")
	flags.StringVar(&f.fromDate, "from-date", "", "Earliest departure (YYYY-MM-DD)")
	flags.StringVar(&f.toDate, "to-date", "", "Latest departure, inclusive (YYYY-MM-DD)")
	flags.StringVarP(&f.carrier, "carrier", "c", "", "Carrier name or SCAC")
	flags.StringVarP(&f.equipment, "equipment", "e", "40RF", "Container type")
	flags.StringVar(&f.sort, "sort", "etd", "Sort order: etd or transit")
	flags.BoolVar(&f.asJSON, "json", false, "Print schedules as JSON")
	return cmd
}

func printSchedules(w io.Writer, f domain.ScheduleFilter, schedules []domain.Schedule) {
	if len(schedules) == 0 {
		fmt.Fprintln(w, "No itineraries found.")
		return
	}

	fmt.Fprintf(w, "Found %d itineraries for %s -> %s (%s)\n\n", len(schedules), f.Origin, f.Destination, f.Equipment)
	for i, s := range schedules {
		imo := "-"
		if s.IMO != nil {
			imo = *s.IMO
		}
		service := s.ServiceOrEmpty()
		if service == "" {
			service = "-"
		}

		fmt.Fprintf(w, "%02d. %s | Service %s | %s %s (IMO %s) | %s\n",
			i+1, s.Carrier, service, s.Vessel, s.Voyage, imo, s.RoutingType)
		fmt.Fprintf(w, "    ETD %s %s  ->  ETA %s %s  | Transit %d days\n",
			placeCode(s.OriginLocode, s.Origin), s.ETD,
			placeCode(s.DestinationLocode, s.Destination), s.ETA,
			s.TransitDays)

		if len(s.Legs) > 0 {
			fmt.Fprintln(w, "    Legs:")
			for _, leg := range s.Legs {
				fmt.Fprintf(w, "      %d: %s %s -> %s %s (%dd) %s %s\n",
					leg.Sequence, leg.FromLocode, leg.ETD, leg.ToLocode, leg.ETA,
					leg.TransitDays, leg.Vessel, leg.Voyage)
			}
		}
		fmt.Fprintln(w)
	}
}

func placeCode(locode, display string) string {
	if locode != "" {
		return locode
	}
	return display
}
